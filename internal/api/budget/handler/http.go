package budgetHandler

import (
	budgetService "parivar/internal/api/budget/service"
	"parivar/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BudgetHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	budgetService budgetService.BudgetService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs budgetService.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		budgetService: bs,
	}
}

func (h *BudgetHandler) Start(srv fiber.Router) {
	budgets := srv.Group("/budgets")
	budgets.Post("/", h.middleware.NewTokenMiddleware, h.HandleSetBudget)
	budgets.Get("/status", h.middleware.NewTokenMiddleware, h.HandleGetStatus)
	budgets.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateBudget)
	budgets.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteBudget)
}
