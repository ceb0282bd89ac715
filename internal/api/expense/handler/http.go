package expenseHandler

import (
	expenseService "parivar/internal/api/expense/service"
	"parivar/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ExpenseHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	expenseService expenseService.ExpenseService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	es expenseService.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		expenseService: es,
	}
}

func (h *ExpenseHandler) Start(srv fiber.Router) {
	expenses := srv.Group("/expenses")
	expenses.Post("/", h.middleware.NewTokenMiddleware, h.HandleAddExpense)
	expenses.Get("/", h.middleware.NewTokenMiddleware, h.HandleGetExpenses)
	expenses.Get("/family", h.middleware.NewTokenMiddleware, h.HandleGetFamilyExpenses)
	expenses.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateExpense)
	expenses.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteExpense)
}
