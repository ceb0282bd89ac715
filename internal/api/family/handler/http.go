package familyHandler

import (
	familyService "parivar/internal/api/family/service"
	"parivar/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FamilyHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	familyService familyService.FamilyService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	fs familyService.FamilyService) *FamilyHandler {
	return &FamilyHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		familyService: fs,
	}
}

func (h *FamilyHandler) Start(srv fiber.Router) {
	fam := srv.Group("/family")
	fam.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreateFamily)
	fam.Post("/join", h.middleware.NewTokenMiddleware, h.HandleJoinFamily)
	fam.Get("/", h.middleware.NewTokenMiddleware, h.HandleGetFamily)
	fam.Get("/invite-code", h.middleware.NewTokenMiddleware, h.HandleGetInviteCode)
	fam.Post("/regenerate-code", h.middleware.NewTokenMiddleware, h.HandleRegenerateInviteCode)
	fam.Get("/total", h.middleware.NewTokenMiddleware, h.HandleGetTotalSpending)
}
