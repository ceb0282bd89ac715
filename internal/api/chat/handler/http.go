package chatHandler

import (
	chatService "parivar/internal/api/chat/service"
	"parivar/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.ChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.ChatService) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chatGroup := srv.Group("/chat")
	chatGroup.Post("/query", h.middleware.NewTokenMiddleware, h.HandleQuery)
	chatGroup.Post("/expense", h.middleware.NewTokenMiddleware, h.HandleLogExpense)
	chatGroup.Post("/parse", h.middleware.NewTokenMiddleware, h.HandleParsePreview)
}
