package notificationHandler

import (
	notificationService "parivar/internal/api/notification/service"
	"parivar/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type NotificationHandler struct {
	log                 *logrus.Logger
	validator           *validator.Validate
	middleware          middleware.Middleware
	notificationService notificationService.NotificationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ns notificationService.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		log:                 log,
		validator:           validate,
		middleware:          middleware,
		notificationService: ns,
	}
}

func (h *NotificationHandler) Start(srv fiber.Router) {
	notifications := srv.Group("/notifications")
	notifications.Get("/", h.middleware.NewTokenMiddleware, h.HandleGetNotifications)
	notifications.Get("/unread-count", h.middleware.NewTokenMiddleware, h.HandleGetUnreadCount)
	notifications.Put("/mark-all-seen", h.middleware.NewTokenMiddleware, h.HandleMarkAllAsSeen)
	notifications.Put("/:id/seen", h.middleware.NewTokenMiddleware, h.HandleMarkAsSeen)
}
