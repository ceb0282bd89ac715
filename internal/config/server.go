package config

import (
	"fmt"
	"os"

	"parivar/database/postgres"
	authHandler "parivar/internal/api/auth/handler"
	authRepository "parivar/internal/api/auth/repository"
	authService "parivar/internal/api/auth/service"
	budgetHandler "parivar/internal/api/budget/handler"
	budgetRepository "parivar/internal/api/budget/repository"
	budgetService "parivar/internal/api/budget/service"
	chatHandler "parivar/internal/api/chat/handler"
	chatService "parivar/internal/api/chat/service"
	expenseHandler "parivar/internal/api/expense/handler"
	expenseRepository "parivar/internal/api/expense/repository"
	expenseService "parivar/internal/api/expense/service"
	familyHandler "parivar/internal/api/family/handler"
	familyRepository "parivar/internal/api/family/repository"
	familyService "parivar/internal/api/family/service"
	notificationHandler "parivar/internal/api/notification/handler"
	notificationRepository "parivar/internal/api/notification/repository"
	notificationService "parivar/internal/api/notification/service"
	"parivar/internal/middleware"
	"parivar/pkg/bcrypt"
	"parivar/pkg/redis"
	"parivar/pkg/smtp"
	"parivar/pkg/translator"
	"parivar/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
	translator  translator.ITranslator
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithTranslator() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before translator")
		}
		s.translator = translator.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.smtpMailer, s.redisServer, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Family Domain
	familyRepo := familyRepository.New(s.db, s.log)
	expenseRepo := expenseRepository.New(s.db, s.log)
	familyServices := familyService.NewFamilyService(s.log, familyRepo, authRepo, expenseRepo, s.utils)
	familyHandlers := familyHandler.New(s.log, s.validator, s.middleware, familyServices)

	// Notification Domain
	notificationRepo := notificationRepository.New(s.db, s.log)
	notificationServices := notificationService.NewNotificationService(s.log, notificationRepo, authRepo)
	notificationHandlers := notificationHandler.New(s.log, s.validator, s.middleware, notificationServices)

	// Expense Domain
	expenseServices := expenseService.NewExpenseService(s.log, expenseRepo, authRepo, notificationRepo, s.translator, s.utils)
	expenseHandlers := expenseHandler.New(s.log, s.validator, s.middleware, expenseServices)

	// Budget Domain
	budgetRepo := budgetRepository.New(s.db, s.log)
	budgetServices := budgetService.NewBudgetService(s.log, budgetRepo, authRepo, expenseRepo, s.utils)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices)

	// Chat Domain
	chatServices := chatService.NewChatService(s.log, expenseRepo, budgetRepo, authRepo, notificationRepo, s.translator, s.utils)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers, familyHandlers, notificationHandlers,
		expenseHandlers, budgetHandlers, chatHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
