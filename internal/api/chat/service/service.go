package chatService

import (
	"context"
	"time"

	authRepository "parivar/internal/api/auth/repository"
	budgetRepository "parivar/internal/api/budget/repository"
	"parivar/internal/api/chat"
	expenseRepository "parivar/internal/api/expense/repository"
	notificationRepository "parivar/internal/api/notification/repository"
	"parivar/pkg/nlp"
	"parivar/pkg/translator"
	"parivar/pkg/utils"

	"github.com/sirupsen/logrus"
)

type ChatService interface {
	Query(c context.Context, userID string, req chat.QueryRequest) (chat.QueryResponse, error)
	LogExpense(c context.Context, userID string, req chat.LogExpenseRequest) (chat.LogExpenseResponse, error)
	ParsePreview(req chat.ParsePreviewRequest) nlp.ParsedExpense
}

type chatService struct {
	log              *logrus.Logger
	expenseRepo      expenseRepository.Repository
	budgetRepo       budgetRepository.Repository
	authRepo         authRepository.Repository
	notificationRepo notificationRepository.Repository
	translator       translator.ITranslator
	utils            utils.IUtils
	now              func() time.Time
}

func NewChatService(log *logrus.Logger,
	expenseRepo expenseRepository.Repository,
	budgetRepo budgetRepository.Repository,
	authRepo authRepository.Repository,
	notificationRepo notificationRepository.Repository,
	translator translator.ITranslator,
	utils utils.IUtils,
) ChatService {
	return &chatService{
		log:              log,
		expenseRepo:      expenseRepo,
		budgetRepo:       budgetRepo,
		authRepo:         authRepo,
		notificationRepo: notificationRepo,
		translator:       translator,
		utils:            utils,
		now:              time.Now,
	}
}
