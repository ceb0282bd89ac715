package expenseService

import (
	"context"

	authRepository "parivar/internal/api/auth/repository"
	"parivar/internal/api/expense"
	expenseRepository "parivar/internal/api/expense/repository"
	notificationRepository "parivar/internal/api/notification/repository"
	"parivar/internal/entity"
	"parivar/pkg/translator"
	"parivar/pkg/utils"

	"github.com/sirupsen/logrus"
)

type ExpenseService interface {
	AddExpense(c context.Context, userID string, req expense.CreateExpenseRequest) (expense.AddExpenseResponse, error)
	GetUserExpenses(c context.Context, userID string) ([]entity.Expense, error)
	GetFamilyExpenses(c context.Context, userID string) ([]entity.Expense, error)
	UpdateExpense(c context.Context, userID string, expenseID string, req expense.UpdateExpenseRequest) (entity.Expense, error)
	DeleteExpense(c context.Context, userID string, expenseID string) error
}

type expenseService struct {
	log              *logrus.Logger
	expenseRepo      expenseRepository.Repository
	authRepo         authRepository.Repository
	notificationRepo notificationRepository.Repository
	translator       translator.ITranslator
	utils            utils.IUtils
}

func NewExpenseService(log *logrus.Logger,
	expenseRepo expenseRepository.Repository,
	authRepo authRepository.Repository,
	notificationRepo notificationRepository.Repository,
	translator translator.ITranslator,
	utils utils.IUtils,
) ExpenseService {
	return &expenseService{
		log:              log,
		expenseRepo:      expenseRepo,
		authRepo:         authRepo,
		notificationRepo: notificationRepo,
		translator:       translator,
		utils:            utils,
	}
}
