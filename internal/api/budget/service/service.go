package budgetService

import (
	"context"
	"time"

	authRepository "parivar/internal/api/auth/repository"
	"parivar/internal/api/budget"
	budgetRepository "parivar/internal/api/budget/repository"
	expenseRepository "parivar/internal/api/expense/repository"
	"parivar/internal/entity"
	"parivar/pkg/utils"

	"github.com/sirupsen/logrus"
)

type BudgetService interface {
	SetBudget(c context.Context, userID string, req budget.SetBudgetRequest) (entity.Budget, error)
	GetStatus(c context.Context, userID string) (budget.StatusResponse, error)
	UpdateBudget(c context.Context, userID string, budgetID string, req budget.UpdateBudgetRequest) (entity.Budget, error)
	DeleteBudget(c context.Context, userID string, budgetID string) error
}

type budgetService struct {
	log         *logrus.Logger
	budgetRepo  budgetRepository.Repository
	authRepo    authRepository.Repository
	expenseRepo expenseRepository.Repository
	utils       utils.IUtils
	now         func() time.Time
}

func NewBudgetService(log *logrus.Logger,
	budgetRepo budgetRepository.Repository,
	authRepo authRepository.Repository,
	expenseRepo expenseRepository.Repository,
	utils utils.IUtils,
) BudgetService {
	return &budgetService{
		log:         log,
		budgetRepo:  budgetRepo,
		authRepo:    authRepo,
		expenseRepo: expenseRepo,
		utils:       utils,
		now:         time.Now,
	}
}
