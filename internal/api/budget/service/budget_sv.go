package budgetService

import (
	"time"

	"parivar/internal/api/budget"
	"parivar/internal/api/family"
	"parivar/internal/entity"
	contextPkg "parivar/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *budgetService) SetBudget(c context.Context, userID string, req budget.SetBudgetRequest) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)

	user, err := s.headForUser(c, userID)
	if err != nil {
		return entity.Budget{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		return entity.Budget{}, err
	}

	bgt := entity.Budget{
		ID:          id,
		FamilyID:    user.FamilyID,
		LimitAmount: req.LimitAmount,
		Period:      req.Period,
		CreatedAt:   s.now(),
	}
	if err := bgt.Validate(); err != nil {
		return entity.Budget{}, err
	}

	budgetRepo, err := s.budgetRepo.NewClient(false)
	if err != nil {
		return entity.Budget{}, err
	}

	if err := budgetRepo.Budgets.CreateBudget(c, bgt); err != nil {
		return entity.Budget{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"budget_id":  bgt.ID,
		"family_id":  bgt.FamilyID,
	}).Info("Budget set")

	return bgt, nil
}

func (s *budgetService) GetStatus(c context.Context, userID string) (budget.StatusResponse, error) {
	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		return budget.StatusResponse{}, err
	}

	user, err := authRepo.Users.GetByID(c, userID)
	if err != nil {
		return budget.StatusResponse{}, err
	}
	if user.FamilyID == "" {
		return budget.StatusResponse{}, family.ErrNotInFamily
	}

	budgetRepo, err := s.budgetRepo.NewClient(false)
	if err != nil {
		return budget.StatusResponse{}, err
	}

	bgt, err := budgetRepo.Budgets.GetLatestByFamily(c, user.FamilyID)
	if err != nil {
		return budget.StatusResponse{}, err
	}

	now := s.now()
	start := now
	switch bgt.Period {
	case string(entity.BudgetPeriodDaily):
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case string(entity.BudgetPeriodWeekly):
		start = now.AddDate(0, 0, -7)
	case string(entity.BudgetPeriodMonthly):
		start = now.AddDate(0, -1, 0)
	}

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return budget.StatusResponse{}, err
	}

	spent, err := expenseRepo.Expenses.SumByFamilyBetween(c, user.FamilyID, start, now)
	if err != nil {
		return budget.StatusResponse{}, err
	}

	remaining := bgt.LimitAmount - spent
	status := "Within limit"
	if remaining < 0 {
		status = "Exceeded"
	}

	return budget.StatusResponse{
		Budget:    bgt.LimitAmount,
		Period:    bgt.Period,
		Spent:     spent,
		Remaining: remaining,
		Status:    status,
	}, nil
}

func (s *budgetService) UpdateBudget(c context.Context, userID string, budgetID string, req budget.UpdateBudgetRequest) (entity.Budget, error) {
	user, err := s.headForUser(c, userID)
	if err != nil {
		return entity.Budget{}, err
	}

	budgetRepo, err := s.budgetRepo.NewClient(false)
	if err != nil {
		return entity.Budget{}, err
	}

	bgt, err := budgetRepo.Budgets.GetByID(c, budgetID)
	if err != nil {
		return entity.Budget{}, err
	}
	if bgt.FamilyID != user.FamilyID {
		return entity.Budget{}, budget.ErrBudgetNotFound
	}

	if req.LimitAmount > 0 {
		bgt.LimitAmount = req.LimitAmount
	}
	if req.Period != "" {
		bgt.Period = req.Period
	}
	if err := bgt.Validate(); err != nil {
		return entity.Budget{}, err
	}

	if err := budgetRepo.Budgets.UpdateBudget(c, bgt); err != nil {
		return entity.Budget{}, err
	}

	return bgt, nil
}

func (s *budgetService) DeleteBudget(c context.Context, userID string, budgetID string) error {
	user, err := s.headForUser(c, userID)
	if err != nil {
		return err
	}

	budgetRepo, err := s.budgetRepo.NewClient(false)
	if err != nil {
		return err
	}

	bgt, err := budgetRepo.Budgets.GetByID(c, budgetID)
	if err != nil {
		return err
	}
	if bgt.FamilyID != user.FamilyID {
		return budget.ErrBudgetNotFound
	}

	return budgetRepo.Budgets.DeleteBudget(c, budgetID)
}

// headForUser loads the user and verifies they belong to a family and lead it.
func (s *budgetService) headForUser(c context.Context, userID string) (entity.User, error) {
	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	user, err := authRepo.Users.GetByID(c, userID)
	if err != nil {
		return entity.User{}, err
	}
	if user.FamilyID == "" {
		return entity.User{}, family.ErrNotInFamily
	}
	if user.Role != string(entity.RoleHead) {
		return entity.User{}, family.ErrNotFamilyHead
	}

	return user, nil
}
