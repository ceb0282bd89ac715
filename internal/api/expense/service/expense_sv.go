package expenseService

import (
	"fmt"
	"time"

	"parivar/internal/api/expense"
	"parivar/internal/api/family"
	"parivar/internal/entity"
	contextPkg "parivar/pkg/context"
	"parivar/pkg/nlp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *expenseService) AddExpense(c context.Context, userID string, req expense.CreateExpenseRequest) (expense.AddExpenseResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return expense.AddExpenseResponse{}, err
	}

	user, err := authRepo.Users.GetByID(c, userID)
	if err != nil {
		return expense.AddExpenseResponse{}, err
	}
	if user.FamilyID == "" {
		return expense.AddExpenseResponse{}, family.ErrNotInFamily
	}

	category := req.Category
	if category == "" {
		category = nlp.Categorize(req.Description)
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return expense.AddExpenseResponse{}, err
	}

	exp := entity.Expense{
		ID:          id,
		UserID:      userID,
		FamilyID:    user.FamilyID,
		Amount:      req.Amount,
		Category:    category,
		Description: req.Description,
		Date:        time.Now(),
	}
	if err := exp.Validate(); err != nil {
		return expense.AddExpenseResponse{}, err
	}

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return expense.AddExpenseResponse{}, err
	}

	if err := expenseRepo.Expenses.CreateExpense(c, exp); err != nil {
		return expense.AddExpenseResponse{}, err
	}

	familyExpenses, err := expenseRepo.Expenses.GetByFamily(c, user.FamilyID)
	if err != nil {
		return expense.AddExpenseResponse{}, err
	}

	var total float64
	for _, e := range familyExpenses {
		total += e.Amount
	}

	advice := adviceFor(familyExpenses)
	forecast := forecastFor(familyExpenses)

	memberName := user.Name
	if memberName == "" {
		memberName = "A family member"
	}
	message := fmt.Sprintf("%s added ₹%g to %s. Family total: ₹%g. %s", memberName, req.Amount, category, total, advice)

	if req.Lang != "" {
		message = s.translator.Translate(c, message, req.Lang)
	}

	s.notifyFamilyHead(c, user, exp, message)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"expense_id": exp.ID,
		"family_id":  user.FamilyID,
	}).Info("Expense added")

	return expense.AddExpenseResponse{
		Expense:  exp,
		Total:    total,
		Advice:   advice,
		Forecast: forecast,
		Message:  message,
	}, nil
}

// notifyFamilyHead records a notification for the head when someone else in
// the family adds an expense. Failures are logged and swallowed so the
// expense itself still succeeds.
func (s *expenseService) notifyFamilyHead(c context.Context, actor entity.User, exp entity.Expense, message string) {
	requestID := contextPkg.GetRequestID(c)

	if actor.Role == string(entity.RoleHead) {
		return
	}

	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		return
	}

	members, err := authRepo.Users.GetByFamily(c, actor.FamilyID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to load family members for notification")
		return
	}

	var head *entity.User
	for i := range members {
		if members[i].Role == string(entity.RoleHead) {
			head = &members[i]
			break
		}
	}
	if head == nil || head.ID == actor.ID {
		return
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return
	}

	notificationRepo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		return
	}

	notif := entity.Notification{
		ID:          id,
		FamilyID:    actor.FamilyID,
		UserID:      actor.ID,
		RecipientID: head.ID,
		Message:     message,
		ExpenseID:   exp.ID,
		Date:        time.Now(),
		Seen:        false,
	}

	if err := notificationRepo.Notifications.CreateNotification(c, notif); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create head notification")
	}
}

func (s *expenseService) GetUserExpenses(c context.Context, userID string) ([]entity.Expense, error) {
	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	expenses, err := expenseRepo.Expenses.GetByUser(c, userID)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []entity.Expense{}
	}

	return expenses, nil
}

func (s *expenseService) GetFamilyExpenses(c context.Context, userID string) ([]entity.Expense, error) {
	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	user, err := authRepo.Users.GetByID(c, userID)
	if err != nil {
		return nil, err
	}
	if user.FamilyID == "" {
		return nil, family.ErrNotInFamily
	}

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	expenses, err := expenseRepo.Expenses.GetByFamily(c, user.FamilyID)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []entity.Expense{}
	}

	return expenses, nil
}

func (s *expenseService) UpdateExpense(c context.Context, userID string, expenseID string, req expense.UpdateExpenseRequest) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return entity.Expense{}, err
	}

	exp, err := expenseRepo.Expenses.GetByID(c, expenseID)
	if err != nil {
		return entity.Expense{}, err
	}

	if exp.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expense_id": expenseID,
			"user_id":    userID,
		}).Warn("User does not own expense")
		return entity.Expense{}, expense.ErrNotExpenseOwner
	}

	if req.Amount > 0 {
		exp.Amount = req.Amount
	}
	if req.Category != "" {
		exp.Category = req.Category
	}
	if req.Description != "" {
		exp.Description = req.Description
	}
	if err := exp.Validate(); err != nil {
		return entity.Expense{}, err
	}

	if err := expenseRepo.Expenses.UpdateExpense(c, exp); err != nil {
		return entity.Expense{}, err
	}

	return exp, nil
}

func (s *expenseService) DeleteExpense(c context.Context, userID string, expenseID string) error {
	requestID := contextPkg.GetRequestID(c)

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return err
	}

	exp, err := expenseRepo.Expenses.GetByID(c, expenseID)
	if err != nil {
		return err
	}

	if exp.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expense_id": expenseID,
			"user_id":    userID,
		}).Warn("User does not own expense")
		return expense.ErrNotExpenseOwner
	}

	return expenseRepo.Expenses.DeleteExpense(c, expenseID)
}
