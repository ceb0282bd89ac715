package budgetService

import (
	"testing"
	"time"

	authRepository "parivar/internal/api/auth/repository"
	"parivar/internal/api/budget"
	budgetRepository "parivar/internal/api/budget/repository"
	"parivar/internal/api/expense"
	expenseRepository "parivar/internal/api/expense/repository"
	"parivar/internal/api/family"
	"parivar/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

var fixedNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

type fakeUsers struct {
	user    entity.User
	userErr error
}

func (f *fakeUsers) CreateUser(_ context.Context, _ entity.User) error { return nil }
func (f *fakeUsers) GetByID(_ context.Context, _ string) (entity.User, error) {
	return f.user, f.userErr
}
func (f *fakeUsers) GetByEmail(_ context.Context, _ string) (entity.User, error) {
	return f.user, f.userErr
}
func (f *fakeUsers) GetByFamily(_ context.Context, _ string) ([]entity.User, error) {
	return nil, nil
}
func (f *fakeUsers) UpdatePassword(_ context.Context, _ string, _ string) error { return nil }
func (f *fakeUsers) UpdateFamily(_ context.Context, _ string, _ string, _ string) error {
	return nil
}

type fakeAuthRepo struct{ users *fakeUsers }

func (f *fakeAuthRepo) NewClient(_ bool) (authRepository.Client, error) {
	return authRepository.Client{Users: f.users}, nil
}

type fakeBudgets struct {
	budget    entity.Budget
	budgetErr error
	created   []entity.Budget
	updated   []entity.Budget
	deleted   []string
}

func (f *fakeBudgets) CreateBudget(_ context.Context, bgt entity.Budget) error {
	f.created = append(f.created, bgt)
	return nil
}
func (f *fakeBudgets) GetByID(_ context.Context, _ string) (entity.Budget, error) {
	return f.budget, f.budgetErr
}
func (f *fakeBudgets) GetLatestByFamily(_ context.Context, _ string) (entity.Budget, error) {
	return f.budget, f.budgetErr
}
func (f *fakeBudgets) UpdateBudget(_ context.Context, bgt entity.Budget) error {
	f.updated = append(f.updated, bgt)
	return nil
}
func (f *fakeBudgets) DeleteBudget(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBudgetRepo struct{ budgets *fakeBudgets }

func (f *fakeBudgetRepo) NewClient(_ bool) (budgetRepository.Client, error) {
	return budgetRepository.Client{Budgets: f.budgets}, nil
}

type fakeExpenses struct {
	sum       float64
	sumWindow struct{ from, to time.Time }
}

func (f *fakeExpenses) CreateExpense(_ context.Context, _ entity.Expense) error { return nil }
func (f *fakeExpenses) GetByID(_ context.Context, _ string) (entity.Expense, error) {
	return entity.Expense{}, expense.ErrExpenseNotFound
}
func (f *fakeExpenses) UpdateExpense(_ context.Context, _ entity.Expense) error { return nil }
func (f *fakeExpenses) DeleteExpense(_ context.Context, _ string) error         { return nil }
func (f *fakeExpenses) GetByUser(_ context.Context, _ string) ([]entity.Expense, error) {
	return nil, nil
}
func (f *fakeExpenses) GetByFamily(_ context.Context, _ string) ([]entity.Expense, error) {
	return nil, nil
}
func (f *fakeExpenses) GetByFamilyBetween(_ context.Context, _ string, _, _ time.Time) ([]entity.Expense, error) {
	return nil, nil
}
func (f *fakeExpenses) GetByFamilySince(_ context.Context, _ string, _ time.Time, _ int) ([]entity.Expense, error) {
	return nil, nil
}
func (f *fakeExpenses) GetByCategoryBetween(_ context.Context, _, _ string, _, _ time.Time, _ int) ([]entity.Expense, error) {
	return nil, nil
}
func (f *fakeExpenses) GetTopByAmount(_ context.Context, _ string, _, _ time.Time, _ int) ([]entity.Expense, error) {
	return nil, nil
}
func (f *fakeExpenses) SumByFamily(_ context.Context, _ string) (float64, error) {
	return f.sum, nil
}
func (f *fakeExpenses) SumByFamilyBetween(_ context.Context, _ string, from, to time.Time) (float64, error) {
	f.sumWindow.from = from
	f.sumWindow.to = to
	return f.sum, nil
}
func (f *fakeExpenses) AggregateBetween(_ context.Context, _ string, _, _ time.Time) (expense.Aggregate, error) {
	return expense.Aggregate{}, nil
}
func (f *fakeExpenses) CategoryBreakdown(_ context.Context, _ string, _, _ time.Time) ([]expense.CategoryTotal, error) {
	return nil, nil
}
func (f *fakeExpenses) DailyTotals(_ context.Context, _ string, _, _ time.Time) ([]expense.DailyTotal, error) {
	return nil, nil
}

type fakeExpenseRepo struct{ expenses *fakeExpenses }

func (f *fakeExpenseRepo) NewClient(_ bool) (expenseRepository.Client, error) {
	return expenseRepository.Client{Expenses: f.expenses}, nil
}

type fakeUtils struct{}

func (f *fakeUtils) NewULIDFromTimestamp(_ time.Time) (string, error) {
	return "01TESTBUDGETULID", nil
}

type testEnv struct {
	service  *budgetService
	users    *fakeUsers
	budgets  *fakeBudgets
	expenses *fakeExpenses
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users: &fakeUsers{user: entity.User{
			ID:       "user-1",
			Role:     string(entity.RoleHead),
			FamilyID: "family-1",
		}},
		budgets:  &fakeBudgets{budgetErr: budget.ErrBudgetNotFound},
		expenses: &fakeExpenses{},
	}

	env.service = &budgetService{
		log:         logrus.New(),
		budgetRepo:  &fakeBudgetRepo{budgets: env.budgets},
		authRepo:    &fakeAuthRepo{users: env.users},
		expenseRepo: &fakeExpenseRepo{expenses: env.expenses},
		utils:       &fakeUtils{},
		now:         func() time.Time { return fixedNow },
	}

	return env
}

func TestSetBudget(t *testing.T) {
	env := newTestEnv()

	bgt, err := env.service.SetBudget(context.Background(), "user-1", budget.SetBudgetRequest{
		LimitAmount: 10000,
		Period:      "monthly",
	})
	require.NoError(t, err)

	assert.Equal(t, "family-1", bgt.FamilyID)
	assert.Equal(t, float64(10000), bgt.LimitAmount)
	assert.Equal(t, "monthly", bgt.Period)
	require.Len(t, env.budgets.created, 1)
}

func TestSetBudgetRequiresHead(t *testing.T) {
	env := newTestEnv()
	env.users.user.Role = string(entity.RoleMember)

	_, err := env.service.SetBudget(context.Background(), "user-1", budget.SetBudgetRequest{
		LimitAmount: 10000,
		Period:      "monthly",
	})
	require.ErrorIs(t, err, family.ErrNotFamilyHead)
}

func TestSetBudgetRequiresFamily(t *testing.T) {
	env := newTestEnv()
	env.users.user.FamilyID = ""

	_, err := env.service.SetBudget(context.Background(), "user-1", budget.SetBudgetRequest{
		LimitAmount: 10000,
		Period:      "monthly",
	})
	require.ErrorIs(t, err, family.ErrNotInFamily)
}

func TestGetStatusWithinLimit(t *testing.T) {
	env := newTestEnv()
	env.budgets.budget = entity.Budget{ID: "b1", FamilyID: "family-1", LimitAmount: 5000, Period: "weekly"}
	env.budgets.budgetErr = nil
	env.expenses.sum = 3200

	status, err := env.service.GetStatus(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, float64(5000), status.Budget)
	assert.Equal(t, float64(3200), status.Spent)
	assert.Equal(t, float64(1800), status.Remaining)
	assert.Equal(t, "Within limit", status.Status)
	assert.Equal(t, fixedNow.AddDate(0, 0, -7), env.expenses.sumWindow.from)
}

func TestGetStatusExceeded(t *testing.T) {
	env := newTestEnv()
	env.budgets.budget = entity.Budget{ID: "b1", FamilyID: "family-1", LimitAmount: 1000, Period: "daily"}
	env.budgets.budgetErr = nil
	env.expenses.sum = 1500

	status, err := env.service.GetStatus(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, float64(-500), status.Remaining)
	assert.Equal(t, "Exceeded", status.Status)
	midnight := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight, env.expenses.sumWindow.from)
}

func TestGetStatusMonthlyWindow(t *testing.T) {
	env := newTestEnv()
	env.budgets.budget = entity.Budget{ID: "b1", FamilyID: "family-1", LimitAmount: 20000, Period: "monthly"}
	env.budgets.budgetErr = nil

	_, err := env.service.GetStatus(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, fixedNow.AddDate(0, -1, 0), env.expenses.sumWindow.from)
	assert.Equal(t, fixedNow, env.expenses.sumWindow.to)
}

func TestGetStatusMemberAllowed(t *testing.T) {
	env := newTestEnv()
	env.users.user.Role = string(entity.RoleMember)
	env.budgets.budget = entity.Budget{ID: "b1", FamilyID: "family-1", LimitAmount: 1000, Period: "monthly"}
	env.budgets.budgetErr = nil

	_, err := env.service.GetStatus(context.Background(), "user-1")
	require.NoError(t, err)
}

func TestGetStatusNoBudget(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.GetStatus(context.Background(), "user-1")
	require.ErrorIs(t, err, budget.ErrBudgetNotFound)
}

func TestUpdateBudget(t *testing.T) {
	env := newTestEnv()
	env.budgets.budget = entity.Budget{ID: "b1", FamilyID: "family-1", LimitAmount: 5000, Period: "weekly"}
	env.budgets.budgetErr = nil

	bgt, err := env.service.UpdateBudget(context.Background(), "user-1", "b1", budget.UpdateBudgetRequest{
		LimitAmount: 8000,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(8000), bgt.LimitAmount)
	assert.Equal(t, "weekly", bgt.Period)
	require.Len(t, env.budgets.updated, 1)
}

func TestUpdateBudgetOtherFamily(t *testing.T) {
	env := newTestEnv()
	env.budgets.budget = entity.Budget{ID: "b1", FamilyID: "family-2", LimitAmount: 5000, Period: "weekly"}
	env.budgets.budgetErr = nil

	_, err := env.service.UpdateBudget(context.Background(), "user-1", "b1", budget.UpdateBudgetRequest{
		LimitAmount: 8000,
	})
	require.ErrorIs(t, err, budget.ErrBudgetNotFound)
	assert.Empty(t, env.budgets.updated)
}

func TestDeleteBudget(t *testing.T) {
	env := newTestEnv()
	env.budgets.budget = entity.Budget{ID: "b1", FamilyID: "family-1", LimitAmount: 5000, Period: "weekly"}
	env.budgets.budgetErr = nil

	err := env.service.DeleteBudget(context.Background(), "user-1", "b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, env.budgets.deleted)
}

func TestDeleteBudgetRequiresHead(t *testing.T) {
	env := newTestEnv()
	env.users.user.Role = string(entity.RoleMember)

	err := env.service.DeleteBudget(context.Background(), "user-1", "b1")
	require.ErrorIs(t, err, family.ErrNotFamilyHead)
	assert.Empty(t, env.budgets.deleted)
}
