package chatService

import (
	"errors"
	"fmt"
	"testing"
	"time"

	authRepository "parivar/internal/api/auth/repository"
	"parivar/internal/api/budget"
	budgetRepository "parivar/internal/api/budget/repository"
	"parivar/internal/api/chat"
	"parivar/internal/api/expense"
	expenseRepository "parivar/internal/api/expense/repository"
	"parivar/internal/api/family"
	notificationRepository "parivar/internal/api/notification/repository"
	"parivar/internal/entity"
	"parivar/pkg/translator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

var fixedNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

type fakeUsers struct {
	user    entity.User
	userErr error
	members []entity.User
}

func (f *fakeUsers) CreateUser(_ context.Context, _ entity.User) error { return nil }
func (f *fakeUsers) GetByID(_ context.Context, _ string) (entity.User, error) {
	return f.user, f.userErr
}
func (f *fakeUsers) GetByEmail(_ context.Context, _ string) (entity.User, error) {
	return f.user, f.userErr
}
func (f *fakeUsers) GetByFamily(_ context.Context, _ string) ([]entity.User, error) {
	return f.members, nil
}
func (f *fakeUsers) UpdatePassword(_ context.Context, _ string, _ string) error { return nil }
func (f *fakeUsers) UpdateFamily(_ context.Context, _ string, _ string, _ string) error {
	return nil
}

type fakeAuthRepo struct{ users *fakeUsers }

func (f *fakeAuthRepo) NewClient(_ bool) (authRepository.Client, error) {
	return authRepository.Client{Users: f.users}, nil
}

type fakeExpenses struct {
	since        []entity.Expense
	byCategory   []entity.Expense
	top          []entity.Expense
	breakdown    []expense.CategoryTotal
	daily        []expense.DailyTotal
	agg          expense.Aggregate
	sum          float64
	sumBetweenFn func(from, to time.Time) float64
	created      []entity.Expense
}

func (f *fakeExpenses) CreateExpense(_ context.Context, exp entity.Expense) error {
	f.created = append(f.created, exp)
	return nil
}
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
	return f.since, nil
}
func (f *fakeExpenses) GetByCategoryBetween(_ context.Context, _, _ string, _, _ time.Time, _ int) ([]entity.Expense, error) {
	return f.byCategory, nil
}
func (f *fakeExpenses) GetTopByAmount(_ context.Context, _ string, _, _ time.Time, _ int) ([]entity.Expense, error) {
	return f.top, nil
}
func (f *fakeExpenses) SumByFamily(_ context.Context, _ string) (float64, error) {
	return f.sum, nil
}
func (f *fakeExpenses) SumByFamilyBetween(_ context.Context, _ string, from, to time.Time) (float64, error) {
	if f.sumBetweenFn != nil {
		return f.sumBetweenFn(from, to), nil
	}
	return f.sum, nil
}
func (f *fakeExpenses) AggregateBetween(_ context.Context, _ string, _, _ time.Time) (expense.Aggregate, error) {
	return f.agg, nil
}
func (f *fakeExpenses) CategoryBreakdown(_ context.Context, _ string, _, _ time.Time) ([]expense.CategoryTotal, error) {
	return f.breakdown, nil
}
func (f *fakeExpenses) DailyTotals(_ context.Context, _ string, _, _ time.Time) ([]expense.DailyTotal, error) {
	return f.daily, nil
}

type fakeExpenseRepo struct{ expenses *fakeExpenses }

func (f *fakeExpenseRepo) NewClient(_ bool) (expenseRepository.Client, error) {
	return expenseRepository.Client{Expenses: f.expenses}, nil
}

type fakeBudgets struct {
	latest    entity.Budget
	latestErr error
}

func (f *fakeBudgets) CreateBudget(_ context.Context, _ entity.Budget) error { return nil }
func (f *fakeBudgets) GetByID(_ context.Context, _ string) (entity.Budget, error) {
	return f.latest, f.latestErr
}
func (f *fakeBudgets) GetLatestByFamily(_ context.Context, _ string) (entity.Budget, error) {
	return f.latest, f.latestErr
}
func (f *fakeBudgets) UpdateBudget(_ context.Context, _ entity.Budget) error { return nil }
func (f *fakeBudgets) DeleteBudget(_ context.Context, _ string) error        { return nil }

type fakeBudgetRepo struct{ budgets *fakeBudgets }

func (f *fakeBudgetRepo) NewClient(_ bool) (budgetRepository.Client, error) {
	return budgetRepository.Client{Budgets: f.budgets}, nil
}

type fakeNotifications struct {
	created []entity.Notification
}

func (f *fakeNotifications) CreateNotification(_ context.Context, notif entity.Notification) error {
	f.created = append(f.created, notif)
	return nil
}
func (f *fakeNotifications) GetByID(_ context.Context, _ string) (entity.Notification, error) {
	return entity.Notification{}, nil
}
func (f *fakeNotifications) GetByFamily(_ context.Context, _ string) ([]entity.Notification, error) {
	return nil, nil
}
func (f *fakeNotifications) CountUnread(_ context.Context, _ string) (int, error) { return 0, nil }
func (f *fakeNotifications) MarkSeen(_ context.Context, _ string) error           { return nil }
func (f *fakeNotifications) MarkAllSeen(_ context.Context, _ string) error        { return nil }

type fakeNotificationRepo struct{ notifications *fakeNotifications }

func (f *fakeNotificationRepo) NewClient(_ bool) (notificationRepository.Client, error) {
	return notificationRepository.Client{Notifications: f.notifications}, nil
}

// fakeTranslator substitutes a canned English text and detected language and
// passes everything else through untouched.
type fakeTranslator struct {
	detected  string
	toEnglish string
}

func (f *fakeTranslator) DetectLanguage(_ context.Context, _ string) string {
	if f.detected == "" {
		return "en"
	}
	return f.detected
}
func (f *fakeTranslator) TranslateToEnglish(_ context.Context, text string) translator.Result {
	english := f.toEnglish
	if english == "" {
		english = text
	}
	detected := f.detected
	if detected == "" {
		detected = "en"
	}
	return translator.Result{Text: english, DetectedLanguage: detected, Confidence: 100}
}
func (f *fakeTranslator) TranslateFromEnglish(_ context.Context, text, _ string) string {
	return text
}
func (f *fakeTranslator) Translate(_ context.Context, text, _ string) string { return text }

type fakeUtils struct{ n int }

func (f *fakeUtils) NewULIDFromTimestamp(_ time.Time) (string, error) {
	f.n++
	return fmt.Sprintf("01TESTULID%05d", f.n), nil
}

type testEnv struct {
	service       *chatService
	users         *fakeUsers
	expenses      *fakeExpenses
	budgets       *fakeBudgets
	notifications *fakeNotifications
	translator    *fakeTranslator
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users: &fakeUsers{user: entity.User{
			ID:       "user-1",
			Name:     "Asha",
			Email:    "asha@example.com",
			Role:     string(entity.RoleMember),
			FamilyID: "family-1",
		}},
		expenses:      &fakeExpenses{},
		budgets:       &fakeBudgets{latestErr: budget.ErrBudgetNotFound},
		notifications: &fakeNotifications{},
		translator:    &fakeTranslator{},
	}

	logger := logrus.New()

	env.service = &chatService{
		log:              logger,
		expenseRepo:      &fakeExpenseRepo{expenses: env.expenses},
		budgetRepo:       &fakeBudgetRepo{budgets: env.budgets},
		authRepo:         &fakeAuthRepo{users: env.users},
		notificationRepo: &fakeNotificationRepo{notifications: env.notifications},
		translator:       env.translator,
		utils:            &fakeUtils{},
		now:              func() time.Time { return fixedNow },
	}

	return env
}

func TestQueryRequiresFamily(t *testing.T) {
	env := newTestEnv()
	env.users.user.FamilyID = ""

	_, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "total spending"})
	require.ErrorIs(t, err, family.ErrNotInFamily)
}

func TestQueryTodayNoExpenses(t *testing.T) {
	env := newTestEnv()

	res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "show today's expenses"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "expenses_list", res.Type)
	assert.Equal(t, "No expenses recorded for today yet.", res.Content)
}

func TestQueryTodayExpenses(t *testing.T) {
	env := newTestEnv()
	env.expenses.since = []entity.Expense{
		{Amount: 120, Category: "Food", Description: "lunch"},
		{Amount: 80, Category: "Transport"},
	}

	res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "today"})
	require.NoError(t, err)

	data, ok := res.Data.(chat.ExpenseListData)
	require.True(t, ok)
	assert.Equal(t, float64(200), data.Total)
	assert.Equal(t, 2, data.Count)
	assert.Contains(t, res.Content, "Total: ₹200.00")
	assert.Contains(t, res.Content, "• ₹120.00 - Food (lunch)")
	assert.Contains(t, res.Content, "• ₹80.00 - Transport")
}

func TestQueryUnknownGetsHelp(t *testing.T) {
	env := newTestEnv()

	res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "hello"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "help", res.Type)
	assert.Contains(t, res.Content, "I can help you with")
}

func TestQueryAddExpenseKeepsRawCategory(t *testing.T) {
	env := newTestEnv()

	res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "500 for chai"})
	require.NoError(t, err)

	assert.Equal(t, "expense_added", res.Type)
	require.Len(t, env.expenses.created, 1)
	created := env.expenses.created[0]
	assert.Equal(t, float64(500), created.Amount)
	assert.Equal(t, "chai", created.Category)
	assert.Equal(t, "500 for chai", created.Description)
	assert.Equal(t, "family-1", created.FamilyID)
	assert.Contains(t, res.Content, "Category: chai")
}

func TestQueryBudgetStatusThresholds(t *testing.T) {
	cases := []struct {
		name    string
		spent   float64
		status  string
		percent string
	}{
		{"over budget", 1010, "over budget", "101.0"},
		{"critical", 950, "critical", "95.0"},
		{"warning", 800, "warning", "80.0"},
		{"on track", 500, "on track", "50.0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()
			env.budgets.latest = entity.Budget{ID: "b1", FamilyID: "family-1", LimitAmount: 1000, Period: "monthly"}
			env.budgets.latestErr = nil
			spent := tc.spent
			env.expenses.sumBetweenFn = func(_, _ time.Time) float64 { return spent }

			res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "budget status"})
			require.NoError(t, err)

			data, ok := res.Data.(chat.BudgetStatusData)
			require.True(t, ok)
			assert.Equal(t, tc.status, data.Status)
			assert.Equal(t, tc.percent, data.PercentUsed)
			assert.Equal(t, 1000-tc.spent, data.Remaining)
		})
	}
}

func TestQueryBudgetStatusWithoutBudget(t *testing.T) {
	env := newTestEnv()

	res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "budget status"})
	require.NoError(t, err)

	assert.Equal(t, "budget_status", res.Type)
	assert.Contains(t, res.Content, "No budget set")
	assert.Nil(t, res.Data)
}

func TestQueryCategoryBreakdownPercentages(t *testing.T) {
	env := newTestEnv()
	env.expenses.breakdown = []expense.CategoryTotal{
		{Category: "Food", Total: 750, Count: 3},
		{Category: "Transport", Total: 250, Count: 1},
	}

	res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "category breakdown"})
	require.NoError(t, err)

	data, ok := res.Data.(chat.BreakdownData)
	require.True(t, ok)
	assert.Equal(t, float64(1000), data.Total)
	require.Len(t, data.Breakdown, 2)
	assert.Equal(t, "75.0", data.Breakdown[0].Percentage)
	assert.Equal(t, "25.0", data.Breakdown[1].Percentage)
	assert.Contains(t, res.Content, "• Food: ₹750.00 (75.0%) - 3 transactions")
}

func TestQueryComparePeriods(t *testing.T) {
	env := newTestEnv()
	thisMonthStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	env.expenses.sumBetweenFn = func(from, _ time.Time) float64 {
		if from.Equal(thisMonthStart) {
			return 1200
		}
		return 1000
	}

	res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "compare this month vs last"})
	require.NoError(t, err)

	data, ok := res.Data.(chat.ComparisonData)
	require.True(t, ok)
	assert.Equal(t, float64(1200), data.ThisMonth)
	assert.Equal(t, float64(1000), data.LastMonth)
	assert.Equal(t, float64(200), data.Difference)
	assert.Equal(t, "20.0", data.PercentChange)
	assert.Contains(t, res.Content, "increased")
}

func TestQueryComparePeriodsNoPriorData(t *testing.T) {
	env := newTestEnv()
	thisMonthStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	env.expenses.sumBetweenFn = func(from, _ time.Time) float64 {
		if from.Equal(thisMonthStart) {
			return 300
		}
		return 0
	}

	res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "compare spending"})
	require.NoError(t, err)

	data, ok := res.Data.(chat.ComparisonData)
	require.True(t, ok)
	assert.Equal(t, "0", data.PercentChange)
}

func TestQueryPrediction(t *testing.T) {
	env := newTestEnv()
	env.expenses.daily = []expense.DailyTotal{
		{Day: fixedNow.AddDate(0, 0, -2), Total: 100},
		{Day: fixedNow.AddDate(0, 0, -1), Total: 140},
	}
	env.expenses.sumBetweenFn = func(_, _ time.Time) float64 { return 2000 }
	env.budgets.latest = entity.Budget{LimitAmount: 3000, Period: "monthly"}
	env.budgets.latestErr = nil

	res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "predict my spending"})
	require.NoError(t, err)

	data, ok := res.Data.(chat.PredictionData)
	require.True(t, ok)
	// March has 31 days, so 16 remain after the 15th at a 120 daily average.
	assert.Equal(t, float64(120), data.DailyAverage)
	assert.Equal(t, float64(1920), data.ProjectedSpending)
	assert.Equal(t, float64(3920), data.TotalProjected)
	assert.Equal(t, float64(2000), data.CurrentSpending)
	assert.Contains(t, res.Content, "Days remaining: 16")
	assert.Contains(t, res.Content, "May exceed by ₹920.00")
}

func TestQueryPredictionWithoutBudget(t *testing.T) {
	env := newTestEnv()
	env.expenses.daily = []expense.DailyTotal{{Day: fixedNow.AddDate(0, 0, -1), Total: 100}}

	res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "predict my spending"})
	require.NoError(t, err)

	assert.Equal(t, "prediction", res.Type)
	assert.NotContains(t, res.Content, "budget")
}

func TestQueryPredictionBudgetLookupError(t *testing.T) {
	env := newTestEnv()
	env.budgets.latestErr = errors.New("connection reset")

	_, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "predict my spending"})
	require.ErrorContains(t, err, "connection reset")
}

func TestQueryAverageNoData(t *testing.T) {
	env := newTestEnv()

	res, err := env.service.Query(context.Background(), "user-1", chat.QueryRequest{Message: "average spending this week"})
	require.NoError(t, err)

	assert.Equal(t, "average", res.Type)
	assert.Equal(t, "No expenses found for week.", res.Content)
}

func TestLogExpenseSavesOriginalDescription(t *testing.T) {
	env := newTestEnv()
	env.translator.detected = "hi"
	env.translator.toEnglish = "spent 250 on groceries"
	env.expenses.sum = 1250

	res, err := env.service.LogExpense(context.Background(), "user-1", chat.LogExpenseRequest{
		Message: "किराने पर 250 खर्च किए",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	require.Len(t, env.expenses.created, 1)
	created := env.expenses.created[0]
	assert.Equal(t, "किराने पर 250 खर्च किए", created.Description)
	assert.Equal(t, float64(250), created.Amount)
	assert.Equal(t, "Food", created.Category)

	assert.Equal(t, float64(1250), res.FamilyTotal)
	require.NotNil(t, res.Language)
	assert.Equal(t, "hi", res.Language.Detected)
	assert.Equal(t, "Hindi", res.Language.Name)
	require.NotNil(t, res.ParsedData)
	assert.Equal(t, "spent 250 on groceries", res.ParsedData.TranslatedInput)
	assert.Equal(t, "nlp", res.ParsedData.Parser)

	require.Len(t, env.notifications.created, 1)
	assert.Equal(t, "user-1", env.notifications.created[0].RecipientID)
}

func TestLogExpenseDatedYesterday(t *testing.T) {
	env := newTestEnv()
	env.translator.toEnglish = "spent 250 on groceries yesterday"

	_, err := env.service.LogExpense(context.Background(), "user-1", chat.LogExpenseRequest{
		Message: "spent 250 on groceries yesterday",
	})
	require.NoError(t, err)

	require.Len(t, env.expenses.created, 1)
	assert.Equal(t, fixedNow.AddDate(0, 0, -1), env.expenses.created[0].Date)
}

func TestLogExpenseAmountMissing(t *testing.T) {
	env := newTestEnv()
	env.translator.toEnglish = "bought some groceries"

	res, err := env.service.LogExpense(context.Background(), "user-1", chat.LogExpenseRequest{
		Message: "bought some groceries",
	})
	require.ErrorIs(t, err, chat.ErrAmountNotFound)

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "Could not determine the amount")
	assert.Equal(t, "en", res.OriginalLanguage)
	require.NotNil(t, res.ParsedData)
	assert.Equal(t, "Food", res.ParsedData.Category)
	assert.Empty(t, env.expenses.created)
}

func TestLogExpenseQuestionGetsClarification(t *testing.T) {
	env := newTestEnv()
	env.translator.toEnglish = "how much did I spend on food?"

	res, err := env.service.LogExpense(context.Background(), "user-1", chat.LogExpenseRequest{
		Message: "how much did I spend on food?",
	})
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.True(t, res.NeedsClarification)
	assert.Contains(t, res.Message, "doesn't look like an expense")
	assert.Empty(t, env.expenses.created)
}

func TestParsePreviewLenient(t *testing.T) {
	env := newTestEnv()

	parsed := env.service.ParsePreview(chat.ParsePreviewRequest{Message: "spent 300 on groceries"})
	assert.Equal(t, float64(300), parsed.Amount)
	assert.Equal(t, "Food", parsed.Category)
	assert.Equal(t, 100, parsed.Confidence)
	assert.False(t, parsed.NeedsClarification)
}
