package chatService

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"parivar/internal/api/budget"
	"parivar/internal/api/chat"
	"parivar/internal/entity"
	"parivar/pkg/nlp"

	"golang.org/x/net/context"
)

const listLimit = 20

// ProcessIntent dispatches a classified intent to its response builder. The
// help response doubles as the fallback for UNKNOWN.
func (s *chatService) ProcessIntent(c context.Context, intent nlp.Intent, userID, familyID string) (chat.QueryResponse, error) {
	switch intent.Type {
	case nlp.IntentViewTodayExpenses:
		return s.todayExpensesResponse(c, familyID)
	case nlp.IntentViewRecentExpenses:
		return s.recentExpensesResponse(c, familyID, intent.Days)
	case nlp.IntentCategoryBreakdown:
		return s.categoryBreakdownResponse(c, familyID, intent.Period)
	case nlp.IntentTotalSpending:
		return s.totalSpendingResponse(c, familyID, intent.Period)
	case nlp.IntentBudgetStatus:
		return s.budgetStatusResponse(c, familyID)
	case nlp.IntentBudgetPrediction:
		return s.budgetPredictionResponse(c, familyID)
	case nlp.IntentSpendingTrends:
		return s.spendingTrendsResponse(c, familyID, intent.Period)
	case nlp.IntentCategorySpecific:
		return s.categorySpecificResponse(c, familyID, intent.Category, intent.Period)
	case nlp.IntentTopExpenses:
		return s.topExpensesResponse(c, familyID, intent.Period)
	case nlp.IntentAverageSpending:
		return s.averageSpendingResponse(c, familyID, intent.Period)
	case nlp.IntentComparePeriods:
		return s.comparePeriodsResponse(c, familyID)
	case nlp.IntentAddExpense:
		return s.addExpenseResponse(c, userID, familyID, intent.Data)
	default:
		return s.helpResponse(), nil
	}
}

// periodDates resolves a symbolic period to a [start, end) window ending now.
func (s *chatService) periodDates(period string) (time.Time, time.Time) {
	end := s.now()
	var start time.Time

	switch strings.ToLower(period) {
	case "today":
		start = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	case "week":
		start = end.AddDate(0, 0, -7)
	case "year":
		start = end.AddDate(-1, 0, 0)
	default:
		start = end.AddDate(0, -1, 0)
	}

	return start, end
}

func windowDays(start, end time.Time) float64 {
	return math.Ceil(end.Sub(start).Hours() / 24)
}

func formatExpenseLines(expenses []entity.Expense) string {
	lines := make([]string, 0, len(expenses))
	for _, exp := range expenses {
		line := fmt.Sprintf("• ₹%.2f - %s", exp.Amount, exp.Category)
		if exp.Description != "" {
			line += fmt.Sprintf(" (%s)", exp.Description)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (s *chatService) todayExpensesResponse(c context.Context, familyID string) (chat.QueryResponse, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	expenses, err := expenseRepo.Expenses.GetByFamilySince(c, familyID, start, listLimit)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	if len(expenses) == 0 {
		return chat.QueryResponse{
			Type:    "expenses_list",
			Content: "No expenses recorded for today yet.",
			Data:    chat.ExpenseListData{Expenses: []entity.Expense{}},
		}, nil
	}

	var total float64
	for _, exp := range expenses {
		total += exp.Amount
	}

	return chat.QueryResponse{
		Type: "expenses_list",
		Content: fmt.Sprintf("📊 Today's Expenses\n\nTotal: ₹%.2f\nCount: %d\n\n%s",
			total, len(expenses), formatExpenseLines(expenses)),
		Data: chat.ExpenseListData{Expenses: expenses, Total: total, Count: len(expenses)},
	}, nil
}

func (s *chatService) recentExpensesResponse(c context.Context, familyID string, days int) (chat.QueryResponse, error) {
	now := s.now()
	start := now.AddDate(0, 0, -days)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	expenses, err := expenseRepo.Expenses.GetByFamilySince(c, familyID, start, listLimit)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	if len(expenses) == 0 {
		return chat.QueryResponse{
			Type:    "expenses_list",
			Content: fmt.Sprintf("No expenses found in the last %d days.", days),
			Data:    chat.ExpenseListData{Expenses: []entity.Expense{}},
		}, nil
	}

	var total float64
	for _, exp := range expenses {
		total += exp.Amount
	}

	return chat.QueryResponse{
		Type: "expenses_list",
		Content: fmt.Sprintf("📊 Expenses from last %d days\n\nTotal: ₹%.2f\nCount: %d\n\n%s",
			days, total, len(expenses), formatExpenseLines(expenses)),
		Data: chat.ExpenseListData{Expenses: expenses, Total: total, Count: len(expenses)},
	}, nil
}

func (s *chatService) categoryBreakdownResponse(c context.Context, familyID, period string) (chat.QueryResponse, error) {
	start, end := s.periodDates(period)

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	breakdown, err := expenseRepo.Expenses.CategoryBreakdown(c, familyID, start, end)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	if len(breakdown) == 0 {
		return chat.QueryResponse{
			Type:    "category_breakdown",
			Content: fmt.Sprintf("No expenses found for %s.", period),
			Data:    chat.BreakdownData{Breakdown: []chat.BreakdownItem{}},
		}, nil
	}

	var total float64
	for _, item := range breakdown {
		total += item.Total
	}

	items := make([]chat.BreakdownItem, 0, len(breakdown))
	lines := make([]string, 0, len(breakdown))
	for _, item := range breakdown {
		entry := chat.BreakdownItem{
			Category:   item.Category,
			Amount:     item.Total,
			Count:      item.Count,
			Percentage: fmt.Sprintf("%.1f", item.Total/total*100),
		}
		items = append(items, entry)
		lines = append(lines, fmt.Sprintf("• %s: ₹%.2f (%s%%) - %d transactions",
			entry.Category, entry.Amount, entry.Percentage, entry.Count))
	}

	return chat.QueryResponse{
		Type: "category_breakdown",
		Content: fmt.Sprintf("📊 Category Breakdown (%s)\n\nTotal: ₹%.2f\n\n%s",
			period, total, strings.Join(lines, "\n")),
		Data: chat.BreakdownData{Breakdown: items, Total: total},
	}, nil
}

func (s *chatService) totalSpendingResponse(c context.Context, familyID, period string) (chat.QueryResponse, error) {
	start, end := s.periodDates(period)

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	agg, err := expenseRepo.Expenses.AggregateBetween(c, familyID, start, end)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	return chat.QueryResponse{
		Type: "total",
		Content: fmt.Sprintf("💰 Total Spending (%s)\n\nAmount: ₹%.2f\nTransactions: %d",
			period, agg.Total, agg.Count),
		Data: chat.TotalData{Total: agg.Total, Period: period, Count: agg.Count},
	}, nil
}

func (s *chatService) budgetStatusResponse(c context.Context, familyID string) (chat.QueryResponse, error) {
	budgetRepo, err := s.budgetRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	bgt, err := budgetRepo.Budgets.GetLatestByFamily(c, familyID)
	if err != nil {
		if errors.Is(err, budget.ErrBudgetNotFound) {
			return chat.QueryResponse{
				Type:    "budget_status",
				Content: "❌ No budget set. Please set a budget to track your spending.",
			}, nil
		}
		return chat.QueryResponse{}, err
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
		return chat.QueryResponse{}, err
	}

	spent, err := expenseRepo.Expenses.SumByFamilyBetween(c, familyID, start, now)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	remaining := bgt.LimitAmount - spent
	percentUsed := spent / bgt.LimitAmount * 100

	status := "on track"
	emoji := "✅"
	switch {
	case percentUsed > 100:
		status = "over budget"
		emoji = "🚨"
	case percentUsed > 90:
		status = "critical"
		emoji = "⚠️"
	case percentUsed > 75:
		status = "warning"
		emoji = "⚡"
	}

	percent := fmt.Sprintf("%.1f", percentUsed)

	return chat.QueryResponse{
		Type: "budget_status",
		Content: fmt.Sprintf("%s Budget Status (%s)\n\nBudget: ₹%.2f\nSpent: ₹%.2f\nRemaining: ₹%.2f\n\n%s%% used - %s",
			emoji, bgt.Period, bgt.LimitAmount, spent, remaining, percent, status),
		Data: chat.BudgetStatusData{
			Budget:      bgt.LimitAmount,
			Spent:       spent,
			Remaining:   remaining,
			PercentUsed: percent,
			Status:      status,
			Period:      bgt.Period,
		},
	}, nil
}

func (s *chatService) budgetPredictionResponse(c context.Context, familyID string) (chat.QueryResponse, error) {
	now := s.now()

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	dailyTotals, err := expenseRepo.Expenses.DailyTotals(c, familyID, now.AddDate(0, 0, -30), now)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	var dailyAverage float64
	if len(dailyTotals) > 0 {
		var sum float64
		for _, day := range dailyTotals {
			sum += day.Total
		}
		dailyAverage = sum / float64(len(dailyTotals))
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	currentSpending, err := expenseRepo.Expenses.SumByFamilyBetween(c, familyID, startOfMonth, now)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	daysRemaining := daysInMonth - now.Day()

	projectedSpending := dailyAverage * float64(daysRemaining)
	totalProjected := currentSpending + projectedSpending

	var budgetComparison string
	budgetRepo, err := s.budgetRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}
	bgt, err := budgetRepo.Budgets.GetLatestByFamily(c, familyID)
	if err != nil && !errors.Is(err, budget.ErrBudgetNotFound) {
		return chat.QueryResponse{}, err
	}
	if err == nil {
		difference := math.Abs(totalProjected - bgt.LimitAmount)
		verdict := fmt.Sprintf("✅ Should stay within budget (₹%.2f buffer)", difference)
		if totalProjected > bgt.LimitAmount {
			verdict = fmt.Sprintf("⚠️ May exceed by ₹%.2f", difference)
		}
		budgetComparison = fmt.Sprintf("\n\nYour %s budget: ₹%.2f\n%s", bgt.Period, bgt.LimitAmount, verdict)
	}

	return chat.QueryResponse{
		Type: "prediction",
		Content: fmt.Sprintf("📈 Spending Prediction\n\nDaily average: ₹%.2f\nCurrent month: ₹%.2f\nProjected total: ₹%.2f\nDays remaining: %d%s",
			dailyAverage, currentSpending, totalProjected, daysRemaining, budgetComparison),
		Data: chat.PredictionData{
			DailyAverage:      dailyAverage,
			ProjectedSpending: projectedSpending,
			TotalProjected:    totalProjected,
			CurrentSpending:   currentSpending,
		},
	}, nil
}

func (s *chatService) spendingTrendsResponse(c context.Context, familyID, period string) (chat.QueryResponse, error) {
	start, end := s.periodDates(period)

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	breakdown, err := expenseRepo.Expenses.CategoryBreakdown(c, familyID, start, end)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	if len(breakdown) == 0 {
		return chat.QueryResponse{
			Type:    "trends",
			Content: fmt.Sprintf("No spending data available for %s", period),
		}, nil
	}

	var total float64
	for _, item := range breakdown {
		total += item.Total
	}
	top := breakdown[0]
	dailyAverage := total / windowDays(start, end)

	return chat.QueryResponse{
		Type: "trends",
		Content: fmt.Sprintf("📈 Spending Trends (%s)\n\nTotal: ₹%.2f\nDaily avg: ₹%.2f\n\nTop category: %s\n  Amount: ₹%.2f\n  Count: %d transactions",
			period, total, dailyAverage, top.Category, top.Total, top.Count),
		Data: chat.TrendsData{
			TopCategory:       top.Category,
			TopCategoryAmount: top.Total,
			Total:             total,
			DailyAverage:      dailyAverage,
		},
	}, nil
}

func (s *chatService) categorySpecificResponse(c context.Context, familyID, category, period string) (chat.QueryResponse, error) {
	start, end := s.periodDates(period)

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	expenses, err := expenseRepo.Expenses.GetByCategoryBetween(c, familyID, category, start, end, 10)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	var total float64
	for _, exp := range expenses {
		total += exp.Amount
	}
	var average float64
	if len(expenses) > 0 {
		average = total / float64(len(expenses))
	}

	var recent string
	if len(expenses) > 0 {
		lines := make([]string, 0, len(expenses))
		for _, exp := range expenses {
			description := exp.Description
			if description == "" {
				description = "No description"
			}
			lines = append(lines, fmt.Sprintf("• ₹%.2f - %s", exp.Amount, description))
		}
		recent = "\n\nRecent transactions:\n" + strings.Join(lines, "\n")
	}

	title := strings.ToUpper(category[:1]) + category[1:]

	return chat.QueryResponse{
		Type: "category_specific",
		Content: fmt.Sprintf("📊 %s Expenses (%s)\n\nTotal: ₹%.2f\nTransactions: %d\nAverage: ₹%.2f%s",
			title, period, total, len(expenses), average, recent),
		Data: chat.CategorySpecificData{
			Category: category,
			Total:    total,
			Count:    len(expenses),
			Average:  average,
			Expenses: expenses,
		},
	}, nil
}

func (s *chatService) topExpensesResponse(c context.Context, familyID, period string) (chat.QueryResponse, error) {
	start, end := s.periodDates(period)

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	expenses, err := expenseRepo.Expenses.GetTopByAmount(c, familyID, start, end, 10)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	if len(expenses) == 0 {
		return chat.QueryResponse{
			Type:    "top_expenses",
			Content: fmt.Sprintf("No expenses found for %s.", period),
			Data:    chat.TopExpensesData{Expenses: []entity.Expense{}},
		}, nil
	}

	lines := make([]string, 0, len(expenses))
	for i, exp := range expenses {
		line := fmt.Sprintf("%d. ₹%.2f - %s", i+1, exp.Amount, exp.Category)
		if exp.Description != "" {
			line += fmt.Sprintf(" (%s)", exp.Description)
		}
		lines = append(lines, line)
	}

	return chat.QueryResponse{
		Type:    "top_expenses",
		Content: fmt.Sprintf("🏆 Top Expenses (%s)\n\n%s", period, strings.Join(lines, "\n")),
		Data:    chat.TopExpensesData{Expenses: expenses},
	}, nil
}

func (s *chatService) averageSpendingResponse(c context.Context, familyID, period string) (chat.QueryResponse, error) {
	start, end := s.periodDates(period)

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	agg, err := expenseRepo.Expenses.AggregateBetween(c, familyID, start, end)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	if agg.Count == 0 {
		return chat.QueryResponse{
			Type:    "average",
			Content: fmt.Sprintf("No expenses found for %s.", period),
		}, nil
	}

	perDay := agg.Total / windowDays(start, end)

	return chat.QueryResponse{
		Type: "average",
		Content: fmt.Sprintf("📊 Average Spending (%s)\n\nPer transaction: ₹%.2f\nPer day: ₹%.2f\nTotal: ₹%.2f\nTransactions: %d",
			period, agg.Average, perDay, agg.Total, agg.Count),
		Data: chat.AverageData{
			PerTransaction: agg.Average,
			PerDay:         perDay,
			Total:          agg.Total,
			Count:          agg.Count,
		},
	}, nil
}

func (s *chatService) comparePeriodsResponse(c context.Context, familyID string) (chat.QueryResponse, error) {
	now := s.now()
	thisMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := thisMonthStart.AddDate(0, -1, 0)

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	thisMonth, err := expenseRepo.Expenses.SumByFamilyBetween(c, familyID, thisMonthStart, now)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	lastMonth, err := expenseRepo.Expenses.SumByFamilyBetween(c, familyID, lastMonthStart, thisMonthStart)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	difference := thisMonth - lastMonth
	percentChange := "0"
	if lastMonth > 0 {
		percentChange = fmt.Sprintf("%.1f", difference/lastMonth*100)
	}

	comparison := "➡️ same"
	if difference > 0 {
		comparison = "📈 increased"
	} else if difference < 0 {
		comparison = "📉 decreased"
	}

	return chat.QueryResponse{
		Type: "comparison",
		Content: fmt.Sprintf("📊 Month Comparison\n\nThis month: ₹%.2f\nLast month: ₹%.2f\n\nDifference: ₹%.2f (%s%%)\n%s",
			thisMonth, lastMonth, math.Abs(difference), percentChange, comparison),
		Data: chat.ComparisonData{
			ThisMonth:     thisMonth,
			LastMonth:     lastMonth,
			Difference:    difference,
			PercentChange: percentChange,
		},
	}, nil
}

func (s *chatService) addExpenseResponse(c context.Context, userID, familyID string, draft *nlp.ExpenseDraft) (chat.QueryResponse, error) {
	id, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		return chat.QueryResponse{}, err
	}

	description := draft.Description
	if description == "" {
		description = fmt.Sprintf("%g for %s", draft.Amount, draft.Category)
	}

	// The category here is the raw word from the message, on purpose. Chat
	// entries keep whatever the user typed rather than snapping to the enum.
	exp := entity.Expense{
		ID:          id,
		UserID:      userID,
		FamilyID:    familyID,
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: description,
		Date:        s.now(),
	}

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	if err := expenseRepo.Expenses.CreateExpense(c, exp); err != nil {
		return chat.QueryResponse{}, err
	}

	return chat.QueryResponse{
		Type:    "expense_added",
		Content: fmt.Sprintf("✅ Added expense\n\nAmount: ₹%.2f\nCategory: %s", draft.Amount, draft.Category),
		Data:    exp,
	}, nil
}

func (s *chatService) helpResponse() chat.QueryResponse {
	return chat.QueryResponse{
		Type:    "help",
		Content: "👋 I can help you with:\n\n📊 View expenses:\n  • \"show today's expenses\"\n  • \"last 7 days\"\n  • \"recent expenses\"\n\n💰 Budget info:\n  • \"budget status\"\n  • \"predict spending\"\n\n📈 Analytics:\n  • \"category breakdown\"\n  • \"spending trends\"\n  • \"top expenses\"\n  • \"compare this month vs last\"\n\n➕ Add expense:\n  • \"500 for food\"\n  • \"200 on transport\"\n\nWhat would you like to know?",
	}
}
