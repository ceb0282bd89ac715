package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// IntentType enumerates what a chat message is asking for.
type IntentType string

const (
	IntentViewTodayExpenses  IntentType = "VIEW_TODAY_EXPENSES"
	IntentViewRecentExpenses IntentType = "VIEW_RECENT_EXPENSES"
	IntentCategoryBreakdown  IntentType = "CATEGORY_BREAKDOWN"
	IntentTotalSpending      IntentType = "TOTAL_SPENDING"
	IntentBudgetStatus       IntentType = "BUDGET_STATUS"
	IntentBudgetPrediction   IntentType = "BUDGET_PREDICTION"
	IntentSpendingTrends     IntentType = "SPENDING_TRENDS"
	IntentTopExpenses        IntentType = "TOP_EXPENSES"
	IntentAverageSpending    IntentType = "AVERAGE_SPENDING"
	IntentComparePeriods     IntentType = "COMPARE_PERIODS"
	IntentCategorySpecific   IntentType = "CATEGORY_SPECIFIC"
	IntentAddExpense         IntentType = "ADD_EXPENSE"
	IntentUnknown            IntentType = "UNKNOWN"
)

// ExpenseDraft carries the fields extracted for an ADD_EXPENSE intent. The
// category is the raw word following the number, not validated against the
// category enumeration.
type ExpenseDraft struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// Intent is the classified purpose of a chat message plus its extracted
// parameters. It lives for a single request.
type Intent struct {
	Type     IntentType    `json:"type"`
	Category string        `json:"category,omitempty"`
	Period   string        `json:"period,omitempty"`
	Days     int           `json:"days,omitempty"`
	Data     *ExpenseDraft `json:"data,omitempty"`
}

var (
	recentPattern       = regexp.MustCompile(`(?:last|past|recent)\s*(\d+)?\s*(?:days?|weeks?)`)
	breakdownPattern    = regexp.MustCompile(`category|categories|breakdown|distribution`)
	totalPattern        = regexp.MustCompile(`total|sum|how much.*spent`)
	budgetStatusPattern = regexp.MustCompile(`budget.*status|remaining.*budget|budget.*left|how.*budget`)
	predictionPattern   = regexp.MustCompile(`predict|forecast|projection|will.*spend|expect`)
	trendsPattern       = regexp.MustCompile(`trend|pattern|analysis|insights`)
	topPattern          = regexp.MustCompile(`top|highest|biggest|largest`)
	averagePattern      = regexp.MustCompile(`average|avg|mean`)
	comparePattern      = regexp.MustCompile(`compare|vs|versus|difference`)
	categoryNamePattern = regexp.MustCompile(`food|transport|shopping|bills|entertainment|health|education|other`)
	addExpensePattern   = regexp.MustCompile(`(\d+)\s*(?:for|on|spent.*on)?\s*(\w+)`)
)

type intentRule struct {
	matches func(lower string) bool
	build   func(original, lower string) Intent
}

// The rule cascade is evaluated strictly in order and the first hit wins.
// The order is load-bearing: the literal category-name rule sits near the
// bottom so that e.g. "food breakdown" classifies as a breakdown rather than
// a category query. Reordering silently changes classifications.
var intentRules = []intentRule{
	{
		matches: func(lower string) bool { return strings.Contains(lower, "today") },
		build: func(_, _ string) Intent {
			return Intent{Type: IntentViewTodayExpenses}
		},
	},
	{
		matches: func(lower string) bool {
			return recentPattern.MatchString(lower) || strings.Contains(lower, "recent")
		},
		build: func(_, lower string) Intent {
			days := 7
			if match := recentPattern.FindStringSubmatch(lower); match != nil && match[1] != "" {
				days, _ = strconv.Atoi(match[1])
			}
			if strings.Contains(lower, "week") {
				days *= 7
			}
			return Intent{Type: IntentViewRecentExpenses, Days: days}
		},
	},
	{
		matches: breakdownPattern.MatchString,
		build: func(_, lower string) Intent {
			return Intent{Type: IntentCategoryBreakdown, Period: ExtractPeriod(lower)}
		},
	},
	{
		matches: totalPattern.MatchString,
		build: func(_, lower string) Intent {
			return Intent{Type: IntentTotalSpending, Period: ExtractPeriod(lower)}
		},
	},
	{
		matches: budgetStatusPattern.MatchString,
		build: func(_, _ string) Intent {
			return Intent{Type: IntentBudgetStatus}
		},
	},
	{
		matches: predictionPattern.MatchString,
		build: func(_, _ string) Intent {
			return Intent{Type: IntentBudgetPrediction}
		},
	},
	{
		matches: trendsPattern.MatchString,
		build: func(_, lower string) Intent {
			return Intent{Type: IntentSpendingTrends, Period: ExtractPeriod(lower)}
		},
	},
	{
		matches: topPattern.MatchString,
		build: func(_, lower string) Intent {
			return Intent{Type: IntentTopExpenses, Period: ExtractPeriod(lower)}
		},
	},
	{
		matches: averagePattern.MatchString,
		build: func(_, lower string) Intent {
			return Intent{Type: IntentAverageSpending, Period: ExtractPeriod(lower)}
		},
	},
	{
		matches: comparePattern.MatchString,
		build: func(_, lower string) Intent {
			return Intent{Type: IntentComparePeriods, Period: ExtractPeriod(lower)}
		},
	},
	{
		matches: categoryNamePattern.MatchString,
		build: func(_, lower string) Intent {
			return Intent{
				Type:     IntentCategorySpecific,
				Category: categoryNamePattern.FindString(lower),
				Period:   ExtractPeriod(lower),
			}
		},
	},
	{
		matches: addExpensePattern.MatchString,
		build: func(original, lower string) Intent {
			match := addExpensePattern.FindStringSubmatch(lower)
			amount, _ := strconv.ParseFloat(match[1], 64)
			return Intent{
				Type: IntentAddExpense,
				Data: &ExpenseDraft{
					Amount:      amount,
					Category:    match[2],
					Description: original,
				},
			}
		},
	},
}

// AnalyzeIntent classifies a chat message into one of the intent types.
func AnalyzeIntent(message string) Intent {
	lower := strings.ToLower(strings.TrimSpace(message))

	for _, rule := range intentRules {
		if rule.matches(lower) {
			return rule.build(message, lower)
		}
	}

	return Intent{Type: IntentUnknown}
}

// ExtractPeriod maps a message onto a symbolic period, defaulting to month.
func ExtractPeriod(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "today"):
		return "today"
	case strings.Contains(lower, "week"), strings.Contains(lower, "7 days"):
		return "week"
	case strings.Contains(lower, "month"):
		return "month"
	case strings.Contains(lower, "year"):
		return "year"
	default:
		return "month"
	}
}
