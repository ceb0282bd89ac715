package chat

import (
	"time"

	"parivar/internal/entity"
)

type QueryRequest struct {
	Message string `json:"message" validate:"required"`
}

// QueryResponse is the envelope for every chat query answer. Data carries a
// response-type specific payload and may be nil.
type QueryResponse struct {
	Success bool        `json:"success"`
	Type    string      `json:"type"`
	Content string      `json:"content"`
	Data    interface{} `json:"data"`
}

type LogExpenseRequest struct {
	Message string `json:"message" validate:"required"`
}

type ParsePreviewRequest struct {
	Message string `json:"message" validate:"required"`
}

type LoggedExpense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

type ParsedData struct {
	Amount           float64 `json:"amount"`
	Category         string  `json:"category"`
	Confidence       int     `json:"confidence"`
	Parser           string  `json:"parser"`
	DetectedLanguage string  `json:"detectedLanguage"`
	TranslatedInput  string  `json:"translatedInput"`
}

type LanguageInfo struct {
	Detected string `json:"detected"`
	Name     string `json:"name"`
}

type LogExpenseResponse struct {
	Success            bool           `json:"success"`
	Expense            *LoggedExpense `json:"expense,omitempty"`
	Message            string         `json:"message"`
	NeedsClarification bool           `json:"needsClarification,omitempty"`
	OriginalLanguage   string         `json:"originalLanguage,omitempty"`
	ParsedData         *ParsedData    `json:"parsedData,omitempty"`
	FamilyTotal        float64        `json:"familyTotal,omitempty"`
	Language           *LanguageInfo  `json:"language,omitempty"`
}

// Payloads attached to QueryResponse.Data, one per response type.

type ExpenseListData struct {
	Expenses []entity.Expense `json:"expenses"`
	Total    float64          `json:"total"`
	Count    int              `json:"count"`
}

type BreakdownItem struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage string  `json:"percentage"`
}

type BreakdownData struct {
	Breakdown []BreakdownItem `json:"breakdown"`
	Total     float64         `json:"total"`
}

type TotalData struct {
	Total  float64 `json:"total"`
	Period string  `json:"period"`
	Count  int     `json:"count"`
}

type BudgetStatusData struct {
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed string  `json:"percentUsed"`
	Status      string  `json:"status"`
	Period      string  `json:"period"`
}

type PredictionData struct {
	DailyAverage      float64 `json:"dailyAverage"`
	ProjectedSpending float64 `json:"projectedSpending"`
	TotalProjected    float64 `json:"totalProjected"`
	CurrentSpending   float64 `json:"currentSpending"`
}

type TrendsData struct {
	TopCategory       string  `json:"topCategory"`
	TopCategoryAmount float64 `json:"topCategoryAmount"`
	Total             float64 `json:"total"`
	DailyAverage      float64 `json:"dailyAverage"`
}

type CategorySpecificData struct {
	Category string           `json:"category"`
	Total    float64          `json:"total"`
	Count    int              `json:"count"`
	Average  float64          `json:"average"`
	Expenses []entity.Expense `json:"expenses"`
}

type TopExpensesData struct {
	Expenses []entity.Expense `json:"expenses"`
}

type AverageData struct {
	PerTransaction float64 `json:"perTransaction"`
	PerDay         float64 `json:"perDay"`
	Total          float64 `json:"total"`
	Count          int     `json:"count"`
}

type ComparisonData struct {
	ThisMonth     float64 `json:"thisMonth"`
	LastMonth     float64 `json:"lastMonth"`
	Difference    float64 `json:"difference"`
	PercentChange string  `json:"percentChange"`
}
