package nlp

import "strings"

// ParsedExpense is the result of running the rule-based parser over a chat
// message. Confidence is a 0-100 heuristic; NeedsClarification flags parses
// the caller should confirm with the user before persisting.
type ParsedExpense struct {
	Amount                float64 `json:"amount"`
	Category              string  `json:"category"`
	Description           string  `json:"description"`
	Confidence            int     `json:"confidence"`
	NeedsClarification    bool    `json:"needs_clarification"`
	ClarificationQuestion string  `json:"clarification_question,omitempty"`
}

// Confidence thresholds used by Parse. DefaultThreshold applies unless the
// caller asks for a high-confidence parse.
const (
	DefaultThreshold        = 50
	HighConfidenceThreshold = 80
	clarifyBelow            = 70
)

// ParseStrict runs the full extraction pipeline and scores from a zero base:
// +50 for a detected amount, +30 for a non-Other category, +20 for inputs
// longer than 10 characters. The quick path in ParseLenient scores from a
// different base; the two formulas are intentionally separate.
func ParseStrict(text string) ParsedExpense {
	amount := ExtractAmount(text)
	category, _ := categorize(text)

	confidence := 0
	if amount > 0 {
		confidence += 50
	}
	if category != CategoryOther {
		confidence += 30
	}
	if len(text) > 10 {
		confidence += 20
	}

	return ParsedExpense{
		Amount:      amount,
		Category:    category,
		Description: strings.TrimSpace(text),
		Confidence:  clampConfidence(confidence),
	}
}

// ParseLenient is the forgiving variant used for parse previews: a 50 base,
// +30 for an amount, +20 for at least one category keyword hit. It flags
// clarification below 70 or when no amount was found.
func ParseLenient(text string) ParsedExpense {
	amount := simpleAmount(text)
	category, votes := categorize(text)

	confidence := 50
	if amount > 0 {
		confidence += 30
	}
	if votes > 0 {
		confidence += 20
	}
	confidence = clampConfidence(confidence)

	parsed := ParsedExpense{
		Amount:             amount,
		Category:           category,
		Description:        strings.TrimSpace(text),
		Confidence:         confidence,
		NeedsClarification: confidence < clarifyBelow || amount == 0,
	}
	if confidence < clarifyBelow {
		parsed.ClarificationQuestion = "Could you provide more details about the amount and category?"
	}

	return parsed
}

// Parse is the main entry point for logging expenses from chat. Questions are
// rejected up front with a clarification instead of an error; otherwise the
// strict pipeline runs and the clarification flag is set against the default
// or high-confidence threshold.
func Parse(text string, requireHighConfidence bool) ParsedExpense {
	if !IsExpenseEntry(text) {
		return ParsedExpense{
			Category:              CategoryOther,
			Description:           text,
			NeedsClarification:    true,
			ClarificationQuestion: "This doesn't look like an expense. Did you want to ask a question instead?",
		}
	}

	parsed := ParseStrict(text)

	threshold := DefaultThreshold
	if requireHighConfidence {
		threshold = HighConfidenceThreshold
	}
	parsed.NeedsClarification = parsed.Confidence < threshold || parsed.Amount == 0

	if parsed.Confidence < clarifyBelow {
		parsed.ClarificationQuestion = "Please confirm this expense is correct"
	}

	return parsed
}

func clampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
