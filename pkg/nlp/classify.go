package nlp

import (
	"regexp"
	"strings"
)

var (
	// Interrogative markers in English, Malayalam, Hindi, Tamil, Telugu and
	// Kannada. Any hit classifies the text as a question, no matter what else
	// it contains.
	questionWords = []string{
		"how much", "what", "when", "where", "show", "tell", "?",
		"എത്ര", "എന്ത്", "എവിടെ", "എപ്പോൾ",
		"कितना", "क्या", "कहाँ", "कब",
		"எவ்வளவு", "என்ன", "எங்கே", "எப்போது",
		"ఎంత", "ఏమిటి", "ఎక్కడ", "ఎప్పుడు",
		"ಎಷ್ಟು", "ಏನು", "ಎಲ್ಲಿ", "ಯಾವಾಗ",
	}

	expenseWords = []string{"spent", "paid", "bought", "purchase", "cost", "₹", "rupees", "rs"}

	digitPattern = regexp.MustCompile(`\d`)
)

// IsExpenseEntry decides whether free text is an expense entry or a question.
// The question-marker check always runs first and short-circuits: "how much
// did I spend on 5 items?" is a question even though it carries a digit.
func IsExpenseEntry(text string) bool {
	lower := strings.ToLower(text)

	for _, word := range questionWords {
		if strings.Contains(lower, word) {
			return false
		}
	}

	for _, word := range expenseWords {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return digitPattern.MatchString(text)
}
