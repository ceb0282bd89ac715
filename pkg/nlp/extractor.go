package nlp

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	currencyTokens = regexp.MustCompile(`(?i)₹|rs\.?|rupees?|inr|രൂപ|रुपये|रुपए|ரூபாய்|రూపాయి|ರೂಪಾಯಿ`)

	// Ordered amount patterns. The first pattern that matches and parses to a
	// finite positive number wins, so the grouped-thousands convention takes
	// priority over the European one on ambiguous input. Do not reorder.
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d{2})?`), // 1,000.00
		regexp.MustCompile(`\d+(?:\.\d{3})*(?:,\d{2})?`), // 1.000,00
		regexp.MustCompile(`\d+`),                        // plain digits
	}

	simpleAmountPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

	datePattern = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})`)

	todayWords     = []string{"today", "ഇന്ന്", "आज", "இன்று", "ఈరోజు", "ಇವತ್ತು"}
	yesterdayWords = []string{"yesterday", "ഇന്നലെ", "कल", "நேற்று", "నిన్న", "ನಿನ್ನೆ"}
)

// ExtractAmount pulls the spent amount out of free text. Currency symbols and
// words (including regional scripts) are stripped first; thousands separators
// are removed before parsing. Returns 0 when no usable number is present.
func ExtractAmount(text string) float64 {
	cleaned := currencyTokens.ReplaceAllString(text, " ")

	for _, pattern := range amountPatterns {
		match := pattern.FindString(cleaned)
		if match == "" {
			continue
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
		if err != nil {
			continue
		}
		if !math.IsInf(amount, 0) && !math.IsNaN(amount) && amount > 0 {
			return amount
		}
	}

	return 0
}

// simpleAmount is the lenient extraction used by the quick parse path: first
// decimal-ish number in the text, comma treated as thousands separator.
func simpleAmount(text string) float64 {
	match := simpleAmountPattern.FindString(text)
	if match == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}
	return amount
}

// ExtractDate resolves a date mentioned in text: "today"/"yesterday" in six
// languages at calendar-day granularity, or a numeric D/M/Y (also D-M-Y) date
// with a 2-or-4-digit year. Two-digit years map to 2000+YY. Returns false when
// nothing matches or the numeric date is not a real calendar date.
func ExtractDate(text string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	for _, word := range todayWords {
		if strings.Contains(lower, word) {
			return now, true
		}
	}
	for _, word := range yesterdayWords {
		if strings.Contains(lower, word) {
			return now.AddDate(0, 0, -1), true
		}
	}

	match := datePattern.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])
	if len(match[3]) == 2 {
		year += 2000
	}

	if month < 1 || month > 12 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())

	// time.Date normalizes overflow (day 32 rolls into the next month), so a
	// round-trip mismatch means the input was not a real date.
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, false
	}

	return date, true
}
