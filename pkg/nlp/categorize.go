package nlp

import "strings"

// Categorize assigns a category label to free text by counting keyword hits
// per category and picking the one with the strictly greatest count. Ties keep
// the earlier category in table order. Zero hits anywhere means Other.
func Categorize(text string) string {
	category, _ := categorize(text)
	return category
}

func categorize(text string) (string, int) {
	lower := strings.ToLower(text)

	best := CategoryOther
	maxVotes := 0

	for _, entry := range categoryTable {
		votes := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				votes++
			}
		}
		if votes > maxVotes {
			maxVotes = votes
			best = entry.category
		}
	}

	return best, maxVotes
}
