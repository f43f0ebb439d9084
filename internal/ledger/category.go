package ledger

import (
	"strings"

	"expense-explorer/internal/models"
)

const otherCategory = "other"

// keywordCategories is checked in order; the first category with a keyword
// contained in the description wins.
var keywordCategories = []struct {
	category string
	keywords []string
}{
	{"tuition", []string{"tuition", "fee", "semester", "course", "credit"}},
	{"books_supplies", []string{"book", "textbook", "case", "study", "material"}},
	{"housing", []string{"rent", "apartment", "housing", "utility", "electric", "water"}},
	{"food", []string{"food", "restaurant", "grocery", "dining", "coffee", "lunch", "dinner"}},
	{"transportation", []string{"gas", "fuel", "uber", "lyft", "metro", "bus", "parking"}},
	{"networking", []string{"networking", "conference", "event", "club", "meeting", "professional"}},
	{"entertainment", []string{"movie", "entertainment", "game", "sport", "recreation"}},
	{"health", []string{"health", "medical", "doctor", "gym", "fitness", "wellness"}},
	{"technology", []string{"software", "hardware", "computer", "tech", "app", "subscription"}},
	{"travel", []string{"travel", "flight", "hotel", "trip", "vacation"}},
}

// InferCategory guesses a category label from a free-text description.
func InferCategory(description string) string {
	desc := strings.ToLower(description)
	if desc == "" {
		return otherCategory
	}
	for _, kc := range keywordCategories {
		for _, kw := range kc.keywords {
			if strings.Contains(desc, kw) {
				return kc.category
			}
		}
	}
	return otherCategory
}

func resolveCategory(label, parent, description string) models.Category {
	c := models.Category{Parent: optional(parent)}
	if nullish(label) {
		c.Label = InferCategory(description)
	} else {
		c.Label = strings.ToLower(strings.TrimSpace(label))
	}
	return c
}
