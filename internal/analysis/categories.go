package analysis

import (
	"slices"
	"strings"

	"expense-explorer/internal/models"
)

var categoryColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9", "#D5DBDB",
}

var categoryIcons = []string{
	"graduation-cap", "book", "home", "utensils", "car",
	"users", "film", "heart", "laptop", "plane", "ellipsis-h",
}

// DisplayName turns a category label such as "books_supplies" into "Books Supplies".
func DisplayName(label string) string {
	return title(strings.ReplaceAll(label, "_", " "))
}

// Categories describes each category in first-seen order. Colors and icons
// cycle through fixed palettes by position.
func Categories(records []models.Transaction) []models.CategoryInfo {
	index := make(map[string]int)
	var order []string
	totals := make([]models.CategoryTotals, 0)
	for _, t := range records {
		i, ok := index[t.Category.Label]
		if !ok {
			i = len(order)
			index[t.Category.Label] = i
			order = append(order, t.Category.Label)
			totals = append(totals, newTotals())
		}
		addToTotals(&totals[i], t)
	}

	out := make([]models.CategoryInfo, 0, len(order))
	for i, label := range order {
		out = append(out, models.CategoryInfo{
			Name:             label,
			DisplayName:      DisplayName(label),
			Description:      "Transactions in " + label,
			Color:            categoryColors[i%len(categoryColors)],
			Icon:             categoryIcons[i%len(categoryIcons)],
			TotalAmount:      totals[i].Net,
			TransactionCount: totals[i].Count,
		})
	}
	return out
}

// CategoryHierarchy maps parent labels to their child categories with counts.
func CategoryHierarchy(records []models.Transaction) models.CategoryHierarchy {
	out := models.CategoryHierarchy{
		Categories:       []string{},
		ParentCategories: []string{},
		Hierarchy:        map[string]map[string]int{},
		CategoryCounts:   map[string]int{},
	}

	for _, t := range records {
		label := t.Category.Label
		if _, ok := out.CategoryCounts[label]; !ok {
			out.Categories = append(out.Categories, label)
		}
		out.CategoryCounts[label]++

		parent := t.Category.Parent
		if parent == "" {
			continue
		}
		children, ok := out.Hierarchy[parent]
		if !ok {
			children = map[string]int{}
			out.Hierarchy[parent] = children
			out.ParentCategories = append(out.ParentCategories, parent)
		}
		children[label]++
	}

	slices.Sort(out.Categories)
	slices.Sort(out.ParentCategories)
	return out
}
