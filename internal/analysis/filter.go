// Package analysis holds the pure aggregation engine over transaction slices.
// Nothing here mutates its input or keeps state between calls.
package analysis

import (
	"slices"
	"strings"

	"expense-explorer/internal/models"
)

type predicate func(models.Transaction) bool

// Filter returns the records matching q, in input order, as a new slice.
func Filter(records []models.Transaction, q models.TransactionQuery) []models.Transaction {
	preds := predicates(q)

	out := make([]models.Transaction, 0, len(records))
	for _, t := range records {
		if matchAll(t, preds) {
			out = append(out, t)
		}
	}
	return out
}

func matchAll(t models.Transaction, preds []predicate) bool {
	for _, p := range preds {
		if !p(t) {
			return false
		}
	}
	return true
}

func predicates(q models.TransactionQuery) []predicate {
	var preds []predicate

	if !q.IncludeExcluded {
		preds = append(preds, func(t models.Transaction) bool { return !t.Excluded })
	}
	if q.StartDate != nil {
		start := *q.StartDate
		preds = append(preds, func(t models.Transaction) bool { return !t.Date.Before(start) })
	}
	if q.EndDate != nil {
		end := *q.EndDate
		preds = append(preds, func(t models.Transaction) bool { return !t.Date.After(end) })
	}
	if len(q.Categories) > 0 {
		cats := q.Categories
		preds = append(preds, func(t models.Transaction) bool { return slices.Contains(cats, t.Category.Label) })
	}
	if len(q.TransactionTypes) > 0 {
		types := q.TransactionTypes
		preds = append(preds, func(t models.Transaction) bool { return slices.Contains(types, t.TransactionType) })
	}
	if q.MinAmount != nil {
		lo := *q.MinAmount
		preds = append(preds, func(t models.Transaction) bool { return t.AbsoluteAmount().GreaterThanOrEqual(lo) })
	}
	if q.MaxAmount != nil {
		hi := *q.MaxAmount
		preds = append(preds, func(t models.Transaction) bool { return t.AbsoluteAmount().LessThanOrEqual(hi) })
	}
	if q.SearchText != "" {
		needle := strings.ToLower(q.SearchText)
		preds = append(preds, func(t models.Transaction) bool {
			return strings.Contains(strings.ToLower(t.Description), needle)
		})
	}
	if len(q.Tags) > 0 {
		tags := make([]string, 0, len(q.Tags))
		for _, tag := range q.Tags {
			tags = append(tags, strings.ToLower(tag))
		}
		preds = append(preds, func(t models.Transaction) bool {
			for _, own := range t.Tags {
				if slices.Contains(tags, strings.ToLower(own)) {
					return true
				}
			}
			return false
		})
	}

	return preds
}
