package analysis

import (
	"slices"
	"strings"

	"expense-explorer/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// title returns s in title case. Casers keep state, so one is built per call.
func title(s string) string {
	return cases.Title(language.Und).String(s)
}

// TagCategoryOverlap splits the records carrying tag (case-insensitive) by
// category and reports each category's share of the tag's total.
func TagCategoryOverlap(records []models.Transaction, tag string) models.TagOverlap {
	out := models.TagOverlap{
		TargetTag:         tag,
		TotalTaggedAmount: decimal.Zero,
		CategoryOverlaps:  map[string]models.CategoryOverlap{},
		VennSets:          []models.VennSet{},
	}

	var order []string
	groups := make(map[string][]models.Transaction)
	for _, t := range records {
		if !t.HasTag(tag) {
			continue
		}
		out.TotalTaggedAmount = out.TotalTaggedAmount.Add(t.Amount)
		out.TotalTaggedTransactions++

		label := t.Category.Label
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] = append(groups[label], t)
	}

	for _, label := range order {
		members := groups[label]
		amount := decimal.Zero
		venn := make([]models.VennTransaction, 0, len(members))
		for _, t := range members {
			amount = amount.Add(t.Amount)
			venn = append(venn, models.VennTransaction{
				ID:          t.ID,
				Description: t.Description,
				Amount:      t.Amount,
				Date:        t.Date,
				Merchant:    t.Merchant,
			})
		}
		pct := percentOf(amount, out.TotalTaggedAmount)

		out.CategoryOverlaps[label] = models.CategoryOverlap{
			Amount:           amount,
			TransactionCount: len(members),
			PercentageOfTag:  pct,
		}
		out.VennSets = append(out.VennSets, models.VennSet{
			SetName:          tag + " ∩ " + title(label),
			Category:         label,
			Tag:              tag,
			Amount:           amount,
			TransactionCount: len(members),
			Percentage:       pct,
			Transactions:     venn,
		})
	}

	slices.SortStableFunc(out.VennSets, byAmountDesc(func(v models.VennSet) decimal.Decimal { return v.Amount }))
	return out
}

// MultiTagCategoryOverlap reports every non-empty tag x category intersection.
// Membership is decided by position in records, so identical-looking records stay distinct.
// Repeated tags or categories count once.
func MultiTagCategoryOverlap(records []models.Transaction, tags, categories []string) models.MultiTagOverlap {
	tags, categories = distinct(tags), distinct(categories)

	tagSets := make([][]int, len(tags))
	for i, tag := range tags {
		for pos, t := range records {
			if t.HasTag(tag) {
				tagSets[i] = append(tagSets[i], pos)
			}
		}
	}

	categorySets := make([]map[int]struct{}, len(categories))
	for i, category := range categories {
		set := make(map[int]struct{})
		for pos, t := range records {
			if t.Category.Label == category {
				set[pos] = struct{}{}
			}
		}
		categorySets[i] = set
	}

	overlaps := []models.Intersection{}
	for ti, tag := range tags {
		for ci, category := range categories {
			var members []models.Transaction
			amount := decimal.Zero
			for _, pos := range tagSets[ti] {
				if _, ok := categorySets[ci][pos]; ok {
					members = append(members, records[pos])
					amount = amount.Add(records[pos].Amount)
				}
			}
			if len(members) == 0 {
				continue
			}
			overlaps = append(overlaps, models.Intersection{
				Intersection:     tag + " ∩ " + category,
				Tag:              tag,
				Category:         category,
				Amount:           amount,
				TransactionCount: len(members),
				Transactions:     members,
			})
		}
	}
	slices.SortStableFunc(overlaps, byAmountDesc(func(o models.Intersection) decimal.Decimal { return o.Amount }))

	return models.MultiTagOverlap{
		Tags:                      nonNil(tags),
		Categories:                nonNil(categories),
		Overlaps:                  overlaps,
		TotalAnalyzedTransactions: len(records),
	}
}

// AvailableTags lists every tag with usage statistics, largest total first.
func AvailableTags(records []models.Transaction) models.TagCatalogue {
	index := make(map[string]int)
	var stats []models.TagStat
	for _, t := range records {
		for _, tag := range t.Tags {
			tag = strings.ToLower(tag)
			i, ok := index[tag]
			if !ok {
				i = len(stats)
				index[tag] = i
				stats = append(stats, models.TagStat{Tag: tag, TotalAmount: decimal.Zero, Categories: []string{}})
			}
			st := &stats[i]
			st.TransactionCount++
			st.TotalAmount = st.TotalAmount.Add(t.Amount)
			if !slices.Contains(st.Categories, t.Category.Label) {
				st.Categories = append(st.Categories, t.Category.Label)
			}
			st.CategoryCount = len(st.Categories)
		}
	}
	slices.SortStableFunc(stats, byAmountDesc(func(s models.TagStat) decimal.Decimal { return s.TotalAmount }))

	return models.TagCatalogue{
		AvailableTags:     nonNil(stats),
		TotalTags:         len(stats),
		TotalTransactions: len(records),
	}
}

// distinct keeps the first occurrence of each value.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
