package analysis

import (
	"slices"
	"strings"
	"time"

	"expense-explorer/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultMarkerTag        = "kellogg"
	DefaultFallbackCategory = "tuition"

	generalGroup = "general_activities"
	dateLayout   = "2006-01-02"
)

var (
	highTotal   = decimal.NewFromInt(1000)
	mediumTotal = decimal.NewFromInt(500)
)

type InsightOptions struct {
	// MarkerTag selects the records the insights are about.
	MarkerTag string
	// FallbackCategory is summarised when no record carries MarkerTag.
	FallbackCategory string
}

func (o InsightOptions) withDefaults() InsightOptions {
	if o.MarkerTag == "" {
		o.MarkerTag = DefaultMarkerTag
	}
	if o.FallbackCategory == "" {
		o.FallbackCategory = DefaultFallbackCategory
	}
	o.MarkerTag = strings.ToLower(o.MarkerTag)
	o.FallbackCategory = strings.ToLower(o.FallbackCategory)
	return o
}

type insightGroup struct {
	name    string
	members []models.Transaction
}

// Insights produces rule-based narrative insights over regular transactions
// tagged with the marker tag.
//
// Records are grouped under their first tag other than the marker, in tag
// insertion order. A record tagged ["kellogg", "trip", "food"] lands in "trip"
// only, never in "food".
func Insights(records []models.Transaction, opts InsightOptions) []models.Insight {
	opts = opts.withDefaults()
	p := message.NewPrinter(language.English)

	var regular, marked []models.Transaction
	for _, t := range records {
		if t.TransactionType != models.TransactionTypeRegular {
			continue
		}
		regular = append(regular, t)
		if t.HasTag(opts.MarkerTag) {
			marked = append(marked, t)
		}
	}

	if len(marked) == 0 {
		return fallbackInsights(regular, opts, p)
	}

	insights := []models.Insight{}

	total := sumAmounts(marked)
	insights = append(insights, models.Insight{
		Category:       "mba_total",
		Title:          "Total MBA Investment",
		Description:    p.Sprintf("Total %s-related spending: $%.2f", title(opts.MarkerTag), total.InexactFloat64()),
		Recommendation: "Track your MBA investment to ensure you're getting value for your money",
		DataSupport: map[string]any{
			"total_amount":      total,
			"transaction_count": len(marked),
		},
		ConfidenceScore: 0.95,
		Priority:        models.PriorityHigh,
	})

	for _, g := range groupByFirstTag(marked, opts.MarkerTag) {
		insights = append(insights, groupInsight(g, p))
	}

	if trend, ok := monthlyTrendInsight(marked, p); ok {
		insights = append(insights, trend)
	}

	return insights
}

func groupByFirstTag(marked []models.Transaction, marker string) []insightGroup {
	index := make(map[string]int)
	var groups []insightGroup
	var general []models.Transaction

	for _, t := range marked {
		key := ""
		for _, tag := range t.Tags {
			if tag = strings.ToLower(tag); tag != marker {
				key = tag
				break
			}
		}
		if key == "" {
			general = append(general, t)
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, insightGroup{name: key})
		}
		groups[i].members = append(groups[i].members, t)
	}

	if len(general) > 0 {
		groups = append(groups, insightGroup{name: generalGroup, members: general})
	}
	return groups
}

func groupInsight(g insightGroup, p *message.Printer) models.Insight {
	total := sumAmounts(g.members)
	count := len(g.members)
	avg := total.Div(decimal.NewFromInt(int64(count)))

	minDate, maxDate := g.members[0].Date, g.members[0].Date
	for _, t := range g.members[1:] {
		if t.Date.Before(minDate) {
			minDate = t.Date
		}
		if t.Date.After(maxDate) {
			maxDate = t.Date
		}
	}
	dateRange := minDate.Format(dateLayout) + " to " + maxDate.Format(dateLayout)

	priority := models.PriorityLow
	switch {
	case total.GreaterThan(highTotal) || count > 5:
		priority = models.PriorityHigh
	case total.GreaterThan(mediumTotal) || count > 3:
		priority = models.PriorityMedium
	}

	return models.Insight{
		Category: g.name,
		Title:    "MBA " + title(g.name) + " Activity",
		Description: p.Sprintf("Total spent on %s: $%.2f ($%.2f avg per transaction) from %s",
			g.name, total.InexactFloat64(), avg.InexactFloat64(), dateRange),
		Recommendation: "Monitor your " + g.name + " spending to ensure it aligns with your MBA goals and provides good value",
		DataSupport: map[string]any{
			"total_amount":      total,
			"avg_amount":        avg,
			"transaction_count": count,
			"date_range":        dateRange,
			"min_date":          minDate.Format(time.RFC3339),
			"max_date":          maxDate.Format(time.RFC3339),
		},
		ConfidenceScore: priority.Confidence(),
		Priority:        priority,
	}
}

// monthlyTrendInsight needs at least two distinct months. The peak month is
// the earliest one on ties.
func monthlyTrendInsight(marked []models.Transaction, p *message.Printer) (models.Insight, bool) {
	byMonth := make(map[string]decimal.Decimal)
	for _, t := range marked {
		byMonth[t.MonthKey()] = byMonth[t.MonthKey()].Add(t.Amount)
	}
	if len(byMonth) < 2 {
		return models.Insight{}, false
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	slices.Sort(months)

	sum := decimal.Zero
	peak := months[0]
	for _, m := range months {
		sum = sum.Add(byMonth[m])
		if byMonth[m].GreaterThan(byMonth[peak]) {
			peak = m
		}
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(months))))

	return models.Insight{
		Category: "mba_trends",
		Title:    "MBA Spending Trends",
		Description: p.Sprintf("Average monthly MBA spending: $%.2f. Highest month: %s ($%.2f)",
			avg.InexactFloat64(), peak, byMonth[peak].InexactFloat64()),
		Recommendation: "Consider spreading MBA expenses more evenly across months to manage cash flow",
		DataSupport: map[string]any{
			"avg_monthly": avg,
			"max_month":   peak,
			"max_amount":  byMonth[peak],
		},
		ConfidenceScore: 0.8,
		Priority:        models.PriorityMedium,
	}, true
}

func fallbackInsights(regular []models.Transaction, opts InsightOptions, p *message.Printer) []models.Insight {
	var matched []models.Transaction
	for _, t := range regular {
		if t.Category.Label == opts.FallbackCategory {
			matched = append(matched, t)
		}
	}
	if len(matched) == 0 {
		return []models.Insight{}
	}

	total := sumAmounts(matched)
	return []models.Insight{{
		Category:       opts.FallbackCategory,
		Title:          DisplayName(opts.FallbackCategory) + " Investment Analysis",
		Description:    p.Sprintf("Total %s investment: $%.2f", strings.ReplaceAll(opts.FallbackCategory, "_", " "), total.InexactFloat64()),
		Recommendation: "Review how these payments were funded out of pocket versus loans or scholarships.",
		DataSupport: map[string]any{
			"total_amount":  total,
			"payment_count": len(matched),
		},
		ConfidenceScore: 0.9,
		Priority:        models.PriorityHigh,
	}}
}

func sumAmounts(records []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range records {
		total = total.Add(t.Amount)
	}
	return total
}
