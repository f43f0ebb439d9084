package analysis

import (
	"cmp"
	"slices"
	"time"

	"expense-explorer/internal/models"

	"github.com/shopspring/decimal"
)

const DefaultTopMerchants = 10

const unknownMerchant = "Unknown"

// Summarize computes overall totals. Net is regular spend minus income;
// transfers only count towards TransactionCount and the average.
func Summarize(records []models.Transaction) models.Summary {
	s := models.Summary{
		TotalRegularAmount: decimal.Zero,
		TotalIncomeAmount:  decimal.Zero,
		NetAmount:          decimal.Zero,
		AverageAmount:      decimal.Zero,
	}
	if len(records) == 0 {
		return s
	}

	absTotal := decimal.Zero
	for _, t := range records {
		switch t.TransactionType {
		case models.TransactionTypeIncome:
			s.TotalIncomeAmount = s.TotalIncomeAmount.Add(t.Amount)
			s.IncomeCount++
		case models.TransactionTypeInternalTransfer:
			s.TransferCount++
		default:
			s.TotalRegularAmount = s.TotalRegularAmount.Add(t.Amount)
			s.RegularCount++
		}
		absTotal = absTotal.Add(t.AbsoluteAmount())
	}

	s.TransactionCount = len(records)
	s.NetAmount = s.TotalRegularAmount.Sub(s.TotalIncomeAmount)
	s.AverageAmount = absTotal.Div(decimal.NewFromInt(int64(len(records))))
	return s
}

func addToTotals(ct *models.CategoryTotals, t models.Transaction) {
	switch t.TransactionType {
	case models.TransactionTypeIncome:
		ct.Income = ct.Income.Add(t.Amount)
	case models.TransactionTypeInternalTransfer:
		ct.Transfers = ct.Transfers.Add(t.Amount)
	default:
		ct.Regular = ct.Regular.Add(t.Amount)
	}
	ct.Count++
	ct.Net = ct.Regular.Sub(ct.Income)
}

func newTotals() models.CategoryTotals {
	return models.CategoryTotals{
		Regular:   decimal.Zero,
		Income:    decimal.Zero,
		Transfers: decimal.Zero,
		Net:       decimal.Zero,
	}
}

// CategoryBreakdown groups records by category label.
func CategoryBreakdown(records []models.Transaction) map[string]models.CategoryTotals {
	out := make(map[string]models.CategoryTotals)
	for _, t := range records {
		ct, ok := out[t.Category.Label]
		if !ok {
			ct = newTotals()
		}
		addToTotals(&ct, t)
		out[t.Category.Label] = ct
	}
	return out
}

// MonthlyTrend buckets records by calendar month, ascending.
func MonthlyTrend(records []models.Transaction) []models.MonthlyTrend {
	byMonth := make(map[string]models.CategoryTotals)
	for _, t := range records {
		key := t.MonthKey()
		ct, ok := byMonth[key]
		if !ok {
			ct = newTotals()
		}
		addToTotals(&ct, t)
		byMonth[key] = ct
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	slices.Sort(months)

	out := make([]models.MonthlyTrend, 0, len(months))
	for _, m := range months {
		ct := byMonth[m]
		out = append(out, models.MonthlyTrend{
			Month:            m,
			Regular:          ct.Regular,
			Income:           ct.Income,
			Transfers:        ct.Transfers,
			Net:              ct.Net,
			TransactionCount: ct.Count,
		})
	}
	return out
}

// TopMerchants ranks merchants by regular spend. Ties keep first-seen order.
// A non-positive limit means DefaultTopMerchants.
func TopMerchants(records []models.Transaction, limit int) []models.MerchantTotal {
	if limit <= 0 {
		limit = DefaultTopMerchants
	}

	index := make(map[string]int)
	var out []models.MerchantTotal
	for _, t := range records {
		if t.TransactionType != models.TransactionTypeRegular {
			continue
		}
		name := t.Merchant
		if name == "" {
			name = unknownMerchant
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, models.MerchantTotal{Merchant: name, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(t.Amount)
		out[i].Count++
	}

	slices.SortStableFunc(out, byAmountDesc(func(m models.MerchantTotal) decimal.Decimal { return m.Amount }))
	if len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []models.MerchantTotal{}
	}
	return out
}

// SpendingVelocity averages regular spend over the covered calendar span.
func SpendingVelocity(records []models.Transaction) models.SpendingVelocity {
	v := models.SpendingVelocity{Daily: decimal.Zero, Weekly: decimal.Zero, Monthly: decimal.Zero}

	var (
		first, last time.Time
		total       = decimal.Zero
		seen        bool
	)
	for _, t := range records {
		if t.TransactionType != models.TransactionTypeRegular {
			continue
		}
		if !seen || t.Date.Before(first) {
			first = t.Date
		}
		if !seen || t.Date.After(last) {
			last = t.Date
		}
		seen = true
		total = total.Add(t.Amount)
	}
	if !seen {
		return v
	}

	days := decimal.NewFromInt(int64(last.Sub(first)/(24*time.Hour)) + 1)
	v.Daily = total.Div(days)
	v.Weekly = total.Mul(decimal.NewFromInt(7)).Div(days)
	v.Monthly = total.Mul(decimal.NewFromInt(30)).Div(days)
	return v
}

// BuildSummaryReport assembles the combined dashboard view.
func BuildSummaryReport(records []models.Transaction, topMerchants int) models.TransactionSummary {
	return models.TransactionSummary{
		Summary:           Summarize(records),
		CategoryBreakdown: CategoryBreakdown(records),
		MonthlyTrends:     MonthlyTrend(records),
		TopMerchants:      TopMerchants(records, topMerchants),
		SpendingVelocity:  SpendingVelocity(records),
	}
}

func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

func byAmountDesc[T any](amount func(T) decimal.Decimal) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(0, amount(a).Cmp(amount(b)))
	}
}
