package service

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
	"unicode"

	"expense-explorer/internal/analysis"
	"expense-explorer/internal/models"
	"expense-explorer/pkg/config"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrEmptyQuestion = errors.New("question is empty")

const defaultDataPoints = 5

var (
	merchantWords = []string{"merchant", "merchants", "store", "stores", "vendor", "vendors", "shop", "where"}
	trendWords    = []string{"trend", "trends", "month", "months", "monthly"}
	velocityWords = []string{"velocity", "daily", "weekly", "pace", "burn", "rate", "day", "week"}
	insightWords  = []string{"insight", "insights", "recommend", "recommendation", "recommendations", "advice", "suggest", "mba"}
)

// QueryService answers free-text questions about the ledger.
type QueryService struct {
	store               SnapshotStore
	model               ChatModel
	insightOpts         analysis.InsightOptions
	topMerchants        int
	contextTransactions int
	timeout             time.Duration
	logger              *zap.Logger
}

// NewQueryService takes a nil model to answer offline from the computed data.
func NewQueryService(store SnapshotStore, model ChatModel, cfg *config.Config, logger *zap.Logger) *QueryService {
	return &QueryService{
		store: store,
		model: model,
		insightOpts: analysis.InsightOptions{
			MarkerTag:        cfg.Analysis.MarkerTag,
			FallbackCategory: cfg.Analysis.FallbackCategory,
		},
		topMerchants:        cfg.Analysis.TopMerchants,
		contextTransactions: cfg.Analysis.ContextTransactions,
		timeout:             cfg.LLM.Timeout,
		logger:              logger,
	}
}

// mentions is what a question refers to.
type mentions struct {
	tags       []string
	categories []string
	merchants  bool
	trend      bool
	velocity   bool
	insights   bool
}

func (m mentions) named() bool {
	return len(m.tags) > 0 || len(m.categories) > 0 || m.merchants || m.trend || m.velocity || m.insights
}

// queryData is everything computed for one question.
type queryData struct {
	report    models.TransactionSummary
	catalogue models.TagCatalogue
	overlaps  []models.TagOverlap
	multi     *models.MultiTagOverlap
	insights  []models.Insight
	recent    []models.Transaction
}

func (s *QueryService) Ask(ctx context.Context, question string, extra map[string]any) (models.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.Answer{}, ErrEmptyQuestion
	}

	snap, err := s.store.Current(ctx)
	if err != nil {
		return models.Answer{}, fmt.Errorf("failed to load ledger: %w", err)
	}
	records := analysis.Filter(snap.Transactions, models.TransactionQuery{})

	data := queryData{
		report:    analysis.BuildSummaryReport(records, s.topMerchants),
		catalogue: analysis.AvailableTags(records),
	}
	m := detect(question, data)

	for _, tag := range m.tags {
		data.overlaps = append(data.overlaps, analysis.TagCategoryOverlap(records, tag))
	}
	if len(m.tags) > 0 && len(m.categories) > 0 {
		multi := analysis.MultiTagCategoryOverlap(records, m.tags, m.categories)
		data.multi = &multi
	}
	if m.insights {
		data.insights = analysis.Insights(records, s.insightOpts)
	}
	if n := s.contextTransactions; n > 0 {
		data.recent = records[max(0, len(records)-n):]
	}

	answer := models.Answer{
		Visualizations: visualizations(m, data),
		DataPoints:     dataPoints(m, data),
	}

	if s.model == nil {
		answer.Answer = offlineAnswer(m, data)
		s.logger.Info("Question answered offline", zap.Int("tags", len(m.tags)), zap.Int("categories", len(m.categories)))
		return answer, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prompt := "Context:\n" + formatContext(m, data, extra) + "\nQuestion: " + question
	text, err := s.model.Generate(ctx, systemInstruction, prompt)
	if err != nil {
		return models.Answer{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	answer.Answer = cleanAnswer(text)

	s.logger.Info("Question answered",
		zap.Int("tags", len(m.tags)),
		zap.Int("categories", len(m.categories)),
		zap.Int("prompt_length", len(prompt)),
	)
	return answer, nil
}

func detect(question string, data queryData) mentions {
	lower := strings.ToLower(question)
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-'
	}) {
		words[w] = true
	}

	var m mentions
	for _, stat := range data.catalogue.AvailableTags {
		if refersTo(lower, words, stat.Tag) {
			m.tags = append(m.tags, stat.Tag)
		}
	}
	for _, label := range slices.Sorted(maps.Keys(data.report.CategoryBreakdown)) {
		if refersTo(lower, words, label) {
			m.categories = append(m.categories, label)
		}
	}
	m.merchants = containsAny(words, merchantWords)
	m.trend = containsAny(words, trendWords)
	m.velocity = containsAny(words, velocityWords)
	m.insights = containsAny(words, insightWords)
	return m
}

var separators = strings.NewReplacer("_", " ", "-", " ")

func refersTo(lower string, words map[string]bool, label string) bool {
	label = strings.ToLower(label)
	if label == "" {
		return false
	}
	if words[label] || words[label+"s"] {
		return true
	}
	if strings.ContainsAny(label, " _-") {
		return strings.Contains(lower, label) || strings.Contains(lower, separators.Replace(label))
	}
	return false
}

func containsAny(words map[string]bool, keys []string) bool {
	return slices.ContainsFunc(keys, func(k string) bool { return words[k] })
}

func visualizations(m mentions, data queryData) []models.Visualization {
	vs := []models.Visualization{}
	for _, o := range data.overlaps {
		if o.TotalTaggedTransactions == 0 {
			continue
		}
		vs = append(vs, models.Visualization{
			Type:        models.VisualizationVenn,
			Title:       "Categories of " + o.TargetTag + " spending",
			Description: fmt.Sprintf("How %d transactions tagged %q split across categories", o.TotalTaggedTransactions, o.TargetTag),
			Data:        o,
		})
	}
	if data.multi != nil && len(data.multi.Overlaps) > 0 {
		vs = append(vs, models.Visualization{
			Type:        models.VisualizationIntersection,
			Title:       "Tag and category intersections",
			Description: "Transactions that carry a tag and fall into a category",
			Data:        data.multi,
		})
	}
	if len(m.categories) > 0 && len(m.tags) == 0 {
		selected := make(map[string]models.CategoryTotals, len(m.categories))
		for _, c := range m.categories {
			selected[c] = data.report.CategoryBreakdown[c]
		}
		vs = append(vs, models.Visualization{
			Type:        models.VisualizationBar,
			Title:       "Selected categories",
			Description: "Totals for the categories in the question",
			Data:        selected,
		})
	}
	if m.merchants {
		vs = append(vs, models.Visualization{
			Type:        models.VisualizationBar,
			Title:       "Top merchants",
			Description: "Regular spending ranked by merchant",
			Data:        data.report.TopMerchants,
		})
	}
	if m.trend {
		vs = append(vs, models.Visualization{
			Type:        models.VisualizationLine,
			Title:       "Monthly trend",
			Description: "Spending and income per month",
			Data:        data.report.MonthlyTrends,
		})
	}
	if m.velocity {
		vs = append(vs, models.Visualization{
			Type:        models.VisualizationMetric,
			Title:       "Spending velocity",
			Description: "Average regular spending per day, week and month",
			Data:        data.report.SpendingVelocity,
		})
	}
	if len(vs) == 0 {
		vs = append(vs, models.Visualization{
			Type:        models.VisualizationBar,
			Title:       "Top categories",
			Description: "Categories with the most regular spending",
			Data:        topCategories(data.report.CategoryBreakdown),
		})
	}
	return vs
}

func dataPoints(m mentions, data queryData) []models.DataPoint {
	if len(m.tags) == 0 && len(m.categories) == 0 {
		return topCategories(data.report.CategoryBreakdown)
	}

	points := []models.DataPoint{}
	for _, stat := range data.catalogue.AvailableTags {
		if slices.Contains(m.tags, stat.Tag) {
			points = append(points, models.DataPoint{Label: stat.Tag, Amount: stat.TotalAmount, Count: stat.TransactionCount})
		}
	}
	for _, c := range m.categories {
		ct := data.report.CategoryBreakdown[c]
		points = append(points, models.DataPoint{Label: c, Amount: ct.Net, Count: ct.Count})
	}
	return points
}

func topCategories(breakdown map[string]models.CategoryTotals) []models.DataPoint {
	points := make([]models.DataPoint, 0, len(breakdown))
	for label, ct := range breakdown {
		points = append(points, models.DataPoint{Label: label, Amount: ct.Regular, Count: ct.Count})
	}
	slices.SortFunc(points, func(a, b models.DataPoint) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return points[:min(len(points), defaultDataPoints)]
}

func money(p *message.Printer, d decimal.Decimal) string {
	return p.Sprintf("$%.2f", d.InexactFloat64())
}

func formatContext(m mentions, data queryData, extra map[string]any) string {
	p := message.NewPrinter(language.English)
	r := data.report
	var b strings.Builder

	p.Fprintf(&b, "Transactions: %d (%d regular, %d income, %d transfers)\n",
		r.TransactionCount, r.RegularCount, r.IncomeCount, r.TransferCount)
	p.Fprintf(&b, "Total spending: %s\nTotal income: %s\nNet: %s\nAverage transaction: %s\n",
		money(p, r.TotalRegularAmount), money(p, r.TotalIncomeAmount), money(p, r.NetAmount), money(p, r.AverageAmount))

	b.WriteString("\nCategory breakdown:\n")
	for _, label := range slices.Sorted(maps.Keys(r.CategoryBreakdown)) {
		ct := r.CategoryBreakdown[label]
		p.Fprintf(&b, "- %s: spent %s, income %s, net %s, %d transactions\n",
			label, money(p, ct.Regular), money(p, ct.Income), money(p, ct.Net), ct.Count)
	}

	b.WriteString("\nMonthly trend:\n")
	for _, mt := range r.MonthlyTrends {
		p.Fprintf(&b, "- %s: spent %s, income %s, %d transactions\n",
			mt.Month, money(p, mt.Regular), money(p, mt.Income), mt.TransactionCount)
	}

	b.WriteString("\nTop merchants:\n")
	for _, mt := range r.TopMerchants {
		p.Fprintf(&b, "- %s: %s over %d transactions\n", mt.Merchant, money(p, mt.Amount), mt.Count)
	}

	v := r.SpendingVelocity
	p.Fprintf(&b, "\nSpending velocity: %s per day, %s per week, %s per month\n",
		money(p, v.Daily), money(p, v.Weekly), money(p, v.Monthly))

	if len(data.catalogue.AvailableTags) > 0 {
		b.WriteString("\nTags:\n")
		for _, stat := range data.catalogue.AvailableTags {
			p.Fprintf(&b, "- %s: %s over %d transactions\n", stat.Tag, money(p, stat.TotalAmount), stat.TransactionCount)
		}
	}

	for _, o := range data.overlaps {
		p.Fprintf(&b, "\nCategories of spending tagged %q (total %s):\n", o.TargetTag, money(p, o.TotalTaggedAmount))
		for _, set := range o.VennSets {
			p.Fprintf(&b, "- %s: %s, %.1f%%, %d transactions\n", set.Category, money(p, set.Amount), set.Percentage, set.TransactionCount)
		}
	}
	if data.multi != nil {
		b.WriteString("\nTag and category intersections:\n")
		for _, o := range data.multi.Overlaps {
			p.Fprintf(&b, "- %s: %s, %d transactions\n", o.Intersection, money(p, o.Amount), o.TransactionCount)
		}
	}

	if len(data.insights) > 0 {
		b.WriteString("\nInsights:\n")
		for _, in := range data.insights {
			fmt.Fprintf(&b, "- %s: %s\n", in.Title, in.Description)
		}
	}

	if len(data.recent) > 0 {
		p.Fprintf(&b, "\nMost recent %d transactions:\n", len(data.recent))
		for _, t := range data.recent {
			p.Fprintf(&b, "- %s | %s | %s | %s | %s\n",
				t.Date.Format("2006-01-02"), t.Description, t.Category.Label, money(p, t.Amount), strings.Join(t.Tags, ","))
		}
	}

	if len(extra) > 0 {
		if raw, err := json.Marshal(extra); err == nil {
			fmt.Fprintf(&b, "\nAdditional context: %s\n", raw)
		}
	}

	if !m.named() {
		b.WriteString("\nThe question names no specific tag or category.\n")
	}
	return b.String()
}

func offlineAnswer(m mentions, data queryData) string {
	p := message.NewPrinter(language.English)
	r := data.report
	lines := []string{
		p.Sprintf("Across %d transactions you spent %s and received %s, a net of %s.",
			r.TransactionCount, money(p, r.TotalRegularAmount), money(p, r.TotalIncomeAmount), money(p, r.NetAmount)),
	}

	for _, o := range data.overlaps {
		if o.TotalTaggedTransactions == 0 {
			lines = append(lines, fmt.Sprintf("No transactions are tagged %q.", o.TargetTag))
			continue
		}
		line := p.Sprintf("Spending tagged %q totals %s over %d transactions", o.TargetTag, money(p, o.TotalTaggedAmount), o.TotalTaggedTransactions)
		if len(o.VennSets) > 0 {
			top := o.VennSets[0]
			line += p.Sprintf("; the largest share is %s at %.1f%%", analysis.DisplayName(top.Category), top.Percentage)
		}
		lines = append(lines, line+".")
	}
	for _, c := range m.categories {
		ct := r.CategoryBreakdown[c]
		lines = append(lines, p.Sprintf("%s: net %s across %d transactions.", analysis.DisplayName(c), money(p, ct.Net), ct.Count))
	}
	if m.merchants && len(r.TopMerchants) > 0 {
		top := r.TopMerchants[0]
		lines = append(lines, p.Sprintf("Your top merchant is %s with %s over %d transactions.", top.Merchant, money(p, top.Amount), top.Count))
	}
	if m.trend && len(r.MonthlyTrends) > 0 {
		peak := r.MonthlyTrends[0]
		for _, mt := range r.MonthlyTrends[1:] {
			if mt.Regular.GreaterThan(peak.Regular) {
				peak = mt
			}
		}
		lines = append(lines, p.Sprintf("Spending peaked in %s at %s.", peak.Month, money(p, peak.Regular)))
	}
	if m.velocity {
		v := r.SpendingVelocity
		lines = append(lines, p.Sprintf("You spend about %s a day, %s a week and %s a month.",
			money(p, v.Daily), money(p, v.Weekly), money(p, v.Monthly)))
	}
	if m.insights && len(data.insights) > 0 {
		lines = append(lines, data.insights[0].Title+": "+data.insights[0].Description)
	}
	return strings.Join(lines, "\n")
}
