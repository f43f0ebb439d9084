package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"expense-explorer/internal/models"
	"expense-explorer/internal/repository"
	"expense-explorer/pkg/config"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
)

type fakeStore struct {
	snap     *repository.Snapshot
	err      error
	reloads  int
	replaced string
}

func (s *fakeStore) Current(context.Context) (*repository.Snapshot, error) {
	return s.snap, s.err
}

func (s *fakeStore) Reload(context.Context) (*repository.Snapshot, error) {
	s.reloads++
	return s.snap, s.err
}

func (s *fakeStore) Replace(_ context.Context, data io.Reader) (*repository.Snapshot, error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}
	s.replaced = string(raw)
	return s.snap, s.err
}

func (s *fakeStore) Location() string { return "memory://ledger.csv" }

type fakeModel struct {
	answer  string
	err     error
	system  string
	prompt  string
	hasDead bool
}

func (m *fakeModel) Generate(ctx context.Context, system, prompt string) (string, error) {
	m.system, m.prompt = system, prompt
	_, m.hasDead = ctx.Deadline()
	return m.answer, m.err
}

func (m *fakeModel) Close() error { return nil }

func record(id, amount, category, merchant, date string, tags ...string) models.Transaction {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		ID:              id,
		Amount:          decimal.RequireFromString(amount),
		Description:     "txn " + id,
		Merchant:        merchant,
		Category:        models.Category{Label: category},
		Date:            day,
		Tags:            tags,
		TransactionType: models.TransactionTypeRegular,
	}
}

func ledgerFixture() *fakeStore {
	hidden := record("5", "999", "food", "Hidden", "2024-09-20", "trip")
	hidden.Excluded = true
	return &fakeStore{snap: &repository.Snapshot{
		Transactions: []models.Transaction{
			record("1", "40", "food", "Cafe", "2024-08-10", "trip"),
			record("2", "60", "lodging", "Hotel", "2024-08-11", "trip"),
			record("3", "1500", "tuition", "Kellogg", "2024-09-01", "kellogg"),
			record("4", "25", "books_supplies", "Bookstore", "2024-09-05"),
			hidden,
		},
		Location: "memory://ledger.csv",
	}}
}

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{Timeout: time.Minute},
		Analysis: config.AnalysisConfig{
			MarkerTag:           "kellogg",
			FallbackCategory:    "tuition",
			TopMerchants:        10,
			ContextTransactions: 2,
		},
	}
}

func visualizationTypes(vs []models.Visualization) []models.VisualizationType {
	out := make([]models.VisualizationType, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Type)
	}
	return out
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	svc := NewQueryService(ledgerFixture(), nil, testConfig(), zaptest.NewLogger(t))
	if _, err := svc.Ask(context.Background(), "   ", nil); !errors.Is(err, ErrEmptyQuestion) {
		t.Errorf("Ask() error = %v, want ErrEmptyQuestion", err)
	}
}

func TestAskWithModel(t *testing.T) {
	model := &fakeModel{answer: "Trip food was $40.\xff"}
	svc := NewQueryService(ledgerFixture(), model, testConfig(), zaptest.NewLogger(t))

	answer, err := svc.Ask(context.Background(), "How much of my trip went to food?", map[string]any{"page": "dashboard"})
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	if answer.Answer != "Trip food was $40." {
		t.Errorf("answer = %q, want invalid bytes dropped", answer.Answer)
	}
	got := visualizationTypes(answer.Visualizations)
	want := []models.VisualizationType{models.VisualizationVenn, models.VisualizationIntersection}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("visualizations = %v, want %v", got, want)
	}

	overlap := answer.Visualizations[0].Data.(models.TagOverlap)
	if !overlap.TotalTaggedAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("trip total = %s, excluded records must not count", overlap.TotalTaggedAmount)
	}

	if model.system != systemInstruction {
		t.Error("system instruction was not passed to the model")
	}
	if !model.hasDead {
		t.Error("model call has no deadline")
	}
	for _, fragment := range []string{
		"Question: How much of my trip went to food?",
		`Categories of spending tagged "trip"`,
		"trip ∩ food",
		"Most recent 2 transactions",
		`"page":"dashboard"`,
	} {
		if !strings.Contains(model.prompt, fragment) {
			t.Errorf("prompt is missing %q", fragment)
		}
	}
	if strings.Contains(model.prompt, "Hidden") {
		t.Error("prompt includes an excluded transaction")
	}
}

func TestAskModelFailure(t *testing.T) {
	boom := errors.New("upstream unavailable")
	svc := NewQueryService(ledgerFixture(), &fakeModel{err: boom}, testConfig(), zaptest.NewLogger(t))

	_, err := svc.Ask(context.Background(), "what about food?", nil)
	if !errors.Is(err, boom) || !errors.Is(err, ErrGeneration) {
		t.Errorf("Ask() error = %v, want wrapped model error", err)
	}
}

func TestAskLedgerFailure(t *testing.T) {
	store := &fakeStore{err: repository.ErrSourceNotFound}
	svc := NewQueryService(store, &fakeModel{}, testConfig(), zaptest.NewLogger(t))

	if _, err := svc.Ask(context.Background(), "anything", nil); !errors.Is(err, repository.ErrSourceNotFound) {
		t.Errorf("Ask() error = %v", err)
	}
}

func TestAskOffline(t *testing.T) {
	svc := NewQueryService(ledgerFixture(), nil, testConfig(), zaptest.NewLogger(t))

	answer, err := svc.Ask(context.Background(), "Which merchants and monthly trend for books supplies?", nil)
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	for _, fragment := range []string{
		"Across 4 transactions you spent $1,625.00",
		"Books Supplies: net $25.00 across 1 transactions.",
		"Your top merchant is Kellogg with $1,500.00",
		"Spending peaked in 2024-09 at $1,525.00.",
	} {
		if !strings.Contains(answer.Answer, fragment) {
			t.Errorf("answer %q is missing %q", answer.Answer, fragment)
		}
	}

	got := visualizationTypes(answer.Visualizations)
	want := []models.VisualizationType{models.VisualizationBar, models.VisualizationBar, models.VisualizationLine}
	if len(got) != len(want) {
		t.Fatalf("visualizations = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visualization %d = %s, want %s", i, got[i], want[i])
		}
	}
	if len(answer.DataPoints) != 1 || answer.DataPoints[0].Label != "books_supplies" {
		t.Errorf("data points = %+v", answer.DataPoints)
	}
}

func TestAskWithoutMentionsFallsBackToTopCategories(t *testing.T) {
	svc := NewQueryService(ledgerFixture(), nil, testConfig(), zaptest.NewLogger(t))

	answer, err := svc.Ask(context.Background(), "hello there", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(answer.Visualizations) != 1 || answer.Visualizations[0].Title != "Top categories" {
		t.Errorf("visualizations = %+v", answer.Visualizations)
	}
	labels := make([]string, 0, len(answer.DataPoints))
	for _, p := range answer.DataPoints {
		labels = append(labels, p.Label)
	}
	if strings.Join(labels, ",") != "tuition,lodging,food,books_supplies" {
		t.Errorf("data point order = %v", labels)
	}
}

func TestRefersTo(t *testing.T) {
	question := "how much on books supplies and the spring-break trips?"
	lower := strings.ToLower(question)
	words := map[string]bool{}
	for _, w := range strings.Fields(strings.Trim(lower, "?")) {
		words[w] = true
	}

	tests := map[string]bool{
		"books_supplies": true,
		"spring-break":   true,
		"trip":           true,
		"supply":         false,
		"food":           false,
		"":               false,
	}
	for label, want := range tests {
		if got := refersTo(lower, words, label); got != want {
			t.Errorf("refersTo(%q) = %v, want %v", label, got, want)
		}
	}
}

func TestCleanAnswer(t *testing.T) {
	tests := map[string]string{
		"plain":                      "plain",
		"caf\xc3\xa9":                "café",
		"bad\xffbyte":                "badbyte",
		"\xfe\xff":                   "",
		"∩ intersection":             "∩ intersection",
		"  padded\n":                 "padded",
		"```\nfenced answer\n```":    "fenced answer",
		"```markdown\n**bold**\n```": "**bold**",
		"use `code` inline":          "use `code` inline",
		"```single line```":          "```single line```",
	}
	for in, want := range tests {
		if got := cleanAnswer(in); got != want {
			t.Errorf("cleanAnswer(%q) = %q, want %q", in, got, want)
		}
	}
}
