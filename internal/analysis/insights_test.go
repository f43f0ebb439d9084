package analysis

import (
	"testing"

	"expense-explorer/internal/models"
)

func categoriesOf(insights []models.Insight) []string {
	out := make([]string, 0, len(insights))
	for _, in := range insights {
		out = append(out, in.Category)
	}
	return out
}

func TestInsightsWithMarker(t *testing.T) {
	records := []models.Transaction{
		tx("1", "700", "events", "2024-08-01", "kellogg", "trip"),
		tx("2", "50", "food", "2024-08-05", "Kellogg"),
		tx("3", "400", "travel", "2024-09-10", "trip", "kellogg", "food"),
		tx("4", "30", "food", "2024-09-12", "kellogg", "networking"),
		tx("5", "9999", "food", "2024-09-12", "trip"),
	}
	income := tx("6", "5000", "salary", "2024-09-01", "kellogg")
	income.TransactionType = models.TransactionTypeIncome
	records = append(records, income)

	got := Insights(records, InsightOptions{})

	want := []string{"mba_total", "trip", "networking", "general_activities", "mba_trends"}
	if c := categoriesOf(got); len(c) != len(want) {
		t.Fatalf("categories = %v, want %v", c, want)
	}
	for i, c := range categoriesOf(got) {
		if c != want[i] {
			t.Errorf("insight %d = %s, want %s", i, c, want[i])
		}
	}

	total := got[0]
	if total.ConfidenceScore != 0.95 || total.Priority != models.PriorityHigh {
		t.Errorf("headline = %+v", total)
	}
	if total.DataSupport["transaction_count"] != 4 {
		t.Errorf("headline count = %v, want 4", total.DataSupport["transaction_count"])
	}

	trip := got[1]
	if trip.Title != "MBA Trip Activity" {
		t.Errorf("title = %q", trip.Title)
	}
	if trip.Priority != models.PriorityHigh || trip.ConfidenceScore != 0.9 {
		t.Errorf("trip priority = %s/%.2f, want high/0.9", trip.Priority, trip.ConfidenceScore)
	}
	if trip.DataSupport["date_range"] != "2024-08-01 to 2024-09-10" {
		t.Errorf("date_range = %v", trip.DataSupport["date_range"])
	}

	if got[2].Priority != models.PriorityLow || got[2].ConfidenceScore != 0.7 {
		t.Errorf("networking priority = %s/%.2f", got[2].Priority, got[2].ConfidenceScore)
	}

	trend := got[4]
	if trend.DataSupport["max_month"] != "2024-08" {
		t.Errorf("max_month = %v, want 2024-08", trend.DataSupport["max_month"])
	}
}

// A record is attributed to its first non-marker tag only. Record 3 carries
// "trip" before "food" and therefore never contributes to a "food" group.
func TestInsightsGroupByFirstNonMarkerTag(t *testing.T) {
	records := []models.Transaction{
		tx("1", "100", "travel", "2024-08-01", "trip", "kellogg", "food"),
		tx("2", "20", "food", "2024-08-02", "kellogg", "food"),
	}

	got := Insights(records, InsightOptions{})

	groups := categoriesOf(got)[1:]
	if len(groups) != 2 || groups[0] != "trip" || groups[1] != "food" {
		t.Fatalf("groups = %v, want [trip food]", groups)
	}
	if got[2].DataSupport["transaction_count"] != 1 {
		t.Errorf("food group count = %v, want 1", got[2].DataSupport["transaction_count"])
	}
}

func TestInsightsPriorityThresholds(t *testing.T) {
	tests := []struct {
		name    string
		amounts []string
		want    models.Priority
	}{
		{"over 1000", []string{"1000.01"}, models.PriorityHigh},
		{"exactly 1000", []string{"1000"}, models.PriorityMedium},
		{"six small", []string{"1", "1", "1", "1", "1", "1"}, models.PriorityHigh},
		{"four small", []string{"1", "1", "1", "1"}, models.PriorityMedium},
		{"exactly 500", []string{"500"}, models.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []models.Transaction
			for i, a := range tt.amounts {
				records = append(records, tx(string(rune('a'+i)), a, "misc", "2024-08-01", "kellogg", "club"))
			}
			got := Insights(records, InsightOptions{})
			if len(got) != 2 {
				t.Fatalf("insights = %v", categoriesOf(got))
			}
			if got[1].Priority != tt.want {
				t.Errorf("priority = %s, want %s", got[1].Priority, tt.want)
			}
			if got[1].ConfidenceScore != tt.want.Confidence() {
				t.Errorf("confidence = %.2f", got[1].ConfidenceScore)
			}
		})
	}
}

func TestInsightsTrendTieUsesEarliestMonth(t *testing.T) {
	records := []models.Transaction{
		tx("1", "100", "misc", "2024-10-01", "kellogg"),
		tx("2", "100", "misc", "2024-08-01", "kellogg"),
		tx("3", "50", "misc", "2024-09-01", "kellogg"),
	}

	got := Insights(records, InsightOptions{})
	trend := got[len(got)-1]
	if trend.Category != "mba_trends" {
		t.Fatalf("last insight = %s", trend.Category)
	}
	if trend.DataSupport["max_month"] != "2024-08" {
		t.Errorf("max_month = %v, want 2024-08", trend.DataSupport["max_month"])
	}
}

func TestInsightsFallback(t *testing.T) {
	t.Run("fallback category present", func(t *testing.T) {
		records := []models.Transaction{
			tx("1", "1500", "tuition", "2024-08-15"),
			tx("2", "1500", "tuition", "2025-01-15"),
			tx("3", "20", "food", "2024-08-16"),
		}
		got := Insights(records, InsightOptions{})
		if len(got) != 1 {
			t.Fatalf("insights = %v", categoriesOf(got))
		}
		if got[0].Category != "tuition" || got[0].ConfidenceScore != 0.9 || got[0].Priority != models.PriorityHigh {
			t.Errorf("fallback = %+v", got[0])
		}
		if got[0].DataSupport["payment_count"] != 2 {
			t.Errorf("payment_count = %v", got[0].DataSupport["payment_count"])
		}
	})

	t.Run("fallback category in any case", func(t *testing.T) {
		records := []models.Transaction{tx("1", "1500", "tuition", "2024-08-15")}
		got := Insights(records, InsightOptions{FallbackCategory: "Tuition"})
		if len(got) != 1 || got[0].Category != "tuition" {
			t.Errorf("insights = %v", categoriesOf(got))
		}
	})

	t.Run("nothing to report", func(t *testing.T) {
		got := Insights([]models.Transaction{tx("1", "20", "food", "2024-08-16")}, InsightOptions{})
		if got == nil || len(got) != 0 {
			t.Errorf("insights = %v, want empty", got)
		}
	})

	t.Run("custom marker", func(t *testing.T) {
		records := []models.Transaction{tx("1", "20", "food", "2024-08-16", "wharton")}
		got := Insights(records, InsightOptions{MarkerTag: "Wharton", FallbackCategory: "books"})
		if len(got) != 2 || got[1].Category != "general_activities" {
			t.Errorf("insights = %v", categoriesOf(got))
		}
	})
}
