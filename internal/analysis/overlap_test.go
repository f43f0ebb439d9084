package analysis

import (
	"slices"
	"testing"

	"expense-explorer/internal/models"
)

func TestTagCategoryOverlapMissingTag(t *testing.T) {
	got := TagCategoryOverlap(fixture(), "nonexistent_tag")

	if got.TargetTag != "nonexistent_tag" {
		t.Errorf("target_tag = %q", got.TargetTag)
	}
	if !got.TotalTaggedAmount.IsZero() || got.TotalTaggedTransactions != 0 {
		t.Errorf("totals = %s/%d, want zero", got.TotalTaggedAmount, got.TotalTaggedTransactions)
	}
	if got.VennSets == nil || len(got.VennSets) != 0 {
		t.Errorf("venn_sets = %v, want empty non-nil", got.VennSets)
	}
	if len(got.CategoryOverlaps) != 0 {
		t.Errorf("category_overlaps = %v, want empty", got.CategoryOverlaps)
	}
}

func TestTagCategoryOverlapTrip(t *testing.T) {
	records := []models.Transaction{
		tx("1", "40", "food", "2024-08-01", "trip"),
		tx("2", "60", "transportation", "2024-08-02", "Trip", "work"),
		tx("3", "500", "food", "2024-08-03", "home"),
	}

	got := TagCategoryOverlap(records, "trip")

	assertDecimal(t, "total_tagged_amount", got.TotalTaggedAmount, "100")
	if got.TotalTaggedTransactions != 2 {
		t.Errorf("total_tagged_transactions = %d, want 2", got.TotalTaggedTransactions)
	}
	if len(got.VennSets) != 2 {
		t.Fatalf("venn sets = %d, want 2", len(got.VennSets))
	}

	first, second := got.VennSets[0], got.VennSets[1]
	if first.Category != "transportation" || first.Percentage != 60.0 {
		t.Errorf("first set = %s %.2f, want transportation 60", first.Category, first.Percentage)
	}
	if second.Category != "food" || second.Percentage != 40.0 {
		t.Errorf("second set = %s %.2f, want food 40", second.Category, second.Percentage)
	}
	if sum := first.Percentage + second.Percentage; sum != 100.0 {
		t.Errorf("percentages sum to %.4f", sum)
	}
	if first.SetName != "trip ∩ Transportation" {
		t.Errorf("set_name = %q", first.SetName)
	}
	if len(first.Transactions) != 1 || first.Transactions[0].ID != "2" {
		t.Errorf("transportation members = %+v", first.Transactions)
	}
	if got.CategoryOverlaps["food"].PercentageOfTag != 40.0 {
		t.Errorf("food percentage_of_tag = %.2f", got.CategoryOverlaps["food"].PercentageOfTag)
	}
}

func TestTagCategoryOverlapZeroTotal(t *testing.T) {
	records := []models.Transaction{
		tx("1", "25", "food", "2024-08-01", "refund"),
		tx("2", "-25", "food", "2024-08-05", "refund"),
	}

	got := TagCategoryOverlap(records, "refund")

	if !got.TotalTaggedAmount.IsZero() || got.TotalTaggedTransactions != 2 {
		t.Fatalf("totals = %s/%d", got.TotalTaggedAmount, got.TotalTaggedTransactions)
	}
	if len(got.VennSets) != 1 || got.VennSets[0].Percentage != 0 {
		t.Errorf("venn sets = %+v, want one set with 0%%", got.VennSets)
	}
}

func TestMultiTagCategoryOverlap(t *testing.T) {
	records := []models.Transaction{
		tx("1", "40", "food", "2024-08-01", "trip"),
		tx("1", "40", "food", "2024-08-01", "trip"),
		tx("2", "60", "transportation", "2024-08-02", "trip", "work"),
		tx("3", "200", "food", "2024-08-03", "work"),
	}

	got := MultiTagCategoryOverlap(records, []string{"trip", "work"}, []string{"food", "transportation", "rent"})

	if got.TotalAnalyzedTransactions != 4 {
		t.Errorf("total_analyzed_transactions = %d", got.TotalAnalyzedTransactions)
	}

	var names []string
	for _, o := range got.Overlaps {
		names = append(names, o.Intersection)
	}
	want := []string{"work ∩ food", "trip ∩ food", "trip ∩ transportation", "work ∩ transportation"}
	if !slices.Equal(names, want) {
		t.Fatalf("intersections = %v, want %v", names, want)
	}

	tripFood := got.Overlaps[1]
	if tripFood.TransactionCount != 2 {
		t.Errorf("identical records collapsed: count = %d, want 2", tripFood.TransactionCount)
	}
	assertDecimal(t, "trip ∩ food", tripFood.Amount, "80")
}

func TestMultiTagCategoryOverlapRepeatedNames(t *testing.T) {
	records := []models.Transaction{
		tx("1", "40", "food", "2024-08-01", "trip"),
	}

	got := MultiTagCategoryOverlap(records, []string{"trip", "trip"}, []string{"food", "food"})

	if len(got.Overlaps) != 1 {
		t.Fatalf("overlaps = %d, want 1: %+v", len(got.Overlaps), got.Overlaps)
	}
	if got.Overlaps[0].Intersection != "trip ∩ food" || got.Overlaps[0].TransactionCount != 1 {
		t.Errorf("overlap = %+v", got.Overlaps[0])
	}
	assertDecimal(t, "trip ∩ food", got.Overlaps[0].Amount, "40")
	if !slices.Equal(got.Tags, []string{"trip"}) || !slices.Equal(got.Categories, []string{"food"}) {
		t.Errorf("tags = %v, categories = %v", got.Tags, got.Categories)
	}
}

func TestMultiTagCategoryOverlapEmpty(t *testing.T) {
	got := MultiTagCategoryOverlap(nil, nil, nil)
	if got.Overlaps == nil || got.Tags == nil || got.Categories == nil {
		t.Errorf("empty input produced nil slices: %+v", got)
	}
}

func TestAvailableTags(t *testing.T) {
	records := []models.Transaction{
		tx("1", "10", "food", "2024-08-01", "trip"),
		tx("2", "90", "transportation", "2024-08-02", "trip", "work"),
		tx("3", "30", "food", "2024-08-03", "trip"),
		tx("4", "150", "rent", "2024-08-04", "home"),
	}

	got := AvailableTags(records)

	if got.TotalTags != 3 || got.TotalTransactions != 4 {
		t.Errorf("totals = %d tags / %d transactions", got.TotalTags, got.TotalTransactions)
	}
	var order []string
	for _, s := range got.AvailableTags {
		order = append(order, s.Tag)
	}
	if !slices.Equal(order, []string{"home", "trip", "work"}) {
		t.Errorf("order = %v", order)
	}

	trip := got.AvailableTags[1]
	assertDecimal(t, "trip.total_amount", trip.TotalAmount, "130")
	if trip.TransactionCount != 3 || trip.CategoryCount != 2 {
		t.Errorf("trip = %+v", trip)
	}
	if !slices.Equal(trip.Categories, []string{"food", "transportation"}) {
		t.Errorf("trip categories = %v, want first-seen order", trip.Categories)
	}
}

func TestAvailableTagsEmpty(t *testing.T) {
	got := AvailableTags(nil)
	if got.AvailableTags == nil || got.TotalTags != 0 {
		t.Errorf("AvailableTags(nil) = %+v", got)
	}
}
