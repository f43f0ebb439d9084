package ledger

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"expense-explorer/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDecoder(t *testing.T) *Decoder {
	return NewDecoder(zaptest.NewLogger(t), WithClock(func() time.Time { return fixedNow }))
}

func TestDecode(t *testing.T) {
	input := "\ufeffDate,Name,Amount,Category,Parent Category,Tags,Type,Excluded,Status,Account Mask,Note\n" +
		`2024-08-15,Fall Tuition,"$1,500.00",Tuition,Education,"Kellogg, Fall2024",regular,false,posted,1234,first` + "\n" +
		`08/20/2024,Uber ride,(12.50),,,trip;work,Internal Transfer,yes,nan,,` + "\n" +
		`2024-09-01 09:30:00,Payroll,2000,income,nan,,income,,,,` + "\n"

	res, err := newTestDecoder(t).Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(res.Transactions) != 3 || res.Skipped != 0 || res.Warnings != 0 {
		t.Fatalf("result = %d transactions, %d skipped, %d warnings", len(res.Transactions), res.Skipped, res.Warnings)
	}

	first := res.Transactions[0]
	if !first.Amount.Equal(decimal.RequireFromString("1500")) {
		t.Errorf("amount = %s", first.Amount)
	}
	if first.Category != (models.Category{Label: "tuition", Parent: "Education"}) {
		t.Errorf("category = %+v", first.Category)
	}
	if first.Description != "Fall Tuition" || first.Merchant != "Fall Tuition" {
		t.Errorf("description/merchant = %q/%q", first.Description, first.Merchant)
	}
	if !slices.Equal(first.Tags, []string{"kellogg", "fall2024"}) {
		t.Errorf("tags = %v", first.Tags)
	}
	if first.Status != "posted" || first.AccountMask != "1234" || first.Notes != "first" || first.Source != "csv" {
		t.Errorf("optional fields = %+v", first)
	}
	if !first.Date.Equal(time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %s", first.Date)
	}

	second := res.Transactions[1]
	if !second.Amount.Equal(decimal.RequireFromString("-12.5")) {
		t.Errorf("parenthesised amount = %s", second.Amount)
	}
	if second.Category.Label != "transportation" {
		t.Errorf("inferred category = %q", second.Category.Label)
	}
	if second.TransactionType != models.TransactionTypeInternalTransfer || !second.Excluded {
		t.Errorf("type/excluded = %s/%v", second.TransactionType, second.Excluded)
	}
	if !slices.Equal(second.Tags, []string{"trip", "work"}) || second.Status != "" {
		t.Errorf("tags/status = %v/%q", second.Tags, second.Status)
	}
	if second.Date.Month() != time.August || second.Date.Day() != 20 {
		t.Errorf("US date parsed as %s", second.Date)
	}

	third := res.Transactions[2]
	if third.TransactionType != models.TransactionTypeIncome || third.Category.Parent != "" {
		t.Errorf("third = %+v", third)
	}
	if third.Date.Hour() != 9 || third.Date.Minute() != 30 {
		t.Errorf("timestamp = %s", third.Date)
	}
	if len(third.Tags) != 0 || third.Tags == nil {
		t.Errorf("empty tags = %#v", third.Tags)
	}
}

func TestDecodeGeneratesStableUniqueIDs(t *testing.T) {
	input := "date,description,amount\n" +
		"2024-08-01,Coffee,4\n" +
		"2024-08-01,Coffee,4\n"

	first, err := newTestDecoder(t).Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	again, err := newTestDecoder(t).Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	a, b := first.Transactions[0].ID, first.Transactions[1].ID
	if a == "" || a == b {
		t.Errorf("ids not unique: %q %q", a, b)
	}
	if a != again.Transactions[0].ID || b != again.Transactions[1].ID {
		t.Error("ids differ between loads of the same file")
	}
}

func TestDecodeDuplicateExplicitIDs(t *testing.T) {
	input := "id,date,description,amount\n" +
		"tx-1,2024-08-01,Coffee,4\n" +
		"tx-1,2024-08-02,Lunch,12\n"

	res, err := newTestDecoder(t).Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if res.Transactions[0].ID != "tx-1" || res.Transactions[1].ID == "tx-1" {
		t.Errorf("ids = %q, %q", res.Transactions[0].ID, res.Transactions[1].ID)
	}
	if res.Warnings != 1 {
		t.Errorf("warnings = %d, want 1", res.Warnings)
	}
}

func TestDecodeDefaultsBadValues(t *testing.T) {
	input := "date,description,amount\n" +
		"someday,Mystery,lots\n" +
		",Blank,\n"

	res, err := newTestDecoder(t).Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Transactions) != 2 {
		t.Fatalf("transactions = %d, want 2", len(res.Transactions))
	}
	for _, tx := range res.Transactions {
		if !tx.Amount.IsZero() {
			t.Errorf("%s: amount = %s, want 0", tx.Description, tx.Amount)
		}
		if !tx.Date.Equal(fixedNow) {
			t.Errorf("%s: date = %s, want clock time", tx.Description, tx.Date)
		}
		if tx.Category.Label != "other" {
			t.Errorf("%s: category = %s", tx.Description, tx.Category.Label)
		}
	}
	if res.Warnings != 4 {
		t.Errorf("warnings = %d, want 4", res.Warnings)
	}
}

func TestDecodeSkipsMalformedRows(t *testing.T) {
	input := "date,description,amount\n" +
		"2024-08-01,Good,1\n" +
		`2024-08-02,"bad"x,2` + "\n" +
		"2024-08-03,Also good,3\n"

	res, err := newTestDecoder(t).Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if res.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", res.Skipped)
	}
	if len(res.Transactions) != 2 || res.Transactions[1].Description != "Also good" {
		t.Errorf("transactions = %+v", res.Transactions)
	}
}

func TestDecodeEmpty(t *testing.T) {
	_, err := newTestDecoder(t).Decode(strings.NewReader(""))
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("error = %v, want ErrNoHeader", err)
	}
}

func TestDecodeSampleRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSample(&buf); err != nil {
		t.Fatal(err)
	}

	res, err := newTestDecoder(t).Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Transactions) != 5 || res.Warnings != 0 {
		t.Fatalf("sample decoded to %d transactions with %d warnings", len(res.Transactions), res.Warnings)
	}
	if res.Transactions[3].Merchant != "Campus Cafe" {
		t.Errorf("merchant = %q", res.Transactions[3].Merchant)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"12.34", "12.34", true},
		{"-5", "-5", true},
		{"$1,234.56", "1234.56", true},
		{"€ 10", "10", true},
		{"(7.25)", "-7.25", true},
		{"", "0", false},
		{"NaN", "0", false},
		{"abc", "0", false},
	}
	for _, tt := range tests {
		got, ok := parseAmount(tt.in)
		if ok != tt.ok || !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("parseAmount(%q) = %s, %v; want %s, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseTags(t *testing.T) {
	tests := map[string][]string{
		"a, B ,c": {"a", "b", "c"},
		"x;y|z":   {"x", "y|z"},
		"one":     {"one"},
		"p||q":    {"p", "q"},
		"nan":     {},
	}
	for in, want := range tests {
		if got := parseTags(in); !slices.Equal(got, want) {
			t.Errorf("parseTags(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInferCategory(t *testing.T) {
	tests := map[string]string{
		"Spring semester fee":    "tuition",
		"Case study packet":      "books_supplies",
		"Dinner with team":       "food",
		"Lyft to airport":        "transportation",
		"Hotel in Chicago":       "travel",
		"":                       "other",
		"Something else":         "other",
		"Gym membership":         "health",
		"Streaming subscription": "technology",
	}
	for in, want := range tests {
		if got := InferCategory(in); got != want {
			t.Errorf("InferCategory(%q) = %q, want %q", in, got, want)
		}
	}
}
