package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"expense-explorer/internal/models"

	"github.com/shopspring/decimal"
)

var sampleHeader = []string{"date", "amount", "description", "category", "merchant", "tags", "notes"}

var sampleRows = [][]string{
	{"2024-08-15", "1500.00", "Fall 2024 Tuition", "tuition", "University", "tuition,fall2024", "First semester tuition payment"},
	{"2024-08-20", "89.99", "Strategic Management Textbook", "books", "University Bookstore", "textbook,strategy", "Required textbook for Strategy class"},
	{"2024-09-05", "45.00", "Networking Event - Finance Club", "networking", "Finance Club", "networking,finance", "Monthly networking mixer"},
	{"2024-09-10", "25.50", "Lunch with study group", "food", "Campus Cafe", "food,study", "Group study lunch"},
	{"2024-09-15", "120.00", "Monthly rent payment", "housing", "Apartment Complex", "rent,housing", "September rent"},
}

// WriteSample writes a small example ledger in the expected format.
func WriteSample(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sampleHeader); err != nil {
		return fmt.Errorf("failed to write sample header: %w", err)
	}
	if err := cw.WriteAll(sampleRows); err != nil {
		return fmt.Errorf("failed to write sample rows: %w", err)
	}
	return nil
}

// SampleTransactions is the built-in data set served when no ledger exists yet.
func SampleTransactions() []models.Transaction {
	sample := func(id, amount, desc, category, date, merchant string, tags ...string) models.Transaction {
		d, _ := time.Parse("2006-01-02", date)
		return models.Transaction{
			ID:              id,
			Amount:          decimal.RequireFromString(amount),
			Description:     desc,
			Merchant:        merchant,
			Category:        models.Category{Label: category},
			Date:            d,
			Tags:            tags,
			TransactionType: models.TransactionTypeRegular,
			Source:          "sample",
		}
	}

	return []models.Transaction{
		sample("1", "1500.00", "Fall 2024 Tuition Payment", "tuition", "2024-08-15", "University", "tuition", "fall2024"),
		sample("2", "89.99", "Strategic Management Textbook", "books_supplies", "2024-08-20", "University Bookstore", "textbook", "strategy"),
		sample("3", "45.00", "Finance Club Networking Event", "networking", "2024-09-05", "Finance Club", "networking", "finance"),
	}
}
