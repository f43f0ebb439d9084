package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalRegularAmount decimal.Decimal `json:"total_regular_amount"`
	TotalIncomeAmount  decimal.Decimal `json:"total_income_amount"`
	NetAmount          decimal.Decimal `json:"net_amount"`
	TransactionCount   int             `json:"transaction_count"`
	RegularCount       int             `json:"regular_count"`
	IncomeCount        int             `json:"income_count"`
	TransferCount      int             `json:"transfer_count"`
	AverageAmount      decimal.Decimal `json:"average_amount"`
}

// CategoryTotals accumulates per-type sums for one bucket. Net excludes transfers.
type CategoryTotals struct {
	Regular   decimal.Decimal `json:"regular"`
	Income    decimal.Decimal `json:"income"`
	Transfers decimal.Decimal `json:"transfers"`
	Net       decimal.Decimal `json:"net"`
	Count     int             `json:"count"`
}

type MonthlyTrend struct {
	Month            string          `json:"month"`
	Regular          decimal.Decimal `json:"regular"`
	Income           decimal.Decimal `json:"income"`
	Transfers        decimal.Decimal `json:"transfers"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transaction_count"`
}

type MerchantTotal struct {
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

type SpendingVelocity struct {
	Daily   decimal.Decimal `json:"daily"`
	Weekly  decimal.Decimal `json:"weekly"`
	Monthly decimal.Decimal `json:"monthly"`
}

// TransactionSummary is the combined dashboard payload.
type TransactionSummary struct {
	Summary
	CategoryBreakdown map[string]CategoryTotals `json:"category_breakdown"`
	MonthlyTrends     []MonthlyTrend            `json:"monthly_trends"`
	TopMerchants      []MerchantTotal           `json:"top_merchants"`
	SpendingVelocity  SpendingVelocity          `json:"spending_velocity"`
}

type CategoryOverlap struct {
	Amount           decimal.Decimal `json:"amount"`
	TransactionCount int             `json:"transaction_count"`
	PercentageOfTag  float64         `json:"percentage_of_tag"`
}

type VennTransaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Merchant    string          `json:"merchant"`
}

// VennSet is the part of a tag's transactions that falls into one category.
type VennSet struct {
	SetName          string            `json:"set_name"`
	Category         string            `json:"category"`
	Tag              string            `json:"tag"`
	Amount           decimal.Decimal   `json:"amount"`
	TransactionCount int               `json:"transaction_count"`
	Percentage       float64           `json:"percentage"`
	Transactions     []VennTransaction `json:"transactions"`
}

type TagOverlap struct {
	TargetTag               string                     `json:"target_tag"`
	TotalTaggedAmount       decimal.Decimal            `json:"total_tagged_amount"`
	TotalTaggedTransactions int                        `json:"total_tagged_transactions"`
	CategoryOverlaps        map[string]CategoryOverlap `json:"category_overlaps"`
	VennSets                []VennSet                  `json:"venn_sets"`
}

type Intersection struct {
	Intersection     string          `json:"intersection"`
	Tag              string          `json:"tag"`
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	TransactionCount int             `json:"transaction_count"`
	Transactions     []Transaction   `json:"transactions"`
}

type MultiTagOverlap struct {
	Tags                      []string       `json:"tags"`
	Categories                []string       `json:"categories"`
	Overlaps                  []Intersection `json:"overlaps"`
	TotalAnalyzedTransactions int            `json:"total_analyzed_transactions"`
}

type TagStat struct {
	Tag              string          `json:"tag"`
	TransactionCount int             `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CategoryCount    int             `json:"category_count"`
	Categories       []string        `json:"categories"`
}

type TagCatalogue struct {
	AvailableTags     []TagStat `json:"available_tags"`
	TotalTags         int       `json:"total_tags"`
	TotalTransactions int       `json:"total_transactions"`
}

type CategoryInfo struct {
	Name             string          `json:"name"`
	DisplayName      string          `json:"display_name"`
	Description      string          `json:"description"`
	Color            string          `json:"color"`
	Icon             string          `json:"icon"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
}

type CategoryHierarchy struct {
	Categories       []string                  `json:"categories"`
	ParentCategories []string                  `json:"parent_categories"`
	Hierarchy        map[string]map[string]int `json:"hierarchy"`
	CategoryCounts   map[string]int            `json:"category_counts"`
}
