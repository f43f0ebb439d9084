package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeRegular          TransactionType = "regular"
	TransactionTypeInternalTransfer TransactionType = "internal_transfer"
	TransactionTypeIncome           TransactionType = "income"
)

// ParseTransactionType maps a source label to a TransactionType.
// Unknown labels fall back to regular.
func ParseTransactionType(s string) TransactionType {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", " ") {
	case "internal transfer", "transfer":
		return TransactionTypeInternalTransfer
	case "income":
		return TransactionTypeIncome
	default:
		return TransactionTypeRegular
	}
}

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeRegular, TransactionTypeInternalTransfer, TransactionTypeIncome:
		return true
	}
	return false
}

// Category is a free-form label taken from the source data, with an optional parent label.
type Category struct {
	Label  string `json:"label"`
	Parent string `json:"parent,omitempty"`
}

func (c Category) String() string {
	return c.Label
}

type Transaction struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Merchant        string          `json:"merchant,omitempty"`
	Account         string          `json:"account,omitempty"`
	AccountMask     string          `json:"account_mask,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Category        Category        `json:"category"`
	Date            time.Time       `json:"date"`
	Tags            []string        `json:"tags"`
	TransactionType TransactionType `json:"transaction_type"`
	Excluded        bool            `json:"excluded"`
	Status          string          `json:"status,omitempty"`
	Recurring       string          `json:"recurring,omitempty"`
	Source          string          `json:"source,omitempty"`
}

// AbsoluteAmount returns |Amount| without touching the stored sign.
func (t Transaction) AbsoluteAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// HasTag reports whether the transaction carries tag, ignoring case.
func (t Transaction) HasTag(tag string) bool {
	for _, own := range t.Tags {
		if strings.EqualFold(own, tag) {
			return true
		}
	}
	return false
}

// MonthKey returns the YYYY-MM bucket of the transaction date.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}
