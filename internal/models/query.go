package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionQuery narrows a record set. Nil pointers, empty slices and empty
// strings mean "no constraint".
type TransactionQuery struct {
	StartDate        *time.Time
	EndDate          *time.Time
	Categories       []string
	TransactionTypes []TransactionType
	MinAmount        *decimal.Decimal
	MaxAmount        *decimal.Decimal
	SearchText       string
	Tags             []string
	IncludeExcluded  bool
}
