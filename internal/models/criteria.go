package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType selects which side of the ledger a filter keeps.
type TransactionType string

const (
	TypeAll    TransactionType = "all"
	TypeDebit  TransactionType = "debit"
	TypeCredit TransactionType = "credit"
)

// FilterCriteria describes a filtered view over a dataset. Nil pointer
// fields and empty strings mean "no constraint on that dimension"; active
// criteria are combined with logical AND.
type FilterCriteria struct {
	TextQuery string           // Case-insensitive substring over the label
	DateFrom  *time.Time       // Inclusive lower bound on the booking date
	DateTo    *time.Time       // Inclusive upper bound on the booking date
	AmountMin *decimal.Decimal // Inclusive lower bound on the signed amount
	AmountMax *decimal.Decimal // Inclusive upper bound on the signed amount
	Type      TransactionType  // Empty is equivalent to TypeAll
}

// IsEmpty reports whether no criterion is active.
func (c FilterCriteria) IsEmpty() bool {
	return c.TextQuery == "" &&
		c.DateFrom == nil && c.DateTo == nil &&
		c.AmountMin == nil && c.AmountMax == nil &&
		(c.Type == "" || c.Type == TypeAll)
}
