// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Credit/debit indicator values. Exactly one side is present per
// transaction; the indicator encodes which one, so a 0.00 debit stays
// distinguishable from an absent debit.
const (
	Debit  = "DBIT"
	Credit = "CRDT"
)

// Transaction represents one normalized statement line. Instances are
// created only by the row normalizer and never mutated afterwards.
type Transaction struct {
	Date           time.Time       // Booking date
	Label          string          // Free-text description from the statement
	CreditDebit    string          // Either "DBIT" or "CRDT"
	Amount         decimal.Decimal // Non-negative magnitude, 2 fractional digits
	SourceDocument string          // Originating file, kept for traceability
	Page           int             // 1-based page the row was extracted from
}

// NewDebit creates a debit transaction with the given magnitude.
func NewDebit(date time.Time, label string, amount decimal.Decimal) Transaction {
	return Transaction{Date: date, Label: label, CreditDebit: Debit, Amount: amount}
}

// NewCredit creates a credit transaction with the given magnitude.
func NewCredit(date time.Time, label string, amount decimal.Decimal) Transaction {
	return Transaction{Date: date, Label: label, CreditDebit: Credit, Amount: amount}
}

// IsDebit reports whether the debit cell was present on the source row.
func (t Transaction) IsDebit() bool {
	return t.CreditDebit == Debit
}

// IsCredit reports whether the credit cell was present on the source row.
func (t Transaction) IsCredit() bool {
	return t.CreditDebit == Credit
}

// SignedAmount returns the amount with debit sign convention applied:
// negative for debits, positive for credits.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsDebit() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// DebitAmount returns the debit magnitude and whether a debit is present.
func (t Transaction) DebitAmount() (decimal.Decimal, bool) {
	if t.IsDebit() {
		return t.Amount, true
	}
	return decimal.Zero, false
}

// CreditAmount returns the credit magnitude and whether a credit is present.
func (t Transaction) CreditAmount() (decimal.Decimal, bool) {
	if t.IsCredit() {
		return t.Amount, true
	}
	return decimal.Zero, false
}

// Validate checks the dataset invariants: a date, a non-empty label, a
// valid credit/debit indicator and a non-negative amount.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return fmt.Errorf("transaction has no date")
	}
	if strings.TrimSpace(t.Label) == "" {
		return fmt.Errorf("transaction has an empty label")
	}
	if t.CreditDebit != Debit && t.CreditDebit != Credit {
		return fmt.Errorf("invalid credit/debit indicator %q", t.CreditDebit)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("negative amount %s", t.Amount)
	}
	return nil
}

// Dataset is an ordered collection of transactions. After a batch
// completes it is sorted by date ascending, ties keeping extraction order.
type Dataset []Transaction

// SortByDate orders the dataset by booking date ascending. The sort is
// stable so transactions on the same day keep their extraction order.
func (d Dataset) SortByDate() {
	sort.SliceStable(d, func(i, j int) bool {
		return d[i].Date.Before(d[j].Date)
	})
}

// Clone returns an independent copy of the dataset. Readers get copies so
// the session-held dataset is never aliased by a presentation layer.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}
