package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statistics are the aggregate metrics derived from a dataset or a
// filtered view. All monetary fields are decimals; TotalDebits is the
// positive sum of debit magnitudes, so Balance = TotalCredits - TotalDebits.
type Statistics struct {
	Balance      decimal.Decimal
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	Count        int
	DateMin      time.Time // Zero for an empty dataset
	DateMax      time.Time // Zero for an empty dataset
}

// HasDateSpan reports whether the date span is defined, i.e. the dataset
// the statistics were computed from was non-empty.
func (s Statistics) HasDateSpan() bool {
	return !s.DateMin.IsZero() && !s.DateMax.IsZero()
}
