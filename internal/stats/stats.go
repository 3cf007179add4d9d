// Package stats computes aggregate figures over a transaction dataset.
package stats

import (
	"github.com/shopspring/decimal"

	"mbaillet/cic-xlsx/internal/models"
)

// Compute derives the summary statistics for a dataset in a single pass.
// The balance is the sum of signed amounts, so it equals total credits
// minus total debits.
func Compute(dataset models.Dataset) models.Statistics {
	s := models.Statistics{
		Balance:      decimal.Zero,
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
		Count:        len(dataset),
	}
	for _, tx := range dataset {
		if tx.IsDebit() {
			s.TotalDebits = s.TotalDebits.Add(tx.Amount)
		} else {
			s.TotalCredits = s.TotalCredits.Add(tx.Amount)
		}
		s.Balance = s.Balance.Add(tx.SignedAmount())

		if s.DateMin.IsZero() || tx.Date.Before(s.DateMin) {
			s.DateMin = tx.Date
		}
		if s.DateMax.IsZero() || tx.Date.After(s.DateMax) {
			s.DateMax = tx.Date
		}
	}
	return s
}
