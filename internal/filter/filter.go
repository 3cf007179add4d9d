// Package filter narrows a transaction dataset by user criteria.
package filter

import (
	"strings"

	"mbaillet/cic-xlsx/internal/models"
)

// Result carries the filtered view along with match counts for the
// "N of M" summary.
type Result struct {
	Transactions models.Dataset
	Matched      int
	Total        int
}

// Apply returns the transactions satisfying every populated criterion.
// Criteria combine with AND; an empty criteria set matches everything.
// Amount bounds apply to the signed amount, so debits compare as
// negative values. The input dataset is never mutated.
func Apply(dataset models.Dataset, criteria models.FilterCriteria) Result {
	result := Result{Total: len(dataset)}
	if criteria.IsEmpty() {
		result.Transactions = dataset.Clone()
		result.Matched = len(dataset)
		return result
	}

	query := strings.ToLower(strings.TrimSpace(criteria.TextQuery))
	for _, tx := range dataset {
		if !matches(tx, criteria, query) {
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}
	result.Matched = len(result.Transactions)
	return result
}

func matches(tx models.Transaction, criteria models.FilterCriteria, query string) bool {
	if query != "" && !strings.Contains(strings.ToLower(tx.Label), query) {
		return false
	}
	if criteria.DateFrom != nil && tx.Date.Before(*criteria.DateFrom) {
		return false
	}
	if criteria.DateTo != nil && tx.Date.After(*criteria.DateTo) {
		return false
	}
	signed := tx.SignedAmount()
	if criteria.AmountMin != nil && signed.LessThan(*criteria.AmountMin) {
		return false
	}
	if criteria.AmountMax != nil && signed.GreaterThan(*criteria.AmountMax) {
		return false
	}
	switch criteria.Type {
	case models.TypeDebit:
		if !tx.IsDebit() {
			return false
		}
	case models.TypeCredit:
		if !tx.IsCredit() {
			return false
		}
	}
	return true
}
