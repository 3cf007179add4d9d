package models

import "fmt"

// OutcomeStatus is the per-document processing result kind.
type OutcomeStatus string

const (
	StatusParsed        OutcomeStatus = "parsed"
	StatusInvalidFormat OutcomeStatus = "invalid_format"
	StatusNoTablesFound OutcomeStatus = "no_tables_found"
	StatusParseError    OutcomeStatus = "parse_error"
)

// ProcessingOutcome records what happened to a single input document
// during a batch. One outcome is emitted per document, success or not,
// so a batch of N documents always yields N outcomes.
type ProcessingOutcome struct {
	Document     string        // Claimed filename of the input
	Status       OutcomeStatus
	Transactions int    // Number of transactions extracted (StatusParsed only)
	SkippedRows  int    // Rows that matched the table shape but failed normalization
	Reason       string // Human-readable failure reason for non-parsed statuses
}

// ParsedOutcome builds a success outcome for a document.
func ParsedOutcome(document string, transactions, skippedRows int) ProcessingOutcome {
	return ProcessingOutcome{
		Document:     document,
		Status:       StatusParsed,
		Transactions: transactions,
		SkippedRows:  skippedRows,
	}
}

// FailedOutcome builds a failure outcome with the given status and reason.
func FailedOutcome(document string, status OutcomeStatus, reason string) ProcessingOutcome {
	return ProcessingOutcome{Document: document, Status: status, Reason: reason}
}

// String renders the outcome the way the CLI reports it.
func (o ProcessingOutcome) String() string {
	switch o.Status {
	case StatusParsed:
		if o.SkippedRows > 0 {
			return fmt.Sprintf("%s: %d transactions (%d rows skipped)",
				o.Document, o.Transactions, o.SkippedRows)
		}
		return fmt.Sprintf("%s: %d transactions", o.Document, o.Transactions)
	default:
		return fmt.Sprintf("%s: %s (%s)", o.Document, o.Status, o.Reason)
	}
}
