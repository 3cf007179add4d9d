// Package parsererror defines the error taxonomy of the extraction
// pipeline. Row-level errors are absorbed into per-document outcomes and
// document-level errors into batch outcomes; none of them abort a batch.
package parsererror

import "fmt"

// InvalidDocumentError means the signature check failed: the input is not
// a supported document at all, so no parsing was attempted.
type InvalidDocumentError struct {
	Document string
	Reason   string
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid document '%s': %s", e.Document, e.Reason)
}

// NoTablesFoundError means the document parsed as a PDF but none of its
// pages contained a recognizable transaction table. Distinct from a
// correctly parsed statement with zero transactions.
type NoTablesFoundError struct {
	Document string
	Pages    int
}

func (e *NoTablesFoundError) Error() string {
	return fmt.Sprintf("no transaction table found in '%s' (%d pages scanned)",
		e.Document, e.Pages)
}

// MalformedRowError means a single extracted row failed normalization.
// It is recorded in the document outcome and never stops extraction of
// the remaining rows.
type MalformedRowError struct {
	Document string
	Page     int
	Field    string
	Value    string
	Reason   string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row in '%s' page %d: %s='%s': %s",
		e.Document, e.Page, e.Field, e.Value, e.Reason)
}

// ParseError wraps an unexpected structural failure while reading a
// document, e.g. a corrupt content stream behind a valid PDF header.
type ParseError struct {
	Document string
	Stage    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in '%s' during %s: %v", e.Document, e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
