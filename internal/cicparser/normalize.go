package cicparser

import (
	"strings"

	"mbaillet/cic-xlsx/internal/currencyutils"
	"mbaillet/cic-xlsx/internal/dateutils"
	"mbaillet/cic-xlsx/internal/models"
	"mbaillet/cic-xlsx/internal/parsererror"
	"mbaillet/cic-xlsx/internal/textutils"
)

// isTransactionRow implements the row gate: a table row is transactional
// exactly when its date cell parses under the profile layout. Summary and
// carry-forward lines that happen to match the column shape fail here and
// are skipped without being counted as malformed.
func (p *Parser) isTransactionRow(raw RawRow) bool {
	return dateutils.IsDate(raw.Date, p.profile.DateLayout)
}

// normalizeRow converts one raw row into a Transaction or fails with a
// MalformedRowError. The caller has already established that the date cell
// holds a date, so a failure here means the row claimed to be a
// transaction but its content is broken.
func (p *Parser) normalizeRow(raw RawRow, document string) (models.Transaction, error) {
	date, err := dateutils.Parse(raw.Date, p.profile.DateLayout)
	if err != nil {
		return models.Transaction{}, &parsererror.MalformedRowError{
			Document: document, Page: raw.Page,
			Field: "date", Value: raw.Date, Reason: err.Error(),
		}
	}

	label := textutils.CollapseSpaces(raw.Label)
	if label == "" {
		return models.Transaction{}, &parsererror.MalformedRowError{
			Document: document, Page: raw.Page,
			Field: "label", Value: raw.Label, Reason: "empty label",
		}
	}

	debitCell := strings.TrimSpace(raw.Debit)
	creditCell := strings.TrimSpace(raw.Credit)

	// Exactly one of the two cells must be present. Guessing the side of
	// an ambiguous row would corrupt the balance silently.
	switch {
	case debitCell == "" && creditCell == "":
		return models.Transaction{}, &parsererror.MalformedRowError{
			Document: document, Page: raw.Page,
			Field: "amount", Value: "", Reason: "neither debit nor credit present",
		}
	case debitCell != "" && creditCell != "":
		return models.Transaction{}, &parsererror.MalformedRowError{
			Document: document, Page: raw.Page,
			Field: "amount", Value: debitCell + "/" + creditCell,
			Reason: "both debit and credit present",
		}
	}

	side := models.Debit
	cell := debitCell
	field := "debit"
	if creditCell != "" {
		side = models.Credit
		cell = creditCell
		field = "credit"
	}

	amount, err := currencyutils.ParseAmount(cell, p.profile.Separators())
	if err != nil {
		return models.Transaction{}, &parsererror.MalformedRowError{
			Document: document, Page: raw.Page,
			Field: field, Value: cell, Reason: err.Error(),
		}
	}
	if amount.IsNegative() {
		return models.Transaction{}, &parsererror.MalformedRowError{
			Document: document, Page: raw.Page,
			Field: field, Value: cell, Reason: "negative amount in a one-sided column",
		}
	}

	return models.Transaction{
		Date:           date,
		Label:          label,
		CreditDebit:    side,
		Amount:         amount,
		SourceDocument: document,
		Page:           raw.Page,
	}, nil
}
