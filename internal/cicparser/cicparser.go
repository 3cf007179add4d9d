// Package cicparser locates transaction tables in CIC bank-statement PDFs
// and normalizes their rows into Transaction models. Tables are found by
// matching header cells against the profile's column-role keywords rather
// than by fixed column index, so statement layouts whose columns move
// between pages still parse.
package cicparser

import (
	"bytes"

	"mbaillet/cic-xlsx/internal/logging"
	"mbaillet/cic-xlsx/internal/models"
	"mbaillet/cic-xlsx/internal/parsererror"
	"mbaillet/cic-xlsx/internal/profile"
)

// pdfSignature is the byte prefix every well-formed PDF starts with.
var pdfSignature = []byte("%PDF-")

// RawRow is one extracted table row before normalization: the cell texts
// exactly as they appear in the statement.
type RawRow struct {
	Date   string
	Label  string
	Debit  string
	Credit string
	Page   int
}

// Parser extracts transactions from one statement format described by a
// profile. The zero value is not usable; construct with New.
type Parser struct {
	profile   profile.Profile
	extractor PageExtractor
	logger    logging.Logger
}

// New creates a Parser for the given profile using the real PDF extractor.
func New(p profile.Profile) *Parser {
	return NewWithExtractor(p, NewPDFExtractor())
}

// NewWithExtractor creates a Parser with an injected page extractor,
// used by tests to feed synthetic pages.
func NewWithExtractor(p profile.Profile, extractor PageExtractor) *Parser {
	return &Parser{
		profile:   p,
		extractor: extractor,
		logger:    logging.Default(),
	}
}

// SetLogger replaces the parser's logger.
func (p *Parser) SetLogger(logger logging.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// ValidateFormat checks that the byte stream is a well-formed document
// before any parsing is attempted. Only the format signature is checked;
// structural problems deeper in the file surface later as ParseError.
func (p *Parser) ValidateFormat(document string, data []byte) error {
	if !bytes.HasPrefix(data, pdfSignature) {
		return &parsererror.InvalidDocumentError{
			Document: document,
			Reason:   "missing %PDF- signature",
		}
	}
	return nil
}

// Parse extracts and normalizes every transaction in the document. It
// returns the transactions in extraction order plus the number of rows
// that matched the table shape but failed normalization. A malformed row
// never aborts the rest of the document.
func (p *Parser) Parse(document string, data []byte) (models.Dataset, int, error) {
	if err := p.ValidateFormat(document, data); err != nil {
		return nil, 0, err
	}

	pages, err := p.extractor.ExtractPages(data)
	if err != nil {
		return nil, 0, &parsererror.ParseError{
			Document: document,
			Stage:    "page extraction",
			Err:      err,
		}
	}

	log := p.logger.WithField(logging.FieldDocument, document)

	var transactions models.Dataset
	skipped := 0
	tablesFound := false

	for _, page := range pages {
		lines := clusterLines(page.Fragments)

		colmap, headerIdx, ok := findHeader(lines, p.profile)
		if !ok {
			log.Debug("no table header on page",
				logging.F(logging.FieldPage, page.Number))
			continue
		}
		tablesFound = true

		rows := extractRawRows(lines[headerIdx+1:], colmap, page.Number)
		for _, raw := range rows {
			// Rows without a parseable date are page totals, carried
			// balances or label continuations, not transactions.
			if !p.isTransactionRow(raw) {
				continue
			}

			tx, err := p.normalizeRow(raw, document)
			if err != nil {
				skipped++
				log.WithError(err).Warn("skipping malformed row",
					logging.F(logging.FieldPage, raw.Page))
				continue
			}
			transactions = append(transactions, tx)
		}

		log.Debug("extracted rows from page",
			logging.F(logging.FieldPage, page.Number),
			logging.F(logging.FieldCount, len(transactions)))
	}

	if !tablesFound {
		return nil, 0, &parsererror.NoTablesFoundError{
			Document: document,
			Pages:    len(pages),
		}
	}

	log.Info("parsed statement",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldSkipped, skipped))

	return transactions, skipped, nil
}

// ParseFile is a convenience wrapper for callers holding the file bytes
// and name together.
func ParseFile(prof profile.Profile, document string, data []byte) (models.Dataset, int, error) {
	return New(prof).Parse(document, data)
}
