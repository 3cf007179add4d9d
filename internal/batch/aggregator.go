// Package batch processes a batch of statement documents sequentially and
// merges their transactions into one dataset. Documents are handled one at
// a time in upload order, which keeps progress reporting and per-document
// error attribution deterministic.
package batch

import (
	"context"
	"errors"

	"mbaillet/cic-xlsx/internal/logging"
	"mbaillet/cic-xlsx/internal/models"
	"mbaillet/cic-xlsx/internal/parsererror"
)

// Document is one uploaded input: its claimed filename and raw bytes.
type Document struct {
	Name string
	Data []byte
}

// ProgressFunc is invoked once after each document completes, success or
// failure. That is the only meaningful granularity: progress inside a
// single document's table scan is not observable.
type ProgressFunc func(done, total int)

// DocumentParser is the per-document extraction contract the aggregator
// drives. Implemented by cicparser.Parser; tests inject stubs.
type DocumentParser interface {
	Parse(document string, data []byte) (models.Dataset, int, error)
}

// Aggregator merges the transactions of a document batch.
type Aggregator struct {
	parser DocumentParser
	logger logging.Logger
}

// NewAggregator creates an Aggregator around the given parser.
func NewAggregator(parser DocumentParser, logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Aggregator{parser: parser, logger: logger}
}

// ProcessBatch runs the full pipeline over every document in order:
// validate, extract, normalize, append. One ProcessingOutcome is recorded
// per document and a failing document never aborts the rest of the batch.
// The returned dataset is sorted by date once, after the whole batch, with
// extraction order as the stable secondary order.
//
// Cancellation is checked between documents only; a single document's
// extraction is an atomic unit of work. On cancellation the partial
// results accumulated so far are returned.
func (a *Aggregator) ProcessBatch(ctx context.Context, docs []Document, progress ProgressFunc) (models.Dataset, []models.ProcessingOutcome) {
	var dataset models.Dataset
	outcomes := make([]models.ProcessingOutcome, 0, len(docs))
	total := len(docs)

	a.logger.Info("processing batch", logging.F(logging.FieldCount, total))

	for i, doc := range docs {
		if ctx != nil && ctx.Err() != nil {
			a.logger.Warn("batch cancelled",
				logging.F(logging.FieldProgress, i),
				logging.F(logging.FieldCount, total))
			break
		}

		transactions, outcome := a.processDocument(doc)
		dataset = append(dataset, transactions...)
		outcomes = append(outcomes, outcome)

		if progress != nil {
			progress(i+1, total)
		}
	}

	// Per-document sorting would be wasted work; sort once at the end.
	dataset.SortByDate()

	a.logger.Info("batch complete",
		logging.F(logging.FieldCount, len(dataset)),
		logging.F("documents", len(outcomes)))

	return dataset, outcomes
}

// processDocument runs one document through the parser and folds the
// error taxonomy into a ProcessingOutcome.
func (a *Aggregator) processDocument(doc Document) (models.Dataset, models.ProcessingOutcome) {
	log := a.logger.WithField(logging.FieldDocument, doc.Name)
	log.Debug("processing document")

	transactions, skipped, err := a.parser.Parse(doc.Name, doc.Data)
	if err != nil {
		status, reason := classify(err)
		log.WithError(err).Warn("document failed",
			logging.F(logging.FieldStatus, string(status)))
		return nil, models.FailedOutcome(doc.Name, status, reason)
	}

	log.Info("document parsed",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldSkipped, skipped))
	return transactions, models.ParsedOutcome(doc.Name, len(transactions), skipped)
}

// classify maps pipeline errors onto outcome statuses. Unknown errors are
// structural parse failures.
func classify(err error) (models.OutcomeStatus, string) {
	var invalid *parsererror.InvalidDocumentError
	if errors.As(err, &invalid) {
		return models.StatusInvalidFormat, invalid.Reason
	}
	var noTables *parsererror.NoTablesFoundError
	if errors.As(err, &noTables) {
		return models.StatusNoTablesFound, noTables.Error()
	}
	return models.StatusParseError, err.Error()
}
