// Package extractor is the public entry point of the statement
// extraction pipeline. It wires the parser, aggregator, statistics,
// filter and export stages behind one façade so callers (CLI, web UI)
// only deal with this package and the models.
package extractor

import (
	"context"
	"time"

	"mbaillet/cic-xlsx/internal/batch"
	"mbaillet/cic-xlsx/internal/cicparser"
	"mbaillet/cic-xlsx/internal/export"
	"mbaillet/cic-xlsx/internal/filter"
	"mbaillet/cic-xlsx/internal/logging"
	"mbaillet/cic-xlsx/internal/models"
	"mbaillet/cic-xlsx/internal/profile"
	"mbaillet/cic-xlsx/internal/session"
	"mbaillet/cic-xlsx/internal/stats"
)

// Document is one input file for a batch.
type Document = batch.Document

// ProgressFunc receives (done, total) after each processed document.
type ProgressFunc = batch.ProgressFunc

// Extractor runs the full pipeline for one statement format. The results
// of the most recent batch are kept in a session store so a presentation
// layer can re-query them between user actions.
type Extractor struct {
	profile      profile.Profile
	parser       *cicparser.Parser
	aggregator   *batch.Aggregator
	store        *session.Store
	logger       logging.Logger
	exportOpts   export.Options
	csvDelimiter rune
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used by every pipeline stage.
func WithLogger(logger logging.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithProfile selects the locale profile driving parsing.
func WithProfile(p profile.Profile) Option {
	return func(e *Extractor) {
		e.profile = p
	}
}

// WithMaxColumnWidth caps the XLSX column widths.
func WithMaxColumnWidth(width float64) Option {
	return func(e *Extractor) {
		e.exportOpts.MaxColumnWidth = width
	}
}

// WithCSVDelimiter sets the field delimiter used by ExportCSV.
func WithCSVDelimiter(delimiter rune) Option {
	return func(e *Extractor) {
		if delimiter != 0 {
			e.csvDelimiter = delimiter
		}
	}
}

// New builds an Extractor. Without options it uses the built-in CIC
// profile and the default logger.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		profile:      profile.CIC(),
		store:        session.NewStore(),
		logger:       logging.Default(),
		csvDelimiter: export.DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.parser = cicparser.New(e.profile)
	e.parser.SetLogger(e.logger)
	e.aggregator = batch.NewAggregator(e.parser, e.logger)
	export.SetLogger(e.logger)

	e.logger.Debug("extractor initialized",
		logging.F(logging.FieldProfile, e.profile.Name))
	return e
}

// Validate checks that data looks like a PDF document.
func (e *Extractor) Validate(document string, data []byte) error {
	return e.parser.ValidateFormat(document, data)
}

// ProcessBatch parses every document sequentially and returns the merged
// chronological dataset plus one outcome per document. The results
// replace the session contents wholesale.
func (e *Extractor) ProcessBatch(ctx context.Context, docs []Document, progress ProgressFunc) (models.Dataset, []models.ProcessingOutcome) {
	dataset, outcomes := e.aggregator.ProcessBatch(ctx, docs, progress)
	e.store.Set(dataset, outcomes)
	return dataset, outcomes
}

// Session returns a read-only copy of the most recent batch results.
func (e *Extractor) Session() session.Snapshot {
	return e.store.Snapshot()
}

// ClearSession resets the session store to its initial empty state.
func (e *Extractor) ClearSession() {
	e.store.Clear()
}

// ComputeStatistics derives the summary figures for a dataset.
func (e *Extractor) ComputeStatistics(dataset models.Dataset) models.Statistics {
	return stats.Compute(dataset)
}

// ApplyFilter narrows a dataset by the given criteria.
func (e *Extractor) ApplyFilter(dataset models.Dataset, criteria models.FilterCriteria) filter.Result {
	return filter.Apply(dataset, criteria)
}

// ExportXLSX renders the dataset as a styled XLSX workbook.
func (e *Extractor) ExportXLSX(dataset models.Dataset) ([]byte, error) {
	return export.XLSXWithOptions(dataset, e.exportOpts)
}

// ExportCSV renders the dataset as CSV with the configured delimiter.
func (e *Extractor) ExportCSV(dataset models.Dataset) ([]byte, error) {
	return export.CSVWithDelimiter(dataset, e.csvDelimiter)
}

// ExportFilename builds the dated export file name.
func (e *Extractor) ExportFilename(scope string, now time.Time) string {
	return export.Filename(scope, now)
}
