package batch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbaillet/cic-xlsx/internal/logging"
	"mbaillet/cic-xlsx/internal/models"
	"mbaillet/cic-xlsx/internal/parsererror"
)

// stubParser maps document names to canned parse results.
type stubParser struct {
	results map[string]stubResult
}

type stubResult struct {
	transactions models.Dataset
	skipped      int
	err          error
}

func (s *stubParser) Parse(document string, data []byte) (models.Dataset, int, error) {
	r, ok := s.results[document]
	if !ok {
		return nil, 0, &parsererror.InvalidDocumentError{Document: document, Reason: "unknown stub"}
	}
	return r.transactions, r.skipped, r.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tenValidRows(document string) models.Dataset {
	var ds models.Dataset
	for i := 1; i <= 10; i++ {
		tx := models.NewDebit(date(2024, 1, i), "OP", dec("10.00"))
		tx.SourceDocument = document
		ds = append(ds, tx)
	}
	return ds
}

func TestProcessBatchMixedOutcomes(t *testing.T) {
	// First document: 10 valid rows plus 1 malformed. Second document is
	// not a valid PDF. The dataset keeps the 10 good rows and the
	// outcomes list keeps both documents.
	parser := &stubParser{results: map[string]stubResult{
		"janvier.pdf": {transactions: tenValidRows("janvier.pdf"), skipped: 1},
		"notes.txt": {err: &parsererror.InvalidDocumentError{
			Document: "notes.txt", Reason: "missing %PDF- signature"}},
	}}
	agg := NewAggregator(parser, logging.NewMockLogger())

	docs := []Document{
		{Name: "janvier.pdf", Data: []byte("%PDF-")},
		{Name: "notes.txt", Data: []byte("x")},
	}
	dataset, outcomes := agg.ProcessBatch(context.Background(), docs, nil)

	assert.Len(t, dataset, 10)
	require.Len(t, outcomes, 2)

	assert.Equal(t, models.StatusParsed, outcomes[0].Status)
	assert.Equal(t, 10, outcomes[0].Transactions)
	assert.Equal(t, 1, outcomes[0].SkippedRows)

	assert.Equal(t, models.StatusInvalidFormat, outcomes[1].Status)
	assert.Equal(t, "missing %PDF- signature", outcomes[1].Reason)
}

func TestProcessBatchSortsOnceAtTheEnd(t *testing.T) {
	parser := &stubParser{results: map[string]stubResult{
		"fevrier.pdf": {transactions: models.Dataset{
			models.NewCredit(date(2024, 1, 5), "VIREMENT", dec("100.00")),
		}},
		"janvier.pdf": {transactions: models.Dataset{
			models.NewDebit(date(2024, 1, 1), "LOYER", dec("50.00")),
		}},
	}}
	agg := NewAggregator(parser, logging.NewMockLogger())

	dataset, _ := agg.ProcessBatch(context.Background(), []Document{
		{Name: "fevrier.pdf"}, {Name: "janvier.pdf"},
	}, nil)

	require.Len(t, dataset, 2)
	assert.Equal(t, "LOYER", dataset[0].Label)
	assert.Equal(t, "-50.00", dataset[0].SignedAmount().StringFixed(2))
	assert.Equal(t, "VIREMENT", dataset[1].Label)
	assert.Equal(t, "100.00", dataset[1].SignedAmount().StringFixed(2))
}

func TestProcessBatchProgressPerDocument(t *testing.T) {
	parser := &stubParser{results: map[string]stubResult{
		"a.pdf": {}, "b.pdf": {}, "c.pdf": {},
	}}
	agg := NewAggregator(parser, logging.NewMockLogger())

	var calls [][2]int
	progress := func(done, total int) { calls = append(calls, [2]int{done, total}) }

	agg.ProcessBatch(context.Background(), []Document{
		{Name: "a.pdf"}, {Name: "b.pdf"}, {Name: "c.pdf"},
	}, progress)

	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, calls)
}

func TestProcessBatchOutcomeStatuses(t *testing.T) {
	parser := &stubParser{results: map[string]stubResult{
		"ok.pdf":     {transactions: tenValidRows("ok.pdf")},
		"lettre.pdf": {err: &parsererror.NoTablesFoundError{Document: "lettre.pdf", Pages: 2}},
		"casse.pdf": {err: &parsererror.ParseError{
			Document: "casse.pdf", Stage: "page extraction", Err: errors.New("corrupt xref")}},
	}}
	agg := NewAggregator(parser, logging.NewMockLogger())

	_, outcomes := agg.ProcessBatch(context.Background(), []Document{
		{Name: "ok.pdf"}, {Name: "lettre.pdf"}, {Name: "casse.pdf"},
	}, nil)

	require.Len(t, outcomes, 3)
	assert.Equal(t, models.StatusParsed, outcomes[0].Status)
	assert.Equal(t, models.StatusNoTablesFound, outcomes[1].Status)
	assert.Equal(t, models.StatusParseError, outcomes[2].Status)
	assert.Contains(t, outcomes[2].Reason, "corrupt xref")
}

func TestProcessBatchCancellationBetweenDocuments(t *testing.T) {
	parser := &stubParser{results: map[string]stubResult{
		"a.pdf": {transactions: tenValidRows("a.pdf")},
		"b.pdf": {transactions: tenValidRows("b.pdf")},
	}}
	agg := NewAggregator(parser, logging.NewMockLogger())

	ctx, cancel := context.WithCancel(context.Background())
	var dataset models.Dataset
	var outcomes []models.ProcessingOutcome

	// Cancel after the first document completes; the second is skipped
	// and partial results are returned.
	progress := func(done, total int) {
		if done == 1 {
			cancel()
		}
	}
	dataset, outcomes = agg.ProcessBatch(ctx, []Document{
		{Name: "a.pdf"}, {Name: "b.pdf"},
	}, progress)

	assert.Len(t, dataset, 10)
	assert.Len(t, outcomes, 1)
}

func TestProcessBatchEmpty(t *testing.T) {
	agg := NewAggregator(&stubParser{}, logging.NewMockLogger())

	dataset, outcomes := agg.ProcessBatch(context.Background(), nil, nil)

	assert.Empty(t, dataset)
	assert.Empty(t, outcomes)
}
