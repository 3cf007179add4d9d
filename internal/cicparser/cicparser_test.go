package cicparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbaillet/cic-xlsx/internal/logging"
	"mbaillet/cic-xlsx/internal/parsererror"
	"mbaillet/cic-xlsx/internal/profile"
)

// stubExtractor feeds synthetic pages to the parser, bypassing real PDF
// decoding. An empty stub yields no pages.
type stubExtractor struct {
	pages []Page
	err   error
}

func (s *stubExtractor) ExtractPages(data []byte) ([]Page, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pages, nil
}

// pdfBytes fakes a byte stream carrying the PDF signature; the stub
// extractor never looks at it.
var pdfBytes = []byte("%PDF-1.7 stub")

func statementPage(number int) Page {
	return Page{
		Number: number,
		Fragments: []Fragment{
			frag(50, 720, "RELEVE CIC"),
			frag(50, 700, "Date"),
			frag(150, 700, "Libellé"),
			frag(320, 700, "Débit"),
			frag(420, 700, "Crédit"),
			frag(50, 680, "05/01/2024"),
			frag(150, 680, "LOYER JANVIER"),
			frag(330, 680, "650,00"),
			frag(50, 660, "08/01/2024"),
			frag(150, 660, "VIREMENT SALAIRE"),
			frag(430, 660, "2.100,00"),
			// Page total line: no parseable date, silently skipped.
			frag(50, 640, "TOTAL DES MOUVEMENTS"),
			frag(330, 640, "650,00"),
		},
	}
}

func TestValidateFormat(t *testing.T) {
	p := New(profile.CIC())

	assert.NoError(t, p.ValidateFormat("ok.pdf", pdfBytes))

	err := p.ValidateFormat("notes.txt", []byte("hello"))
	var invalid *parsererror.InvalidDocumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "notes.txt", invalid.Document)
}

func TestParseExtractsTransactions(t *testing.T) {
	p := NewWithExtractor(profile.CIC(), &stubExtractor{pages: []Page{statementPage(1)}})

	transactions, skipped, err := p.Parse("janvier.pdf", pdfBytes)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, transactions, 2)

	assert.Equal(t, "LOYER JANVIER", transactions[0].Label)
	assert.Equal(t, "-650.00", transactions[0].SignedAmount().StringFixed(2))
	assert.Equal(t, "VIREMENT SALAIRE", transactions[1].Label)
	assert.Equal(t, "2100.00", transactions[1].SignedAmount().StringFixed(2))
	assert.Equal(t, "janvier.pdf", transactions[0].SourceDocument)
}

func TestParseCountsMalformedRows(t *testing.T) {
	page := statementPage(1)
	// A row with a valid date but both amount cells filled.
	page.Fragments = append(page.Fragments,
		frag(50, 620, "09/01/2024"),
		frag(150, 620, "LIGNE AMBIGUE"),
		frag(330, 620, "10,00"),
		frag(430, 620, "10,00"),
	)

	mock := logging.NewMockLogger()
	p := NewWithExtractor(profile.CIC(), &stubExtractor{pages: []Page{page}})
	p.SetLogger(mock)

	transactions, skipped, err := p.Parse("janvier.pdf", pdfBytes)
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, 1, skipped)
	assert.True(t, mock.HasEntry("warn", "skipping malformed row"))
}

func TestParseNoTablesFound(t *testing.T) {
	// Pages exist but none carries a transaction-table header.
	pages := []Page{{
		Number:    1,
		Fragments: []Fragment{frag(50, 700, "COURRIER D'INFORMATION")},
	}}
	p := NewWithExtractor(profile.CIC(), &stubExtractor{pages: pages})

	_, _, err := p.Parse("lettre.pdf", pdfBytes)

	var notFound *parsererror.NoTablesFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 1, notFound.Pages)
}

func TestParseInvalidSignature(t *testing.T) {
	p := NewWithExtractor(profile.CIC(), &stubExtractor{pages: []Page{statementPage(1)}})

	_, _, err := p.Parse("notes.txt", []byte("not a pdf"))

	var invalid *parsererror.InvalidDocumentError
	assert.ErrorAs(t, err, &invalid)
}

func TestParseExtractionFailure(t *testing.T) {
	cause := errors.New("corrupt xref")
	p := NewWithExtractor(profile.CIC(), &stubExtractor{err: cause})

	_, _, err := p.Parse("janvier.pdf", pdfBytes)

	var parseErr *parsererror.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, cause)
}

func TestParseMultiplePages(t *testing.T) {
	p := NewWithExtractor(profile.CIC(), &stubExtractor{
		pages: []Page{statementPage(1), statementPage(2)},
	})

	transactions, _, err := p.Parse("janvier.pdf", pdfBytes)
	require.NoError(t, err)
	assert.Len(t, transactions, 4)
	assert.Equal(t, 1, transactions[0].Page)
	assert.Equal(t, 2, transactions[2].Page)
}
