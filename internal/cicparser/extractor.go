package cicparser

import (
	"bytes"
	"fmt"

	"github.com/dslipak/pdf"
)

// Fragment is one positioned text run on a PDF page. Runs are often
// single glyphs; the layout pass reassembles them into words and cells
// from the X gaps between them.
type Fragment struct {
	X    float64
	Y    float64
	W    float64
	Text string
}

// Page holds the text fragments of a single page.
type Page struct {
	Number    int // 1-based
	Fragments []Fragment
}

// PageExtractor abstracts PDF text extraction so the table locator can be
// tested against synthetic pages without real PDF files.
type PageExtractor interface {
	ExtractPages(data []byte) ([]Page, error)
}

// NewPDFExtractor returns the real extractor backed by dslipak/pdf.
func NewPDFExtractor() PageExtractor {
	return &pdfExtractor{}
}

type pdfExtractor struct{}

// ExtractPages reads every page's positioned text. The pdf package panics
// on some corrupt content streams, so the whole extraction is wrapped in a
// recover that surfaces the panic as an ordinary error.
func (e *pdfExtractor) ExtractPages(data []byte) (pages []Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("PDF content stream error: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		fragments := make([]Fragment, 0, len(content.Text))
		for _, t := range content.Text {
			fragments = append(fragments, Fragment{X: t.X, Y: t.Y, W: t.W, Text: t.S})
		}
		pages = append(pages, Page{Number: i, Fragments: fragments})
	}

	return pages, nil
}
