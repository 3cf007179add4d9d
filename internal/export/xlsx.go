package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"mbaillet/cic-xlsx/internal/logging"
	"mbaillet/cic-xlsx/internal/models"
)

const (
	// SheetName is the worksheet holding the transactions.
	SheetName = "Transactions"

	currencyFormat = `#,##0.00 €`
	dateFormat     = "DD/MM/YYYY"

	// Column widths grow with content but stay within these bounds so a
	// runaway label cannot stretch the sheet.
	minColumnWidth     = 12.0
	defaultMaxColWidth = 60.0
	columnPadding      = 2.0
)

var xlsxHeaders = []string{"Date", "Libellé", "Débit", "Crédit"}

// Options tunes the workbook layout. The zero value uses the defaults.
type Options struct {
	MaxColumnWidth float64
}

func (o Options) maxColumnWidth() float64 {
	if o.MaxColumnWidth <= 0 {
		return defaultMaxColWidth
	}
	return o.MaxColumnWidth
}

// XLSX renders the dataset as an XLSX workbook with the default options.
func XLSX(dataset models.Dataset) ([]byte, error) {
	return XLSXWithOptions(dataset, Options{})
}

// XLSXWithOptions renders the dataset as an XLSX workbook. Dates carry a
// DD/MM/YYYY format and amounts a euro currency format; each row fills
// exactly one of the Débit and Crédit columns.
func XLSXWithOptions(dataset models.Dataset, opts Options) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("error naming worksheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"305496"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating header style: %w", err)
	}
	dateFmt := dateFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return nil, fmt.Errorf("error creating date style: %w", err)
	}
	currencyFmt := currencyFormat
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFmt})
	if err != nil {
		return nil, fmt.Errorf("error creating amount style: %w", err)
	}

	widths := make([]float64, len(xlsxHeaders))
	for col, header := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, fmt.Errorf("error writing header: %w", err)
		}
		widths[col] = float64(len([]rune(header)))
	}
	if err := f.SetCellStyle(SheetName, "A1", "D1", headerStyle); err != nil {
		return nil, fmt.Errorf("error styling header: %w", err)
	}

	for i, tx := range dataset {
		row := i + 2

		dateCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(SheetName, dateCell, tx.Date); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", row, err)
		}
		if err := f.SetCellStyle(SheetName, dateCell, dateCell, dateStyle); err != nil {
			return nil, fmt.Errorf("error styling row %d: %w", row, err)
		}
		widths[0] = maxWidth(widths[0], float64(len(dateFormat)))

		labelCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(SheetName, labelCell, tx.Label); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", row, err)
		}
		widths[1] = maxWidth(widths[1], float64(len([]rune(tx.Label))))

		amountCol := 4
		if tx.IsDebit() {
			amountCol = 3
		}
		amountCell, _ := excelize.CoordinatesToCellName(amountCol, row)
		amount, _ := tx.Amount.Float64()
		if err := f.SetCellValue(SheetName, amountCell, amount); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", row, err)
		}
		if err := f.SetCellStyle(SheetName, amountCell, amountCell, amountStyle); err != nil {
			return nil, fmt.Errorf("error styling row %d: %w", row, err)
		}
		rendered := float64(len(tx.Amount.StringFixed(2))) + 4
		widths[amountCol-1] = maxWidth(widths[amountCol-1], rendered)
	}

	for col, width := range widths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		w := width + columnPadding
		if w < minColumnWidth {
			w = minColumnWidth
		}
		if max := opts.maxColumnWidth(); w > max {
			w = max
		}
		if err := f.SetColWidth(SheetName, name, name, w); err != nil {
			return nil, fmt.Errorf("error sizing column %s: %w", name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}

	log.Info("Exported dataset to XLSX", logging.F(logging.FieldCount, len(dataset)))
	return buf.Bytes(), nil
}

func maxWidth(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}
