package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gocarina/gocsv"

	"mbaillet/cic-xlsx/internal/dateutils"
	"mbaillet/cic-xlsx/internal/logging"
	"mbaillet/cic-xlsx/internal/models"
)

// DefaultDelimiter separates CSV fields. Semicolons keep the file
// readable in French spreadsheet locales where the comma is the decimal
// separator.
const DefaultDelimiter = ';'

// csvRow is the flat CSV projection of a transaction.
// It uses struct tags for gocsv marshaling.
type csvRow struct {
	Date   string `csv:"Date"`
	Label  string `csv:"Libellé"`
	Debit  string `csv:"Débit"`
	Credit string `csv:"Crédit"`
}

// CSV renders the dataset as CSV with the default delimiter.
func CSV(dataset models.Dataset) ([]byte, error) {
	return CSVWithDelimiter(dataset, DefaultDelimiter)
}

// CSVWithDelimiter renders the dataset as CSV. Each row fills exactly
// one of the Débit and Crédit columns, mirroring the XLSX layout.
func CSVWithDelimiter(dataset models.Dataset, delimiter rune) ([]byte, error) {
	rows := make([]csvRow, 0, len(dataset))
	for _, tx := range dataset {
		row := csvRow{
			Date:  dateutils.Format(tx.Date, dateutils.LayoutFrench),
			Label: tx.Label,
		}
		if tx.IsDebit() {
			row.Debit = tx.Amount.StringFixed(2)
		} else {
			row.Credit = tx.Amount.StringFixed(2)
		}
		rows = append(rows, row)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return nil, fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("Exported dataset to CSV", logging.F(logging.FieldCount, len(dataset)))
	return buf.Bytes(), nil
}
