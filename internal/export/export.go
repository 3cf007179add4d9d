// Package export renders a transaction dataset as a styled XLSX
// workbook or a delimited CSV file.
package export

import (
	"fmt"
	"time"

	"mbaillet/cic-xlsx/internal/logging"
)

// DefaultScope is the filename scope used when none is given.
const DefaultScope = "cic"

var log = logging.Default()

// SetLogger overrides the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Filename builds the export file name for a given day, e.g.
// "transactions_cic_2024-01-31.xlsx".
func Filename(scope string, now time.Time) string {
	if scope == "" {
		scope = DefaultScope
	}
	return fmt.Sprintf("transactions_%s_%s.xlsx", scope, now.Format("2006-01-02"))
}
