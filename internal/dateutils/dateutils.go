// Package dateutils provides the date parsing and formatting used by the
// statement pipeline. Parsing is layout-driven: the statement locale
// supplies the layout, nothing is hardcoded to a single bank convention.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layouts used across the application.
const (
	LayoutFrench = "02/01/2006" // DD/MM/YYYY as printed on CIC statements
	LayoutISO    = "2006-01-02" // Used in export filenames
)

// Plausibility bounds for statement dates. A parseable date outside this
// range is still rejected: it cannot come from a real statement.
const (
	MinYear = 1900
	MaxYear = 2100
)

var spaceRe = regexp.MustCompile(`\s+`)

// Clean trims and collapses internal whitespace in a date cell.
func Clean(dateStr string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// Parse parses a date cell using the given layout and checks plausibility.
func Parse(dateStr, layout string) (time.Time, error) {
	cleaned := Clean(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	t, err := time.Parse(layout, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date '%s' with layout %s: %w",
			cleaned, layout, err)
	}
	if t.Year() < MinYear || t.Year() > MaxYear {
		return time.Time{}, fmt.Errorf("implausible date '%s': year %d out of range",
			cleaned, t.Year())
	}
	return t, nil
}

// IsDate reports whether a cell parses as a date under the given layout.
// The table extractor uses this as the transaction-row gate: rows whose
// first cell is not a date are page totals or carried balances.
func IsDate(dateStr, layout string) bool {
	_, err := Parse(dateStr, layout)
	return err == nil
}

// Format renders a date with the given layout, defaulting to ISO.
func Format(date time.Time, layout string) string {
	if layout == "" {
		layout = LayoutISO
	}
	return date.Format(layout)
}
