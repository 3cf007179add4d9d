// Package extract handles the PDF-to-spreadsheet extraction command
package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mbaillet/cic-xlsx/cmd/root"
	"mbaillet/cic-xlsx/internal/fileutils"
	"mbaillet/cic-xlsx/internal/logging"
	"mbaillet/cic-xlsx/internal/models"
	"mbaillet/cic-xlsx/internal/profile"
	"mbaillet/cic-xlsx/pkg/extractor"
)

var format string

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract <statement.pdf> [more.pdf ...]",
	Short: "Extract transactions from statement PDFs",
	Long: `Extract reads one or more statement PDFs, merges their transactions
into a single chronological dataset, and writes it as XLSX or CSV.`,
	Args: cobra.MinimumNArgs(1),
	Run:  extractFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "Output format: xlsx or csv")
}

func extractFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	ext := extractor.New(
		extractor.WithLogger(logger),
		extractor.WithProfile(loadProfile()),
		extractor.WithMaxColumnWidth(root.MaxColumnWidth()),
		extractor.WithCSVDelimiter(root.CSVDelimiter()),
	)

	paths, err := fileutils.CollectPDFs(args)
	if err != nil {
		root.Log.Fatalf("Error collecting input files: %v", err)
	}
	docs := make([]extractor.Document, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			root.Log.Fatalf("Error reading %s: %v", path, err)
		}
		docs = append(docs, extractor.Document{Name: filepath.Base(path), Data: data})
	}

	progress := func(done, total int) {
		root.Log.Infof("Processed %d/%d documents", done, total)
	}
	dataset, outcomes := ext.ProcessBatch(context.Background(), docs, progress)

	for _, outcome := range outcomes {
		if outcome.Status == models.StatusParsed {
			root.Log.Infof("%s: %d transactions (%d rows skipped)",
				outcome.Document, outcome.Transactions, outcome.SkippedRows)
			continue
		}
		root.Log.Warnf("%s: %s", outcome.Document, outcome.Reason)
	}
	if len(dataset) == 0 {
		root.Log.Fatal("No transactions extracted")
	}

	var data []byte
	switch strings.ToLower(format) {
	case "xlsx":
		data, err = ext.ExportXLSX(dataset)
	case "csv":
		data, err = ext.ExportCSV(dataset)
	default:
		root.Log.Fatalf("Unknown format %q (expected xlsx or csv)", format)
	}
	if err != nil {
		root.Log.Fatalf("Error exporting dataset: %v", err)
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = ext.ExportFilename(root.SharedFlags.Scope, time.Now())
		if strings.EqualFold(format, "csv") {
			output = strings.TrimSuffix(output, ".xlsx") + ".csv"
		}
	}
	if err := fileutils.WriteFile(output, data); err != nil {
		root.Log.Fatalf("Error writing %s: %v", output, err)
	}

	logger.Info("Wrote dataset",
		logging.F(logging.FieldOutputFile, output),
		logging.F(logging.FieldCount, len(dataset)))
}

func loadProfile() profile.Profile {
	if root.SharedFlags.Profile == "" {
		return profile.CIC()
	}
	p, err := profile.Load(root.SharedFlags.Profile)
	if err != nil {
		root.Log.Fatalf("Error loading profile %s: %v", root.SharedFlags.Profile, err)
	}
	return p
}
