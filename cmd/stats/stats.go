// Package stats handles the statistics command
package stats

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"mbaillet/cic-xlsx/cmd/root"
	"mbaillet/cic-xlsx/internal/currencyutils"
	"mbaillet/cic-xlsx/internal/dateutils"
	"mbaillet/cic-xlsx/internal/fileutils"
	"mbaillet/cic-xlsx/internal/models"
	"mbaillet/cic-xlsx/internal/profile"
	"mbaillet/cic-xlsx/pkg/extractor"
)

var (
	textQuery string
	dateFrom  string
	dateTo    string
	amountMin string
	amountMax string
	txType    string
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats <statement.pdf> [more.pdf ...]",
	Short: "Print summary statistics for statement PDFs",
	Long: `Stats extracts the transactions of one or more statement PDFs and
prints the balance, debit and credit totals, and the covered date range.
Filter flags narrow the dataset before the figures are computed.`,
	Args: cobra.MinimumNArgs(1),
	Run:  statsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&textQuery, "query", "q", "", "Keep transactions whose label contains this text")
	Cmd.Flags().StringVar(&dateFrom, "from", "", "Keep transactions on or after this date (DD/MM/YYYY)")
	Cmd.Flags().StringVar(&dateTo, "to", "", "Keep transactions on or before this date (DD/MM/YYYY)")
	Cmd.Flags().StringVar(&amountMin, "min", "", "Keep transactions with signed amount at least this value (debits are negative)")
	Cmd.Flags().StringVar(&amountMax, "max", "", "Keep transactions with signed amount at most this value")
	Cmd.Flags().StringVarP(&txType, "type", "t", "all", "Transaction type: all, debit or credit")
}

func statsFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	ext := extractor.New(
		extractor.WithLogger(logger),
		extractor.WithProfile(loadProfile()),
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

	dataset, outcomes := ext.ProcessBatch(context.Background(), docs, nil)
	for _, outcome := range outcomes {
		if outcome.Status != models.StatusParsed {
			root.Log.Warnf("%s: %s", outcome.Document, outcome.Reason)
		}
	}

	criteria, err := buildCriteria()
	if err != nil {
		root.Log.Fatalf("Invalid filter: %v", err)
	}
	result := ext.ApplyFilter(dataset, criteria)
	statistics := ext.ComputeStatistics(result.Transactions)

	if !criteria.IsEmpty() {
		fmt.Printf("Transactions:  %d of %d\n", result.Matched, result.Total)
	} else {
		fmt.Printf("Transactions:  %d\n", statistics.Count)
	}
	fmt.Printf("Balance:       %s\n", currencyutils.FormatEUR(statistics.Balance))
	fmt.Printf("Total debits:  %s\n", currencyutils.FormatEUR(statistics.TotalDebits))
	fmt.Printf("Total credits: %s\n", currencyutils.FormatEUR(statistics.TotalCredits))
	if statistics.HasDateSpan() {
		fmt.Printf("Period:        %s - %s\n",
			dateutils.Format(statistics.DateMin, dateutils.LayoutFrench),
			dateutils.Format(statistics.DateMax, dateutils.LayoutFrench))
	}
}

func buildCriteria() (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{TextQuery: textQuery}

	if dateFrom != "" {
		from, err := dateutils.Parse(dateFrom, dateutils.LayoutFrench)
		if err != nil {
			return criteria, fmt.Errorf("invalid --from date: %w", err)
		}
		criteria.DateFrom = &from
	}
	if dateTo != "" {
		to, err := dateutils.Parse(dateTo, dateutils.LayoutFrench)
		if err != nil {
			return criteria, fmt.Errorf("invalid --to date: %w", err)
		}
		criteria.DateTo = &to
	}
	if amountMin != "" {
		min, err := decimal.NewFromString(amountMin)
		if err != nil {
			return criteria, fmt.Errorf("invalid --min amount: %w", err)
		}
		criteria.AmountMin = &min
	}
	if amountMax != "" {
		max, err := decimal.NewFromString(amountMax)
		if err != nil {
			return criteria, fmt.Errorf("invalid --max amount: %w", err)
		}
		criteria.AmountMax = &max
	}

	switch txType {
	case "all", "":
		criteria.Type = models.TypeAll
	case "debit":
		criteria.Type = models.TypeDebit
	case "credit":
		criteria.Type = models.TypeCredit
	default:
		return criteria, fmt.Errorf("unknown type %q (expected all, debit or credit)", txType)
	}

	return criteria, nil
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
