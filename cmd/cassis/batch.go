package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/cassis-finance/cassis/internal/cli"
	"github.com/cassis-finance/cassis/internal/engine"
	"github.com/cassis-finance/cassis/internal/model"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.csv>",
		Short: "Classify transactions from a CSV file",
		Long: `Classify a CSV export in chunks, with a progress bar and a summary.

The file needs columns id,label,amount with an optional date (YYYY-MM-DD) and
description. A header row is detected and skipped.

Examples:
  cassis batch releve-juin.csv
  cassis batch releve-juin.csv --workers 8 --show-all`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().Int("workers", 0, "parallel workers (default from config)")
	cmd.Flags().Bool("show-all", false, "print every result, not just the summary")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	app, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	transactions, err := readTransactionsCSV(args[0])
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(transactions),
		progressbar.OptionSetDescription("classifying"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	opts := engine.Options{
		ChunkSize:       app.cfg.Batch.ChunkSize,
		ParallelWorkers: app.cfg.Batch.Workers,
		InterChunkDelay: app.cfg.Batch.InterChunkDelay,
		ReviewThreshold: app.cfg.HighConfidence,
		Progress: func(processed, _ int, _ float64) {
			_ = bar.Set(processed)
		},
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		opts.ParallelWorkers = workers
	}

	results, summary, err := engine.New(app.classifier).ClassifyMany(cmd.Context(), transactions, opts)
	if err != nil {
		return err
	}
	_ = bar.Finish()

	if showAll, _ := cmd.Flags().GetBool("show-all"); showAll {
		printAllResults(cmd, results)
	}

	cmd.Println(cli.RenderBatchSummary(summary))
	cmd.Println(cli.RenderStatistics(app.classifier.Statistics()))
	return nil
}

func printAllResults(cmd *cobra.Command, results map[string]model.Result) {
	keys := make([]string, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		res := results[k]
		tag := res.SuggestedTag
		if tag == "" {
			tag = "-"
		}
		cmd.Printf("%-20s %-16s %-8s %.0f%%\n", k, tag, res.ExpenseType, res.Confidence*100)
	}
}

// readTransactionsCSV parses id,label,amount[,date[,description]] rows. A
// header row is detected by its unparseable amount column.
func readTransactionsCSV(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	transactions := make([]model.Transaction, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%s line %d: need at least id,label,amount", path, i+1)
		}

		amount, parseErr := strconv.ParseFloat(row[2], 64)
		if parseErr != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("%s line %d: bad amount %q", path, i+1, row[2])
		}

		tx := model.Transaction{ID: row[0], Label: row[1], Amount: amount}
		if len(row) > 3 && row[3] != "" {
			date, dateErr := time.Parse("2006-01-02", row[3])
			if dateErr != nil {
				return nil, fmt.Errorf("%s line %d: bad date %q", path, i+1, row[3])
			}
			tx.Date = &date
		}
		if len(row) > 4 {
			tx.Description = row[4]
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}
