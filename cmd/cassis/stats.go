package main

import (
	"github.com/spf13/cobra"

	"github.com/cassis-finance/cassis/internal/cli"
	"github.com/cassis-finance/cassis/internal/engine"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file.csv]",
		Short: "Show classifier statistics",
		Long: `Show pattern and configuration statistics. With a CSV file, classify it
first and report cache hit rate, high-confidence rate and research activity
for the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStats,
	}

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	app, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	if len(args) == 1 {
		transactions, readErr := readTransactionsCSV(args[0])
		if readErr != nil {
			return readErr
		}

		opts := engine.Options{
			ChunkSize:       app.cfg.Batch.ChunkSize,
			ParallelWorkers: app.cfg.Batch.Workers,
			InterChunkDelay: app.cfg.Batch.InterChunkDelay,
			ReviewThreshold: app.cfg.HighConfidence,
		}
		if _, _, runErr := engine.New(app.classifier).ClassifyMany(cmd.Context(), transactions, opts); runErr != nil {
			return runErr
		}
	}

	cmd.Println(cli.RenderStatistics(app.classifier.Statistics()))
	return nil
}
