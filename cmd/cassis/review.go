package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cassis-finance/cassis/internal/cli"
	"github.com/cassis-finance/cassis/internal/engine"
	"github.com/cassis-finance/cassis/internal/normalize"
	"github.com/cassis-finance/cassis/internal/tui"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review <file.csv>",
		Short: "Interactively review low-confidence suggestions",
		Long: `Classify a CSV export, then step through every result below the
high-confidence threshold. Accepting or overriding a suggestion feeds the
learning store, so reviewed merchants classify better next time.`,
		Args: cobra.ExactArgs(1),
		RunE: runReview,
	}

	cmd.Flags().Float64("threshold", 0, "review results below this confidence (default from config)")

	return cmd
}

func runReview(cmd *cobra.Command, args []string) error {
	app, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	transactions, err := readTransactionsCSV(args[0])
	if err != nil {
		return err
	}

	threshold := app.cfg.HighConfidence
	if flagThreshold, _ := cmd.Flags().GetFloat64("threshold"); flagThreshold > 0 {
		threshold = flagThreshold
	}

	opts := engine.Options{
		ChunkSize:       app.cfg.Batch.ChunkSize,
		ParallelWorkers: app.cfg.Batch.Workers,
		InterChunkDelay: app.cfg.Batch.InterChunkDelay,
		ReviewThreshold: threshold,
	}

	results, _, err := engine.New(app.classifier).ClassifyMany(cmd.Context(), transactions, opts)
	if err != nil {
		return err
	}

	var items []tui.Item
	for i, tx := range transactions {
		key := tx.ID
		if key == "" {
			key = fmt.Sprintf("tx-%d", i)
		}
		res := results[key]
		if res.Confidence >= threshold {
			continue
		}
		clean := normalize.CleanLabel(tx.Label)
		items = append(items, tui.Item{
			Merchant: normalize.Merchant(clean, nil),
			Label:    tx.Label,
			Amount:   tx.Amount,
			Result:   res,
		})
	}

	if len(items) == 0 {
		cmd.Println(cli.FormatSuccess("nothing to review"))
		return nil
	}

	final, err := tui.Run(items, app.learning)
	if err != nil {
		return err
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("%d accepted, %d overridden, %d skipped",
		final.Accepted, final.Overridden, final.Skipped)))
	return nil
}
