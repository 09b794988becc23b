package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cassis-finance/cassis/internal/cli"
)

func feedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record a correction for a merchant",
		Long: `Record that a suggested tag was right or wrong. Corrections shift future
suggestions for the merchant and are persisted in the corrections database.

Examples:
  cassis feedback --merchant netflix --tag streaming --accept
  cassis feedback --merchant casino --suggested loisirs --tag courses`,
		RunE: runFeedback,
	}

	cmd.Flags().String("merchant", "", "merchant the correction applies to")
	cmd.Flags().String("suggested", "", "tag that was suggested")
	cmd.Flags().String("tag", "", "tag the transaction should have")
	cmd.Flags().Bool("accept", false, "the suggestion was correct")
	_ = cmd.MarkFlagRequired("merchant")
	_ = cmd.MarkFlagRequired("tag")

	return cmd
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	app, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	merchant, _ := cmd.Flags().GetString("merchant")
	suggested, _ := cmd.Flags().GetString("suggested")
	tag, _ := cmd.Flags().GetString("tag")
	accept, _ := cmd.Flags().GetBool("accept")

	if accept && suggested == "" {
		suggested = tag
	}

	app.learning.RecordCorrection(cmd.Context(), merchant, suggested, tag, accept)

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("recorded correction for %q (%d total)",
		merchant, app.learning.CorrectionCount(merchant))))
	return nil
}
