package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cassis-finance/cassis/internal/cli"
	"github.com/cassis-finance/cassis/internal/model"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <label>",
		Short: "Classify a single transaction",
		Long: `Classify one transaction from its bank statement label.

Examples:
  cassis classify "NETFLIX.COM PREMIUM" --amount -15.99
  cassis classify "CARREFOUR ST ETIENNE" --amount -45.67 --date 2026-06-20
  cassis classify "PRLV SEPA EDF" --amount -89 --payment-method prelevement`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().Float64P("amount", "a", 0, "transaction amount (negative for debits)")
	cmd.Flags().StringP("date", "d", "", "transaction date (YYYY-MM-DD)")
	cmd.Flags().String("description", "", "free-form transaction description")
	cmd.Flags().String("payment-method", "", "payment method (cb, prelevement, virement, retrait)")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	app, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	amount, _ := cmd.Flags().GetFloat64("amount")
	description, _ := cmd.Flags().GetString("description")
	method, _ := cmd.Flags().GetString("payment-method")

	tx := model.Transaction{
		Label:         strings.Join(args, " "),
		Description:   description,
		PaymentMethod: method,
		Amount:        amount,
	}

	if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
		date, parseErr := time.Parse("2006-01-02", dateStr)
		if parseErr != nil {
			return fmt.Errorf("invalid date %q: %w", dateStr, parseErr)
		}
		tx.Date = &date
	}

	result := app.classifier.Classify(cmd.Context(), tx)
	cmd.Println(cli.RenderResult(result))
	return nil
}
