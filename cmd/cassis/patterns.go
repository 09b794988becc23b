package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cassis-finance/cassis/internal/cli"
	"github.com/cassis-finance/cassis/internal/patterndb"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the active pattern database",
		Long: `List the merchant patterns the classifier matches against, grouped by
business category. With --validate, check a custom YAML pattern file instead.`,
		RunE: runPatterns,
	}

	cmd.Flags().String("validate", "", "validate a YAML pattern file and exit")

	return cmd
}

func runPatterns(cmd *cobra.Command, _ []string) error {
	if path, _ := cmd.Flags().GetString("validate"); path != "" {
		entries, err := patterndb.LoadYAMLFile(path)
		if err != nil {
			return fmt.Errorf("pattern file is invalid: %w", err)
		}
		cmd.Println(cli.FormatSuccess(fmt.Sprintf("%s: %d valid patterns", path, len(entries))))
		return nil
	}

	app, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	cmd.Println(cli.FormatTitle(fmt.Sprintf("%d patterns", app.classifier.PatternCount())))
	cmd.Println(cli.RenderPatternTable(app.patterns.ByCategory()))
	return nil
}
