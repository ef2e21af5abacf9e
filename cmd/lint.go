/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"testdeck/pkg/lint"
)

var (
	lintFormat       string
	lintRuleCoverage bool
	lintMaxLines     int

	// exitFunc is swapped in tests.
	exitFunc = os.Exit
)

var lintCmd = &cobra.Command{
	Use:   "lint [deck.md]",
	Short: "Check a deck for structural problems",
	Long:  "Parses the deck and reports findings per slide. Exits non-zero when any error-severity finding is present.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, err := loadRuntime()
		if err != nil {
			fmt.Printf("failed to start: %v\n", err)
			exitFunc(1)
			return
		}

		loaded, err := resolveDeck(args)
		if err != nil {
			fmt.Printf("failed to load deck: %v\n", err)
			exitFunc(1)
			return
		}

		opts := lint.Options{
			Disabled:      cfg.Lint.Disabled,
			MaxSlideLines: cfg.Lint.MaxSlideLines,
			RuleCoverage:  cfg.Lint.RuleCoverage || lintRuleCoverage,
		}
		if lintMaxLines > 0 {
			opts.MaxSlideLines = lintMaxLines
		}

		report := lint.Run(loaded, opts)
		log.Debug("Lint finished", "deck", loaded.Path, "findings", len(report.Findings))

		if err := printReport(cmd.OutOrStdout(), report, lintFormat); err != nil {
			fmt.Printf("failed to print report: %v\n", err)
			exitFunc(1)
			return
		}

		if report.HasErrors() {
			exitFunc(1)
		}
	},
}

func printReport(out io.Writer, report lint.Report, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "text", "":
		for _, finding := range report.Findings {
			fmt.Fprintln(out, formatFinding(report.DeckPath, finding))
		}
		summary := report.Summary()
		fmt.Fprintf(out, "%d error(s), %d warning(s)\n",
			summary[lint.SeverityError], summary[lint.SeverityWarning])
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want text or json)", format)
	}
}

func formatFinding(deckPath string, finding lint.Finding) string {
	name := filepath.Base(deckPath)
	if name == "." || name == "" {
		name = "deck"
	}
	if finding.Slide > 0 {
		return fmt.Sprintf("%s: slide %d: %s: %s [%s]",
			name, finding.Slide, finding.Severity, finding.Message, finding.Check)
	}
	return fmt.Sprintf("%s: %s: %s [%s]", name, finding.Severity, finding.Message, finding.Check)
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().StringVarP(&lintFormat, "format", "f", "text", "output format (text, json)")
	lintCmd.Flags().BoolVar(&lintRuleCoverage, "rule-coverage", false, "also verify the deck covers every message classification")
	lintCmd.Flags().IntVar(&lintMaxLines, "max-lines", 0, "override the long-slide line limit")
}
