/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"testdeck/pkg/rules"
)

var (
	rulesOrigin string
	rulesKind   string
	rulesJSON   bool
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the message-testing rule table or classify one message",
	Long: "Without flags, prints the full classification table: every message origin\n" +
		"and kind, and the testing obligation it maps to. With --origin and --kind,\n" +
		"classifies a single message.",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		if rulesOrigin == "" && rulesKind == "" {
			if err := printRuleTable(out, rulesJSON); err != nil {
				fmt.Printf("failed to print rules: %v\n", err)
				exitFunc(1)
			}
			return
		}

		if rulesOrigin == "" || rulesKind == "" {
			fmt.Println("both --origin and --kind are required to classify a message")
			exitFunc(1)
			return
		}

		if err := classify(out, rulesOrigin, rulesKind, rulesJSON); err != nil {
			fmt.Printf("%v\n", err)
			exitFunc(1)
		}
	},
}

func classify(out io.Writer, originText string, kindText string, asJSON bool) error {
	origin, err := rules.ParseOrigin(originText)
	if err != nil {
		return err
	}

	kind, err := rules.ParseKind(kindText)
	if err != nil {
		return err
	}

	rule, err := rules.Select(origin, kind)
	if err != nil {
		return err
	}

	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rules.Classification{Origin: origin, Kind: kind, Rule: rule})
	}

	fmt.Fprintf(out, "%s %s: %s\n", origin, kind, rule.Guidance)
	return nil
}

func printRuleTable(out io.Writer, asJSON bool) error {
	table := rules.Table()

	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(table)
	}

	writer := tablewriter.NewWriter(out)
	writer.SetHeader([]string{"Origin", "Kind", "Obligation"})
	writer.SetAutoWrapText(false)
	writer.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	writer.SetAlignment(tablewriter.ALIGN_LEFT)
	writer.SetCenterSeparator("")
	writer.SetColumnSeparator("")
	writer.SetRowSeparator("")
	writer.SetHeaderLine(false)
	writer.SetBorder(false)
	writer.SetTablePadding("\t")

	for _, row := range table {
		writer.Append([]string{row.Origin.String(), row.Kind.String(), obligation(row.Rule)})
	}
	writer.Render()

	return nil
}

// obligation flattens a rule into the short phrasing used on screen.
func obligation(rule rules.Rule) string {
	if rule.Prohibited {
		return "do not test"
	}

	var parts []string
	if rule.AssertReturnValue {
		parts = append(parts, "assert return value")
	}
	if rule.AssertSideEffects {
		parts = append(parts, "assert side effects")
	}
	if rule.ExpectCall {
		parts = append(parts, "expect the call")
	}
	if len(parts) == 0 {
		return "no obligation"
	}

	return strings.Join(parts, " + ")
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().StringVarP(&rulesOrigin, "origin", "o", "", "message origin (incoming, outgoing, self)")
	rulesCmd.Flags().StringVarP(&rulesKind, "kind", "k", "", "message kind (query, command, query+command)")
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "emit JSON instead of a table")
}
