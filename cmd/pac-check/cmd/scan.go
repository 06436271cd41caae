package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salchaD-27/pac-check/internal/finding"
	"github.com/salchaD-27/pac-check/internal/pac"
	"github.com/salchaD-27/pac-check/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory tree for PAC files (.pac, .js, .txt)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checker, err := newChecker()
		if err != nil {
			return err
		}

		findings, err := pac.Scan(args[0], checker)
		if err != nil {
			return err
		}

		return printFindings(cmd, findings)
	},
}

// printFindings renders tagged findings in the selected --format.
func printFindings(cmd *cobra.Command, findings []finding.Finding) error {
	out := cmd.OutOrStdout()

	switch strings.ToLower(reportFormat) {
	case "json":
		s, err := report.ExportJSON(findings)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)

	case "markdown":
		s, err := report.ExportMarkdown(findings)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)

	case "gha":
		s, err := report.ExportGitHubActions(findings)
		if err != nil {
			return err
		}
		fmt.Fprint(out, s)

	default: // plain text
		for _, f := range findings {
			fmt.Fprintf(out, "[%s] %s: %s\n", f.Severity, f.File, f.Message)
		}
	}

	return nil
}

func init() {
	scanCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "Output format: text|json|markdown|gha")
	rootCmd.AddCommand(scanCmd)
}
