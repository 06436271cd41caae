package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salchaD-27/pac-check/internal/finding"
	"github.com/salchaD-27/pac-check/internal/suite"
)

var suiteCmd = &cobra.Command{
	Use:   "suite [manifest]",
	Short: "Run a YAML manifest of PAC files with expected statuses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checker, err := newChecker()
		if err != nil {
			return err
		}

		findings, err := suite.Run(args[0], checker)
		if err != nil {
			return err
		}

		if err := printFindings(cmd, findings); err != nil {
			return err
		}

		failed := 0
		for _, f := range findings {
			if f.Severity == finding.Error {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d expectation(s) failed", failed)
		}
		return nil
	},
}

func init() {
	suiteCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "Output format: text|json|markdown|gha")
	rootCmd.AddCommand(suiteCmd)
}
