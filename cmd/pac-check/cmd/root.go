package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salchaD-27/pac-check/internal/pac"
	"github.com/salchaD-27/pac-check/internal/rules"
)

var (
	reportFormat string
	rulesFile    string
)

var rootCmd = &cobra.Command{
	Use:   "pac-check",
	Short: "Syntax checker for PAC (Proxy Auto-Configuration) files",
	Long: `pac-check runs heuristic syntax checks over PAC scripts: it verifies the
FindProxyForURL(url, host) entry point, brace/parenthesis balance, return
value shapes and standard PAC helper usage, and reports findings as
errors, warnings and info notes.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "HCL rules file extending return prefixes and helper functions")
}

// newChecker builds the engine, applying --rules overrides when given.
func newChecker() (*pac.Checker, error) {
	checker := pac.NewChecker()
	if rulesFile == "" {
		return checker, nil
	}
	r, err := rules.Load(rulesFile)
	if err != nil {
		return nil, err
	}
	r.Apply(checker)
	return checker, nil
}

// statusString colors the terminal status token: green for VALID, yellow
// for EMPTY, red otherwise (INVALID, ERROR). Color is dropped when stdout
// is not a terminal.
func statusString(status string) string {
	switch status {
	case string(pac.StatusValid):
		return color.GreenString(status)
	case string(pac.StatusEmpty):
		return color.YellowString(status)
	default:
		return color.RedString(status)
	}
}
