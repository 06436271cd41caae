package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/salchaD-27/pac-check/internal/pac"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a single PAC file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checker, err := newChecker()
		if err != nil {
			return err
		}

		report, status := checkFile(checker, args[0])
		fmt.Fprintln(cmd.OutOrStdout(), report)
		fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", statusString(status))
		return nil
	},
}

// checkFile validates one file and prepends the file-identity banner.
// Read failures never propagate as raw faults; they come back as a
// report-shaped message with status ERROR.
func checkFile(checker *pac.Checker, path string) (string, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("❌ Error reading file: %v", err), "ERROR"
	}

	content := string(data)
	res := checker.Validate(content)

	banner := fmt.Sprintf("📁 File: %s\n📊 Size: %d characters, %d lines\n%s\n\n",
		filepath.Base(path),
		utf8.RuneCountInString(content),
		len(strings.Split(content, "\n")),
		strings.Repeat("=", 50))

	return banner + res.Report, string(res.Status)
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
