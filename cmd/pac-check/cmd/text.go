package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Check PAC content read from standard input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checker, err := newChecker()
		if err != nil {
			return err
		}

		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		content := string(data)

		res := checker.Validate(content)

		banner := fmt.Sprintf("📊 Content: %d characters, %d lines\n%s\n\n",
			utf8.RuneCountInString(content),
			len(strings.Split(content, "\n")),
			strings.Repeat("=", 50))

		fmt.Fprintln(cmd.OutOrStdout(), banner+res.Report)
		fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", statusString(string(res.Status)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(textCmd)
}
