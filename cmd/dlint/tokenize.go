package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dlint/internal/driver"
	"dlint/internal/lintfmt"
	"dlint/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.d",
	Short: "Tokenize a D source file",
	Long:  `Tokenize breaks down a D source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	fileSet := source.NewFileSet()
	result := driver.TokenizePath(fileSet, args[0], maxDiagnostics)

	// unlike check, the token dump surfaces lexical errors on stderr
	if result.Bag.HasWarnings() {
		lintfmt.Pretty(os.Stderr, result.Bag, fileSet, lintfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}
	if result.Tokens == nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errFindings
	}

	switch format {
	case "pretty":
		return lintfmt.FormatTokensPretty(os.Stdout, result.Tokens, fileSet)
	case "json":
		return lintfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
