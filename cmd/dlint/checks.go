package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dlint/internal/diag"
	"dlint/internal/lint"
	"dlint/internal/lintfmt"
	"dlint/internal/source"
)

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the available checks",
	Long:  `Checks prints every registered check and whether the configuration enables it`,
	Args:  cobra.NoArgs,
	RunE:  runChecks,
}

func init() {
	checksCmd.Flags().String("config", "", "path to dlint.toml to show effective enablement")
}

func runChecks(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg := lint.DefaultConfig()
	if configPath != "" {
		cfg, err = lint.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	registry := lint.Default()
	bag := diag.NewBag(16)
	cfg.Validate(registry, &diag.BagReporter{Bag: bag})
	if bag.Len() > 0 {
		lintfmt.Pretty(os.Stderr, bag, source.NewFileSet(), lintfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	out := cmd.OutOrStdout()
	for _, rule := range registry.Rules() {
		state := "enabled"
		if !cfg.RuleEnabled(rule.Name()) {
			state = "disabled"
		}
		fmt.Fprintf(out, "%-8s %-40s %s\n", rule.Code().ID(), rule.Name(), state)
	}
	return nil
}
