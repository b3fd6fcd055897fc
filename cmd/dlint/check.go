package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"dlint/internal/diag"
	"dlint/internal/driver"
	"dlint/internal/fix"
	"dlint/internal/lint"
	"dlint/internal/lintfmt"
	"dlint/internal/lintpipeline"
	"dlint/internal/source"
)

// errFindings signals a non-zero exit without extra error text; the
// diagnostics were already printed.
var errFindings = errors.New("problems found")

var checkCmd = &cobra.Command{
	Use:   "check [flags] path...",
	Short: "Run lint checks over D files",
	Long:  `Check lints the given files and directories and reports findings`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().IntP("jobs", "j", 0, "number of parallel workers (0 = number of CPUs)")
	checkCmd.Flags().String("config", "", "path to dlint.toml (default: nearest one upward from the target)")
	checkCmd.Flags().String("ui", "auto", "progress UI for directory runs (auto|on|off)")
	checkCmd.Flags().Bool("no-cache", false, "disable the lint result cache")
	checkCmd.Flags().Bool("warnings-as-errors", false, "exit non-zero on warnings too")
	checkCmd.Flags().Bool("fix", false, "apply suggested fixes to the files")
	checkCmd.Flags().Bool("timings", false, "print per-stage timings after the run")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	configPath, _ := cmd.Flags().GetString("config")
	uiFlag, _ := cmd.Flags().GetString("ui")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	warningsAsErrors, _ := cmd.Flags().GetBool("warnings-as-errors")
	applyFixes, _ := cmd.Flags().GetBool("fix")
	showTimings, _ := cmd.Flags().GetBool("timings")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	registry := lint.Default()
	cfgBag := diag.NewBag(16)
	cfg, err := resolveConfig(configPath, args[0], registry, cfgBag)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	// cached results carry no fix edits, so fixing forces a fresh run
	if !noCache && !applyFixes {
		// a missing cache dir degrades to uncached runs
		cache, _ = driver.OpenDiskCache("dlint")
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Config:         cfg,
		Registry:       registry,
		Cache:          cache,
	}

	fileSet := source.NewFileSet()
	var results []driver.CheckResult
	if len(args) == 1 && isDirectory(args[0]) {
		withTUI := shouldUseTUI(mode) && !quiet && format == "pretty"
		dirSet, dirResults, err := checkDirectory(cmd.Context(), args[0], opts, withTUI)
		if err != nil {
			return err
		}
		fileSet = dirSet
		results = dirResults
	} else {
		// mixed targets share one FileSet, so directories expand to files here
		for _, arg := range args {
			if !isDirectory(arg) {
				results = append(results, driver.CheckPath(fileSet, arg, opts))
				continue
			}
			files, err := driver.ListFiles(arg)
			if err != nil {
				return err
			}
			for _, path := range files {
				results = append(results, driver.CheckPath(fileSet, path, opts))
			}
		}
	}

	merged := driver.MergeBags(results)
	merged.Merge(cfgBag)
	merged.Sort()

	switch format {
	case "json":
		err = lintfmt.JSON(os.Stdout, merged, fileSet, lintfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         lintfmt.PathModeRelative,
			IncludeNotes:     true,
		})
		if err != nil {
			return err
		}
	default:
		lintfmt.Pretty(os.Stdout, merged, fileSet, lintfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stdout),
			PathMode:  lintfmt.PathModeRelative,
			ShowNotes: true,
		})
		if !quiet {
			printSummary(cmd, merged, results)
		}
		if showTimings {
			printTimings(cmd, results)
		}
	}

	if applyFixes {
		if err := runFixes(cmd, fileSet, merged, quiet); err != nil {
			return err
		}
	}

	if merged.HasErrors() || (warningsAsErrors && merged.HasWarnings()) {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errFindings
	}
	return nil
}

// resolveConfig loads the explicit config when given, otherwise the nearest
// dlint.toml above the first target. Unknown check names become diagnostics
// in bag.
func resolveConfig(configPath, target string, registry *lint.Registry, bag *diag.Bag) (lint.Config, error) {
	if configPath == "" {
		dir := target
		if info, err := os.Stat(target); err != nil || !info.IsDir() {
			dir = filepath.Dir(target)
		}
		configPath = lint.LocateConfig(dir)
	}
	if configPath == "" {
		return lint.DefaultConfig(), nil
	}
	cfg, err := lint.LoadConfig(configPath)
	if err != nil {
		return lint.Config{}, err
	}
	cfg.Validate(registry, &diag.BagReporter{Bag: bag})
	return cfg, nil
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func checkDirectory(ctx context.Context, dir string, opts driver.Options, withTUI bool) (*source.FileSet, []driver.CheckResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !withTUI {
		return driver.CheckDir(ctx, dir, opts)
	}
	return runCheckDirWithUI(ctx, dir, opts)
}

func printTimings(cmd *cobra.Command, results []driver.CheckResult) {
	stages := []lintpipeline.Stage{
		lintpipeline.StageTokenize,
		lintpipeline.StageParse,
		lintpipeline.StageCheck,
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "timings:")
	var total time.Duration
	for _, stage := range stages {
		var dur time.Duration
		for _, res := range results {
			dur += res.Timings.Duration(stage)
		}
		total += dur
		fmt.Fprintf(out, "  %-10s %8.2f ms\n", stage, float64(dur)/float64(time.Millisecond))
	}
	fmt.Fprintf(out, "  %-10s %8.2f ms\n", "total", float64(total)/float64(time.Millisecond))
}

func runFixes(cmd *cobra.Command, fileSet *source.FileSet, merged *diag.Bag, quiet bool) error {
	result, err := fix.Apply(fileSet, merged.Items(), false)
	if errors.Is(err, fix.ErrNoFixes) {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "no applicable fixes")
		}
		return nil
	}
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}
	out := cmd.OutOrStdout()
	edits := 0
	for _, change := range result.Changes {
		edits += change.EditCount
	}
	fmt.Fprintf(out, "applied %d fixes (%d edits across %d files)\n",
		len(result.Applied), edits, len(result.Changes))
	for _, skipped := range result.Skipped {
		fmt.Fprintf(out, "skipped %q: %s\n", skipped.Title, skipped.Reason)
	}
	return nil
}

func printSummary(cmd *cobra.Command, merged *diag.Bag, results []driver.CheckResult) {
	cached := 0
	for _, res := range results {
		if res.FromCache {
			cached++
		}
	}
	out := cmd.OutOrStdout()
	if merged.Len() == 0 {
		fmt.Fprintf(out, "%d files checked, no problems found\n", len(results))
		return
	}
	fmt.Fprintf(out, "%d files checked, %d problems found", len(results), merged.Len())
	if cached > 0 {
		fmt.Fprintf(out, " (%d from cache)", cached)
	}
	fmt.Fprintln(out)
}
