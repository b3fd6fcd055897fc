package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dlint/internal/prof"
	"dlint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "dlint",
	Short: "Static analysis for D source files",
	Long:  `dlint runs style and correctness checks over D source files`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if path, _ := cmd.Root().PersistentFlags().GetString("cpuprofile"); path != "" {
			return prof.StartCPU(path)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		prof.StopCPU()
		if path, _ := cmd.Root().PersistentFlags().GetString("memprofile"); path != "" {
			return prof.WriteMem(path)
		}
		return nil
	},
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(checksCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to the given file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to the given file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
