package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"chordr/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "chordr",
	Short: "Chorddown toolchain",
	Long:  `chordr parses, normalizes, transposes and renders chorddown song sheets`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
