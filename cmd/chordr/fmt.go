package main

import (
	"os"

	"github.com/spf13/cobra"

	"chordr/internal/driver"
	"chordr/internal/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] file.chorddown",
	Short: "Normalize a chorddown file",
	Long: `Fmt reparses a chorddown file and prints it back in canonical form:
the metadata block sits below the title, blank runs collapse to a single
empty line and the file ends with exactly one newline`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "write the result back to the file instead of stdout")
	fmtCmd.Flags().String("b-notation", "B", "note naming convention (B|H)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	formatting, err := resolveFormatting(cmd, cfg, format.Chorddown)
	if err != nil {
		return err
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := runPipeline(args[0], driver.Options{
		Formatting:     formatting,
		MaxDiagnostics: maxDiags,
	})
	if err != nil {
		return err
	}
	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	if write && args[0] != "-" {
		return os.WriteFile(args[0], []byte(result.Output), 0o644)
	}
	return writeOutput(cmd, "", result.Output)
}
