package main

import (
	"github.com/spf13/cobra"

	"chordr/internal/driver"
	"chordr/internal/format"
)

var transposeCmd = &cobra.Command{
	Use:   "transpose [flags] file.chorddown",
	Short: "Transpose the chords of a chorddown file",
	Long:  `Transpose shifts every chord by the given number of semitones and prints the song back as chorddown`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTranspose,
}

func init() {
	transposeCmd.Flags().IntP("semitones", "n", 0, "semitones to transpose by (may be negative)")
	transposeCmd.Flags().String("b-notation", "B", "note naming convention (B|H)")
	transposeCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
}

func runTranspose(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	formatting, err := resolveFormatting(cmd, cfg, format.Chorddown)
	if err != nil {
		return err
	}
	semitones, err := cmd.Flags().GetInt("semitones")
	if err != nil {
		return err
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := runPipeline(args[0], driver.Options{
		Formatting:     formatting,
		Semitones:      semitones,
		MaxDiagnostics: maxDiags,
	})
	if err != nil {
		return err
	}
	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	return writeOutput(cmd, output, result.Output)
}
