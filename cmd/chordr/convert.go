package main

import (
	"github.com/spf13/cobra"

	"chordr/internal/driver"
	"chordr/internal/meta"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] file.chorddown",
	Short: "Convert a chorddown file to chorddown or html",
	Long:  `Convert parses a chorddown file (or stdin with "-") and renders it in the requested output format`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("format", "chorddown", "output format (chorddown|html)")
	convertCmd.Flags().String("b-notation", "B", "note naming convention (B|H)")
	convertCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
	convertCmd.Flags().Int("transpose", 0, "semitones to transpose by (may be negative)")
	addMetaFlags(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	target, err := targetFormat(cmd, cfg)
	if err != nil {
		return err
	}
	formatting, err := resolveFormatting(cmd, cfg, target)
	if err != nil {
		return err
	}
	semitones, err := cmd.Flags().GetInt("transpose")
	if err != nil {
		return err
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := runPipeline(args[0], driver.Options{
		Formatting:     formatting,
		Meta:           metaFromFlags(cmd),
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

// addMetaFlags registers the externally supplied metadata fields a caller
// would normally load from a song store.
func addMetaFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "song title (overrides the level-1 headline)")
	cmd.Flags().String("artist", "", "artist metadata")
	cmd.Flags().String("key", "", "key metadata")
	cmd.Flags().String("capo", "", "capo metadata")
}

func metaFromFlags(cmd *cobra.Command) meta.Information {
	var info meta.Information
	info.Title, _ = cmd.Flags().GetString("title")
	info.Artist, _ = cmd.Flags().GetString("artist")
	info.Key, _ = cmd.Flags().GetString("key")
	info.Capo, _ = cmd.Flags().GetString("capo")
	return info
}
