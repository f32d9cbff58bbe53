package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"chordr/internal/diag"
	"chordr/internal/diagfmt"
	"chordr/internal/driver"
	"chordr/internal/format"
	"chordr/internal/project"
	"chordr/internal/source"
)

// loadConfig discovers the nearest chordr.toml. A missing file yields the
// zero config.
func loadConfig() (project.Config, error) {
	cfg, _, err := project.Discover(".")
	return cfg, err
}

// resolveFormatting merges config defaults with the command's flags; a flag
// the user set always wins.
func resolveFormatting(cmd *cobra.Command, cfg project.Config, target format.Format) (format.Formatting, error) {
	formatting := format.WithFormat(target)

	if cfg.Defaults.BNotation != "" {
		notation, err := format.ParseBNotation(cfg.Defaults.BNotation)
		if err != nil {
			return formatting, fmt.Errorf("chordr.toml: %w", err)
		}
		formatting.BNotation = notation
	}
	if cmd.Flags().Changed("b-notation") {
		value, err := cmd.Flags().GetString("b-notation")
		if err != nil {
			return formatting, err
		}
		notation, err := format.ParseBNotation(value)
		if err != nil {
			return formatting, err
		}
		formatting.BNotation = notation
	}
	return formatting, nil
}

// targetFormat reads the --format flag, falling back to the config default.
func targetFormat(cmd *cobra.Command, cfg project.Config) (format.Format, error) {
	if !cmd.Flags().Changed("format") && cfg.Defaults.Format != "" {
		return format.ParseFormat(cfg.Defaults.Format)
	}
	value, err := cmd.Flags().GetString("format")
	if err != nil {
		return format.Chorddown, err
	}
	return format.ParseFormat(value)
}

// runPipeline converts one input (a path, or "-" for stdin).
func runPipeline(input string, opts driver.Options) (*driver.Result, error) {
	if input == "-" {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return driver.ConvertText("<stdin>", text, opts)
	}
	return driver.ConvertFile(input, opts)
}

// printDiagnostics pretty-prints the bag to stderr, honoring --quiet and
// --color.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:   useColor,
		Context: true,
	})
	return nil
}

// maxDiagnostics reads the root --max-diagnostics flag.
func maxDiagnostics(cmd *cobra.Command) (int, error) {
	return cmd.Root().PersistentFlags().GetInt("max-diagnostics")
}

// writeOutput writes to the --output path or stdout for "".
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
