package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"chordr/internal/catalog"
	"chordr/internal/ui"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Build and inspect song catalogs",
}

var catalogBuildCmd = &cobra.Command{
	Use:   "build [flags] [dir]",
	Short: "Parse a directory of chorddown files into a catalog",
	Long: `Catalog build walks a directory for chorddown files, parses each one
and writes the collected song metadata as a JSON catalog. Unchanged files
are served from the on-disk cache`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogBuild,
}

func init() {
	catalogBuildCmd.Flags().StringP("output", "o", "", "write the catalog to file instead of stdout")
	catalogBuildCmd.Flags().Int("jobs", 0, "parse workers (0 = number of CPUs)")
	catalogBuildCmd.Flags().Bool("no-cache", false, "reparse every file, ignoring the cache")
	catalogBuildCmd.Flags().String("cache-dir", "", "cache directory (default: XDG cache)")
	catalogCmd.AddCommand(catalogBuildCmd)
}

func runCatalogBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := cfg.Catalog.SourceDir
	if len(args) == 1 {
		dir = args[0]
	}
	if dir == "" {
		return fmt.Errorf("no song directory: pass one as an argument or set catalog.source_dir in chordr.toml")
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output == "" {
		output = cfg.Catalog.Output
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return err
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	var cache *catalog.DiskCache
	if !noCache {
		if cacheDir != "" {
			cache, err = catalog.OpenDiskCacheAt(cacheDir)
		} else {
			cache, err = catalog.OpenDiskCache("chordr")
		}
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
	}

	opts := catalog.BuildOptions{
		Cache:          cache,
		Concurrency:    jobs,
		MaxDiagnostics: maxDiags,
	}

	var result *catalog.BuildResult
	if !quiet && isTerminal(os.Stdout) {
		result, err = buildWithProgress(cmd, dir, opts)
	} else {
		result, err = catalog.Build(cmd.Context(), dir, opts)
	}
	if err != nil {
		return err
	}
	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "cataloged %d songs (%d from cache)\n",
			result.Catalog.Len(), result.CacheHits)
	}

	if output == "" {
		return result.Catalog.WriteJSON(cmd.OutOrStdout())
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := result.Catalog.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// buildWithProgress runs the build behind a live terminal UI. The build
// itself runs in a goroutine and feeds the model through the event channel.
func buildWithProgress(cmd *cobra.Command, dir string, opts catalog.BuildOptions) (*catalog.BuildResult, error) {
	files, err := catalog.ListSongFiles(dir)
	if err != nil {
		return nil, err
	}

	events := make(chan catalog.Event, len(files))
	opts.Events = events

	type outcome struct {
		result *catalog.BuildResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := catalog.Build(cmd.Context(), dir, opts)
		done <- outcome{result, err}
	}()

	program := tea.NewProgram(ui.NewProgressModel("Building catalog", files, events))
	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("progress ui: %w", err)
	}

	out := <-done
	return out.result, out.err
}
