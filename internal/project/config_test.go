package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[defaults]
format = "html"
b_notation = "H"

[catalog]
source_dir = "songs"
output = "catalog.json"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Defaults.Format != "html" || cfg.Defaults.BNotation != "H" {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	if cfg.Catalog.SourceDir != "songs" || cfg.Catalog.Output != "catalog.json" {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[defaults]
formt = "html"
`)
	if _, err := Load(path); err == nil {
		t.Error("expected an error for a misspelled key")
	}
}

func TestDiscoverWalksParents(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
[defaults]
format = "chorddown"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("config not discovered from a nested directory")
	}
	if cfg.Defaults.Format != "chorddown" {
		t.Errorf("format = %q", cfg.Defaults.Format)
	}
}

func TestDiscoverMissingIsNotAnError(t *testing.T) {
	cfg, path, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("unexpected config at %q", path)
	}
	if cfg != (Config{}) {
		t.Errorf("expected the zero config, got %+v", cfg)
	}
}
