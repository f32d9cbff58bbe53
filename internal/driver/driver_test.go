package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chordr/internal/format"
	"chordr/internal/meta"
)

func TestConvertTextChorddown(t *testing.T) {
	res, err := ConvertText("test.chorddown", []byte("# Title\n\nSwing [D]low\n"), Options{
		Formatting: format.WithFormat(format.Chorddown),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Output != "# Title\n\nSwing [D]low\n" {
		t.Errorf("output = %q", res.Output)
	}
	if res.Meta.Title != "Title" {
		t.Errorf("title = %q", res.Meta.Title)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestConvertTextTransposed(t *testing.T) {
	res, err := ConvertText("test.chorddown", []byte("Swing [D]low\n"), Options{
		Formatting: format.WithFormat(format.Chorddown),
		Semitones:  2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Output, "[E]") {
		t.Errorf("chord not transposed: %q", res.Output)
	}
}

func TestConvertTextHTML(t *testing.T) {
	res, err := ConvertText("test.chorddown", []byte("Swing [D]low\n"), Options{
		Formatting: format.WithFormat(format.HTML),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Output, `data-chord="D"`) {
		t.Errorf("html output = %q", res.Output)
	}
}

func TestConvertTextCollectsDiagnostics(t *testing.T) {
	res, err := ConvertText("test.chorddown", []byte("[Dm\n"), Options{
		Formatting: format.WithFormat(format.Chorddown),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasWarnings() {
		t.Error("expected an unclosed-chord warning")
	}
	if res.Bag.HasErrors() {
		t.Error("malformed input must not produce errors")
	}
	if !strings.Contains(res.Output, "[Dm]") {
		t.Errorf("best-effort output = %q", res.Output)
	}
}

func TestConvertTextSuppliedMetaWins(t *testing.T) {
	res, err := ConvertText("test.chorddown", []byte("# Inline\n\nHello\n"), Options{
		Formatting: format.WithFormat(format.Chorddown),
		Meta:       meta.Information{Title: "Supplied"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Meta.Title != "Supplied" {
		t.Errorf("merged title = %q", res.Meta.Title)
	}
	if !strings.HasPrefix(res.Output, "# Supplied\n") {
		t.Errorf("output = %q", res.Output)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.chorddown")
	if err := os.WriteFile(path, []byte("# Title\n\nHello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := ConvertFile(path, Options{Formatting: format.WithFormat(format.Chorddown)})
	if err != nil {
		t.Fatal(err)
	}
	if res.Meta.Title != "Title" {
		t.Errorf("title = %q", res.Meta.Title)
	}
}

func TestConvertFileMissing(t *testing.T) {
	_, err := ConvertFile(filepath.Join(t.TempDir(), "nope.chorddown"), Options{})
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.chorddown")
	if err := os.WriteFile(path, []byte("Swing [D]low\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Tokenize(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) != 4 {
		t.Errorf("got %d tokens, want 4", len(res.Tokens))
	}
}
