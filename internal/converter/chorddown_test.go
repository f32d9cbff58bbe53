package converter

import (
	"strings"
	"testing"

	"chordr/internal/format"
	"chordr/internal/meta"
	"chordr/internal/parser"
	"chordr/internal/source"
	"chordr/internal/tokenizer"
)

func convertChorddown(t *testing.T, input string, info meta.Information) string {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("input.chorddown", []byte(input))
	tokens := tokenizer.Tokenize(fs.Get(id), tokenizer.Options{})
	parsed := parser.Parse(tokens)

	merged := meta.Merge(parsed.Meta, info)
	out, err := Chorddown{}.Convert(parsed.Document, merged, format.WithFormat(format.Chorddown))
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestChorddownBasicDocument(t *testing.T) {
	input := "# Swing Low\nArtist: Leadbelly\n\nSwing [D]low\n"
	got := convertChorddown(t, input, meta.Information{})
	want := "# Swing Low\nArtist: Leadbelly\n\nSwing [D]low\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestChorddownIsIdempotent(t *testing.T) {
	inputs := []string{
		"# Title\n\nSwing [D]low\n",
		"# Title\nKey: Am\n\n##! Chorus\nsweet [A7]chariot\n",
		"loose line before any headline\n",
		"> play it slowly\n",
	}
	for _, input := range inputs {
		once := convertChorddown(t, input, meta.Information{})
		twice := convertChorddown(t, once, meta.Information{})
		if once != twice {
			t.Errorf("not a fixed point for %q:\nfirst  %q\nsecond %q", input, once, twice)
		}
	}
}

func TestChorddownCollapsesBlankRuns(t *testing.T) {
	got := convertChorddown(t, "# Title\n\n\n\n\nHello\n\n\n\n", meta.Information{})
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("output still contains a blank run: %q", got)
	}
	if !strings.HasSuffix(got, "Hello\n") {
		t.Errorf("trailing blanks not trimmed: %q", got)
	}
}

func TestChorddownMetaBlockOrder(t *testing.T) {
	// inline order is Year before Artist; the block re-emits canonically
	input := "# Title\nYear: 1939\nArtist: Leadbelly\n\nHello\n"
	got := convertChorddown(t, input, meta.Information{})
	artistAt := strings.Index(got, "Artist:")
	yearAt := strings.Index(got, "Year:")
	if artistAt < 0 || yearAt < 0 {
		t.Fatalf("metadata block missing: %q", got)
	}
	if artistAt > yearAt {
		t.Errorf("metadata block not in canonical order: %q", got)
	}
}

func TestChorddownSuppliedMetaWins(t *testing.T) {
	input := "# Inline Title\nArtist: Inline\n\nHello\n"
	got := convertChorddown(t, input, meta.Information{Title: "Supplied Title", Artist: "Supplied"})
	if !strings.HasPrefix(got, "# Supplied Title\n") {
		t.Errorf("supplied title lost: %q", got)
	}
	if !strings.Contains(got, "Artist: Supplied\n") {
		t.Errorf("supplied artist lost: %q", got)
	}
	if strings.Contains(got, "Inline\n") {
		t.Errorf("inline metadata leaked through: %q", got)
	}
}

func TestChorddownSubHeadlineWithModifier(t *testing.T) {
	got := convertChorddown(t, "# Title\n\n##! Chorus\nHello\n", meta.Information{})
	if !strings.Contains(got, "##! Chorus\n") {
		t.Errorf("chorus headline lost its modifier: %q", got)
	}
}

func TestChorddownQuote(t *testing.T) {
	got := convertChorddown(t, ">   play slowly\n", meta.Information{})
	if !strings.Contains(got, "> play slowly\n") {
		t.Errorf("quote not normalized: %q", got)
	}
}

func TestChorddownStandaloneChord(t *testing.T) {
	got := convertChorddown(t, "[D] [G]\n", meta.Information{})
	if !strings.Contains(got, "[D] [G]") {
		t.Errorf("chord sequence mangled: %q", got)
	}
}

func TestChorddownEndsWithSingleNewline(t *testing.T) {
	got := convertChorddown(t, "Hello", meta.Information{})
	if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("output must end with exactly one newline: %q", got)
	}
}
