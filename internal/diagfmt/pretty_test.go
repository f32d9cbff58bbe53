package diagfmt

import (
	"strings"
	"testing"

	"chordr/internal/diag"
	"chordr/internal/source"
	"chordr/internal/token"
)

func TestPrettyWithContext(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("song.chorddown", []byte("Swing [Dm\nlow\n"))
	bag := diag.NewBag(4)
	bag.Add(diag.NewWarning(
		diag.TokUnclosedChord,
		source.Span{File: id, Start: 9, End: 10},
		"chord is not closed before the end of the line",
	))

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{Context: true})
	out := b.String()

	if !strings.Contains(out, "song.chorddown:1:10:") {
		t.Errorf("position missing: %q", out)
	}
	if !strings.Contains(out, "WARNING TOK1001:") {
		t.Errorf("severity and code missing: %q", out)
	}
	if !strings.Contains(out, "Swing [Dm") {
		t.Errorf("source line missing: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("caret missing: %q", out)
	}
}

func TestPrettyWithoutFileSet(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.NewWarning(diag.CatMissingTitle, source.Span{}, "no title"))

	var b strings.Builder
	Pretty(&b, bag, nil, PrettyOpts{})
	out := b.String()
	if !strings.Contains(out, "CAT4002") || !strings.Contains(out, "no title") {
		t.Errorf("fallback output = %q", out)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("song.chorddown", []byte("[D]low\n"))
	tokens := []token.Token{
		token.NewChord("D", source.Span{File: id, Start: 1, End: 2}),
		token.NewLiteral("low", source.Span{File: id, Start: 3, End: 6}),
	}

	var b strings.Builder
	if err := FormatTokensPretty(&b, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "Chord") || !strings.Contains(out, `"D"`) {
		t.Errorf("chord row missing: %q", out)
	}
	if !strings.Contains(out, "at 1:2-1:3") {
		t.Errorf("span resolution missing: %q", out)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens := []token.Token{
		token.NewHeadline(2, "Chorus", token.ModChorus, source.Span{}),
		token.NewMeta("Artist", "Leadbelly", source.Span{}),
	}

	var b strings.Builder
	if err := FormatTokensJSON(&b, tokens); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{
		`"kind": "Headline"`,
		`"level": 2`,
		`"modifier": "!"`,
		`"keyword": "Artist"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("json lacks %s: %s", want, out)
		}
	}
}
