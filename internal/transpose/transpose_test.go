package transpose

import (
	"testing"

	"chordr/internal/chord"
	"chordr/internal/format"
	"chordr/internal/parser"
	"chordr/internal/token"
)

func TestTreeTransposesPairsAndStandalones(t *testing.T) {
	pair := parser.NewChordTextPair(chord.Parse("D"), token.Token{Kind: token.Literal, Text: "low"})
	standalone := parser.NewChordStandalone(chord.Parse("Am"))
	doc := parser.NewDocument(parser.NewSection(nil, parser.SectionUnknown, pair, standalone))

	Tree(doc, 2)

	formatting := format.WithFormat(format.Chorddown)
	if got := pair.Chord.String(formatting); got != "E" {
		t.Errorf("pair chord = %q, want E", got)
	}
	if got := standalone.Chord.String(formatting); got != "Bm" {
		t.Errorf("standalone chord = %q, want Bm", got)
	}
}

func TestTreeZeroIsIdentity(t *testing.T) {
	pair := parser.NewChordTextPair(chord.Parse("F#m"), token.Token{Kind: token.Literal, Text: "x"})
	doc := parser.NewDocument(parser.NewSection(nil, parser.SectionUnknown, pair))

	Tree(doc, 0)

	if got := pair.Chord.String(format.WithFormat(format.Chorddown)); got != "F#m" {
		t.Errorf("chord changed under zero transposition: %q", got)
	}
}

func TestTreeNilDocument(t *testing.T) {
	// must not panic
	Tree(nil, 3)
}
