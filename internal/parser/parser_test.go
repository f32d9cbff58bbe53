package parser

import (
	"testing"

	"chordr/internal/source"
	"chordr/internal/token"
)

func TestParseSections(t *testing.T) {
	tokens := []token.Token{
		token.NewHeadline(1, "Swing Low", token.ModNone, span()),
		token.NewNewline(span()),
		token.NewChord("D", span()),
		token.NewLiteral("Swing low", span()),
		token.NewNewline(span()),
		token.NewHeadline(2, "Chorus", token.ModChorus, span()),
		token.NewNewline(span()),
		token.NewLiteral("sweet chariot", span()),
	}

	result := Parse(tokens)
	doc := result.Document
	if doc.Kind != NodeDocument {
		t.Fatalf("root kind = %s", doc.Kind)
	}
	if len(doc.Children) != 2 {
		t.Fatalf("got %d sections, want 2", len(doc.Children))
	}

	first := doc.Children[0]
	if first.Head == nil || first.Head.Token.Text != "Swing Low" {
		t.Errorf("first section head = %+v", first.Head)
	}
	if first.SectionType != SectionUnknown {
		t.Errorf("first section type = %v", first.SectionType)
	}

	second := doc.Children[1]
	if second.SectionType != SectionChorus {
		t.Errorf("second section type = %v, want chorus", second.SectionType)
	}
	if len(second.Children) != 2 {
		t.Fatalf("chorus has %d children, want 2", len(second.Children))
	}

	if result.Meta.Title != "Swing Low" {
		t.Errorf("title = %q", result.Meta.Title)
	}
}

func TestParseChordTextPair(t *testing.T) {
	tokens := []token.Token{
		token.NewChord("D", span()),
		token.NewLiteral("Swing", span()),
	}
	result := Parse(tokens)
	sec := result.Document.Children[0]
	if len(sec.Children) != 1 {
		t.Fatalf("got %d nodes, want 1 pair", len(sec.Children))
	}
	pair := sec.Children[0]
	if pair.Kind != NodeChordTextPair {
		t.Fatalf("kind = %s, want ChordTextPair", pair.Kind)
	}
	if pair.Token.Text != "Swing" {
		t.Errorf("pair text = %q", pair.Token.Text)
	}
	if pair.Chord.Root.Letter != 'D' {
		t.Errorf("pair chord root = %q", pair.Chord.Root.Letter)
	}
}

func TestParseStandaloneChord(t *testing.T) {
	tokens := []token.Token{
		token.NewChord("D", span()),
		token.NewNewline(span()),
	}
	result := Parse(tokens)
	sec := result.Document.Children[0]
	if sec.Children[0].Kind != NodeChordStandalone {
		t.Errorf("kind = %s, want ChordStandalone", sec.Children[0].Kind)
	}
}

func TestParseImplicitHeadlessSection(t *testing.T) {
	tokens := []token.Token{
		token.NewLiteral("loose text", span()),
		token.NewNewline(span()),
		token.NewHeadline(1, "Title", token.ModNone, span()),
	}
	result := Parse(tokens)
	doc := result.Document
	if len(doc.Children) != 2 {
		t.Fatalf("got %d sections, want 2", len(doc.Children))
	}
	if doc.Children[0].Head != nil {
		t.Error("headless section must have no head")
	}
	if doc.Children[1].Head == nil {
		t.Error("titled section lost its head")
	}
}

func TestParseTitleOnlyFromFirstLevelOne(t *testing.T) {
	tokens := []token.Token{
		token.NewHeadline(2, "Not the title", token.ModNone, span()),
		token.NewHeadline(1, "The Title", token.ModNone, span()),
		token.NewHeadline(1, "Another", token.ModNone, span()),
	}
	result := Parse(tokens)
	if result.Meta.Title != "The Title" {
		t.Errorf("title = %q, want %q", result.Meta.Title, "The Title")
	}
}

func TestParseDiscoversMeta(t *testing.T) {
	tokens := []token.Token{
		token.NewMeta("Artist", "Leadbelly", span()),
		token.NewNewline(span()),
	}
	result := Parse(tokens)
	if result.Meta.Artist != "Leadbelly" {
		t.Errorf("artist = %q", result.Meta.Artist)
	}
	sec := result.Document.Children[0]
	if sec.Children[0].Kind != NodeMeta {
		t.Errorf("meta line kind = %s, want Meta", sec.Children[0].Kind)
	}
}

func TestParseEmpty(t *testing.T) {
	result := Parse(nil)
	if result.Document == nil || len(result.Document.Children) != 0 {
		t.Errorf("empty input should yield an empty document, got %+v", result.Document)
	}
}

func span() source.Span {
	return source.Span{}
}
