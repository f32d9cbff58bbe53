package token

import (
	"chordr/internal/source"
)

// Token is one semantic unit of a chorddown document.
//
// Text holds the chord symbol for Chord, the line content for Literal and
// Quote, the header text for Headline and the value for Meta. Level and
// Modifier are only meaningful for Headline, Keyword only for Meta.
type Token struct {
	Kind     Kind
	Text     string
	Span     source.Span
	Level    uint8
	Modifier Modifier
	Keyword  string
}

// NewHeadline builds a headline token of the given level.
func NewHeadline(level uint8, text string, modifier Modifier, span source.Span) Token {
	return Token{Kind: Headline, Text: text, Level: level, Modifier: modifier, Span: span}
}

// NewChord builds a chord token from the raw text between the delimiters.
func NewChord(text string, span source.Span) Token {
	return Token{Kind: Chord, Text: text, Span: span}
}

// NewLiteral builds a plain text token.
func NewLiteral(text string, span source.Span) Token {
	return Token{Kind: Literal, Text: text, Span: span}
}

// NewQuote builds a quote token.
func NewQuote(text string, span source.Span) Token {
	return Token{Kind: Quote, Text: text, Span: span}
}

// NewMeta builds a metadata token for a recognized keyword.
func NewMeta(keyword, content string, span source.Span) Token {
	return Token{Kind: Meta, Keyword: keyword, Text: content, Span: span}
}

// NewNewline builds a newline token.
func NewNewline(span source.Span) Token {
	return Token{Kind: Newline, Span: span}
}

// IsTextBearing reports whether the token can serve as the text half of a
// chord/text pair.
func (t Token) IsTextBearing() bool {
	return t.Kind == Literal && t.Text != ""
}
