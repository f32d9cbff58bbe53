package scanner

import (
	"chordr/internal/source"
)

// Kind is the category of a lexeme.
type Kind uint8

const (
	// Invalid indicates an erroneous lexeme. The scanner never produces it.
	Invalid Kind = iota
	// HeaderStart is a single '#'.
	HeaderStart
	// Newline is a single '\n'.
	Newline
	// ChordStart is '['.
	ChordStart
	// ChordEnd is ']'.
	ChordEnd
	// QuoteStart is '>'.
	QuoteStart
	// Colon is ':'.
	Colon
	// ChorusMark is '!'.
	ChorusMark
	// BridgeMark is '$'.
	BridgeMark
	// Literal is a run of characters with no structural meaning.
	Literal
	// EOF marks the end of the input. It is always the last lexeme.
	EOF
)

func (k Kind) String() string {
	switch k {
	case HeaderStart:
		return "HeaderStart"
	case Newline:
		return "Newline"
	case ChordStart:
		return "ChordStart"
	case ChordEnd:
		return "ChordEnd"
	case QuoteStart:
		return "QuoteStart"
	case Colon:
		return "Colon"
	case ChorusMark:
		return "ChorusMark"
	case BridgeMark:
		return "BridgeMark"
	case Literal:
		return "Literal"
	case EOF:
		return "EOF"
	}
	return "Invalid"
}

// Lexeme is a minimal structural or literal unit of chorddown input.
// Text always holds the exact source bytes so that later phases can append
// them to buffers without losing input.
type Lexeme struct {
	Kind Kind
	Text string
	Span source.Span
}
