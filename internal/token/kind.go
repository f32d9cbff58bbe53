package token

// Kind represents the category of a semantic token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Headline is a '#'-prefixed header line.
	Headline
	// Chord is the raw chord text between '[' and ']'.
	Chord
	// Literal is plain lyric text.
	Literal
	// Quote is a '>'-prefixed quote/instruction line.
	Quote
	// Meta is a recognized 'Keyword: value' metadata line.
	Meta
	// Newline separates logical lines.
	Newline
)

func (k Kind) String() string {
	switch k {
	case Headline:
		return "Headline"
	case Chord:
		return "Chord"
	case Literal:
		return "Literal"
	case Quote:
		return "Quote"
	case Meta:
		return "Meta"
	case Newline:
		return "Newline"
	}
	return "Invalid"
}
