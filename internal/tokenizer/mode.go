package tokenizer

// mode is one state of the tokenizer's finite-state machine.
type mode uint8

const (
	// modeBOF is the initial state before any input.
	modeBOF mode = iota
	// modeHeader accumulates a '#'-prefixed header line.
	modeHeader
	// modeChord accumulates the text between chord delimiters.
	modeChord
	// modeQuote accumulates a '>'-prefixed quote line.
	modeQuote
	// modeLiteral accumulates plain text.
	modeLiteral
	// modeNewline is the start-of-line state after a '\n'.
	modeNewline
	// modeEOF is terminal.
	modeEOF
)

func (m mode) String() string {
	switch m {
	case modeBOF:
		return "BOF"
	case modeHeader:
		return "Header"
	case modeChord:
		return "Chord"
	case modeQuote:
		return "Quote"
	case modeLiteral:
		return "Literal"
	case modeNewline:
		return "Newline"
	case modeEOF:
		return "EOF"
	}
	return "Invalid"
}

// atLineStart reports whether the state shares the start-of-line transition
// rules (BOF and Newline behave identically).
func (m mode) atLineStart() bool {
	return m == modeBOF || m == modeNewline
}
