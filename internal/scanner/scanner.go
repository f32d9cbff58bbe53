// Package scanner splits raw chorddown text into a flat sequence of lexemes.
// The scan is a single pass with no lookahead beyond one byte; any run of
// bytes without structural meaning becomes one Literal lexeme.
package scanner

import (
	"chordr/internal/source"
)

// Scan produces the ordered lexeme sequence for the file. The sequence is
// finite and always terminates with exactly one EOF lexeme.
func Scan(file *source.File) []Lexeme {
	cur := NewCursor(file)
	out := make([]Lexeme, 0, len(file.Content)/4+1)

	for !cur.EOF() {
		start := cur.Off
		b := cur.Peek()
		if kind, ok := structuralKind(b); ok {
			cur.Bump()
			out = append(out, Lexeme{
				Kind: kind,
				Text: string(b),
				Span: source.Span{File: file.ID, Start: start, End: cur.Off},
			})
			continue
		}

		s, e := cur.TakeWhile(func(b byte) bool {
			_, structural := structuralKind(b)
			return !structural
		})
		out = append(out, Lexeme{
			Kind: Literal,
			Text: string(file.Content[s:e]),
			Span: source.Span{File: file.ID, Start: s, End: e},
		})
	}

	out = append(out, Lexeme{
		Kind: EOF,
		Span: source.Span{File: file.ID, Start: cur.Off, End: cur.Off},
	})
	return out
}

func structuralKind(b byte) (Kind, bool) {
	switch b {
	case '#':
		return HeaderStart, true
	case '\n':
		return Newline, true
	case '[':
		return ChordStart, true
	case ']':
		return ChordEnd, true
	case '>':
		return QuoteStart, true
	case ':':
		return Colon, true
	case '!':
		return ChorusMark, true
	case '$':
		return BridgeMark, true
	default:
		return Invalid, false
	}
}
