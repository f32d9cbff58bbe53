// Package chord models chord symbols: parsing, display formatting and
// chromatic transposition with enharmonic re-spelling.
package chord

import (
	"strings"

	"chordr/internal/format"
)

// Chord is a parsed chord symbol: root note, free-form quality suffix and an
// optional bass note. Parsing is deliberately permissive: bracketed content
// that does not start with a note letter is kept verbatim as an opaque
// quality so that no real-world chorddown file is rejected.
type Chord struct {
	Root    Note
	HasRoot bool
	Quality string
	Bass    *Note
}

// Parse splits a chord symbol into root, quality and bass. It never fails.
func Parse(text string) Chord {
	root, rest, ok := parseNote(text)
	if !ok {
		return Chord{Quality: text}
	}
	c := Chord{Root: root, HasRoot: true}

	if idx := strings.LastIndexByte(rest, '/'); idx >= 0 {
		if bass, tail, ok := parseNote(rest[idx+1:]); ok && tail == "" {
			c.Quality = rest[:idx]
			c.Bass = &bass
			return c
		}
	}
	c.Quality = rest
	return c
}

// String renders the chord under the formatting's note-naming convention.
func (c Chord) String(formatting format.Formatting) string {
	if !c.HasRoot {
		return c.Quality
	}
	var b strings.Builder
	b.WriteString(c.Root.Format(formatting.BNotation))
	b.WriteString(c.Quality)
	if c.Bass != nil {
		b.WriteByte('/')
		b.WriteString(c.Bass.Format(formatting.BNotation))
	}
	return b.String()
}

// Transposed shifts root and bass independently by the given number of
// semitones (which may be negative). The quality suffix is untouched, so the
// chord stays chromatically consistent with its root. Chords without a
// recognized root transpose to themselves.
func (c Chord) Transposed(semitones int) Chord {
	if !c.HasRoot {
		return c
	}
	out := c
	out.Root = c.Root.Transposed(semitones)
	if c.Bass != nil {
		bass := c.Bass.Transposed(semitones)
		out.Bass = &bass
	}
	return out
}

// PitchClass returns the chromatic identity of the chord root, or -1 for an
// opaque chord with no recognized root.
func (c Chord) PitchClass() int {
	if !c.HasRoot {
		return -1
	}
	return c.Root.PitchClass()
}
