package chord

import (
	"chordr/internal/format"
)

// Accidental is the sharp/flat alteration of a note letter.
type Accidental uint8

const (
	Natural Accidental = iota
	Sharp
	Flat
)

func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	}
	return ""
}

// Note is one spelled note: a letter A-G plus an accidental. The chromatic
// pitch class is the note's identity; the spelling is presentation only.
type Note struct {
	Letter     byte // 'A'..'G'
	Accidental Accidental
}

// letterPitch maps a note letter to its natural pitch class (C = 0).
func letterPitch(letter byte) (int, bool) {
	switch letter {
	case 'C':
		return 0, true
	case 'D':
		return 2, true
	case 'E':
		return 4, true
	case 'F':
		return 5, true
	case 'G':
		return 7, true
	case 'A':
		return 9, true
	case 'B', 'H':
		return 11, true
	default:
		return 0, false
	}
}

// sharpSpelling and flatSpelling are the fixed re-spelling tables used after
// transposition: C=0, C#/Db=1, D=2, ... B=11.
var sharpSpelling = [12]Note{
	{'C', Natural}, {'C', Sharp}, {'D', Natural}, {'D', Sharp},
	{'E', Natural}, {'F', Natural}, {'F', Sharp}, {'G', Natural},
	{'G', Sharp}, {'A', Natural}, {'A', Sharp}, {'B', Natural},
}

var flatSpelling = [12]Note{
	{'C', Natural}, {'D', Flat}, {'D', Natural}, {'E', Flat},
	{'E', Natural}, {'F', Natural}, {'G', Flat}, {'G', Natural},
	{'A', Flat}, {'A', Natural}, {'B', Flat}, {'B', Natural},
}

// PitchClass reduces the note to its 0-11 chromatic identity.
func (n Note) PitchClass() int {
	base, _ := letterPitch(n.Letter)
	switch n.Accidental {
	case Sharp:
		base++
	case Flat:
		base--
	}
	return ((base % 12) + 12) % 12
}

// Transposed shifts the note by the given number of semitones and re-spells
// it from the fixed table. Sharps are preferred unless the original note was
// spelled with a flat; the preference is local to this call.
func (n Note) Transposed(semitones int) Note {
	pc := ((n.PitchClass()+semitones)%12 + 12) % 12
	if n.Accidental == Flat {
		return flatSpelling[pc]
	}
	return sharpSpelling[pc]
}

// Format renders the note under the given B-notation. Only spellings built
// on the letter B differ between the conventions: the natural note is "B" or
// "H", the flatted note "Bb" or "B".
func (n Note) Format(notation format.BNotation) string {
	if n.Letter == 'B' && notation == format.NotationH {
		switch n.Accidental {
		case Natural:
			return "H"
		case Flat:
			return "B"
		case Sharp:
			return "H#"
		}
	}
	return string(n.Letter) + n.Accidental.String()
}

// parseNote reads a leading note from text and returns the remainder.
func parseNote(text string) (Note, string, bool) {
	if text == "" {
		return Note{}, text, false
	}
	letter := text[0]
	if _, ok := letterPitch(letter); !ok {
		return Note{}, text, false
	}
	if letter == 'H' {
		// H is the European spelling of the natural B
		letter = 'B'
	}
	note := Note{Letter: letter, Accidental: Natural}
	rest := text[1:]
	if rest != "" {
		switch rest[0] {
		case '#':
			note.Accidental = Sharp
			rest = rest[1:]
		case 'b':
			note.Accidental = Flat
			rest = rest[1:]
		}
	}
	return note, rest, true
}
