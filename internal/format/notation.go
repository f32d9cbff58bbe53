package format

import (
	"fmt"
	"strings"
)

// BNotation selects how the natural note one semitone below C is spelled.
// European songbooks write H for the natural note and B for the flatted one.
type BNotation uint8

const (
	// NotationB spells the natural note "B" and the flatted note "Bb".
	NotationB BNotation = iota
	// NotationH spells the natural note "H" and the flatted note "B".
	NotationH
)

func (n BNotation) String() string {
	if n == NotationH {
		return "H"
	}
	return "B"
}

// ParseBNotation reads a notation name from a flag or a metadata line.
func ParseBNotation(value string) (BNotation, error) {
	switch strings.TrimSpace(strings.ToUpper(value)) {
	case "B":
		return NotationB, nil
	case "H":
		return NotationH, nil
	default:
		return NotationB, fmt.Errorf("invalid b-notation %q (expected B|H)", value)
	}
}
