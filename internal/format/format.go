package format

import (
	"fmt"
	"strings"
)

// Format selects the output target of a conversion.
type Format uint8

const (
	// Chorddown re-emits normalized chorddown text.
	Chorddown Format = iota
	// HTML emits the tagged markup tree for on-screen display.
	HTML
)

func (f Format) String() string {
	switch f {
	case Chorddown:
		return "chorddown"
	case HTML:
		return "html"
	}
	return "unknown"
}

// ParseFormat reads a format name as given on the command line.
func ParseFormat(value string) (Format, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "chorddown", "chordown", "cd":
		return Chorddown, nil
	case "html":
		return HTML, nil
	default:
		return Chorddown, fmt.Errorf("invalid format %q (expected chorddown|html)", value)
	}
}
