package diag

import (
	"fmt"
)

// Code identifies one diagnostic condition.
type Code uint16

const (
	UnknownCode Code = 0

	// Tokenizer conditions. None of these abort tokenization; the state
	// machine degrades to best-effort tokens.
	TokInfo                  Code = 1000
	TokUnclosedChord         Code = 1001
	TokNestedChord           Code = 1002
	TokInvalidChordCharacter Code = 1003
	TokUnexpectedChordEnd    Code = 1004
	TokUnexpectedHeaderStart Code = 1005
	TokUnexpectedEndOfFile   Code = 1006

	// Catalog build conditions.
	CatInfo         Code = 4000
	CatUnreadable   Code = 4001
	CatMissingTitle Code = 4002
	CatDuplicateID  Code = 4003
)

var codeDescription = map[Code]string{
	UnknownCode:              "unknown condition",
	TokInfo:                  "tokenizer note",
	TokUnclosedChord:         "chord is not closed before the end of the line",
	TokNestedChord:           "chord opened inside another chord",
	TokInvalidChordCharacter: "unexpected character inside a chord",
	TokUnexpectedChordEnd:    "chord closing bracket without an open chord",
	TokUnexpectedHeaderStart: "'#' is only a header marker at the start of a line",
	TokUnexpectedEndOfFile:   "file ends in the middle of a line",
	CatInfo:                  "catalog note",
	CatUnreadable:            "file could not be read",
	CatMissingTitle:          "song has no title headline",
	CatDuplicateID:           "two songs map to the same song ID",
}

// ID renders the user-facing diagnostic identifier.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("TOK%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("CAT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
