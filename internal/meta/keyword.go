package meta

import (
	"strings"
)

// Keyword names one recognized metadata field. Title is deliberately absent:
// a song's title only ever comes from its level-1 headline or from
// externally supplied metadata.
type Keyword string

const (
	KeywordSubtitle  Keyword = "Subtitle"
	KeywordArtist    Keyword = "Artist"
	KeywordComposer  Keyword = "Composer"
	KeywordLyricist  Keyword = "Lyricist"
	KeywordCopyright Keyword = "Copyright"
	KeywordAlbum     Keyword = "Album"
	KeywordYear      Keyword = "Year"
	KeywordKey       Keyword = "Key"
	KeywordTime      Keyword = "Time"
	KeywordTempo     Keyword = "Tempo"
	KeywordDuration  Keyword = "Duration"
	KeywordCapo      Keyword = "Capo"
	KeywordBNotation Keyword = "B-Notation"
)

// Keywords lists every recognized keyword in the canonical output order of
// the chorddown converter's metadata block.
var Keywords = []Keyword{
	KeywordSubtitle,
	KeywordArtist,
	KeywordComposer,
	KeywordLyricist,
	KeywordCopyright,
	KeywordAlbum,
	KeywordYear,
	KeywordKey,
	KeywordTime,
	KeywordTempo,
	KeywordDuration,
	KeywordCapo,
	KeywordBNotation,
}

// matchKeyword maps a raw keyword spelling to its canonical form.
func matchKeyword(raw string) (Keyword, bool) {
	folded := strings.ToLower(strings.TrimSpace(raw))
	switch folded {
	case "b notation", "b-notation", "bnotation":
		return KeywordBNotation, true
	}
	for _, kw := range Keywords {
		if folded == strings.ToLower(string(kw)) {
			return kw, true
		}
	}
	return "", false
}
