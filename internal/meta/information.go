package meta

import (
	"chordr/internal/format"
)

// Information is the song-level metadata a conversion runs with. Fields are
// empty strings when absent. It is built once per call — either supplied by
// the caller or discovered from the token stream — and only read afterwards.
type Information struct {
	Title     string
	Subtitle  string
	Artist    string
	Composer  string
	Lyricist  string
	Copyright string
	Album     string
	Year      string
	Key       string
	Time      string
	Tempo     string
	Duration  string
	Capo      string

	BNotation format.BNotation
}

// Apply stores an inline entry into the matching field. Unknown keywords
// and unparsable notation values are ignored.
func (i *Information) Apply(e Entry) {
	switch e.Keyword {
	case KeywordSubtitle:
		i.Subtitle = e.Content
	case KeywordArtist:
		i.Artist = e.Content
	case KeywordComposer:
		i.Composer = e.Content
	case KeywordLyricist:
		i.Lyricist = e.Content
	case KeywordCopyright:
		i.Copyright = e.Content
	case KeywordAlbum:
		i.Album = e.Content
	case KeywordYear:
		i.Year = e.Content
	case KeywordKey:
		i.Key = e.Content
	case KeywordTime:
		i.Time = e.Content
	case KeywordTempo:
		i.Tempo = e.Content
	case KeywordDuration:
		i.Duration = e.Content
	case KeywordCapo:
		i.Capo = e.Content
	case KeywordBNotation:
		if n, err := format.ParseBNotation(e.Content); err == nil {
			i.BNotation = n
		}
	}
}

// Get returns the field value for a keyword.
func (i *Information) Get(kw Keyword) string {
	switch kw {
	case KeywordSubtitle:
		return i.Subtitle
	case KeywordArtist:
		return i.Artist
	case KeywordComposer:
		return i.Composer
	case KeywordLyricist:
		return i.Lyricist
	case KeywordCopyright:
		return i.Copyright
	case KeywordAlbum:
		return i.Album
	case KeywordYear:
		return i.Year
	case KeywordKey:
		return i.Key
	case KeywordTime:
		return i.Time
	case KeywordTempo:
		return i.Tempo
	case KeywordDuration:
		return i.Duration
	case KeywordCapo:
		return i.Capo
	case KeywordBNotation:
		// The notation is a display convention, not part of the song's
		// metadata block.
		return ""
	}
	return ""
}

// Merge overlays the supplied metadata onto the discovered one: every
// non-empty field of supplied wins, discovered values fill the gaps.
func Merge(discovered, supplied Information) Information {
	out := discovered
	if supplied.Title != "" {
		out.Title = supplied.Title
	}
	if supplied.Subtitle != "" {
		out.Subtitle = supplied.Subtitle
	}
	if supplied.Artist != "" {
		out.Artist = supplied.Artist
	}
	if supplied.Composer != "" {
		out.Composer = supplied.Composer
	}
	if supplied.Lyricist != "" {
		out.Lyricist = supplied.Lyricist
	}
	if supplied.Copyright != "" {
		out.Copyright = supplied.Copyright
	}
	if supplied.Album != "" {
		out.Album = supplied.Album
	}
	if supplied.Year != "" {
		out.Year = supplied.Year
	}
	if supplied.Key != "" {
		out.Key = supplied.Key
	}
	if supplied.Time != "" {
		out.Time = supplied.Time
	}
	if supplied.Tempo != "" {
		out.Tempo = supplied.Tempo
	}
	if supplied.Duration != "" {
		out.Duration = supplied.Duration
	}
	if supplied.Capo != "" {
		out.Capo = supplied.Capo
	}
	if supplied.BNotation != format.NotationB {
		out.BNotation = supplied.BNotation
	}
	return out
}
