package catalog

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"chordr/internal/meta"
)

// Song is one catalog entry: the song's metadata plus its normalized
// chorddown source. The source text is stored, never a parsed tree.
type Song struct {
	ID        string `json:"id" msgpack:"id"`
	Title     string `json:"title" msgpack:"title"`
	Subtitle  string `json:"subtitle,omitempty" msgpack:"subtitle"`
	Artist    string `json:"artist,omitempty" msgpack:"artist"`
	Composer  string `json:"composer,omitempty" msgpack:"composer"`
	Lyricist  string `json:"lyricist,omitempty" msgpack:"lyricist"`
	Copyright string `json:"copyright,omitempty" msgpack:"copyright"`
	Album     string `json:"album,omitempty" msgpack:"album"`
	Year      string `json:"year,omitempty" msgpack:"year"`
	Key       string `json:"key,omitempty" msgpack:"key"`
	Time      string `json:"time,omitempty" msgpack:"time"`
	Tempo     string `json:"tempo,omitempty" msgpack:"tempo"`
	Duration  string `json:"duration,omitempty" msgpack:"duration"`
	Capo      string `json:"capo,omitempty" msgpack:"capo"`
	Src       string `json:"src" msgpack:"src"`
}

func songFromMeta(id string, info meta.Information, src string) Song {
	return Song{
		ID:        id,
		Title:     info.Title,
		Subtitle:  info.Subtitle,
		Artist:    info.Artist,
		Composer:  info.Composer,
		Lyricist:  info.Lyricist,
		Copyright: info.Copyright,
		Album:     info.Album,
		Year:      info.Year,
		Key:       info.Key,
		Time:      info.Time,
		Tempo:     info.Tempo,
		Duration:  info.Duration,
		Capo:      info.Capo,
		Src:       src,
	}
}

// slugTransformer strips diacritics: NFD decomposition, drop combining
// marks, recompose.
var slugTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SongID derives a stable, ASCII-friendly song ID from a file path:
// "Schöne Lieder.chorddown" becomes "schone-lieder".
func SongID(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	if stripped, _, err := transform.String(slugTransformer, base); err == nil {
		base = stripped
	}

	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
