// Package chordr is the public boundary of the chorddown core. Collaborators
// (a web view, a song server, a sync tool) hand it a text buffer plus
// formatting and metadata options and get back a rendered string.
package chordr

import (
	"chordr/internal/driver"
	"chordr/internal/format"
	"chordr/internal/meta"
)

// Format selects the conversion target.
type Format string

const (
	FormatChorddown Format = "chorddown"
	FormatHTML      Format = "html"
)

// BNotation selects the spelling convention for the note below C.
type BNotation string

const (
	NotationB BNotation = "B"
	NotationH BNotation = "H"
)

// Formatting is the render configuration for one conversion call.
type Formatting struct {
	Format    Format
	BNotation BNotation
}

// MetaInformation is the externally supplied song metadata. Empty fields are
// absent; non-empty fields win over metadata discovered inline.
type MetaInformation struct {
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
}

// ConvertToFormat parses the chorddown text and renders it in the requested
// format. Malformed input degrades to a best-effort document; only an
// impossible conversion returns an error, and then without partial output.
func ConvertToFormat(text string, m MetaInformation, f Formatting) (string, error) {
	return TransposeAndConvertToFormat(text, 0, m, f)
}

// TransposeAndConvertToFormat is ConvertToFormat with every chord shifted by
// the given number of semitones (may be negative) before rendering.
func TransposeAndConvertToFormat(text string, semitones int, m MetaInformation, f Formatting) (string, error) {
	formatting, err := internalFormatting(f)
	if err != nil {
		return "", err
	}
	res, err := driver.ConvertText("input.chorddown", []byte(text), driver.Options{
		Formatting: formatting,
		Meta:       internalMeta(m),
		Semitones:  semitones,
	})
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

func internalFormatting(f Formatting) (format.Formatting, error) {
	out := format.WithFormat(format.Chorddown)
	if f.Format != "" {
		parsed, err := format.ParseFormat(string(f.Format))
		if err != nil {
			return out, err
		}
		out.Format = parsed
	}
	if f.BNotation != "" {
		parsed, err := format.ParseBNotation(string(f.BNotation))
		if err != nil {
			return out, err
		}
		out.BNotation = parsed
	}
	return out, nil
}

func internalMeta(m MetaInformation) meta.Information {
	return meta.Information{
		Title:     m.Title,
		Subtitle:  m.Subtitle,
		Artist:    m.Artist,
		Composer:  m.Composer,
		Lyricist:  m.Lyricist,
		Copyright: m.Copyright,
		Album:     m.Album,
		Year:      m.Year,
		Key:       m.Key,
		Time:      m.Time,
		Tempo:     m.Tempo,
		Duration:  m.Duration,
		Capo:      m.Capo,
	}
}
