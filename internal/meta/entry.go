package meta

import (
	"strings"
)

// Entry is one inline 'Keyword: value' metadata line.
type Entry struct {
	Keyword Keyword
	Content string
}

// TryParse attempts to read a literal line as a metadata entry. Only lines
// whose keyword belongs to the recognized set match; everything else stays
// plain text.
func TryParse(line string) (Entry, bool) {
	idx := strings.IndexByte(line, ':')
	if idx <= 0 {
		return Entry{}, false
	}
	keyword, ok := matchKeyword(line[:idx])
	if !ok {
		return Entry{}, false
	}
	return Entry{
		Keyword: keyword,
		Content: strings.TrimSpace(line[idx+1:]),
	}, true
}

func (e Entry) String() string {
	return string(e.Keyword) + ": " + e.Content
}
