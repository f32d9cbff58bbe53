package catalog

// Status is the build state of one file, reported to the progress UI.
type Status uint8

const (
	StatusQueued Status = iota
	StatusParsing
	StatusCached
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusParsing:
		return "parsing"
	case StatusCached:
		return "cached"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	}
	return ""
}

// Event is one progress update during a catalog build.
type Event struct {
	File   string
	Status Status
}
