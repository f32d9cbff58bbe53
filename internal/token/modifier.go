package token

// Modifier classifies a headline as a chorus, a bridge, or neither.
type Modifier uint8

const (
	ModNone Modifier = iota
	ModChorus
	ModBridge
)

// String renders the modifier the way chorddown spells it after the '#' run.
func (m Modifier) String() string {
	switch m {
	case ModChorus:
		return "!"
	case ModBridge:
		return "$"
	}
	return ""
}
