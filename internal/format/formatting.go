package format

// Formatting bundles every knob a converter call is parameterized by.
// It is passed by value and never mutated during a conversion.
type Formatting struct {
	Format    Format
	BNotation BNotation
}

// WithFormat returns the default formatting for the given target format.
func WithFormat(f Format) Formatting {
	return Formatting{Format: f, BNotation: NotationB}
}
