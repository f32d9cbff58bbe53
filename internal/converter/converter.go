// Package converter renders a parsed document tree into one of the output
// formats. Converters are pure: the same tree, metadata and formatting
// always produce the same string.
package converter

import (
	"fmt"

	"chordr/internal/format"
	"chordr/internal/meta"
	"chordr/internal/parser"
)

// Converter renders a document tree. Implementations fail closed: on error
// no partial output is returned.
type Converter interface {
	Convert(doc *parser.Node, info meta.Information, formatting format.Formatting) (string, error)
}

// For returns the converter for the requested target format.
func For(f format.Format) (Converter, error) {
	switch f {
	case format.Chorddown:
		return Chorddown{}, nil
	case format.HTML:
		return HTML{}, nil
	default:
		return nil, fmt.Errorf("no converter for format %q", f)
	}
}

// nodeError builds the defensive error for a node kind that can never
// legally appear in the given position.
func nodeError(n *parser.Node, where string) error {
	return fmt.Errorf("cannot render %s node %s", n.Kind, where)
}
