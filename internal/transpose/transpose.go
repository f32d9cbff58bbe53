// Package transpose shifts every chord in a parsed document by a number of
// semitones. It runs before conversion so converters never transpose.
package transpose

import (
	"chordr/internal/parser"
)

// Tree transposes the document in place. Zero semitones is the identity.
func Tree(n *parser.Node, semitones int) {
	if n == nil || semitones == 0 {
		return
	}
	walk(n, semitones)
}

func walk(n *parser.Node, semitones int) {
	if n == nil {
		return
	}
	switch n.Kind {
	case parser.NodeChordTextPair, parser.NodeChordStandalone:
		n.Chord = n.Chord.Transposed(semitones)
	}
	walk(n.Head, semitones)
	for _, child := range n.Children {
		walk(child, semitones)
	}
}
