// Package catalog builds the song catalog the web client consumes: one JSON
// document with every song's metadata and normalized chorddown source.
package catalog

import (
	"encoding/json"
	"io"
)

// Catalog is the serialized song collection. Revision changes whenever any
// source file changes, so clients can cache by it.
type Catalog struct {
	Revision string `json:"revision"`
	Songs    []Song `json:"songs"`
}

// WriteJSON serializes the catalog with stable indentation.
func (c *Catalog) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	return len(c.Songs)
}
