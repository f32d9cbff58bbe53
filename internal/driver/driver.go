// Package driver wires the pipeline phases together: load, scan, tokenize,
// parse, transpose, convert. It is the layer the CLI and the public facade
// talk to; diagnostics are returned, never printed, from here.
package driver

import (
	"chordr/internal/converter"
	"chordr/internal/diag"
	"chordr/internal/format"
	"chordr/internal/meta"
	"chordr/internal/parser"
	"chordr/internal/source"
	"chordr/internal/token"
	"chordr/internal/tokenizer"
	"chordr/internal/transpose"
)

// DefaultMaxDiagnostics bounds the Bag when the caller does not care.
const DefaultMaxDiagnostics = 100

// Options configures one conversion.
type Options struct {
	Formatting format.Formatting
	// Meta is the externally supplied song metadata. Its non-empty fields
	// win over values discovered inline.
	Meta meta.Information
	// Semitones transposes every chord before conversion. Zero is identity.
	Semitones int
	// MaxDiagnostics caps the diagnostic bag (0 = DefaultMaxDiagnostics).
	MaxDiagnostics int
}

// Result is the outcome of one pipeline invocation.
type Result struct {
	Output  string
	Meta    meta.Information // merged metadata the converter ran with
	Bag     *diag.Bag
	FileSet *source.FileSet
}

// TokenizeResult is the outcome of a tokenize-only run.
type TokenizeResult struct {
	Tokens  []token.Token
	Bag     *diag.Bag
	FileSet *source.FileSet
}

// ConvertFile loads a chorddown file and converts it.
func ConvertFile(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return convert(fs, id, opts)
}

// ConvertText converts an in-memory chorddown buffer. The name labels the
// virtual file in diagnostics.
func ConvertText(name string, text []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, text)
	return convert(fs, id, opts)
}

// Tokenize runs scanner and tokenizer only, for debugging token streams.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(capOrDefault(maxDiagnostics))
	tokens := tokenizer.Tokenize(fs.Get(id), tokenizer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	bag.Sort()
	return &TokenizeResult{Tokens: tokens, Bag: bag, FileSet: fs}, nil
}

func convert(fs *source.FileSet, id source.FileID, opts Options) (*Result, error) {
	bag := diag.NewBag(capOrDefault(opts.MaxDiagnostics))
	tokens := tokenizer.Tokenize(fs.Get(id), tokenizer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	parsed := parser.Parse(tokens)
	transpose.Tree(parsed.Document, opts.Semitones)

	merged := meta.Merge(parsed.Meta, opts.Meta)
	conv, err := converter.For(opts.Formatting.Format)
	if err != nil {
		return nil, err
	}
	output, err := conv.Convert(parsed.Document, merged, opts.Formatting)
	if err != nil {
		return nil, err
	}

	bag.Sort()
	return &Result{
		Output:  output,
		Meta:    merged,
		Bag:     bag,
		FileSet: fs,
	}, nil
}

func capOrDefault(maxDiagnostics int) int {
	if maxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return maxDiagnostics
}
