package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"chordr/internal/source"
	"chordr/internal/token"
)

// TokenOutput is the JSON shape of a dumped token.
type TokenOutput struct {
	Kind     string      `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Level    uint8       `json:"level,omitempty"`
	Modifier string      `json:"modifier,omitempty"`
	Keyword  string      `json:"keyword,omitempty"`
	Span     source.Span `json:"span"`
}

// FormatTokensPretty writes tokens in a human-readable table.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-9s", i+1, tok.Kind.String())

		if tok.Kind == token.Headline {
			fmt.Fprintf(w, " h%d", tok.Level)
			if tok.Modifier != token.ModNone {
				fmt.Fprintf(w, "%s", tok.Modifier)
			}
		}
		if tok.Keyword != "" {
			fmt.Fprintf(w, " %s:", tok.Keyword)
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", runewidth.Truncate(tok.Text, 48, "…"))
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
	}
	return nil
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		if tok.Kind == token.Headline {
			out.Level = tok.Level
			out.Modifier = tok.Modifier.String()
		}
		if tok.Kind == token.Meta {
			out.Keyword = tok.Keyword
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
