package converter

import (
	"strings"

	"chordr/internal/format"
	"chordr/internal/meta"
	"chordr/internal/parser"
)

// Chorddown re-emits a document as normalized chorddown text: a title line,
// a fixed-order metadata block, then the body. A post-pass collapses runs of
// blank lines and pins exactly one trailing newline, which makes the
// converter idempotent on its own output.
type Chorddown struct{}

func (c Chorddown) Convert(doc *parser.Node, info meta.Information, formatting format.Formatting) (string, error) {
	body, err := c.buildNode(doc, formatting)
	if err != nil {
		return "", err
	}
	return cleanupOutput(c.buildTitle(info) + c.buildMetaBlock(info) + body), nil
}

func (c Chorddown) buildTitle(info meta.Information) string {
	if info.Title == "" {
		return ""
	}
	return "# " + info.Title + "\n"
}

// buildMetaBlock emits one 'Keyword: value' line per present field, in the
// canonical keyword order.
func (c Chorddown) buildMetaBlock(info meta.Information) string {
	var lines []string
	for _, kw := range meta.Keywords {
		if v := info.Get(kw); v != "" {
			lines = append(lines, string(kw)+": "+v)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (c Chorddown) buildNode(n *parser.Node, formatting format.Formatting) (string, error) {
	switch n.Kind {
	case parser.NodeDocument:
		return c.buildChildren(n, formatting)
	case parser.NodeSection:
		inner, err := c.buildChildren(n, formatting)
		if err != nil {
			return "", err
		}
		if n.Head != nil {
			head, err := c.buildNode(n.Head, formatting)
			if err != nil {
				return "", err
			}
			inner = head + inner
		}
		return inner + "\n", nil
	case parser.NodeChordTextPair:
		return "[" + n.Chord.String(formatting) + "]" + n.Token.Text, nil
	case parser.NodeChordStandalone:
		return "[" + n.Chord.String(formatting) + "]", nil
	case parser.NodeText:
		return n.Token.Text, nil
	case parser.NodeHeadline:
		// the level-1 headline was already used as the title line
		if n.Token.Level == 1 {
			return "", nil
		}
		return strings.Repeat("#", int(n.Token.Level)) + n.Token.Modifier.String() + " " + n.Token.Text, nil
	case parser.NodeQuote:
		return "> " + n.Token.Text + "\n", nil
	case parser.NodeMeta:
		// metadata was already emitted in the block above the body
		return "", nil
	case parser.NodeNewline:
		return "\n", nil
	default:
		return "", nodeError(n, "in a chorddown document")
	}
}

func (c Chorddown) buildChildren(n *parser.Node, formatting format.Formatting) (string, error) {
	var b strings.Builder
	for _, child := range n.Children {
		s, err := c.buildNode(child, formatting)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// cleanupOutput collapses any run of three or more newlines down to two,
// trims trailing whitespace and appends exactly one final newline.
func cleanupOutput(output string) string {
	for strings.Contains(output, "\n\n\n") {
		output = strings.ReplaceAll(output, "\n\n\n", "\n\n")
	}
	return strings.TrimRight(output, " \t\n") + "\n"
}
