package converter

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"chordr/internal/chord"
	"chordr/internal/format"
	"chordr/internal/meta"
	"chordr/internal/parser"
)

// HTML renders the document as a tagged markup tree for on-screen display.
// Chords sit in a two-row column above the lyrics they decorate so that a
// monospace layout keeps them visually aligned.
type HTML struct{}

func (c HTML) Convert(doc *parser.Node, _ meta.Information, formatting format.Formatting) (string, error) {
	root, err := c.buildNode(doc, formatting)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := root.Render(&b); err != nil {
		return "", fmt.Errorf("render markup: %w", err)
	}
	return b.String(), nil
}

func (c HTML) buildNode(n *parser.Node, formatting format.Formatting) (g.Node, error) {
	switch n.Kind {
	case parser.NodeDocument:
		children, err := c.buildChildren(n, formatting)
		if err != nil {
			return nil, err
		}
		return h.Div(append([]g.Node{h.ID("chordr-song")}, children...)...), nil
	case parser.NodeSection:
		return c.buildSection(n, formatting)
	case parser.NodeChordTextPair:
		return c.buildColumn(c.buildChord(n.Chord, formatting), h.Span(g.Text(n.Token.Text))), nil
	case parser.NodeChordStandalone:
		return c.buildColumn(c.buildChord(n.Chord, formatting), nil), nil
	case parser.NodeText:
		return c.buildColumn(nil, h.Span(g.Text(n.Token.Text))), nil
	case parser.NodeHeadline:
		return g.El(fmt.Sprintf("h%d", n.Token.Level), g.Text(n.Token.Text)), nil
	case parser.NodeQuote:
		return h.BlockQuote(g.Text(n.Token.Text)), nil
	case parser.NodeMeta:
		return g.Group([]g.Node{
			h.Span(h.Class("meta-keyword"), g.Text(string(n.Entry.Keyword)+":")),
			g.Text(" "),
			h.Span(h.Class("meta-value"), g.Text(n.Entry.Content)),
		}), nil
	case parser.NodeNewline:
		// a structural separator between lines, not a break in running text
		return g.Group([]g.Node{h.Hr(), g.Text("\n")}), nil
	default:
		return nil, nodeError(n, "in a markup document")
	}
}

func (c HTML) buildSection(n *parser.Node, formatting format.Formatting) (g.Node, error) {
	var nodes []g.Node
	if class := n.SectionType.String(); class != "" {
		nodes = append(nodes, h.Class(class))
	}
	if n.Head != nil {
		head, err := c.buildNode(n.Head, formatting)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, head)
	}
	children, err := c.buildChildren(n, formatting)
	if err != nil {
		return nil, err
	}
	return g.El("section", append(nodes, children...)...), nil
}

func (c HTML) buildChildren(n *parser.Node, formatting format.Formatting) ([]g.Node, error) {
	out := make([]g.Node, 0, len(n.Children))
	for _, child := range n.Children {
		node, err := c.buildNode(child, formatting)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func (c HTML) buildChord(ch chord.Chord, formatting format.Formatting) g.Node {
	text := ch.String(formatting)
	return h.Span(
		h.Class("chordr-chord"),
		g.Attr("data-chord", text),
		g.Text(text),
	)
}

// buildColumn lays out one chord row above one text row. An absent row gets
// a non-breaking blank so column widths stay visually aligned.
func (c HTML) buildColumn(chordRow, textRow g.Node) g.Node {
	if chordRow == nil {
		chordRow = g.Raw("&nbsp;")
	}
	if textRow == nil {
		textRow = g.Raw("&nbsp;")
	}
	return h.Div(
		h.Class("col"),
		h.Div(h.Class("chord-row"), chordRow),
		h.Div(h.Class("text-row"), textRow),
	)
}
