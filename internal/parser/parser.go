// Package parser builds the document tree from the tokenizer's output. The
// parser is total: any token sequence the tokenizer can produce yields a
// tree, never an error.
package parser

import (
	"chordr/internal/chord"
	"chordr/internal/meta"
	"chordr/internal/token"
)

// Result carries the tree plus the metadata discovered inside it (the title
// from the first level-1 headline, fields from inline metadata lines).
type Result struct {
	Document *Node
	Meta     meta.Information
}

// Parse walks the tokens sequentially. Every headline opens a new section;
// loose tokens before the first headline live in an implicit headless
// section. A chord token directly followed by lyric text becomes a
// chord/text pair; a chord with nothing to decorate stands alone.
func Parse(tokens []token.Token) Result {
	p := &treeParser{doc: NewDocument()}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case token.Headline:
			p.openSection(tok)
			i++
		case token.Chord:
			c := chord.Parse(tok.Text)
			if i+1 < len(tokens) && tokens[i+1].IsTextBearing() {
				p.push(NewChordTextPair(c, tokens[i+1]))
				i += 2
			} else {
				p.push(NewChordStandalone(c))
				i++
			}
		case token.Literal:
			p.push(NewText(tok))
			i++
		case token.Quote:
			p.push(NewQuote(tok))
			i++
		case token.Meta:
			entry := meta.Entry{Keyword: meta.Keyword(tok.Keyword), Content: tok.Text}
			p.info.Apply(entry)
			p.push(NewMeta(entry))
			i++
		case token.Newline:
			p.push(NewNewline())
			i++
		default:
			// tokens the tokenizer cannot produce are skipped, not fatal
			i++
		}
	}

	return Result{Document: p.doc, Meta: p.info}
}

type treeParser struct {
	doc  *Node
	cur  *Node
	info meta.Information
}

func (p *treeParser) openSection(tok token.Token) {
	sec := NewSection(NewHeadline(tok), sectionTypeFor(tok.Modifier))
	p.doc.Children = append(p.doc.Children, sec)
	p.cur = sec
	if tok.Level == 1 && p.info.Title == "" {
		p.info.Title = tok.Text
	}
}

// push appends a node to the open section, creating the implicit headless
// section for content before the first headline.
func (p *treeParser) push(n *Node) {
	if p.cur == nil {
		p.cur = NewSection(nil, SectionUnknown)
		p.doc.Children = append(p.doc.Children, p.cur)
	}
	p.cur.Children = append(p.cur.Children, n)
}
