package parser

import (
	"chordr/internal/chord"
	"chordr/internal/meta"
	"chordr/internal/token"
)

// SectionType classifies a section by its headline modifier.
type SectionType uint8

const (
	SectionUnknown SectionType = iota
	SectionChorus
	SectionBridge
)

func (s SectionType) String() string {
	switch s {
	case SectionChorus:
		return "chorus"
	case SectionBridge:
		return "bridge"
	}
	return ""
}

func sectionTypeFor(m token.Modifier) SectionType {
	switch m {
	case token.ModChorus:
		return SectionChorus
	case token.ModBridge:
		return SectionBridge
	}
	return SectionUnknown
}

// NodeKind tags the variant of a document tree node.
type NodeKind uint8

const (
	// NodeDocument is the root; its children are sections only.
	NodeDocument NodeKind = iota
	// NodeSection is one headline-delimited part of the song.
	NodeSection
	// NodeChordTextPair is a chord directly decorating a run of lyrics.
	NodeChordTextPair
	// NodeChordStandalone is a chord with no lyrics attached.
	NodeChordStandalone
	// NodeText is a bare run of lyrics.
	NodeText
	// NodeHeadline is a section head.
	NodeHeadline
	// NodeQuote is a quote/instruction line.
	NodeQuote
	// NodeMeta is an inline metadata line, kept in place.
	NodeMeta
	// NodeNewline is a logical line break.
	NodeNewline
)

func (k NodeKind) String() string {
	switch k {
	case NodeDocument:
		return "Document"
	case NodeSection:
		return "Section"
	case NodeChordTextPair:
		return "ChordTextPair"
	case NodeChordStandalone:
		return "ChordStandalone"
	case NodeText:
		return "Text"
	case NodeHeadline:
		return "Headline"
	case NodeQuote:
		return "Quote"
	case NodeMeta:
		return "Meta"
	case NodeNewline:
		return "Newline"
	}
	return "Invalid"
}

// Node is one tagged node of the document tree. Each node owns its children;
// the tree is acyclic by construction.
type Node struct {
	Kind        NodeKind
	Children    []*Node     // Document, Section
	Head        *Node       // Section only; nil for the implicit headless section
	SectionType SectionType // Section only
	Chord       chord.Chord // ChordTextPair, ChordStandalone
	Token       token.Token // Text, Headline, Quote, and the text of a pair
	Entry       meta.Entry  // Meta only
}

// NewDocument builds a document root over the given sections.
func NewDocument(children ...*Node) *Node {
	return &Node{Kind: NodeDocument, Children: children}
}

// NewSection builds a section with an optional head node.
func NewSection(head *Node, sectionType SectionType, children ...*Node) *Node {
	return &Node{Kind: NodeSection, Head: head, SectionType: sectionType, Children: children}
}

// NewHeadline wraps a headline token.
func NewHeadline(tok token.Token) *Node {
	return &Node{Kind: NodeHeadline, Token: tok}
}

// NewChordTextPair pairs a chord with the lyrics it decorates.
func NewChordTextPair(c chord.Chord, text token.Token) *Node {
	return &Node{Kind: NodeChordTextPair, Chord: c, Token: text}
}

// NewChordStandalone wraps a chord with no lyrics.
func NewChordStandalone(c chord.Chord) *Node {
	return &Node{Kind: NodeChordStandalone, Chord: c}
}

// NewText wraps a literal token.
func NewText(tok token.Token) *Node {
	return &Node{Kind: NodeText, Token: tok}
}

// NewQuote wraps a quote token.
func NewQuote(tok token.Token) *Node {
	return &Node{Kind: NodeQuote, Token: tok}
}

// NewMeta wraps an inline metadata entry.
func NewMeta(entry meta.Entry) *Node {
	return &Node{Kind: NodeMeta, Entry: entry}
}

// NewNewline builds a line-break node.
func NewNewline() *Node {
	return &Node{Kind: NodeNewline}
}
