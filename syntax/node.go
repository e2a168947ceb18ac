// Package syntax parses INI text into a tree of documents, sections,
// key-value pairs and words.
//
// The tree is deliberately small. A [Document] holds bare [KeyValuePair]
// entries that appear before the first header, followed by [Section] nodes.
// A Section's children are the [Word] tokens of its header followed by its
// pairs. Every pair has exactly two words: the key and the (possibly empty)
// value.
//
//	name=example
//	[My App]
//	port=8080
//
// Comments (lines starting with ; or #) are not part of the tree; they are
// collected in [Document.Comments] so that [Fprint] can reproduce them.
package syntax

import (
	"fmt"
	"strings"
)

// Pos is a position in the source text. Line and Col are 1-based,
// Col counts bytes.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

// IsValid reports whether the position refers to a location in the source.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Advance returns the position n bytes further along the same line.
func (p Pos) Advance(n int) Pos {
	return Pos{Offset: p.Offset + n, Line: p.Line, Col: p.Col + n}
}

// Node is implemented by *Document, *Section, *KeyValuePair and *Word.
type Node interface {
	Pos() Pos
	End() Pos
	node()
}

// Document is the root of a parsed INI file.
type Document struct {
	Source   string
	Children []Node // *KeyValuePair or *Section, in source order
	Comments []*Comment
}

// Section is a [header] followed by its key-value pairs.
type Section struct {
	Lbrack   Pos
	Rbrack   Pos
	Children []Node // header *Word run, then *KeyValuePair
}

// KeyValuePair is a single key=value line.
type KeyValuePair struct {
	Key   *Word
	Value *Word
}

// Word is a run of text: a header word, a key or a value.
type Word struct {
	Text     string
	ValuePos Pos
}

// Comment is a full-line comment, including its leading ; or #.
type Comment struct {
	Text     string
	ValuePos Pos
}

func (*Document) node()     {}
func (*Section) node()      {}
func (*KeyValuePair) node() {}
func (*Word) node()         {}

func (d *Document) Pos() Pos { return Pos{Line: 1, Col: 1} }

func (d *Document) End() Pos {
	if len(d.Children) == 0 {
		return d.Pos()
	}
	return d.Children[len(d.Children)-1].End()
}

func (s *Section) Pos() Pos { return s.Lbrack }

func (s *Section) End() Pos {
	if pairs := s.Pairs(); len(pairs) > 0 {
		return pairs[len(pairs)-1].End()
	}
	return s.Rbrack.Advance(1)
}

// Header returns the words between the brackets.
func (s *Section) Header() []*Word {
	words := []*Word{}
	for _, n := range s.Children {
		w, ok := n.(*Word)
		if !ok {
			break
		}
		words = append(words, w)
	}
	return words
}

// Pairs returns the children that follow the header words.
func (s *Section) Pairs() []Node {
	for i, n := range s.Children {
		if _, ok := n.(*Word); !ok {
			return s.Children[i:]
		}
	}
	return nil
}

// Name is the header words concatenated without a separator, so both
// [MyApp] and [My App] are named "MyApp". Sections are matched by Name.
func (s *Section) Name() string {
	var b strings.Builder
	for _, w := range s.Header() {
		b.WriteString(w.Text)
	}
	return b.String()
}

// Title is the header words joined by single spaces, as they would be
// printed.
func (s *Section) Title() string {
	words := []string{}
	for _, w := range s.Header() {
		words = append(words, w.Text)
	}
	return strings.Join(words, " ")
}

func (p *KeyValuePair) Pos() Pos {
	if p.Key != nil {
		return p.Key.Pos()
	}
	if p.Value != nil {
		return p.Value.Pos()
	}
	return Pos{}
}

func (p *KeyValuePair) End() Pos {
	if p.Value != nil {
		return p.Value.End()
	}
	if p.Key != nil {
		return p.Key.End()
	}
	return Pos{}
}

// Children returns the key and value words that are present.
func (p *KeyValuePair) Children() []*Word {
	words := make([]*Word, 0, 2)
	if p.Key != nil {
		words = append(words, p.Key)
	}
	if p.Value != nil {
		words = append(words, p.Value)
	}
	return words
}

func (w *Word) Pos() Pos { return w.ValuePos }
func (w *Word) End() Pos { return w.ValuePos.Advance(len(w.Text)) }

func (c *Comment) Pos() Pos { return c.ValuePos }
func (c *Comment) End() Pos { return c.ValuePos.Advance(len(c.Text)) }
