package syntax

import (
	"io"
	"math"
	"strings"
)

type printer struct {
	b        strings.Builder
	colors   *Colors
	comments []*Comment
}

// Fprint writes doc to w in canonical form: one key=value per line with no
// padding around the =, headers written as [word word], a blank line before
// each section, and comments kept in source order.
func Fprint(w io.Writer, doc *Document, colors *Colors) error {
	p := &printer{colors: colors.orPlain(), comments: doc.Comments}
	for _, n := range doc.Children {
		switch n := n.(type) {
		case *KeyValuePair:
			p.flushComments(n.Pos())
			p.pair(n)
		case *Section:
			if p.b.Len() > 0 {
				p.b.WriteString("\n")
			}
			p.flushComments(n.Pos())
			p.header(n)
			for _, c := range n.Pairs() {
				p.flushComments(c.Pos())
				p.pair(c.(*KeyValuePair))
			}
		}
	}
	p.flushComments(Pos{Offset: math.MaxInt})
	_, err := io.WriteString(w, p.b.String())
	return err
}

// Sprint is like [Fprint] without colors, returning a string.
func Sprint(doc *Document) string {
	var b strings.Builder
	Fprint(&b, doc, nil)
	return b.String()
}

func (p *printer) flushComments(before Pos) {
	for len(p.comments) > 0 && p.comments[0].ValuePos.Offset < before.Offset {
		p.b.WriteString(p.colors.Comment(p.comments[0].Text))
		p.b.WriteString("\n")
		p.comments = p.comments[1:]
	}
}

func (p *printer) header(s *Section) {
	p.b.WriteString(p.colors.Separator("["))
	p.b.WriteString(p.colors.Header(s.Title()))
	p.b.WriteString(p.colors.Separator("]"))
	p.b.WriteString("\n")
}

func (p *printer) pair(kv *KeyValuePair) {
	if kv.Key != nil {
		p.b.WriteString(p.colors.Key(kv.Key.Text))
	}
	p.b.WriteString(p.colors.Separator("="))
	if kv.Value != nil && kv.Value.Text != "" {
		p.b.WriteString(p.colors.Value(kv.Value.Text))
	}
	p.b.WriteString("\n")
}
