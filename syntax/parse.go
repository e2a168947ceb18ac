package syntax

import (
	"errors"
	"fmt"
)

// ErrTrailing is wrapped by an [*Error] reported for text after the closing
// bracket of a section header.
var ErrTrailing = errors.New("trailing characters")

// Error is a syntax error at a position in the source.
type Error struct {
	Pos Pos
	Msg string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse parses an INI document. It stops at the first error, which is
// always an [*Error].
func Parse(src string) (*Document, error) {
	doc := &Document{Source: src}
	var (
		section *Section
		pair    *KeyValuePair
	)

	for tok := range Tokens(src) {
		switch tok.Kind {
		case CommentToken:
			doc.Comments = append(doc.Comments, &Comment{Text: tok.Content, ValuePos: tok.Pos})

		case SectionStart:
			section = &Section{Lbrack: tok.Pos}
			doc.Children = append(doc.Children, section)

		case HeaderWord:
			section.Children = append(section.Children, &Word{Text: tok.Content, ValuePos: tok.Pos})

		case SectionEnd:
			section.Rbrack = tok.Pos

		case Key:
			pair = &KeyValuePair{Key: &Word{Text: tok.Content, ValuePos: tok.Pos}}
			if section != nil {
				section.Children = append(section.Children, pair)
			} else {
				doc.Children = append(doc.Children, pair)
			}

		case Value:
			pair.Value = &Word{Text: tok.Content, ValuePos: tok.Pos}

		case Trailing:
			return nil, &Error{
				Pos: tok.Pos,
				Msg: fmt.Sprintf("unexpected %q after section header", tok.Content),
				Err: ErrTrailing,
			}

		case ErrorToken:
			return nil, &Error{Pos: tok.Pos, Msg: tok.Content}

		default:
			panic(fmt.Errorf("%v: missing case %#v", tok.Pos, tok))
		}
	}
	return doc, nil
}

// Sections returns the sections of the document in source order.
func (d *Document) Sections() []*Section {
	sections := []*Section{}
	for _, n := range d.Children {
		if s, ok := n.(*Section); ok {
			sections = append(sections, s)
		}
	}
	return sections
}

// Pairs returns the bare key-value pairs that precede the first section.
func (d *Document) Pairs() []*KeyValuePair {
	pairs := []*KeyValuePair{}
	for _, n := range d.Children {
		p, ok := n.(*KeyValuePair)
		if !ok {
			break
		}
		pairs = append(pairs, p)
	}
	return pairs
}
