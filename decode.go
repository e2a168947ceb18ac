package ini

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ConradIrwin/ini-go/syntax"
)

// Unmarshaler is implemented by types that read themselves from a
// [Deserializer].
type Unmarshaler interface {
	UnmarshalINI(d *Deserializer) error
}

// Deserializer reads values from a position in a parsed document.
//
// At the top level it is positioned over the document: the bare key-value
// pairs followed by the sections. A Deserializer handed to a map callback
// is positioned over a single value word.
type Deserializer struct {
	cur  cursor
	opts *decodeOptions
	key  string
	top  bool
}

func describe(n syntax.Node) string {
	switch n := n.(type) {
	case *syntax.Word:
		return fmt.Sprintf("value %q", n.Text)
	case *syntax.KeyValuePair:
		return "key-value pair"
	case *syntax.Section:
		return "section [" + n.Title() + "]"
	default:
		return "end of input"
	}
}

func (d *Deserializer) fail(kind error, pos syntax.Pos, msg string) *Error {
	return &Error{Kind: kind, Pos: pos, Key: d.key, Err: errors.New(msg)}
}

// DecodeScalar returns the text of the value under the cursor.
func (d *Deserializer) DecodeScalar() (string, error) {
	switch n := d.cur.first().(type) {
	case *syntax.Word:
		d.cur.advance(1)
		return n.Text, nil
	case nil:
		return "", d.fail(ErrUnsupportedType, syntax.Pos{}, "expected a value, found end of input")
	default:
		return "", d.fail(ErrUnsupportedType, n.Pos(), "expected a value, found "+describe(n))
	}
}

// DecodeMap calls fn for each key-value pair in the run of pairs under the
// cursor, in document order. Repeated keys are passed to fn each time they
// occur.
func (d *Deserializer) DecodeMap(fn func(key string, value *Deserializer) error) error {
	if w, ok := d.cur.first().(*syntax.Word); ok {
		return d.fail(ErrUnsupportedType, w.Pos(), "unsupported: nested map shape")
	}

	run := d.cur.takeWhile(isPair)
	if len(run) > 0 {
		d.opts.debug("decoding pair run", "pairs", len(run), "line", run[0].Pos().Line)
	}
	words := flatten(run)
	for i := 0; i < len(words); i += 2 {
		k := words[i]
		if i+1 == len(words) {
			return &Error{Kind: ErrArity, Pos: k.Pos(), Key: k.Text}
		}
		value := &Deserializer{
			cur:  cursor{nodes: []syntax.Node{words[i+1]}},
			opts: d.opts,
			key:  k.Text,
		}
		if err := fn(k.Text, value); err != nil {
			return annotate(err, k.Pos(), k.Text)
		}
	}

	if d.top && !d.opts.allowTrailing && !d.cur.empty() {
		n := d.cur.first()
		return &Error{Kind: ErrTrailingInput, Pos: n.Pos(), Err: fmt.Errorf("unexpected %s after key-value pairs", describe(n))}
	}
	return nil
}

// DecodeRecord finds the first section named name and calls fn for each of
// its key-value pairs. Header words are compared with whitespace removed, so
// [My App] is named "MyApp".
//
// fields lists the keys the record expects. If no section matches but a
// section is named after one of the fields, the document describes a record
// nested inside another, which INI cannot express.
func (d *Deserializer) DecodeRecord(name string, fields []string, fn func(key string, value *Deserializer) error) error {
	if w, ok := d.cur.first().(*syntax.Word); ok {
		return d.fail(ErrUnsupportedType, w.Pos(), "unsupported: nested record shape")
	}

	name = strings.Join(strings.Fields(name), "")
	section := findSection(d.cur.nodes, name)
	if section == nil {
		for _, n := range d.cur.nodes {
			if s, ok := n.(*syntax.Section); ok && slices.Contains(fields, s.Name()) {
				return &Error{Kind: ErrUnsupportedType, Pos: s.Pos(), Key: name, Err: errors.New("unsupported: nested record shape")}
			}
		}
		return &Error{Kind: ErrSectionNotFound, Err: fmt.Errorf("[%s]", name)}
	}

	d.opts.debug("resolved section", "section", name, "line", section.Pos().Line)
	sub := &Deserializer{cur: cursor{nodes: section.Pairs()}, opts: d.opts}
	return sub.DecodeMap(fn)
}

// DecodeAny decodes a value word as a string, and anything else as a *Map.
func (d *Deserializer) DecodeAny() (any, error) {
	if w, ok := d.cur.first().(*syntax.Word); ok {
		d.cur.advance(1)
		return w.Text, nil
	}
	m := &Map{}
	if err := m.UnmarshalINI(d); err != nil {
		return nil, err
	}
	return m, nil
}

func parse(data []byte) (*syntax.Document, error) {
	doc, err := syntax.Parse(string(data))
	if err != nil {
		var se *syntax.Error
		if !errors.As(err, &se) {
			return nil, &Error{Kind: ErrSyntax, Err: err}
		}
		kind := ErrSyntax
		if errors.Is(err, syntax.ErrTrailing) {
			kind = ErrTrailingInput
		}
		return nil, &Error{Kind: kind, Pos: se.Pos, Err: se}
	}
	return doc, nil
}

func decode(doc *syntax.Document, v any, opts *decodeOptions) error {
	d := &Deserializer{cur: cursor{nodes: doc.Children}, opts: opts, top: true}
	return d.Decode(v)
}

// Decoder reads INI documents from an input stream.
type Decoder struct {
	r    io.Reader
	doc  *syntax.Document
	err  error
	opts *decodeOptions
}

// NewDecoder returns a decoder that reads from r.
func NewDecoder(r io.Reader, opts ...DecodeOption) *Decoder {
	return &Decoder{r: r, opts: newDecodeOptions(opts)}
}

// Decode reads the whole input on first use and decodes it into v. Later
// calls decode from the same document, so a file with several sections can
// be read into several structs. If reading or parsing fails, every call
// returns that error.
func (dec *Decoder) Decode(v any) error {
	if dec.err != nil {
		return dec.err
	}
	if dec.doc == nil {
		data, err := io.ReadAll(dec.r)
		if err != nil {
			dec.err = &Error{Kind: ErrMessage, Err: err}
			return dec.err
		}
		if dec.doc, dec.err = parse(data); dec.err != nil {
			return dec.err
		}
	}
	return decode(dec.doc, v, dec.opts)
}

// Unmarshal parses the INI document in data into v, which must be a non-nil
// pointer.
//
// A struct type is read from the [Name] section matching its Go type name,
// or the result of its SectionName method. For struct fields, Unmarshal
// first looks for the name in an `ini:"name"` tag, then in a `json:"name"`
// tag, and finally uses the snake_case version of the field name or the
// field name itself. Keys without a matching field are ignored unless
// [DisallowUnknownFields] is given; fields without a key keep their value.
//
// Maps and anonymous structs are read from the key-value pairs before the
// first section. When decoding into an interface, Unmarshal stores a *Map
// of strings. A pointer field is set to nil when its value is empty.
//
// If a key repeats, the last value wins.
func Unmarshal(data []byte, v any, opts ...DecodeOption) error {
	doc, err := parse(data)
	if err != nil {
		return err
	}
	return decode(doc, v, newDecodeOptions(opts))
}
