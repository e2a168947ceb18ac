package ini

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Marshaler is implemented by types that write themselves through a
// [Serializer].
type Marshaler interface {
	MarshalINI(s *Serializer) error
}

// output accumulates INI text. prev remembers the last byte flushed so that
// line breaks are placed correctly across several Encode calls.
type output struct {
	buf  []byte
	prev byte
}

func (o *output) write(s string) {
	o.buf = append(o.buf, s...)
}

func (o *output) atLineStart() bool {
	if len(o.buf) == 0 {
		return o.prev == 0 || o.prev == '\n'
	}
	return o.buf[len(o.buf)-1] == '\n'
}

func (o *output) breakLine() {
	if !o.atLineStart() {
		o.write("\n")
	}
}

func (o *output) flush(w io.Writer) error {
	if len(o.buf) == 0 {
		return nil
	}
	o.prev = o.buf[len(o.buf)-1]
	_, err := w.Write(o.buf)
	o.buf = o.buf[:0]
	return err
}

// Serializer receives one value and writes it as INI text.
//
// A Serializer at the top level accepts a map (bare key=value lines) or a
// record (a [Name] section). Inside a map or record it accepts only
// scalars: INI has no way to nest either.
type Serializer struct {
	out    *output
	opts   *encodeOptions
	nested bool
	key    string
}

func (s *Serializer) scalar(text string) error {
	switch {
	case strings.ContainsAny(text, "\r\n"):
		return &Error{Kind: ErrUnsupportedType, Key: s.key, Err: errors.New("value contains a line break")}
	case strings.Trim(text, " \t") != text:
		return &Error{Kind: ErrUnsupportedType, Key: s.key, Err: errors.New("value has leading or trailing blanks")}
	case !utf8.ValidString(text):
		return &Error{Kind: ErrUnsupportedType, Key: s.key, Err: errors.New("value is not valid UTF-8")}
	}
	s.out.write(text)
	return nil
}

// Bool writes true or false.
func (s *Serializer) Bool(b bool) error {
	return s.scalar(strconv.FormatBool(b))
}

// Int writes i in base 10.
func (s *Serializer) Int(i int64) error {
	return s.scalar(strconv.FormatInt(i, 10))
}

// Uint writes u in base 10.
func (s *Serializer) Uint(u uint64) error {
	return s.scalar(strconv.FormatUint(u, 10))
}

// Float writes the shortest decimal that reads back as f, never using
// an exponent. bits is 32 or 64.
func (s *Serializer) Float(f float64, bits int) error {
	return s.scalar(strconv.FormatFloat(f, 'f', -1, bits))
}

// Complex writes c in the form accepted by strconv.ParseComplex.
func (s *Serializer) Complex(c complex128, bits int) error {
	return s.scalar(strconv.FormatComplex(c, 'f', -1, bits))
}

// Text writes t verbatim.
func (s *Serializer) Text(t string) error {
	return s.scalar(t)
}

// None writes an absent value, which is the empty string.
func (s *Serializer) None() error {
	return nil
}

// Some writes a present optional value as v itself.
func (s *Serializer) Some(v any) error {
	return s.Value(v)
}

// Bytes is reserved for binary payloads.
func (s *Serializer) Bytes([]byte) error {
	return &Error{Kind: ErrNotImplemented, Key: s.key, Err: errors.New("binary values")}
}

// Seq always fails: INI has no sequences.
func (s *Serializer) Seq(n int) error {
	return &Error{Kind: ErrUnsupportedType, Key: s.key, Err: errors.New("sequences")}
}

// Variant always fails: INI has no tagged unions.
func (s *Serializer) Variant(name string, index int) error {
	return &Error{Kind: ErrUnsupportedType, Key: s.key, Err: errors.New("variant " + name)}
}

// Map starts a run of key=value lines.
func (s *Serializer) Map() (*MapSerializer, error) {
	if s.nested {
		return nil, &Error{Kind: ErrUnsupportedType, Key: s.key, Err: errors.New("nested map")}
	}
	return &MapSerializer{s: s}, nil
}

// Record starts a [name] section.
func (s *Serializer) Record(name string) (*RecordSerializer, error) {
	if s.nested {
		return nil, &Error{Kind: ErrUnsupportedType, Key: s.key, Err: errors.New("unsupported: nested record shape")}
	}
	if len(strings.Fields(name)) == 0 || strings.ContainsAny(name, "[]\r\n") || !utf8.ValidString(name) {
		return nil, &Error{Kind: ErrUnsupportedType, Err: errors.New("section name " + strconv.Quote(name))}
	}
	s.opts.debug("emitting record", "section", name)
	s.out.breakLine()
	s.out.write("[" + name + "]\n")
	return &RecordSerializer{m: MapSerializer{s: s}}, nil
}

// MapSerializer writes the entries of a map. Call Key and Value
// alternately, or Entry, then End.
type MapSerializer struct {
	s       *Serializer
	entries int
	key     string
}

func validKey(k string) bool {
	if k == "" || strings.ContainsAny(k, "=\r\n") || !utf8.ValidString(k) {
		return false
	}
	switch k[0] {
	case '[', ';', '#', ' ', '\t':
		return false
	}
	return !strings.HasSuffix(k, " ") && !strings.HasSuffix(k, "\t")
}

// Key starts a new line and writes k.
func (m *MapSerializer) Key(k string) error {
	if !validKey(k) {
		return &Error{Kind: ErrUnsupportedType, Err: errors.New("key " + strconv.Quote(k))}
	}
	m.s.out.breakLine()
	m.s.out.write(k)
	m.key = k
	m.entries++
	return nil
}

// Value writes =v after the most recent key.
func (m *MapSerializer) Value(v any) error {
	m.s.out.write("=")
	vs := &Serializer{out: m.s.out, opts: m.s.opts, nested: true, key: m.key}
	return vs.Value(v)
}

// Entry is Key followed by Value.
func (m *MapSerializer) Entry(k string, v any) error {
	if err := m.Key(k); err != nil {
		return err
	}
	return m.Value(v)
}

// End terminates the last line.
func (m *MapSerializer) End() error {
	if m.entries > 0 {
		m.s.out.breakLine()
	}
	return nil
}

// RecordSerializer writes the fields of a record.
type RecordSerializer struct {
	m MapSerializer
}

// Field writes key=v on its own line.
func (r *RecordSerializer) Field(key string, v any) error {
	return r.m.Entry(key, v)
}

// End terminates the section with a single line break.
func (r *RecordSerializer) End() error {
	r.m.s.out.breakLine()
	return nil
}

// Encoder writes INI documents to an output stream.
type Encoder struct {
	w    io.Writer
	out  output
	opts *encodeOptions
}

// NewEncoder returns an encoder that writes to w.
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	return &Encoder{w: w, opts: newEncodeOptions(opts)}
}

// Encode writes v to the stream. Successive records are separated by a
// line break where needed, so several records can share one document.
func (e *Encoder) Encode(v any) error {
	s := &Serializer{out: &e.out, opts: e.opts}
	if err := s.Value(v); err != nil {
		e.out.buf = e.out.buf[:0]
		return err
	}
	return e.out.flush(e.w)
}

// Marshal returns the INI encoding of v.
//
// Structs become a [Name] section named after the Go type (or the result of
// a SectionName method) with one line per field. Maps become bare key=value
// lines sorted by the encoded key text, so integer keys 10 and 2 are written
// as 10 before 2; a [*Map] keeps its own order. Fields and map
// values must be scalars: strings, numbers, booleans, pointers to those, or
// types implementing encoding.TextMarshaler. A nil pointer is written as an
// empty value.
//
// Slices, nested maps and nested structs have no INI representation and
// return an error wrapping [ErrUnsupportedType]. So do strings that would
// not read back unchanged: line breaks, leading or trailing blanks, and
// invalid UTF-8.
func Marshal(v any, opts ...EncodeOption) ([]byte, error) {
	s := &Serializer{out: &output{}, opts: newEncodeOptions(opts)}
	if err := s.Value(v); err != nil {
		return nil, err
	}
	return s.out.buf, nil
}
