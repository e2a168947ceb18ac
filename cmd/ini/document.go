package main

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/ConradIrwin/ini-go"
	"github.com/ConradIrwin/ini-go/syntax"
)

// document is the format-neutral shape shared by every conversion: the
// bare pairs followed by named sections, each an ordered map of strings.
type document struct {
	pairs    *ini.Map
	sections []*section
}

type section struct {
	title string
	pairs *ini.Map
}

func newDocument() *document {
	return &document{pairs: &ini.Map{}}
}

// section returns the section with the given title, adding it if needed.
// Titles are compared the way INI headers are, ignoring whitespace.
func (d *document) section(title string) *section {
	name := strings.Join(strings.Fields(title), "")
	for _, s := range d.sections {
		if strings.Join(strings.Fields(s.title), "") == name {
			return s
		}
	}
	s := &section{title: title, pairs: &ini.Map{}}
	d.sections = append(d.sections, s)
	return s
}

// MarshalINI writes the section as a record headed by its title.
func (s *section) MarshalINI(ser *ini.Serializer) error {
	r, err := ser.Record(s.title)
	if err != nil {
		return err
	}
	for k, v := range s.pairs.All() {
		if err := r.Field(k, v); err != nil {
			return err
		}
	}
	return r.End()
}

func scalarText(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case bool, int, int64, uint64:
		return fmt.Sprint(v), nil
	}
	return "", fmt.Errorf("%w: %T has no INI representation", ini.ErrUnsupportedType, v)
}

func readINI(data []byte) (*document, error) {
	doc, err := syntax.Parse(string(data))
	if err != nil {
		return nil, err
	}
	d := newDocument()
	for _, kv := range doc.Pairs() {
		d.pairs.Set(kv.Key.Text, kv.Value.Text)
	}
	for _, s := range doc.Sections() {
		sec := d.section(s.Title())
		for _, n := range s.Pairs() {
			kv := n.(*syntax.KeyValuePair)
			sec.pairs.Set(kv.Key.Text, kv.Value.Text)
		}
	}
	return d, nil
}

func writeINI(w io.Writer, d *document, opts ...ini.EncodeOption) error {
	enc := ini.NewEncoder(w, opts...)
	if err := enc.Encode(d.pairs); err != nil {
		return err
	}
	for _, s := range d.sections {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}

func readYAML(data []byte) (*document, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	d := newDocument()
	if v == nil {
		return d, nil
	}
	top, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: top level value must be a mapping", ini.ErrUnsupportedType)
	}
	for _, item := range top {
		key := fmt.Sprint(item.Key)
		if inner, ok := item.Value.(yaml.MapSlice); ok {
			sec := d.section(key)
			for _, kv := range inner {
				text, err := scalarText(kv.Value)
				if err != nil {
					return nil, fmt.Errorf("%s.%v: %w", key, kv.Key, err)
				}
				sec.pairs.Set(fmt.Sprint(kv.Key), text)
			}
			continue
		}
		text, err := scalarText(item.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		d.pairs.Set(key, text)
	}
	return d, nil
}

func toMapSlice(m *ini.Map) yaml.MapSlice {
	out := yaml.MapSlice{}
	for k, v := range m.All() {
		out = append(out, yaml.MapItem{Key: k, Value: v})
	}
	return out
}

// mapSlice returns d as one ordered mapping, sections last.
func (d *document) mapSlice() yaml.MapSlice {
	out := toMapSlice(d.pairs)
	for _, s := range d.sections {
		out = append(out, yaml.MapItem{Key: s.title, Value: toMapSlice(s.pairs)})
	}
	return out
}

func writeYAML(w io.Writer, d *document) error {
	data, err := yaml.Marshal(d.mapSlice())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func readTOML(data []byte) (*document, error) {
	var v map[string]any
	md, err := toml.Decode(string(data), &v)
	if err != nil {
		return nil, err
	}
	d := newDocument()
	for _, key := range md.Keys() {
		switch len(key) {
		case 1:
			value := v[key[0]]
			if _, ok := value.(map[string]any); ok {
				d.section(key[0])
				continue
			}
			text, err := scalarText(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			d.pairs.Set(key[0], text)
		case 2:
			table, _ := v[key[0]].(map[string]any)
			if _, ok := table[key[1]].(map[string]any); ok {
				return nil, fmt.Errorf("%s: %w: nested table", key, ini.ErrUnsupportedType)
			}
			text, err := scalarText(table[key[1]])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			d.section(key[0]).pairs.Set(key[1], text)
		default:
			return nil, fmt.Errorf("%s: %w: nested table", key, ini.ErrUnsupportedType)
		}
	}
	return d, nil
}

func toStringMap(m *ini.Map) map[string]any {
	out := map[string]any{}
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

func writeTOML(w io.Writer, d *document) error {
	out := toStringMap(d.pairs)
	for _, s := range d.sections {
		out[s.title] = toStringMap(s.pairs)
	}
	return toml.NewEncoder(w).Encode(out)
}

// readJSON reads JSON as the YAML subset it is, keeping member order.
func readJSON(data []byte) (*document, error) {
	return readYAML(data)
}

func writeJSON(w io.Writer, d *document) error {
	data, err := yaml.MarshalWithOptions(d.mapSlice(), yaml.JSON())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func readEnv(data []byte) (*document, error) {
	env, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	d := newDocument()
	for _, k := range slices.Sorted(maps.Keys(env)) {
		d.pairs.Set(k, env[k])
	}
	return d, nil
}
