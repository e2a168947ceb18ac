// Package schema validates the structure of an INI document.
//
// A schema is itself an INI document. Its bare key-value pairs describe the
// pairs allowed before the first section of the target document, and each
// [Section] describes a section the target may contain. Within either, a
// line of the form
//
//	key = pattern
//
// declares a required key whose value must match the regular expression
// pattern. Writing the key as key? makes it optional. Patterns must match
// the entire value, so "a" matches "a" but not "cat"; an empty pattern
// matches any value.
//
// Sections are matched by name with whitespace between header words
// ignored, in the same way as [ini.Unmarshal]. Sections that the schema does
// not declare, keys that a section does not declare, repeated keys and
// repeated sections are all reported as errors.
//
// # Examples
//
// This example schema
//
//	version = \d+
//	[Server]
//	host = .+
//	port = \d{1,5}
//	comment? =
//
// matches the INI document
//
//	version = 1
//	[Server]
//	host = localhost
//	port = 8080
//
// but not
//
//	version = one        ; expected version to match \d+
//	[Server]
//	host = localhost     ; missing required key port
//	[Client]             ; unexpected section [Client]
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ConradIrwin/ini-go"
	"github.com/ConradIrwin/ini-go/syntax"
)

// A Schema allows you to validate an INI document against a set of rules.
type Schema struct {
	root     *definition
	sections map[string]*definition
}

type definition struct {
	name  string
	rules []*rule
	byKey map[string]*rule
}

type rule struct {
	key      string
	raw      string
	pattern  *regexp.Regexp
	optional bool
}

func newDefinition(name string) *definition {
	return &definition{name: name, byKey: map[string]*rule{}}
}

func (d *definition) addRule(key string, value *ini.Deserializer) error {
	raw, err := value.DecodeScalar()
	if err != nil {
		return err
	}
	r := &rule{key: key, raw: raw}
	if k, ok := strings.CutSuffix(key, "?"); ok {
		r.key = strings.TrimRight(k, " \t")
		r.optional = true
	}
	if _, exists := d.byKey[r.key]; exists {
		return fmt.Errorf("duplicate key %s", r.key)
	}
	if raw != "" {
		if r.pattern, err = regexp.Compile("^(?:" + raw + ")$"); err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}
	}
	d.byKey[r.key] = r
	d.rules = append(d.rules, r)
	return nil
}

// UnmarshalINI reads the bare pairs of a schema document.
func (d *definition) UnmarshalINI(dec *ini.Deserializer) error {
	return dec.DecodeMap(d.addRule)
}

type sectionDefinition struct {
	*definition
}

// UnmarshalINI reads the pairs of the section named by the definition.
func (s sectionDefinition) UnmarshalINI(dec *ini.Deserializer) error {
	return dec.DecodeRecord(s.name, nil, s.addRule)
}

// Parse a schema from the given input.
// An error is returned if the input is not valid INI, or if the schema
// contains invalid regular expressions, repeated keys or repeated sections.
func Parse(input []byte) (*Schema, error) {
	doc, err := syntax.Parse(string(input))
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	s := &Schema{root: newDefinition(""), sections: map[string]*definition{}}
	dec := ini.NewDecoder(bytes.NewReader(input), ini.AllowTrailingInput())
	if err := dec.Decode(s.root); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	for _, section := range doc.Sections() {
		name := section.Name()
		if _, exists := s.sections[name]; exists {
			return nil, fmt.Errorf("invalid schema: %s: duplicate section [%s]", section.Pos(), section.Title())
		}
		def := newDefinition(name)
		if err := dec.Decode(&sectionDefinition{def}); err != nil {
			return nil, fmt.Errorf("invalid schema: %w", err)
		}
		s.sections[name] = def
	}
	return s, nil
}

// Validate validates the input against the schema.
// If the input is valid INI and matches the schema, nil is returned.
// Otherwise, it returns every problem found, ordered by position. A syntax
// error stops validation and is returned on its own.
func (s *Schema) Validate(input []byte) []ValidationError {
	doc, err := syntax.Parse(string(input))
	if err != nil {
		var se *syntax.Error
		if errors.As(err, &se) {
			return []ValidationError{{Pos: se.Pos, Msg: se.Msg}}
		}
		return []ValidationError{{Pos: syntax.Pos{Line: 1, Col: 1}, Msg: err.Error()}}
	}

	var errs []ValidationError
	errs = s.root.validate(doc.Pairs(), syntax.Pos{Line: 1, Col: 1}, errs)

	seen := map[string]bool{}
	for _, section := range doc.Sections() {
		name := section.Name()
		def, ok := s.sections[name]
		switch {
		case !ok:
			errs = append(errs, ValidationError{Pos: section.Pos(), Msg: "unexpected section [" + section.Title() + "]"})
		case seen[name]:
			errs = append(errs, ValidationError{Pos: section.Pos(), Msg: "duplicate section [" + section.Title() + "]"})
		default:
			var pairs []*syntax.KeyValuePair
			for _, n := range section.Pairs() {
				pairs = append(pairs, n.(*syntax.KeyValuePair))
			}
			errs = def.validate(pairs, section.Pos(), errs)
		}
		seen[name] = true
	}

	sortErrors(errs)
	return errs
}

func (d *definition) validate(pairs []*syntax.KeyValuePair, at syntax.Pos, errs []ValidationError) []ValidationError {
	seen := map[string]bool{}
	for _, kv := range pairs {
		key := kv.Key.Text
		r, ok := d.byKey[key]
		switch {
		case !ok:
			errs = append(errs, ValidationError{Pos: kv.Pos(), Msg: "unexpected key " + key})
			continue
		case seen[key]:
			errs = append(errs, ValidationError{Pos: kv.Pos(), Msg: "duplicate key " + key})
			continue
		}
		seen[key] = true

		value := ""
		pos := kv.End()
		if kv.Value != nil {
			value = kv.Value.Text
			pos = kv.Value.Pos()
		}
		if r.pattern != nil && !r.pattern.MatchString(value) {
			errs = append(errs, ValidationError{Pos: pos, Msg: fmt.Sprintf("expected %s to match %s", key, r.raw)})
		}
	}

	missing := []string{}
	for _, r := range d.rules {
		if !r.optional && !seen[r.key] {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, ValidationError{Pos: at, Msg: "missing required key " + joinWithOr(missing)})
	}
	return errs
}
