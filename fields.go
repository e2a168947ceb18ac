package ini

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
)

type field struct {
	name      string
	goName    string
	index     []int
	omitEmpty bool
}

type structFields struct {
	list   []field
	byName map[string]int
}

func (sf *structFields) lookup(key string) (field, bool) {
	i, ok := sf.byName[key]
	if !ok {
		return field{}, false
	}
	return sf.list[i], true
}

// names returns every key a field answers to.
func (sf *structFields) names() []string {
	names := make([]string, 0, len(sf.byName))
	for _, f := range sf.list {
		names = append(names, f.name)
		if f.goName != f.name {
			names = append(names, f.goName)
		}
	}
	return names
}

var fieldCache sync.Map // map[reflect.Type]*structFields

// cachedFields returns the INI fields of struct type t.
//
// The name of a field comes from an `ini:"name"` tag, then a `json:"name"`
// tag, and finally the snake_case version of the Go name. A tag of "-"
// skips the field, and the omitempty option skips zero values when
// encoding.
func cachedFields(t reflect.Type) *structFields {
	if sf, ok := fieldCache.Load(t); ok {
		return sf.(*structFields)
	}
	sf, _ := fieldCache.LoadOrStore(t, typeFields(t))
	return sf.(*structFields)
}

func typeFields(t reflect.Type) *structFields {
	sf := &structFields{byName: map[string]int{}}
	for i := range t.NumField() {
		ft := t.Field(i)
		if !ft.IsExported() {
			continue
		}
		tag, ok := ft.Tag.Lookup("ini")
		if !ok {
			tag, _ = ft.Tag.Lookup("json")
		}
		if tag == "-" {
			continue
		}
		name, options, _ := strings.Cut(tag, ",")
		if name == "" {
			name = toSnakeCase(ft.Name)
		}
		f := field{
			name:      name,
			goName:    ft.Name,
			index:     ft.Index,
			omitEmpty: hasOption(options, "omitempty"),
		}
		sf.byName[f.name] = len(sf.list)
		if _, taken := sf.byName[f.goName]; !taken {
			sf.byName[f.goName] = len(sf.list)
		}
		sf.list = append(sf.list, f)
	}
	return sf
}

func hasOption(options, want string) bool {
	for opt := range strings.SplitSeq(options, ",") {
		if opt == want {
			return true
		}
	}
	return false
}

// toSnakeCase converts a Go identifier to snake_case, keeping runs of
// capitals together: HTTPPort becomes http_port.
func toSnakeCase(s string) string {
	runes := []rune(s)
	var result strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				result.WriteRune('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

// SectionNamer is implemented by struct types whose section header differs
// from their Go type name.
type SectionNamer interface {
	SectionName() string
}

func sectionName(v reflect.Value) string {
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	if n, ok := p.Interface().(SectionNamer); ok {
		return n.SectionName()
	}
	return v.Type().Name()
}
