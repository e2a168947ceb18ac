package ini

import (
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// Value writes v, following the rules of [Marshal].
func (s *Serializer) Value(v any) error {
	val := reflect.ValueOf(v)
	if !val.IsValid() {
		return s.None()
	}
	if (val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface) && val.IsNil() {
		return s.None()
	}

	switch m := v.(type) {
	case Marshaler:
		return m.MarshalINI(s)
	case encoding.TextMarshaler:
		text, err := m.MarshalText()
		if err != nil {
			return &Error{Kind: ErrMessage, Key: s.key, Err: err}
		}
		return s.Text(string(text))
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		return s.Some(val.Elem().Interface())
	case reflect.Bool:
		return s.Bool(val.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.Int(val.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return s.Uint(val.Uint())
	case reflect.Float32, reflect.Float64:
		return s.Float(val.Float(), val.Type().Bits())
	case reflect.Complex64, reflect.Complex128:
		return s.Complex(val.Complex(), val.Type().Bits())
	case reflect.String:
		return s.Text(val.String())
	case reflect.Slice, reflect.Array:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return s.Bytes(nil)
		}
		return s.Seq(val.Len())
	case reflect.Map:
		return s.marshalMap(val)
	case reflect.Struct:
		return s.marshalStruct(val)
	}
	return &Error{Kind: ErrUnsupportedType, Key: s.key, Err: fmt.Errorf("%s", val.Type())}
}

func marshalKey(key reflect.Value) (string, error) {
	if m, ok := key.Interface().(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return "", &Error{Kind: ErrMessage, Err: err}
		}
		return string(text), nil
	}

	switch key.Kind() {
	case reflect.String:
		return key.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(key.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(key.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(key.Float(), 'f', -1, key.Type().Bits()), nil
	case reflect.Bool:
		return strconv.FormatBool(key.Bool()), nil
	}
	return "", &Error{Kind: ErrUnsupportedType, Err: fmt.Errorf("map key type %s", key.Type())}
}

func (s *Serializer) marshalMap(val reflect.Value) error {
	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		k, err := marshalKey(iter.Key())
		if err != nil {
			return err
		}
		entries = append(entries, entry{k, iter.Value()})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.key, b.key)
	})

	m, err := s.Map()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := m.Entry(e.key, e.value.Interface()); err != nil {
			return err
		}
	}
	return m.End()
}

func (s *Serializer) marshalStruct(val reflect.Value) error {
	fields := cachedFields(val.Type())
	if val.Type().Name() == "" {
		m, err := s.Map()
		if err != nil {
			return err
		}
		for _, f := range fields.list {
			fv := val.FieldByIndex(f.index)
			if f.omitEmpty && fv.IsZero() {
				continue
			}
			if err := m.Entry(f.name, fv.Interface()); err != nil {
				return err
			}
		}
		return m.End()
	}

	r, err := s.Record(sectionName(val))
	if err != nil {
		return err
	}
	for _, f := range fields.list {
		fv := val.FieldByIndex(f.index)
		if f.omitEmpty && fv.IsZero() {
			continue
		}
		if err := r.Field(f.name, fv.Interface()); err != nil {
			return err
		}
	}
	return r.End()
}
