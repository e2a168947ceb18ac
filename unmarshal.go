package ini

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/ConradIrwin/ini-go/syntax"
)

// Decode decodes the value under the cursor into v, which must be a non-nil
// pointer. It follows the rules of [Unmarshal].
func (d *Deserializer) Decode(v any) error {
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return &Error{Kind: ErrInvalidTarget}
	}
	return d.decodeValue(value.Elem())
}

func (d *Deserializer) decodeValue(v reflect.Value) error {
	if !v.CanSet() {
		panic(fmt.Errorf("cannot set value of type: %v", v.Type()))
	}

	if v.Kind() != reflect.Pointer {
		switch u := v.Addr().Interface().(type) {
		case Unmarshaler:
			return u.UnmarshalINI(d)
		case encoding.TextUnmarshaler:
			text, err := d.DecodeScalar()
			if err != nil {
				return err
			}
			if err := u.UnmarshalText([]byte(text)); err != nil {
				return &Error{Kind: ErrMessage, Key: d.key, Err: err}
			}
			return nil
		}
	}

	switch v.Kind() {
	case reflect.Pointer:
		if w, ok := d.cur.first().(*syntax.Word); ok && w.Text == "" {
			d.cur.advance(1)
			v.SetZero()
			return nil
		}
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return d.decodeValue(v.Elem())
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return d.fail(ErrUnsupportedType, syntax.Pos{}, "interface "+v.Type().String())
		}
		x, err := d.DecodeAny()
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(x))
		return nil
	case reflect.Map:
		return d.decodeMap(v)
	case reflect.Struct:
		fields := cachedFields(v.Type())
		if v.Type().Name() == "" {
			return d.DecodeMap(d.fieldSetter(v, fields))
		}
		return d.DecodeRecord(sectionName(v), fields.names(), d.fieldSetter(v, fields))
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return d.fail(ErrNotImplemented, syntax.Pos{}, "binary values")
		}
		return d.fail(ErrUnsupportedType, syntax.Pos{}, "sequences")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.Bool,
		reflect.String:
		text, err := d.DecodeScalar()
		if err != nil {
			return err
		}
		return setBasicValue(text, v)
	}

	return d.fail(ErrUnsupportedType, syntax.Pos{}, v.Type().String())
}

func (d *Deserializer) fieldSetter(v reflect.Value, fields *structFields) func(string, *Deserializer) error {
	return func(key string, value *Deserializer) error {
		f, ok := fields.lookup(key)
		if !ok {
			if d.opts.disallowUnknown {
				return &Error{Kind: ErrUnknownField, Key: key}
			}
			return nil
		}
		return value.decodeValue(v.FieldByIndex(f.index))
	}
}

func (d *Deserializer) decodeMap(v reflect.Value) error {
	t := v.Type()
	if v.IsNil() {
		v.Set(reflect.MakeMap(t))
	}
	return d.DecodeMap(func(key string, value *Deserializer) error {
		k := reflect.New(t.Key()).Elem()
		if err := setKey(key, k); err != nil {
			return err
		}
		elem := reflect.New(t.Elem()).Elem()
		if err := value.decodeValue(elem); err != nil {
			return err
		}
		v.SetMapIndex(k, elem)
		return nil
	})
}

func setKey(s string, v reflect.Value) error {
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		if err := tu.UnmarshalText([]byte(s)); err != nil {
			return &Error{Kind: ErrMessage, Err: fmt.Errorf("invalid key: %w", err)}
		}
		return nil
	}
	switch v.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return setBasicValue(s, v)
	}
	return &Error{Kind: ErrUnsupportedType, Err: fmt.Errorf("map key type %s", v.Type())}
}

func setBasicValue(s string, v reflect.Value) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Errorf("invalid %s: %w", v.Type(), err)
		}
		if v.OverflowInt(i) {
			return Errorf("invalid %s: %v overflows", v.Type(), i)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Errorf("invalid %s: %w", v.Type(), err)
		}
		if v.OverflowUint(u) {
			return Errorf("invalid %s: %v overflows", v.Type(), u)
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return Errorf("invalid %s: %w", v.Type(), err)
		}
		v.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(s, v.Type().Bits())
		if err != nil {
			return Errorf("invalid %s: %w", v.Type(), err)
		}
		v.SetComplex(c)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Errorf("invalid %s: %w", v.Type(), err)
		}
		v.SetBool(b)
	default:
		return &Error{Kind: ErrUnsupportedType, Err: fmt.Errorf("%s", v.Type())}
	}
	return nil
}
