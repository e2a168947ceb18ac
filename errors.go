package ini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ConradIrwin/ini-go/syntax"
)

var (
	// Parsing
	ErrSyntax        = errors.New("syntax error")
	ErrTrailingInput = errors.New("trailing input")

	// Shape mismatches
	ErrUnsupportedType = errors.New("unsupported type")
	ErrArity           = errors.New("key without value")
	ErrSectionNotFound = errors.New("section not found")
	ErrUnknownField    = errors.New("unknown field")
	ErrInvalidTarget   = errors.New("invalid target, must be a non-nil pointer")
	ErrNotImplemented  = errors.New("not implemented")

	// Custom messages from Marshaler and Unmarshaler implementations
	ErrMessage = errors.New("message")
)

// Error is returned by every operation in this package. Kind is one of the
// Err* sentinels above; Err is the underlying cause, if any.
type Error struct {
	Kind error
	Pos  syntax.Pos
	Key  string
	Err  error
}

func (e *Error) Error() string {
	var se *syntax.Error
	if errors.As(e.Err, &se) {
		return e.Kind.Error() + ": " + e.Err.Error()
	}

	var b strings.Builder
	if e.Pos.IsValid() {
		b.WriteString(e.Pos.String())
		b.WriteString(": ")
	}
	if e.Key != "" {
		fmt.Fprintf(&b, "%s: ", e.Key)
	}
	switch {
	case e.Err == nil:
		b.WriteString(e.Kind.Error())
	case e.Kind == ErrMessage:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString(e.Kind.Error())
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Errorf formats a custom error. Use it from UnmarshalINI and MarshalINI.
func Errorf(format string, args ...any) error {
	return &Error{Kind: ErrMessage, Err: fmt.Errorf(format, args...)}
}

// annotate fills in the position and key of err if it does not have them
// already. Errors from outside this package are wrapped as messages.
func annotate(err error, pos syntax.Pos, key string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Kind: ErrMessage, Pos: pos, Key: key, Err: err}
	}
	if !e.Pos.IsValid() {
		e.Pos = pos
	}
	if e.Key == "" {
		e.Key = key
	}
	return err
}

// IsSyntaxError reports whether err was caused by malformed input.
func IsSyntaxError(err error) bool {
	return errors.Is(err, ErrSyntax) ||
		errors.Is(err, ErrTrailingInput)
}

// IsUnsupportedType reports whether err was caused by a Go value or type
// that has no INI representation.
func IsUnsupportedType(err error) bool {
	return errors.Is(err, ErrUnsupportedType) ||
		errors.Is(err, ErrNotImplemented)
}

// IsShapeError reports whether the document parsed but did not fit the
// target.
func IsShapeError(err error) bool {
	return errors.Is(err, ErrArity) ||
		errors.Is(err, ErrSectionNotFound) ||
		errors.Is(err, ErrUnknownField)
}
