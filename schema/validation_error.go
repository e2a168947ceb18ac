package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ConradIrwin/ini-go/syntax"
)

// A ValidationError represents a single validation error.
type ValidationError struct {
	Pos syntax.Pos
	Msg string
}

func joinWithOr(items []string) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

// Lno returns the 1-indexed line number on which the error occurred.
func (ve *ValidationError) Lno() int {
	if !ve.Pos.IsValid() {
		return 1
	}
	return ve.Pos.Line
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return fmt.Sprintf("%d:%d: %s", ve.Lno(), max(ve.Pos.Col, 1), ve.Msg)
}

func sortErrors(errs []ValidationError) {
	slices.SortStableFunc(errs, func(a, b ValidationError) int {
		if a.Pos.Offset != b.Pos.Offset {
			return a.Pos.Offset - b.Pos.Offset
		}
		return strings.Compare(a.Msg, b.Msg)
	})
}
