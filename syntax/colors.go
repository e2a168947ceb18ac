package syntax

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors controls how [Fprint] decorates each part of a document.
// A nil *Colors, or a nil field, prints plain text.
type Colors struct {
	Header    func(a ...any) string
	Key       func(a ...any) string
	Separator func(a ...any) string
	Value     func(a ...any) string
	Comment   func(a ...any) string
}

// NewColors returns the default terminal palette.
func NewColors() *Colors {
	return &Colors{
		Header:    color.New(color.FgBlue, color.Bold).SprintFunc(),
		Key:       color.RGB(196, 96, 16).SprintFunc(),
		Separator: color.RGB(255, 0, 196).SprintFunc(),
		Value:     color.RGB(8, 196, 16).SprintFunc(),
		Comment:   color.New(color.FgHiBlack).SprintFunc(),
	}
}

func plain(a ...any) string {
	return fmt.Sprint(a...)
}

func (c *Colors) orPlain() *Colors {
	out := Colors{Header: plain, Key: plain, Separator: plain, Value: plain, Comment: plain}
	if c == nil {
		return &out
	}
	for _, f := range []struct {
		dst *func(...any) string
		src func(...any) string
	}{
		{&out.Header, c.Header},
		{&out.Key, c.Key},
		{&out.Separator, c.Separator},
		{&out.Value, c.Value},
		{&out.Comment, c.Comment},
	} {
		if f.src != nil {
			*f.dst = f.src
		}
	}
	return &out
}
