package syntax_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ConradIrwin/ini-go/syntax"
)

func TestTokens(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		want  []syntax.Token
	}{
		{
			name:  "pair",
			input: "key=value",
			want: []syntax.Token{
				{Kind: syntax.Key, Content: "key", Pos: syntax.Pos{Offset: 0, Line: 1, Col: 1}},
				{Kind: syntax.Value, Content: "value", Pos: syntax.Pos{Offset: 4, Line: 1, Col: 5}},
			},
		},
		{
			name:  "padded pair",
			input: "  key = a value  ",
			want: []syntax.Token{
				{Kind: syntax.Key, Content: "key", Pos: syntax.Pos{Offset: 2, Line: 1, Col: 3}},
				{Kind: syntax.Value, Content: "a value", Pos: syntax.Pos{Offset: 8, Line: 1, Col: 9}},
			},
		},
		{
			name:  "empty value",
			input: "key=",
			want: []syntax.Token{
				{Kind: syntax.Key, Content: "key", Pos: syntax.Pos{Offset: 0, Line: 1, Col: 1}},
				{Kind: syntax.Value, Content: "", Pos: syntax.Pos{Offset: 4, Line: 1, Col: 5}},
			},
		},
		{
			name:  "header",
			input: "[My App]\nkey = value\n",
			want: []syntax.Token{
				{Kind: syntax.SectionStart, Content: "[", Pos: syntax.Pos{Offset: 0, Line: 1, Col: 1}},
				{Kind: syntax.HeaderWord, Content: "My", Pos: syntax.Pos{Offset: 1, Line: 1, Col: 2}},
				{Kind: syntax.HeaderWord, Content: "App", Pos: syntax.Pos{Offset: 4, Line: 1, Col: 5}},
				{Kind: syntax.SectionEnd, Content: "]", Pos: syntax.Pos{Offset: 7, Line: 1, Col: 8}},
				{Kind: syntax.Key, Content: "key", Pos: syntax.Pos{Offset: 9, Line: 2, Col: 1}},
				{Kind: syntax.Value, Content: "value", Pos: syntax.Pos{Offset: 15, Line: 2, Col: 7}},
			},
		},
		{
			name:  "comments",
			input: "; top\r\n[Test] # note\r\n",
			want: []syntax.Token{
				{Kind: syntax.CommentToken, Content: "; top", Pos: syntax.Pos{Offset: 0, Line: 1, Col: 1}},
				{Kind: syntax.SectionStart, Content: "[", Pos: syntax.Pos{Offset: 7, Line: 2, Col: 1}},
				{Kind: syntax.HeaderWord, Content: "Test", Pos: syntax.Pos{Offset: 8, Line: 2, Col: 2}},
				{Kind: syntax.SectionEnd, Content: "]", Pos: syntax.Pos{Offset: 12, Line: 2, Col: 6}},
				{Kind: syntax.CommentToken, Content: "# note", Pos: syntax.Pos{Offset: 14, Line: 2, Col: 8}},
			},
		},
		{
			name:  "byte order mark",
			input: "\uFEFFa=b",
			want: []syntax.Token{
				{Kind: syntax.Key, Content: "a", Pos: syntax.Pos{Offset: 3, Line: 1, Col: 1}},
				{Kind: syntax.Value, Content: "b", Pos: syntax.Pos{Offset: 5, Line: 1, Col: 3}},
			},
		},
		{
			name:  "value keeps later separators",
			input: "url=http://x?a=b",
			want: []syntax.Token{
				{Kind: syntax.Key, Content: "url", Pos: syntax.Pos{Offset: 0, Line: 1, Col: 1}},
				{Kind: syntax.Value, Content: "http://x?a=b", Pos: syntax.Pos{Offset: 4, Line: 1, Col: 5}},
			},
		},
		{
			name:  "trailing",
			input: "[a] b",
			want: []syntax.Token{
				{Kind: syntax.SectionStart, Content: "[", Pos: syntax.Pos{Offset: 0, Line: 1, Col: 1}},
				{Kind: syntax.HeaderWord, Content: "a", Pos: syntax.Pos{Offset: 1, Line: 1, Col: 2}},
				{Kind: syntax.SectionEnd, Content: "]", Pos: syntax.Pos{Offset: 2, Line: 1, Col: 3}},
				{Kind: syntax.Trailing, Content: "b", Pos: syntax.Pos{Offset: 4, Line: 1, Col: 5}},
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := slices.Collect(syntax.Tokens(test.input))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokensStop(t *testing.T) {
	count := 0
	for range syntax.Tokens("a=1\nb=2\nc=3") {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("expected to stop after 3 tokens, got %d", count)
	}
}

func TestTokenKindString(t *testing.T) {
	if got := syntax.HeaderWord.String(); got != "HeaderWord" {
		t.Errorf("got %q", got)
	}
	if got := syntax.Trailing.GoString(); got != "Trailing" {
		t.Errorf("got %q", got)
	}
}
