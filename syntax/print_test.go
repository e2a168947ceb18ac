package syntax_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConradIrwin/ini-go/syntax"
)

func TestSprint(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "canonical",
			input: "a=1\n[Test]\nb=2\n",
			want:  "a=1\n\n[Test]\nb=2\n",
		},
		{
			name:  "padding",
			input: "  a =  1  \n[  My    App ]\n b = two words\n",
			want:  "a=1\n\n[My App]\nb=two words\n",
		},
		{
			name:  "empty value",
			input: "[Test]\nkey =\n",
			want:  "[Test]\nkey=\n",
		},
		{
			name:  "comments",
			input: "# top\r\na=1\n[Test] ; header\n; inner\nb=2\n; end\n",
			want:  "# top\na=1\n\n[Test]\n; header\n; inner\nb=2\n; end\n",
		},
		{
			name:  "empty",
			input: "\n\n",
			want:  "",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			doc, err := syntax.Parse(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.want, syntax.Sprint(doc))
		})
	}
}

func TestSprintIdempotent(t *testing.T) {
	input := "; settings\nname = x\n[A]\nk = v\n[B C]\n"
	doc, err := syntax.Parse(input)
	require.NoError(t, err)
	once := syntax.Sprint(doc)

	doc, err = syntax.Parse(once)
	require.NoError(t, err)
	assert.Equal(t, once, syntax.Sprint(doc))
}

func TestFprintColors(t *testing.T) {
	doc, err := syntax.Parse("[Test]\nkey=value\n")
	require.NoError(t, err)

	wrap := func(tag string) func(a ...any) string {
		return func(a ...any) string {
			var b strings.Builder
			b.WriteString("<" + tag + ">")
			for _, v := range a {
				b.WriteString(v.(string))
			}
			return b.String()
		}
	}
	colors := &syntax.Colors{Header: wrap("h"), Key: wrap("k")}

	var b strings.Builder
	require.NoError(t, syntax.Fprint(&b, doc, colors))
	assert.Equal(t, "[<h>Test]\n<k>key=value\n", b.String())
}
