package syntax_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConradIrwin/ini-go/syntax"
)

func TestParse(t *testing.T) {
	doc, err := syntax.Parse("name=example\n; about the app\n[My App]\nport = 8080\nempty=\n\n[Other]\n")
	require.NoError(t, err)

	pairs := doc.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, "name", pairs[0].Key.Text)
	assert.Equal(t, "example", pairs[0].Value.Text)

	sections := doc.Sections()
	require.Len(t, sections, 2)

	app := sections[0]
	assert.Equal(t, "MyApp", app.Name())
	assert.Equal(t, "My App", app.Title())
	assert.Len(t, app.Header(), 2)
	assert.Equal(t, syntax.Pos{Offset: 29, Line: 3, Col: 1}, app.Pos())

	appPairs := app.Pairs()
	require.Len(t, appPairs, 2)
	port := appPairs[0].(*syntax.KeyValuePair)
	assert.Equal(t, "port", port.Key.Text)
	assert.Equal(t, "8080", port.Value.Text)
	assert.Equal(t, syntax.Pos{Offset: 45, Line: 4, Col: 8}, port.Value.Pos())
	empty := appPairs[1].(*syntax.KeyValuePair)
	assert.Equal(t, "", empty.Value.Text)
	assert.Len(t, empty.Children(), 2)

	other := sections[1]
	assert.Equal(t, "Other", other.Name())
	assert.Empty(t, other.Pairs())

	require.Len(t, doc.Comments, 1)
	assert.Equal(t, "; about the app", doc.Comments[0].Text)
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "  \t\n"} {
		doc, err := syntax.Parse(input)
		require.NoError(t, err)
		assert.Empty(t, doc.Children)
		assert.Equal(t, syntax.Pos{Line: 1, Col: 1}, doc.End())
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		{"key", "1:1: missing = after key"},
		{"=value", "1:1: missing key before ="},
		{"a=1\n  [Test", "2:3: missing ] after section header"},
		{"[]", "1:1: empty section header"},
		{"[ \t ]", "1:1: empty section header"},
		{"[a[b]", "1:3: unexpected [ in section header"},
		{"[Test] extra", `1:8: unexpected "extra" after section header`},
		{"a=1\n\xff=2", "2:1: invalid UTF-8"},
	} {
		t.Run(test.input, func(t *testing.T) {
			_, err := syntax.Parse(test.input)
			require.Error(t, err)
			assert.EqualError(t, err, test.want)

			var synErr *syntax.Error
			assert.True(t, errors.As(err, &synErr))
		})
	}
}

func TestParseTrailing(t *testing.T) {
	_, err := syntax.Parse("[Test] extra\nkey=value")
	assert.ErrorIs(t, err, syntax.ErrTrailing)

	_, err = syntax.Parse("[Test] ; comment is fine\nkey=value")
	assert.NoError(t, err)
}

func TestNodePositions(t *testing.T) {
	doc, err := syntax.Parse("[Test]\nkey=value\n")
	require.NoError(t, err)

	section := doc.Sections()[0]
	assert.Equal(t, syntax.Pos{Offset: 0, Line: 1, Col: 1}, section.Pos())
	assert.Equal(t, syntax.Pos{Offset: 16, Line: 2, Col: 10}, section.End())
	assert.Equal(t, section.End(), doc.End())

	bare, err := syntax.Parse("[Test]")
	require.NoError(t, err)
	assert.Equal(t, syntax.Pos{Offset: 6, Line: 1, Col: 7}, bare.Sections()[0].End())

	var kv syntax.KeyValuePair
	assert.False(t, kv.Pos().IsValid())
	assert.Empty(t, kv.Children())
}
