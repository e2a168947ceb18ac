package ini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConradIrwin/ini-go/syntax"
)

func word(text string, col int) *syntax.Word {
	return &syntax.Word{Text: text, ValuePos: syntax.Pos{Offset: col - 1, Line: 1, Col: col}}
}

func TestCursor(t *testing.T) {
	doc, err := syntax.Parse("a=1\nb=2\n[S]\nc=3\n[T]\n")
	require.NoError(t, err)

	c := cursor{nodes: doc.Children}
	run := c.takeWhile(isPair)
	assert.Len(t, run, 2)
	assert.IsType(t, &syntax.Section{}, c.first())

	assert.Empty(t, c.takeWhile(isPair))
	c.advance(5)
	assert.True(t, c.empty())
	assert.Nil(t, c.first())

	assert.Equal(t, "S", findSection(doc.Children, "S").Name())
	assert.Nil(t, findSection(doc.Children, "s"))
}

func TestFlatten(t *testing.T) {
	pairs := []syntax.Node{
		&syntax.KeyValuePair{Key: word("a", 1), Value: word("1", 3)},
		&syntax.KeyValuePair{Key: word("b", 1)},
	}
	words := flatten(pairs)
	require.Len(t, words, 4)
	assert.Equal(t, "", words[3].Text)
	assert.Equal(t, syntax.Pos{Offset: 1, Line: 1, Col: 2}, words[3].Pos())
}

func TestDecodeMapArity(t *testing.T) {
	d := &Deserializer{
		cur: cursor{nodes: []syntax.Node{
			&syntax.KeyValuePair{Key: word("a", 1), Value: word("1", 3)},
			&syntax.KeyValuePair{Value: word("orphan", 3)},
		}},
		opts: &decodeOptions{},
	}

	seen := map[string]string{}
	err := d.DecodeMap(func(key string, value *Deserializer) error {
		text, err := value.DecodeScalar()
		seen[key] = text
		return err
	})
	assert.ErrorIs(t, err, ErrArity)
	assert.EqualError(t, err, "1:3: orphan: key without value")
	assert.Equal(t, map[string]string{"a": "1"}, seen)
}

func TestDecodeMissingValue(t *testing.T) {
	d := &Deserializer{
		cur:  cursor{nodes: []syntax.Node{&syntax.KeyValuePair{Key: word("a", 1)}}},
		opts: &decodeOptions{},
	}
	var got map[string]*int
	require.NoError(t, d.Decode(&got))
	assert.Equal(t, map[string]*int{"a": nil}, got)
}

func TestToSnakeCase(t *testing.T) {
	for in, want := range map[string]string{
		"Int":          "int",
		"MissingValue": "missing_value",
		"HTTPPort":     "http_port",
		"ID":           "id",
		"UserID":       "user_id",
		"Port2Go":      "port2_go",
	} {
		assert.Equal(t, want, toSnakeCase(in), in)
	}
}

func TestOutput(t *testing.T) {
	var o output
	assert.True(t, o.atLineStart())
	o.breakLine()
	assert.Empty(t, o.buf)

	o.write("a=1")
	assert.False(t, o.atLineStart())
	o.breakLine()
	o.breakLine()
	assert.Equal(t, "a=1\n", string(o.buf))
}
