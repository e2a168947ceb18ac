package schema_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConradIrwin/ini-go/schema"
)

func loadSchema(t *testing.T) *schema.Schema {
	t.Helper()
	input, err := os.ReadFile("testdata/app.schema.ini")
	require.NoError(t, err)
	s, err := schema.Parse(input)
	require.NoError(t, err)
	return s
}

func messages(errs []schema.ValidationError) []string {
	out := []string{}
	for _, err := range errs {
		out = append(out, err.Error())
	}
	return out
}

func TestValidateFiles(t *testing.T) {
	s := loadSchema(t)

	valid, err := os.ReadFile("testdata/valid.ini")
	require.NoError(t, err)
	assert.Empty(t, s.Validate(valid))

	invalid, err := os.ReadFile("testdata/invalid.ini")
	require.NoError(t, err)
	want := []string{
		"1:11: expected version to match \\d+",
		"2:1: missing required key port",
		"4:1: unexpected key extra",
		"5:1: unexpected section [Client]",
		"7:1: duplicate section [Server]",
	}
	if diff := cmp.Diff(want, messages(s.Validate(invalid))); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	s := loadSchema(t)

	for _, test := range []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "minimal",
			input: "version=2\n",
			want:  []string{},
		},
		{
			name:  "optional key checked",
			input: "version=2\nname=Bad Name\n",
			want:  []string{"2:6: expected name to match [a-z][a-z0-9-]*"},
		},
		{
			name:  "missing root keys",
			input: "name=x\n",
			want:  []string{"1:1: missing required key version"},
		},
		{
			name:  "duplicate key",
			input: "version=1\nversion=2\n",
			want:  []string{"2:1: duplicate key version"},
		},
		{
			name:  "any comment",
			input: "version=1\n[Server]\nhost=h\nport=1\ncomment=anything at all\n",
			want:  []string{},
		},
		{
			name:  "missing several",
			input: "version=1\n[Server]\n",
			want:  []string{"2:1: missing required key host or port"},
		},
		{
			name:  "partial match rejected",
			input: "version=1\n[Log Output]\nlevel=verbose info\n",
			want:  []string{"3:7: expected level to match debug|info|warn|error"},
		},
		{
			name:  "syntax error",
			input: "version=1\n[Server\n",
			want:  []string{"2:1: missing ] after section header"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := messages(s.Validate([]byte(test.input)))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		want  string
	}{
		{"syntax", "[a", "invalid schema: 1:1: missing ] after section header"},
		{"bad pattern", "[A]\nkey=(\n", "invalid schema: 2:1: key: invalid pattern: error parsing regexp: missing closing )"},
		{"duplicate key", "key=a\nkey?=b\n", "invalid schema: 2:1: key?: duplicate key key"},
		{"duplicate section", "[A]\n[ A ]\n", "invalid schema: 2:1: duplicate section [A]"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := schema.Parse([]byte(test.input))
			assert.ErrorContains(t, err, test.want)
		})
	}
}

func TestValidationErrorLno(t *testing.T) {
	var ve schema.ValidationError
	assert.Equal(t, 1, ve.Lno())
}
