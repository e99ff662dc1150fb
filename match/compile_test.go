package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pattern string
		options []CompileOption
		input   string
		matches bool
	}{
		{"plain", "foo", nil, "a foo b", true},
		{"case sensitive by default", "foo", nil, "FOO", false},
		{"ignore case", "foo", []CompileOption{WithIgnoreCase()}, "FOO", true},
		{"smart case lower", "foo", []CompileOption{WithSmartCase()}, "FOO", true},
		{"smart case upper", "Foo", []CompileOption{WithSmartCase()}, "foo", false},
		{"smart case upper exact", "Foo", []CompileOption{WithSmartCase()}, "Foo", true},
		{"ignore case wins over smart case", "Foo", []CompileOption{WithSmartCase(), WithIgnoreCase()}, "FOO", true},
		{"regexp by default", "a.b", nil, "axb", true},
		{"fixed strings", "a.b", []CompileOption{WithFixedStrings()}, "axb", false},
		{"fixed strings literal", "a.b", []CompileOption{WithFixedStrings()}, "a.b", true},
		{"fixed strings ignore case", "A(B", []CompileOption{WithFixedStrings(), WithIgnoreCase()}, "a(b", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			re, err := Compile(tt.pattern, tt.options...)
			require.NoError(t, err, "Compile should succeed")
			require.Equal(t, tt.matches, re.FindIndex([]byte(tt.input)) != nil)
		})
	}
}

func TestCompileError(t *testing.T) {
	t.Parallel()
	_, err := Compile("(1|3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing closing )")
	require.Contains(t, err.Error(), "(1|3")
}
