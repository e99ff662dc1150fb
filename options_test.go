package linegrep

import (
	"testing"

	"github.com/peco/linegrep/config"
	"github.com/stretchr/testify/require"
)

func TestOptionsParse(t *testing.T) {
	var opts CLIOptions
	args, err := opts.parse([]string{"-i", "--color", "never", "--column", "-m", "3", "foo", "bar.txt"})
	require.NoError(t, err)
	require.Equal(t, []string{"foo", "bar.txt"}, args, "positional arguments should be returned in order")
	require.True(t, opts.OptIgnoreCase)
	require.True(t, opts.OptColumn)
	require.Equal(t, config.ColorModeNever, opts.OptColor)
	require.Equal(t, 3, opts.OptMaxCount)
}

func TestOptionsParseDoubleDash(t *testing.T) {
	var opts CLIOptions
	args, err := opts.parse([]string{"-i", "--", "-c", "file.txt"})
	require.NoError(t, err)
	require.Equal(t, []string{"-c", "file.txt"}, args, "arguments after -- should be positional")
	require.True(t, opts.OptIgnoreCase)
	require.False(t, opts.OptCount)
}

func TestOptionsParseErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"unknown flag", []string{"--bogus", "a", "b"}},
		{"bad color", []string{"--color", "sometimes", "a", "b"}},
		{"negative max count", []string{"-m", "-1", "a", "b"}},
		{"negative max line size", []string{"--max-line-size", "-5", "a", "b"}},
		{"count with only matching", []string{"-c", "-o", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts CLIOptions
			_, err := opts.parse(tt.argv)
			require.Error(t, err)
			require.True(t, IsKind(err, InvalidOption), "error should be InvalidOption, got %s", err)
		})
	}
}

func TestHelp(t *testing.T) {
	var opts CLIOptions
	help := string(opts.help())
	require.Contains(t, help, "Usage: linegrep [options] [--] PATTERN FILE")
	require.Contains(t, help, "-i, --ignore-case")
	require.Contains(t, help, "--max-line-size")
}

func TestCompileOptions(t *testing.T) {
	g, _, _ := newTestGrep()
	require.Empty(t, g.CompileOptions())

	g.options.OptIgnoreCase = true
	g.config.FixedStrings = true
	require.Len(t, g.CompileOptions(), 2)
}
