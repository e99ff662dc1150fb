package linegrep

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/jessevdk/go-flags"
	"github.com/peco/linegrep/match"
	"github.com/pkg/errors"
)

func (options *CLIOptions) parse(s []string) ([]string, error) {
	p := flags.NewParser(options, flags.PassDoubleDash)
	args, err := p.ParseArgs(s)
	if err != nil {
		return nil, Wrap(InvalidOption, err)
	}

	if err := options.Validate(); err != nil {
		return nil, Wrap(InvalidOption, err)
	}

	return args, nil
}

// Validate checks for option values that cannot be used
func (options CLIOptions) Validate() error {
	if options.OptMaxCount < 0 {
		return errors.Errorf("--max-count must not be negative (got %d)", options.OptMaxCount)
	}
	if options.OptMaxLineSize < 0 {
		return errors.Errorf("--max-line-size must not be negative (got %d)", options.OptMaxLineSize)
	}
	if options.OptCount && options.OptOnlyMatching {
		return errors.New("--count and --only-matching cannot be used together")
	}
	return nil
}

// CompileOptions returns the pattern options selected by the command line
// flags combined with the config file
func (g *Grep) CompileOptions() []match.CompileOption {
	var options []match.CompileOption
	if g.options.OptIgnoreCase || g.config.IgnoreCase {
		options = append(options, match.WithIgnoreCase())
	}
	if g.options.OptSmartCase || g.config.SmartCase {
		options = append(options, match.WithSmartCase())
	}
	if g.options.OptFixedStrings || g.config.FixedStrings {
		options = append(options, match.WithFixedStrings())
	}
	return options
}

func (options CLIOptions) help() []byte {
	buf := bytes.Buffer{}

	fmt.Fprintf(&buf, `
Usage: linegrep [options] [--] PATTERN FILE

Options:
`)

	t := reflect.TypeOf(options)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag

		var o string
		if s := tag.Get("short"); s != "" {
			o = fmt.Sprintf("-%s, --%s", tag.Get("short"), tag.Get("long"))
		} else {
			o = fmt.Sprintf("--%s", tag.Get("long"))
		}

		fmt.Fprintf(
			&buf,
			"  %-21s %s\n",
			o,
			tag.Get("description"),
		)
	}

	return buf.Bytes()
}
