package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/peco/linegrep/internal/util"
	"github.com/pkg/errors"
)

var _ Matcher = (*regexp.Regexp)(nil)

// WithIgnoreCase makes the pattern match regardless of case
func WithIgnoreCase() CompileOption {
	return func(c *compileConfig) {
		c.ignoreCase = true
	}
}

// WithSmartCase ignores case only if the pattern contains no upper case
// characters
func WithSmartCase() CompileOption {
	return func(c *compileConfig) {
		c.smartCase = true
	}
}

// WithFixedStrings treats the pattern as a literal string rather than a
// regular expression
func WithFixedStrings() CompileOption {
	return func(c *compileConfig) {
		c.fixedStrings = true
	}
}

func (c compileConfig) flags(pattern string) []string {
	switch {
	case c.ignoreCase:
		return []string{"i"}
	case c.smartCase && !util.ContainsUpper(pattern):
		return []string{"i"}
	default:
		return nil
	}
}

// Compile compiles pattern into a Matcher backed by the regexp package.
// The returned error contains the message from the regexp parser.
func Compile(pattern string, options ...CompileOption) (*regexp.Regexp, error) {
	var cfg compileConfig
	for _, o := range options {
		o(&cfg)
	}

	reTxt := pattern
	if cfg.fixedStrings {
		reTxt = regexp.QuoteMeta(pattern)
	}

	if flags := cfg.flags(pattern); len(flags) > 0 {
		reTxt = fmt.Sprintf("(?%s)%s", strings.Join(flags, ""), reTxt)
	}

	re, err := regexp.Compile(reTxt)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile regular expression '%s'", pattern)
	}
	return re, nil
}
