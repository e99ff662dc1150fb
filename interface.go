package linegrep

import (
	"io"

	"github.com/peco/linegrep/config"
)

// Kind classifies the errors that can stop a scan
type Kind int

const (
	MissingArgument Kind = iota + 1
	InvalidOption
	InvalidPattern
	ConfigError
	OpenFile
	ReadError
	WriteError
)

// Error is the single error type returned by Grep.Run. Its message is
// built from the failure that caused it.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// CLIOptions holds the command line options
type CLIOptions struct {
	OptHelp         bool             `short:"h" long:"help" description:"show this help message and exit"`
	OptVersion      bool             `long:"version" description:"print the version and exit"`
	OptRcfile       string           `long:"rcfile" description:"path to the settings file"`
	OptIgnoreCase   bool             `short:"i" long:"ignore-case" description:"match regardless of case"`
	OptSmartCase    bool             `short:"S" long:"smart-case" description:"ignore case unless the pattern has upper case characters"`
	OptFixedStrings bool             `short:"F" long:"fixed-strings" description:"treat the pattern as a literal string"`
	OptColor        config.ColorMode `long:"color" description:"when to style the output. 'auto', 'always' or 'never'"`
	OptColumn       bool             `long:"column" description:"print the display column of the first match"`
	OptCount        bool             `short:"c" long:"count" description:"only print the number of matching lines"`
	OptMaxCount     int              `short:"m" long:"max-count" description:"stop reading after this many matching lines"`
	OptOnlyMatching bool             `short:"o" long:"only-matching" description:"print each match on its own line"`
	OptMaxLineSize  int              `long:"max-line-size" description:"longest line in bytes that will be accepted (0 means no limit)"`
}

// Grep is the line search program: it parses the command line, reads
// the configuration, and scans one file.
type Grep struct {
	Argv   []string
	Stdout io.Writer
	Stderr io.Writer

	config  config.Config
	locator config.Locator
	options CLIOptions
}

// Printer renders matching lines. It writes, for each line with at
// least one match, the line index followed by the line with every match
// styled.
type Printer struct {
	out          io.Writer
	lineNumber   string // SGR sequence, empty when unstyled
	matched      string // SGR sequence, empty when unstyled
	column       bool
	onlyMatching bool
	scratch      []byte
}

// ScanResult summarizes a scan
type ScanResult struct {
	Lines        uint64
	MatchedLines uint64
	Matches      uint64
}
