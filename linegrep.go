// Package linegrep implements a search tool that prints the lines of a
// file that match a regular expression, with every match highlighted.
package linegrep

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lestrrat-go/pdebug"
	"github.com/peco/linegrep/config"
	"github.com/peco/linegrep/internal/util"
	"github.com/peco/linegrep/line"
	"github.com/peco/linegrep/match"
	"github.com/pkg/errors"
)

const version = "v0.1.0"

// cancelCheckInterval is the number of lines read between checks of the
// context passed to Scan
const cancelCheckInterval = 1000

// New creates a Grep that reads its arguments from os.Args
func New() *Grep {
	return &Grep{
		Argv:    os.Args[1:],
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		locator: config.DefaultConfigLocator,
	}
}

// Run parses the command line, then scans the named file and prints the
// matching lines. Arguments are validated and the pattern is compiled
// before the file is opened.
func (g *Grep) Run(ctx context.Context) (err error) {
	if pdebug.Enabled {
		g := pdebug.Marker("Grep.Run").BindError(&err)
		defer g.End()
	}

	args, err := g.options.parse(g.Argv)
	if err != nil {
		g.Stderr.Write(g.options.help())
		return err
	}

	if g.options.OptHelp {
		g.Stdout.Write(g.options.help())
		return nil
	}

	if g.options.OptVersion {
		fmt.Fprintf(g.Stdout, "linegrep: %s\n", version)
		return nil
	}

	pattern, err := expectArg(&args, "pattern")
	if err != nil {
		g.Stderr.Write(g.options.help())
		return err
	}

	path, err := expectArg(&args, "path")
	if err != nil {
		g.Stderr.Write(g.options.help())
		return err
	}

	if err := g.readConfig(g.options.OptRcfile); err != nil {
		return Wrap(ConfigError, err)
	}

	m, err := match.Compile(pattern, g.CompileOptions()...)
	if err != nil {
		return Wrap(InvalidPattern, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return Wrap(OpenFile, err)
	}
	defer f.Close()

	_, err = g.Scan(ctx, f, m)
	return err
}

func (g *Grep) readConfig(filename string) error {
	if err := g.config.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize config")
	}

	if filename == "" {
		locator := g.locator
		if locator == nil {
			locator = config.DefaultConfigLocator
		}
		file, err := config.LocateRcfile(locator)
		if err != nil {
			if errors.Is(err, config.ErrRcfileNotFound) {
				return nil
			}
			return errors.Wrap(err, "failed to locate config file")
		}
		filename = file
	}

	if pdebug.Enabled {
		pdebug.Printf("reading config from %s", filename)
	}

	return errors.Wrapf(g.config.ReadFilename(filename), "failed to read config file %s", filename)
}

// Styled returns true if the output should carry terminal styles
func (g *Grep) Styled() bool {
	mode := g.options.OptColor
	if mode == "" {
		mode = g.config.Color
	}

	switch mode {
	case config.ColorModeAlways:
		return true
	case config.ColorModeNever:
		return false
	default:
		return util.IsTty(g.Stdout)
	}
}

func (g *Grep) readerOptions() []line.ReaderOption {
	var options []line.ReaderOption
	if n := g.config.BufferSize; n > 0 {
		options = append(options, line.WithBufferSize(n))
	}

	maxLineSize := g.options.OptMaxLineSize
	if maxLineSize == 0 {
		maxLineSize = g.config.MaxLineSize
	}
	if maxLineSize > 0 {
		options = append(options, line.WithMaxLineSize(maxLineSize))
	}
	return options
}

func (g *Grep) printerOptions() []PrinterOption {
	var options []PrinterOption
	if g.Styled() {
		options = append(options, WithStyles(g.config.Style))
	}
	options = append(options,
		WithColumn(g.options.OptColumn || g.config.Column),
		WithOnlyMatching(g.options.OptOnlyMatching),
	)
	return options
}

// Scan reads in one line at a time and prints every line that m matches.
// It stops at the end of input, at the first read or write error, or
// once --max-count matching lines have been seen. Output written before
// a failure is kept.
func (g *Grep) Scan(ctx context.Context, in io.Reader, m match.Matcher) (result ScanResult, err error) {
	if pdebug.Enabled {
		g := pdebug.Marker("Grep.Scan").BindError(&err)
		defer g.End()
	}

	out := bufio.NewWriter(g.Stdout)
	defer func() {
		if ferr := out.Flush(); ferr != nil && err == nil {
			err = Wrap(WriteError, ferr)
		}
		if pdebug.Enabled {
			pdebug.Printf("scanned %d lines, %d matched lines, %d matches", result.Lines, result.MatchedLines, result.Matches)
		}
	}()

	rdr := line.NewReader(in, g.readerOptions()...)
	p := NewPrinter(out, g.printerOptions()...)
	seg := match.NewSegmenter(m, nil)
	maxCount := uint64(g.options.OptMaxCount)

	for {
		if result.Lines%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return result, Wrap(ReadError, ctx.Err())
			default:
			}
		}

		if maxCount > 0 && result.MatchedLines >= maxCount {
			break
		}

		rec, err := rdr.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return result, Wrap(ReadError, err)
		}
		result.Lines++

		text := rec.Content()
		seg.Reset(text)

		if g.options.OptCount {
			var n uint64
			for _, ok := seg.Next(); ok; _, ok = seg.Next() {
				n++
			}
			if n > 0 {
				result.MatchedLines++
				result.Matches += n
			}
			continue
		}

		n, err := p.PrintLine(rec.Index(), text, seg)
		if err != nil {
			return result, Wrap(WriteError, err)
		}
		if n > 0 {
			result.MatchedLines++
			result.Matches += uint64(n)
		}
	}

	if g.options.OptCount {
		if err := p.PrintCount(result.MatchedLines); err != nil {
			return result, Wrap(WriteError, err)
		}
	}
	return result, nil
}
