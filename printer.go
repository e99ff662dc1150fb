package linegrep

import (
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/peco/linegrep/config"
	"github.com/peco/linegrep/internal/ansi"
	"github.com/peco/linegrep/match"
)

// PrinterOption configures a Printer
type PrinterOption func(*Printer)

// WithStyles styles the line index and the matches. Without this option
// the output is plain text.
func WithStyles(ss config.StyleSet) PrinterOption {
	return func(p *Printer) {
		p.lineNumber = ansi.Sequence(ansi.Attribute(ss.LineNumber.Fg), ansi.Attribute(ss.LineNumber.Bg))
		p.matched = ansi.Sequence(ansi.Attribute(ss.Matched.Fg), ansi.Attribute(ss.Matched.Bg))
	}
}

// WithColumn prints the 1-based display column of the first match after
// the line index
func WithColumn(v bool) PrinterOption {
	return func(p *Printer) {
		p.column = v
	}
}

// WithOnlyMatching prints every non-empty match on a line of its own
// instead of the whole line
func WithOnlyMatching(v bool) PrinterOption {
	return func(p *Printer) {
		p.onlyMatching = v
	}
}

// NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer, options ...PrinterOption) *Printer {
	p := &Printer{out: out}
	for _, o := range options {
		o(p)
	}
	return p
}

// PrintLine consumes every match from seg, which must have been reset to
// text, and prints the line if there was at least one. It returns the
// number of matches found.
func (p *Printer) PrintLine(index uint64, text []byte, seg *match.Segmenter) (int, error) {
	if p.onlyMatching {
		return p.printMatches(index, text, seg)
	}

	var count int
	prev := 0
	for {
		span, ok := seg.Next()
		if !ok {
			break
		}
		if count == 0 {
			if err := p.prefix(index, text, span); err != nil {
				return count, err
			}
		}
		count++

		if err := p.write(text[prev:span.Start]); err != nil {
			return count, err
		}
		if err := p.paint(p.matched, span.In(text)); err != nil {
			return count, err
		}
		prev = span.End
	}

	if count == 0 {
		return 0, nil
	}

	if err := p.write(text[prev:]); err != nil {
		return count, err
	}
	return count, p.write([]byte{'\n'})
}

func (p *Printer) printMatches(index uint64, text []byte, seg *match.Segmenter) (int, error) {
	var count int
	for {
		span, ok := seg.Next()
		if !ok {
			return count, nil
		}
		count++
		if span.IsEmpty() {
			continue
		}

		if err := p.prefix(index, text, span); err != nil {
			return count, err
		}
		if err := p.paint(p.matched, span.In(text)); err != nil {
			return count, err
		}
		if err := p.write([]byte{'\n'}); err != nil {
			return count, err
		}
	}
}

// PrintCount prints the number of matching lines
func (p *Printer) PrintCount(n uint64) error {
	p.scratch = strconv.AppendUint(p.scratch[:0], n, 10)
	p.scratch = append(p.scratch, '\n')
	return p.write(p.scratch)
}

// prefix writes "<index>: ", and "<column>: " if enabled
func (p *Printer) prefix(index uint64, text []byte, span match.Span) error {
	p.scratch = strconv.AppendUint(p.scratch[:0], index, 10)
	if err := p.paint(p.lineNumber, p.scratch); err != nil {
		return err
	}
	if err := p.write([]byte(": ")); err != nil {
		return err
	}

	if !p.column {
		return nil
	}
	col := runewidth.StringWidth(string(text[:span.Start])) + 1
	p.scratch = strconv.AppendInt(p.scratch[:0], int64(col), 10)
	p.scratch = append(p.scratch, ':', ' ')
	return p.write(p.scratch)
}

func (p *Printer) paint(seq string, b []byte) error {
	if seq == "" || len(b) == 0 {
		return p.write(b)
	}
	if _, err := io.WriteString(p.out, seq); err != nil {
		return err
	}
	if err := p.write(b); err != nil {
		return err
	}
	_, err := io.WriteString(p.out, ansi.Reset)
	return err
}

func (p *Printer) write(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	_, err := p.out.Write(b)
	return err
}
