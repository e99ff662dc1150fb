package line

import (
	"bufio"
	"io"

	"github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"
)

// WithBufferSize specifies the size of the read buffer placed in front of
// the input stream. Values <= 0 select DefaultBufferSize.
func WithBufferSize(n int) ReaderOption {
	return func(c *readerConfig) {
		c.bufferSize = n
	}
}

// WithMaxLineSize limits the length of a single record, not counting the
// trailing newline. Zero means unlimited.
func WithMaxLineSize(n int) ReaderOption {
	return func(c *readerConfig) {
		c.maxLineSize = n
	}
}

// NewReader creates a new Reader. The Reader takes over the input stream:
// nothing else should read from it once handed over.
func NewReader(in io.Reader, options ...ReaderOption) *Reader {
	var cfg readerConfig
	for _, o := range options {
		o(&cfg)
	}
	if cfg.bufferSize <= 0 {
		cfg.bufferSize = DefaultBufferSize
	}

	return &Reader{
		rdr:         bufio.NewReaderSize(in, cfg.bufferSize),
		maxLineSize: cfg.maxLineSize,
	}
}

// Count returns the number of records produced so far
func (r *Reader) Count() uint64 {
	return r.count
}

// Next reads the next record from the stream. The returned record shares
// its memory with the Reader, and is overwritten by the next call.
//
// io.EOF is returned once the stream is exhausted. Any other error is a
// read failure. Both are terminal: once returned, every subsequent call
// returns the same error without touching the stream.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}

	r.buf = r.buf[:0]
	for {
		chunk, err := r.rdr.ReadSlice('\n')
		r.buf = append(r.buf, chunk...)
		if err == nil {
			break
		}

		switch err {
		case bufio.ErrBufferFull:
			// line is longer than the read buffer. keep accumulating
			if r.maxLineSize > 0 && len(r.buf) > r.maxLineSize {
				return Record{}, r.fail(errors.Wrapf(ErrLineTooLong, "record %d is longer than %d bytes", r.count, r.maxLineSize))
			}
			continue
		case io.EOF:
			if len(r.buf) == 0 {
				if pdebug.Enabled {
					pdebug.Printf("line.Reader: end of stream after %d records", r.count)
				}
				r.err = io.EOF
				return Record{}, io.EOF
			}
			// last line without a newline. The next call reports io.EOF
		default:
			return Record{}, r.fail(errors.Wrapf(err, "failed to read record %d", r.count))
		}
		break
	}

	rec := Record{index: r.count, raw: r.buf}
	if r.maxLineSize > 0 && len(rec.Content()) > r.maxLineSize {
		return Record{}, r.fail(errors.Wrapf(ErrLineTooLong, "record %d is longer than %d bytes", r.count, r.maxLineSize))
	}
	r.count++
	return rec, nil
}

func (r *Reader) fail(err error) error {
	if pdebug.Enabled {
		pdebug.Printf("line.Reader: %s", err)
	}
	r.err = err
	r.buf = r.buf[:0]
	return err
}
