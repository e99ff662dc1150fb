package line

import (
	"bufio"
	"errors"
)

// ErrLineTooLong is returned by Reader.Next when a record exceeds the
// configured maximum line size.
var ErrLineTooLong = errors.New("line too long")

// DefaultBufferSize is the size of the bufio.Reader wrapped around the
// input stream when no size is given.
const DefaultBufferSize = 64 * 1024

// Record represents one line read from the input stream. The bytes it
// exposes belong to the Reader that produced it and are only valid until
// the next call to Reader.Next. Use Clone to keep a line around.
type Record struct {
	index uint64
	raw   []byte
}

// Reader pulls newline-terminated records from an input stream into a
// single reusable buffer.
type Reader struct {
	rdr         *bufio.Reader
	buf         []byte
	count       uint64
	err         error // sticky: io.EOF or the first read failure
	maxLineSize int
}

// ReaderOption configures a Reader.
type ReaderOption func(*readerConfig)

type readerConfig struct {
	bufferSize  int
	maxLineSize int
}
