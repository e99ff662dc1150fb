package line

// Index returns the zero-based position of this record in the stream
func (r Record) Index() uint64 {
	return r.index
}

// Bytes returns the raw bytes of the record, including the trailing
// newline if there was one.
func (r Record) Bytes() []byte {
	return r.raw
}

// Content returns the record without its trailing newline. Only a single
// '\n' is removed; a preceding '\r' is considered part of the content.
func (r Record) Content() []byte {
	if r.HasNewline() {
		return r.raw[:len(r.raw)-1]
	}
	return r.raw
}

// HasNewline returns true if the record was terminated by '\n'. Only the
// last record of a stream may be unterminated.
func (r Record) HasNewline() bool {
	return len(r.raw) > 0 && r.raw[len(r.raw)-1] == '\n'
}

// Len returns the number of raw bytes in the record
func (r Record) Len() int {
	return len(r.raw)
}

// Clone returns a copy of the record that does not share memory with
// the Reader, and so stays valid after subsequent calls to Next.
func (r Record) Clone() Record {
	raw := make([]byte, len(r.raw))
	copy(raw, r.raw)
	return Record{index: r.index, raw: raw}
}

// String returns the content of the record as a string. The result is a
// copy.
func (r Record) String() string {
	return string(r.Content())
}
