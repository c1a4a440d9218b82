package codec

import "io"

// Writer encodes everything written to it onto an underlying writer. It
// remembers whether a word has been emitted, so consecutive writes are
// joined by a separator and the result equals Encode of their
// concatenation.
type Writer struct {
	w       io.Writer
	buf     []byte
	owed    bool
	written int64
}

// NewWriter returns a Writer that writes text to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes p. On error nothing of p is considered written.
func (e *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	e.buf = e.buf[:0]
	if e.owed {
		e.buf = append(e.buf, Separator...)
	}
	e.buf = AppendEncode(e.buf, p)
	if _, err := e.w.Write(e.buf); err != nil {
		return 0, err
	}

	e.owed = true
	e.written += int64(len(p))
	return len(p), nil
}

// Written returns the number of input bytes encoded so far.
func (e *Writer) Written() int64 {
	return e.written
}
