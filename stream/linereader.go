// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package stream

import (
	"bytes"
	"io"
)

// MaxChunk bounds a single read from the underlying stream.
const MaxChunk = 2048

// Availabler is implemented by streams that can report how many bytes are
// waiting to be read.
type Availabler interface {
	Available() int
}

// LineReader reassembles newline terminated frames from a stream that
// delivers bytes in arbitrary chunks. Bytes after the last newline are kept
// for the next call.
type LineReader struct {
	r     io.Reader
	buf   []byte
	chunk []byte
	err   error
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: r, chunk: make([]byte, MaxChunk)}
}

// ReadLine blocks until a complete frame, including its trailing '\n', is
// available. A read error is returned once every complete frame read before
// it has been handed out; a partial frame stays buffered.
func (l *LineReader) ReadLine() ([]byte, error) {
	for {
		if i := bytes.IndexByte(l.buf, '\n'); i >= 0 {
			frame := make([]byte, i+1)
			copy(frame, l.buf[:i+1])
			l.buf = l.buf[i+1:]
			return frame, nil
		}

		if l.err != nil {
			err := l.err
			l.err = nil
			return nil, err
		}

		n, err := l.r.Read(l.chunk[:l.chunkSize()])
		l.buf = append(l.buf, l.chunk[:n]...)
		l.err = err
	}
}

// Remainder returns the buffered bytes that do not yet form a frame.
func (l *LineReader) Remainder() []byte {
	return append([]byte(nil), l.buf...)
}

func (l *LineReader) chunkSize() int {
	a, ok := l.r.(Availabler)
	if !ok {
		return MaxChunk
	}
	n := a.Available()
	if n < 1 {
		return 1
	}
	if n > MaxChunk {
		return MaxChunk
	}
	return n
}
