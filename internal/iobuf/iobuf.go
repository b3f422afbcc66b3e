// Package iobuf provides small stream adapters shared by the codec
// consumers.
package iobuf

import "io"

// CountingWriter wraps a writer and tracks how many bytes passed through.
// Write callbacks read the count to correlate value positions with byte
// offsets during a bulk serialize.
type CountingWriter struct {
	w io.Writer
	n int64
}

func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (cw *CountingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// BytesWritten returns the number of bytes written so far.
func (cw *CountingWriter) BytesWritten() int64 { return cw.n }
