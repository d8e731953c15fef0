package chksum

import (
	"io"

	"chksum/internal/md5"
)

// Writer wraps an io.Writer and hashes every byte successfully written
// through it.
type Writer struct {
	inner  io.Writer
	stream *md5.Stream
}

// NewWriter returns a Writer hashing everything written to inner.
func NewWriter(inner io.Writer) *Writer {
	return &Writer{inner: inner, stream: md5.New()}
}

// Write forwards p to the wrapped writer and feeds the bytes it accepted
// into the digest stream. Short writes hash only the accepted prefix.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.inner.Write(p)
	if n > 0 {
		w.stream.Append(p[:n])
	}
	return n, err
}

// Digest returns the MD5 of all bytes written so far without disturbing
// the live stream.
func (w *Writer) Digest() md5.Digest {
	snapshot := *w.stream
	return snapshot.Finalize()
}
