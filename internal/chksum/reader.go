package chksum

import (
	"io"

	"chksum/internal/md5"
)

// Reader wraps an io.Reader and hashes every byte that passes through it,
// so callers can consume a stream and obtain its digest in one pass.
type Reader struct {
	inner  io.Reader
	stream *md5.Stream
}

// NewReader returns a Reader hashing everything read from inner.
func NewReader(inner io.Reader) *Reader {
	return &Reader{inner: inner, stream: md5.New()}
}

// Read reads from the wrapped reader and feeds the bytes actually read
// into the digest stream before returning.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if n > 0 {
		r.stream.Append(p[:n])
	}
	return n, err
}

// Digest returns the MD5 of all bytes read so far. The live stream is
// left untouched, so the caller may keep reading and ask again.
func (r *Reader) Digest() md5.Digest {
	snapshot := *r.stream
	return snapshot.Finalize()
}
