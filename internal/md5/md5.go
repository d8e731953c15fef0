package md5

// Size is the length of an MD5 digest in bytes.
const Size = 16

// BlockSize is the size of the compression unit in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
)

// Stream is an in-progress MD5 computation. Input of any length and
// chunking is fed through Append (or Write); Finalize pads, compresses the
// remaining tail, and returns the Digest. The zero value is not usable;
// construct streams with New.
type Stream struct {
	state [4]uint32
	tail  [BlockSize]byte
	nt    int    // bytes buffered in tail, always < BlockSize
	count uint64 // total input bytes observed
	done  bool
}

// New returns a Stream initialized to the standard MD5 IV.
func New() *Stream {
	s := new(Stream)
	s.Reset()
	return s
}

// Reset reinitializes the stream, discarding all input fed so far. A
// finalized stream becomes usable again after Reset.
func (s *Stream) Reset() {
	s.state[0] = init0
	s.state[1] = init1
	s.state[2] = init2
	s.state[3] = init3
	s.nt = 0
	s.count = 0
	s.done = false
}

// Append feeds p into the stream. Calling Append with any partition of an
// input produces the same state as a single call with the concatenation;
// empty input is a no-op. Append never fails.
func (s *Stream) Append(p []byte) {
	if s.done {
		panic("md5: Append on finalized Stream without Reset")
	}
	s.count += uint64(len(p))

	if s.nt > 0 {
		n := copy(s.tail[s.nt:], p)
		s.nt += n
		if s.nt == BlockSize {
			blocks(s, s.tail[:])
			s.nt = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		blocks(s, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		s.nt = copy(s.tail[:], p)
	}
}

// Write makes a Stream an io.Writer so sources can be piped in with
// io.Copy. The returned error is always nil.
func (s *Stream) Write(p []byte) (int, error) {
	s.Append(p)
	return len(p), nil
}

// Finalize consumes the stream and returns its digest. It applies the RFC
// 1321 padding rule: a 0x80 byte, zeros up to 56 mod 64, then the 64-bit
// little-endian bit length, which closes out exactly one or two blocks.
//
// Finalize is destructive. Calling it twice on the same stream without an
// intervening Reset is a programming error and panics; it never silently
// returns a second value.
func (s *Stream) Finalize() Digest {
	if s.done {
		panic("md5: Finalize called twice on the same Stream")
	}

	count := s.count
	var pad [BlockSize + 8]byte
	pad[0] = 0x80
	if rem := count % BlockSize; rem < 56 {
		s.Append(pad[:56-rem])
	} else {
		s.Append(pad[:BlockSize+56-rem])
	}

	bitLen := count << 3
	var enc [8]byte
	for i := range enc {
		enc[i] = byte(bitLen >> (8 * i))
	}
	s.Append(enc[:])

	if s.nt != 0 {
		panic("md5: padding did not close the final block")
	}
	s.done = true

	var d Digest
	for i, w := range s.state {
		d[i*4] = byte(w)
		d[i*4+1] = byte(w >> 8)
		d[i*4+2] = byte(w >> 16)
		d[i*4+3] = byte(w >> 24)
	}
	return d
}

// Sum returns the MD5 digest of data in one call.
func Sum(data []byte) Digest {
	s := New()
	s.Append(data)
	return s.Finalize()
}
