package md5

import (
	"encoding/binary"
	"math/bits"
)

// sines holds the 64 per-step additive constants from RFC 1321,
// floor(2^32 * abs(sin(i+1))) for step i.
var sines = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// shifts holds the per-step left-rotation amounts, four values repeated
// per round.
var shifts = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// blocks compresses every full 64-byte block of p into the state. len(p)
// must be a multiple of BlockSize.
func blocks(s *Stream, p []byte) {
	a, b, c, d := s.state[0], s.state[1], s.state[2], s.state[3]

	var m [16]uint32
	for len(p) >= BlockSize {
		for i := range m {
			m[i] = binary.LittleEndian.Uint32(p[i*4:])
		}

		aa, bb, cc, dd := a, b, c, d
		for i := 0; i < 64; i++ {
			var f uint32
			var g int
			switch {
			case i < 16:
				f = d ^ (b & (c ^ d)) // F: choice
				g = i
			case i < 32:
				f = c ^ (d & (b ^ c)) // G: choice on d
				g = (5*i + 1) % 16
			case i < 48:
				f = b ^ c ^ d // H: parity
				g = (3*i + 5) % 16
			default:
				f = c ^ (b | ^d) // I
				g = (7 * i) % 16
			}

			sum := a + f + sines[i] + m[g]
			a, d, c = d, c, b
			b = c + bits.RotateLeft32(sum, shifts[i])
		}

		// Feed-forward: fold the pre-block state back in.
		a += aa
		b += bb
		c += cc
		d += dd

		p = p[BlockSize:]
	}

	s.state[0], s.state[1], s.state[2], s.state[3] = a, b, c, d
}
