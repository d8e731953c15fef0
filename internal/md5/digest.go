package md5

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Digest is a finished 16-byte MD5 value. It is a plain array type:
// comparison with == is byte-wise equality and copies are independent.
type Digest [Size]byte

// Hex returns the digest as 32 lowercase hexadecimal characters.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// HexUpper returns the digest as 32 uppercase hexadecimal characters.
func (d Digest) HexUpper() string {
	return strings.ToUpper(hex.EncodeToString(d[:]))
}

// Bytes returns a copy of the raw digest bytes.
func (d Digest) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, d[:])
	return out
}

// String renders the digest in lowercase hex, the conventional md5sum form.
func (d Digest) String() string {
	return d.Hex()
}

// Parse reconstructs a Digest from its 32-character hexadecimal rendering.
// Both cases are accepted.
func Parse(s string) (Digest, error) {
	var d Digest
	if len(s) != hex.EncodedLen(Size) {
		return d, fmt.Errorf("md5: digest must be %d hex characters, got %d", hex.EncodedLen(Size), len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("md5: parse digest: %w", err)
	}
	return d, nil
}
