package md5

import (
	"bytes"
	"strings"
	"testing"
)

func TestDigestRenderings(t *testing.T) {
	d := Sum([]byte("abc"))

	lower := d.Hex()
	upper := d.HexUpper()
	if lower != "900150983cd24fb0d6963f7d28e17f72" {
		t.Fatalf("Hex = %s", lower)
	}
	if upper != strings.ToUpper(lower) {
		t.Fatalf("HexUpper = %s, want case-flipped %s", upper, lower)
	}
	if d.String() != lower {
		t.Fatalf("String = %s, want %s", d.String(), lower)
	}
	if len(d.Bytes()) != Size {
		t.Fatalf("Bytes length = %d", len(d.Bytes()))
	}
}

func TestBytesReturnsCopy(t *testing.T) {
	d := Sum([]byte("abc"))
	raw := d.Bytes()
	raw[0] ^= 0xFF
	if !bytes.Equal(d.Bytes(), Sum([]byte("abc")).Bytes()) {
		t.Fatal("mutating Bytes() result changed the digest")
	}
}

func TestParseRoundTrip(t *testing.T) {
	d := Sum([]byte("round trip"))

	fromLower, err := Parse(d.Hex())
	if err != nil {
		t.Fatalf("Parse lowercase: %v", err)
	}
	fromUpper, err := Parse(d.HexUpper())
	if err != nil {
		t.Fatalf("Parse uppercase: %v", err)
	}
	if fromLower != d || fromUpper != d {
		t.Fatalf("round trip mismatch: %s / %s, want %s", fromLower, fromUpper, d)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"900150983cd24fb0d6963f7d28e17f7",    // 31 chars
		"900150983cd24fb0d6963f7d28e17f72ab", // 34 chars
		"900150983cd24fb0d6963f7d28e17g72",   // non-hex
	}
	for _, in := range bad {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}
