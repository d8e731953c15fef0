package chksum

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	emptyMD5 = "d41d8cd98f00b204e9800998ecf8427e"
	abcMD5   = "900150983cd24fb0d6963f7d28e17f72"
	helloMD5 = "6f5902ac237024bdd0c176cb93063dc4" // "hello world\n"
)

func TestSumBytesAndString(t *testing.T) {
	if got := SumBytes(nil).Hex(); got != emptyMD5 {
		t.Errorf("SumBytes(nil) = %s", got)
	}
	if got := SumBytes([]byte("abc")).Hex(); got != abcMD5 {
		t.Errorf("SumBytes(abc) = %s", got)
	}
	if got := SumString("abc").Hex(); got != abcMD5 {
		t.Errorf("SumString(abc) = %s", got)
	}
}

func TestSumReader(t *testing.T) {
	got, err := SumReader(strings.NewReader("hello world\n"))
	if err != nil {
		t.Fatalf("SumReader: %v", err)
	}
	if got.Hex() != helloMD5 {
		t.Fatalf("SumReader = %s, want %s", got, helloMD5)
	}
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestSumReaderPropagatesError(t *testing.T) {
	wantErr := errors.New("disk fell over")
	_, err := SumReader(&failingReader{data: []byte("partial"), err: wantErr})
	if !errors.Is(err, wantErr) {
		t.Fatalf("SumReader error = %v, want wrapped %v", err, wantErr)
	}
}

func TestSumFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, []byte("hello world\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := SumFile(path)
	if err != nil {
		t.Fatalf("SumFile: %v", err)
	}
	if got.Hex() != helloMD5 {
		t.Fatalf("SumFile = %s, want %s", got, helloMD5)
	}
}

func TestSumFileMissing(t *testing.T) {
	if _, err := SumFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSumPathDispatch(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(file, []byte("abc"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fromFile, err := SumPath(file)
	if err != nil {
		t.Fatalf("SumPath file: %v", err)
	}
	if fromFile.Hex() != abcMD5 {
		t.Fatalf("SumPath(file) = %s", fromFile)
	}

	fromDir, err := SumPath(dir)
	if err != nil {
		t.Fatalf("SumPath dir: %v", err)
	}
	fromTree, err := SumTree(dir)
	if err != nil {
		t.Fatalf("SumTree: %v", err)
	}
	if fromDir != fromTree {
		t.Fatalf("SumPath(dir) = %s, SumTree = %s", fromDir, fromTree)
	}
}

func TestReaderHashesWhatItCarries(t *testing.T) {
	r := NewReader(strings.NewReader("hello world\n"))
	var sink bytes.Buffer
	if _, err := sink.ReadFrom(r); err != nil {
		t.Fatalf("read through: %v", err)
	}
	if sink.String() != "hello world\n" {
		t.Fatalf("payload corrupted: %q", sink.String())
	}
	if got := r.Digest().Hex(); got != helloMD5 {
		t.Fatalf("Reader digest = %s, want %s", got, helloMD5)
	}
}

func TestReaderDigestIsRepeatable(t *testing.T) {
	r := NewReader(strings.NewReader("abc"))
	buf := make([]byte, 1)
	if _, err := r.Read(buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	first := r.Digest()
	second := r.Digest()
	if first != second {
		t.Fatalf("mid-stream digests differ: %s vs %s", first, second)
	}

	if _, err := io.Copy(io.Discard, r); err != nil {
		t.Fatalf("drain: %v", err)
	}
	if got := r.Digest().Hex(); got != abcMD5 {
		t.Fatalf("final digest = %s, want %s", got, abcMD5)
	}
}

func TestWriterHashesWhatItCarries(t *testing.T) {
	var sink bytes.Buffer
	w := NewWriter(&sink)
	if _, err := w.Write([]byte("hello ")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := w.Write([]byte("world\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if sink.String() != "hello world\n" {
		t.Fatalf("payload corrupted: %q", sink.String())
	}
	if got := w.Digest().Hex(); got != helloMD5 {
		t.Fatalf("Writer digest = %s, want %s", got, helloMD5)
	}
}
