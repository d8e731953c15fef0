package chksum

import (
	"fmt"
	"io"
	"os"

	"chksum/internal/md5"
)

// SumBytes returns the MD5 digest of an in-memory buffer.
func SumBytes(data []byte) md5.Digest {
	return md5.Sum(data)
}

// SumString returns the MD5 digest of the bytes of s.
func SumString(s string) md5.Digest {
	return md5.Sum([]byte(s))
}

// SumReader digests r until EOF. Bytes are fed to the stream only after a
// successful read, so a failing reader leaves nothing half-hashed.
func SumReader(r io.Reader) (md5.Digest, error) {
	s := md5.New()
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s.Append(buf[:n])
		}
		if err == io.EOF {
			return s.Finalize(), nil
		}
		if err != nil {
			return md5.Digest{}, fmt.Errorf("read source: %w", err)
		}
	}
}

// SumFile digests the contents of the file at path.
func SumFile(path string) (md5.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return md5.Digest{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	digest, err := SumReader(f)
	if err != nil {
		return md5.Digest{}, fmt.Errorf("hash %s: %w", path, err)
	}
	return digest, nil
}

// SumPath digests whatever lives at path: file contents for a regular
// file, the deterministic tree manifest for a directory.
func SumPath(path string) (md5.Digest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return md5.Digest{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return SumTree(path)
	}
	return SumFile(path)
}
