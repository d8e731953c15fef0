package chksum

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"chksum/internal/md5"
)

// SumTree digests a directory as a deterministic manifest: every regular
// file below root, identified by its slash-separated path relative to
// root, sorted lexicographically. Each entry contributes
//
//	rel NUL size NUL contents NUL
//
// to a single stream. Renaming, resizing, or rewriting any file changes
// the digest; traversal order of the underlying filesystem does not. An
// empty tree digests like empty input.
func SumTree(root string) (md5.Digest, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return md5.Digest{}, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(files)

	s := md5.New()
	for _, rel := range files {
		if err := appendTreeEntry(s, root, rel); err != nil {
			return md5.Digest{}, err
		}
	}
	return s.Finalize(), nil
}

func appendTreeEntry(s *md5.Stream, root, rel string) error {
	abs := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("stat %s: %w", rel, err)
	}

	s.Append([]byte(rel))
	s.Append([]byte{0})
	s.Append([]byte(strconv.FormatInt(info.Size(), 10)))
	s.Append([]byte{0})

	f, err := os.Open(abs)
	if err != nil {
		return fmt.Errorf("open %s: %w", rel, err)
	}
	defer f.Close()
	if _, err := io.Copy(s, f); err != nil {
		return fmt.Errorf("hash %s: %w", rel, err)
	}

	s.Append([]byte{0})
	return nil
}
