package sumdb

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"chksum/internal/chksum"
	"chksum/internal/logging"
	"chksum/internal/md5"
)

// SumFile returns the digest of the file at path, consulting the cache
// first. A nil store hashes unconditionally. Cache write failures are
// logged and swallowed: the digest is already correct, only the shortcut
// is lost.
func SumFile(ctx context.Context, store *Store, path string, logger *slog.Logger) (md5.Digest, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	if store == nil {
		return chksum.SumFile(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return md5.Digest{}, fmt.Errorf("stat %s: %w", path, err)
	}
	size := info.Size()
	mtimeNS := info.ModTime().UnixNano()

	if digest, ok, err := store.Lookup(ctx, path, size, mtimeNS); err != nil {
		logger.Warn("cache lookup failed", logging.String(logging.FieldPath, path), logging.Error(err))
	} else if ok {
		logger.Debug("cache hit", logging.String(logging.FieldPath, path))
		return digest, nil
	}

	digest, err := chksum.SumFile(path)
	if err != nil {
		return md5.Digest{}, err
	}

	entry := Entry{Path: path, Size: size, MtimeNS: mtimeNS, Digest: digest}
	if err := store.Store(ctx, entry); err != nil {
		logger.Warn("cache store failed", logging.String(logging.FieldPath, path), logging.Error(err))
	}
	return digest, nil
}
