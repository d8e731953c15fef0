package sumdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"chksum/internal/config"
	"chksum/internal/md5"
)

// Entry is one cached digest with the file identity it was computed for.
type Entry struct {
	Path       string
	Size       int64
	MtimeNS    int64
	Digest     md5.Digest
	ComputedAt time.Time
}

// Stats summarizes cache contents.
type Stats struct {
	Entries int64
	Path    string
}

// ErrLocked indicates another chksum process holds the cache lock.
var ErrLocked = errors.New("digest cache is locked by another process")

// Store manages digest persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the cache database, acquiring the
// sibling lock file first.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.Cache.Path
	if dbPath == "" {
		return nil, errors.New("cache path is not configured")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	lock := flock.New(dbPath + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lock.Path())
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close closes the database and releases the cache lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var firstErr error
	if s.db != nil {
		firstErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Path reports the database file location.
func (s *Store) Path() string {
	return s.path
}

// Lookup returns the cached digest for path if the recorded size and
// mtime still match. A stale or absent row is a plain miss, not an error.
func (s *Store) Lookup(ctx context.Context, path string, size, mtimeNS int64) (md5.Digest, bool, error) {
	var hexDigest string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT digest FROM sums WHERE path = ? AND size = ? AND mtime_ns = ?`,
		path, size, mtimeNS,
	).Scan(&hexDigest)
	if errors.Is(err, sql.ErrNoRows) {
		return md5.Digest{}, false, nil
	}
	if err != nil {
		return md5.Digest{}, false, fmt.Errorf("query cache: %w", err)
	}

	digest, err := md5.Parse(hexDigest)
	if err != nil {
		// A corrupt row must not poison the caller; treat it as a miss.
		return md5.Digest{}, false, nil
	}
	return digest, true, nil
}

// Store upserts a digest for the given file identity.
func (s *Store) Store(ctx context.Context, entry Entry) error {
	if entry.Path == "" {
		return errors.New("cache entry path cannot be empty")
	}
	computedAt := entry.ComputedAt
	if computedAt.IsZero() {
		computedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sums (path, size, mtime_ns, digest, computed_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(path) DO UPDATE SET
            size = excluded.size,
            mtime_ns = excluded.mtime_ns,
            digest = excluded.digest,
            computed_at = excluded.computed_at`,
		entry.Path,
		entry.Size,
		entry.MtimeNS,
		entry.Digest.Hex(),
		computedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}
	return nil
}

// Stats reports how many digests the cache holds.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM sums`).Scan(&count); err != nil {
		return Stats{}, fmt.Errorf("count cache entries: %w", err)
	}
	return Stats{Entries: count, Path: s.path}, nil
}

// Clear removes every cached digest.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sums`)
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}
