// Package sumdb persists previously computed file digests in SQLite so
// unchanged files are not re-hashed. A cache entry is trusted only when the
// file's size and modification time both still match; anything else is a
// miss. A flock beside the database serializes mutation across processes.
package sumdb
