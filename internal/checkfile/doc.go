// Package checkfile renders and parses md5sum-compatible checksum files:
// one "<hex digest>  <path>" entry per line, with blank lines and
// #-comments ignored on input. The CLI writes this format from `chksum sum`
// and consumes it in `chksum verify`.
package checkfile
