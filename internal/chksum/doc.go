// Package chksum adapts concrete byte sources to the md5 streaming core.
//
// It owns the I/O side of digest computation: in-memory buffers, readers,
// files, whole paths, and directory trees all funnel into the same
// Append/Finalize pair. I/O failures are reported to the caller and never
// advance a stream with bytes that were not successfully read.
package chksum
