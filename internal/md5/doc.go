// Package md5 implements the MD5 message digest (RFC 1321) as a small
// streaming core: a Stream accumulates input in any chunking, and Finalize
// pads, compresses the trailing block(s), and yields a 16-byte Digest.
//
// MD5 is cryptographically broken; this package exists for checksumming and
// interoperability with md5sum-style tooling, not for security.
//
// A Stream is owned by one computation at a time and is not safe for
// concurrent use. Independent digests should use independent streams.
package md5
