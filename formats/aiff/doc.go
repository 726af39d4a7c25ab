// SPDX-License-Identifier: EPL-2.0

// Package aiff turns an AIFF stream into a randomly accessible PCM store.
//
// AIFF stores samples big-endian, so the cache engine cannot read it
// directly even though the container is uncompressed. Transcode decodes
// the stream once (via github.com/go-audio/aiff) and writes it as a
// little-endian 16-bit PCM WAV into a byte store; the result plays
// through the regular formats/wav Loader with full random access.
package aiff
