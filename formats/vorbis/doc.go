// SPDX-License-Identifier: EPL-2.0

// Package vorbis turns an Ogg Vorbis stream into a randomly accessible
// PCM store.
//
// Vorbis packets decode to a variable number of frames, so the cache
// engine cannot map sample indices to byte offsets in the compressed
// stream. Transcode decodes the whole stream once (via
// github.com/jfreymuth/oggvorbis) and writes it as a 16-bit PCM WAV into
// a byte store; the result plays through the regular formats/wav Loader
// with full random access.
package vorbis
