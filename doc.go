// SPDX-License-Identifier: EPL-2.0

// Package audsampler streams 16-bit PCM audio through a fixed-memory
// two-tier cache, so playback from slow random-access storage never
// blocks the consumer.
//
// The engine lives in the stream subpackage: a Sampler holds a small
// intro buffer plus a block-indexed ring cache and exposes a
// non-blocking ReadSamples path for the consumer and a blocking Prime
// path for a background prefetcher. This package ties the engine to
// byte stores and container formats.
//
// # Supported Formats
//
// The default registry opens the following formats:
//   - WAV (PCM 16-bit) via formats/wav, read in place
//   - MP3 via formats/mp3, transcoded once to an in-memory WAV
//   - Ogg Vorbis via formats/vorbis, transcoded once to an in-memory WAV
//   - AIFF (PCM 16-bit) via formats/aiff, transcoded once to an in-memory WAV
//
// # Quick Start
//
// The simplest way to play a file is OpenFile:
//
//	s, err := audsampler.OpenFile("song.wav", stream.DefaultConfig())
//	if err != nil {
//	    // handle error
//	}
//	defer s.Unload()
//
//	// Consumer side: never blocks, returns what the cache holds.
//	buf := make([]int16, 512)
//	n := s.ReadSamples(buf)
//
//	// Prefetch side: blocks on storage, run it elsewhere.
//	for s.Prime() {
//	}
//
// The driver subpackage runs both sides from timer loops when no real
// audio backend is wired up.
//
// # Byte Stores
//
// Sources are abstracted behind store.Store. The store subpackage ships
// three implementations:
//
//	st := store.NewFile("song.wav")  // plain file I/O
//	st := store.NewMemoryBytes(data) // in-memory bytes
//	st := store.NewMmap("song.wav")  // read-only memory mapping
//
// # Custom Formats
//
// Register an Opener to plug another container format into OpenFile:
//
//	r := audsampler.DefaultRegistry()
//	r.Register("flac", openFlac)
package audsampler
