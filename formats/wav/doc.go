// SPDX-License-Identifier: EPL-2.0

// Package wav provides a random-access WAV container loader for the sample
// cache engine.
//
// Unlike a streaming decoder, the Loader never decodes the whole file: it
// parses the RIFF/WAVE headers once on Open (using github.com/go-audio/wav
// for the chunk walk), records where the PCM sample region starts, and from
// then on serves sample-granular Seek plus bulk byte Read directly against
// the byte store. That is exactly the contract the stream.Sampler needs for
// block-indexed prefetching.
//
// # Usage
//
//	st := store.NewFile("audio.wav")
//	var l wav.Loader
//	if err := l.Open(st); err != nil {
//	    // handle error
//	}
//	defer l.Close()
//
//	l.Seek(1000)                  // position at sample 1000
//	buf := make([]byte, 4096)
//	n, _ := l.Read(buf)           // raw little-endian PCM bytes
//
// # Supported layout
//
// Any PCM WAV with a whole-byte bit depth parses; reads are clamped to the
// data chunk so trailing chunks never leak into sample data. Bit-depth
// compatibility with the engine is checked by stream.Sampler.Load, not
// here.
package wav
