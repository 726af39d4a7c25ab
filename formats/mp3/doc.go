// SPDX-License-Identifier: EPL-2.0

// Package mp3 turns an MP3 stream into a randomly accessible PCM store.
//
// MP3 cannot be seeked sample-accurately without decoding, so the cache
// engine cannot prefetch from it directly. Transcode decodes the whole
// stream once (via github.com/hajimehoshi/go-mp3) and writes it as a 16-bit
// PCM WAV into a byte store; the result plays through the regular
// formats/wav Loader with full random access.
//
//	f, _ := os.Open("song.mp3")
//	mem, err := mp3.ToMemory(f)
//	if err != nil {
//	    // handle error
//	}
//
//	var l wav.Loader
//	sampler.Load(&l, mem)
package mp3
