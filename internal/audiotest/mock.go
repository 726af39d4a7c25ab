// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds small in-memory WAV fixtures for tests.
package audiotest

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audsampler/store"
)

// Pattern returns n deterministic 16-bit samples, so tests can verify any
// slice of a stream without golden files.
func Pattern(n int) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(i%1000) - 500
	}
	return samples
}

// WAVStore encodes samples as a PCM WAV file inside a Memory store and
// rewinds it, ready to be handed to a loader.
func WAVStore(sampleRate, channels, bitDepth int, samples []int16) (*store.Memory, error) {
	mem := store.NewMemory()
	if err := mem.Open(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	enc := gowav.NewEncoder(mem, sampleRate, bitDepth, channels, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
		Data:           data,
	}
	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if _, err := mem.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return mem, nil
}

// PCM16WAV is the common case: 16-bit mono WAV with patterned samples.
func PCM16WAV(sampleRate, numSamples int) (*store.Memory, error) {
	return WAVStore(sampleRate, 1, 16, Pattern(numSamples))
}
