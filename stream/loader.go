// SPDX-License-Identifier: EPL-2.0

package stream

import "github.com/ik5/audsampler/store"

// Loader is the container-decoder contract the sampler consumes. A Loader
// maps a byte store to a logical sequence of PCM samples: it parses the
// container metadata on Open and afterwards provides sample-granular
// positioning plus bulk byte reads from the sample region.
//
// Throughout this package a "sample" is one PCM value; a frame is
// NumChannels consecutive samples. NumSamples, Seek and
// FilePositionForSample all count individual sample values.
type Loader interface {
	// Open binds the loader to a byte store and parses the container.
	// The error distinguishes an unreadable container from an unsupported
	// layout; the sampler surfaces both as ErrBadFile.
	Open(st store.Store) error
	// Close releases the store binding.
	Close()

	SampleRate() int
	NumChannels() int
	BitsPerSample() int
	// FrameAlignment is the byte size of one frame.
	FrameAlignment() int
	// NumSamples is the total number of sample values in the stream.
	NumSamples() uint32

	// FilePositionForSample reports the byte offset of the given sample
	// index, clamped to the valid range.
	FilePositionForSample(sample uint32) int64
	// Seek positions the next Read at the given sample index.
	Seek(sample uint32) bool
	// Read transfers raw sample bytes from the current position. A short
	// read is not fatal; it only means no more data was available on this
	// attempt.
	Read(p []byte) (int, error)
}
