// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audsampler/store"
)

// Loader maps a byte store holding a WAV file to its logical sample
// sequence. It implements stream.Loader. The zero value is ready to Open.
//
// A "sample" is one PCM value; a frame is NumChannels consecutive samples.
type Loader struct {
	st store.Store

	sampleRate     int
	channels       int
	bitsPerSample  int
	bytesPerSample int
	numSamples     uint32
	dataOffset     int64
}

// Open binds the loader to a store and parses the container metadata. The
// store is left positioned at the start of the sample region.
func (l *Loader) Open(st store.Store) error {
	if st == nil {
		return ErrNotOpen
	}
	if err := st.Open(); err != nil {
		return fmt.Errorf("%w", err)
	}
	if _, err := st.Seek(0, io.SeekStart); err != nil {
		st.Close()
		return fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(st)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		st.Close()
		return ErrNotWavFile
	}
	if dec.BitDepth == 0 || dec.BitDepth%8 != 0 {
		st.Close()
		return fmt.Errorf("%w: %d bits", ErrBadBitDepth, dec.BitDepth)
	}
	if err := dec.FwdToPCM(); err != nil {
		st.Close()
		return fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}

	// FwdToPCM leaves the store right after the data chunk header; that
	// offset anchors all sample-to-byte translation.
	offset, err := st.Position()
	if err != nil {
		st.Close()
		return fmt.Errorf("%w", err)
	}

	l.st = st
	l.sampleRate = int(dec.SampleRate)
	l.channels = int(dec.NumChans)
	l.bitsPerSample = int(dec.BitDepth)
	l.bytesPerSample = l.bitsPerSample / 8
	l.dataOffset = offset
	l.numSamples = uint32(dec.PCMLen() / int64(l.bytesPerSample))

	return nil
}

// Close releases the store binding.
func (l *Loader) Close() {
	if l.st != nil {
		l.st.Close()
		l.st = nil
	}
}

func (l *Loader) SampleRate() int    { return l.sampleRate }
func (l *Loader) NumChannels() int   { return l.channels }
func (l *Loader) BitsPerSample() int { return l.bitsPerSample }
func (l *Loader) NumSamples() uint32 { return l.numSamples }

// FrameAlignment is the byte size of one frame of samples.
func (l *Loader) FrameAlignment() int { return l.channels * l.bytesPerSample }

// FilePositionForSample reports the byte offset of a sample index, clamped
// to the sample region.
func (l *Loader) FilePositionForSample(sample uint32) int64 {
	if sample > l.numSamples {
		sample = l.numSamples
	}
	return l.dataOffset + int64(sample)*int64(l.bytesPerSample)
}

// Seek positions the next Read at the given sample index.
func (l *Loader) Seek(sample uint32) bool {
	if l.st == nil {
		return false
	}
	_, err := l.st.Seek(l.FilePositionForSample(sample), io.SeekStart)
	return err == nil
}

// Read transfers raw sample bytes from the current position, clamped to the
// end of the data chunk so trailing container chunks never appear as
// samples.
func (l *Loader) Read(p []byte) (int, error) {
	if l.st == nil {
		return 0, ErrNotOpen
	}

	pos, err := l.st.Position()
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	end := l.dataOffset + int64(l.numSamples)*int64(l.bytesPerSample)
	if pos >= end {
		return 0, io.EOF
	}
	if rest := end - pos; int64(len(p)) > rest {
		p = p[:rest]
	}

	return l.st.Read(p)
}
