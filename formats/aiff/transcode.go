// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audsampler/store"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Transcode decodes the AIFF stream from rs and writes it as 16-bit PCM
// WAV into dst, leaving dst rewound to the beginning. Only 16-bit source
// material is accepted; other depths return ErrOnlyPCM16bitSupported.
func Transcode(rs io.ReadSeeker, dst store.Store) error {
	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return fmt.Errorf("%w: %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil {
		return ErrUnsupportedAiffLayout
	}

	return transcode(dec, format, dst)
}

// ToMemory is the common case: transcode into a fresh in-memory store.
func ToMemory(rs io.ReadSeeker) (*store.Memory, error) {
	mem := store.NewMemory()
	if err := Transcode(rs, mem); err != nil {
		return nil, err
	}
	return mem, nil
}

func transcode(dec aiffReader, format *goaudio.Format, dst store.Store) error {
	if err := dst.Open(); err != nil {
		return fmt.Errorf("%w", err)
	}

	enc := gowav.NewEncoder(dst, format.SampleRate, 16, format.NumChannels, 1)

	ibuf := &goaudio.IntBuffer{
		Format:         format,
		SourceBitDepth: 16,
		Data:           make([]int, 4096*format.NumChannels),
	}

	for {
		n, err := dec.PCMBuffer(ibuf)
		if n > 0 {
			ibuf.Data = ibuf.Data[:n]
			if werr := enc.Write(ibuf); werr != nil {
				return fmt.Errorf("%w", werr)
			}
			ibuf.Data = ibuf.Data[:cap(ibuf.Data)]
		}
		if err != nil && err != io.EOF {
			return fmt.Errorf("%w", err)
		}
		if n < len(ibuf.Data) || err == io.EOF {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	if _, err := dst.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
