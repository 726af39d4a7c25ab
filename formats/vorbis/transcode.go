// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audsampler/store"
	"github.com/ik5/audsampler/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Transcode decodes the Ogg Vorbis stream from r and writes it as 16-bit
// PCM WAV into dst, leaving dst rewound to the beginning.
func Transcode(r io.Reader, dst store.Store) error {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return transcode(dec, dst)
}

// ToMemory is the common case: transcode into a fresh in-memory store.
func ToMemory(r io.Reader) (*store.Memory, error) {
	mem := store.NewMemory()
	if err := Transcode(r, mem); err != nil {
		return nil, err
	}
	return mem, nil
}

func transcode(dec oggReader, dst store.Store) error {
	if err := dst.Open(); err != nil {
		return fmt.Errorf("%w", err)
	}

	channels := dec.Channels()
	enc := gowav.NewEncoder(dst, dec.SampleRate(), 16, channels, 1)

	// Decode in whole frames so interleaving survives chunk boundaries.
	frameBuf := make([]float32, 4096*channels)
	ibuf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: dec.SampleRate()},
		SourceBitDepth: 16,
		Data:           make([]int, 0, len(frameBuf)),
	}

	for {
		n, err := dec.Read(frameBuf)
		if n > 0 {
			ibuf.Data = ibuf.Data[:n]
			for i, f := range frameBuf[:n] {
				ibuf.Data[i] = int(utils.Float32ToInt16(f))
			}
			if werr := enc.Write(ibuf); werr != nil {
				return fmt.Errorf("%w", werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
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
