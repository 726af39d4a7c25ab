// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audsampler/store"
)

// pcmReader is an interface for gomp3.Decoder to allow testing
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Transcode decodes the MP3 stream from r and writes it as 16-bit stereo
// PCM WAV into dst, leaving dst rewound to the beginning.
func Transcode(r io.Reader, dst store.Store) error {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	// go-mp3 always outputs 16-bit little-endian stereo.
	return transcode(dec, dst, 2)
}

// ToMemory is the common case: transcode into a fresh in-memory store.
func ToMemory(r io.Reader) (*store.Memory, error) {
	mem := store.NewMemory()
	if err := Transcode(r, mem); err != nil {
		return nil, err
	}
	return mem, nil
}

func transcode(dec pcmReader, dst store.Store, channels int) error {
	if err := dst.Open(); err != nil {
		return fmt.Errorf("%w", err)
	}

	enc := gowav.NewEncoder(dst, dec.SampleRate(), 16, channels, 1)

	buf := make([]byte, 8192)
	ibuf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: dec.SampleRate()},
		SourceBitDepth: 16,
	}

	for {
		n, err := dec.Read(buf)
		if n > 0 {
			samples := n / 2
			if cap(ibuf.Data) < samples {
				ibuf.Data = make([]int, samples)
			}
			ibuf.Data = ibuf.Data[:samples]
			for i := 0; i < samples; i++ {
				ibuf.Data[i] = int(int16(binary.LittleEndian.Uint16(buf[2*i:])))
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
