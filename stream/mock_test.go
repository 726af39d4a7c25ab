package stream

import (
	"encoding/binary"
	"io"

	"github.com/ik5/audsampler/store"
)

// patternSample is the deterministic sample value used across the tests so
// any position in the stream can be checked without keeping golden data.
func patternSample(i uint32) int16 {
	return int16(i%1000) - 500
}

// mockLoader is a Loader over an in-memory sample pattern. dataOffset
// emulates container headers in front of the sample region, which is what
// forces the intro buffer to do its alignment work.
type mockLoader struct {
	samples    []int16
	dataOffset int64
	sampleRate int
	channels   int
	bits       int

	openErr error
	maxRead int // when > 0, cap bytes returned per Read (forces short reads)

	opened bool
	pos    int64 // absolute byte position
}

func newMockLoader(numSamples int, dataOffset int64) *mockLoader {
	samples := make([]int16, numSamples)
	for i := range samples {
		samples[i] = patternSample(uint32(i))
	}

	return &mockLoader{
		samples:    samples,
		dataOffset: dataOffset,
		sampleRate: 44100,
		channels:   1,
		bits:       16,
	}
}

func (m *mockLoader) Open(st store.Store) error {
	if m.openErr != nil {
		return m.openErr
	}
	m.opened = true
	m.pos = m.dataOffset
	return nil
}

func (m *mockLoader) Close()              { m.opened = false }
func (m *mockLoader) SampleRate() int     { return m.sampleRate }
func (m *mockLoader) NumChannels() int    { return m.channels }
func (m *mockLoader) BitsPerSample() int  { return m.bits }
func (m *mockLoader) FrameAlignment() int { return m.channels * m.bits / 8 }
func (m *mockLoader) NumSamples() uint32  { return uint32(len(m.samples)) }

func (m *mockLoader) FilePositionForSample(sample uint32) int64 {
	if sample > uint32(len(m.samples)) {
		sample = uint32(len(m.samples))
	}
	return m.dataOffset + int64(sample)*2
}

func (m *mockLoader) Seek(sample uint32) bool {
	if !m.opened {
		return false
	}
	m.pos = m.FilePositionForSample(sample)
	return true
}

func (m *mockLoader) Read(p []byte) (int, error) {
	if !m.opened {
		return 0, io.EOF
	}

	end := m.dataOffset + int64(len(m.samples))*2
	if m.pos >= end {
		return 0, io.EOF
	}

	want := int64(len(p))
	if avail := end - m.pos; want > avail {
		want = avail
	}
	if m.maxRead > 0 && want > int64(m.maxRead) {
		want = int64(m.maxRead)
	}

	for i := int64(0); i < want/2; i++ {
		idx := (m.pos-m.dataOffset)/2 + i
		binary.LittleEndian.PutUint16(p[i*2:], uint16(m.samples[idx]))
	}
	m.pos += want

	return int(want), nil
}
