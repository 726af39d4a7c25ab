// SPDX-License-Identifier: EPL-2.0

package store

import "io"

// Memory is a Store backed by an in-memory byte slice. It grows on write
// and is the landing zone for the format transcoders, which decode a
// compressed stream once and then need random access to the result.
type Memory struct {
	data []byte
	pos  int64
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryBytes returns an in-memory store preloaded with data. The slice
// is used directly, not copied.
func NewMemoryBytes(data []byte) *Memory {
	return &Memory{data: data}
}

// Bytes exposes the current contents without copying.
func (s *Memory) Bytes() []byte { return s.data }

func (s *Memory) Open() error {
	s.pos = 0
	return nil
}

func (s *Memory) Close() error { return nil }

func (s *Memory) Read(p []byte) (int, error) {
	if s.pos >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n := copy(p, s.data[s.pos:])
	s.pos += int64(n)

	return n, nil
}

func (s *Memory) Write(p []byte) (int, error) {
	if need := s.pos + int64(len(p)); need > int64(len(s.data)) {
		if need > int64(cap(s.data)) {
			grown := make([]byte, need, max(need, int64(2*cap(s.data))))
			copy(grown, s.data)
			s.data = grown
		} else {
			s.data = s.data[:need]
		}
	}

	n := copy(s.data[s.pos:], p)
	s.pos += int64(n)

	return n, nil
}

func (s *Memory) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = s.pos + offset
	case io.SeekEnd:
		next = int64(len(s.data)) + offset
	}

	if next < 0 {
		return 0, ErrBadSeek
	}
	s.pos = next

	return next, nil
}

func (s *Memory) Position() (int64, error) { return s.pos, nil }

func (s *Memory) Size() (int64, error) { return int64(len(s.data)), nil }
