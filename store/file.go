// SPDX-License-Identifier: EPL-2.0

package store

import (
	"fmt"
	"io"
	"os"
)

// File is a Store backed by a posix file.
type File struct {
	path string
	flag int
	perm os.FileMode
	f    *os.File
}

// NewFile returns a read-only file store for path. The file is not touched
// until Open is called.
func NewFile(path string) *File {
	return &File{path: path, flag: os.O_RDONLY}
}

// CreateFile returns a read-write file store that truncates or creates path
// on Open.
func CreateFile(path string) *File {
	return &File{path: path, flag: os.O_RDWR | os.O_CREATE | os.O_TRUNC, perm: 0o644}
}

// Path reports the file path this store binds to.
func (s *File) Path() string { return s.path }

func (s *File) Open() error {
	if s.f != nil {
		if err := s.Close(); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, s.flag, s.perm)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	s.f = f

	return nil
}

func (s *File) Close() error {
	if s.f == nil {
		return nil
	}

	err := s.f.Close()
	s.f = nil
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *File) Read(p []byte) (int, error) {
	if s.f == nil {
		return 0, ErrNotOpen
	}
	return s.f.Read(p)
}

func (s *File) Write(p []byte) (int, error) {
	if s.f == nil {
		return 0, ErrNotOpen
	}
	if s.flag == os.O_RDONLY {
		return 0, ErrReadOnly
	}
	return s.f.Write(p)
}

func (s *File) Seek(offset int64, whence int) (int64, error) {
	if s.f == nil {
		return 0, ErrNotOpen
	}
	return s.f.Seek(offset, whence)
}

func (s *File) Position() (int64, error) {
	if s.f == nil {
		return 0, ErrNotOpen
	}
	return s.f.Seek(0, io.SeekCurrent)
}

func (s *File) Size() (int64, error) {
	if s.f == nil {
		return 0, ErrNotOpen
	}

	info, err := s.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return info.Size(), nil
}
