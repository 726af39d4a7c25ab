package store

import (
	"bytes"
	"io"
	"testing"
)

func TestMemory_ReadWriteSeek(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	if err := m.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	payload := []byte("abcdefgh")
	n, err := m.Write(payload)
	if err != nil || n != len(payload) {
		t.Fatalf("Write() = (%d, %v), want (%d, nil)", n, err, len(payload))
	}

	if size, _ := m.Size(); size != int64(len(payload)) {
		t.Errorf("Size() = %d, want %d", size, len(payload))
	}

	if _, err := m.Seek(2, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if pos, _ := m.Position(); pos != 2 {
		t.Errorf("Position() = %d, want 2", pos)
	}

	buf := make([]byte, 3)
	n, err = m.Read(buf)
	if err != nil || n != 3 {
		t.Fatalf("Read() = (%d, %v), want (3, nil)", n, err)
	}
	if !bytes.Equal(buf, []byte("cde")) {
		t.Errorf("Read() got %q, want %q", buf, "cde")
	}
}

func TestMemory_ReadAtEnd(t *testing.T) {
	t.Parallel()

	m := NewMemoryBytes([]byte("xy"))
	m.Open()

	buf := make([]byte, 4)
	n, err := m.Read(buf)
	if n != 2 || err != nil {
		t.Fatalf("Read() = (%d, %v), want (2, nil)", n, err)
	}

	if _, err := m.Read(buf); err != io.EOF {
		t.Errorf("Read() past end error = %v, want io.EOF", err)
	}
}

func TestMemory_OverwriteMiddle(t *testing.T) {
	t.Parallel()

	m := NewMemoryBytes([]byte("0123456789"))
	m.Open()
	m.Seek(4, io.SeekStart)

	if _, err := m.Write([]byte("AB")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if got := string(m.Bytes()); got != "0123AB6789" {
		t.Errorf("Bytes() = %q, want %q", got, "0123AB6789")
	}
}

func TestMemory_SeekNegative(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	m.Open()

	if _, err := m.Seek(-1, io.SeekStart); err != ErrBadSeek {
		t.Errorf("Seek(-1) error = %v, want ErrBadSeek", err)
	}
}

func TestMemory_WritePastEndGrows(t *testing.T) {
	t.Parallel()

	m := NewMemoryBytes([]byte("ab"))
	m.Open()
	m.Seek(0, io.SeekEnd)

	big := bytes.Repeat([]byte{0x7f}, 8192)
	n, err := m.Write(big)
	if err != nil || n != len(big) {
		t.Fatalf("Write() = (%d, %v), want (%d, nil)", n, err, len(big))
	}
	if size, _ := m.Size(); size != int64(2+len(big)) {
		t.Errorf("Size() = %d, want %d", size, 2+len(big))
	}
}
