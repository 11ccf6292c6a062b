package bitio

import (
	"bytes"
	"testing"
)

func TestWriterSingleByte(t *testing.T) {
	w := NewWriter(0)
	w.WriteBits(42, 8)
	got, err := w.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []byte{0x2A}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
	if w.TotalBits() != 8 {
		t.Fatalf("TotalBits() = %d, want 8", w.TotalBits())
	}
}

func TestWriterUniformNode(t *testing.T) {
	// root m=7, e=0, u=1 -> 00000111 00 1, padded to 2 bytes.
	w := NewWriter(0)
	w.WriteBits(7, 8)
	w.WriteBits(0, 2)
	w.WriteBit(1)
	got, err := w.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []byte{0x07, 0x20}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestWriterBitWidthRejected(t *testing.T) {
	w := NewWriter(0)
	w.WriteBits(1, 33)
	if w.Err() != ErrBitWidth {
		t.Fatalf("expected ErrBitWidth, got %v", w.Err())
	}
	if _, err := w.Flush(); err != ErrBitWidth {
		t.Fatalf("Flush after error = %v, want ErrBitWidth", err)
	}
}

func TestWriterMultipleBytes(t *testing.T) {
	// Three 8-bit means in sequence should round-trip through the byte
	// boundary cleanly.
	w := NewWriter(0)
	vals := []uint32{10, 20, 40}
	for _, v := range vals {
		w.WriteBits(v, 8)
	}
	got, err := w.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []byte{10, 20, 40}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWriterRelease(t *testing.T) {
	w := NewWriter(64)
	w.WriteBits(0xAB, 8)
	got, err := w.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []byte{0xAB}
	gotCopy := append([]byte(nil), got...)
	w.Release()
	if !bytes.Equal(gotCopy, want) {
		t.Fatalf("got %x, want %x", gotCopy, want)
	}
}
