package bitio

import "testing"

func TestReaderRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.WriteBits(25, 8)
	w.WriteBits(0, 2)
	w.WriteBit(0)
	w.WriteBits(10, 8)
	data, err := w.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}

	r := NewReader(data)
	if v := r.ReadBits(8); v != 25 {
		t.Fatalf("mean = %d, want 25", v)
	}
	if v := r.ReadBits(2); v != 0 {
		t.Fatalf("remainder = %d, want 0", v)
	}
	if v := r.ReadBit(); v != 0 {
		t.Fatalf("uniform flag = %d, want 0", v)
	}
	if v := r.ReadBits(8); v != 10 {
		t.Fatalf("child mean = %d, want 10", v)
	}
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
}

func TestReaderUnderrun(t *testing.T) {
	r := NewReader([]byte{0xFF})
	r.ReadBits(8)
	if r.ReadBit() != 0 {
		t.Fatalf("expected 0 on underrun")
	}
	if r.Err() != ErrUnderrun {
		t.Fatalf("expected ErrUnderrun, got %v", r.Err())
	}
	// Once in error state, reads stay at zero.
	if v := r.ReadBits(8); v != 0 {
		t.Fatalf("expected sticky zero, got %d", v)
	}
}

func TestReaderBitWidthRejected(t *testing.T) {
	r := NewReader([]byte{0, 0})
	r.ReadBits(9)
	if r.Err() != ErrBitWidth {
		t.Fatalf("expected ErrBitWidth, got %v", r.Err())
	}
}
