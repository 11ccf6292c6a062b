package quadtree

import (
	"bytes"
	"testing"
)

func TestReconstructRoundTripUniform(t *testing.T) {
	pix := []byte{3, 3, 3, 3}
	tree, err := Build(pix, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := tree.Reconstruct()
	if !bytes.Equal(got, pix) {
		t.Fatalf("got %v, want %v", got, pix)
	}
}

func TestReconstructRoundTripNonUniform(t *testing.T) {
	pix := []byte{10, 20, 30, 40}
	tree, err := Build(pix, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := tree.Reconstruct()
	if !bytes.Equal(got, pix) {
		t.Fatalf("got %v, want %v", got, pix)
	}
}

func TestReconstructRoundTrip8x8(t *testing.T) {
	pix := make([]byte, 64)
	for i := range pix {
		pix[i] = byte(i * 4)
	}
	tree, err := Build(pix, 8)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := tree.Reconstruct()
	if !bytes.Equal(got, pix) {
		t.Fatalf("round trip mismatch:\ngot  %v\nwant %v", got, pix)
	}
}

func TestReconstructSinglePixel(t *testing.T) {
	tree, err := Build([]byte{99}, 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := tree.Reconstruct()
	if len(got) != 1 || got[0] != 99 {
		t.Fatalf("got %v, want [99]", got)
	}
}
