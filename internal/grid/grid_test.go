package grid

import (
	"testing"

	"github.com/deepteams/qtc/internal/quadtree"
)

func TestRenderDrawsBorder(t *testing.T) {
	pix := []byte{10, 20, 30, 40}
	tree, err := quadtree.Build(pix, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	out := Render(tree, tree.Reconstruct())
	for c := 0; c < 2; c++ {
		if out[c] != MidGray {
			t.Fatalf("top border[%d] = %d, want %d", c, out[c], MidGray)
		}
	}
}

func TestRenderUniformHasNoInteriorLines(t *testing.T) {
	pix := make([]byte, 64)
	tree, err := quadtree.Build(pix, 8)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	out := Render(tree, tree.Reconstruct())
	// Interior (non-border) pixels should remain at the uniform value 0.
	interior := out[3*8+3]
	if interior != 0 {
		t.Fatalf("interior pixel = %d, want 0 (root is uniform, no subdivision lines)", interior)
	}
}
