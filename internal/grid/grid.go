// Package grid renders the segmentation-grid visualization of §4.9: a
// trivial recursion over the same quadtree that draws one-pixel
// mid-gray lines through every non-leaf region, plus an outer border.
// It participates in no codec invariant — it exists only to make a
// partition visible.
package grid

import "github.com/deepteams/qtc/internal/quadtree"

// MidGray is the pixel value used for partition lines.
const MidGray = 128

// Render draws the segmentation grid for tree into a fresh raster of
// side 2^tree.Depth, starting from the reconstructed pixel values and
// overlaying lines.
func Render(tree *quadtree.Tree, base []byte) []byte {
	side := 1 << uint(tree.Depth)
	out := make([]byte, len(base))
	copy(out, base)

	drawBorder(out, side)
	drawNode(tree.Root, out, side)
	return out
}

func drawBorder(buf []byte, side int) {
	for c := 0; c < side; c++ {
		buf[c] = MidGray
		buf[(side-1)*side+c] = MidGray
	}
	for r := 0; r < side; r++ {
		buf[r*side] = MidGray
		buf[r*side+side-1] = MidGray
	}
}

func drawNode(n *quadtree.Node, buf []byte, fullSide int) {
	if n.IsUniform() || n.Side() == 1 || !n.HasChildren() {
		return
	}

	h := n.Side() / 2
	midRow := n.Row() + h
	midCol := n.Col() + h

	for c := n.Col(); c < n.Col()+n.Side(); c++ {
		buf[midRow*fullSide+c] = MidGray
	}
	for r := n.Row(); r < n.Row()+n.Side(); r++ {
		buf[r*fullSide+midCol] = MidGray
	}

	for _, c := range n.Children() {
		drawNode(c, buf, fullSide)
	}
}
