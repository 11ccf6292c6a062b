package quadtree

import (
	"fmt"
	"math/bits"
)

// Tree is a complete quadtree built over a square raster of side 2^Depth.
type Tree struct {
	Root  *Node
	Depth int // L
}

// NewTree wraps an already-constructed root (used by the decoder, which
// builds nodes level by level rather than via Build).
func NewTree(root *Node, depth int) *Tree {
	return &Tree{Root: root, Depth: depth}
}

// Build constructs a tree of depth log2(side) from a row-major pixel
// buffer, per the post-order algorithm of §4.1: leaves at the deepest
// level hold single pixel values; every shallower node's mean and
// remainder are computed from its four children, and a node whose
// children are all uniform, equal, and remainder-free is itself marked
// uniform and pruned.
//
// Any panic raised during construction (in practice: an over-large
// allocation request from a corrupt or absurd side value) is recovered
// and reported as ErrOutOfMemory, mirroring the source's explicit abort
// on allocation failure — Go has no catchable malloc failure, so a
// recovered panic is the closest equivalent at the build boundary.
func Build(pix []byte, side int) (tree *Tree, err error) {
	defer func() {
		if r := recover(); r != nil {
			tree, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()

	if side <= 0 || side&(side-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	if len(pix) != side*side {
		return nil, fmt.Errorf("quadtree: pixel buffer length %d does not match side %d", len(pix), side)
	}
	depth := bits.Len(uint(side)) - 1
	root := buildRegion(pix, side, 0, 0, side)
	return NewTree(root, depth), nil
}

// buildRegion recursively builds the node covering the square region at
// (row, col) of the given side within a pix buffer whose row stride is
// fullSide.
func buildRegion(pix []byte, fullSide, row, col, side int) *Node {
	if side == 1 {
		return NewLeaf(int(pix[row*fullSide+col]), row, col)
	}

	h := side / 2
	coords := [4][2]int{
		TopLeft:     {row, col},
		TopRight:    {row, col + h},
		BottomRight: {row + h, col + h},
		BottomLeft:  {row + h, col},
	}

	var children [4]*Node
	for q, rc := range coords {
		children[q] = buildRegion(pix, fullSide, rc[0], rc[1], h)
	}

	sum := 0
	for _, c := range children {
		sum += c.mean
	}
	m := sum / 4
	e := sum % 4

	allEqual := true
	for _, c := range children {
		if !c.uniform || c.mean != children[TopLeft].mean {
			allEqual = false
			break
		}
	}
	// The all-equal check already implies e == 0; the explicit clause is
	// a defensive redundancy, per §4.1 step 3.
	uniform := allEqual && e == 0

	n := NewInternal(m, e, uniform, row, col, side)
	if !uniform {
		n.Attach(children)
	}
	// uniform: children are simply not attached, pruning them from the
	// tree — Go's GC reclaims them once this frame returns.
	return n
}
