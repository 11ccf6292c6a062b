package qtc

import (
	"fmt"
	"io"

	"github.com/deepteams/qtc/internal/bitio"
	"github.com/deepteams/qtc/internal/container"
	"github.com/deepteams/qtc/internal/quadtree"
)

// Decompress parses a QTC-framed bit stream and reconstructs the full
// raster it encodes, per §4.7's level-synchronous decoder.
func Decompress(r io.Reader) (*Raster, error) {
	header, tree, _, err := readTree(r)
	if err != nil {
		return nil, err
	}
	side := 1 << uint(header.Depth)
	pix := tree.Reconstruct()
	return &Raster{Side: side, Pix: pix}, nil
}

// readTree parses a QTC stream's header and rebuilds its quadtree,
// without materializing a raster — the shared core of Decompress and
// GetInfo. It returns the parsed header, the decoded tree, and the
// payload length in bytes (the stream's compressed size).
func readTree(r io.Reader) (container.Header, *quadtree.Tree, int, error) {
	header, br, err := container.ParseHeader(r)
	if err != nil {
		return container.Header{}, nil, 0, classify(err)
	}

	payload, err := io.ReadAll(br)
	if err != nil {
		return container.Header{}, nil, 0, classify(err)
	}
	bits := bitio.NewReader(payload)

	tree, err := decodeTree(bits, header.Depth)
	if err != nil {
		return container.Header{}, nil, 0, err
	}
	if err := bits.Err(); err != nil {
		return container.Header{}, nil, 0, classify(err)
	}
	return header, tree, len(payload), nil
}

// pending is one node awaiting its bits at the current decode level,
// along with the quadrant it occupies within its parent (3 marks the
// interpolated child whose mean is never read from the stream, only
// derived from the fourth-mean identity once its three siblings are
// known).
type pending struct {
	parent   *quadtree.Node // nil for the root
	quadrant int
	row, col int
	side     int
}

// decodeTree rebuilds a tree level by level: at each level it reads the
// mean (for every node except a level's interpolated fourth children),
// then, for non-leaf levels, the remainder and (if zero) the uniformity
// bit, immediately per node — never batched across a level — exactly
// mirroring the encoder's emission order.
func decodeTree(r *bitio.Reader, depth int) (*quadtree.Tree, error) {
	rootSide := 1 << uint(depth)
	frontier := []pending{{nil, 0, 0, 0, rootSide}}

	type built struct {
		node     *quadtree.Node
		quadrant int
		parent   *quadtree.Node
	}

	var root *quadtree.Node
	for level := 0; level <= depth; level++ {
		isLeafLevel := level == depth
		var nextFrontier []pending
		// siblingMeans[parent] accumulates the 3 transmitted children's means
		// so the 4th can be derived once all are known.
		siblingMeans := map[*quadtree.Node][3]int{}
		siblingCount := map[*quadtree.Node]int{}

		var levelBuilt []built
		for _, p := range frontier {
			isInterpolated := p.quadrant == 3
			var mean int
			if !isInterpolated {
				mean = int(r.ReadBits(8))
			}

			var node *quadtree.Node
			if isLeafLevel {
				node = quadtree.NewLeaf(mean, p.row, p.col)
			} else {
				rem := int(r.ReadBits(2))
				uniform := false
				if rem == 0 {
					uniform = r.ReadBit() == 1
				}
				node = quadtree.NewInternal(mean, rem, uniform, p.row, p.col, p.side)
			}

			if p.parent == nil {
				root = node
			}
			levelBuilt = append(levelBuilt, built{node, p.quadrant, p.parent})

			if !isInterpolated {
				arr := siblingMeans[p.parent]
				arr[siblingCount[p.parent]] = mean
				siblingMeans[p.parent] = arr
				siblingCount[p.parent]++
			}
		}

		// Resolve each interpolated (quadrant-3) child's mean via the
		// fourth-mean identity: 4*m + e = sum of the four children's means,
		// where m and e belong to the parent.
		for i := range levelBuilt {
			b := levelBuilt[i]
			if b.quadrant != 3 || b.parent == nil {
				continue
			}
			three := siblingMeans[b.parent]
			total := 4*b.parent.Mean() + b.parent.Remainder()
			fourth := total - three[0] - three[1] - three[2]
			if fourth < 0 || fourth > 255 {
				return nil, classify(fmt.Errorf("%w: derived %d", ErrCorruptFourthMean, fourth))
			}
			if b.node.Side() == 1 {
				levelBuilt[i].node = quadtree.NewLeaf(fourth, b.node.Row(), b.node.Col())
			} else {
				levelBuilt[i].node = quadtree.NewInternal(fourth, b.node.Remainder(), b.node.IsUniform(), b.node.Row(), b.node.Col(), b.node.Side())
			}
		}

		// Attach this level's nodes to their parents and queue the next
		// level's frontier from every non-uniform, non-leaf-level node.
		childrenByParent := map[*quadtree.Node][4]*quadtree.Node{}
		for _, b := range levelBuilt {
			if b.parent == nil {
				continue
			}
			arr := childrenByParent[b.parent]
			arr[b.quadrant] = b.node
			childrenByParent[b.parent] = arr
		}
		for parent, children := range childrenByParent {
			parent.Attach(children)
		}

		if !isLeafLevel {
			for _, b := range levelBuilt {
				if b.node.IsUniform() {
					continue
				}
				h := b.node.Side() / 2
				coords := [4][2]int{
					quadtree.TopLeft:     {b.node.Row(), b.node.Col()},
					quadtree.TopRight:    {b.node.Row(), b.node.Col() + h},
					quadtree.BottomRight: {b.node.Row() + h, b.node.Col() + h},
					quadtree.BottomLeft:  {b.node.Row() + h, b.node.Col()},
				}
				for q, rc := range coords {
					nextFrontier = append(nextFrontier, pending{b.node, q, rc[0], rc[1], h})
				}
			}
		}
		frontier = nextFrontier
	}

	if root == nil {
		return nil, classify(fmt.Errorf("%w: empty tree", ErrCorruptFourthMean))
	}
	return quadtree.NewTree(root, depth), nil
}
