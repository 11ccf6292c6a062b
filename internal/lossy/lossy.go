// Package lossy implements the adaptive variance-based merge filter of
// §4.3: subtrees whose local variance falls below a threshold that grows
// with depth are collapsed into single uniform nodes.
package lossy

import (
	"errors"

	"github.com/deepteams/qtc/internal/quadtree"
)

// ErrInvalidAlpha is returned when alpha is not strictly greater than 1.
var ErrInvalidAlpha = errors.New("lossy: alpha must be > 1")

// Apply runs the adaptive merge filter over tree in place. alpha scales
// the merge threshold deeper into the tree (θ·α^depth), making merges
// more permissive where regions are smaller and perceptually less
// salient. alpha must be > 1; callers that only want a no-op pass should
// simply not call Apply.
func Apply(tree *quadtree.Tree, alpha float64) error {
	if alpha <= 1 {
		return ErrInvalidAlpha
	}

	tree.RefreshVariance()
	stats := tree.CollectStats()
	if stats.MaxVariance == 0 {
		// Already uniform; nothing to merge.
		return nil
	}
	theta0 := stats.MedianVariance / stats.MaxVariance
	visit(tree.Root, theta0, alpha)
	return nil
}

// visit recurses into children before refreshing and judging the
// current node, so that n's variance is computed from its children's
// already-current values rather than stale ones left over from a prior
// pass. This is the resolution of the Open Question in Design Notes §9:
// the source recomputes a node's variance before descending, so a
// node's merge decision there uses its children's pre-update variance.
// It returns whether the subtree rooted at n ended up uniform (merged,
// or already uniform).
func visit(n *quadtree.Node, theta, alpha float64) bool {
	if !n.HasChildren() {
		// Leaf or already-pruned uniform node: trivially uniform.
		return n.IsUniform()
	}

	children := n.Children()
	allChildrenUniform := true
	for _, c := range children {
		if !visit(c, theta*alpha, alpha) {
			allChildrenUniform = false
		}
	}

	n.RefreshVariance()

	if n.Variance() <= theta && allChildrenUniform {
		n.Merge()
		return true
	}

	allEqual := true
	for _, c := range children {
		if !c.IsUniform() || c.Mean() != children[quadtree.TopLeft].Mean() {
			allEqual = false
			break
		}
	}
	n.SetUniform(allChildrenUniform && allEqual)
	return n.IsUniform()
}
