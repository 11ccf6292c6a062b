package qtc

import (
	"fmt"
	"io"
	"time"

	"github.com/deepteams/qtc/internal/bitio"
	"github.com/deepteams/qtc/internal/container"
	"github.com/deepteams/qtc/internal/lossy"
	"github.com/deepteams/qtc/internal/qerr"
	"github.com/deepteams/qtc/internal/quadtree"
)

// Compress builds a quadtree from raster, optionally applies the lossy
// filter, and writes the QTC-framed bit stream to w. It implements the
// two-pass scheme of §4.6: the tree is first packed into an in-memory
// scratch buffer so the exact payload size is known before the header
// (which embeds a compression-rate comment) is written.
func Compress(w io.Writer, raster *Raster, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Alpha != 0 && opts.Alpha <= 0 {
		return qerr.New(qerr.KindInvalidParameter, fmt.Errorf("%w: alpha must be positive", ErrInvalidParameter))
	}

	tree, err := quadtree.Build(raster.Pix, raster.Side)
	if err != nil {
		return classify(err)
	}
	opts.Logger.Printf("built tree: depth=%d", tree.Depth)

	if opts.Alpha > 1 {
		if err := lossy.Apply(tree, opts.Alpha); err != nil {
			return classify(err)
		}
		opts.Logger.Printf("applied lossy filter: alpha=%.3f", opts.Alpha)
	}

	scratch := bitio.NewWriter(raster.Side)
	encodeTree(scratch, tree)
	payload, err := scratch.Flush()
	if err != nil {
		return classify(err)
	}

	originalBytes := raster.Side * raster.Side
	ratio := 0.0
	if originalBytes > 0 {
		ratio = (1 - float64(len(payload))/float64(originalBytes)) * 100
	}

	if opts.Stats != nil {
		tree.RefreshVariance()
		qstats := tree.CollectStats()
		opts.Stats.MedianVariance = qstats.MedianVariance
		opts.Stats.MaxVariance = qstats.MaxVariance
		opts.Stats.NodeCount = qstats.NodeCount
		opts.Stats.OriginalBytes = originalBytes
		opts.Stats.CompressedBytes = len(payload)
		opts.Stats.CompressionRatio = ratio
	}

	rateComment := fmt.Sprintf("compression rate %.2f%%", ratio)
	timestampComment := currentTimestamp()
	if err := container.WriteHeader(w, tree.Depth, timestampComment, rateComment); err != nil {
		return classify(err)
	}
	if _, err := w.Write(payload); err != nil {
		return classify(err)
	}
	scratch.Release()
	opts.Logger.Printf("wrote %d payload bytes (%.2f%% smaller)", len(payload), ratio)
	return nil
}

// encodeTree emits a tree's nodes in strict level order, per §4.6: each
// level is a flat scan of all nodes reachable from the root through
// non-uniform ancestors, preserving the quadrant order within each
// parent's four children and the frontier order across parents.
func encodeTree(w *bitio.Writer, tree *quadtree.Tree) {
	type item struct {
		node        *quadtree.Node
		indexInPair int // position within parent's children, 3 = interpolated
	}

	frontier := []item{{tree.Root, 0}} // root's "index" is never 3: its mean is always sent
	for level := 0; level <= tree.Depth; level++ {
		isLeafLevel := level == tree.Depth
		var next []item
		for _, it := range frontier {
			n := it.node
			if it.indexInPair != 3 {
				w.WriteBits(uint32(n.Mean()), 8)
			}
			if !isLeafLevel {
				w.WriteBits(uint32(n.Remainder()), 2)
				if n.Remainder() == 0 {
					u := 0
					if n.IsUniform() {
						u = 1
					}
					w.WriteBit(u)
				}
			}
			if !n.IsUniform() && !isLeafLevel {
				children := n.Children()
				for idx, c := range children {
					next = append(next, item{c, idx})
				}
			}
		}
		frontier = next
	}
}

// currentTimestamp is a var, not a direct time.Now call, so tests can
// stub it out for byte-exact header comparisons.
var currentTimestamp = func() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05 UTC")
}
