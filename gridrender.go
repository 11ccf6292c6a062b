package qtc

import (
	"github.com/deepteams/qtc/internal/grid"
	"github.com/deepteams/qtc/internal/lossy"
	"github.com/deepteams/qtc/internal/quadtree"
)

// RenderGrid rebuilds the quadtree for raster (applying the same lossy
// pass Compress would, per opts.Alpha) and rasterizes its segmentation
// grid: one-pixel mid-gray lines through every non-leaf region, plus an
// outer border, over the reconstructed pixel values. It is the
// supplemental `-g` CLI output and has no bearing on the compressed
// stream itself.
func RenderGrid(raster *Raster, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = &Options{}
	}
	tree, err := quadtree.Build(raster.Pix, raster.Side)
	if err != nil {
		return nil, classify(err)
	}
	if opts.Alpha > 1 {
		if err := lossy.Apply(tree, opts.Alpha); err != nil {
			return nil, classify(err)
		}
	}
	base := tree.Reconstruct()
	return grid.Render(tree, base), nil
}
