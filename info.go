package qtc

import "io"

// Info is the metadata a QTC stream yields without reconstructing its
// raster: dimensions, tree shape, and the same Stats Compress reports.
type Info struct {
	Side  int
	Depth int
	Stats Stats
}

// GetInfo parses a QTC stream's header and rebuilds its tree shape, but
// never calls Tree.Reconstruct — mirroring deepteams-webp's
// GetFeatures, which reads a WebP's dimensions and format flags without
// decoding pixels. A tree's node count is bounded by how much detail it
// actually encodes, not by image area, so GetInfo stays cheap on large,
// mostly-uniform images where Decompress would still have to allocate
// and fill a full Side*Side pixel buffer.
func GetInfo(r io.Reader) (*Info, error) {
	header, tree, payloadLen, err := readTree(r)
	if err != nil {
		return nil, err
	}
	tree.RefreshVariance()
	qstats := tree.CollectStats()

	side := 1 << uint(header.Depth)
	originalBytes := side * side
	ratio := 0.0
	if originalBytes > 0 {
		ratio = (1 - float64(payloadLen)/float64(originalBytes)) * 100
	}

	return &Info{
		Side:  side,
		Depth: header.Depth,
		Stats: Stats{
			MedianVariance:   qstats.MedianVariance,
			MaxVariance:      qstats.MaxVariance,
			NodeCount:        qstats.NodeCount,
			OriginalBytes:    originalBytes,
			CompressedBytes:  payloadLen,
			CompressionRatio: ratio,
		},
	}, nil
}
