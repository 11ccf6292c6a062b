package qtc

import "github.com/deepteams/qtc/internal/qlog"

// Options configures Compress.
type Options struct {
	// Alpha is the lossy filter's scaling parameter (§4.3). Zero (the
	// default) and values in (0, 1] disable the lossy pass entirely
	// (lossless compression only); Alpha must be > 1 to enable it,
	// matching the CLI's -a semantics. Negative values are rejected with
	// an invalid-parameter error.
	Alpha float64

	// Logger receives progress messages when verbose. The zero value is
	// silent.
	Logger qlog.Logger

	// Stats, if non-nil, is populated with the encoded tree's variance
	// and node-count summary after a successful Compress call.
	Stats *Stats
}

// Stats mirrors internal/quadtree.Stats plus the derived compression
// ratio, surfaced for verbose CLI output and the `qtc info` subcommand.
type Stats struct {
	MedianVariance   float64
	MaxVariance      float64
	NodeCount        int
	OriginalBytes    int
	CompressedBytes  int
	CompressionRatio float64 // percentage of original size saved
}
