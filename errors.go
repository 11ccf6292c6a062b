package qtc

import (
	"errors"
	"fmt"

	"github.com/deepteams/qtc/internal/bitio"
	"github.com/deepteams/qtc/internal/container"
	"github.com/deepteams/qtc/internal/lossy"
	"github.com/deepteams/qtc/internal/pgm"
	"github.com/deepteams/qtc/internal/qerr"
	"github.com/deepteams/qtc/internal/quadtree"
)

// Public sentinel errors, one per kind of §7's taxonomy. Use errors.Is
// against these; use Kind(err) to recover the qerr.Kind directly.
var (
	ErrInvalidParameter = errors.New("qtc: invalid parameter")
	ErrIO               = errors.New("qtc: i/o failure")
	ErrFormat           = errors.New("qtc: format error")
	ErrSize             = errors.New("qtc: size error")
	ErrOutOfMemory      = errors.New("qtc: out of memory")

	// ErrCorruptFourthMean is a specific Format failure: the decoder's
	// fourth-mean identity reconstruction produced a value outside 0..255.
	ErrCorruptFourthMean = errors.New("qtc: reconstructed fourth mean out of range")
)

// Kind classifies err into the §7 taxonomy by finding a *qerr.Error in
// its chain. Errors with no *qerr.Error in their chain (such as errors
// that did not originate inside qtc) classify as qerr.KindUnknown.
func Kind(err error) qerr.Kind {
	if err == nil {
		return qerr.KindUnknown
	}
	var qe *qerr.Error
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return qerr.KindUnknown
}

// sentinelFor maps a §7 kind to its public qtc sentinel, so classify
// can build a *qerr.Error whose Cause chain still reaches that sentinel
// through errors.Is — the Error wraps sentinel and the originating
// internal error together via Go's multi-%w support.
func sentinelFor(kind qerr.Kind) error {
	switch kind {
	case qerr.KindInvalidParameter:
		return ErrInvalidParameter
	case qerr.KindIO:
		return ErrIO
	case qerr.KindFormat:
		return ErrFormat
	case qerr.KindSize:
		return ErrSize
	case qerr.KindOutOfMemory:
		return ErrOutOfMemory
	default:
		return ErrIO
	}
}

// classify translates an internal package's sentinel error into a
// tagged *qerr.Error, the single boundary translator Design Notes §9
// calls for: internal packages never leak their own error types past
// this function. errors.Is still reaches both the public qtc sentinel
// and the original internal error, since the Error's Cause wraps both.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var kind qerr.Kind
	switch {
	case errors.Is(err, quadtree.ErrOutOfMemory):
		kind = qerr.KindOutOfMemory
	case errors.Is(err, quadtree.ErrNotPowerOfTwo),
		errors.Is(err, quadtree.ErrInvalidDepth):
		kind = qerr.KindSize
	case errors.Is(err, lossy.ErrInvalidAlpha):
		kind = qerr.KindInvalidParameter
	case errors.Is(err, container.ErrBadMagic),
		errors.Is(err, container.ErrTruncated),
		errors.Is(err, container.ErrInvalidDepth),
		errors.Is(err, bitio.ErrUnderrun),
		errors.Is(err, bitio.ErrBitWidth),
		errors.Is(err, ErrCorruptFourthMean):
		kind = qerr.KindFormat
	case errors.Is(err, pgm.ErrBadMagic),
		errors.Is(err, pgm.ErrTruncated):
		kind = qerr.KindFormat
	case errors.Is(err, pgm.ErrNotSquare),
		errors.Is(err, pgm.ErrNotPowerOf2),
		errors.Is(err, pgm.ErrMaxValue):
		kind = qerr.KindSize
	default:
		kind = qerr.KindIO
	}

	cause := fmt.Errorf("%w: %w", sentinelFor(kind), err)
	return qerr.New(kind, cause)
}
