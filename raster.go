package qtc

import (
	"fmt"
	"image"
	"image/color"
	"math/bits"

	"github.com/deepteams/qtc/internal/qerr"
)

// Raster is a square 8-bit grayscale pixel buffer in row-major order —
// the pixel buffer component of §2, owned exclusively by the caller and
// read/written at the PGM format boundary (internal/pgm).
type Raster struct {
	Side int
	Pix  []byte
}

// NewRaster allocates a blank raster of the given side.
func NewRaster(side int) (*Raster, error) {
	if side <= 0 || side&(side-1) != 0 {
		return nil, qerr.New(qerr.KindInvalidParameter, fmt.Errorf("%w: side %d is not a power of two", ErrInvalidParameter, side))
	}
	return &Raster{Side: side, Pix: make([]byte, side*side)}, nil
}

// Depth returns log2(Side), the tree depth L.
func (r *Raster) Depth() int {
	return bits.Len(uint(r.Side)) - 1
}

// At returns the pixel value at (row, col).
func (r *Raster) At(row, col int) byte { return r.Pix[row*r.Side+col] }

// Set assigns the pixel value at (row, col).
func (r *Raster) Set(row, col int, v byte) { r.Pix[row*r.Side+col] = v }

// ToImage returns r as a standard library *image.Gray, sharing the
// underlying pixel slice (no copy).
func (r *Raster) ToImage() *image.Gray {
	return &image.Gray{
		Pix:    r.Pix,
		Stride: r.Side,
		Rect:   image.Rect(0, 0, r.Side, r.Side),
	}
}

// FromImage converts any image.Image into a Raster by sampling its gray
// value at each pixel. The image must be square with a power-of-two
// side, per §1's non-goals (no non-square or non-power-of-two input).
func FromImage(img image.Image) (*Raster, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w != h {
		return nil, qerr.New(qerr.KindSize, fmt.Errorf("%w: image is %dx%d, must be square", ErrSize, w, h))
	}
	if w <= 0 || w&(w-1) != 0 {
		return nil, qerr.New(qerr.KindSize, fmt.Errorf("%w: side %d is not a power of two", ErrSize, w))
	}

	r, err := NewRaster(w)
	if err != nil {
		return nil, err
	}
	if gray, ok := img.(*image.Gray); ok {
		for row := 0; row < w; row++ {
			srcOff := gray.PixOffset(b.Min.X, b.Min.Y+row)
			copy(r.Pix[row*w:row*w+w], gray.Pix[srcOff:srcOff+w])
		}
		return r, nil
	}
	for row := 0; row < w; row++ {
		for col := 0; col < w; col++ {
			gray := color.GrayModel.Convert(img.At(b.Min.X+col, b.Min.Y+row)).(color.Gray)
			r.Set(row, col, gray.Y)
		}
	}
	return r, nil
}
