package qtc

import (
	"image"
	"image/color"
	"io"

	"github.com/deepteams/qtc/internal/container"
)

func init() {
	image.RegisterFormat("qtc", "Q1\n", decodeImage, decodeConfig)
}

// decodeImage adapts Decompress to the image.Image decoder signature
// registered with the standard library's image package, so image.Decode
// recognizes and loads QTC streams alongside PNG/JPEG/GIF.
func decodeImage(r io.Reader) (image.Image, error) {
	raster, err := Decompress(r)
	if err != nil {
		return nil, err
	}
	return raster.ToImage(), nil
}

// decodeConfig reports an image's dimensions by reading only the
// header's depth byte, without decoding the bit-packed payload.
func decodeConfig(r io.Reader) (image.Config, error) {
	header, _, err := container.ParseHeader(r)
	if err != nil {
		return image.Config{}, classify(err)
	}
	side := 1 << uint(header.Depth)
	return image.Config{ColorModel: color.GrayModel, Width: side, Height: side}, nil
}
