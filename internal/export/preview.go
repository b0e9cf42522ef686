package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/Faultbox/terramesh/internal/terrain"
)

// Preview paints the per-vertex classification colors top-down into an
// image, one pixel per grid vertex. The resolution must match the grid
// the buffer was synthesized from.
func Preview(g *terrain.GeometryBuffer, resolution int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, resolution, resolution))

	for z := 0; z < resolution; z++ {
		for x := 0; x < resolution; x++ {
			i := (z*resolution + x) * 3
			img.SetRGBA(x, z, color.RGBA{
				R: floatToByte(g.Colors[i]),
				G: floatToByte(g.Colors[i+1]),
				B: floatToByte(g.Colors[i+2]),
				A: 255,
			})
		}
	}

	return img
}

// SavePNG encodes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func floatToByte(v float32) uint8 {
	return uint8(v*255 + 0.5)
}
