// Package sampler decodes source images and resamples them into the
// fixed-resolution pixel grid the terrain pipeline consumes.
package sampler

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp" // BMP decoder registration
	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/terramesh/internal/terrain"
)

// Load opens and decodes an image file. The format is detected from the
// file content; PNG, JPEG and BMP are supported. Decode failures are
// returned as-is: the pipeline never sees partial pixel data.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Sample resamples img to a resolution x resolution grid and returns its
// pixels as row-major RGB triples. The result always has exactly
// resolution*resolution entries.
func Sample(img image.Image, resolution int) []terrain.RGB {
	dst := image.NewRGBA(image.Rect(0, 0, resolution, resolution))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	pixels := make([]terrain.RGB, 0, resolution*resolution)
	for y := 0; y < resolution; y++ {
		for x := 0; x < resolution; x++ {
			i := dst.PixOffset(x, y)
			pixels = append(pixels, terrain.RGB{dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2]})
		}
	}
	return pixels
}
