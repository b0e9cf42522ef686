// Package procgen generates default heightmap pixels from layered perlin
// noise, for synthesis runs without a source image.
package procgen

import (
	"github.com/aquilax/go-perlin"

	"github.com/Faultbox/terramesh/internal/terrain"
)

const (
	detailFrequency = 0.09
	zoneFrequency   = 0.02

	detailWeight = 0.35
	zoneWeight   = 0.65
)

// Generator produces grayscale heightmap pixels. The same seed always
// yields the same pixels.
type Generator struct {
	landHi *perlin.Perlin // smaller/higher frequency details
	landLo *perlin.Perlin // larger landmass shapes
}

// New creates a seeded Generator.
func New(seed int64) *Generator {
	return &Generator{
		landHi: perlin.NewPerlin(1.5, 2.0, 4, seed),
		landLo: perlin.NewPerlin(2.5, 3.0, 3, seed+1),
	}
}

// Pixels generates a resolution x resolution grayscale pixel grid in the
// same row-major triple layout the image sampler emits, so generated
// terrain runs through the identical synthesis pipeline.
func (g *Generator) Pixels(resolution int) []terrain.RGB {
	pixels := make([]terrain.RGB, 0, resolution*resolution)
	for z := 0; z < resolution; z++ {
		for x := 0; x < resolution; x++ {
			fx, fz := float64(x), float64(z)
			h := g.landHi.Noise2D(fx*detailFrequency, fz*detailFrequency)*detailWeight +
				g.landLo.Noise2D(fx*zoneFrequency, fz*zoneFrequency)*zoneWeight

			// Noise2D is roughly in [-1,1]; remap to a byte.
			v := clampToByte((h + 1) * 0.5 * 255)
			pixels = append(pixels, terrain.RGB{v, v, v})
		}
	}
	return pixels
}

func clampToByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
