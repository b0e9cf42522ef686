package terrain

import (
	"errors"
	"fmt"
)

// Synthesis errors.
var (
	ErrResolution  = errors.New("resolution must be at least 2")
	ErrPixelCount  = errors.New("pixel count does not match resolution")
	ErrHeightScale = errors.New("height scale must be positive")
)

// Synthesize runs the full pipeline with the default constants:
// luminance -> statistics -> normalization -> adaptive smoothing -> mesh.
// It is deterministic: identical inputs produce identical buffers.
func Synthesize(pixels []RGB, resolution int, heightScale float32) (*GeometryBuffer, error) {
	return SynthesizeWith(pixels, resolution, heightScale, DefaultParams())
}

// SynthesizeWith is Synthesize with explicit synthesis constants.
func SynthesizeWith(pixels []RGB, resolution int, heightScale float32, p Params) (*GeometryBuffer, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrResolution, resolution)
	}
	if len(pixels) != resolution*resolution {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrPixelCount, len(pixels), resolution*resolution)
	}
	if heightScale <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrHeightScale, heightScale)
	}

	field := Luminance(pixels, resolution)
	stats := Measure(field)
	Normalize(field, stats)
	field = Smooth(field, stats.Contrast(), p.SmoothThreshold)

	return BuildMesh(field, heightScale, p), nil
}
