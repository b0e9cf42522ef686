package terrain

import (
	"github.com/chewxy/math32"
)

// BT.709 luma weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luminance converts RGB samples to a grayscale height field in [0,255]
// using perceptual (ITU-R BT.709) weighting.
func Luminance(pixels []RGB, resolution int) *HeightField {
	field := NewHeightField(resolution)
	for i, p := range pixels {
		field.Values[i] = lumaR*float32(p[0]) + lumaG*float32(p[1]) + lumaB*float32(p[2])
	}
	return field
}

// Measure computes min, max and mean brightness over a raw luminance field
// in one pass. The result does not depend on traversal order.
func Measure(field *HeightField) Stats {
	s := Stats{Min: field.Values[0], Max: field.Values[0]}

	// float64 accumulator so the mean stays exact for large grids
	var sum float64
	for _, v := range field.Values {
		s.Min = math32.Min(s.Min, v)
		s.Max = math32.Max(s.Max, v)
		sum += float64(v)
	}
	s.Mean = float32(sum / float64(len(field.Values)))
	return s
}

// Normalize rescales the field in place so values span exactly [0,1].
// A flat image (max == min) maps to constant height 0 rather than NaN.
func Normalize(field *HeightField, stats Stats) {
	span := stats.Max - stats.Min
	if span == 0 {
		for i := range field.Values {
			field.Values[i] = 0
		}
		return
	}

	for i, v := range field.Values {
		field.Values[i] = clampf((v-stats.Min)/span, 0, 1)
	}
}

// Smooth applies one 3x3 box-blur pass when contrast exceeds the threshold,
// suppressing harsh steps from posterized source images. At or below the
// threshold the input field is returned unchanged. The blur window is
// clipped at the field boundary; edge cells average over fewer samples.
func Smooth(field *HeightField, contrast, threshold float32) *HeightField {
	if contrast <= threshold {
		return field
	}

	r := field.Resolution
	out := NewHeightField(r)
	for row := 0; row < r; row++ {
		for col := 0; col < r; col++ {
			var sum float32
			var count int
			for dz := -1; dz <= 1; dz++ {
				for dx := -1; dx <= 1; dx++ {
					nc, nr := col+dx, row+dz
					if nc < 0 || nr < 0 || nc >= r || nr >= r {
						continue
					}
					sum += field.Values[nr*r+nc]
					count++
				}
			}
			out.Values[row*r+col] = sum / float32(count)
		}
	}
	return out
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
