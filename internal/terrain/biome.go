package terrain

// Band maps a normalized elevation range to a classification color.
// Bands are evaluated in order; a height belongs to the first band whose
// Max it is strictly below. The final band also includes its Max, so 1.0
// classifies as the top band.
type Band struct {
	Max   float32
	Color [3]float32
}

// DefaultBands returns the standard five-band palette: water, beach,
// vegetation, rock, snow. Hard-edged on purpose; no gradient between bands.
func DefaultBands() []Band {
	return []Band{
		{Max: 0.2, Color: bandRGB(0, 75, 130)},    // deep blue water
		{Max: 0.4, Color: bandRGB(194, 178, 128)}, // amber beach
		{Max: 0.7, Color: bandRGB(90, 160, 40)},   // vegetation
		{Max: 0.9, Color: bandRGB(105, 110, 115)}, // rock
		{Max: 1.0, Color: bandRGB(235, 238, 240)}, // snow cap
	}
}

// Classify maps a normalized height in [0,1] to its band color.
// Out-of-range input must be clamped by the caller.
func Classify(height float32, bands []Band) [3]float32 {
	for _, b := range bands[:len(bands)-1] {
		if height < b.Max {
			return b.Color
		}
	}
	return bands[len(bands)-1].Color
}

func bandRGB(r, g, b uint8) [3]float32 {
	return [3]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}
