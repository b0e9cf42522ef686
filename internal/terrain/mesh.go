package terrain

// Params holds the fixed constants of mesh synthesis. Callers wanting
// non-default values thread a custom Params through SynthesizeWith rather
// than mutating globals.
type Params struct {
	TerrainSize     float32 // world units spanned by the full grid
	VerticalOffset  float32 // constant lift above the reference ground plane
	SmoothThreshold float32 // contrast above which the box-blur runs
	Bands           []Band
}

// DefaultParams returns the standard synthesis constants.
func DefaultParams() Params {
	return Params{
		TerrainSize:     100,
		VerticalOffset:  5,
		SmoothThreshold: 0.7,
		Bands:           DefaultBands(),
	}
}

// BuildMesh places the normalized height field onto a regular grid of
// world-space vertices straddling the origin and triangulates it.
//
// Classification uses the normalized height, not the scaled elevation, so
// biome bands are invariant under heightScale.
func BuildMesh(field *HeightField, heightScale float32, p Params) *GeometryBuffer {
	r := field.Resolution
	stepSize := p.TerrainSize / float32(r-1)
	half := float32(r) / 2

	g := &GeometryBuffer{
		Positions: make([]float32, 0, r*r*3),
		Colors:    make([]float32, 0, r*r*3),
		UVs:       make([]float32, 0, r*r*2),
		Indices:   make([]uint32, 0, (r-1)*(r-1)*6),
	}

	for z := 0; z < r; z++ {
		for x := 0; x < r; x++ {
			h := field.Values[z*r+x]
			g.Positions = append(g.Positions,
				(float32(x)-half)*stepSize,
				h*heightScale+p.VerticalOffset,
				(float32(z)-half)*stepSize,
			)
			g.UVs = append(g.UVs,
				float32(x)/float32(r-1),
				float32(z)/float32(r-1),
			)
			c := Classify(clampf(h, 0, 1), p.Bands)
			g.Colors = append(g.Colors, c[0], c[1], c[2])
		}
	}

	// Two triangles per quad. Winding is fixed: it decides the front face
	// for the consuming renderer.
	for z := 0; z < r-1; z++ {
		for x := 0; x < r-1; x++ {
			topLeft := uint32(z*r + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*r + x)
			bottomRight := bottomLeft + 1

			g.Indices = append(g.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return g
}
