// Package terrain turns decoded image pixels into a triangulated,
// biome-colored elevation mesh. The pipeline is a pure function of its
// inputs: luminance extraction, statistics, normalization, adaptive
// smoothing, then grid mesh synthesis.
package terrain

// RGB is one decoded pixel sample, one byte per channel.
type RGB [3]uint8

// HeightField is a dense square grid of height samples.
// Values hold raw luminance in [0,255] until Normalize runs, and
// normalized heights in [0,1] afterwards. Row-major: index = row*R + col.
type HeightField struct {
	Values     []float32
	Resolution int
}

// NewHeightField allocates a zeroed field of resolution r.
func NewHeightField(r int) *HeightField {
	return &HeightField{
		Values:     make([]float32, r*r),
		Resolution: r,
	}
}

// At returns the sample at the given column and row.
func (f *HeightField) At(col, row int) float32 {
	return f.Values[row*f.Resolution+col]
}

// Stats summarizes the brightness distribution of a raw luminance field.
type Stats struct {
	Min  float32
	Max  float32
	Mean float32
}

// Contrast returns the brightness spread as a fraction of the 8-bit range.
func (s Stats) Contrast() float32 {
	return (s.Max - s.Min) / 255
}

// GeometryBuffer holds the flat mesh data ready for a renderer.
// Normals are intentionally absent; the consumer derives them from
// positions and indices.
type GeometryBuffer struct {
	Positions []float32 // 3 floats per vertex (x, y, z)
	Colors    []float32 // 3 floats per vertex (r, g, b in [0,1])
	UVs       []float32 // 2 floats per vertex
	Indices   []uint32  // 3 per triangle
}

// VertexCount returns the number of vertices in the buffer.
func (g *GeometryBuffer) VertexCount() int {
	return len(g.Positions) / 3
}

// TriangleCount returns the number of triangles in the index buffer.
func (g *GeometryBuffer) TriangleCount() int {
	return len(g.Indices) / 3
}
