package terrain

import "testing"

func flatField(r int) *HeightField {
	return NewHeightField(r)
}

func TestBuildMesh_Shape(t *testing.T) {
	for _, r := range []int{2, 3, 8, 17} {
		g := BuildMesh(flatField(r), 10, DefaultParams())

		if got, want := g.VertexCount(), r*r; got != want {
			t.Errorf("R=%d: expected %d vertices, got %d", r, want, got)
		}
		if got, want := g.TriangleCount(), 2*(r-1)*(r-1); got != want {
			t.Errorf("R=%d: expected %d triangles, got %d", r, want, got)
		}
		if got, want := len(g.UVs), r*r*2; got != want {
			t.Errorf("R=%d: expected %d uv floats, got %d", r, want, got)
		}
		if got, want := len(g.Colors), r*r*3; got != want {
			t.Errorf("R=%d: expected %d color floats, got %d", r, want, got)
		}
	}
}

func TestBuildMesh_Winding(t *testing.T) {
	g := BuildMesh(flatField(2), 10, DefaultParams())

	want := []uint32{0, 2, 1, 1, 2, 3}
	if len(g.Indices) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(g.Indices))
	}
	for i, w := range want {
		if g.Indices[i] != w {
			t.Fatalf("index %d: expected %d, got %d (winding must not change)", i, w, g.Indices[i])
		}
	}
}

func TestBuildMesh_IndicesInRange(t *testing.T) {
	r := 5
	g := BuildMesh(flatField(r), 10, DefaultParams())

	for i, idx := range g.Indices {
		if idx >= uint32(r*r) {
			t.Errorf("index %d: references vertex %d, only %d exist", i, idx, r*r)
		}
	}
}

func TestBuildMesh_UVs(t *testing.T) {
	r := 3
	g := BuildMesh(flatField(r), 10, DefaultParams())

	// UVs span [0,1] and increase monotonically along each axis.
	for i := 0; i < len(g.UVs); i++ {
		if g.UVs[i] < 0 || g.UVs[i] > 1 {
			t.Errorf("uv float %d: %f out of [0,1]", i, g.UVs[i])
		}
	}
	for z := 0; z < r; z++ {
		for x := 0; x < r; x++ {
			i := (z*r + x) * 2
			if wu := float32(x) / float32(r-1); g.UVs[i] != wu {
				t.Errorf("vertex (%d,%d): expected u %f, got %f", x, z, wu, g.UVs[i])
			}
			if wv := float32(z) / float32(r-1); g.UVs[i+1] != wv {
				t.Errorf("vertex (%d,%d): expected v %f, got %f", x, z, wv, g.UVs[i+1])
			}
		}
	}
}

func TestBuildMesh_VerticalOffset(t *testing.T) {
	p := DefaultParams()
	g := BuildMesh(flatField(4), 10, p)

	for i := 0; i < len(g.Positions); i += 3 {
		if g.Positions[i+1] != p.VerticalOffset {
			t.Errorf("vertex %d: flat field should sit at y=%f, got %f",
				i/3, p.VerticalOffset, g.Positions[i+1])
		}
	}
}

func TestBuildMesh_WorldPlacement(t *testing.T) {
	p := DefaultParams()
	r := 3
	g := BuildMesh(flatField(r), 10, p)

	step := p.TerrainSize / float32(r-1)
	half := float32(r) / 2
	for z := 0; z < r; z++ {
		for x := 0; x < r; x++ {
			i := (z*r + x) * 3
			if wx := (float32(x) - half) * step; g.Positions[i] != wx {
				t.Errorf("vertex (%d,%d): expected x %f, got %f", x, z, wx, g.Positions[i])
			}
			if wz := (float32(z) - half) * step; g.Positions[i+2] != wz {
				t.Errorf("vertex (%d,%d): expected z %f, got %f", x, z, wz, g.Positions[i+2])
			}
		}
	}
}

func TestBuildMesh_ColorsUseNormalizedHeight(t *testing.T) {
	field := &HeightField{
		Values: []float32{
			0, 0.3,
			0.5, 0.95,
		},
		Resolution: 2,
	}
	p := DefaultParams()
	g := BuildMesh(field, 50, p)

	wantBands := []int{0, 1, 2, 4}
	for v, band := range wantBands {
		want := p.Bands[band].Color
		got := [3]float32{g.Colors[v*3], g.Colors[v*3+1], g.Colors[v*3+2]}
		if got != want {
			t.Errorf("vertex %d: expected band %d color %v, got %v", v, band, want, got)
		}
	}
}
