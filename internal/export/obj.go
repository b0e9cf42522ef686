// Package export writes synthesized geometry to consumable artifacts:
// Wavefront OBJ meshes and top-down biome preview images. Vertex normals
// are derived here, on the consumer side of the geometry buffer.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/terramesh/internal/terrain"
)

// WriteOBJ writes the geometry as Wavefront OBJ. Vertex colors ride on the
// v lines as three extra floats (a widely supported OBJ extension). Face
// elements reference position, texcoord and normal with the same index
// since all three arrays are per-vertex.
func WriteOBJ(w io.Writer, g *terrain.GeometryBuffer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "o terrain")

	for i := 0; i < len(g.Positions); i += 3 {
		fmt.Fprintf(bw, "v %g %g %g %g %g %g\n",
			g.Positions[i], g.Positions[i+1], g.Positions[i+2],
			g.Colors[i], g.Colors[i+1], g.Colors[i+2])
	}

	for i := 0; i < len(g.UVs); i += 2 {
		fmt.Fprintf(bw, "vt %g %g\n", g.UVs[i], g.UVs[i+1])
	}

	normals := VertexNormals(g.Positions, g.Indices)
	for i := 0; i < len(normals); i += 3 {
		fmt.Fprintf(bw, "vn %g %g %g\n", normals[i], normals[i+1], normals[i+2])
	}

	// OBJ indices are 1-based
	for i := 0; i < len(g.Indices); i += 3 {
		a, b, c := g.Indices[i]+1, g.Indices[i+1]+1, g.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

// SaveOBJ writes the geometry to an OBJ file at path.
func SaveOBJ(path string, g *terrain.GeometryBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WriteOBJ(f, g); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
