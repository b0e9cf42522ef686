package export

import "github.com/chewxy/math32"

// VertexNormals derives per-vertex normals from positions and indices:
// the unnormalized cross product of each face's edges (so larger faces
// weigh more) is accumulated on the face's vertices, then each sum is
// normalized. Degenerate vertices fall back to straight up.
func VertexNormals(positions []float32, indices []uint32) []float32 {
	normals := make([]float32, len(positions))

	for i := 0; i < len(indices); i += 3 {
		a := indices[i] * 3
		b := indices[i+1] * 3
		c := indices[i+2] * 3

		e1 := [3]float32{
			positions[b] - positions[a],
			positions[b+1] - positions[a+1],
			positions[b+2] - positions[a+2],
		}
		e2 := [3]float32{
			positions[c] - positions[a],
			positions[c+1] - positions[a+1],
			positions[c+2] - positions[a+2],
		}
		n := cross(e1, e2)

		for _, v := range [3]uint32{a, b, c} {
			normals[v] += n[0]
			normals[v+1] += n[1]
			normals[v+2] += n[2]
		}
	}

	for i := 0; i < len(normals); i += 3 {
		n := normalize([3]float32{normals[i], normals[i+1], normals[i+2]})
		normals[i], normals[i+1], normals[i+2] = n[0], n[1], n[2]
	}

	return normals
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) [3]float32 {
	len := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if len < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / len, v[1] / len, v[2] / len}
}
