package terrain

import (
	"fmt"
	"math"
	"math/bits"
)

// maxVertices is the largest vertex count whose indices all fit in uint32.
const maxVertices = uint64(math.MaxUint32) + 1

// gridSize returns the vertex and index counts of a width x depth grid, or
// ErrNumericOverflow when they cannot be represented.
func gridSize(width, depth int) (vertexCount, indexCount int, err error) {
	hi, verts := bits.Mul64(uint64(width)+1, uint64(depth)+1)
	if hi != 0 || verts > maxVertices || verts > uint64(math.MaxInt/FloatsPerVertex) {
		return 0, 0, fmt.Errorf("%w: %dx%d grid needs more vertices than uint32 indices can address",
			ErrNumericOverflow, width, depth)
	}

	hi, cells := bits.Mul64(uint64(width), uint64(depth))
	if hi != 0 || cells > uint64(math.MaxInt/IndicesPerCell) {
		return 0, 0, fmt.Errorf("%w: %dx%d grid index count exceeds addressable range",
			ErrNumericOverflow, width, depth)
	}

	return int(verts), int(cells) * IndicesPerCell, nil
}

// BuildMesh lays a heightfield out as an indexed triangle list.
// Vertices are emitted z outer, x inner, so sample (x, z) lands at
// z*(Width+1)+x.
func BuildMesh(hf *Heightfield, mode NormalMode) *Mesh {
	width, depth := hf.Width, hf.Depth
	vertexCount := (width + 1) * (depth + 1)
	scale := float32(hf.Scale)

	vertices := make([]Vertex, 0, vertexCount)
	indices := make([]uint32, 0, width*depth*IndicesPerCell)

	bounds := Bounds{
		Min: [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}

	for z := 0; z <= depth; z++ {
		for x := 0; x <= width; x++ {
			pos := [3]float32{float32(x) * scale, hf.At(x, z), float32(z) * scale}
			updateBounds(&bounds, pos)

			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   [3]float32{0, 1, 0},
				TexCoord: [2]float32{float32(x) / float32(width), float32(z) / float32(depth)},
			})
		}
	}

	// Two triangles per cell, both wound counter-clockwise seen from +Y
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			current := uint32(z*(width+1) + x)
			next := current + uint32(width) + 1

			indices = append(indices,
				current, next, current+1,
				current+1, next, next+1,
			)
		}
	}

	if mode == NormalsComputed {
		ComputeNormals(vertices, indices)
	} else {
		mode = NormalsUp
	}

	return &Mesh{
		Width:    width,
		Depth:    depth,
		Vertices: vertices,
		Indices:  indices,
		Normals:  mode,
		Bounds:   bounds,
	}
}

// ComputeNormals replaces each vertex normal with the normalized sum of the
// face normals of every triangle that references it.
func ComputeNormals(vertices []Vertex, indices []uint32) {
	sums := make([][3]float32, len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		pa := vertices[a].Position
		pb := vertices[b].Position
		pc := vertices[c].Position

		edge1 := [3]float32{pb[0] - pa[0], pb[1] - pa[1], pb[2] - pa[2]}
		edge2 := [3]float32{pc[0] - pa[0], pc[1] - pa[1], pc[2] - pa[2]}
		face := cross(edge1, edge2)

		for _, idx := range [3]uint32{a, b, c} {
			sums[idx][0] += face[0]
			sums[idx][1] += face[1]
			sums[idx][2] += face[2]
		}
	}

	for i := range vertices {
		vertices[i].Normal = normalize(sums[i])
	}
}

// Helper functions

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
