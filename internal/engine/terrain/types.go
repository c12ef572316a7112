// Package terrain synthesizes heightfields from layered noise and builds
// indexed triangle meshes from them.
package terrain

import (
	"fmt"
	"strings"
)

// Vertex layout shared with the rendering backend.
const (
	FloatsPerVertex = 8                   // px, py, pz, nx, ny, nz, u, v
	VertexStride    = FloatsPerVertex * 4 // bytes
	PositionOffset  = 0
	NormalOffset    = 3 * 4
	TexCoordOffset  = 6 * 4
	IndicesPerCell  = 6
)

// Vertex represents a terrain mesh vertex. Its memory layout matches the
// interleaved buffer (32 bytes, no padding), so a []Vertex can be uploaded
// as is.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds the complete terrain mesh data ready for GPU upload.
type Mesh struct {
	Width    int // grid cells along X
	Depth    int // grid cells along Z
	Vertices []Vertex
	Indices  []uint32
	Normals  NormalMode
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the middle of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// NormalMode selects how vertex normals are produced.
type NormalMode string

const (
	// NormalsUp assigns every vertex the fixed normal (0, 1, 0).
	NormalsUp NormalMode = "up"
	// NormalsComputed averages the face normals of the triangles sharing
	// each vertex. Lighting differs visibly from NormalsUp.
	NormalsComputed NormalMode = "computed"
)

// ParseNormalMode converts a mode name to a NormalMode. The empty string
// selects NormalsUp.
func ParseNormalMode(s string) (NormalMode, error) {
	switch NormalMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", NormalsUp:
		return NormalsUp, nil
	case NormalsComputed:
		return NormalsComputed, nil
	default:
		return "", fmt.Errorf("%w: unknown normal mode %q", ErrInvalidArgument, s)
	}
}

// Interleaved returns the vertex data as a flat float slice,
// FloatsPerVertex values per vertex.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}

// VertexIndex returns the flat buffer index of grid sample (x, z).
func (m *Mesh) VertexIndex(x, z int) int {
	return z*(m.Width+1) + x
}
