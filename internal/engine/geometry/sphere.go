// Package geometry generates simple procedural meshes.
package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Minimum tessellation for Sphere.
const (
	MinSectors = 3
	MinStacks  = 2
)

// SphereMesh is a UV sphere centred on the origin with +Y as its pole axis.
type SphereMesh struct {
	Positions []mgl32.Vec3
	Indices   []uint32
}

// Sphere builds a UV sphere with sectors slices around Y and stacks bands
// from pole to pole. Triangles wind counter-clockwise seen from outside.
// The pole bands emit one triangle per sector since their other triangle
// would be degenerate.
func Sphere(radius float32, sectors, stacks int) (*SphereMesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %v", radius)
	}
	if sectors < MinSectors || stacks < MinStacks {
		return nil, fmt.Errorf("sphere needs at least %d sectors and %d stacks, got %d and %d",
			MinSectors, MinStacks, sectors, stacks)
	}

	positions := make([]mgl32.Vec3, 0, (sectors+1)*(stacks+1))
	sectorStep := 2 * math.Pi / float64(sectors)
	stackStep := math.Pi / float64(stacks)

	for i := 0; i <= stacks; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep
		ring := float64(radius) * math.Cos(stackAngle)
		y := float32(float64(radius) * math.Sin(stackAngle))

		for j := 0; j <= sectors; j++ {
			sectorAngle := float64(j) * sectorStep
			positions = append(positions, mgl32.Vec3{
				float32(ring * math.Cos(sectorAngle)),
				y,
				float32(-ring * math.Sin(sectorAngle)),
			})
		}
	}

	indices := make([]uint32, 0, 6*sectors*(stacks-1))
	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1

		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
		}
	}

	return &SphereMesh{Positions: positions, Indices: indices}, nil
}

// Flatten returns positions as a tightly packed xyz float slice.
func (s *SphereMesh) Flatten() []float32 {
	out := make([]float32, 0, len(s.Positions)*3)
	for _, p := range s.Positions {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}
