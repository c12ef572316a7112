package terrain

import (
	"fmt"
	"math"

	"github.com/Faultbox/landscape/pkg/noise"
)

// sliceY is the fixed third noise coordinate; it keeps samples off the
// integer lattice plane, where improved noise is identically zero.
const sliceY = 0.5

// Generator turns noise into heights and meshes.
type Generator struct {
	params Params
	noise  noise.Sampler
}

// NewGenerator validates params and binds them to a noise sampler.
func NewGenerator(params Params, sampler noise.Sampler) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if sampler == nil {
		return nil, fmt.Errorf("%w: nil noise sampler", ErrInvalidArgument)
	}
	return &Generator{params: params, noise: sampler}, nil
}

// Params returns the generator's parameters.
func (g *Generator) Params() Params {
	return g.params
}

// RawHeightAt returns the octave sum at grid sample (x, z) multiplied by
// MeshHeight, before shaping.
func (g *Generator) RawHeightAt(x, z int, scale float64) float64 {
	p := &g.params

	amp, freq := 1.0, 1.0
	var acc float64
	for o := 0; o < p.Octaves; o++ {
		xs := float64(x) * scale / p.NoiseScale * freq
		zs := float64(z) * scale / p.NoiseScale * freq
		acc += g.noise.Sample(xs, zs, sliceY) * amp
		amp *= p.Persistence
		freq *= p.Lacunarity
	}
	return acc * p.MeshHeight
}

// HeightAt returns the shaped elevation of grid sample (x, z).
func (g *Generator) HeightAt(x, z int, scale float64) float64 {
	return g.params.Shape(g.RawHeightAt(x, z, scale))
}

// Heightfield samples every grid point of a width x depth cell grid.
func (g *Generator) Heightfield(width, depth int, scale float64) (*Heightfield, error) {
	if err := validateGrid(width, depth, scale); err != nil {
		return nil, err
	}
	vertexCount, _, err := gridSize(width, depth)
	if err != nil {
		return nil, err
	}

	hf := &Heightfield{
		Width:   width,
		Depth:   depth,
		Scale:   scale,
		Heights: make([]float32, vertexCount),
	}
	for z := 0; z <= depth; z++ {
		for x := 0; x <= width; x++ {
			hf.Heights[z*(width+1)+x] = float32(g.HeightAt(x, z, scale))
		}
	}
	return hf, nil
}

// Build generates the heightfield and its mesh in one step.
func (g *Generator) Build(width, depth int, scale float64, mode NormalMode) (*Mesh, error) {
	switch mode {
	case NormalsUp, NormalsComputed:
	default:
		return nil, fmt.Errorf("%w: unknown normal mode %q", ErrInvalidArgument, mode)
	}

	hf, err := g.Heightfield(width, depth, scale)
	if err != nil {
		return nil, err
	}
	return BuildMesh(hf, mode), nil
}

// Heightfield is a grid of (Width+1) x (Depth+1) elevations stored row-major,
// z outer and x inner.
type Heightfield struct {
	Width   int     // cells along X
	Depth   int     // cells along Z
	Scale   float64 // world units per cell
	Heights []float32
}

// At returns the height of grid sample (x, z).
func (h *Heightfield) At(x, z int) float32 {
	return h.Heights[z*(h.Width+1)+x]
}

// Range returns the minimum and maximum height.
func (h *Heightfield) Range() (min, max float32) {
	if len(h.Heights) == 0 {
		return 0, 0
	}
	min, max = h.Heights[0], h.Heights[0]
	for _, v := range h.Heights[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// HeightAtWorld returns the bilinearly interpolated terrain height at a
// world position. Positions outside the grid are clamped to its edge.
func (h *Heightfield) HeightAtWorld(worldX, worldZ float32) float32 {
	if len(h.Heights) == 0 {
		return 0
	}

	cellSize := float32(h.Scale)
	cellFX := clampf(worldX/cellSize, 0, float32(h.Width))
	cellFZ := clampf(worldZ/cellSize, 0, float32(h.Depth))

	cellX := int(cellFX)
	cellZ := int(cellFZ)
	if cellX >= h.Width {
		cellX = h.Width - 1
	}
	if cellZ >= h.Depth {
		cellZ = h.Depth - 1
	}

	fracX := clampf(cellFX-float32(cellX), 0, 1)
	fracZ := clampf(cellFZ-float32(cellZ), 0, 1)

	h00 := h.At(cellX, cellZ)
	h10 := h.At(cellX+1, cellZ)
	h01 := h.At(cellX, cellZ+1)
	h11 := h.At(cellX+1, cellZ+1)

	near := h00*(1-fracX) + h10*fracX
	far := h01*(1-fracX) + h11*fracX
	return near*(1-fracZ) + far*fracZ
}

func clampf(v, min, max float32) float32 {
	if math.IsNaN(float64(v)) {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
