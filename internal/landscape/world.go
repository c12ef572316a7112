// Package landscape assembles a generated terrain and the session state the
// viewer animates over it.
package landscape

import (
	"fmt"
	"time"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/engine/terrain"
	"github.com/Faultbox/landscape/pkg/noise"
)

// World is a generated terrain with the settings that produced it.
type World struct {
	Config      config.TerrainConfig
	Kind        noise.Kind
	Heightfield *terrain.Heightfield
	Mesh        *terrain.Mesh
	Elapsed     time.Duration
}

// Generate builds the heightfield and mesh described by tc.
func Generate(tc config.TerrainConfig) (*World, error) {
	kind, err := tc.NoiseKind()
	if err != nil {
		return nil, err
	}
	mode, err := tc.NormalMode()
	if err != nil {
		return nil, err
	}

	sampler, err := noise.New(kind, tc.Seed)
	if err != nil {
		return nil, err
	}
	gen, err := terrain.NewGenerator(tc.Params, sampler)
	if err != nil {
		return nil, fmt.Errorf("terrain params: %w", err)
	}

	start := time.Now()
	hf, err := gen.Heightfield(tc.Width, tc.Depth, tc.Scale)
	if err != nil {
		return nil, fmt.Errorf("heightfield: %w", err)
	}
	mesh := terrain.BuildMesh(hf, mode)

	return &World{
		Config:      tc,
		Kind:        kind,
		Heightfield: hf,
		Mesh:        mesh,
		Elapsed:     time.Since(start),
	}, nil
}

// Center returns the centre of the terrain's bounding box.
func (w *World) Center() [3]float32 {
	return w.Mesh.Bounds.Center()
}

// Extent returns the terrain's horizontal size in world units.
func (w *World) Extent() (x, z float32) {
	return float32(float64(w.Heightfield.Width) * w.Heightfield.Scale),
		float32(float64(w.Heightfield.Depth) * w.Heightfield.Scale)
}

// GroundHeight returns the terrain height under a world XZ position.
func (w *World) GroundHeight(x, z float32) float32 {
	return w.Heightfield.HeightAtWorld(x, z)
}
