// Package scene renders a generated landscape: the terrain mesh and the sun
// marker under a day/night light.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/landscape/internal/engine/terrain"
)

// Config contains scene configuration options.
type Config struct {
	SunRadius float32
	FogFar    float32 // distance at which terrain fades fully into the sky
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		SunRadius: 20,
		FogFar:    3000,
	}
}

// Frame carries the per-frame camera and lighting inputs.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	ViewPos    mgl32.Vec3

	LightPos       mgl32.Vec3
	LightColor     mgl32.Vec3
	LightIntensity float32

	SunColor mgl32.Vec3
	SkyColor mgl32.Vec3
}

// Scene owns the renderers for one landscape.
type Scene struct {
	config Config

	terrainRenderer *TerrainRenderer
	sunRenderer     *SunRenderer

	// Map bounds
	MinBounds [3]float32
	MaxBounds [3]float32
}

// New creates a new scene with the given configuration.
// A GL context must be current.
func New(cfg Config) (*Scene, error) {
	s := &Scene{config: cfg}

	var err error
	s.terrainRenderer, err = NewTerrainRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating terrain renderer: %w", err)
	}

	s.sunRenderer, err = NewSunRenderer(cfg.SunRadius)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating sun renderer: %w", err)
	}

	return s, nil
}

// LoadTerrain uploads a terrain mesh.
func (s *Scene) LoadTerrain(mesh *terrain.Mesh) error {
	if err := s.terrainRenderer.LoadMesh(mesh); err != nil {
		return fmt.Errorf("loading terrain: %w", err)
	}
	s.MinBounds = s.terrainRenderer.MinBounds
	s.MaxBounds = s.terrainRenderer.MaxBounds
	return nil
}

// Center returns the centre of the terrain bounds.
func (s *Scene) Center() mgl32.Vec3 {
	return mgl32.Vec3{
		(s.MinBounds[0] + s.MaxBounds[0]) / 2,
		(s.MinBounds[1] + s.MaxBounds[1]) / 2,
		(s.MinBounds[2] + s.MaxBounds[2]) / 2,
	}
}

// Render draws the terrain and the sun into the bound framebuffer.
func (s *Scene) Render(f *Frame) {
	s.terrainRenderer.Render(f, s.config.FogFar)
	s.sunRenderer.Render(f)
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.terrainRenderer != nil {
		s.terrainRenderer.Destroy()
		s.terrainRenderer = nil
	}
	if s.sunRenderer != nil {
		s.sunRenderer.Destroy()
		s.sunRenderer = nil
	}
}
