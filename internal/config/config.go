// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/landscape/internal/engine/terrain"
	"github.com/Faultbox/landscape/internal/logger"
	"github.com/Faultbox/landscape/pkg/noise"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Camera  CameraConfig  `yaml:"camera"`
	Sky     SkyConfig     `yaml:"sky"`
	Capture CaptureConfig `yaml:"capture"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Wireframe  bool   `yaml:"wireframe"`
}

// TerrainConfig holds the grid and noise settings of the generated landscape.
type TerrainConfig struct {
	Width   int     `yaml:"width"` // cells along X
	Depth   int     `yaml:"depth"` // cells along Z
	Scale   float64 `yaml:"scale"` // world units per cell
	Seed    int64   `yaml:"seed"`
	Noise   string  `yaml:"noise"`   // improved, classic or simplex
	Normals string  `yaml:"normals"` // up or computed

	terrain.Params `yaml:",inline"`
}

// CameraConfig holds first-person camera settings.
type CameraConfig struct {
	Position      [3]float32 `yaml:"position"`
	LookAtCenter  bool       `yaml:"look_at_center"`
	Speed         float32    `yaml:"speed"`
	Sensitivity   float32    `yaml:"sensitivity"`
	FOV           float32    `yaml:"fov"`
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	EyeHeight     float32    `yaml:"eye_height"`
	ClampToGround bool       `yaml:"clamp_to_ground"`
}

// SkyConfig holds day/night cycle settings.
type SkyConfig struct {
	DayLength   float32 `yaml:"day_length"` // seconds per full day
	StartTime   float32 `yaml:"start_time"` // 0 midnight, 0.5 noon
	SunDistance float32 `yaml:"sun_distance"`
	SunRadius   float32 `yaml:"sun_radius"`
	Paused      bool    `yaml:"paused"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Fantasy Landscape",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Terrain: TerrainConfig{
			Width:   200,
			Depth:   200,
			Scale:   10,
			Seed:    0,
			Noise:   string(noise.KindImproved),
			Normals: string(terrain.NormalsUp),
			Params:  terrain.DefaultParams(),
		},
		Camera: CameraConfig{
			Position:      [3]float32{0, 50, 100},
			LookAtCenter:  true,
			Speed:         50,
			Sensitivity:   0.1,
			FOV:           45,
			Near:          0.1,
			Far:           5000,
			EyeHeight:     2,
			ClampToGround: true,
		},
		Sky: SkyConfig{
			DayLength:   120,
			StartTime:   0.35,
			SunDistance: 800,
			SunRadius:   20,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "landscape",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// NoiseKind returns the parsed noise kind.
func (t TerrainConfig) NoiseKind() (noise.Kind, error) {
	return noise.ParseKind(t.Noise)
}

// NormalMode returns the parsed normal mode.
func (t TerrainConfig) NormalMode() (terrain.NormalMode, error) {
	return terrain.ParseNormalMode(t.Normals)
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	if c.Terrain.Width <= 0 || c.Terrain.Depth <= 0 {
		err = multierr.Append(err, fmt.Errorf("terrain: grid must be at least 1x1, got %dx%d", c.Terrain.Width, c.Terrain.Depth))
	}
	if !(c.Terrain.Scale > 0) {
		err = multierr.Append(err, fmt.Errorf("terrain: scale must be > 0, got %g", c.Terrain.Scale))
	}
	if _, e := c.Terrain.NoiseKind(); e != nil {
		err = multierr.Append(err, fmt.Errorf("terrain: %w", e))
	}
	if _, e := c.Terrain.NormalMode(); e != nil {
		err = multierr.Append(err, fmt.Errorf("terrain: %w", e))
	}
	if e := c.Terrain.Params.Validate(); e != nil {
		err = multierr.Append(err, fmt.Errorf("terrain: %w", e))
	}

	if c.Camera.FOV < 1 || c.Camera.FOV > 45 {
		err = multierr.Append(err, fmt.Errorf("camera: fov must be in [1, 45], got %g", c.Camera.FOV))
	}
	if !(c.Camera.Near > 0) || !(c.Camera.Far > c.Camera.Near) {
		err = multierr.Append(err, fmt.Errorf("camera: need 0 < near < far, got %g and %g", c.Camera.Near, c.Camera.Far))
	}

	if !(c.Sky.DayLength > 0) {
		err = multierr.Append(err, fmt.Errorf("sky: day_length must be > 0, got %g", c.Sky.DayLength))
	}
	if !(c.Sky.SunRadius > 0) {
		err = multierr.Append(err, fmt.Errorf("sky: sun_radius must be > 0, got %g", c.Sky.SunRadius))
	}

	if _, e := logger.ParseLevel(c.Logging.Level); e != nil {
		err = multierr.Append(err, fmt.Errorf("logging: %w", e))
	}

	return err
}
