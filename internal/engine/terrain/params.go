package terrain

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// Terrain generation errors.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNumericOverflow = errors.New("numeric overflow")
)

// Params controls the character of the synthesized terrain.
type Params struct {
	Octaves     int     `yaml:"octaves"`     // noise passes summed per sample
	Persistence float64 `yaml:"persistence"` // amplitude multiplier per octave, in (0, 1)
	Lacunarity  float64 `yaml:"lacunarity"`  // frequency multiplier per octave, > 1
	NoiseScale  float64 `yaml:"noise_scale"` // horizontal stretch of the noise field
	MeshHeight  float64 `yaml:"mesh_height"` // vertical scale applied before shaping

	// ShapeExponent is applied to the scaled octave sum with its sign kept.
	// The sum is not normalized first, so relief grows non-linearly with
	// MeshHeight. 1 disables shaping.
	ShapeExponent float64 `yaml:"shape_exponent"`
}

// DefaultParams returns the parameters of the reference landscape.
func DefaultParams() Params {
	return Params{
		Octaves:       6,
		Persistence:   0.5,
		Lacunarity:    2.0,
		NoiseScale:    1000,
		MeshHeight:    15,
		ShapeExponent: 3,
	}
}

// Validate reports every rule the parameters break.
func (p Params) Validate() error {
	var err error
	if p.Octaves < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: octaves must be >= 0, got %d", ErrInvalidArgument, p.Octaves))
	}
	if !(p.Persistence > 0 && p.Persistence < 1) {
		err = multierr.Append(err, fmt.Errorf("%w: persistence must be in (0, 1), got %g", ErrInvalidArgument, p.Persistence))
	}
	if !(p.Lacunarity > 1) || math.IsInf(p.Lacunarity, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: lacunarity must be > 1, got %g", ErrInvalidArgument, p.Lacunarity))
	}
	if !(p.NoiseScale > 0) || math.IsInf(p.NoiseScale, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: noise scale must be > 0, got %g", ErrInvalidArgument, p.NoiseScale))
	}
	if math.IsNaN(p.MeshHeight) || math.IsInf(p.MeshHeight, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: mesh height must be finite, got %g", ErrInvalidArgument, p.MeshHeight))
	}
	if !(p.ShapeExponent > 0) || math.IsInf(p.ShapeExponent, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: shape exponent must be > 0, got %g", ErrInvalidArgument, p.ShapeExponent))
	}
	return err
}

// Shape applies the shaping power to h, preserving its sign.
func (p Params) Shape(h float64) float64 {
	return math.Copysign(math.Pow(math.Abs(h), p.ShapeExponent), h)
}

// validateGrid checks the grid dimensions and world scale.
func validateGrid(width, depth int, scale float64) error {
	var err error
	if width < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: width must be >= 1, got %d", ErrInvalidArgument, width))
	}
	if depth < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: depth must be >= 1, got %d", ErrInvalidArgument, depth))
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: scale must be > 0, got %g", ErrInvalidArgument, scale))
	}
	return err
}
