package noise

import (
	"errors"
	"fmt"
	"strings"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// ErrUnknownKind is returned by New for an unrecognised noise kind.
var ErrUnknownKind = errors.New("unknown noise kind")

// Kind selects a noise implementation.
type Kind string

// Supported noise kinds.
const (
	KindImproved Kind = "improved" // Perlin 2002 gradient noise over a PermutationTable
	KindClassic  Kind = "classic"  // Perlin 1985 noise with seeded random gradients
	KindSimplex  Kind = "simplex"  // OpenSimplex
)

// Sampler returns a deterministic scalar for a continuous coordinate.
// Arguments are ordered (x, z, y): two horizontal axes, then the slice axis.
type Sampler interface {
	Sample(x, z, y float64) float64
}

// ParseKind converts a config string into a Kind.
// The empty string selects KindImproved.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindImproved, nil
	case KindImproved, KindClassic, KindSimplex:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New builds a sampler of the given kind. Every kind is deterministic for
// a fixed seed.
func New(kind Kind, seed int64) (Sampler, error) {
	switch kind {
	case KindImproved, "":
		return BuildPermutation(seed), nil
	case KindClassic:
		return NewClassic(seed), nil
	case KindSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Classic wraps go-perlin as a single-octave sampler. Octave summation is
// left to the caller, so the library's own octave loop is pinned to one pass.
type Classic struct {
	p *perlin.Perlin
}

// NewClassic creates a classic Perlin sampler.
func NewClassic(seed int64) *Classic {
	return &Classic{p: perlin.NewPerlin(2, 2, 1, seed)}
}

// Sample implements Sampler.
func (c *Classic) Sample(x, z, y float64) float64 {
	return c.p.Noise3D(x, z, y)
}

// Simplex wraps opensimplex-go.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates an OpenSimplex sampler.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Sample implements Sampler.
func (s *Simplex) Sample(x, z, y float64) float64 {
	return s.n.Eval3(x, z, y)
}
