package noise

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestReferencePermutationIsPermutation(t *testing.T) {
	table := Reference()

	seen := make(map[int]bool)
	for i := 0; i < TableSize; i++ {
		v := table.At(i)
		if v < 0 || v > 255 {
			t.Fatalf("entry %d out of range: %d", i, v)
		}
		if seen[v] {
			t.Fatalf("value %d appears twice", v)
		}
		seen[v] = true
	}
	if len(seen) != TableSize {
		t.Errorf("expected %d distinct values, got %d", TableSize, len(seen))
	}

	// Second half duplicates the first
	for i := 0; i < TableSize; i++ {
		if table.At(i) != table.At(TableSize+i) {
			t.Errorf("entry %d: expected duplicate %d, got %d", i, table.At(i), table.At(TableSize+i))
		}
	}

	// Spot-check the canonical sequence
	if table.At(0) != 151 || table.At(1) != 160 || table.At(255) != 180 {
		t.Errorf("unexpected reference values: %d %d %d", table.At(0), table.At(1), table.At(255))
	}
}

func TestSeededPermutation(t *testing.T) {
	a := BuildPermutation(42)
	b := BuildPermutation(42)
	c := BuildPermutation(7)

	if *a != *b {
		t.Error("same seed should produce identical tables")
	}
	if *a == *c {
		t.Error("different seeds should produce different tables")
	}
	if *a == *Reference() {
		t.Error("non-zero seed should not produce the reference table")
	}

	seen := make(map[int]bool)
	for i := 0; i < TableSize; i++ {
		seen[a.At(i)] = true
	}
	if len(seen) != TableSize {
		t.Errorf("seeded table is not a permutation: %d distinct values", len(seen))
	}
}

func TestSampleBounded(t *testing.T) {
	table := Reference()
	rng := rand.New(rand.NewSource(1))

	const tolerance = 1e-9
	for i := 0; i < 10000; i++ {
		x := (rng.Float64() - 0.5) * 2000
		z := (rng.Float64() - 0.5) * 2000
		y := (rng.Float64() - 0.5) * 2000

		v := table.Sample(x, z, y)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Sample(%f, %f, %f) is not finite: %f", x, z, y, v)
		}
		if v < -1-tolerance || v > 1+tolerance {
			t.Fatalf("Sample(%f, %f, %f) = %f, outside [-1, 1]", x, z, y, v)
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	a := Reference()
	b := Reference()

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.137
		z := float64(i) * 0.291
		if a.Sample(x, z, 0.5) != b.Sample(x, z, 0.5) {
			t.Fatalf("sample %d differs between identical tables", i)
		}
	}
}

func TestSampleZeroAtLattice(t *testing.T) {
	table := Reference()

	// All gradient dot products vanish at integer lattice points
	for _, p := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-4, 7, 0}, {255, 256, 1}} {
		if v := table.Sample(p[0], p[1], p[2]); v != 0 {
			t.Errorf("Sample(%v) = %f, expected 0 at lattice point", p, v)
		}
	}
}

func TestSampleContinuity(t *testing.T) {
	table := Reference()
	rng := rand.New(rand.NewSource(2))

	const eps = 1e-4
	const bound = 20 * eps
	for i := 0; i < 1000; i++ {
		x := rng.Float64() * 64
		z := rng.Float64() * 64

		a := table.Sample(x, z, 0.5)
		b := table.Sample(x+eps, z, 0.5)
		c := table.Sample(x, z+eps, 0.5)

		if math.Abs(a-b) > bound {
			t.Fatalf("x step at (%f, %f): |%f - %f| exceeds %g", x, z, a, b, bound)
		}
		if math.Abs(a-c) > bound {
			t.Fatalf("z step at (%f, %f): |%f - %f| exceeds %g", x, z, a, c, bound)
		}
	}
}

func TestSampleContinuousAcrossCellBoundary(t *testing.T) {
	table := Reference()

	const eps = 1e-6
	for _, x := range []float64{1, 2, 17, 100} {
		below := table.Sample(x-eps, 0.3, 0.5)
		above := table.Sample(x+eps, 0.3, 0.5)
		if math.Abs(below-above) > 1e-4 {
			t.Errorf("discontinuity at x=%f: %f vs %f", x, below, above)
		}
	}
}

func TestFade(t *testing.T) {
	if fade(0) != 0 {
		t.Errorf("fade(0): expected 0, got %f", fade(0))
	}
	if fade(1) != 1 {
		t.Errorf("fade(1): expected 1, got %f", fade(1))
	}
	if fade(0.5) != 0.5 {
		t.Errorf("fade(0.5): expected 0.5, got %f", fade(0.5))
	}
	// Quintic, not cubic Hermite (3t^2 - 2t^3 = 0.104 at 0.25)
	want := 6*math.Pow(0.25, 5) - 15*math.Pow(0.25, 4) + 10*math.Pow(0.25, 3)
	if math.Abs(fade(0.25)-want) > 1e-12 {
		t.Errorf("fade(0.25): expected %f, got %f", want, fade(0.25))
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"", KindImproved},
		{"improved", KindImproved},
		{"Classic", KindClassic},
		{" simplex ", KindSimplex},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}

	if _, err := ParseKind("value"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestNewKinds(t *testing.T) {
	for _, kind := range []Kind{KindImproved, KindClassic, KindSimplex} {
		t.Run(string(kind), func(t *testing.T) {
			a, err := New(kind, 99)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			b, err := New(kind, 99)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			for i := 0; i < 50; i++ {
				x := float64(i)*0.31 + 0.05
				z := float64(i)*0.17 + 0.11
				va := a.Sample(x, z, 0.5)
				vb := b.Sample(x, z, 0.5)
				if va != vb {
					t.Fatalf("sample %d not deterministic: %f vs %f", i, va, vb)
				}
				if math.IsNaN(va) || math.Abs(va) > 1.5 {
					t.Fatalf("sample %d out of range: %f", i, va)
				}
			}
		})
	}

	if _, err := New("worley", 0); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestImprovedIsPermutationTable(t *testing.T) {
	s, err := New(KindImproved, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	table, ok := s.(*PermutationTable)
	if !ok {
		t.Fatalf("expected *PermutationTable, got %T", s)
	}
	if *table != *Reference() {
		t.Error("seed 0 should produce the reference table")
	}
}
