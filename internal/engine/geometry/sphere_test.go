package geometry

import (
	"math"
	"testing"
)

func TestSphereCounts(t *testing.T) {
	s, err := Sphere(2, 36, 18)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}

	if len(s.Positions) != 37*19 {
		t.Errorf("expected %d positions, got %d", 37*19, len(s.Positions))
	}

	// Pole bands contribute one triangle per sector, the rest two
	wantIndices := 6*36*(18-2) + 2*3*36
	if len(s.Indices) != wantIndices {
		t.Errorf("expected %d indices, got %d", wantIndices, len(s.Indices))
	}

	for i, idx := range s.Indices {
		if int(idx) >= len(s.Positions) {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}
}

func TestSphereRadius(t *testing.T) {
	const radius = 5
	s, err := Sphere(radius, 12, 8)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}

	for i, p := range s.Positions {
		if d := math.Abs(float64(p.Len()) - radius); d > 1e-4 {
			t.Errorf("vertex %d at distance %v, want %v", i, p.Len(), radius)
		}
	}

	top := s.Positions[0]
	bottom := s.Positions[len(s.Positions)-1]
	if math.Abs(float64(top.Y())-radius) > 1e-4 || math.Abs(float64(bottom.Y())+radius) > 1e-4 {
		t.Errorf("expected poles on Y axis, got top %v bottom %v", top, bottom)
	}
}

func TestSphereInvalid(t *testing.T) {
	tests := []struct {
		name            string
		radius          float32
		sectors, stacks int
	}{
		{"zero radius", 0, 8, 8},
		{"negative radius", -1, 8, 8},
		{"too few sectors", 1, 2, 8},
		{"too few stacks", 1, 8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Sphere(tt.radius, tt.sectors, tt.stacks); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSphereFlatten(t *testing.T) {
	s, err := Sphere(1, 4, 2)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}

	flat := s.Flatten()
	if len(flat) != len(s.Positions)*3 {
		t.Fatalf("expected %d floats, got %d", len(s.Positions)*3, len(flat))
	}
	for i, p := range s.Positions {
		if flat[i*3] != p[0] || flat[i*3+1] != p[1] || flat[i*3+2] != p[2] {
			t.Errorf("position %d mismatch: %v vs %v", i, p, flat[i*3:i*3+3])
		}
	}
}

func TestSphereWindingFacesOutward(t *testing.T) {
	s, err := Sphere(1, 16, 8)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}

	for i := 0; i+2 < len(s.Indices); i += 3 {
		a := s.Positions[s.Indices[i]]
		b := s.Positions[s.Indices[i+1]]
		c := s.Positions[s.Indices[i+2]]

		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if normal.Dot(centroid) <= 0 {
			t.Fatalf("triangle %d faces inward", i/3)
		}
	}
}
