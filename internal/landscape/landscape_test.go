package landscape

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/engine/lighting"
	"github.com/Faultbox/landscape/internal/engine/terrain"
	"github.com/Faultbox/landscape/pkg/noise"
)

func smallTerrain() config.TerrainConfig {
	tc := config.Default().Terrain
	tc.Width = 16
	tc.Depth = 8
	tc.Scale = 10
	return tc
}

func TestGenerate(t *testing.T) {
	w, err := Generate(smallTerrain())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if got := len(w.Mesh.Vertices); got != 17*9 {
		t.Errorf("expected %d vertices, got %d", 17*9, got)
	}
	if got := len(w.Mesh.Indices); got != 16*8*6 {
		t.Errorf("expected %d indices, got %d", 16*8*6, got)
	}
	if w.Kind != noise.KindImproved {
		t.Errorf("expected improved noise, got %s", w.Kind)
	}

	x, z := w.Extent()
	if x != 160 || z != 80 {
		t.Errorf("expected extent 160x80, got %vx%v", x, z)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	tc := smallTerrain()
	tc.Seed = 31

	a, err := Generate(tc)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(tc)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for i := range a.Heightfield.Heights {
		if a.Heightfield.Heights[i] != b.Heightfield.Heights[i] {
			t.Fatalf("height %d differs: %v vs %v", i, a.Heightfield.Heights[i], b.Heightfield.Heights[i])
		}
	}
}

func TestGenerateNoiseKinds(t *testing.T) {
	for _, kind := range []string{"improved", "classic", "simplex"} {
		t.Run(kind, func(t *testing.T) {
			tc := smallTerrain()
			tc.Noise = kind
			tc.Normals = "computed"

			w, err := Generate(tc)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if w.Mesh.Normals != terrain.NormalsComputed {
				t.Errorf("expected computed normals, got %s", w.Mesh.Normals)
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.TerrainConfig)
		target error
	}{
		{"unknown noise", func(tc *config.TerrainConfig) { tc.Noise = "value" }, noise.ErrUnknownKind},
		{"unknown normals", func(tc *config.TerrainConfig) { tc.Normals = "flat" }, terrain.ErrInvalidArgument},
		{"bad params", func(tc *config.TerrainConfig) { tc.Octaves = -1 }, terrain.ErrInvalidArgument},
		{"empty grid", func(tc *config.TerrainConfig) { tc.Width = 0 }, terrain.ErrInvalidArgument},
		{"huge grid", func(tc *config.TerrainConfig) { tc.Width, tc.Depth = 1<<20, 1<<20 }, terrain.ErrNumericOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := smallTerrain()
			tt.mutate(&tc)

			_, err := Generate(tc)
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestGroundHeight(t *testing.T) {
	w, err := Generate(smallTerrain())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := w.Heightfield.At(3, 2)
	if got := w.GroundHeight(30, 20); got != want {
		t.Errorf("expected %v at grid sample, got %v", want, got)
	}
}

func TestStateFollowsCycle(t *testing.T) {
	center := mgl32.Vec3{100, 0, 100}
	s := NewState(lighting.NewDayCycle(100, lighting.Noon), center, 500)

	if s.IsNight() {
		t.Error("noon should not be night")
	}
	if math.Abs(float64(s.LightPos.Y()-500)) > 1e-2 {
		t.Errorf("expected sun overhead at y=500, got %v", s.LightPos)
	}
	if !s.SkyColor.ApproxEqualThreshold(lighting.DaySky, 1e-4) {
		t.Errorf("expected day sky, got %v", s.SkyColor)
	}

	// Half a day later it is midnight
	s.Advance(50)
	if math.Abs(float64(s.TimeOfDay())) > 1e-4 && math.Abs(float64(s.TimeOfDay()-1)) > 1e-4 {
		t.Errorf("expected midnight, got %v", s.TimeOfDay())
	}
	if !s.IsNight() {
		t.Error("midnight should be night")
	}
	if math.Abs(float64(s.LightIntensity-lighting.MinIntensity)) > 1e-4 {
		t.Errorf("expected night intensity %v, got %v", lighting.MinIntensity, s.LightIntensity)
	}
}

func TestStatePaused(t *testing.T) {
	cycle := lighting.NewDayCycle(100, 0.3)
	cycle.Paused = true
	s := NewState(cycle, mgl32.Vec3{}, 100)

	before := s.LightPos
	s.Advance(25)
	if s.LightPos != before {
		t.Errorf("paused state moved sun from %v to %v", before, s.LightPos)
	}

	s.SetTime(lighting.Sunset)
	if s.LightPos == before {
		t.Error("SetTime should move the sun even while paused")
	}
}
