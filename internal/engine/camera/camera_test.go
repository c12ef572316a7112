package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func TestNewFirstPersonDefaults(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{0, 50, 100})

	if c.Yaw != DefaultYaw || c.Pitch != DefaultPitch || c.Zoom != DefaultZoom {
		t.Errorf("unexpected defaults: yaw %v pitch %v zoom %v", c.Yaw, c.Pitch, c.Zoom)
	}

	want := mgl32.Vec3{0, 0, -1}
	if !c.Front().ApproxEqualThreshold(want, epsilon) {
		t.Errorf("expected front %v, got %v", want, c.Front())
	}
	if !c.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, epsilon) {
		t.Errorf("expected right +X, got %v", c.Right())
	}
	if !c.Up().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, epsilon) {
		t.Errorf("expected up +Y, got %v", c.Up())
	}
}

func TestProcessKeyboard(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -10}},
		{Backward, mgl32.Vec3{0, 0, 10}},
		{Left, mgl32.Vec3{-10, 0, 0}},
		{Right, mgl32.Vec3{10, 0, 0}},
		{Up, mgl32.Vec3{0, 10, 0}},
		{Down, mgl32.Vec3{0, -10, 0}},
	}

	for _, tt := range tests {
		c := NewFirstPerson(mgl32.Vec3{})
		c.Speed = 20
		c.ProcessKeyboard(tt.dir, 0.5)
		if !c.Position.ApproxEqualThreshold(tt.want, epsilon) {
			t.Errorf("direction %d: expected %v, got %v", tt.dir, tt.want, c.Position)
		}
	}
}

func TestProcessMouseMovementClampsPitch(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{})

	c.ProcessMouseMovement(0, 10000)
	if c.Pitch != MaxPitch {
		t.Errorf("expected pitch %v, got %v", MaxPitch, c.Pitch)
	}

	c.ProcessMouseMovement(0, -100000)
	if c.Pitch != -MaxPitch {
		t.Errorf("expected pitch %v, got %v", -MaxPitch, c.Pitch)
	}

	if l := c.Front().Len(); math.Abs(float64(l-1)) > epsilon {
		t.Errorf("front not unit length: %v", l)
	}
}

func TestProcessMouseMovementTurns(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{})
	c.Sensitivity = 1

	// -90 + 90 = 0 degrees yaw faces +X
	c.ProcessMouseMovement(90, 0)
	if !c.Front().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, epsilon) {
		t.Errorf("expected front +X, got %v", c.Front())
	}
}

func TestProcessMouseScroll(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{})

	c.ProcessMouseScroll(10)
	if c.Zoom != 35 {
		t.Errorf("expected zoom 35, got %v", c.Zoom)
	}

	c.ProcessMouseScroll(100)
	if c.Zoom != MinZoom {
		t.Errorf("expected zoom %v, got %v", MinZoom, c.Zoom)
	}

	c.ProcessMouseScroll(-100)
	if c.Zoom != MaxZoom {
		t.Errorf("expected zoom %v, got %v", MaxZoom, c.Zoom)
	}
}

func TestViewMatrixMovesWorld(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{0, 0, 10})
	view := c.ViewMatrix()

	// A point straight ahead ends up on the -Z axis in view space
	p := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math.Abs(float64(p.X())) > epsilon || math.Abs(float64(p.Y())) > epsilon {
		t.Errorf("expected point on view axis, got %v", p)
	}
	if math.Abs(float64(p.Z()+10)) > epsilon {
		t.Errorf("expected z = -10, got %v", p.Z())
	}
}

func TestProjectionMatrix(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{})
	proj := c.ProjectionMatrix(16.0 / 9.0)
	want := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, c.Near, c.Far)
	if !proj.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("expected %v, got %v", want, proj)
	}

	// Degenerate aspect falls back to square
	if got := c.ProjectionMatrix(0); !got.ApproxEqualThreshold(c.ProjectionMatrix(1), epsilon) {
		t.Error("expected zero aspect to behave like 1")
	}
}

func TestGroundClamp(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{0, 5, 0})
	c.Ground = func(x, z float32) float32 { return 20 }
	c.EyeHeight = 2

	c.ProcessKeyboard(Down, 1)
	if c.Position.Y() != 22 {
		t.Errorf("expected y 22, got %v", c.Position.Y())
	}

	c.ProcessKeyboard(Up, 1)
	if c.Position.Y() <= 22 {
		t.Errorf("expected camera to rise above ground, got %v", c.Position.Y())
	}
}

func TestLookAt(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{0, 0, 0})
	c.LookAt(mgl32.Vec3{10, 0, 0})
	if !c.Front().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, epsilon) {
		t.Errorf("expected front +X, got %v", c.Front())
	}

	c.LookAt(mgl32.Vec3{0, -10, -10})
	want := mgl32.Vec3{0, -1, -1}.Normalize()
	if !c.Front().ApproxEqualThreshold(want, epsilon) {
		t.Errorf("expected front %v, got %v", want, c.Front())
	}
}
