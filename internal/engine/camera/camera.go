// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Default camera settings.
const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 50
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45
	DefaultNear        float32 = 0.1
	DefaultFar         float32 = 5000

	MinZoom  float32 = 1
	MaxZoom  float32 = 45
	MaxPitch float32 = 89
)

// GroundFunc returns the terrain height under a world XZ position.
type GroundFunc func(x, z float32) float32

// FirstPerson is a free-flying camera steered by keyboard and mouse.
type FirstPerson struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Euler angles in degrees
	Yaw   float32
	Pitch float32

	Speed       float32 // world units per second
	Sensitivity float32 // degrees per mouse pixel
	Zoom        float32 // vertical field of view, degrees

	Near, Far float32

	// Ground clamp, disabled when Ground is nil
	Ground    GroundFunc
	EyeHeight float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// NewFirstPerson creates a camera at position looking down -Z.
func NewFirstPerson(position mgl32.Vec3) *FirstPerson {
	c := &FirstPerson{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Zoom:        DefaultZoom,
		Near:        DefaultNear,
		Far:         DefaultFar,
	}
	c.updateVectors()
	return c
}

// Front returns the unit view direction.
func (c *FirstPerson) Front() mgl32.Vec3 { return c.front }

// Right returns the unit right vector.
func (c *FirstPerson) Right() mgl32.Vec3 { return c.right }

// Up returns the camera's unit up vector.
func (c *FirstPerson) Up() mgl32.Vec3 { return c.up }

// ViewMatrix returns the view matrix for this camera.
func (c *FirstPerson) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// ProjectionMatrix returns a perspective projection for the given aspect ratio.
func (c *FirstPerson) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, c.Near, c.Far)
}

// ProcessKeyboard moves the camera along its axes for dt seconds.
func (c *FirstPerson) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
	c.clampToGround()
}

// ProcessMouseMovement turns the camera by a mouse delta in pixels.
// Positive dy looks up.
func (c *FirstPerson) ProcessMouseMovement(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	c.Yaw = float32(math.Mod(float64(c.Yaw), 360))

	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *FirstPerson) ProcessMouseScroll(dy float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-dy, MinZoom, MaxZoom)
}

// LookAt turns the camera to face target.
func (c *FirstPerson) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() < 1e-6 {
		return
	}
	dir = dir.Normalize()

	c.Pitch = mgl32.Clamp(mgl32.RadToDeg(float32(math.Asin(float64(dir.Y())))), -MaxPitch, MaxPitch)
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(dir.Z()), float64(dir.X()))))
	c.updateVectors()
}

func (c *FirstPerson) clampToGround() {
	if c.Ground == nil {
		return
	}
	minY := c.Ground(c.Position.X(), c.Position.Z()) + c.EyeHeight
	if c.Position.Y() < minY {
		c.Position[1] = minY
	}
}

func (c *FirstPerson) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
