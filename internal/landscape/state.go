package landscape

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/landscape/internal/engine/lighting"
)

// State is the per-session scene state the render loop reads each frame.
type State struct {
	Cycle *lighting.DayCycle

	// Sun orbit
	Center      mgl32.Vec3
	SunDistance float32

	LightPos       mgl32.Vec3
	LightIntensity float32
	SunColor       mgl32.Vec3
	SkyColor       mgl32.Vec3
	CameraPos      mgl32.Vec3
}

// NewState creates session state with the sun orbiting center.
func NewState(cycle *lighting.DayCycle, center mgl32.Vec3, sunDistance float32) *State {
	s := &State{
		Cycle:       cycle,
		Center:      center,
		SunDistance: sunDistance,
	}
	s.refresh()
	return s
}

// Advance moves time forward by dt seconds and recomputes the lighting.
func (s *State) Advance(dt float32) {
	s.Cycle.Advance(dt)
	s.refresh()
}

// SetTime jumps to a time of day and recomputes the lighting.
func (s *State) SetTime(t float32) {
	s.Cycle.SetTime(t)
	s.refresh()
}

// TimeOfDay returns the current time of day in [0, 1).
func (s *State) TimeOfDay() float32 {
	return s.Cycle.TimeOfDay
}

// IsNight reports whether the sun is below the horizon.
func (s *State) IsNight() bool {
	return s.LightPos.Y() < s.Center.Y()
}

func (s *State) refresh() {
	t := s.Cycle.TimeOfDay
	s.LightPos = lighting.SunPosition(t, s.Center, s.SunDistance)
	s.LightIntensity = lighting.LightIntensity(t)
	s.SunColor = lighting.SunColor(t)
	s.SkyColor = lighting.SkyColor(t)
}
