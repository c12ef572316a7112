package lighting

// Time scale limits for DayCycle.Faster and DayCycle.Slower.
const (
	MinTimeScale float32 = 1.0 / 16
	MaxTimeScale float32 = 64
)

// DayCycle advances the time of day.
type DayCycle struct {
	TimeOfDay float32 // [0, 1): 0 midnight, 0.5 noon
	DayLength float32 // real seconds per full day at TimeScale 1
	TimeScale float32
	Paused    bool
}

// NewDayCycle creates a running cycle starting at start.
func NewDayCycle(dayLength, start float32) *DayCycle {
	return &DayCycle{
		TimeOfDay: wrap01(start),
		DayLength: dayLength,
		TimeScale: 1,
	}
}

// Advance moves time forward by dt seconds.
func (c *DayCycle) Advance(dt float32) {
	if c.Paused || c.DayLength <= 0 || dt <= 0 {
		return
	}
	c.TimeOfDay = wrap01(c.TimeOfDay + dt*c.TimeScale/c.DayLength)
}

// SetTime jumps to a time of day.
func (c *DayCycle) SetTime(t float32) {
	c.TimeOfDay = wrap01(t)
}

// TogglePause pauses or resumes the cycle.
func (c *DayCycle) TogglePause() {
	c.Paused = !c.Paused
}

// Faster doubles the time scale.
func (c *DayCycle) Faster() {
	c.TimeScale = min(c.TimeScale*2, MaxTimeScale)
}

// Slower halves the time scale.
func (c *DayCycle) Slower() {
	c.TimeScale = max(c.TimeScale/2, MinTimeScale)
}
