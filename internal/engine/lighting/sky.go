package lighting

import "github.com/go-gl/mathgl/mgl32"

// Sky colours.
var (
	NightSky = mgl32.Vec3{0.02, 0.02, 0.08}
	DawnSky  = mgl32.Vec3{0.98, 0.55, 0.35}
	DaySky   = mgl32.Vec3{0.529, 0.808, 0.922}
	DuskSky  = mgl32.Vec3{0.95, 0.45, 0.30}
)

type skyKey struct {
	t     float32
	color mgl32.Vec3
}

// skyKeys must be sorted by t and span [0, 1].
var skyKeys = []skyKey{
	{0.00, NightSky},
	{0.20, NightSky},
	{0.25, DawnSky},
	{0.32, DaySky},
	{0.68, DaySky},
	{0.75, DuskSky},
	{0.80, NightSky},
	{1.00, NightSky},
}

// SkyColor interpolates the clear colour for a time of day.
func SkyColor(timeOfDay float32) mgl32.Vec3 {
	t := wrap01(timeOfDay)
	for i := 1; i < len(skyKeys); i++ {
		a, b := skyKeys[i-1], skyKeys[i]
		if t <= b.t {
			f := (t - a.t) / (b.t - a.t)
			return lerpVec3(a.color, b.color, f)
		}
	}
	return skyKeys[len(skyKeys)-1].color
}

// Sun marker colours.
var (
	HorizonSun = mgl32.Vec3{1.0, 0.45, 0.15}
	ZenithSun  = mgl32.Vec3{1.0, 0.95, 0.75}
)

// SunColor tints the sun marker orange near the horizon and pale yellow
// high in the sky.
func SunColor(timeOfDay float32) mgl32.Vec3 {
	elevation := SunDirection(timeOfDay).Y()
	return lerpVec3(HorizonSun, ZenithSun, smoothstep(0, 0.5, elevation))
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
