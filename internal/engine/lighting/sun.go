// Package lighting provides the day/night cycle: sun placement, light
// intensity and sky colour as functions of the time of day.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Times of day, as fractions of a full cycle.
const (
	Midnight float32 = 0
	Sunrise  float32 = 0.25
	Noon     float32 = 0.5
	Sunset   float32 = 0.75
)

// SunAzimuth is the compass angle (degrees around +Y, 0 = +Z) of the plane
// the sun travels in.
const SunAzimuth float32 = 80

// Light intensity limits. Night never goes fully dark.
const (
	MinIntensity float32 = 0.15
	MaxIntensity float32 = 1.0
)

// SphericalDirection converts a longitude (rotation around Y) and latitude
// (elevation from the horizon), both in degrees, to a unit vector.
// Latitudes past 90 continue over the top to the opposite side.
func SphericalDirection(longitude, latitude float32) mgl32.Vec3 {
	lonRad := float64(mgl32.DegToRad(longitude))
	latRad := float64(mgl32.DegToRad(latitude))

	x := float32(math.Cos(latRad) * math.Sin(lonRad))
	y := float32(math.Sin(latRad))
	z := float32(math.Cos(latRad) * math.Cos(lonRad))

	return mgl32.Vec3{x, y, z}
}

// SunElevationAngle returns the sun's angle above the horizon in degrees:
// 0 at sunrise, 90 at noon, 180 at sunset, 270 (below) at midnight.
func SunElevationAngle(timeOfDay float32) float32 {
	return wrap01(timeOfDay-Sunrise) * 360
}

// SunDirection returns the unit vector pointing towards the sun.
func SunDirection(timeOfDay float32) mgl32.Vec3 {
	return SphericalDirection(SunAzimuth, SunElevationAngle(timeOfDay))
}

// SunPosition places the sun distance units from center along SunDirection.
func SunPosition(timeOfDay float32, center mgl32.Vec3, distance float32) mgl32.Vec3 {
	return center.Add(SunDirection(timeOfDay).Mul(distance))
}

// LightIntensity returns the scene light intensity for a time of day.
// It ramps up from MinIntensity as the sun clears the horizon.
func LightIntensity(timeOfDay float32) float32 {
	elevation := SunDirection(timeOfDay).Y()
	t := smoothstep(-0.1, 0.3, elevation)
	return MinIntensity + (MaxIntensity-MinIntensity)*t
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := mgl32.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// wrap01 maps t into [0, 1).
func wrap01(t float32) float32 {
	t = t - float32(math.Floor(float64(t)))
	if t >= 1 {
		t = 0
	}
	return t
}
