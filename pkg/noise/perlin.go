package noise

import "math"

// Sample evaluates improved gradient noise at (x, y, z).
//
// The argument order matches how terrain code calls it: the two horizontal
// coordinates first, then the fixed slice coordinate. Output lies in [-1, 1]
// for any finite input.
func (t *PermutationTable) Sample(x, z, y float64) float64 {
	// Perlin's reference treats its arguments as (x, y, z); the terrain
	// z axis therefore feeds the second lattice axis.
	px, py, pz := x, z, y

	fx, fy, fz := math.Floor(px), math.Floor(py), math.Floor(pz)

	// Unit cube that contains the point
	X := int(fx) & 255
	Y := int(fy) & 255
	Z := int(fz) & 255

	// Relative position inside the cube
	px -= fx
	py -= fy
	pz -= fz

	u := fade(px)
	v := fade(py)
	w := fade(pz)

	p := &t.p
	A := p[X] + Y
	AA := p[A] + Z
	AB := p[A+1] + Z
	B := p[X+1] + Y
	BA := p[B] + Z
	BB := p[B+1] + Z

	return lerp(w,
		lerp(v,
			lerp(u, grad(p[AA], px, py, pz), grad(p[BA], px-1, py, pz)),
			lerp(u, grad(p[AB], px, py-1, pz), grad(p[BB], px-1, py-1, pz))),
		lerp(v,
			lerp(u, grad(p[AA+1], px, py, pz-1), grad(p[BA+1], px-1, py, pz-1)),
			lerp(u, grad(p[AB+1], px, py-1, pz-1), grad(p[BB+1], px-1, py-1, pz-1))))
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3, which keeps the second
// derivative continuous across cell boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad picks one of 16 gradients (the 12 cube edge directions, four of
// them repeated) from the low 4 bits of hash and dots it with (x, y, z).
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15

	u := y
	if h < 8 {
		u = x
	}

	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}

	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
