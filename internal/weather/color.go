package weather

import "math"

// RGBA is a color with float64 channels, nominally in [0,1]. Channels
// may exceed 1 transiently: thunder flashes add to fog, ambient and
// sun colors before the renderer tone-maps.
type RGBA struct {
	R, G, B, A float64
}

var white = RGBA{R: 1, G: 1, B: 1, A: 1}

// Lerp blends toward other componentwise, alpha included.
func (c RGBA) Lerp(other RGBA, factor float64) RGBA {
	return RGBA{
		R: lerp(c.R, other.R, factor),
		G: lerp(c.G, other.G, factor),
		B: lerp(c.B, other.B, factor),
		A: lerp(c.A, other.A, factor),
	}
}

func (c RGBA) Add(other RGBA) RGBA {
	return RGBA{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B, A: c.A + other.A}
}

// Mul multiplies componentwise.
func (c RGBA) Mul(other RGBA) RGBA {
	return RGBA{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B, A: c.A * other.A}
}

// capRGB limits the color channels to 1, leaving alpha alone.
func (c RGBA) capRGB() RGBA {
	c.R = math.Min(1, c.R)
	c.G = math.Min(1, c.G)
	c.B = math.Min(1, c.B)
	return c
}

func lerp(x, y, factor float64) float64 {
	return x*(1-factor) + y*factor
}

// Vec3 is a world-space vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns the unit vector; the zero vector is returned
// unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}
