package vmath

import "math"

// Vec2 is a float64 2D vector in screen space (pixels, +Y down)
type Vec2 struct {
	X, Y float64
}

// Zero is the neutral vector
var Zero = Vec2{}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Div divides both components by s; caller guarantees s != 0
func V2Div(v Vec2, s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// V2Mag uses Hypot so tiny or huge components neither underflow nor overflow
func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2Normalize returns the unit vector, zero-safe
// Components are first scaled by the larger magnitude so subnormal input keeps full precision
func V2Normalize(v Vec2) Vec2 {
	m := math.Max(math.Abs(v.X), math.Abs(v.Y))
	if m == 0 {
		return Vec2{}
	}
	v = Vec2{v.X / m, v.Y / m}
	mag := V2Mag(v)
	return Vec2{v.X / mag, v.Y / mag}
}

// V2Dist returns Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2FromAngle returns the unit vector pointing at angle (radians)
func V2FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// V2Angle returns atan2(v.Y, v.X)
func V2Angle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// V2IsZero reports exact zero on both axes
func V2IsZero(v Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// V2Finite reports whether neither component is NaN or Inf
func V2Finite(v Vec2) bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
