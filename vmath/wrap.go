package vmath

// Wrap teleports v to the opposite edge when it leaves [min, max]
// Values exactly on a boundary are kept, so a second call is a no-op
func Wrap(v, min, max float64) float64 {
	if v < min {
		return max
	}
	if v > max {
		return min
	}
	return v
}

// WrapRect applies Wrap per axis over [-margin, w+margin] × [-margin, h+margin]
func WrapRect(p Vec2, w, h, margin float64) Vec2 {
	return Vec2{
		X: Wrap(p.X, -margin, w+margin),
		Y: Wrap(p.Y, -margin, h+margin),
	}
}

// InRect reports whether p lies strictly inside (0, w) × (0, h)
func InRect(p Vec2, w, h float64) bool {
	return p.X > 0 && p.X < w && p.Y > 0 && p.Y < h
}
