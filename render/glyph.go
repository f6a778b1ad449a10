package render

import "math"

// arrows indexed by octant, clockwise from +X on a +Y-down screen
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// DirectionGlyph picks the arrow closest to a facing angle
func DirectionGlyph(rot float64) rune {
	oct := int(math.Round(rot/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return arrows[oct]
}
