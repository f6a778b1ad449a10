package main

import "github.com/lixenwraith/twin-stick/vmath"

// viewport maps between terminal cells and world pixels
// Cells are stretched independently on each axis to cover the whole world
type viewport struct {
	cols, rows int
	worldW     float64
	worldH     float64
	hudRows    int // Rows reserved at the top for the HUD
}

func newViewport(cols, rows int, worldW, worldH float64) viewport {
	return viewport{cols: max(cols, 1), rows: max(rows, 1), worldW: worldW, worldH: worldH, hudRows: 1}
}

func (v viewport) playRows() int {
	return max(v.rows-v.hudRows, 1)
}

// toWorld returns the world position at the center of a cell
func (v viewport) toWorld(cx, cy int) vmath.Vec2 {
	return vmath.V2(
		(float64(cx)+0.5)*v.worldW/float64(v.cols),
		(float64(cy-v.hudRows)+0.5)*v.worldH/float64(v.playRows()),
	)
}

// toCell returns the cell containing a world position; ok is false off screen
func (v viewport) toCell(p vmath.Vec2) (cx, cy int, ok bool) {
	if p.X < 0 || p.Y < 0 || p.X >= v.worldW || p.Y >= v.worldH {
		return 0, 0, false
	}
	cx = int(p.X * float64(v.cols) / v.worldW)
	cy = int(p.Y*float64(v.playRows())/v.worldH) + v.hudRows
	return cx, cy, true
}

// cellSize is the world extent of one cell
func (v viewport) cellSize() (w, h float64) {
	return v.worldW / float64(v.cols), v.worldH / float64(v.playRows())
}
