// Package ui draws the debug overlay and the parameter panel of the viewer.
package ui

import (
	"math"
	"strconv"

	"drainage/internal/core"
)

// View maps tile-local cells to screen pixels. Neighbouring tiles share
// their border line, so a tile spans Res-1 cells on screen.
type View struct {
	OriginX, OriginY float64
	Scale            float64
	Res              int
}

// TileOrigin returns the screen position of cell (0, 0) of tile c.
func (v View) TileOrigin(c core.Coord) (float64, float64) {
	span := float64(v.Res-1) * v.Scale
	return v.OriginX + float64(c.X)*span, v.OriginY + float64(c.Y)*span
}

// Cell returns the screen position of the center of cell (i, j) of tile c.
func (v View) Cell(c core.Coord, i, j int) (float64, float64) {
	x, y := v.TileOrigin(c)
	return x + (float64(i)+0.5)*v.Scale, y + (float64(j)+0.5)*v.Scale
}

// Centered returns a view that puts the middle of tile c at (w/2, h/2).
func Centered(c core.Coord, res int, scale float64, w, h int) View {
	v := View{Scale: scale, Res: res}
	x, y := v.TileOrigin(c)
	half := float64(res) * scale / 2
	v.OriginX = float64(w)/2 - x - half
	v.OriginY = float64(h)/2 - y - half
	return v
}

// SinkRadius is the on-screen radius of a world sink with the given weight.
func SinkRadius(weight, scale float64) float64 {
	if weight < 0 {
		weight = 0
	}
	return scale * (1 + math.Sqrt(weight)/2)
}

// stepControl moves current one step in direction and clamps it. It
// reports false when the value would not change.
func stepControl(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		if ctrl.Type == core.ParamTypeInt {
			step = 1
		} else {
			step = 0.05
		}
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

func formatControl(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.FormatInt(int64(math.Round(value)), 10)
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
