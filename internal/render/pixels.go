// Package render converts tile data into RGBA pixels.
package render

import (
	"image/color"
	"math"
)

// Ramp maps elevation in [0, 1] to a color by linear interpolation between
// evenly spaced stops.
type Ramp []color.RGBA

// TerrainRamp runs from deep basins through lowland to ridge tops.
var TerrainRamp = Ramp{
	{R: 18, G: 42, B: 74, A: 255},
	{R: 46, G: 104, B: 88, A: 255},
	{R: 110, G: 150, B: 82, A: 255},
	{R: 176, G: 160, B: 104, A: 255},
	{R: 236, G: 232, B: 224, A: 255},
}

// At returns the ramp color for v. Values outside [0, 1] are clamped.
func (r Ramp) At(v float64) color.RGBA {
	switch len(r) {
	case 0:
		return color.RGBA{}
	case 1:
		return r[0]
	}
	if math.IsNaN(v) || v <= 0 {
		return r[0]
	}
	if v >= 1 {
		return r[len(r)-1]
	}
	pos := v * float64(len(r)-1)
	i := int(pos)
	t := pos - float64(i)
	a, b := r[i], r[i+1]
	return color.RGBA{
		R: mix(a.R, b.R, t),
		G: mix(a.G, b.G, t),
		B: mix(a.B, b.B, t),
		A: mix(a.A, b.A, t),
	}
}

func mix(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// fillHeightRGBA shades elevation values into buf through the ramp.
func fillHeightRGBA(buf []byte, values []float64, ramp Ramp) {
	for i, v := range values {
		base := i * 4
		col := ramp.At(v)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
