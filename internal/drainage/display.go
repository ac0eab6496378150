package drainage

import "image/color"

const (
	displayKindMask    = 0x03
	displayClaimedBit  = 0x04
	displayPaletteSize = 8
)

// Display values per cell. Zero means no sink.
const (
	DisplayNone uint8 = iota
	DisplayRow
	DisplayColumn
	DisplayMajor
)

var sinkPalette = buildSinkPalette()

// Palette exposes the colors used to draw sink map cells.
func Palette() []color.RGBA {
	return sinkPalette
}

// WorldSinkColor is the outline color of world sinks and their flow links.
var WorldSinkColor = color.RGBA{R: 20, G: 40, B: 160, A: 255}

func buildSinkPalette() []color.RGBA {
	palette := make([]color.RGBA, displayPaletteSize)
	for i := range palette {
		claimed := i&displayClaimedBit != 0
		palette[i] = toRGBA(paletteColorFor(uint8(i&displayKindMask), claimed))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	// premultiply so translucent entries blend correctly
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

func paletteColorFor(kind uint8, claimed bool) color.NRGBA {
	var c color.NRGBA
	switch kind {
	case DisplayRow:
		c = color.NRGBA{R: 128, G: 255, B: 0, A: 255}
	case DisplayColumn:
		c = color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	case DisplayMajor:
		c = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	default:
		return color.NRGBA{}
	}
	if claimed {
		c.A = 140
	}
	return c
}

func encodeDisplayValue(s *Sink) uint8 {
	var value uint8
	switch s.Kind {
	case KindRowMinimum:
		value = DisplayRow
	case KindColumnMinimum:
		value = DisplayColumn
	case KindMajorMinimum:
		value = DisplayMajor
	default:
		return DisplayNone
	}
	if !s.Available {
		value |= displayClaimedBit
	}
	return value
}

// DisplayCells encodes the sink map into palette indices laid out like the
// heightmap (row-major by j then i).
func DisplayCells(sinks *SinkMap, buf []uint8) []uint8 {
	total := sinks.Res * sinks.Res
	if len(buf) != total {
		buf = make([]uint8, total)
	}
	for j := 0; j < sinks.Res; j++ {
		for i := 0; i < sinks.Res; i++ {
			idx := j*sinks.Res + i
			if s, ok := sinks.At(i, j); ok {
				buf[idx] = encodeDisplayValue(s)
				continue
			}
			buf[idx] = DisplayNone
		}
	}
	return buf
}
