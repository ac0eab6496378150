//go:build ebiten

package ui

import (
	"image/color"

	"drainage/internal/drainage"
	"drainage/internal/tile"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	linkColor  = color.RGBA{R: 90, G: 170, B: 255, A: 220}
	majorColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// Overlay draws the drainage layers on top of the terrain.
type Overlay struct {
	showSinks  bool
	showWorld  bool
	showLinks  bool
	showMajors bool
}

// NewOverlay constructs an overlay with world sinks and links visible.
func NewOverlay() *Overlay {
	return &Overlay{showWorld: true, showLinks: true}
}

// Update toggles layers with the digit keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSinks = !o.showSinks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showWorld = !o.showWorld
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showLinks = !o.showLinks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showMajors = !o.showMajors
	}
}

// ShowSinks reports whether the sink map layer is on. The tile painter
// draws that layer.
func (o *Overlay) ShowSinks() bool { return o.showSinks }

// Draw renders the vector layers of every tile.
func (o *Overlay) Draw(screen *ebiten.Image, tiles []*tile.Tile, v View) {
	for _, t := range tiles {
		if o.showLinks {
			o.drawLinks(screen, t, v)
		}
		if o.showMajors {
			for _, m := range t.Majors {
				x, y := v.Cell(t.Coord, m.I, m.J)
				vector.DrawFilledRect(screen, float32(x-v.Scale/2), float32(y-v.Scale/2), float32(v.Scale), float32(v.Scale), majorColor, false)
			}
		}
		if o.showWorld {
			for _, s := range t.World {
				x, y := v.Cell(t.Coord, s.I, s.J)
				r := SinkRadius(s.Weight, v.Scale)
				vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1.5, drainage.WorldSinkColor, true)
			}
		}
	}
}

func (o *Overlay) drawLinks(screen *ebiten.Image, t *tile.Tile, v View) {
	for _, e := range t.Edges() {
		a, b := t.World[e.A], t.World[e.B]
		ax, ay := v.Cell(t.Coord, a.I, a.J)
		bx, by := v.Cell(t.Coord, b.I, b.J)
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, linkColor, true)
	}
}
