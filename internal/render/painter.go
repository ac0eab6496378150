//go:build ebiten

package render

import (
	"drainage/internal/drainage"
	"drainage/internal/tile"

	"github.com/hajimehoshi/ebiten/v2"
)

// TilePainter keeps the terrain and sink map images of one tile.
type TilePainter struct {
	res     int
	terrain *ebiten.Image
	sinks   *ebiten.Image
	buf     []byte
	cells   []uint8
}

// NewTilePainter allocates images for a res*res tile.
func NewTilePainter(res int) *TilePainter {
	return &TilePainter{
		res:     res,
		terrain: ebiten.NewImage(res, res),
		sinks:   ebiten.NewImage(res, res),
		buf:     make([]byte, 4*res*res),
	}
}

// Paint uploads the heightmap and sink map of t. Tiles of another
// resolution are ignored.
func (p *TilePainter) Paint(t *tile.Tile) {
	if t == nil || t.Resolution != p.res {
		return
	}
	fillHeightRGBA(p.buf, t.Heightmap.Values(), TerrainRamp)
	p.terrain.WritePixels(p.buf)

	p.cells = drainage.DisplayCells(t.Sinks, p.cells)
	fillPaletteRGBA(p.buf, p.cells, drainage.Palette())
	p.sinks.WritePixels(p.buf)
}

// Draw places the tile images with their top-left corner at (x, y).
func (p *TilePainter) Draw(dst *ebiten.Image, x, y, scale float64, showSinks bool) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(p.terrain, op)
	if showSinks {
		dst.DrawImage(p.sinks, op)
	}
}

// Dispose releases the GPU images.
func (p *TilePainter) Dispose() {
	p.terrain.Dispose()
	p.sinks.Dispose()
}

// Resolution returns the tile resolution the painter was sized for.
func (p *TilePainter) Resolution() int { return p.res }
