package drainage

import "drainage/internal/core"

// Minima holds the per-line minimum holders of one tile.
// Row is indexed by i and holds the lowest cell over j; Col is indexed by j
// and holds the lowest cell over i.
type Minima struct {
	Row []*Sink
	Col []*Sink
}

// minimaTracker updates line minima while a heightmap is swept. Ties keep the
// first holder: only strictly lower elevations replace it.
type minimaTracker struct {
	h      *core.Heightmap
	origin universal
	Minima
}

func newMinimaTracker(h *core.Heightmap, coord core.Coord) *minimaTracker {
	return &minimaTracker{
		h:      h,
		origin: universalOrigin(coord, h.Res),
		Minima: Minima{Row: make([]*Sink, h.Res), Col: make([]*Sink, h.Res)},
	}
}

// observe must be called after heightmap[j][i] has been written.
func (t *minimaTracker) observe(i, j int) {
	v := t.h.At(i, j)
	if r := t.Row[i]; j == 0 || r == nil || v < t.h.At(r.I, r.J) {
		t.Row[i] = t.origin.sink(i, j, KindRowMinimum)
	}
	if c := t.Col[j]; c == nil || v < t.h.At(c.I, c.J) {
		t.Col[j] = t.origin.sink(i, j, KindColumnMinimum)
	}
}

// ScanMinima finds the line minima of an existing heightmap using the same
// sweep order as synthesis.
func ScanMinima(h *core.Heightmap, coord core.Coord) Minima {
	t := newMinimaTracker(h, coord)
	for i := 0; i < h.Res; i++ {
		for j := 0; j < h.Res; j++ {
			t.observe(i, j)
		}
	}
	return t.Minima
}

// universal maps local coordinates into the shared noise space. Adjacent tiles
// overlap by exactly one sample line: u = tile*res + local - tile.
type universal struct {
	x0, y0 int
}

func universalOrigin(c core.Coord, res int) universal {
	return universal{x0: c.X*res - c.X, y0: c.Y*res - c.Y}
}

func (u universal) at(i, j int) (int, int) { return u.x0 + i, u.y0 + j }

func (u universal) sink(i, j int, kind Kind) *Sink {
	ux, uy := u.at(i, j)
	return newSink(ux, uy, i, j, kind)
}

// Universal returns the universal coordinate of local cell (i, j) of a tile.
func Universal(c core.Coord, res, i, j int) (int, int) {
	return universalOrigin(c, res).at(i, j)
}
