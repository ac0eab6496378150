package core

// Heightmap stores a square grid of elevations in row-major order by Z then X,
// so At(i, j) reads column i (world X) of row j (world Z).
type Heightmap struct {
	Res  int
	data []float64
}

// NewHeightmap allocates a res*res heightmap. Non-positive sizes are clamped to 1.
func NewHeightmap(res int) *Heightmap {
	if res <= 0 {
		res = 1
	}
	return &Heightmap{Res: res, data: make([]float64, res*res)}
}

// HeightmapFromRows builds a heightmap from rows indexed [j][i]. All rows must
// have the same length as the number of rows; ragged input returns nil.
func HeightmapFromRows(rows [][]float64) *Heightmap {
	res := len(rows)
	if res == 0 {
		return nil
	}
	h := NewHeightmap(res)
	for j, row := range rows {
		if len(row) != res {
			return nil
		}
		copy(h.data[j*res:(j+1)*res], row)
	}
	return h
}

// Values exposes the backing slice so callers can read/write values directly.
func (h *Heightmap) Values() []float64 { return h.data }

// At returns the elevation at column i, row j.
func (h *Heightmap) At(i, j int) float64 { return h.data[j*h.Res+i] }

// Set stores an elevation at column i, row j.
func (h *Heightmap) Set(i, j int, v float64) { h.data[j*h.Res+i] = v }

// Bounds returns the lowest and highest elevation.
func (h *Heightmap) Bounds() (lo, hi float64) {
	lo, hi = h.data[0], h.data[0]
	for _, v := range h.data[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
