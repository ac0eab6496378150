package drainage

import (
	"drainage/internal/core"
	"drainage/internal/noise"
)

// EdgeSamples are the edge field values at a tile's four edge midpoints,
// normalized to [0, 1].
type EdgeSamples struct {
	West, East, North, South float64
}

// SampleEdges samples the edge field at the midpoints of the tile's edges in
// tile space. Neighbouring tiles share a midpoint, so the east sample of (x, y)
// equals the west sample of (x+1, y).
func SampleEdges(edge noise.Field, c core.Coord) EdgeSamples {
	x, y := float64(c.X), float64(c.Y)
	return EdgeSamples{
		West:  noise.Normalize(edge.Sample(x-0.5, y)),
		East:  noise.Normalize(edge.Sample(x+0.5, y)),
		North: noise.Normalize(edge.Sample(x, y-0.5)),
		South: noise.Normalize(edge.Sample(x, y+0.5)),
	}
}

// edgeWeights returns the blend toward the west/east edge for column i and
// toward the north/south edge for row j. Each pair sums to 1.
func edgeWeights(i, j, res int) (west, east, north, south float64) {
	if res <= 1 {
		return 1, 0, 1, 0
	}
	tx := float64(i) / float64(res-1)
	tz := float64(j) / float64(res-1)
	return 1 - tx, tx, 1 - tz, tz
}

// Value blends the edge samples for cell (i, j). The X and Z blends are
// averaged so the result stays in [0, 1]; summing all four weighted
// samples would reach 2.
func (e EdgeSamples) Value(i, j, res int) float64 {
	w, ea, n, s := edgeWeights(i, j, res)
	return 0.5*(e.West*w+e.East*ea) + 0.5*(e.North*n+e.South*s)
}

// Synthesize builds the heightmap of one tile and tracks its line minima in
// the same sweep. noiseWeight and edgeWeight are expected to sum to 1; the
// caller validates that before a run.
func Synthesize(fields noise.Fields, c core.Coord, res int, noiseWeight, edgeWeight float64) (*core.Heightmap, Minima) {
	h := core.NewHeightmap(res)
	m := SynthesizeInto(h, fields, c, noiseWeight, edgeWeight)
	return h, m
}

// SynthesizeInto is Synthesize writing into a caller-owned heightmap. It only
// touches h and the returned minima, so distinct tiles can be synthesized
// concurrently.
func SynthesizeInto(h *core.Heightmap, fields noise.Fields, c core.Coord, noiseWeight, edgeWeight float64) Minima {
	res := h.Res
	edges := SampleEdges(fields.Edge, c)
	tr := newMinimaTracker(h, c)

	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			ux, uy := tr.origin.at(i, j)
			detail := noise.Normalize(fields.Detail.Sample(float64(ux), float64(uy)))
			h.Set(i, j, detail*noiseWeight+edges.Value(i, j, res)*edgeWeight)
			tr.observe(i, j)
		}
	}
	return tr.Minima
}
