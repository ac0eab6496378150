// Package drainage extracts a tile's drainage network from its heightmap:
// per-line minima, major minima, clustered world sinks and the flow graph
// connecting them.
package drainage

import "math"

// Kind classifies a sink.
type Kind uint8

const (
	// KindRowMinimum is the lowest cell of a row (fixed i, minimum over j).
	KindRowMinimum Kind = iota
	// KindColumnMinimum is the lowest cell of a column (fixed j, minimum over i).
	KindColumnMinimum
	// KindMajorMinimum is both a row and a column minimum.
	KindMajorMinimum
	// KindWorld is a clustered, weighted drainage point grown from a major minimum.
	KindWorld
)

func (k Kind) String() string {
	switch k {
	case KindRowMinimum:
		return "row"
	case KindColumnMinimum:
		return "column"
	case KindMajorMinimum:
		return "major"
	case KindWorld:
		return "world"
	}
	return "unknown"
}

// Sink is a local minimum candidate or, with Kind == KindWorld, a world sink.
// Weight, PointsTo, Origin and Absorbed are only set on world sinks.
type Sink struct {
	// Universal coordinates in the shared noise space.
	UX, UY int
	// Local grid coordinates: I along world X, J along world Z.
	I, J int

	Kind Kind
	// Available is true until the sink is claimed by a world sink.
	Available bool

	Weight float64
	// PointsTo holds indices into the tile's world sink slice.
	PointsTo []int
	Origin   *Sink
	Absorbed []*Sink
}

func newSink(ux, uy, i, j int, kind Kind) *Sink {
	return &Sink{UX: ux, UY: uy, I: i, J: j, Kind: kind, Available: true}
}

// Distance is the Euclidean distance between two sinks in local grid units.
func Distance(a, b *Sink) float64 {
	di := float64(a.I - b.I)
	dj := float64(a.J - b.J)
	return math.Sqrt(di*di + dj*dj)
}

// SinkMap is a dense res*res lookup of sinks by local coordinate. A nil entry
// means no sink was recorded at that cell.
type SinkMap struct {
	Res   int
	cells []*Sink
}

// NewSinkMap allocates an empty map.
func NewSinkMap(res int) *SinkMap {
	if res <= 0 {
		res = 1
	}
	return &SinkMap{Res: res, cells: make([]*Sink, res*res)}
}

// At returns the sink at (i, j). Coordinates outside the grid report absent.
func (m *SinkMap) At(i, j int) (*Sink, bool) {
	if i < 0 || j < 0 || i >= m.Res || j >= m.Res {
		return nil, false
	}
	s := m.cells[i*m.Res+j]
	return s, s != nil
}

func (m *SinkMap) put(s *Sink) {
	m.cells[s.I*m.Res+s.J] = s
}

// Sinks returns every recorded sink in (i, j) scan order.
func (m *SinkMap) Sinks() []*Sink {
	var out []*Sink
	for _, s := range m.cells {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Len is the number of distinct sinks recorded.
func (m *SinkMap) Len() int {
	n := 0
	for _, s := range m.cells {
		if s != nil {
			n++
		}
	}
	return n
}
