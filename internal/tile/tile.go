// Package tile runs the drainage pipeline per tile and keeps the set of
// tiles around a viewer loaded.
package tile

import (
	"time"

	"drainage/internal/core"
	"drainage/internal/drainage"
)

// State is the presentation state of a generated tile.
type State uint8

const (
	Unloaded State = iota
	Loaded
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "unloaded"
}

// Tile is one generated square of terrain with its drainage results.
type Tile struct {
	Coord      core.Coord
	Resolution int
	State      State

	Heightmap *core.Heightmap
	Sinks     *drainage.SinkMap
	Majors    []*drainage.Sink
	World     []*drainage.Sink

	Generated time.Time
	Elapsed   time.Duration
}

// Load marks the tile visible. It reports whether the state changed.
func (t *Tile) Load() bool {
	if t.State == Loaded {
		return false
	}
	t.State = Loaded
	return true
}

// Unload hides the tile without discarding its data.
func (t *Tile) Unload() bool {
	if t.State == Unloaded {
		return false
	}
	t.State = Unloaded
	return true
}

// Edges returns the flow links between the tile's world sinks.
func (t *Tile) Edges() []drainage.Edge {
	return drainage.Edges(t.World)
}

// TotalWeight sums the weights of the tile's world sinks.
func (t *Tile) TotalWeight() float64 {
	var sum float64
	for _, s := range t.World {
		sum += s.Weight
	}
	return sum
}
