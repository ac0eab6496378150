package tile

import (
	"errors"
	"fmt"
	"time"

	"drainage/internal/core"
	"drainage/internal/drainage"
	"drainage/internal/noise"
)

// ErrNoGenerator is returned when a loader has nothing to generate with.
var ErrNoGenerator = errors.New("tile: no generator")

// stage runs fn on its own goroutine and delivers the result on the
// returned channel.
func stage[T any](fn func() T) <-chan T {
	out := make(chan T, 1)
	go func() {
		out <- fn()
	}()
	return out
}

// Generator turns tile coordinates into tiles for one configuration.
// It is safe for concurrent use.
type Generator struct {
	cfg    drainage.Config
	fields noise.Fields
}

// NewGenerator validates cfg and builds the noise fields once.
func NewGenerator(cfg drainage.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fields, err := noise.NewFields(cfg.Seed, cfg.Detail, cfg.Edge)
	if err != nil {
		return nil, fmt.Errorf("tile: build noise fields: %w", err)
	}
	return &Generator{cfg: cfg, fields: fields}, nil
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() drainage.Config { return g.cfg }

// Fields returns the shared noise fields.
func (g *Generator) Fields() noise.Fields { return g.fields }

type synthesized struct {
	h *core.Heightmap
	m drainage.Minima
}

type extracted struct {
	sinks  *drainage.SinkMap
	majors []*drainage.Sink
}

// Generate runs synthesize, extract, cluster and connect for coord. Each
// stage is awaited before the next one starts. The returned tile is
// Unloaded.
func (g *Generator) Generate(coord core.Coord) (*Tile, error) {
	if g == nil {
		return nil, ErrNoGenerator
	}
	start := time.Now()
	p := g.cfg.Params
	res := g.cfg.Resolution

	s := <-stage(func() synthesized {
		h, m := drainage.Synthesize(g.fields, coord, res, p.NoiseWeight, p.EdgeWeight)
		return synthesized{h: h, m: m}
	})
	e := <-stage(func() extracted {
		sinks, majors := drainage.Extract(s.m)
		return extracted{sinks: sinks, majors: majors}
	})
	world := <-stage(func() []*drainage.Sink {
		return drainage.Cluster(e.majors, e.sinks, p.SwallowRadius, p.MajorWeight, p.MinorWeight)
	})
	<-stage(func() struct{} {
		drainage.Connect(world, p.ConnectDistance)
		return struct{}{}
	})

	return &Tile{
		Coord:      coord,
		Resolution: res,
		State:      Unloaded,
		Heightmap:  s.h,
		Sinks:      e.sinks,
		Majors:     e.majors,
		World:      world,
		Generated:  time.Now(),
		Elapsed:    time.Since(start),
	}, nil
}
