package tile

import (
	"fmt"
	"log"
	"math"
	"runtime"
	"slices"
	"sync"
	"time"

	"drainage/internal/core"
	"drainage/internal/logging"

	"golang.org/x/sync/errgroup"
)

// LoaderConfig controls which tiles stay loaded around the viewer.
type LoaderConfig struct {
	Radius   int     `yaml:"radius"`
	Workers  int     `yaml:"workers"`
	TileSize float64 `yaml:"tile_size"`
	Backlog  int     `yaml:"backlog"`
}

// DefaultLoaderConfig returns the viewer defaults.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		Radius:   3,
		Workers:  runtime.NumCPU(),
		TileSize: 64,
		Backlog:  64,
	}
}

func (c LoaderConfig) normalized() LoaderConfig {
	if c.Radius < 0 {
		c.Radius = 0
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.TileSize <= 0 {
		c.TileSize = 1
	}
	if c.Backlog < 1 {
		c.Backlog = 1
	}
	return c
}

// Loader keeps a registry of generated tiles and loads those within a
// circular radius of a center tile.
type Loader struct {
	cfg LoaderConfig
	log *log.Logger

	mu       sync.Mutex
	gen      *Generator
	existing map[core.Coord]*Tile

	ready    chan *Tile
	requests chan core.Coord
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewLoader creates a loader generating with gen. A nil logger discards.
func NewLoader(gen *Generator, cfg LoaderConfig, logger *log.Logger) *Loader {
	cfg = cfg.normalized()
	return &Loader{
		cfg:      cfg,
		log:      logging.OrDiscard(logger),
		gen:      gen,
		existing: make(map[core.Coord]*Tile),
		ready:    make(chan *Tile, cfg.Backlog),
		requests: make(chan core.Coord, 1),
		done:     make(chan struct{}),
	}
}

// Config returns the loader settings.
func (l *Loader) Config() LoaderConfig { return l.cfg }

// Ready delivers newly generated tiles to the presentation step.
func (l *Loader) Ready() <-chan *Tile { return l.ready }

// SetGenerator swaps the generator and drops every tile built with the
// previous one.
func (l *Loader) SetGenerator(gen *Generator) {
	l.mu.Lock()
	l.gen = gen
	clear(l.existing)
	l.mu.Unlock()
}

// Generator returns the current generator.
func (l *Loader) Generator() *Generator {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// Tile returns the registered tile at c, loaded or not.
func (l *Loader) Tile(c core.Coord) (*Tile, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.existing[c]
	return t, ok
}

// Len returns the number of registered tiles.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.existing)
}

// Loaded returns the loaded tiles ordered by coordinate.
func (l *Loader) Loaded() []*Tile {
	l.mu.Lock()
	out := make([]*Tile, 0, len(l.existing))
	for _, t := range l.existing {
		if t.State == Loaded {
			out = append(out, t)
		}
	}
	l.mu.Unlock()
	slices.SortFunc(out, func(a, b *Tile) int {
		switch {
		case a.Coord.Less(b.Coord):
			return -1
		case b.Coord.Less(a.Coord):
			return 1
		}
		return 0
	})
	return out
}

// InRadius lists the coordinates with dx²+dy² <= radius² around center,
// scanned row by row.
func InRadius(center core.Coord, radius int) []core.Coord {
	if radius < 0 {
		return nil
	}
	r2 := radius * radius
	var out []core.Coord
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				out = append(out, center.Add(dx, dy))
			}
		}
	}
	return out
}

// TileAt converts a world position to the tile containing it.
func TileAt(worldX, worldZ, tileSize float64) core.Coord {
	if tileSize <= 0 {
		return core.Coord{}
	}
	return core.Coord{
		X: int(math.RoundToEven(worldX / tileSize)),
		Y: int(math.RoundToEven(worldZ / tileSize)),
	}
}

// Update loads every tile within the radius of center, generating missing
// ones concurrently, and unloads loaded tiles outside it. It returns the
// tiles generated by this call in scan order.
func (l *Loader) Update(center core.Coord) ([]*Tile, error) {
	wanted := InRadius(center, l.cfg.Radius)
	inside := make(map[core.Coord]struct{}, len(wanted))
	for _, c := range wanted {
		inside[c] = struct{}{}
	}

	l.mu.Lock()
	gen := l.gen
	for c, t := range l.existing {
		if _, ok := inside[c]; !ok {
			t.Unload()
		}
	}
	var missing []core.Coord
	for _, c := range wanted {
		if t, ok := l.existing[c]; ok {
			t.Load()
			continue
		}
		missing = append(missing, c)
	}
	l.mu.Unlock()

	if len(missing) == 0 {
		return nil, nil
	}
	if gen == nil {
		return nil, ErrNoGenerator
	}

	start := time.Now()
	built := make([]*Tile, len(missing))
	var g errgroup.Group
	g.SetLimit(l.cfg.Workers)
	for idx, c := range missing {
		g.Go(func() error {
			t, err := gen.Generate(c)
			if err != nil {
				return fmt.Errorf("generate tile %s: %w", c, err)
			}
			built[idx] = t
			return nil
		})
	}
	err := g.Wait()

	l.mu.Lock()
	var fresh []*Tile
	for _, t := range built {
		if t == nil {
			continue
		}
		// The generator may have been swapped while this batch ran.
		if l.gen != gen {
			continue
		}
		if _, ok := l.existing[t.Coord]; ok {
			continue
		}
		t.Load()
		l.existing[t.Coord] = t
		fresh = append(fresh, t)
	}
	l.mu.Unlock()

	if len(fresh) > 0 {
		l.log.Printf("generated %d tiles around %s in %s", len(fresh), center, time.Since(start).Round(time.Millisecond))
	}
	return fresh, err
}

// Start runs Update in the background for every center passed to
// Request and hands the generated tiles off on Ready.
func (l *Loader) Start() {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		for {
			select {
			case <-l.done:
				return
			case c := <-l.requests:
				tiles, err := l.Update(c)
				if err != nil {
					l.log.Printf("tile update around %s: %v", c, err)
				}
				for _, t := range tiles {
					select {
					case l.ready <- t:
					case <-l.done:
						return
					}
				}
			}
		}
	}()
}

// Request asks the background loop to update around center. Only the
// latest pending center is kept.
func (l *Loader) Request(center core.Coord) {
	for {
		select {
		case l.requests <- center:
			return
		default:
		}
		select {
		case <-l.requests:
		default:
		}
	}
}

// Close stops the background loop.
func (l *Loader) Close() error {
	l.stopOnce.Do(func() { close(l.done) })
	l.wg.Wait()
	return nil
}
