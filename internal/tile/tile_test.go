package tile

import (
	"errors"
	"slices"
	"testing"
	"time"

	"drainage/internal/core"
	"drainage/internal/drainage"
)

func testConfig() drainage.Config {
	cfg := drainage.DefaultConfig()
	cfg.Resolution = 33
	return cfg
}

func newTestGenerator(t *testing.T, cfg drainage.Config) *Generator {
	t.Helper()
	gen, err := NewGenerator(cfg)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return gen
}

func sinkCells(sinks []*drainage.Sink) []int {
	out := make([]int, 0, len(sinks)*2)
	for _, s := range sinks {
		out = append(out, s.I, s.J)
	}
	return out
}

func TestNewGeneratorRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Resolution = 100
	if _, err := NewGenerator(cfg); !errors.Is(err, drainage.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := newTestGenerator(t, testConfig())
	b := newTestGenerator(t, testConfig())
	for _, c := range []core.Coord{{X: 0, Y: 0}, {X: -2, Y: 5}} {
		ta, err := a.Generate(c)
		if err != nil {
			t.Fatal(err)
		}
		tb, err := b.Generate(c)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(ta.Heightmap.Values(), tb.Heightmap.Values()) {
			t.Fatalf("tile %s heightmaps differ", c)
		}
		if !slices.Equal(sinkCells(ta.World), sinkCells(tb.World)) {
			t.Fatalf("tile %s world sinks differ", c)
		}
		if ta.State != Unloaded || ta.Resolution != 33 || ta.Coord != c {
			t.Fatalf("unexpected tile header %+v", ta)
		}
	}
}

func TestGenerateRunsEveryStage(t *testing.T) {
	gen := newTestGenerator(t, testConfig())
	tl, err := gen.Generate(core.Coord{X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	if tl.Heightmap == nil || tl.Sinks == nil {
		t.Fatal("synthesis or extraction result missing")
	}
	// The tile's global minimum is always a major minimum.
	if len(tl.World) == 0 || len(tl.World) > len(tl.Majors) {
		t.Fatalf("world sinks %d, majors %d", len(tl.World), len(tl.Majors))
	}
	for idx, w := range tl.World {
		if w.Kind != drainage.KindWorld || w.Weight <= 0 {
			t.Fatalf("world sink %d = %+v", idx, w)
		}
		for _, k := range w.PointsTo {
			if k == idx {
				t.Fatalf("world sink %d links to itself", idx)
			}
		}
	}
}

func TestGenerateNilGenerator(t *testing.T) {
	var gen *Generator
	if _, err := gen.Generate(core.Coord{}); !errors.Is(err, ErrNoGenerator) {
		t.Fatalf("expected ErrNoGenerator, got %v", err)
	}
}

func TestStateTransitions(t *testing.T) {
	tl := &Tile{}
	if !tl.Load() || tl.State != Loaded {
		t.Fatal("Load should switch an unloaded tile")
	}
	if tl.Load() {
		t.Fatal("second Load should report no change")
	}
	if !tl.Unload() || tl.State != Unloaded {
		t.Fatal("Unload should switch a loaded tile")
	}
	if tl.Unload() {
		t.Fatal("second Unload should report no change")
	}
}

func TestInRadius(t *testing.T) {
	cases := map[int]int{-1: 0, 0: 1, 1: 5, 2: 13, 3: 29}
	for r, want := range cases {
		if got := len(InRadius(core.Coord{X: 4, Y: -1}, r)); got != want {
			t.Fatalf("radius %d: got %d tiles, want %d", r, got, want)
		}
	}
	for _, c := range InRadius(core.Coord{}, 2) {
		if c.X*c.X+c.Y*c.Y > 4 {
			t.Fatalf("%s outside radius 2", c)
		}
	}
}

func TestTileAt(t *testing.T) {
	cases := []struct {
		x, z, size float64
		want       core.Coord
	}{
		{0, 0, 64, core.Coord{}},
		{100, -100, 64, core.Coord{X: 2, Y: -2}},
		{32, 96, 64, core.Coord{X: 0, Y: 2}},
		{10, 10, 0, core.Coord{}},
	}
	for _, tc := range cases {
		if got := TileAt(tc.x, tc.z, tc.size); got != tc.want {
			t.Fatalf("TileAt(%v, %v, %v) = %s, want %s", tc.x, tc.z, tc.size, got, tc.want)
		}
	}
}

func coords(tiles []*Tile) []core.Coord {
	out := make([]core.Coord, len(tiles))
	for i, t := range tiles {
		out[i] = t.Coord
	}
	return out
}

func TestLoaderUpdateLoadsAndUnloads(t *testing.T) {
	l := NewLoader(newTestGenerator(t, testConfig()), LoaderConfig{Radius: 1, Workers: 4}, nil)

	fresh, err := l.Update(core.Coord{})
	if err != nil {
		t.Fatal(err)
	}
	if len(fresh) != 5 {
		t.Fatalf("first update generated %d tiles, want 5", len(fresh))
	}
	want := []core.Coord{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	if got := coords(l.Loaded()); !slices.Equal(got, want) {
		t.Fatalf("loaded %v, want %v", got, want)
	}

	again, err := l.Update(core.Coord{})
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 0 {
		t.Fatalf("repeat update regenerated %d tiles", len(again))
	}

	if _, err := l.Update(core.Coord{X: 5}); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 10 {
		t.Fatalf("registry holds %d tiles, want 10", l.Len())
	}
	old, ok := l.Tile(core.Coord{})
	if !ok || old.State != Unloaded {
		t.Fatal("tile outside the radius should stay registered but unloaded")
	}

	back, err := l.Update(core.Coord{})
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 0 || old.State != Loaded {
		t.Fatal("returning to a known area should reload without regenerating")
	}
	if got := len(l.Loaded()); got != 5 {
		t.Fatalf("loaded %d tiles after returning, want 5", got)
	}
}

func TestLoaderWorkersAgree(t *testing.T) {
	one := NewLoader(newTestGenerator(t, testConfig()), LoaderConfig{Radius: 2, Workers: 1}, nil)
	many := NewLoader(newTestGenerator(t, testConfig()), LoaderConfig{Radius: 2, Workers: 8}, nil)
	if _, err := one.Update(core.Coord{}); err != nil {
		t.Fatal(err)
	}
	if _, err := many.Update(core.Coord{}); err != nil {
		t.Fatal(err)
	}
	a, b := one.Loaded(), many.Loaded()
	if len(a) != len(b) {
		t.Fatalf("loaded %d vs %d tiles", len(a), len(b))
	}
	for i := range a {
		if a[i].Coord != b[i].Coord || !slices.Equal(a[i].Heightmap.Values(), b[i].Heightmap.Values()) {
			t.Fatalf("tile %s differs between worker counts", a[i].Coord)
		}
	}
}

func TestLoaderWithoutGenerator(t *testing.T) {
	l := NewLoader(nil, LoaderConfig{Radius: 0}, nil)
	if _, err := l.Update(core.Coord{}); !errors.Is(err, ErrNoGenerator) {
		t.Fatalf("expected ErrNoGenerator, got %v", err)
	}
}

func TestLoaderSetGeneratorClears(t *testing.T) {
	l := NewLoader(newTestGenerator(t, testConfig()), LoaderConfig{Radius: 1}, nil)
	if _, err := l.Update(core.Coord{}); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.Seed++
	l.SetGenerator(newTestGenerator(t, cfg))
	if l.Len() != 0 {
		t.Fatalf("registry holds %d tiles after swapping generators", l.Len())
	}
	fresh, err := l.Update(core.Coord{})
	if err != nil {
		t.Fatal(err)
	}
	if len(fresh) != 5 {
		t.Fatalf("regenerated %d tiles, want 5", len(fresh))
	}
}

func TestLoaderBackgroundHandoff(t *testing.T) {
	l := NewLoader(newTestGenerator(t, testConfig()), LoaderConfig{Radius: 1, Workers: 2}, nil)
	l.Start()
	defer l.Close()

	l.Request(core.Coord{X: 3, Y: 3})
	seen := make(map[core.Coord]bool)
	timeout := time.After(10 * time.Second)
	for len(seen) < 5 {
		select {
		case tl := <-l.Ready():
			if tl.State != Loaded {
				t.Fatalf("tile %s handed off while %s", tl.Coord, tl.State)
			}
			seen[tl.Coord] = true
		case <-timeout:
			t.Fatalf("only %d tiles handed off", len(seen))
		}
	}
	if !seen[core.Coord{X: 3, Y: 3}] {
		t.Fatal("center tile never handed off")
	}
}

func TestLoaderCloseIdempotent(t *testing.T) {
	l := NewLoader(nil, LoaderConfig{}, nil)
	l.Start()
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
}
