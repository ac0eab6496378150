package main

import (
	"testing"
	"time"

	"drainage/internal/core"
	"drainage/internal/drainage"
	"drainage/internal/tile"
)

func fakeResult(seed int64, c core.Coord, weight float64, world int) tileResult {
	return tileResult{
		seed:   seed,
		tile:   &tile.Tile{Coord: c, Resolution: 33, Elapsed: 2 * time.Millisecond},
		world:  world,
		majors: world + 1,
		weight: weight,
		links:  world - 1,
	}
}

func TestSummarize(t *testing.T) {
	all := []tileResult{
		fakeResult(1, core.Coord{}, 10, 2),
		fakeResult(1, core.Coord{X: 1}, 20, 4),
	}
	s := summarize(all)
	if s.tiles != 2 || s.world != 6 || s.links != 4 {
		t.Fatalf("counts = %+v", s)
	}
	if s.meanWorld != 3 || s.meanMajors != 4 || s.meanWeight != 15 {
		t.Fatalf("means = %+v", s)
	}
	if s.meanElapsed != 2*time.Millisecond {
		t.Fatalf("mean elapsed = %s", s.meanElapsed)
	}
	if s.heightmapBytes != 2*33*33*8 {
		t.Fatalf("heightmap bytes = %d", s.heightmapBytes)
	}
	if got := summarize(nil); got.tiles != 0 {
		t.Fatal("empty summary should be zero")
	}
}

func TestRankByWeight(t *testing.T) {
	all := []tileResult{
		fakeResult(2, core.Coord{}, 5, 1),
		fakeResult(1, core.Coord{X: 1}, 9, 1),
		fakeResult(1, core.Coord{}, 5, 1),
	}
	ranked := rankByWeight(all)
	if ranked[0].weight != 9 {
		t.Fatalf("heaviest first, got %v", ranked[0].weight)
	}
	if ranked[1].seed != 1 || ranked[2].seed != 2 {
		t.Fatal("ties should order by seed")
	}
	if all[0].seed != 2 {
		t.Fatal("rankByWeight reordered its input")
	}
}

func TestMeasureGeneratedTile(t *testing.T) {
	cfg := drainage.DefaultConfig()
	cfg.Resolution = 33
	gen, err := tile.NewGenerator(cfg)
	if err != nil {
		t.Fatal(err)
	}
	r := runJob(job{seed: cfg.Seed, coord: core.Coord{X: 2, Y: -1}, gen: gen})
	if r.err != nil {
		t.Fatal(r.err)
	}
	if r.world != len(r.tile.World) || r.majors != len(r.tile.Majors) {
		t.Fatalf("measure mismatch: %+v", r)
	}
	if r.world == 0 || r.weight <= 0 {
		t.Fatalf("expected at least one weighted world sink, got %+v", r)
	}
}
