package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"drainage/internal/config"
	"drainage/internal/core"
	"drainage/internal/logging"
	"drainage/internal/tile"
	pcore "drainage/pkg/core"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/shirou/gopsutil/load"
	"github.com/shirou/gopsutil/mem"
)

type job struct {
	seed  int64
	coord core.Coord
	gen   *tile.Generator
}

type tileResult struct {
	seed   int64
	tile   *tile.Tile
	majors int
	sinks  int
	world  int
	weight float64
	links  int
	err    error
}

func main() {
	seeds := flag.Int("seeds", 8, "number of seeds to sweep")
	baseSeed := flag.Int64("base-seed", 0, "seed the sweep seeds are derived from (0 uses the config seed)")
	radius := flag.Int("radius", 2, "tile radius around the origin per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	cfgPath := flag.String("config", config.Path(), "path to the YAML config")
	top := flag.Int("top", 10, "tiles to list in the summary")
	dump := flag.Bool("dump", false, "dump the world sinks of the best tile")
	overrides := config.Overrides{}
	flag.Var(overrides, "set", "override a drainage parameter as key=value (repeatable)")
	flag.Parse()

	file, err := config.Load(*cfgPath)
	if err != nil {
		log.Println(err)
	}
	if err := overrides.Apply(&file); err != nil {
		log.Fatalf("-set: %v", err)
	}
	runID := uuid.New()
	logger := logging.Setup(file.Log.Path, fmt.Sprintf("sweep %s ", runID.String()[:8]))

	base := *baseSeed
	if base == 0 {
		base = file.Drainage.Seed
	}
	seedList := pcore.NewRNG(base).Seeds(*seeds)
	coords := tile.InRadius(core.Coord{}, *radius)

	var jobsList []job
	for _, seed := range seedList {
		cfg := file.Drainage
		cfg.Seed = seed
		gen, err := tile.NewGenerator(cfg)
		if err != nil {
			logger.Fatalf("config %s: %v", *cfgPath, err)
		}
		for _, c := range coords {
			jobsList = append(jobsList, job{seed: seed, coord: c, gen: gen})
		}
	}

	if *workers < 1 {
		*workers = 1
	}
	logger.Printf("sweeping %s tiles (%d seeds x %d tiles, resolution %d, %d workers)",
		humanize.Comma(int64(len(jobsList))), len(seedList), len(coords), file.Drainage.Resolution, *workers)

	jobs := make(chan job)
	results := make(chan tileResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runJob(j)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobsList {
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	var all []tileResult
	for res := range results {
		if res.err != nil {
			logger.Printf("seed %d: %v", res.seed, res.err)
			continue
		}
		all = append(all, res)
	}
	elapsed := time.Since(start)

	s := summarize(all)
	fmt.Printf("Run %s finished in %s\n", runID, elapsed.Round(time.Millisecond))
	fmt.Printf("Tiles: %s  world sinks: %s  links: %s  mean generation: %s\n",
		humanize.Comma(int64(s.tiles)), humanize.Comma(int64(s.world)), humanize.Comma(int64(s.links)),
		s.meanElapsed.Round(time.Microsecond))
	fmt.Printf("Mean per tile: %.1f major minima, %.1f world sinks, weight %.1f\n", s.meanMajors, s.meanWorld, s.meanWeight)
	fmt.Printf("Heightmap memory: %s\n", humanize.Bytes(s.heightmapBytes))
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Printf("Host memory: %s used of %s\n", humanize.Bytes(vm.Used), humanize.Bytes(vm.Total))
	}
	if avg, err := load.Avg(); err == nil {
		fmt.Printf("Host load: %.2f %.2f %.2f\n", avg.Load1, avg.Load5, avg.Load15)
	}

	ranked := rankByWeight(all)
	if len(ranked) == 0 {
		os.Exit(1)
	}
	n := *top
	if n > len(ranked) {
		n = len(ranked)
	}
	fmt.Println("Top tiles by total world sink weight:")
	for i := 0; i < n; i++ {
		r := ranked[i]
		fmt.Printf("%2d) seed=%d tile=%s world=%d weight=%.1f majors=%d sinks=%d links=%d time=%s\n",
			i+1, r.seed, r.tile.Coord, r.world, r.weight, r.majors, r.sinks, r.links,
			r.tile.Elapsed.Round(time.Microsecond))
	}

	if *dump {
		cfg := spew.ConfigState{Indent: "  ", MaxDepth: 2, DisablePointerAddresses: true}
		cfg.Dump(ranked[0].tile.World)
	}
}

func runJob(j job) tileResult {
	t, err := j.gen.Generate(j.coord)
	if err != nil {
		return tileResult{seed: j.seed, err: err}
	}
	return measure(j.seed, t)
}

func measure(seed int64, t *tile.Tile) tileResult {
	return tileResult{
		seed:   seed,
		tile:   t,
		majors: len(t.Majors),
		sinks:  t.Sinks.Len(),
		world:  len(t.World),
		weight: t.TotalWeight(),
		links:  len(t.Edges()),
	}
}
