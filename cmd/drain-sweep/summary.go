package main

import (
	"sort"
	"time"
)

type summary struct {
	tiles          int
	world          int
	links          int
	meanMajors     float64
	meanWorld      float64
	meanWeight     float64
	meanElapsed    time.Duration
	heightmapBytes uint64
}

func summarize(all []tileResult) summary {
	var s summary
	if len(all) == 0 {
		return s
	}
	var majors int
	var weight float64
	var elapsed time.Duration
	for _, r := range all {
		s.tiles++
		s.world += r.world
		s.links += r.links
		majors += r.majors
		weight += r.weight
		elapsed += r.tile.Elapsed
		res := uint64(r.tile.Resolution)
		s.heightmapBytes += res * res * 8
	}
	n := float64(s.tiles)
	s.meanMajors = float64(majors) / n
	s.meanWorld = float64(s.world) / n
	s.meanWeight = weight / n
	s.meanElapsed = elapsed / time.Duration(s.tiles)
	return s
}

// rankByWeight orders results by total world sink weight, heaviest first.
// Ties keep seed then tile order so runs print identically.
func rankByWeight(all []tileResult) []tileResult {
	out := append([]tileResult(nil), all...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.weight != b.weight {
			return a.weight > b.weight
		}
		if a.seed != b.seed {
			return a.seed < b.seed
		}
		return a.tile.Coord.Less(b.tile.Coord)
	})
	return out
}
