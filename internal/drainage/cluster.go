package drainage

// Cluster grows a world sink from every available major minimum, absorbing
// each available sink within swallowRadius (Euclidean, clipped to the grid).
// A major neighbour adds majorWeight, any other sink adds minorWeight. Every
// sink is claimed at most once; majors earlier in the list win contested
// neighbours.
func Cluster(majors []*Sink, sinks *SinkMap, swallowRadius int, majorWeight, minorWeight float64) []*Sink {
	var world []*Sink
	// Every pair of cells is closer than 2*Res, so larger radii are capped.
	r := max(0, min(swallowRadius, 2*sinks.Res))
	r2 := r * r

	for _, major := range majors {
		if major == nil || !major.Available {
			continue
		}
		ws := &Sink{
			UX: major.UX, UY: major.UY,
			I: major.I, J: major.J,
			Kind:   KindWorld,
			Weight: majorWeight,
			Origin: major,
		}
		major.Available = false

		x0, x1 := max(0, major.I-r), min(sinks.Res-1, major.I+r)
		y0, y1 := max(0, major.J-r), min(sinks.Res-1, major.J+r)
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				s, ok := sinks.At(x, y)
				if !ok || !s.Available {
					continue
				}
				dx, dy := x-major.I, y-major.J
				if dx*dx+dy*dy > r2 {
					continue
				}
				if s.Kind == KindMajorMinimum {
					ws.Weight += majorWeight
				} else {
					ws.Weight += minorWeight
				}
				s.Available = false
				ws.Absorbed = append(ws.Absorbed, s)
			}
		}
		world = append(world, ws)
	}
	return world
}
