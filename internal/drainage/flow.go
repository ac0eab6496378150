package drainage

// Connect links every pair of distinct world sinks whose distance is at most
// maxDistance. Both directions are stored, so the relation is symmetric.
// Existing links are replaced.
func Connect(world []*Sink, maxDistance float64) {
	for a, from := range world {
		from.PointsTo = from.PointsTo[:0]
		for b, to := range world {
			if a == b {
				continue
			}
			if Distance(from, to) <= maxDistance {
				from.PointsTo = append(from.PointsTo, b)
			}
		}
	}
}

// Edge is an undirected link between two world sinks, by index.
type Edge struct {
	A, B int
}

// Edges lists each link once with A < B.
func Edges(world []*Sink) []Edge {
	var out []Edge
	for a, s := range world {
		for _, b := range s.PointsTo {
			if a < b {
				out = append(out, Edge{A: a, B: b})
			}
		}
	}
	return out
}
