package drainage

// Extract records every line minimum in a sink map and promotes cells that are
// both a row and a column minimum to KindMajorMinimum. The promoted record
// replaces the row entry in m.Row and in the map. Majors are returned ordered
// by i.
func Extract(m Minima) (*SinkMap, []*Sink) {
	res := len(m.Row)
	sinks := NewSinkMap(res)
	for _, s := range m.Row {
		if s != nil {
			sinks.put(s)
		}
	}

	byRow := make([]*Sink, res)
	for _, s := range m.Col {
		if s == nil {
			continue
		}
		if _, ok := sinks.At(s.I, s.J); ok {
			s.Kind = KindMajorMinimum
			sinks.put(s)
			m.Row[s.I] = s
			byRow[s.I] = s
			continue
		}
		sinks.put(s)
	}

	var majors []*Sink
	for _, s := range byRow {
		if s != nil {
			majors = append(majors, s)
		}
	}
	return sinks, majors
}
