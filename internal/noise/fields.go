package noise

import "fmt"

// Fields is the pair of fields a tile is synthesized from: Detail for the
// terrain itself and Edge, sampled only at tile edge midpoints, to bias the
// overall slope of each tile.
type Fields struct {
	Detail Field
	Edge   Field
}

// NewFields builds both fields from one world seed. The edge field is seeded
// with seed+1000 so it stays independent of the detail octaves.
func NewFields(seed int64, detail, edge Config) (Fields, error) {
	d, err := New(seed, detail)
	if err != nil {
		return Fields{}, fmt.Errorf("detail field: %w", err)
	}
	e, err := New(seed+edgeSeedOffset, edge)
	if err != nil {
		return Fields{}, fmt.Errorf("edge field: %w", err)
	}
	return Fields{Detail: d, Edge: e}, nil
}

const edgeSeedOffset = 1000
