package drainage

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"drainage/internal/core"
	"drainage/internal/noise"

	"github.com/hashicorp/go-multierror"
)

// Controls lists the parameters the viewer HUD can adjust.
func (c Config) Controls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1},
		{Key: "noise_weight", Label: "Noise weight", Type: core.ParamTypeFloat, Step: 0.05, HasMin: true, HasMax: true, Max: 1},
		{Key: "swallow_radius", Label: "Swallow radius", Type: core.ParamTypeInt, Step: 1, HasMin: true, HasMax: true, Max: 32},
		{Key: "major_weight", Label: "Major weight", Type: core.ParamTypeFloat, Step: 0.5, HasMin: true},
		{Key: "minor_weight", Label: "Minor weight", Type: core.ParamTypeFloat, Step: 0.25, HasMin: true},
		{Key: "connect_distance", Label: "Connect dist", Type: core.ParamTypeFloat, Step: 2, HasMin: true},
		{Key: "detail_frequency", Label: "Detail freq", Type: core.ParamTypeFloat, Step: 0.001, HasMin: true, Min: 0.001},
		{Key: "detail_octaves", Label: "Detail octaves", Type: core.ParamTypeInt, Step: 1, HasMin: true, Min: 1, HasMax: true, Max: 8},
		{Key: "edge_frequency", Label: "Edge freq", Type: core.ParamTypeFloat, Step: 0.002, HasMin: true, Min: 0.001},
	}
}

// WithParameter returns a copy of c with key set to value. The two blend
// weights are coupled so they keep summing to 1. The result is validated.
func (c Config) WithParameter(key string, value float64) (Config, error) {
	if key == "resolution" {
		value = float64(SnapResolution(int(math.Round(value))))
	}
	n := c
	if !n.set(key, value) {
		return c, fmt.Errorf("%w: unknown parameter %q", ErrInvalidConfig, key)
	}
	if err := n.Validate(); err != nil {
		return c, err
	}
	return n, nil
}

// Override applies flag-style key/value pairs on top of c, in key order.
// "backend" sets both noise fields. Setting one blend weight sets the other
// to its complement. Unknown keys and unparseable values are reported
// together; range checks are left to Validate.
func (c Config) Override(kv map[string]string) (Config, error) {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs *multierror.Error
	n := c
	for _, key := range keys {
		v := kv[key]
		switch key {
		case "backend":
			n.Detail.Backend = v
			n.Edge.Backend = v
			continue
		case "detail_backend":
			n.Detail.Backend = v
			continue
		case "edge_backend":
			n.Edge.Backend = v
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, key, v))
			continue
		}
		if !n.set(key, parsed) {
			errs = multierror.Append(errs, fmt.Errorf("%w: unknown parameter %q", ErrInvalidConfig, key))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return c, err
	}
	return n, nil
}

func (c *Config) set(key string, value float64) bool {
	p := &c.Params
	switch key {
	case "seed":
		c.Seed = int64(math.Round(value))
	case "resolution":
		c.Resolution = int(math.Round(value))
	case "noise_weight":
		p.NoiseWeight = value
		p.EdgeWeight = 1 - value
	case "edge_weight":
		p.EdgeWeight = value
		p.NoiseWeight = 1 - value
	case "swallow_radius":
		p.SwallowRadius = int(math.Round(value))
	case "major_weight":
		p.MajorWeight = value
	case "minor_weight":
		p.MinorWeight = value
	case "connect_distance":
		p.ConnectDistance = value
	default:
		if field, ok := strings.CutPrefix(key, "detail_"); ok {
			return setNoise(&c.Detail, field, value)
		}
		if field, ok := strings.CutPrefix(key, "edge_"); ok {
			return setNoise(&c.Edge, field, value)
		}
		return false
	}
	return true
}

func setNoise(n *noise.Config, field string, value float64) bool {
	switch field {
	case "frequency":
		n.Frequency = value
	case "octaves":
		n.Octaves = int(math.Round(value))
	case "lacunarity":
		n.Lacunarity = value
	case "gain":
		n.Gain = value
	case "weighted_strength":
		n.WeightedStrength = value
	default:
		return false
	}
	return true
}
