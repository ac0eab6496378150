package drainage

import (
	"strconv"

	"drainage/internal/core"
	"drainage/internal/noise"
)

// Parameters describes the configuration for display on the HUD.
func (c Config) Parameters() core.ParameterSnapshot {
	p := c.Params
	groups := []core.ParameterGroup{
		{
			Name: "Tile",
			Params: []core.Parameter{
				intParam("resolution", "Resolution", c.Resolution),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name:   "Detail noise",
			Params: noiseParams("detail", c.Detail),
		},
		{
			Name:   "Edge noise",
			Params: noiseParams("edge", c.Edge),
		},
		{
			Name: "Blend",
			Params: []core.Parameter{
				floatParam("noise_weight", "Noise weight", p.NoiseWeight),
				floatParam("edge_weight", "Edge weight", p.EdgeWeight),
			},
		},
		{
			Name: "Sinks",
			Params: []core.Parameter{
				intParam("swallow_radius", "Swallow radius", p.SwallowRadius),
				floatParam("major_weight", "Major weight", p.MajorWeight),
				floatParam("minor_weight", "Minor weight", p.MinorWeight),
				floatParam("connect_distance", "Connect distance", p.ConnectDistance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func noiseParams(prefix string, n noise.Config) []core.Parameter {
	return []core.Parameter{
		{Key: prefix + "_backend", Label: "Backend", Type: core.ParamTypeString, Value: n.Backend},
		floatParam(prefix+"_frequency", "Frequency", n.Frequency),
		intParam(prefix+"_octaves", "Octaves", n.Octaves),
		floatParam(prefix+"_lacunarity", "Lacunarity", n.Lacunarity),
		floatParam(prefix+"_gain", "Gain", n.Gain),
		floatParam(prefix+"_weighted_strength", "Weighted strength", n.WeightedStrength),
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
