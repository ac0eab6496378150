// Package noise provides the seeded coherent noise fields the terrain
// synthesizer samples. Fields are immutable once built and may be sampled from
// any number of goroutines.
package noise

import (
	"errors"
	"fmt"
	"math"
)

// Backend names accepted by Config.Backend.
const (
	BackendOpenSimplex = "opensimplex"
	BackendPerlin      = "perlin"
)

// ErrInvalidConfig is wrapped by every configuration error returned here.
var ErrInvalidConfig = errors.New("invalid noise config")

// Field is a deterministic 2D scalar field with values in [-1, 1].
type Field interface {
	Sample(x, y float64) float64
}

// Source is a single-octave coherent noise generator.
type Source interface {
	Eval2(x, y float64) float64
}

// Config controls a fractal field.
type Config struct {
	Backend          string  `yaml:"backend"`
	Frequency        float64 `yaml:"frequency"`
	Octaves          int     `yaml:"octaves"`
	Lacunarity       float64 `yaml:"lacunarity"`
	Gain             float64 `yaml:"gain"`
	WeightedStrength float64 `yaml:"weighted_strength"`
}

// DetailConfig returns the high-frequency terrain detail defaults.
func DetailConfig() Config {
	return Config{
		Backend:    BackendOpenSimplex,
		Frequency:  0.010,
		Octaves:    3,
		Lacunarity: 2.0,
		Gain:       0.5,
	}
}

// EdgeConfig returns the low-frequency defaults used for tile edge steepness.
func EdgeConfig() Config {
	return Config{
		Backend:          BackendOpenSimplex,
		Frequency:        0.042,
		Octaves:          3,
		Lacunarity:       2.0,
		Gain:             0.5,
		WeightedStrength: 0.14,
	}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendOpenSimplex, BackendPerlin:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if !positive(c.Frequency) {
		return fmt.Errorf("%w: frequency must be positive, got %v", ErrInvalidConfig, c.Frequency)
	}
	if c.Octaves < 1 {
		return fmt.Errorf("%w: octaves must be at least 1, got %d", ErrInvalidConfig, c.Octaves)
	}
	if !positive(c.Lacunarity) {
		return fmt.Errorf("%w: lacunarity must be positive, got %v", ErrInvalidConfig, c.Lacunarity)
	}
	if !positive(c.Gain) {
		return fmt.Errorf("%w: gain must be positive, got %v", ErrInvalidConfig, c.Gain)
	}
	if !(c.WeightedStrength >= 0 && c.WeightedStrength <= 1) {
		return fmt.Errorf("%w: weighted strength must be in [0,1], got %v", ErrInvalidConfig, c.WeightedStrength)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Normalize maps a [-1, 1] sample into [0, 1].
func Normalize(v float64) float64 {
	return (v + 1) / 2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
