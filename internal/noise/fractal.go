package noise

import (
	"fmt"

	perlin "github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Fractal sums several octaves of a base source (fractal Brownian motion).
type Fractal struct {
	cfg      Config
	octaves  []Source
	bounding float64
}

// New builds a fractal field. Each octave gets its own source seeded with
// seed+octave so octaves do not correlate.
func New(seed int64, cfg Config) (*Fractal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Fractal{cfg: cfg, octaves: make([]Source, cfg.Octaves)}
	for i := range f.octaves {
		src, err := newSource(cfg.Backend, seed+int64(i))
		if err != nil {
			return nil, err
		}
		f.octaves[i] = src
	}
	amp, total := cfg.Gain, 1.0
	for i := 1; i < cfg.Octaves; i++ {
		total += amp
		amp *= cfg.Gain
	}
	f.bounding = 1 / total
	return f, nil
}

// Config returns the configuration the field was built with.
func (f *Fractal) Config() Config { return f.cfg }

// Sample implements Field.
func (f *Fractal) Sample(x, y float64) float64 {
	x *= f.cfg.Frequency
	y *= f.cfg.Frequency

	sum := 0.0
	amp := f.bounding
	for _, src := range f.octaves {
		n := clamp(src.Eval2(x, y), -1, 1)
		sum += n * amp
		amp *= lerp(1, (n+1)*0.5, f.cfg.WeightedStrength)
		x *= f.cfg.Lacunarity
		y *= f.cfg.Lacunarity
		amp *= f.cfg.Gain
	}
	return clamp(sum, -1, 1)
}

func newSource(backend string, seed int64) (Source, error) {
	switch backend {
	case BackendOpenSimplex:
		return opensimplex.New(seed), nil
	case BackendPerlin:
		return perlinSource{p: perlin.NewPerlin(2, 2, 1, seed)}, nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, backend)
}

// perlinSource adapts go-perlin to Source. A single go-perlin octave stays
// roughly within [-0.7, 0.7], so it is rescaled toward the full range.
type perlinSource struct {
	p *perlin.Perlin
}

const perlinScale = 1.4

func (s perlinSource) Eval2(x, y float64) float64 {
	return clamp(s.p.Noise2D(x, y)*perlinScale, -1, 1)
}
