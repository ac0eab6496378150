package drainage

import (
	"errors"
	"fmt"
	"math"

	"drainage/internal/noise"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid drainage config")

// ValidResolutions lists the heightmap resolutions the terrain consumer
// accepts (2^n + 1).
var ValidResolutions = []int{33, 65, 129, 257, 513, 1025, 2049, 4097}

const weightSumTolerance = 1e-6

// Params holds the synthesis blend and the clustering thresholds.
type Params struct {
	NoiseWeight float64 `yaml:"noise_weight"`
	EdgeWeight  float64 `yaml:"edge_weight"`

	SwallowRadius   int     `yaml:"swallow_radius"`
	MajorWeight     float64 `yaml:"major_weight"`
	MinorWeight     float64 `yaml:"minor_weight"`
	ConnectDistance float64 `yaml:"connect_distance"`
}

// Config is everything a tile generation run depends on.
type Config struct {
	Resolution int   `yaml:"resolution"`
	Seed       int64 `yaml:"seed"`

	Detail noise.Config `yaml:"detail"`
	Edge   noise.Config `yaml:"edge"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Resolution: 65,
		Seed:       1337,
		Detail:     noise.DetailConfig(),
		Edge:       noise.EdgeConfig(),
		Params: Params{
			NoiseWeight:     0.8,
			EdgeWeight:      0.2,
			SwallowRadius:   5,
			MajorWeight:     5,
			MinorWeight:     1,
			ConnectDistance: 24,
		},
	}
}

// Validate reports every configuration problem at once. A config that fails
// validation must not be used for generation.
func (c Config) Validate() error {
	var errs *multierror.Error
	bad := func(format string, args ...any) {
		errs = multierror.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Resolution <= 0 {
		bad("resolution must be positive, got %d", c.Resolution)
	} else if !IsValidResolution(c.Resolution) {
		bad("resolution %d is not one of %v (nearest is %d)", c.Resolution, ValidResolutions, SnapResolution(c.Resolution))
	}
	p := c.Params
	// Checks are written so NaN and infinities fail them.
	if !nonNegative(p.NoiseWeight) || !nonNegative(p.EdgeWeight) {
		bad("noise and edge weights must be finite and non-negative, got %v and %v", p.NoiseWeight, p.EdgeWeight)
	}
	if sum := p.NoiseWeight + p.EdgeWeight; !(math.Abs(sum-1) <= weightSumTolerance) {
		bad("noise_weight + edge_weight must equal 1, got %v", sum)
	}
	if p.SwallowRadius < 0 {
		bad("swallow radius must be non-negative, got %d", p.SwallowRadius)
	}
	if !nonNegative(p.ConnectDistance) {
		bad("connect distance must be finite and non-negative, got %v", p.ConnectDistance)
	}
	if !nonNegative(p.MajorWeight) || !nonNegative(p.MinorWeight) {
		bad("sink weights must be finite and non-negative, got major=%v minor=%v", p.MajorWeight, p.MinorWeight)
	}
	if err := c.Detail.Validate(); err != nil {
		bad("detail: %v", err)
	}
	if err := c.Edge.Validate(); err != nil {
		bad("edge: %v", err)
	}
	return errs.ErrorOrNil()
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// IsValidResolution reports whether res is an accepted heightmap resolution.
func IsValidResolution(res int) bool {
	for _, v := range ValidResolutions {
		if v == res {
			return true
		}
	}
	return false
}

// SnapResolution returns the valid resolution closest to res. Ties resolve to
// the smaller value.
func SnapResolution(res int) int {
	best := ValidResolutions[0]
	for _, v := range ValidResolutions[1:] {
		if absInt(v-res) < absInt(best-res) {
			best = v
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
