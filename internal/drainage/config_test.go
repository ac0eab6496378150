package drainage

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolution = 0
	cfg.Params.NoiseWeight = 0.9
	cfg.Params.SwallowRadius = -1
	cfg.Params.ConnectDistance = -2
	cfg.Detail.Octaves = 0

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"resolution", "must equal 1", "swallow radius", "connect distance", "detail"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("validation error missing %q:\n%s", want, msg)
		}
	}
}

func TestValidateRejectsOffGridResolution(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolution = 100
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "nearest is 129") {
		t.Fatalf("expected resolution error suggesting 129, got %v", err)
	}
}

func TestSnapResolution(t *testing.T) {
	cases := map[int]int{
		-5:    33,
		1:     33,
		33:    33,
		49:    33,
		50:    65,
		100:   129,
		513:   513,
		3000:  2049,
		10000: 4097,
	}
	for in, want := range cases {
		if got := SnapResolution(in); got != want {
			t.Fatalf("SnapResolution(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestOverride(t *testing.T) {
	cfg, err := DefaultConfig().Override(map[string]string{
		"resolution":     "129",
		"seed":           "99",
		"backend":        "perlin",
		"edge_weight":    "0.4",
		"swallow_radius": "3",
		"edge_frequency": "0.05",
		"detail_octaves": "4",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Resolution != 129 || cfg.Seed != 99 {
		t.Fatalf("tile overrides not applied: %+v", cfg)
	}
	if cfg.Detail.Backend != "perlin" || cfg.Edge.Backend != "perlin" {
		t.Fatal("backend override must apply to both fields")
	}
	if cfg.Params.SwallowRadius != 3 || math.Abs(cfg.Params.NoiseWeight-0.6) > 1e-9 {
		t.Fatalf("param overrides not applied: %+v", cfg.Params)
	}
	if cfg.Edge.Frequency != 0.05 || cfg.Detail.Octaves != 4 {
		t.Fatalf("noise overrides not applied: %+v %+v", cfg.Detail, cfg.Edge)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("overridden config should validate: %v", err)
	}
}

func TestOverrideReportsBadPairs(t *testing.T) {
	base := DefaultConfig()
	got, err := base.Override(map[string]string{
		"connect_distance": "not-a-number",
		"gravity":          "1",
		"seed":             "5",
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "connect_distance") || !strings.Contains(msg, "gravity") {
		t.Fatalf("error should name both bad keys: %v", err)
	}
	if got != base {
		t.Fatal("a failed override should return the unchanged config")
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	cases := map[string]func(*Config){
		"nan noise weight":      func(c *Config) { c.Params.NoiseWeight = nan },
		"nan both weights":      func(c *Config) { c.Params.NoiseWeight, c.Params.EdgeWeight = nan, nan },
		"inf edge weight":       func(c *Config) { c.Params.EdgeWeight = inf },
		"nan connect distance":  func(c *Config) { c.Params.ConnectDistance = nan },
		"inf connect distance":  func(c *Config) { c.Params.ConnectDistance = inf },
		"nan major weight":      func(c *Config) { c.Params.MajorWeight = nan },
		"nan minor weight":      func(c *Config) { c.Params.MinorWeight = nan },
		"nan detail gain":       func(c *Config) { c.Detail.Gain = nan },
		"nan edge lacunarity":   func(c *Config) { c.Edge.Lacunarity = nan },
		"inf detail frequency":  func(c *Config) { c.Detail.Frequency = inf },
		"nan weighted strength": func(c *Config) { c.Edge.WeightedStrength = nan },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestParametersSnapshot(t *testing.T) {
	snap := DefaultConfig().Parameters()
	p, ok := snap.Lookup("swallow_radius")
	if !ok || p.Value != "5" {
		t.Fatalf("swallow_radius missing or wrong: %+v", p)
	}
	if p, ok := snap.Lookup("edge_weighted_strength"); !ok || p.Value != "0.14" {
		t.Fatalf("edge weighted strength missing or wrong: %+v", p)
	}
}

func TestWithParameterCouplesWeights(t *testing.T) {
	cfg := DefaultConfig()
	next, err := cfg.WithParameter("noise_weight", 0.6)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(next.Params.EdgeWeight-0.4) > 1e-9 {
		t.Fatalf("edge weight = %v, want 0.4", next.Params.EdgeWeight)
	}
	if cfg.Params.NoiseWeight != 0.8 {
		t.Fatal("WithParameter modified the receiver")
	}
}

func TestWithParameterRejects(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := cfg.WithParameter("gravity", 1); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("unknown key: %v", err)
	}
	got, err := cfg.WithParameter("swallow_radius", -2)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("negative radius: %v", err)
	}
	if got != cfg {
		t.Fatal("rejected change should return the unchanged config")
	}
}

func TestControlsApply(t *testing.T) {
	cfg := DefaultConfig()
	snap := cfg.Parameters()
	for _, ctrl := range cfg.Controls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q missing from the parameter snapshot", ctrl.Key)
		}
		p, _ := snap.Lookup(ctrl.Key)
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			t.Fatalf("control %q value %q: %v", ctrl.Key, p.Value, err)
		}
		if _, err := cfg.WithParameter(ctrl.Key, ctrl.Clamp(v+ctrl.Step)); err != nil {
			t.Fatalf("stepping %q up: %v", ctrl.Key, err)
		}
	}
}
