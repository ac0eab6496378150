package app

import (
	"flag"
	"testing"

	"drainage/internal/config"
)

func TestApplyOnlySetFlags(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("drainage", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-seed", "9", "-radius", "1"}); err != nil {
		t.Fatal(err)
	}
	f := config.Default()
	f.Viewer.Scale = 4
	if err := c.Apply(fs, &f); err != nil {
		t.Fatal(err)
	}
	if f.Drainage.Seed != 9 || f.Loader.Radius != 1 {
		t.Fatalf("set flags not applied: seed=%d radius=%d", f.Drainage.Seed, f.Loader.Radius)
	}
	if f.Viewer.Scale != 4 {
		t.Fatalf("unset -scale overrode the file value: %d", f.Viewer.Scale)
	}
}

func TestApplyFixesViewer(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("drainage", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-scale", "0"}); err != nil {
		t.Fatal(err)
	}
	f := config.Default()
	f.Viewer.TPS = 0
	if err := c.Apply(fs, &f); err != nil {
		t.Fatal(err)
	}
	if f.Viewer.Scale != 1 || f.Viewer.TPS != 30 {
		t.Fatalf("viewer = %+v", f.Viewer)
	}
}

func TestApplySetPairs(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("drainage", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-seed", "9", "-set", "seed=11", "-set", "noise_weight=0.7"}); err != nil {
		t.Fatal(err)
	}
	f := config.Default()
	if err := c.Apply(fs, &f); err != nil {
		t.Fatal(err)
	}
	if f.Drainage.Seed != 11 {
		t.Fatalf("-set should win over -seed, got %d", f.Drainage.Seed)
	}
	if err := f.Drainage.Validate(); err != nil {
		t.Fatalf("coupled weights should validate: %v", err)
	}

	bad := NewConfig()
	fs = flag.NewFlagSet("drainage", flag.ContinueOnError)
	bad.Bind(fs)
	if err := fs.Parse([]string{"-set", "gravity=1"}); err != nil {
		t.Fatal(err)
	}
	f = config.Default()
	if err := bad.Apply(fs, &f); err == nil {
		t.Fatal("expected an error for an unknown -set key")
	}
}
