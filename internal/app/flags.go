package app

import (
	"flag"

	"drainage/internal/config"
)

// Config represents the command-line parameters for the viewer. Flags
// that are set on the command line override the config file.
type Config struct {
	ConfigPath string
	Scale      int
	TPS        int
	Seed       int64
	Radius     int
	Width      int
	Height     int
	Watch      bool
	Set        config.Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	f := config.Default()
	return &Config{
		ConfigPath: config.Path(),
		Scale:      f.Viewer.Scale,
		TPS:        f.Viewer.TPS,
		Seed:       f.Drainage.Seed,
		Radius:     f.Loader.Radius,
		Width:      640,
		Height:     640,
		Watch:      true,
		Set:        config.Overrides{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to the YAML config")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "terrain seed")
	fs.IntVar(&c.Radius, "radius", c.Radius, "tile load radius")
	fs.IntVar(&c.Width, "width", c.Width, "terrain view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "terrain view height in pixels")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "reload the config file when it changes")
	fs.Var(c.Set, "set", "override a drainage parameter as key=value (repeatable)")
}

// Apply copies the flags that were set on fs into f. -set pairs are
// applied last.
func (c *Config) Apply(fs *flag.FlagSet, f *config.File) error {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "scale":
			f.Viewer.Scale = c.Scale
		case "tps":
			f.Viewer.TPS = c.TPS
		case "seed":
			f.Drainage.Seed = c.Seed
		case "radius":
			f.Loader.Radius = c.Radius
		}
	})
	if f.Viewer.Scale < 1 {
		f.Viewer.Scale = 1
	}
	if f.Viewer.TPS < 1 {
		f.Viewer.TPS = 30
	}
	return c.Set.Apply(f)
}
