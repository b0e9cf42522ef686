package config

import "flag"

// Flags holds CLI overrides bound to a command's flag.FlagSet.
// Zero values mean "not set"; Apply leaves those config fields alone.
type Flags struct {
	ConfigPath  string
	Debug       bool
	Resolution  int
	HeightScale float64
	Seed        int64
	Output      string
}

// Bind registers the shared override flags on fs.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Resolution, "resolution", 0, "Grid resolution (vertices per side)")
	fs.Float64Var(&f.HeightScale, "scale", 0, "Elevation height scale")
	fs.Int64Var(&f.Seed, "seed", 0, "Terrain generator seed")
	fs.StringVar(&f.Output, "o", "", "Output file path")
}

// Apply overlays set flags onto cfg (highest priority).
func (f *Flags) Apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Resolution > 0 {
		cfg.Pipeline.Resolution = f.Resolution
	}
	if f.HeightScale > 0 {
		cfg.Pipeline.HeightScale = float32(f.HeightScale)
	}
	if f.Seed != 0 {
		cfg.Generator.Seed = f.Seed
	}
}
