// Package config handles tool configuration loading and management.
package config

// Config holds all terramesh settings.
type Config struct {
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Generator GeneratorConfig `yaml:"generator"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PipelineConfig holds mesh synthesis settings.
type PipelineConfig struct {
	Resolution  int     `yaml:"resolution"`   // grid resolution R (vertices per side)
	HeightScale float32 `yaml:"height_scale"` // world-space elevation multiplier
}

// GeneratorConfig holds default terrain generation settings.
type GeneratorConfig struct {
	Seed int64 `yaml:"seed"`
}

// ExportConfig holds output settings.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Resolution:  128,
			HeightScale: 12,
		},
		Generator: GeneratorConfig{
			Seed: 1337,
		},
		Export: ExportConfig{
			OutputDir: ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
