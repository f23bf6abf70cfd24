package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config is the clipinspect configuration loaded from a TOML file.
type Config struct {
	Playback PlaybackConfig `toml:"playback"`
	Log      LogConfig      `toml:"log"`
}

// PlaybackConfig controls how play steps a clip.
type PlaybackConfig struct {
	Framerate float64 `toml:"framerate"`
	Loop      bool    `toml:"loop"`
	DeltaMS   float64 `toml:"delta_ms"`
	Ticks     int     `toml:"ticks"`
	Start     string  `toml:"start"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	Debug bool   `toml:"debug"`
}

// LoadConfig reads a TOML configuration file. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// DefaultConfig returns the configuration embedded from config.example.toml.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}
