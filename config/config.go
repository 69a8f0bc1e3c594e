// Package config loads runtime settings from LORE_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the commands share. Flags override these values.
type Config struct {
	HTTPAddr      string  `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	AssetsDir     string  `env:"ASSETS_DIR" envDefault:"./assets"`
	ManifestPath  string  `env:"MANIFEST" envDefault:"./manifest.toml"`
	LogLevel      string  `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string  `env:"LOG_FORMAT" envDefault:"text"`
	DefaultVolume float64 `env:"DEFAULT_VOLUME" envDefault:"0.1"`
	MirrorURL     string  `env:"MIRROR_URL"`
	MirrorRetries int     `env:"MIRROR_RETRIES" envDefault:"10"`
}

const envPrefix = "LORE_"

// Load reads the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: envPrefix})
}

// LoadFrom reads the given key/value pairs instead of the process environment.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Prefix: envPrefix, Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("http address is required")
	}
	if strings.TrimSpace(c.AssetsDir) == "" {
		return fmt.Errorf("assets directory is required")
	}
	if c.DefaultVolume < 0 || c.DefaultVolume > 1 {
		return fmt.Errorf("default volume %v is outside [0,1]", c.DefaultVolume)
	}
	if c.MirrorRetries < 0 {
		return fmt.Errorf("mirror retries must not be negative")
	}
	return nil
}
