// Package config loads the dispatcher's optional ambient configuration
// (§9): the default feature-wave gate, whether the reflection-fallback log
// is enabled, and the base directory new collaborators should resolve
// relative paths against. None of this is required by the dispatcher
// itself — a zero-value Config yields the same defaults dispatch.New
// already falls back to — it exists so a host process has one YAML file
// to edit instead of wiring flags by hand.
package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/fnswitch/internal/value"
)

// Config is the shape of fnswitch.yaml. BaseDirectory is parsed but not
// read by anything in this module; the default collaborators resolve
// relative paths against the process's working directory.
type Config struct {
	FeatureWave           string `yaml:"featureWave"`
	ReflectionFallbackLog bool   `yaml:"reflectionFallbackLog"`
	FallbackLogPath       string `yaml:"fallbackLogPath"`
	BaseDirectory         string `yaml:"baseDirectory"`
}

// Default returns the configuration dispatch.New already assumes when no
// file is present: a recent feature wave, the fallback log off.
func Default() Config {
	return Config{FeatureWave: "17.10"}
}

// Load reads and parses path. A missing file is not an error — it returns
// Default() — since the dispatcher must work with zero configuration; any
// other read or parse error is returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Wave parses FeatureWave into a value.Ver, falling back to Default's wave
// on a blank or malformed string.
func (c Config) Wave() value.Ver {
	if c.FeatureWave == "" {
		c.FeatureWave = Default().FeatureWave
	}
	v, err := value.ParseVer(c.FeatureWave)
	if err != nil {
		v, _ = value.ParseVer(Default().FeatureWave)
	}
	return v
}
