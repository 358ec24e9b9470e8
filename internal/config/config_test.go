package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want Default() %+v", cfg, Default())
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fnswitch.yaml")
	content := "featureWave: \"16.0\"\nreflectionFallbackLog: true\nfallbackLogPath: \"./out.log\"\nbaseDirectory: \".\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FeatureWave != "16.0" || !cfg.ReflectionFallbackLog || cfg.FallbackLogPath != "./out.log" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestWaveFallsBackOnBlank(t *testing.T) {
	cfg := Config{}
	v := cfg.Wave()
	if v.Major != 17 || v.Minor != 10 {
		t.Errorf("Wave() on blank config = %+v, want 17.10", v)
	}
}
