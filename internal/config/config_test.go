package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GICBANK_PORT", "")
	t.Setenv("GICBANK_SEED_FILE", "")
	t.Setenv("GICBANK_DEBUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, expected 8080", cfg.Port)
	}
	if cfg.SeedFile != "" || cfg.Debug {
		t.Errorf("unexpected non-defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GICBANK_PORT", "9090")
	t.Setenv("GICBANK_SEED_FILE", "demo.yaml")
	t.Setenv("GICBANK_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, expected 9090", cfg.Port)
	}
	if cfg.SeedFile != "demo.yaml" {
		t.Errorf("SeedFile = %q", cfg.SeedFile)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadBadPort(t *testing.T) {
	t.Setenv("GICBANK_PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric port")
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	if _, err := Load("does-not-exist.env"); err == nil {
		t.Error("expected error for explicit missing .env path")
	}
}
