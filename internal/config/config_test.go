package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
simulation:
  time_seconds: 120
  seed: 42
traffic:
  base_rps: 50
service:
  shape: 2.5
  rate: 8
cluster:
  servers: 3
balancer:
  strategy: p2c
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.TimeSeconds != 120 || cfg.Simulation.Seed != 42 {
		t.Errorf("simulation = %+v", cfg.Simulation)
	}
	if cfg.Service.Shape != 2.5 || cfg.Service.Rate != 8 {
		t.Errorf("service = %+v", cfg.Service)
	}
	if cfg.Balancer.Strategy != "p2c" {
		t.Errorf("strategy = %q", cfg.Balancer.Strategy)
	}

	// значения по умолчанию для незаданных полей
	if cfg.Simulation.StepSeconds != 1 {
		t.Errorf("step_seconds default = %v", cfg.Simulation.StepSeconds)
	}
	if cfg.Cluster.MaxConnections != 100 {
		t.Errorf("max_connections default = %v", cfg.Cluster.MaxConnections)
	}
	if cfg.Sampling.Draws != 100_000 {
		t.Errorf("draws default = %v", cfg.Sampling.Draws)
	}
}

func TestLoadBadService(t *testing.T) {
	if _, err := Load(writeConfig(t, "service:\n  shape: -1\n  rate: 2\n")); err == nil {
		t.Fatal("expected validation error for negative shape")
	}
}

func TestLoadUnknownField(t *testing.T) {
	if _, err := Load(writeConfig(t, "nonexistent: 1\n")); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
