package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "printshop.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "printshop.yaml")
	yaml := "data_dir: /srv/printshop\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != "/srv/printshop" {
		t.Errorf("expected data_dir override, got %s", cfg.DataDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level override, got %s", cfg.LogLevel)
	}
	// Fields absent from the file keep their defaults.
	if cfg.OrderFile != "orders.xlsx" {
		t.Errorf("expected default order_file, got %s", cfg.OrderFile)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "printshop.yaml")
	if err := os.WriteFile(path, []byte("data_dir: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathsJoinDataDir(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/data"
	if got := cfg.OrderPath(); got != filepath.Join("/data", "orders.xlsx") {
		t.Errorf("unexpected order path: %s", got)
	}
	if got := cfg.ProductPath(); got != filepath.Join("/data", "product_database.xlsx") {
		t.Errorf("unexpected product path: %s", got)
	}
	if got := cfg.CostPath(); got != filepath.Join("/data", "filament_costs.xlsx") {
		t.Errorf("unexpected cost path: %s", got)
	}
}
