package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls where the shop's data files live and how chatty the
// tool is. Every field is optional; missing fields keep their
// defaults.
type Config struct {
	DataDir     string `yaml:"data_dir"`
	ProductFile string `yaml:"product_file"`
	CostFile    string `yaml:"cost_file"`
	OrderFile   string `yaml:"order_file"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		DataDir:     ".",
		ProductFile: "product_database.xlsx",
		CostFile:    "filament_costs.xlsx",
		OrderFile:   "orders.xlsx",
		LogLevel:    "info",
	}
}

// Load reads a YAML config file. A missing file is not an error; the
// defaults are returned. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	return cfg, nil
}

// ProductPath is the product catalog workbook location.
func (c Config) ProductPath() string { return filepath.Join(c.DataDir, c.ProductFile) }

// CostPath is the filament cost workbook location.
func (c Config) CostPath() string { return filepath.Join(c.DataDir, c.CostFile) }

// OrderPath is the order ledger workbook location.
func (c Config) OrderPath() string { return filepath.Join(c.DataDir, c.OrderFile) }
