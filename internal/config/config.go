package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Config represents the root structure of cloudconnect.yaml. Everything is
// optional; missing fields fall back to defaults.
type Config struct {
	LogDir   string   `yaml:"log_dir"`
	Defaults Defaults `yaml:"defaults"`
}

// Defaults pre-fill the interactive create prompts.
type Defaults struct {
	Runtime        string `yaml:"runtime"`
	Region         string `yaml:"region"`
	EvictionPolicy string `yaml:"eviction_policy"`
}

func defaultConfig() *Config {
	return &Config{LogDir: "logs"}
}

// Load reads the YAML config at path. A missing file is not an error: you get
// the defaults. A .env file next to the config is loaded first so both the
// YAML and the process can rely on those variables.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	// If .env exists next to the config, load it
	envPath := filepath.Join(filepath.Dir(absPath), ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			pterm.Warning.Printf("Failed to load .env file: %v\n", err)
		}
	}

	data, err := os.ReadFile(absPath)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Environment overrides win over the file
	if v := os.Getenv("CLOUDCONNECT_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if cfg.LogDir == "" {
		cfg.LogDir = "logs"
	}

	return cfg, nil
}
