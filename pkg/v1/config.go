package v1

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig holds optional defaults loaded from a YAML file.
// Command-line flags override anything set here.
type FileConfig struct {
	File       string `yaml:"file"`
	Separator  string `yaml:"separator"`
	SeedLayout string `yaml:"seed_layout"`
	AltMode    *bool  `yaml:"alt_mode"`
	HistoryDB  string `yaml:"history_db"`
}

// LoadConfig reads a YAML defaults file. A missing file is not an
// error when the path was not explicitly requested; callers decide by
// checking errors.Is(err, os.ErrNotExist).
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	Logf(LogTypeInfo, "Loaded defaults from %s", path)
	return &cfg, nil
}
