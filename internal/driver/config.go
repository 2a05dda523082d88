// Package driver wires the Declaration Visitor, Lowering Engine, C
// Projection, and Thunk Body Assembler together into a single
// per-declaration run, with optional concurrency across declarations
// (spec.md §5: stateless lowering means callers may trivially shard
// inputs). Configuration is YAML, grounded on the teacher's own
// yaml.v3-backed benchmark spec loader.
package driver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls one driver run.
type Config struct {
	ModuleName    string `yaml:"module_name"`
	MaxConcurrent int    `yaml:"max_concurrent"` // <=1: sequential
	SymbolPrefix  string `yaml:"symbol_prefix"`   // prefix for synthesized cdecl names
}

// LoadConfig reads a YAML driver configuration from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("driver: failed to parse config: %w", err)
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	return &cfg, nil
}
