/*
Package config manages TOML config for the rackserve CLI.
*/
package config

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/raklib/rackserve/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Report ReportConfig `toml:"report"`
}

// SolverConfig has search pipeline related options.
type SolverConfig struct {
	// BlockSize is how many words go into one work block.
	BlockSize int `toml:"block_size"`
	// Workers is the pool size; 0 picks the host's CPU count.
	Workers int `toml:"workers"`
	// TopK is how many longest words the live reporter tracks.
	TopK int `toml:"top_k"`
}

// ReportConfig holds reporter options.
type ReportConfig struct {
	// PollIntervalMS is the top-k reporter sampling interval in
	// milliseconds.
	PollIntervalMS int `toml:"poll_interval_ms"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			BlockSize: 1000,
			Workers:   0,
			TopK:      10,
		},
		Report: ReportConfig{
			PollIntervalMS: 10,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file. Unset fields keep their defaults
// and out-of-range values are clamped back.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return nil, err
	}
	cfg.Validate()
	return cfg, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// Validate clamps nonsense values back to their defaults.
func (c *Config) Validate() {
	def := DefaultConfig()
	if c.Solver.BlockSize <= 0 {
		c.Solver.BlockSize = def.Solver.BlockSize
	}
	if c.Solver.Workers < 0 {
		c.Solver.Workers = def.Solver.Workers
	}
	if c.Solver.TopK <= 0 {
		c.Solver.TopK = def.Solver.TopK
	}
	if c.Report.PollIntervalMS <= 0 {
		c.Report.PollIntervalMS = def.Report.PollIntervalMS
	}
}

// PollInterval returns the reporter interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Report.PollIntervalMS) * time.Millisecond
}
