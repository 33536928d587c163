package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	Seed                int64         `json:"seed"`
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
}

// DefaultConfig returns sensible defaults. Seed 0 means the driver seeds
// from the clock; MaxGenerations 0 means run until quit.
func DefaultConfig() Config {
	return Config{
		Width:               80,
		Height:              24,
		FrameRate:           100 * time.Millisecond,
		Seed:                0,
		UseParallel:         true,
		UseMemoryPool:       true,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      0,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, config.Validate()
}

// Validate rejects configurations the simulation cannot run with. A grid
// with zero width or height is a contract violation, not an empty board.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Validate] frame rate must be positive, got %v", c.FrameRate)
	}
	if c.StagnationThreshold < 1 {
		return errors.Errorf("[Validate] stagnation threshold must be positive, got %d", c.StagnationThreshold)
	}
	return nil
}
