package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the on-disk game configuration
// Durations are whole milliseconds and converted to ticks in Settings
type Config struct {
	TileCount             int    `toml:"tile_count"`
	TickMs                int    `toml:"tick_ms"`
	AutoPlayMs            int    `toml:"autoplay_ms"`
	AutoPlay              bool   `toml:"autoplay"`
	SpecialFoodRate       int    `toml:"special_food_rate"`
	SpecialFoodLifetimeMs int    `toml:"special_food_lifetime_ms"`
	Seed                  uint64 `toml:"seed"` // 0 seeds from the clock
	PlacementAttempts     int    `toml:"placement_attempts"`
	QueueCapacity         int    `toml:"queue_capacity"`

	// Key overrides, key name → action name
	Keys map[string]string `toml:"keys"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		TileCount:             constants.TileCount,
		TickMs:                int(constants.TickInterval / time.Millisecond),
		AutoPlayMs:            int(constants.AutoPlayInterval / time.Millisecond),
		SpecialFoodRate:       constants.SpecialFoodRate,
		SpecialFoodLifetimeMs: constants.SpecialFoodLifetimeTicks * int(constants.TickInterval/time.Millisecond),
		PlacementAttempts:     constants.MaxPlacementAttempts,
		QueueCapacity:         constants.DirectionQueueCapacity,
	}
}

// Load reads a TOML file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return finish(cfg, md, path)
}

// Parse decodes TOML text over the defaults
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return finish(cfg, md, "input")
}

func finish(cfg Config, md toml.MetaData, source string) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, source, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	switch {
	case c.TileCount < constants.MinTileCount || c.TileCount > constants.MaxTileCount:
		return fmt.Errorf("%w: tile_count %d outside [%d, %d]", ErrInvalidConfig, c.TileCount, constants.MinTileCount, constants.MaxTileCount)
	case c.TickMs <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalidConfig, c.TickMs)
	case c.AutoPlayMs <= 0:
		return fmt.Errorf("%w: autoplay_ms must be positive, got %d", ErrInvalidConfig, c.AutoPlayMs)
	case c.SpecialFoodRate < 0:
		return fmt.Errorf("%w: special_food_rate must not be negative", ErrInvalidConfig)
	case c.SpecialFoodLifetimeMs < 0:
		return fmt.Errorf("%w: special_food_lifetime_ms must not be negative", ErrInvalidConfig)
	case c.PlacementAttempts < 0:
		return fmt.Errorf("%w: placement_attempts must not be negative", ErrInvalidConfig)
	case c.QueueCapacity < 1:
		return fmt.Errorf("%w: queue_capacity must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// TickInterval returns the simulation tick as a duration
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// AutoPlayInterval returns the auto pilot decision cadence
func (c Config) AutoPlayInterval() time.Duration {
	return time.Duration(c.AutoPlayMs) * time.Millisecond
}

// LifetimeTicks converts the special food lifetime to ticks, rounding up so a nonzero
// lifetime never collapses to zero
func (c Config) LifetimeTicks() int {
	if c.SpecialFoodLifetimeMs <= 0 {
		return 0
	}
	return (c.SpecialFoodLifetimeMs + c.TickMs - 1) / c.TickMs
}

// Settings converts the configuration into simulation parameters
func (c Config) Settings() engine.Settings {
	return engine.Settings{
		TileCount:            c.TileCount,
		TickInterval:         c.TickInterval(),
		InitialLength:        constants.InitialSnakeLength,
		SpawnMargin:          constants.SpawnMargin,
		SpecialThreshold:     c.SpecialFoodRate,
		SpecialLifetime:      c.LifetimeTicks(),
		MaxPlacementAttempts: c.PlacementAttempts,
		QueueCapacity:        c.QueueCapacity,
	}
}

// SeedOrClock returns the configured seed, or one drawn from now when unset
func (c Config) SeedOrClock(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
