package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/cassis-finance/cassis/internal/common"
	"github.com/cassis-finance/cassis/internal/scoring"
)

// Config is the full application configuration. Zero values are filled from
// defaults; Load validates the result.
type Config struct {
	LogLevel     string
	DatabasePath string
	PatternFile  string // optional custom pattern set (YAML)

	Cache    CacheConfig
	Research ResearchConfig
	Batch    BatchConfig

	FastPathStrength float64
	HighConfidence   float64
	Weights          scoring.Weights
}

// CacheConfig tunes the classification cache.
type CacheConfig struct {
	TTL      time.Duration
	MaxSize  int
	Disabled bool
}

// ResearchConfig tunes the web-research gate.
type ResearchConfig struct {
	Enabled       bool
	MaxConcurrent int
	MinInterval   time.Duration
	Timeout       time.Duration
}

// BatchConfig tunes batch classification.
type BatchConfig struct {
	ChunkSize       int
	Workers         int
	InterChunkDelay time.Duration
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:     "info",
		DatabasePath: DefaultDatabasePath(),
		Cache: CacheConfig{
			TTL:     15 * time.Minute,
			MaxSize: 1000,
		},
		Research: ResearchConfig{
			MaxConcurrent: 3,
			MinInterval:   500 * time.Millisecond,
			Timeout:       5 * time.Second,
		},
		Batch: BatchConfig{
			ChunkSize:       20,
			Workers:         4,
			InterChunkDelay: 200 * time.Millisecond,
		},
		FastPathStrength: 0.85,
		HighConfidence:   0.80,
		Weights:          scoring.DefaultWeights(),
	}
}

// SetDefaults registers the default values on a viper instance so config
// files and flags only need to override what they change.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("database_path", d.DatabasePath)
	v.SetDefault("pattern_file", "")
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.max_size", d.Cache.MaxSize)
	v.SetDefault("cache.disabled", d.Cache.Disabled)
	v.SetDefault("research.enabled", d.Research.Enabled)
	v.SetDefault("research.max_concurrent", d.Research.MaxConcurrent)
	v.SetDefault("research.min_interval", d.Research.MinInterval)
	v.SetDefault("research.timeout", d.Research.Timeout)
	v.SetDefault("batch.chunk_size", d.Batch.ChunkSize)
	v.SetDefault("batch.workers", d.Batch.Workers)
	v.SetDefault("batch.inter_chunk_delay", d.Batch.InterChunkDelay)
	v.SetDefault("thresholds.fast_path", d.FastPathStrength)
	v.SetDefault("thresholds.high_confidence", d.HighConfidence)
}

// Load builds a validated Config from a viper instance.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:     v.GetString("log_level"),
		DatabasePath: ExpandPath(v.GetString("database_path")),
		PatternFile:  ExpandPath(v.GetString("pattern_file")),
		Cache: CacheConfig{
			TTL:      v.GetDuration("cache.ttl"),
			MaxSize:  v.GetInt("cache.max_size"),
			Disabled: v.GetBool("cache.disabled"),
		},
		Research: ResearchConfig{
			Enabled:       v.GetBool("research.enabled"),
			MaxConcurrent: v.GetInt("research.max_concurrent"),
			MinInterval:   v.GetDuration("research.min_interval"),
			Timeout:       v.GetDuration("research.timeout"),
		},
		Batch: BatchConfig{
			ChunkSize:       v.GetInt("batch.chunk_size"),
			Workers:         v.GetInt("batch.workers"),
			InterChunkDelay: v.GetDuration("batch.inter_chunk_delay"),
		},
		FastPathStrength: v.GetFloat64("thresholds.fast_path"),
		HighConfidence:   v.GetFloat64("thresholds.high_confidence"),
		Weights:          scoring.DefaultWeights(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot work with.
func (c Config) Validate() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache.ttl must be positive", common.ErrInvalidConfig)
	}
	if c.Cache.MaxSize <= 0 {
		return fmt.Errorf("%w: cache.max_size must be positive", common.ErrInvalidConfig)
	}
	if c.FastPathStrength <= 0 || c.FastPathStrength > 1 {
		return fmt.Errorf("%w: thresholds.fast_path must be in (0,1]", common.ErrInvalidConfig)
	}
	if c.HighConfidence <= 0 || c.HighConfidence > 1 {
		return fmt.Errorf("%w: thresholds.high_confidence must be in (0,1]", common.ErrInvalidConfig)
	}
	if c.Batch.ChunkSize <= 0 {
		return fmt.Errorf("%w: batch.chunk_size must be positive", common.ErrInvalidConfig)
	}
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("%w: batch.workers must be positive", common.ErrInvalidConfig)
	}
	if c.Research.Enabled {
		if c.Research.MaxConcurrent <= 0 {
			return fmt.Errorf("%w: research.max_concurrent must be positive", common.ErrInvalidConfig)
		}
		if c.Research.Timeout <= 0 {
			return fmt.Errorf("%w: research.timeout must be positive", common.ErrInvalidConfig)
		}
	}
	return nil
}
