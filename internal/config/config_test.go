package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassis-finance/cassis/internal/common"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 1000, cfg.Cache.MaxSize)
	assert.False(t, cfg.Research.Enabled)
	assert.Equal(t, 3, cfg.Research.MaxConcurrent)
	assert.Equal(t, 20, cfg.Batch.ChunkSize)
	assert.InDelta(t, 0.85, cfg.FastPathStrength, 1e-9)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("cache.ttl", "5m")
	v.Set("batch.workers", 8)
	v.Set("research.enabled", true)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.True(t, cfg.Research.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{"cache.ttl", "0s"},
		{"cache.max_size", -1},
		{"thresholds.fast_path", 1.5},
		{"thresholds.high_confidence", 0},
		{"batch.chunk_size", 0},
		{"batch.workers", -2},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("CASSIS_TEST_DIR", "/tmp/cassis")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/tmp/cassis/data.db", ExpandPath("$CASSIS_TEST_DIR/data.db"))
	assert.NotContains(t, ExpandPath("~/config.yaml"), "~")
}
