package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Validates(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero packets", func(c *Config) { c.TotalPackets = 0 }},
		{"zero buffer", func(c *Config) { c.BufferSize = 0 }},
		{"zero speed", func(c *Config) { c.RouterSpeed = 0 }},
		{"speed above one", func(c *Config) { c.RouterSpeed = 1.1 }},
		{"zero choke threshold", func(c *Config) { c.ChokeThreshold = 0 }},
		{"choke threshold too large", func(c *Config) { c.ChokeThreshold = c.BufferSize * 2 }},
		{"zero size_min", func(c *Config) { c.SizeMin = 0 }},
		{"size_max below size_min", func(c *Config) { c.SizeMin = 3; c.SizeMax = 2 }},
		{"non-positive weight", func(c *Config) { c.Silver.Weight = 0 }},
		{"negative bucket capacity", func(c *Config) { c.Bronze.BucketCapacity = -1 }},
		{"negative refill rate", func(c *Config) { c.Gold.BucketRefillRate = -0.5 }},
		{"negative mix weight", func(c *Config) { c.Gold.MixWeight = -1 }},
		{"all-zero mix", func(c *Config) {
			c.Gold.MixWeight, c.Silver.MixWeight, c.Bronze.MixWeight = 0, 0, 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_PerClass(t *testing.T) {
	cfg := DefaultConfig()
	assert.Same(t, &cfg.Gold, cfg.PerClass(Gold))
	assert.Same(t, &cfg.Silver, cfg.PerClass(Silver))
	assert.Same(t, &cfg.Bronze, cfg.PerClass(Bronze))
}

func TestLoadConfig_PartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("buffer_size: 8\nrouter_speed: 0.5\nchoke_threshold: 4\ngold:\n  weight: 8.0\n  bucket_capacity: 20\n  bucket_refill_rate: 4.0\n  mix_weight: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.BufferSize)
	assert.Equal(t, 0.5, cfg.RouterSpeed)
	assert.Equal(t, 8.0, cfg.Gold.Weight)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultConfig().TotalPackets, cfg.TotalPackets)
	assert.Equal(t, DefaultConfig().Silver, cfg.Silver)
}

func TestLoadConfig_InvalidValuesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("router_speed: 2.0\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buffer_size: [not an int\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
