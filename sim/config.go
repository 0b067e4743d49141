package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ClassConfig groups the per-class tunables: the WFQ weight, the token
// bucket shape, and the share of generated traffic.
type ClassConfig struct {
	Weight           float64 `yaml:"weight"`             // WFQ weight (must be > 0)
	BucketCapacity   float64 `yaml:"bucket_capacity"`    // token bucket capacity (>= 0)
	BucketRefillRate float64 `yaml:"bucket_refill_rate"` // tokens added per processed packet (>= 0)
	MixWeight        float64 `yaml:"mix_weight"`         // relative share of generated traffic (>= 0)
}

// Config holds every tunable for a simulation run, loadable from a YAML file.
// All engines in a run share the same Config; each engine copies what it
// needs at construction, so mutating a Config mid-run has no effect.
type Config struct {
	TotalPackets   int     `yaml:"total_packets"`   // offered packets per run (must be > 0)
	BufferSize     int     `yaml:"buffer_size"`     // buffer capacity in packets (must be >= 1)
	ChokeThreshold int     `yaml:"choke_threshold"` // buffer depth that trips the choke flag
	RouterSpeed    float64 `yaml:"router_speed"`    // per-step service probability, in (0,1]
	SizeMin        int     `yaml:"size_min"`        // smallest packet size (>= 1)
	SizeMax        int     `yaml:"size_max"`        // largest packet size (>= SizeMin)

	Gold   ClassConfig `yaml:"gold"`
	Silver ClassConfig `yaml:"silver"`
	Bronze ClassConfig `yaml:"bronze"`
}

// DefaultConfig returns the stock overload scenario: a router running at 70%
// of the offered load behind a 20-slot buffer, with weights and bucket
// parameters scaled by class priority and a uniform class mix.
func DefaultConfig() *Config {
	return &Config{
		TotalPackets:   50000,
		BufferSize:     20,
		ChokeThreshold: 10,
		RouterSpeed:    0.7,
		SizeMin:        1,
		SizeMax:        3,
		Gold:           ClassConfig{Weight: 4.0, BucketCapacity: 10, BucketRefillRate: 2.0, MixWeight: 1},
		Silver:         ClassConfig{Weight: 2.0, BucketCapacity: 5, BucketRefillRate: 1.0, MixWeight: 1},
		Bronze:         ClassConfig{Weight: 1.0, BucketCapacity: 2, BucketRefillRate: 0.5, MixWeight: 1},
	}
}

// PerClass returns the configuration block for class c.
func (c *Config) PerClass(cl Class) *ClassConfig {
	switch cl {
	case Gold:
		return &c.Gold
	case Silver:
		return &c.Silver
	default:
		return &c.Bronze
	}
}

// LoadConfig reads and parses a YAML configuration file. Fields absent from
// the file keep their DefaultConfig values. The result is validated before
// it is returned.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks all parameter ranges once, before any simulation runs.
// A violation is a fatal configuration error; there is no partial-run
// recovery.
func (c *Config) Validate() error {
	if c.TotalPackets < 1 {
		return fmt.Errorf("total_packets must be >= 1, got %d", c.TotalPackets)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer_size must be >= 1, got %d", c.BufferSize)
	}
	if c.RouterSpeed <= 0 || c.RouterSpeed > 1 {
		return fmt.Errorf("router_speed must be in (0,1], got %g", c.RouterSpeed)
	}
	if c.ChokeThreshold <= 0 || c.ChokeThreshold >= c.BufferSize*2 {
		return fmt.Errorf("choke_threshold must satisfy 0 < threshold < 2*buffer_size, got %d (buffer_size=%d)",
			c.ChokeThreshold, c.BufferSize)
	}
	if c.SizeMin < 1 {
		return fmt.Errorf("size_min must be >= 1, got %d", c.SizeMin)
	}
	if c.SizeMax < c.SizeMin {
		return fmt.Errorf("size_max must be >= size_min, got %d < %d", c.SizeMax, c.SizeMin)
	}
	mixTotal := 0.0
	for _, cl := range Classes {
		cc := c.PerClass(cl)
		if cc.Weight <= 0 {
			return fmt.Errorf("%s weight must be > 0, got %g", cl, cc.Weight)
		}
		if cc.BucketCapacity < 0 {
			return fmt.Errorf("%s bucket_capacity must be non-negative, got %g", cl, cc.BucketCapacity)
		}
		if cc.BucketRefillRate < 0 {
			return fmt.Errorf("%s bucket_refill_rate must be non-negative, got %g", cl, cc.BucketRefillRate)
		}
		if cc.MixWeight < 0 {
			return fmt.Errorf("%s mix_weight must be non-negative, got %g", cl, cc.MixWeight)
		}
		mixTotal += cc.MixWeight
	}
	if mixTotal <= 0 {
		return fmt.Errorf("class mix weights must sum to a positive value")
	}
	return nil
}
