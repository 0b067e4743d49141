package sim

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"
)

// Engine consumes a full packet sequence once and produces per-class stats.
// Each engine owns its buffer and regulation state; an Engine instance is
// good for a single Run.
type Engine interface {
	Name() string
	Run(packets []*Packet, rng *rand.Rand) Results
}

// ValidEngines is the set of recognized engine names.
// Shared by CLI validation and NewEngine to avoid duplication.
var ValidEngines = map[string]bool{
	"fifo": true, "choke": true, "token-bucket": true, "wfq": true,
}

// EngineNames lists all engines in canonical comparison order.
var EngineNames = []string{"fifo", "choke", "token-bucket", "wfq"}

// NewEngine creates an engine by name. Names must be validated against
// ValidEngines before reaching here; panics on unrecognized names.
func NewEngine(name string, cfg *Config) Engine {
	switch name {
	case "fifo":
		return NewFifoEngine(cfg)
	case "choke":
		return NewChokeEngine(cfg)
	case "token-bucket":
		return NewTokenBucketEngine(cfg)
	case "wfq":
		return NewWfqEngine(cfg)
	default:
		panic(fmt.Sprintf("unknown engine %q", name))
	}
}

// serviceReady draws the per-step service coin flip. Callers must make the
// draw only when their buffer holds at least one packet, so the random
// stream advances identically for identical inputs regardless of discipline.
func serviceReady(rng *rand.Rand, speed float64) bool {
	return rng.Float64() < speed
}

// RunAll generates one traffic sequence and runs each named engine over its
// own copy. Engines execute concurrently, but because every engine draws
// from its own RNG subsystem the results are identical to running them
// one after another.
func RunAll(cfg *Config, key SimulationKey, engines []string) map[string]Results {
	prng := NewPartitionedRNG(key)
	source := NewTrafficSource(cfg)
	packets := source.Generate(cfg.TotalPackets, prng.ForSubsystem(SubsystemTraffic))

	results := make(map[string]Results, len(engines))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, name := range engines {
		engine := NewEngine(name, cfg)
		rng := prng.ForSubsystem(SubsystemEngine(name))
		input := ClonePackets(packets)
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := engine.Run(input, rng)
			logrus.Debugf("engine %s: served=%d dropped=%d", engine.Name(), res.TotalServed(), res.TotalDropped())
			mu.Lock()
			results[engine.Name()] = res
			mu.Unlock()
		}()
	}
	wg.Wait()
	return results
}
