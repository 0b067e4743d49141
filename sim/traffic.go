// Implements the TrafficSource, the stateless producer of the offered
// packet sequence fed to every engine.

package sim

import "math/rand"

// TrafficSource generates ordered, finite packet sequences. Arrival order is
// deterministic (ID 0..n-1); class and size are drawn from the injected RNG,
// class first, size second, one pair of draws per packet.
type TrafficSource struct {
	mix              [numClasses]float64 // cumulative class mix weights
	sizeMin, sizeMax int
}

// NewTrafficSource builds a source from the configured class mix and packet
// size range. The config must already be validated.
func NewTrafficSource(cfg *Config) *TrafficSource {
	ts := &TrafficSource{sizeMin: cfg.SizeMin, sizeMax: cfg.SizeMax}
	cumulative := 0.0
	for _, cl := range Classes {
		cumulative += cfg.PerClass(cl).MixWeight
		ts.mix[cl] = cumulative
	}
	return ts
}

// Generate returns n packets with ID = 0..n-1 and ArrivalTime = ID.
func (ts *TrafficSource) Generate(n int, rng *rand.Rand) []*Packet {
	packets := make([]*Packet, 0, n)
	for i := 0; i < n; i++ {
		packets = append(packets, &Packet{
			ID:          int64(i),
			Class:       ts.pickClass(rng),
			ArrivalTime: int64(i),
			Size:        ts.pickSize(rng),
		})
	}
	return packets
}

func (ts *TrafficSource) pickClass(rng *rand.Rand) Class {
	u := rng.Float64() * ts.mix[numClasses-1]
	for _, cl := range Classes {
		if u < ts.mix[cl] {
			return cl
		}
	}
	return Classes[numClasses-1]
}

func (ts *TrafficSource) pickSize(rng *rand.Rand) int {
	if ts.sizeMin == ts.sizeMax {
		return ts.sizeMin
	}
	return ts.sizeMin + rng.Intn(ts.sizeMax-ts.sizeMin+1)
}

// ClonePackets deep-copies a packet sequence. Every engine gets its own copy
// so that WFQ's FinishTime writes never alias across engines.
func ClonePackets(packets []*Packet) []*Packet {
	clones := make([]*Packet, len(packets))
	for i, p := range packets {
		cp := *p
		clones[i] = &cp
	}
	return clones
}
