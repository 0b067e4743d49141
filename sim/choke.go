package sim

import "math/rand"

// ChokeEngine adds congestion-protected admission on top of the FIFO
// baseline. A hysteresis flag trips when buffer depth exceeds the choke
// threshold and releases only once depth falls below half of it; while the
// flag is up, Silver and Bronze packets are dropped unconditionally to shed
// load, and Gold packets are dropped only when the buffer is physically full.
type ChokeEngine struct {
	speed       float64
	threshold   int
	buffer      *Buffer
	chokeActive bool
}

// NewChokeEngine creates a choke engine from a validated config.
func NewChokeEngine(cfg *Config) *ChokeEngine {
	return &ChokeEngine{
		speed:     cfg.RouterSpeed,
		threshold: cfg.ChokeThreshold,
		buffer:    NewBuffer(cfg.BufferSize),
	}
}

func (e *ChokeEngine) Name() string { return "choke" }

// Run processes the sequence: service attempt, hysteresis update, then
// class-aware admission. Flushes like the FIFO baseline.
func (e *ChokeEngine) Run(packets []*Packet, rng *rand.Rand) Results {
	var res Results
	for _, p := range packets {
		if e.buffer.Len() > 0 && serviceReady(rng, e.speed) {
			res.RecordServed(e.buffer.Dequeue().Class)
		}

		// The dead band between threshold and threshold/2 keeps the flag
		// from oscillating around the boundary.
		depth := e.buffer.Len()
		if depth > e.threshold {
			e.chokeActive = true
		} else if float64(depth) < float64(e.threshold)/2 {
			e.chokeActive = false
		}

		if e.chokeActive && p.Class != Gold {
			res.RecordDropped(p.Class)
			continue
		}
		if e.buffer.HasRoom() {
			e.buffer.Enqueue(p)
		} else {
			res.RecordDropped(p.Class)
		}
	}
	for e.buffer.Len() > 0 {
		res.RecordServed(e.buffer.Dequeue().Class)
	}
	return res
}
