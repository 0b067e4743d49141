package sim

import "math/rand"

// FifoEngine is the tail-drop baseline: class-blind admission into a bounded
// FIFO buffer, first-come-first-served service. Loss depends only on buffer
// occupancy, never on class.
type FifoEngine struct {
	speed  float64
	buffer *Buffer
}

// NewFifoEngine creates a FIFO engine from a validated config.
func NewFifoEngine(cfg *Config) *FifoEngine {
	return &FifoEngine{
		speed:  cfg.RouterSpeed,
		buffer: NewBuffer(cfg.BufferSize),
	}
}

func (e *FifoEngine) Name() string { return "fifo" }

// Run processes the sequence: per packet, one service attempt on the head of
// the buffer, then tail-drop admission. The buffer is flushed after the
// input is exhausted so every admitted packet is eventually counted served.
func (e *FifoEngine) Run(packets []*Packet, rng *rand.Rand) Results {
	var res Results
	for _, p := range packets {
		if e.buffer.Len() > 0 && serviceReady(rng, e.speed) {
			res.RecordServed(e.buffer.Dequeue().Class)
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
