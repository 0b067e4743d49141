package sim

import (
	"math"
	"math/rand"
)

// tokenBucket holds the shaping state for one class.
type tokenBucket struct {
	tokens     float64
	capacity   float64
	refillRate float64
}

func (tb *tokenBucket) refill() {
	tb.tokens = math.Min(tb.capacity, tb.tokens+tb.refillRate)
}

// TokenBucketEngine applies per-class rate shaping at admission: each packet
// costs one token from its class bucket. Buckets refill once per processed
// packet rather than per unit of wall-clock time, which ties each class's
// admitted rate to the throughput of the system as a whole.
type TokenBucketEngine struct {
	speed   float64
	buffer  *Buffer
	buckets [numClasses]tokenBucket
}

// NewTokenBucketEngine creates a token bucket engine from a validated
// config. Buckets start full.
func NewTokenBucketEngine(cfg *Config) *TokenBucketEngine {
	e := &TokenBucketEngine{
		speed:  cfg.RouterSpeed,
		buffer: NewBuffer(cfg.BufferSize),
	}
	for _, cl := range Classes {
		cc := cfg.PerClass(cl)
		e.buckets[cl] = tokenBucket{
			tokens:     cc.BucketCapacity,
			capacity:   cc.BucketCapacity,
			refillRate: cc.BucketRefillRate,
		}
	}
	return e
}

func (e *TokenBucketEngine) Name() string { return "token-bucket" }

// Run processes the sequence: refill every bucket, service attempt, then
// token-gated admission. A drop for lack of tokens (shaped) and a drop with
// tokens but no room (congestion loss) are counted identically.
func (e *TokenBucketEngine) Run(packets []*Packet, rng *rand.Rand) Results {
	const cost = 1.0

	var res Results
	for _, p := range packets {
		for i := range e.buckets {
			e.buckets[i].refill()
		}
		if e.buffer.Len() > 0 && serviceReady(rng, e.speed) {
			res.RecordServed(e.buffer.Dequeue().Class)
		}

		bucket := &e.buckets[p.Class]
		switch {
		case bucket.tokens < cost:
			res.RecordDropped(p.Class)
		case !e.buffer.HasRoom():
			res.RecordDropped(p.Class)
		default:
			bucket.tokens -= cost
			e.buffer.Enqueue(p)
		}
	}
	for e.buffer.Len() > 0 {
		res.RecordServed(e.buffer.Dequeue().Class)
	}
	return res
}
