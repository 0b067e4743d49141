package sim

import "testing"

// TestFifoEngine_FastRouterNeverDrops: with a service probability of 1.0 the
// router drains one packet before every admission attempt, so a buffer of
// size 2 never fills and all 20 packets are eventually served.
func TestFifoEngine_FastRouterNeverDrops(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BufferSize = 2
	cfg.ChokeThreshold = 1
	cfg.RouterSpeed = 1.0

	engine := NewFifoEngine(cfg)
	res := engine.Run(makePackets(repeatClasses(Bronze, 20)...), alwaysServe())

	if res[Bronze].Served != 20 {
		t.Errorf("served = %d, want 20", res[Bronze].Served)
	}
	if res.TotalDropped() != 0 {
		t.Errorf("dropped = %d, want 0", res.TotalDropped())
	}
}

// TestFifoEngine_TailDropIsClassBlind: with service stalled, the first
// BufferSize packets are admitted and everything after is dropped no matter
// its class.
func TestFifoEngine_TailDropIsClassBlind(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BufferSize = 3
	cfg.ChokeThreshold = 2

	engine := NewFifoEngine(cfg)
	res := engine.Run(makePackets(
		Gold, Silver, Bronze, // admitted
		Gold, Silver, Bronze, Gold, Silver, Bronze, Gold, // dropped
	), neverServe())

	want := Results{}
	want[Gold] = ClassStats{Served: 1, Dropped: 3}
	want[Silver] = ClassStats{Served: 1, Dropped: 2}
	want[Bronze] = ClassStats{Served: 1, Dropped: 2}
	if res != want {
		t.Errorf("results = %+v, want %+v", res, want)
	}
}

// TestFifoEngine_FlushServesRemainder: packets still buffered when the input
// runs out are served, not lost.
func TestFifoEngine_FlushServesRemainder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BufferSize = 10

	engine := NewFifoEngine(cfg)
	res := engine.Run(makePackets(repeatClasses(Silver, 5)...), neverServe())

	if res[Silver].Served != 5 || res[Silver].Dropped != 0 {
		t.Errorf("silver = %+v, want all 5 served via flush", res[Silver])
	}
}
