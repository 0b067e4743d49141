package sim

import "math/rand"

// Deterministic rand.Source values for pinning the service coin flip.
// serveVal makes Float64 return 0; skipVal makes it return just under 1,
// which fails the coin flip for any speed < 1.
const (
	serveVal int64 = 0
	skipVal  int64 = 1<<63 - 1<<12
)

// fixedSource always returns the same Int63 value.
type fixedSource struct{ v int64 }

func (s fixedSource) Int63() int64 { return s.v }
func (s fixedSource) Seed(int64)   {}

// alwaysServe returns an RNG whose service coin flips all succeed
// (for any speed > 0).
func alwaysServe() *rand.Rand { return rand.New(fixedSource{serveVal}) }

// neverServe returns an RNG whose service coin flips all fail
// (for any speed < 1).
func neverServe() *rand.Rand { return rand.New(fixedSource{skipVal}) }

// scriptedSource replays a fixed sequence of Int63 values, then repeats the
// last one once exhausted.
type scriptedSource struct {
	vals []int64
	i    int
}

func (s *scriptedSource) Int63() int64 {
	v := s.vals[s.i]
	if s.i < len(s.vals)-1 {
		s.i++
	}
	return v
}

func (s *scriptedSource) Seed(int64) {}

func scriptedRand(vals ...int64) *rand.Rand {
	return rand.New(&scriptedSource{vals: vals})
}

// makePackets builds a synthetic unit-size sequence with ArrivalTime = ID.
func makePackets(classes ...Class) []*Packet {
	packets := make([]*Packet, len(classes))
	for i, cl := range classes {
		packets[i] = &Packet{ID: int64(i), Class: cl, ArrivalTime: int64(i), Size: 1}
	}
	return packets
}

// repeatClasses returns n copies of cl.
func repeatClasses(cl Class, n int) []Class {
	classes := make([]Class, n)
	for i := range classes {
		classes[i] = cl
	}
	return classes
}
