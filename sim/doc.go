// Package sim models a single bottleneck router under four competing
// admission and scheduling disciplines, measuring per-class throughput and
// loss under sustained overload.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - packet.go: the Packet value and the Gold/Silver/Bronze Class enum
//   - engine.go: the Engine interface, the shared bounded Buffer, and RunAll
//   - traffic.go: the TrafficSource that produces the offered sequence
//
// # Engines
//
// Each engine consumes the full packet sequence once and produces per-class
// served/dropped counts (Results). Engines share no state:
//   - fifo.go: tail-drop FIFO baseline
//   - choke.go: hysteresis-based choke admission that sheds low-priority load
//   - tokenbucket.go: per-class token-bucket shaping at admission
//   - wfq.go: weighted fair queuing by virtual finish time
//
// All four share one regulation mechanism: a per-step service coin flip with
// probability RouterSpeed, modeling a router strictly slower than the
// offered traffic. Without it a finite buffer would never overflow and no
// discipline would show differentiated loss.
//
// # Determinism
//
// There is no wall-clock time and no I/O anywhere in the package. Runs are
// pure functions of (configuration, SimulationKey): traffic generation and
// each engine draw from isolated PartitionedRNG subsystems (rng.go), so
// RunAll may execute engines concurrently while remaining bit-for-bit
// reproducible.
package sim
