package sim

import (
	"container/heap"
	"math"
	"math/rand"
)

// packetHeap implements a priority queue with deterministic ordering.
// Ordering: virtual finish time → packet ID.
type packetHeap struct {
	packets []*Packet
}

func (h *packetHeap) Len() int {
	return len(h.packets)
}

// Less orders by finish time, breaking ties by packet ID (lower first).
// Floating-point finish times can collide, so the ID tie-break is what makes
// service order independent of insertion order.
func (h *packetHeap) Less(i, j int) bool {
	pi, pj := h.packets[i], h.packets[j]
	if pi.FinishTime != pj.FinishTime {
		return pi.FinishTime < pj.FinishTime
	}
	return pi.ID < pj.ID
}

func (h *packetHeap) Swap(i, j int) {
	h.packets[i], h.packets[j] = h.packets[j], h.packets[i]
}

func (h *packetHeap) Push(x interface{}) {
	h.packets = append(h.packets, x.(*Packet))
}

func (h *packetHeap) Pop() interface{} {
	old := h.packets
	n := len(old)
	item := old[n-1]
	h.packets = old[0 : n-1]
	return item
}

// WfqEngine approximates fluid fair queuing: every packet is stamped with a
// virtual finish time and service always takes the globally smallest stamp.
// Larger class weight means a smaller finish-time increment, hence earlier
// service. Admission itself stays class-blind at the buffer-full boundary;
// fairness acts only on ordering.
type WfqEngine struct {
	speed      float64
	capacity   int
	heap       *packetHeap
	weights    [numClasses]float64
	lastFinish [numClasses]float64
}

// NewWfqEngine creates a WFQ engine from a validated config.
func NewWfqEngine(cfg *Config) *WfqEngine {
	e := &WfqEngine{
		speed:    cfg.RouterSpeed,
		capacity: cfg.BufferSize,
		heap:     &packetHeap{},
	}
	for _, cl := range Classes {
		e.weights[cl] = cfg.PerClass(cl).Weight
	}
	return e
}

func (e *WfqEngine) Name() string { return "wfq" }

// Run processes the sequence: service attempt on the smallest finish time,
// finish-time computation, then bounded admission. The flush drains the heap
// in finish-time order.
func (e *WfqEngine) Run(packets []*Packet, rng *rand.Rand) Results {
	var res Results
	for _, p := range packets {
		if e.heap.Len() > 0 && serviceReady(rng, e.speed) {
			res.RecordServed(heap.Pop(e.heap).(*Packet).Class)
		}

		// finish = max(arrival, previous class finish) + size/weight:
		// a class's next finish can never precede its own previous finish
		// nor the packet's arrival. The cursor advances even when the
		// packet is then dropped at admission.
		start := math.Max(float64(p.ArrivalTime), e.lastFinish[p.Class])
		finish := start + float64(p.Size)/e.weights[p.Class]
		p.FinishTime = finish
		e.lastFinish[p.Class] = finish

		if e.heap.Len() < e.capacity {
			heap.Push(e.heap, p)
		} else {
			res.RecordDropped(p.Class)
		}
	}
	for e.heap.Len() > 0 {
		res.RecordServed(heap.Pop(e.heap).(*Packet).Class)
	}
	return res
}
