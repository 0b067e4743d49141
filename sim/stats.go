// Per-class served/dropped accounting produced by every engine.

package sim

// ClassStats counts packets that exited the buffer via service and packets
// rejected at admission, for one class.
type ClassStats struct {
	Served  int
	Dropped int
}

// Offered returns the number of packets of this class the engine saw.
func (s ClassStats) Offered() int {
	return s.Served + s.Dropped
}

// LossPct returns the drop percentage, defined as 0 when nothing was offered.
func (s ClassStats) LossPct() float64 {
	offered := s.Offered()
	if offered == 0 {
		return 0
	}
	return float64(s.Dropped) / float64(offered) * 100
}

// Results maps each class to its stats. Indexed directly by Class.
// Conservation invariant: after an engine run (which always flushes its
// buffer), TotalOffered() equals the number of packets handed to Run.
type Results [numClasses]ClassStats

// RecordServed counts a packet of class cl as served.
func (r *Results) RecordServed(cl Class) {
	r[cl].Served++
}

// RecordDropped counts a packet of class cl as rejected at admission.
func (r *Results) RecordDropped(cl Class) {
	r[cl].Dropped++
}

// TotalServed sums served counts across classes.
func (r *Results) TotalServed() int {
	total := 0
	for _, cl := range Classes {
		total += r[cl].Served
	}
	return total
}

// TotalDropped sums dropped counts across classes.
func (r *Results) TotalDropped() int {
	total := 0
	for _, cl := range Classes {
		total += r[cl].Dropped
	}
	return total
}

// TotalOffered sums served and dropped counts across classes.
func (r *Results) TotalOffered() int {
	return r.TotalServed() + r.TotalDropped()
}

// TotalLossPct returns the class-blind drop percentage for the whole run.
func (r *Results) TotalLossPct() float64 {
	offered := r.TotalOffered()
	if offered == 0 {
		return 0
	}
	return float64(r.TotalDropped()) / float64(offered) * 100
}
