// Renders the cross-engine comparison at the end of a run.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Report aggregates the per-engine results of a run for side-by-side
// comparison.
type Report struct {
	order   []string
	results map[string]Results
}

// NewReport creates a report over the given results, rendered in the given
// engine order. Names without a result are skipped.
func NewReport(order []string, results map[string]Results) *Report {
	return &Report{order: order, results: results}
}

// FairnessIndex returns Jain's fairness index over per-class served counts:
// (Σx)² / (n·Σx²). It is 1.0 when service is split evenly across classes,
// 1/n when a single class receives everything, and defined as 0 when nothing
// was served.
func FairnessIndex(res Results) float64 {
	served := make([]float64, 0, numClasses)
	for _, cl := range Classes {
		served = append(served, float64(res[cl].Served))
	}
	total := floats.Sum(served)
	if total == 0 {
		return 0
	}
	return total * total / (float64(len(served)) * floats.Dot(served, served))
}

// Print displays the comparison table: per-engine totals with loss percentage
// and fairness index, then the per-class breakdown for each engine.
func (r *Report) Print() {
	fmt.Println("=== Router Discipline Comparison ===")
	fmt.Printf("%-14s | %8s | %8s | %7s | %8s\n", "ENGINE", "SERVED", "DROPPED", "LOSS%", "FAIRNESS")
	fmt.Println("---------------------------------------------------------")
	for _, name := range r.order {
		res, ok := r.results[name]
		if !ok {
			continue
		}
		fmt.Printf("%-14s | %8d | %8d | %6.2f%% | %8.3f\n",
			name, res.TotalServed(), res.TotalDropped(), res.TotalLossPct(), FairnessIndex(res))
	}
	for _, name := range r.order {
		res, ok := r.results[name]
		if !ok {
			continue
		}
		fmt.Printf("\n%s per class:\n", name)
		for _, cl := range Classes {
			cs := res[cl]
			fmt.Printf("  %-8s served=%-7d dropped=%-7d loss=%6.2f%%\n",
				cl, cs.Served, cs.Dropped, cs.LossPct())
		}
	}
}
