// Defines the Packet struct and the service Class enum shared by all engines.

package sim

import "fmt"

// Class identifies a packet's service class. It is a closed enum: per-class
// configuration (weights, token buckets, traffic mix) lives in fixed-size
// arrays indexed by Class, never in string-keyed maps.
type Class int

const (
	Gold Class = iota
	Silver
	Bronze

	numClasses = 3
)

// Classes lists every service class in priority order (highest first).
var Classes = [numClasses]Class{Gold, Silver, Bronze}

func (c Class) String() string {
	switch c {
	case Gold:
		return "Gold"
	case Silver:
		return "Silver"
	case Bronze:
		return "Bronze"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// ParseClass converts a class name (case-sensitive) to its Class value.
func ParseClass(name string) (Class, error) {
	switch name {
	case "Gold":
		return Gold, nil
	case "Silver":
		return Silver, nil
	case "Bronze":
		return Bronze, nil
	default:
		return 0, fmt.Errorf("unknown service class %q", name)
	}
}

// Packet models a single unit of offered traffic.
// ID is unique and strictly increasing in generation order; ArrivalTime
// equals ID, representing logical arrival order rather than wall-clock time.
// FinishTime is the virtual finish timestamp and is meaningful only after
// WfqEngine has admitted the packet; every other engine leaves it zero.
type Packet struct {
	ID          int64
	Class       Class
	ArrivalTime int64
	Size        int
	FinishTime  float64
}

func (p *Packet) String() string {
	return fmt.Sprintf("[%s#%d]", p.Class, p.ID)
}
