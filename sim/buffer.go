// Implements the bounded Buffer, the holding area every FIFO-serviced
// engine admits packets into.

package sim

import (
	"fmt"
	"strings"
)

// Buffer is a bounded FIFO of packets awaiting service. Admission checks
// HasRoom first; Enqueue on a full buffer is a programming error.
type Buffer struct {
	queue    []*Packet
	capacity int
}

// NewBuffer creates an empty buffer with the given capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{capacity: capacity}
}

// Len returns the number of buffered packets.
func (b *Buffer) Len() int {
	return len(b.queue)
}

// HasRoom reports whether another packet can be admitted.
func (b *Buffer) HasRoom() bool {
	return len(b.queue) < b.capacity
}

// Enqueue appends a packet at the tail.
func (b *Buffer) Enqueue(p *Packet) {
	if !b.HasRoom() {
		panic(fmt.Sprintf("Enqueue on full buffer (capacity %d)", b.capacity))
	}
	b.queue = append(b.queue, p)
}

// Dequeue removes and returns the head packet.
// Returns nil if the buffer is empty.
func (b *Buffer) Dequeue() *Packet {
	if len(b.queue) == 0 {
		return nil
	}
	head := b.queue[0]
	b.queue = b.queue[1:]
	return head
}

func (b *Buffer) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range b.queue {
		sb.WriteString(p.String())
		if i < len(b.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
