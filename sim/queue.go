// Implements the TruckQueue, the per-station wait list of trucks.
// Trucks are enqueued when no station is free for them to walk up to.

package sim

import (
	"fmt"
	"strings"
)

// TruckQueue represents a FIFO queue of truck IDs waiting for a station.
// The queue stores identities only, never *Truck, so stations and the
// allocator hold no references back into the fleet.
type TruckQueue struct {
	queue []int // FIFO queue of truck IDs
}

// Enqueue adds a truck to the back of the queue.
func (tq *TruckQueue) Enqueue(truckID int) {
	tq.queue = append(tq.queue, truckID)
}

func (tq *TruckQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, id := range tq.queue {
		sb.WriteString(fmt.Sprint(id))
		if i < len(tq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of trucks in the queue.
func (tq *TruckQueue) Len() int {
	return len(tq.queue)
}

// Peek returns the truck at the front of the queue without removing it.
// The boolean is false when the queue is empty.
func (tq *TruckQueue) Peek() (int, bool) {
	if len(tq.queue) == 0 {
		return 0, false
	}
	return tq.queue[0], true
}

// IndexOf returns the position of truckID in the queue, or -1.
func (tq *TruckQueue) IndexOf(truckID int) int {
	for i, id := range tq.queue {
		if id == truckID {
			return i
		}
	}
	return -1
}

// Contains reports whether truckID is queued.
func (tq *TruckQueue) Contains(truckID int) bool {
	return tq.IndexOf(truckID) >= 0
}

// Remove deletes truckID from the queue, preserving the order of the rest.
// Returns false if the truck was not queued.
func (tq *TruckQueue) Remove(truckID int) bool {
	i := tq.IndexOf(truckID)
	if i < 0 {
		return false
	}
	tq.queue = append(tq.queue[:i], tq.queue[i+1:]...)
	return true
}

// Items returns a copy of the queue contents, front first.
func (tq *TruckQueue) Items() []int {
	out := make([]int, len(tq.queue))
	copy(out, tq.queue)
	return out
}

// Dequeue removes the truck at the front of the queue.
// An empty queue is a normal condition and reports false.
func (tq *TruckQueue) Dequeue() (int, bool) {
	if len(tq.queue) == 0 {
		return 0, false
	}
	id := tq.queue[0]
	tq.queue = tq.queue[1:]
	return id, true
}
