// Package trace provides structured recording of truck state transitions,
// wait-list registrations and queue promotions.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// NoStation marks a record that carries no station.
const NoStation = -1

// TransitionRecord captures a single truck state change.
type TransitionRecord struct {
	TruckID   int
	Clock     int64
	From      string
	To        string
	StationID int // station assigned to the truck at the time, or NoStation
}

// QueueRecord captures a truck being registered in a station's wait list.
type QueueRecord struct {
	TruckID   int
	Clock     int64
	StationID int
	Position  int // 0-based position in the wait list after the append
}

// PromotionRecord captures a queued truck being granted its station.
type PromotionRecord struct {
	TruckID        int
	Clock          int64
	StationID      int
	RemainingQueue int // wait-list length after the pop
}
