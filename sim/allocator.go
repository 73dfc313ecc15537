package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Allocator is the surface a Truck uses to obtain and give back stations.
// All station mutation made on behalf of a truck goes through it.
type Allocator interface {
	// FindFreeStation returns the lowest-ID station that is available and has
	// an empty wait list, or nil.
	FindFreeStation() *Station
	// EnqueueIfAbsent registers truckID on the shortest wait list. Returns nil
	// without side effects if the truck is already queued anywhere.
	EnqueueIfAbsent(truckID int) *Station
	// Assign grants stationID to truckID.
	Assign(stationID, truckID int)
	// Release marks stationID available. Idempotent.
	Release(stationID int)
}

// StationAllocator arbitrates a fixed set of stations shared with the
// Simulator. It holds truck IDs only, never trucks.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type StationAllocator struct {
	stations []*Station // ascending ID
}

// NewStationAllocator creates an allocator over the given stations. The
// station pointers are shared with the caller; the allocator keeps its own
// slice ordered by ascending ID.
func NewStationAllocator(stations []*Station) *StationAllocator {
	ordered := make([]*Station, len(stations))
	copy(ordered, stations)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID() < ordered[j].ID() })
	return &StationAllocator{stations: ordered}
}

// Stations returns the managed stations in ascending ID order.
func (a *StationAllocator) Stations() []*Station {
	return a.stations
}

// station looks up a station by ID. Unknown IDs are logged and yield nil.
func (a *StationAllocator) station(id int) *Station {
	i := sort.Search(len(a.stations), func(i int) bool { return a.stations[i].ID() >= id })
	if i < len(a.stations) && a.stations[i].ID() == id {
		return a.stations[i]
	}
	logrus.Warnf("allocator: unknown station %d", id)
	return nil
}

// FindFreeStation returns the first station, by ascending ID, that is
// available and has nobody waiting. A station with a non-empty wait list must
// serve its queue before taking a walk-up truck.
func (a *StationAllocator) FindFreeStation() *Station {
	for _, st := range a.stations {
		if st.IsAvailable() && st.WaitListLen() == 0 {
			return st
		}
	}
	return nil
}

// IsQueued reports whether truckID is in any station's wait list.
func (a *StationAllocator) IsQueued(truckID int) bool {
	for _, st := range a.stations {
		if st.InWaitList(truckID) {
			return true
		}
	}
	return false
}

// EnqueueIfAbsent appends truckID to the shortest wait list, ties broken by
// ascending station ID, and returns that station. This registers interest
// only; it does not grant the station. A truck already queued anywhere is
// rejected with nil and no indication of where it is queued.
func (a *StationAllocator) EnqueueIfAbsent(truckID int) *Station {
	if a.IsQueued(truckID) {
		logrus.Infof("allocator: truck %d is already queued", truckID)
		return nil
	}
	var shortest *Station
	for _, st := range a.stations {
		if shortest == nil || st.WaitListLen() < shortest.WaitListLen() {
			shortest = st
		}
	}
	if shortest == nil {
		return nil
	}
	shortest.Enqueue(truckID)
	return shortest
}

// Assign makes truckID the occupant of stationID. If the truck is still
// registered in a wait list it is withdrawn, so a later AdvanceQueue can
// never promote a truck that already holds a station.
func (a *StationAllocator) Assign(stationID, truckID int) {
	st := a.station(stationID)
	if st == nil {
		return
	}
	for _, other := range a.stations {
		if other.withdraw(truckID) {
			logrus.Debugf("allocator: truck %d withdrawn from station %d wait list", truckID, other.ID())
		}
	}
	st.Assign(truckID)
}

// Release marks stationID available. Releasing an available station is a no-op.
func (a *StationAllocator) Release(stationID int) {
	st := a.station(stationID)
	if st == nil || st.IsAvailable() {
		return
	}
	st.Release()
}

// Block marks stationID unavailable without touching its wait list.
func (a *StationAllocator) Block(stationID int) {
	st := a.station(stationID)
	if st == nil {
		return
	}
	st.Block()
}

// AdvanceQueue promotes at most one waiting truck. The first station, by
// ascending ID, that is available and has a non-empty wait list has its head
// popped and becomes occupied by that truck in the same step. Returns
// ok=false and mutates nothing when no station qualifies.
func (a *StationAllocator) AdvanceQueue() (truckID int, st *Station, ok bool) {
	for _, candidate := range a.stations {
		if !candidate.IsAvailable() || candidate.WaitListLen() == 0 {
			continue
		}
		id, _ := candidate.Dequeue()
		candidate.Assign(id)
		return id, candidate, true
	}
	return 0, nil, false
}
