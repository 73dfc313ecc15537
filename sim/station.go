package sim

import "fmt"

// NoStation is the station ID used when a truck has no station assigned.
const NoStation = -1

// Station is an unloading station: a passive resource record with an
// availability flag, an optional occupant, a FIFO wait list and a count of
// unloads served. Stations are owned by the Simulator and mutated only
// through a StationAllocator.
type Station struct {
	id        int
	available bool
	occupant  int // valid only when occupied is true
	occupied  bool
	waitList  TruckQueue
	served    int
}

// NewStation creates an available, empty station.
func NewStation(id int) *Station {
	return &Station{id: id, available: true}
}

// NewStations creates n stations with sequential IDs starting at 0.
func NewStations(n int) []*Station {
	stations := make([]*Station, n)
	for i := range stations {
		stations[i] = NewStation(i)
	}
	return stations
}

// ID returns the station's stable identity.
func (s *Station) ID() int { return s.id }

// IsAvailable reports whether no truck is currently unloading here.
func (s *Station) IsAvailable() bool { return s.available }

// Occupant returns the ID of the truck unloading here, if any.
func (s *Station) Occupant() (int, bool) { return s.occupant, s.occupied }

// ServedCount returns the number of unloads completed at this station.
func (s *Station) ServedCount() int { return s.served }

// WaitList returns a copy of the queued truck IDs, front first.
func (s *Station) WaitList() []int { return s.waitList.Items() }

// WaitListLen returns the number of queued trucks.
func (s *Station) WaitListLen() int { return s.waitList.Len() }

// InWaitList reports whether truckID is queued at this station.
func (s *Station) InWaitList(truckID int) bool { return s.waitList.Contains(truckID) }

// Assign makes truckID the occupant and marks the station unavailable.
func (s *Station) Assign(truckID int) {
	s.occupant = truckID
	s.occupied = true
	s.available = false
}

// Release clears the occupant and marks the station available. Releasing an
// occupied station counts one served unload.
func (s *Station) Release() {
	if s.occupied {
		s.served++
	}
	s.occupant = 0
	s.occupied = false
	s.available = true
}

// Block marks the station unavailable without touching its wait list.
func (s *Station) Block() {
	s.available = false
}

// Enqueue appends truckID to the wait list.
func (s *Station) Enqueue(truckID int) {
	s.waitList.Enqueue(truckID)
}

// Dequeue pops the head of the wait list. An empty list reports false.
func (s *Station) Dequeue() (int, bool) {
	return s.waitList.Dequeue()
}

// withdraw drops truckID from the wait list if present.
func (s *Station) withdraw(truckID int) bool {
	return s.waitList.Remove(truckID)
}

func (s *Station) String() string {
	occupant := "none"
	if s.occupied {
		occupant = fmt.Sprint(s.occupant)
	}
	return fmt.Sprintf("Station: (ID: %d, Available: %t, Occupant: %s, WaitList: %s, Served: %d)",
		s.id, s.available, occupant, s.waitList.String(), s.served)
}
