// Defines the Truck struct that models one mining truck in the simulation.
// Tracks the truck's phase, per-phase elapsed time, station assignment and
// completed loads.

package sim

import (
	"fmt"

	"github.com/luisoro0494/vast-interview/sim/trace"
)

// TruckState is the phase a truck is in. A truck cycles through the phases
// in declaration order and wraps from LoadComplete back to StartMining.
type TruckState string

const (
	StateStartMining      TruckState = "start_mining"
	StateMiningInProgress TruckState = "mining_in_progress"
	StateTravelToUnload   TruckState = "travel_to_unload"
	StateWaitToUnload     TruckState = "wait_to_unload"
	StateUnloading        TruckState = "unloading"
	StateLoadComplete     TruckState = "load_complete"
)

// truckCycle is the fixed phase order.
var truckCycle = []TruckState{
	StateStartMining,
	StateMiningInProgress,
	StateTravelToUnload,
	StateWaitToUnload,
	StateUnloading,
	StateLoadComplete,
}

// IsValidTruckState returns true if s names one of the six phases.
func IsValidTruckState(s string) bool {
	for _, st := range truckCycle {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Next returns the phase that follows s in the load cycle.
func (s TruckState) Next() TruckState {
	for i, st := range truckCycle {
		if st == s {
			return truckCycle[(i+1)%len(truckCycle)]
		}
	}
	panic(fmt.Sprintf("Next: unknown truck state %q", s))
}

// TruckConfig groups the fixed per-truck durations, in ticks.
type TruckConfig struct {
	MiningDuration int64 // time to fill the truck
	TravelDuration int64 // time to drive from the mine to the stations
	UnloadDuration int64 // time to empty the truck at a station
}

// Truck is one mining truck's state machine. The simulator pushes the
// current time with SetCurrentTime and calls Step once per tick.
type Truck struct {
	ID     int
	Config TruckConfig

	State TruckState

	// Mining and travel elapsed are re-derived from PhaseStart every call.
	// Unloading elapsed is accumulated, one tick per Unloading call.
	PhaseStart       int64
	ElapsedMining    int64
	ElapsedTraveling int64
	ElapsedUnloading int64

	AssignedStation int // NoStation when unset

	clock    int64
	clockSet bool

	completedLoads int
	waitStart      int64
	waitTimes      []int64 // ticks spent in wait_to_unload, one per load

	allocator Allocator
	sink      TransitionSink
}

// NewTruck creates a truck in StartMining. sink may be nil.
func NewTruck(id int, cfg TruckConfig, allocator Allocator, sink TransitionSink) *Truck {
	if allocator == nil {
		panic("NewTruck: allocator must not be nil")
	}
	if sink == nil {
		sink = noopSink{}
	}
	return &Truck{
		ID:              id,
		Config:          cfg,
		State:           StateStartMining,
		AssignedStation: NoStation,
		allocator:       allocator,
		sink:            sink,
	}
}

// SetCurrentTime updates the truck's notion of the simulation clock.
func (t *Truck) SetCurrentTime(now int64) {
	t.clock = now
	t.clockSet = true
}

// CompletedLoadCount returns the number of loads this truck has unloaded.
func (t *Truck) CompletedLoadCount() int {
	return t.completedLoads
}

// WaitTimes returns the ticks spent waiting for a station, one entry per
// granted station, in order.
func (t *Truck) WaitTimes() []int64 {
	out := make([]int64, len(t.waitTimes))
	copy(out, t.waitTimes)
	return out
}

// Step runs the handler of the current phase exactly once.
func (t *Truck) Step() {
	switch t.State {
	case StateStartMining:
		t.StartMining()
	case StateMiningInProgress:
		t.MiningInProgress()
	case StateTravelToUnload:
		t.TravelToUnload()
	case StateWaitToUnload:
		t.WaitToUnload()
	case StateUnloading:
		t.Unloading()
	case StateLoadComplete:
		t.LoadComplete()
	default:
		panic(fmt.Sprintf("truck %d: unknown state %q", t.ID, t.State))
	}
}

// StartMining begins a load cycle. Always moves on to MiningInProgress.
func (t *Truck) StartMining() {
	t.requireClock("StartMining")
	t.PhaseStart = t.clock
	t.transition(StateMiningInProgress)
}

// MiningInProgress stays until the mining duration has elapsed since the
// phase started, then heads for the stations.
func (t *Truck) MiningInProgress() {
	t.requireClock("MiningInProgress")
	t.ElapsedMining = t.clock - t.PhaseStart
	if t.ElapsedMining < t.Config.MiningDuration {
		return
	}
	t.ElapsedMining = 0
	t.PhaseStart = t.clock
	t.transition(StateTravelToUnload)
}

// TravelToUnload stays until the travel duration has elapsed since the
// phase started, then starts waiting for a station.
func (t *Truck) TravelToUnload() {
	t.requireClock("TravelToUnload")
	t.ElapsedTraveling = t.clock - t.PhaseStart
	if t.ElapsedTraveling < t.Config.TravelDuration {
		return
	}
	t.ElapsedTraveling = 0
	t.waitStart = t.clock
	t.transition(StateWaitToUnload)
}

// WaitToUnload asks for a station every call and starts unloading as soon as
// one is claimed. A queued truck may instead be promoted by the simulator
// through BeginUnloading.
func (t *Truck) WaitToUnload() {
	t.requireClock("WaitToUnload")
	if !t.requestStation() {
		return
	}
	t.PhaseStart = t.clock
	t.recordWait()
	t.transition(StateUnloading)
}

// Unloading advances the unload counter by one per call, independent of the
// clock, and completes the load once the counter reaches the unload duration.
func (t *Truck) Unloading() {
	t.requireClock("Unloading")
	if t.ElapsedUnloading < t.Config.UnloadDuration {
		t.ElapsedUnloading++
		return
	}
	t.transition(StateLoadComplete)
}

// LoadComplete gives the station back, counts the load and starts over.
func (t *Truck) LoadComplete() {
	t.requireClock("LoadComplete")
	t.ElapsedUnloading = 0
	t.allocator.Release(t.AssignedStation)
	t.completedLoads++
	t.transition(StateStartMining)
	t.AssignedStation = NoStation
}

// BeginUnloading is the promotion entry: the simulator calls it for the truck
// it popped from st's wait list. The truck enters Unloading and runs one
// unloading step on the same tick.
func (t *Truck) BeginUnloading(st *Station) {
	t.requireClock("BeginUnloading")
	if t.State != StateWaitToUnload {
		panic(fmt.Sprintf("truck %d: BeginUnloading in state %q", t.ID, t.State))
	}
	t.AssignedStation = st.ID()
	t.PhaseStart = t.clock
	t.recordWait()
	t.transition(StateUnloading)
	t.Unloading()
}

// requestStation claims a free station if there is one. Otherwise it
// registers the truck in the shortest wait list and remembers that station
// for tracking only; the truck keeps waiting either way.
func (t *Truck) requestStation() bool {
	if st := t.allocator.FindFreeStation(); st != nil {
		if st.InWaitList(t.ID) {
			return false
		}
		t.allocator.Assign(st.ID(), t.ID)
		t.AssignedStation = st.ID()
		return true
	}

	if st := t.allocator.EnqueueIfAbsent(t.ID); st != nil {
		t.AssignedStation = st.ID()
		t.sink.RecordQueue(trace.QueueRecord{
			TruckID:   t.ID,
			Clock:     t.clock,
			StationID: st.ID(),
			Position:  st.WaitListLen() - 1,
		})
	}
	return false
}

func (t *Truck) recordWait() {
	t.waitTimes = append(t.waitTimes, t.clock-t.waitStart)
}

func (t *Truck) transition(to TruckState) {
	from := t.State
	t.State = to
	t.sink.RecordTransition(trace.TransitionRecord{
		TruckID:   t.ID,
		Clock:     t.clock,
		From:      string(from),
		To:        string(to),
		StationID: t.AssignedStation,
	})
}

func (t *Truck) requireClock(op string) {
	if !t.clockSet {
		panic(fmt.Sprintf("truck %d: %s called before SetCurrentTime", t.ID, op))
	}
}

// This method returns a human-readable string representation of a Truck.
func (t *Truck) String() string {
	return fmt.Sprintf("Truck: (ID: %d, State: %s, Station: %d, Loads: %d)", t.ID, t.State, t.AssignedStation, t.completedLoads)
}
