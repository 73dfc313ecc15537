// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/luisoro0494/vast-interview/sim/trace"
)

// Simulator is the core object that holds simulation time, the fleet, the
// stations and the tick loop.
type Simulator struct {
	Clock   int64
	Horizon int64

	// Stations are owned here and shared with Allocator, which is their only
	// mutator once the run starts.
	Stations  []*Station
	Allocator *StationAllocator
	// Trucks are indexed by ID and advanced in that order every tick.
	Trucks []*Truck

	Metrics *Metrics

	sink TransitionSink
}

// NewSimulator builds the fleet described by cfg. Mining durations are drawn
// once per truck, in truck ID order, from the seeded mining RNG. sink may be nil.
func NewSimulator(cfg FleetConfig, sink TransitionSink) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fleet config: %w", err)
	}
	if sink == nil {
		sink = noopSink{}
	}

	stations := NewStations(cfg.NumStations)
	allocator := NewStationAllocator(stations)
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))

	trucks := make([]*Truck, cfg.NumTrucks)
	for id := range trucks {
		trucks[id] = NewTruck(id, TruckConfig{
			MiningDuration: rng.DrawDuration(SubsystemMining, cfg.MiningMin, cfg.MiningMax),
			TravelDuration: cfg.TravelDuration,
			UnloadDuration: cfg.UnloadDuration,
		}, allocator, sink)
		logrus.Debugf("truck %d mining duration %d ticks", id, trucks[id].Config.MiningDuration)
	}

	return &Simulator{
		Clock:     0,
		Horizon:   cfg.Horizon,
		Stations:  stations,
		Allocator: allocator,
		Trucks:    trucks,
		Metrics:   NewMetrics(cfg.NumTrucks, cfg.NumStations),
		sink:      sink,
	}, nil
}

// Tick advances the simulation by one time unit at the current Clock: every
// truck runs its active phase once in ID order, then at most one waiting
// truck is promoted into the station that just became free.
func (sim *Simulator) Tick() {
	for _, truck := range sim.Trucks {
		truck.SetCurrentTime(sim.Clock)
		truck.Step()
	}

	if truckID, st, ok := sim.Allocator.AdvanceQueue(); ok {
		sim.sink.RecordPromotion(trace.PromotionRecord{
			TruckID:        truckID,
			Clock:          sim.Clock,
			StationID:      st.ID(),
			RemainingQueue: st.WaitListLen(),
		})
		sim.Trucks[truckID].BeginUnloading(st)
	}

	for _, st := range sim.Stations {
		if !st.IsAvailable() {
			sim.Metrics.StationBusyTicks[st.ID()]++
		}
	}
	sim.Clock++
}

// Run ticks until Horizon is reached and returns the aggregated metrics.
func (sim *Simulator) Run() *Metrics {
	for sim.Clock < sim.Horizon {
		logrus.Tracef("[tick %07d] advancing %d trucks", sim.Clock, len(sim.Trucks))
		sim.Tick()
	}
	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
	return sim.collectMetrics()
}

// collectMetrics totals loads and unloads. Every completed load releases
// exactly one occupied station, so the two totals must agree.
func (sim *Simulator) collectMetrics() *Metrics {
	m := sim.Metrics
	m.SimEndedTime = sim.Clock
	m.TotalLoads, m.TotalServed = 0, 0

	var waits []float64
	for _, truck := range sim.Trucks {
		m.LoadsPerTruck[truck.ID] = truck.CompletedLoadCount()
		m.TotalLoads += truck.CompletedLoadCount()
		for _, w := range truck.WaitTimes() {
			waits = append(waits, float64(w))
		}
	}
	for _, st := range sim.Stations {
		m.ServedPerStation[st.ID()] = st.ServedCount()
		m.TotalServed += st.ServedCount()
	}
	m.WaitTime = NewDistribution(waits)

	if m.TotalLoads != m.TotalServed {
		panic(fmt.Sprintf("load accounting violated: %d loads completed, %d unloads served", m.TotalLoads, m.TotalServed))
	}
	return m
}
