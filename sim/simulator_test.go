package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luisoro0494/vast-interview/sim/trace"
)

// fixedMiningConfig removes randomness: every truck mines exactly 60 ticks.
func fixedMiningConfig(trucks, stations int, horizon int64) FleetConfig {
	return FleetConfig{
		NumTrucks:      trucks,
		NumStations:    stations,
		Horizon:        horizon,
		UnloadDuration: 5,
		TravelDuration: 30,
		MiningMin:      60,
		MiningMax:      60,
		Seed:           1,
	}
}

func TestNewSimulator_InvalidConfig_ReturnsError(t *testing.T) {
	cfg := fixedMiningConfig(0, 1, 10)

	s, err := NewSimulator(cfg, nil)

	assert.Nil(t, s)
	assert.ErrorContains(t, err, "number of trucks")
}

func TestNewSimulator_BuildsFleet(t *testing.T) {
	s, err := NewSimulator(fixedMiningConfig(3, 2, 10), nil)
	require.NoError(t, err)

	require.Len(t, s.Trucks, 3)
	require.Len(t, s.Stations, 2)
	for id, tr := range s.Trucks {
		assert.Equal(t, id, tr.ID)
		assert.Equal(t, TruckConfig{MiningDuration: 60, TravelDuration: 30, UnloadDuration: 5}, tr.Config)
		assert.Equal(t, StateStartMining, tr.State)
	}
	assert.Equal(t, s.Stations, s.Allocator.Stations())
}

func TestSimulator_SingleTruck_HandComputedCycle(t *testing.T) {
	// GIVEN one truck and one station; a load cycle takes 99 ticks:
	// mine 0..60, travel 60..90, claim at 91, unload 92..96, complete at 98
	s, err := NewSimulator(fixedMiningConfig(1, 1, 200), nil)
	require.NoError(t, err)

	// WHEN run for 200 ticks
	m := s.Run()

	// THEN loads complete at ticks 98 and 197
	assert.Equal(t, int64(200), m.SimEndedTime)
	assert.Equal(t, []int{2}, m.LoadsPerTruck)
	assert.Equal(t, []int{2}, m.ServedPerStation)
	assert.Equal(t, 2, m.TotalLoads)
	assert.Equal(t, 2, m.TotalServed)

	// AND the station was busy ticks 91..97 of each cycle
	assert.Equal(t, []int64{14}, m.StationBusyTicks)
	assert.InDelta(t, 0.07, m.Utilization(0), 1e-9)

	// AND every wait lasted one tick
	assert.Equal(t, 2, m.WaitTime.Count)
	assert.Equal(t, 1.0, m.WaitTime.Mean)
}

func TestSimulator_TwoTrucksOneStation_QueuedTruckPromotedSameTick(t *testing.T) {
	// GIVEN two identical trucks sharing one station
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelTransitions})
	s, err := NewSimulator(fixedMiningConfig(2, 1, 105), st)
	require.NoError(t, err)

	// WHEN run past the second truck's unload
	m := s.Run()

	// THEN truck 1 queued at position 0 on tick 91 while truck 0 unloaded
	require.Len(t, st.Queues, 1)
	assert.Equal(t, trace.QueueRecord{TruckID: 1, Clock: 91, StationID: 0, Position: 0}, st.Queues[0])

	// AND it was promoted on tick 98, the tick truck 0 released the station
	require.Len(t, st.Promotions, 1)
	assert.Equal(t, trace.PromotionRecord{TruckID: 1, Clock: 98, StationID: 0, RemainingQueue: 0}, st.Promotions[0])

	// AND both loads completed and were credited to the station
	assert.Equal(t, []int{1, 1}, m.LoadsPerTruck)
	assert.Equal(t, []int{2}, m.ServedPerStation)

	// AND the waits were 1 and 8 ticks
	assert.Equal(t, []int64{1}, s.Trucks[0].WaitTimes())
	assert.Equal(t, []int64{8}, s.Trucks[1].WaitTimes())
	assert.Equal(t, 1.0, m.WaitTime.Min)
	assert.Equal(t, 8.0, m.WaitTime.Max)
}

func TestSimulator_Tick_LoadCountIncrementsOnlyOnLoadComplete(t *testing.T) {
	// GIVEN a contended fleet with random mining durations
	cfg := FleetConfig{NumTrucks: 6, NumStations: 2, Horizon: 2000, UnloadDuration: 5, TravelDuration: 30, MiningMin: 30, MiningMax: 90, Seed: 11}
	s, err := NewSimulator(cfg, nil)
	require.NoError(t, err)

	prev := make([]int, cfg.NumTrucks)
	for s.Clock < s.Horizon {
		before := make([]TruckState, len(s.Trucks))
		for i, tr := range s.Trucks {
			before[i] = tr.State
		}

		s.Tick()

		for i, tr := range s.Trucks {
			delta := tr.CompletedLoadCount() - prev[i]
			// THEN counts never drop and rise by one only out of load_complete
			require.GreaterOrEqual(t, delta, 0)
			require.LessOrEqual(t, delta, 1)
			if delta == 1 {
				require.Equal(t, StateLoadComplete, before[i], "truck %d at tick %d", i, s.Clock-1)
				require.Equal(t, StateStartMining, tr.State)
			}
			prev[i] = tr.CompletedLoadCount()
		}
		// AND no truck is ever queued twice
		assertQueueInvariant(t, s.Stations)
	}
}

func TestSimulator_Run_ServedEqualsCompletedLoads(t *testing.T) {
	tests := []struct {
		name     string
		trucks   int
		stations int
	}{
		{"more stations than trucks", 2, 4},
		{"balanced", 4, 2},
		{"oversubscribed", 20, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewFleetConfig(tc.trucks, tc.stations, 24, 5, 30, 1, 2, 3)
			s, err := NewSimulator(cfg, nil)
			require.NoError(t, err)

			m := s.Run()

			served := 0
			for _, st := range s.Stations {
				served += st.ServedCount()
			}
			loads := 0
			for _, tr := range s.Trucks {
				loads += tr.CompletedLoadCount()
			}
			assert.Equal(t, loads, served)
			assert.Equal(t, loads, m.TotalLoads)
			assert.Positive(t, m.TotalLoads)
		})
	}
}

func TestSimulator_SameSeed_IdenticalResults(t *testing.T) {
	cfg := DefaultFleetConfig()

	s1, err := NewSimulator(cfg, nil)
	require.NoError(t, err)
	s2, err := NewSimulator(cfg, nil)
	require.NoError(t, err)

	m1 := s1.Run()
	m2 := s2.Run()

	assert.Equal(t, m1.LoadsPerTruck, m2.LoadsPerTruck)
	assert.Equal(t, m1.ServedPerStation, m2.ServedPerStation)
	assert.Equal(t, m1.StationBusyTicks, m2.StationBusyTicks)
	assert.Equal(t, m1.WaitTime, m2.WaitTime)
}

func TestSimulator_MiningDurationsDrawnOncePerTruckWithinBounds(t *testing.T) {
	cfg := DefaultFleetConfig()
	s, err := NewSimulator(cfg, nil)
	require.NoError(t, err)

	durations := make([]int64, len(s.Trucks))
	for i, tr := range s.Trucks {
		durations[i] = tr.Config.MiningDuration
		assert.GreaterOrEqual(t, durations[i], cfg.MiningMin)
		assert.LessOrEqual(t, durations[i], cfg.MiningMax)
	}

	s.Run()

	// THEN durations are fixed for the truck's lifetime
	for i, tr := range s.Trucks {
		assert.Equal(t, durations[i], tr.Config.MiningDuration)
	}

	// AND a different seed draws a different fleet
	cfg.Seed++
	other, err := NewSimulator(cfg, nil)
	require.NoError(t, err)
	otherDurations := make([]int64, len(other.Trucks))
	for i, tr := range other.Trucks {
		otherDurations[i] = tr.Config.MiningDuration
	}
	assert.NotEqual(t, durations, otherDurations)
}
