package sim

import "fmt"

// MinutesPerHour converts hour-denominated settings into minute ticks.
const MinutesPerHour = 60

// FleetConfig groups every parameter of a simulation run. All durations are
// in ticks (minutes).
type FleetConfig struct {
	NumTrucks      int   // trucks in the fleet (must be > 0)
	NumStations    int   // unloading stations (must be > 0)
	Horizon        int64 // ticks to simulate (must be > 0)
	UnloadDuration int64 // ticks to unload at a station (must be > 0)
	TravelDuration int64 // ticks from the mine to the stations (must be > 0)
	MiningMin      int64 // shortest mining duration drawn per truck (must be > 0)
	MiningMax      int64 // longest mining duration drawn per truck (must be >= MiningMin)
	Seed           int64 // master seed for per-truck mining durations
}

// NewFleetConfig builds a FleetConfig from operator units: the horizon and
// the mining bounds are given in hours, unload and travel in minutes.
func NewFleetConfig(numTrucks, numStations int, horizonHours, unloadMinutes, travelMinutes, miningMinHours, miningMaxHours, seed int64) FleetConfig {
	return FleetConfig{
		NumTrucks:      numTrucks,
		NumStations:    numStations,
		Horizon:        horizonHours * MinutesPerHour,
		UnloadDuration: unloadMinutes,
		TravelDuration: travelMinutes,
		MiningMin:      miningMinHours * MinutesPerHour,
		MiningMax:      miningMaxHours * MinutesPerHour,
		Seed:           seed,
	}
}

// DefaultFleetConfig returns the reference scenario: 10 trucks, 2 stations,
// 72 hours, 5 minute unloads, 30 minute travel, 1–5 hour mining.
func DefaultFleetConfig() FleetConfig {
	return NewFleetConfig(10, 2, 72, 5, 30, 1, 5, 42)
}

// Validate checks that every count and duration is usable.
func (c FleetConfig) Validate() error {
	if c.NumTrucks <= 0 {
		return fmt.Errorf("number of trucks must be positive, got %d", c.NumTrucks)
	}
	if c.NumStations <= 0 {
		return fmt.Errorf("number of stations must be positive, got %d", c.NumStations)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("simulation horizon must be positive, got %d", c.Horizon)
	}
	if c.UnloadDuration <= 0 {
		return fmt.Errorf("unload duration must be positive, got %d", c.UnloadDuration)
	}
	if c.TravelDuration <= 0 {
		return fmt.Errorf("travel duration must be positive, got %d", c.TravelDuration)
	}
	if c.MiningMin <= 0 {
		return fmt.Errorf("minimum mining duration must be positive, got %d", c.MiningMin)
	}
	if c.MiningMax < c.MiningMin {
		return fmt.Errorf("maximum mining duration %d is below minimum %d", c.MiningMax, c.MiningMin)
	}
	return nil
}
