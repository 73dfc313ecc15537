package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/luisoro0494/vast-interview/sim"
)

// runOptions holds a run's parameters in operator units, as the CLI flags
// express them.
type runOptions struct {
	Trucks         int
	Stations       int
	DurationHours  int64
	UnloadMinutes  int64
	TravelMinutes  int64
	MiningMinHours int64
	MiningMaxHours int64
	Seed           int64
}

// FleetFile is the structure of a --config YAML file.
// Nil pointer fields mean "not set in YAML"; they do not override flags.
type FleetFile struct {
	Trucks         *int   `yaml:"trucks"`
	Stations       *int   `yaml:"stations"`
	DurationHours  *int64 `yaml:"duration_hours"`
	UnloadMinutes  *int64 `yaml:"unload_minutes"`
	TravelMinutes  *int64 `yaml:"travel_minutes"`
	MiningMinHours *int64 `yaml:"mining_min_hours"`
	MiningMaxHours *int64 `yaml:"mining_max_hours"`
	Seed           *int64 `yaml:"seed"`
}

// LoadFleetFile reads and parses a YAML fleet configuration file.
// Uses strict field checking: unknown keys are errors.
func LoadFleetFile(path string) (*FleetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fleet config: %w", err)
	}
	var file FleetFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing fleet config: %w", err)
	}
	return &file, nil
}

// merge returns opts with every value set in the file applied, except those
// whose flag the user changed explicitly. Flags always win.
func (f *FleetFile) merge(opts runOptions, changed func(flag string) bool) runOptions {
	if f == nil {
		return opts
	}
	setInt := func(dst *int, src *int, flag string) {
		if src != nil && !changed(flag) {
			*dst = *src
		}
	}
	setInt64 := func(dst *int64, src *int64, flag string) {
		if src != nil && !changed(flag) {
			*dst = *src
		}
	}
	setInt(&opts.Trucks, f.Trucks, "trucks")
	setInt(&opts.Stations, f.Stations, "stations")
	setInt64(&opts.DurationHours, f.DurationHours, "duration-hours")
	setInt64(&opts.UnloadMinutes, f.UnloadMinutes, "unload-minutes")
	setInt64(&opts.TravelMinutes, f.TravelMinutes, "travel-minutes")
	setInt64(&opts.MiningMinHours, f.MiningMinHours, "mining-min-hours")
	setInt64(&opts.MiningMaxHours, f.MiningMaxHours, "mining-max-hours")
	setInt64(&opts.Seed, f.Seed, "seed")
	return opts
}

// fleetConfig converts operator units into a tick-denominated FleetConfig.
func (o runOptions) fleetConfig() sim.FleetConfig {
	return sim.NewFleetConfig(o.Trucks, o.Stations, o.DurationHours, o.UnloadMinutes,
		o.TravelMinutes, o.MiningMinHours, o.MiningMaxHours, o.Seed)
}
