// Package sim provides the tick-driven simulation of a Helium-3 mining fleet:
// trucks cycling through mining, travel and unloading while contending for a
// small pool of unloading stations.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - truck.go: Truck lifecycle (start_mining → … → load_complete) and state machine
//   - allocator.go: Station arbitration (free-station lookup, wait lists, promotion)
//   - simulator.go: The tick loop and end-of-run accounting
//
// # Architecture
//
// Stations are passive records (station.go, queue.go). The StationAllocator
// is the only mutator of stations once a run starts; trucks reach it through
// the narrow Allocator interface and hold station IDs, never stations.
// The allocator holds truck IDs, never trucks.
//
// Each tick the Simulator sets the clock on every truck, runs each truck's
// active phase once in ID order, then asks the allocator to promote at most
// one waiting truck. A promoted truck enters unloading on that same tick
// through Truck.BeginUnloading.
//
// Execution is single-goroutine and deterministic for a fixed seed.
//
// # Observability
//
// Trucks and the simulator emit structured records to a TransitionSink:
//   - sim/trace/: SimulationTrace records and summarizes them
//   - LogSink: writes them as logrus entries
package sim
