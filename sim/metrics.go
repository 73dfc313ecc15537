// Tracks simulation-wide and per-resource results such as loads per truck,
// unloads per station, station utilization and time spent waiting.

package sim

import (
	"fmt"
	"io"
	"math"
	"sort"
)

// Distribution captures statistical summary of a metric.
type Distribution struct {
	Mean  float64
	P50   float64
	P95   float64
	P99   float64
	Min   float64
	Max   float64
	Count int
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return Distribution{
		Mean:  sum / float64(len(sorted)),
		P50:   percentile(sorted, 50),
		P95:   percentile(sorted, 95),
		P99:   percentile(sorted, 99),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Count: len(sorted),
	}
}

// percentile computes the p-th percentile using linear interpolation.
// Input must be sorted.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	SimEndedTime int64 // ticks simulated

	TotalLoads  int // sum of every truck's completed loads
	TotalServed int // sum of every station's served count

	LoadsPerTruck    []int   // truck ID -> completed loads
	ServedPerStation []int   // station ID -> unloads served
	StationBusyTicks []int64 // station ID -> ticks spent unavailable

	WaitTime Distribution // ticks between arriving at the stations and starting to unload
}

// NewMetrics creates Metrics sized for the given fleet.
func NewMetrics(numTrucks, numStations int) *Metrics {
	return &Metrics{
		LoadsPerTruck:    make([]int, numTrucks),
		ServedPerStation: make([]int, numStations),
		StationBusyTicks: make([]int64, numStations),
	}
}

// Utilization returns the fraction of simulated ticks station id was busy.
func (m *Metrics) Utilization(id int) float64 {
	if m.SimEndedTime == 0 || id < 0 || id >= len(m.StationBusyTicks) {
		return 0
	}
	return float64(m.StationBusyTicks[id]) / float64(m.SimEndedTime)
}

// Print writes the end-of-run report.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Simulated Ticks      : %d\n", m.SimEndedTime)
	for id, loads := range m.LoadsPerTruck {
		fmt.Fprintf(w, "Truck %-3d loads      : %d\n", id, loads)
	}
	for id, served := range m.ServedPerStation {
		fmt.Fprintf(w, "Station %-3d served   : %d (utilization %.1f%%)\n", id, served, 100*m.Utilization(id))
	}
	fmt.Fprintf(w, "Total Loads          : %d\n", m.TotalLoads)
	if m.WaitTime.Count > 0 {
		fmt.Fprintf(w, "Wait To Unload       : mean %.2f, p50 %.2f, p95 %.2f, max %.0f ticks\n",
			m.WaitTime.Mean, m.WaitTime.P50, m.WaitTime.P95, m.WaitTime.Max)
	}
}
