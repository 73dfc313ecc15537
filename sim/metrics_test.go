package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDistribution_EmptyInput_ZeroValue(t *testing.T) {
	assert.Equal(t, Distribution{}, NewDistribution(nil))
}

func TestNewDistribution_SummarizesValues(t *testing.T) {
	// GIVEN unsorted values 1..10
	values := []float64{10, 3, 1, 7, 5, 2, 9, 4, 8, 6}

	d := NewDistribution(values)

	assert.Equal(t, 10, d.Count)
	assert.Equal(t, 5.5, d.Mean)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 10.0, d.Max)
	assert.InDelta(t, 5.5, d.P50, 1e-9)
	assert.InDelta(t, 9.55, d.P95, 1e-9)
	// AND the input is left unsorted
	assert.Equal(t, 10.0, values[0])
}

func TestPercentile_SingleValue(t *testing.T) {
	assert.Equal(t, 4.0, percentile([]float64{4}, 99))
	assert.Equal(t, 0.0, percentile(nil, 50))
}

func TestMetrics_Utilization(t *testing.T) {
	m := NewMetrics(1, 2)
	m.SimEndedTime = 200
	m.StationBusyTicks[0] = 50

	assert.InDelta(t, 0.25, m.Utilization(0), 1e-9)
	assert.Equal(t, 0.0, m.Utilization(1))
	assert.Equal(t, 0.0, m.Utilization(2), "unknown station")

	m.SimEndedTime = 0
	assert.Equal(t, 0.0, m.Utilization(0), "nothing simulated")
}

func TestMetrics_Print_ReportsPerTruckAndPerStation(t *testing.T) {
	// GIVEN metrics for two trucks and one station
	m := NewMetrics(2, 1)
	m.SimEndedTime = 100
	m.LoadsPerTruck = []int{3, 1}
	m.ServedPerStation = []int{4}
	m.StationBusyTicks = []int64{40}
	m.TotalLoads = 4
	m.WaitTime = NewDistribution([]float64{1, 3})

	// WHEN printed
	var buf bytes.Buffer
	m.Print(&buf)
	out := buf.String()

	// THEN every section appears
	assert.Contains(t, out, "=== Simulation Metrics ===")
	assert.Contains(t, out, "Simulated Ticks      : 100")
	assert.Contains(t, out, "Truck 0   loads      : 3")
	assert.Contains(t, out, "Truck 1   loads      : 1")
	assert.Contains(t, out, "Station 0   served   : 4 (utilization 40.0%)")
	assert.Contains(t, out, "Total Loads          : 4")
	assert.Contains(t, out, "Wait To Unload       : mean 2.00")
}

func TestMetrics_Print_NoWaits_OmitsWaitLine(t *testing.T) {
	m := NewMetrics(1, 1)

	var buf bytes.Buffer
	m.Print(&buf)

	assert.NotContains(t, buf.String(), "Wait To Unload")
}
