package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStations_SequentialIDsAvailable(t *testing.T) {
	stations := NewStations(3)

	assert.Len(t, stations, 3)
	for i, st := range stations {
		assert.Equal(t, i, st.ID())
		assert.True(t, st.IsAvailable())
		assert.Equal(t, 0, st.WaitListLen())
		assert.Equal(t, 0, st.ServedCount())
		_, occupied := st.Occupant()
		assert.False(t, occupied)
	}
}

func TestStation_AssignThenRelease_CountsOneServed(t *testing.T) {
	// GIVEN a station assigned to truck 4
	st := NewStation(0)
	st.Assign(4)

	// THEN it is occupied and unavailable
	occupant, occupied := st.Occupant()
	assert.True(t, occupied)
	assert.Equal(t, 4, occupant)
	assert.False(t, st.IsAvailable())

	// WHEN released
	st.Release()

	// THEN it is free again and one unload was served
	_, occupied = st.Occupant()
	assert.False(t, occupied)
	assert.True(t, st.IsAvailable())
	assert.Equal(t, 1, st.ServedCount())
}

func TestStation_ReleaseUnoccupied_DoesNotCountServed(t *testing.T) {
	// GIVEN a blocked station that never had an occupant
	st := NewStation(1)
	st.Block()

	// WHEN released
	st.Release()

	// THEN it is available but nothing was served
	assert.True(t, st.IsAvailable())
	assert.Equal(t, 0, st.ServedCount())
}

func TestStation_Block_KeepsWaitList(t *testing.T) {
	st := NewStation(0)
	st.Enqueue(2)
	st.Enqueue(3)

	st.Block()

	assert.False(t, st.IsAvailable())
	assert.Equal(t, []int{2, 3}, st.WaitList())
}

func TestStation_Dequeue_EmptyReportsFalse(t *testing.T) {
	st := NewStation(0)

	_, ok := st.Dequeue()

	assert.False(t, ok)
}

func TestStation_EnqueueDequeue_FIFO(t *testing.T) {
	st := NewStation(0)
	st.Enqueue(8)
	st.Enqueue(5)

	assert.True(t, st.InWaitList(5))
	first, _ := st.Dequeue()
	second, _ := st.Dequeue()

	assert.Equal(t, 8, first)
	assert.Equal(t, 5, second)
	assert.False(t, st.InWaitList(5))
}

func TestStation_String(t *testing.T) {
	st := NewStation(2)
	st.Assign(7)
	st.Enqueue(1)

	assert.Equal(t, "Station: (ID: 2, Available: false, Occupant: 7, WaitList: [1], Served: 0)", st.String())
}
