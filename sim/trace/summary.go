package trace

// loadCompleteState is the state whose exit marks a finished load.
const loadCompleteState = "load_complete"

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTransitions    int
	CompletedLoads      int            // transitions out of load_complete
	QueueRegistrations  int            // wait-list appends
	Promotions          int            // trucks granted a station from a wait list
	MaxQueuePosition    int            // deepest 0-based position any truck was queued at
	StatePairs          map[string]int // "from->to" → count
	PromotionsByStation map[int]int    // station ID → promotions
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		StatePairs:          make(map[string]int),
		PromotionsByStation: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalTransitions = len(st.Transitions)
	for _, r := range st.Transitions {
		summary.StatePairs[r.From+"->"+r.To]++
		if r.From == loadCompleteState {
			summary.CompletedLoads++
		}
	}

	summary.QueueRegistrations = len(st.Queues)
	for _, q := range st.Queues {
		if q.Position > summary.MaxQueuePosition {
			summary.MaxQueuePosition = q.Position
		}
	}

	summary.Promotions = len(st.Promotions)
	for _, p := range st.Promotions {
		summary.PromotionsByStation[p.StationID]++
	}

	return summary
}
