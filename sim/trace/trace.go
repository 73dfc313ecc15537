package trace

// TraceLevel controls the verbosity of transition tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTransitions captures every transition, queue registration and promotion.
	TraceLevelTransitions TraceLevel = "transitions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:        true,
	TraceLevelTransitions: true,
	"":                    true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects records during a simulation run.
type SimulationTrace struct {
	Config      TraceConfig
	Transitions []TransitionRecord
	Queues      []QueueRecord
	Promotions  []PromotionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Transitions: make([]TransitionRecord, 0),
		Queues:      make([]QueueRecord, 0),
		Promotions:  make([]PromotionRecord, 0),
	}
}

func (st *SimulationTrace) enabled() bool {
	return st.Config.Level == TraceLevelTransitions
}

// RecordTransition appends a transition record.
func (st *SimulationTrace) RecordTransition(record TransitionRecord) {
	if !st.enabled() {
		return
	}
	st.Transitions = append(st.Transitions, record)
}

// RecordQueue appends a wait-list registration record.
func (st *SimulationTrace) RecordQueue(record QueueRecord) {
	if !st.enabled() {
		return
	}
	st.Queues = append(st.Queues, record)
}

// RecordPromotion appends a promotion record.
func (st *SimulationTrace) RecordPromotion(record PromotionRecord) {
	if !st.enabled() {
		return
	}
	st.Promotions = append(st.Promotions, record)
}

// TransitionsFor returns the transitions of one truck in recording order.
func (st *SimulationTrace) TransitionsFor(truckID int) []TransitionRecord {
	var out []TransitionRecord
	for _, r := range st.Transitions {
		if r.TruckID == truckID {
			out = append(out, r)
		}
	}
	return out
}
