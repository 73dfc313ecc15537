package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/luisoro0494/vast-interview/sim/trace"
)

// TransitionSink receives structured events from trucks and the simulator.
// *trace.SimulationTrace satisfies it.
type TransitionSink interface {
	RecordTransition(trace.TransitionRecord)
	RecordQueue(trace.QueueRecord)
	RecordPromotion(trace.PromotionRecord)
}

// noopSink discards every record. Used when no sink is configured.
type noopSink struct{}

func (noopSink) RecordTransition(trace.TransitionRecord) {}
func (noopSink) RecordQueue(trace.QueueRecord)           {}
func (noopSink) RecordPromotion(trace.PromotionRecord)   {}

// LogSink writes every record as a structured logrus entry at debug level.
type LogSink struct{}

func (LogSink) RecordTransition(r trace.TransitionRecord) {
	logrus.WithFields(logrus.Fields{
		"truck":   r.TruckID,
		"tick":    r.Clock,
		"from":    r.From,
		"to":      r.To,
		"station": r.StationID,
	}).Debug("truck transition")
}

func (LogSink) RecordQueue(r trace.QueueRecord) {
	logrus.WithFields(logrus.Fields{
		"truck":    r.TruckID,
		"tick":     r.Clock,
		"station":  r.StationID,
		"position": r.Position,
	}).Debug("truck queued")
}

func (LogSink) RecordPromotion(r trace.PromotionRecord) {
	logrus.WithFields(logrus.Fields{
		"truck":     r.TruckID,
		"tick":      r.Clock,
		"station":   r.StationID,
		"remaining": r.RemainingQueue,
	}).Debug("truck promoted from wait list")
}

// MultiSink fans every record out to each non-nil sink in order.
type MultiSink []TransitionSink

func (m MultiSink) RecordTransition(r trace.TransitionRecord) {
	for _, s := range m {
		if s != nil {
			s.RecordTransition(r)
		}
	}
}

func (m MultiSink) RecordQueue(r trace.QueueRecord) {
	for _, s := range m {
		if s != nil {
			s.RecordQueue(r)
		}
	}
}

func (m MultiSink) RecordPromotion(r trace.PromotionRecord) {
	for _, s := range m {
		if s != nil {
			s.RecordPromotion(r)
		}
	}
}
