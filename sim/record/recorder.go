// Package record persists simulation output for later analysis.
package record

import "github.com/portfolio-sim/portfolio-sim/sim"

// Recorder persists the event table and projected risk scores.
type Recorder interface {
	RecordIntervals(table *sim.EventTable) error
	RecordRiskScore(scenario string, horizonDays int, probability float64) error
	Close() error
}

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordIntervals(_ *sim.EventTable) error          { return nil }
func (n *NoopRecorder) RecordRiskScore(_ string, _ int, _ float64) error { return nil }
func (n *NoopRecorder) Close() error                                     { return nil }
