package record

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-sim/portfolio-sim/sim"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "portfolio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { rec.Close() })
	return rec
}

func TestSQLiteRecorder_RecordIntervals(t *testing.T) {
	rec := openTestRecorder(t)

	table := &sim.EventTable{
		Names: []string{"amount_outstanding", "str_ratio"},
		Records: []sim.IntervalRecord{
			{Borrower: 0, Start: 0, Stop: 1, Event: 0, StateFrom: sim.StateCurrent, StateTo: sim.StateCurrent, Covariates: []float64{100, 0.3}},
			{Borrower: 0, Start: 1, Stop: 2, Event: 1, StateFrom: sim.StateCurrent, StateTo: sim.StateMild, Covariates: []float64{99, 0.31}},
			{Borrower: 1, Start: 0, Stop: 1, Event: 0, StateFrom: sim.StateCurrent, StateTo: sim.StateCurrent, Covariates: []float64{250, 0.5}},
		},
	}
	require.NoError(t, rec.RecordIntervals(table))

	var count int
	require.NoError(t, rec.db.QueryRow(`SELECT COUNT(*) FROM intervals`).Scan(&count))
	assert.Equal(t, 3, count)

	var event, stateTo int
	var amount float64
	require.NoError(t, rec.db.QueryRow(
		`SELECT event, state_to, "amount_outstanding" FROM intervals WHERE borrower = 0 AND start = 1`,
	).Scan(&event, &stateTo, &amount))
	assert.Equal(t, 1, event)
	assert.Equal(t, int(sim.StateMild), stateTo)
	assert.Equal(t, 99.0, amount)
}

func TestSQLiteRecorder_RecordRiskScore(t *testing.T) {
	rec := openTestRecorder(t)

	require.NoError(t, rec.RecordRiskScore("h01=0.002|horizon=90", 90, 0.0123))

	var scenario string
	var horizon int
	var prob float64
	require.NoError(t, rec.db.QueryRow(
		`SELECT scenario, horizon, probability FROM risk_scores`,
	).Scan(&scenario, &horizon, &prob))
	assert.Equal(t, "h01=0.002|horizon=90", scenario)
	assert.Equal(t, 90, horizon)
	assert.InDelta(t, 0.0123, prob, 1e-12)
}

func TestNoopRecorder(t *testing.T) {
	n := NewNoopRecorder()
	assert.NoError(t, n.RecordIntervals(&sim.EventTable{}))
	assert.NoError(t, n.RecordRiskScore("s", 90, 0.5))
	assert.NoError(t, n.Close())
}

func TestRecorder_Implementations(t *testing.T) {
	// Both recorders must be usable interchangeably behind the interface;
	// callers pick one up front and record unconditionally.
	recorders := []Recorder{NewNoopRecorder(), openTestRecorder(t)}
	for _, rec := range recorders {
		assert.NoError(t, rec.RecordRiskScore("scenario", 90, 0.1))
	}
}
