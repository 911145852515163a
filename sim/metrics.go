// Tracks portfolio-wide outcome statistics for final reporting.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about a simulation run: where every borrower
// ended up, how many transitions fired per stage of the chain, and how fast
// defaulters reached the absorbing state.
type Metrics struct {
	Borrowers        int
	Records          int
	FinalStateCounts [NumStates]int
	TransitionCounts [NumTransitions]int // events observed per forward transition
	Censored         int                 // borrowers that reached the horizon before default
	DaysToDefault    []float64           // entry day into the default state, per defaulter
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// observePath folds one borrower's outcome into the aggregates.
func (m *Metrics) observePath(finalState State, records []IntervalRecord) {
	m.Borrowers++
	m.Records += len(records)
	m.FinalStateCounts[finalState]++
	for _, r := range records {
		if r.Event == 1 {
			m.TransitionCounts[r.StateFrom]++
			if r.StateTo.Terminal() {
				m.DaysToDefault = append(m.DaysToDefault, r.Stop)
			}
		}
	}
	if !finalState.Terminal() {
		m.Censored++
	}
}

// MeanDaysToDefault returns the average entry day into default among
// defaulters, or 0 when no borrower defaulted.
func (m *Metrics) MeanDaysToDefault() float64 {
	if len(m.DaysToDefault) == 0 {
		return 0
	}
	return stat.Mean(m.DaysToDefault, nil)
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Portfolio Simulation Metrics ===")
	fmt.Printf("Borrowers            : %d\n", m.Borrowers)
	fmt.Printf("Interval Records     : %d\n", m.Records)
	for s := StateCurrent; s < NumStates; s++ {
		fmt.Printf("Final State %-8s : %d\n", s, m.FinalStateCounts[s])
	}
	for i, n := range m.TransitionCounts {
		fmt.Printf("Events %s→%s     : %d\n", State(i), State(i).Next(), n)
	}
	fmt.Printf("Censored at Horizon  : %d\n", m.Censored)
	if len(m.DaysToDefault) > 0 {
		fmt.Printf("Mean Days to Default : %.1f\n", m.MeanDaysToDefault())
	}
}
