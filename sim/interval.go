package sim

// IntervalRecord is one borrower-day row of the long-format event table: the
// counting-process interval [Start, Stop) with the borrower's state at each
// end, the event indicator, and a snapshot of every covariate at the
// interval START day. The start-day snapshot convention holds even on the
// row where a transition fires; the hazard is evaluated at interval start,
// and downstream regression expects the same discretization.
//
// Records are created by the Simulator and never mutated afterwards.
type IntervalRecord struct {
	Borrower  int
	Start     float64
	Stop      float64
	Event     int // 1 if the transition fired within this interval, else 0
	StateFrom State
	StateTo   State
	// Covariates holds the start-day values ordered like EventTable.Names.
	Covariates []float64
}
