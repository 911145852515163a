package risk

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/portfolio-sim/portfolio-sim/sim"
)

// FirstExit extracts, per borrower, the time of the first transition out of
// the initial state and whether that transition was observed (1) or the
// borrower was censored at the horizon (0). This is the summary the scoring
// glue operates on.
func FirstExit(table *sim.EventTable) (times []float64, events []int) {
	current := -1
	exited := false
	flush := func(last sim.IntervalRecord) {
		if !exited {
			times = append(times, last.Stop)
			events = append(events, 0)
		}
	}
	var last sim.IntervalRecord
	for _, r := range table.Records {
		if r.Borrower != current {
			if current >= 0 {
				flush(last)
			}
			current = r.Borrower
			exited = false
		}
		if !exited && r.Event == 1 && r.StateFrom == sim.StateCurrent {
			times = append(times, r.Stop)
			events = append(events, 1)
			exited = true
		}
		last = r
	}
	if current >= 0 {
		flush(last)
	}
	return times, events
}

// Concordance computes the pairwise concordance index between risk scores
// and observed first-exit times. A pair (i, j) is comparable when i has an
// observed event and exits strictly before j's last observed time. Higher
// scores should predict earlier exits; score ties count one half. Returns an
// error when no pair is comparable.
func Concordance(times []float64, events []int, scores []float64) (float64, error) {
	if len(times) != len(events) || len(times) != len(scores) {
		return 0, fmt.Errorf("times/events/scores length mismatch: %d/%d/%d",
			len(times), len(events), len(scores))
	}
	concordant, pairs := 0.0, 0
	for i := range times {
		if events[i] != 1 {
			continue
		}
		for j := range times {
			if i == j || times[i] >= times[j] {
				continue
			}
			pairs++
			switch {
			case scores[i] > scores[j]:
				concordant++
			case scores[i] == scores[j]:
				concordant += 0.5
			}
		}
	}
	if pairs == 0 {
		return 0, fmt.Errorf("no comparable pairs")
	}
	return concordant / float64(pairs), nil
}

// BrierScore computes the mean squared error between predicted event
// probabilities at a fixed horizon and the observed 0/1 outcomes at that
// horizon.
func BrierScore(probs []float64, outcomes []float64) (float64, error) {
	if len(probs) != len(outcomes) {
		return 0, fmt.Errorf("probs/outcomes length mismatch: %d/%d", len(probs), len(outcomes))
	}
	if len(probs) == 0 {
		return 0, fmt.Errorf("empty inputs")
	}
	sq := make([]float64, len(probs))
	for i := range probs {
		d := probs[i] - outcomes[i]
		sq[i] = d * d
	}
	return stat.Mean(sq, nil), nil
}
