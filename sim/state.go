package sim

import "fmt"

// State is a borrower's delinquency stage. States form an ordered chain:
// transitions only ever move forward by exactly one stage, and StateDefault
// is absorbing.
type State int

const (
	StateCurrent State = iota
	StateMild
	StateSevere
	StateDefault
)

// NumStates is the size of the delinquency chain, including the absorbing state.
const NumStates = 4

// NumTransitions is the number of forward transitions in the chain.
const NumTransitions = NumStates - 1

var stateNames = [NumStates]string{"current", "mild", "severe", "default"}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Valid reports whether s is one of the chain's states.
func (s State) Valid() bool {
	return s >= StateCurrent && s < NumStates
}

// Terminal reports whether s is the absorbing default state.
func (s State) Terminal() bool {
	return s == StateDefault
}

// Next returns the following stage in the chain. The absorbing state
// returns itself.
func (s State) Next() State {
	if s.Terminal() {
		return s
	}
	return s + 1
}
