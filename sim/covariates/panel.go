package covariates

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Panel holds the generated covariate trajectories: one borrowers×days dense
// matrix per covariate. Implements sim.CovariatePanel.
type Panel struct {
	names     []string
	data      map[string]*mat.Dense
	borrowers int
	days      int
}

// NewPanel allocates an empty panel for the given dimensions.
func NewPanel(borrowers, days int) *Panel {
	names := Names()
	data := make(map[string]*mat.Dense, len(names))
	for _, name := range names {
		data[name] = mat.NewDense(borrowers, days, nil)
	}
	return &Panel{names: names, data: data, borrowers: borrowers, days: days}
}

// Names returns the covariate column order.
func (p *Panel) Names() []string { return p.names }

// Borrowers returns the number of borrower rows in the panel.
func (p *Panel) Borrowers() int { return p.borrowers }

// Days returns the number of day columns in the panel.
func (p *Panel) Days() int { return p.days }

// Value returns one covariate value. Panics on out-of-range indices, like a
// direct matrix access would; use CheckHorizon up front to fail fast instead.
func (p *Panel) Value(name string, borrower, day int) float64 {
	m, ok := p.data[name]
	if !ok {
		panic(fmt.Sprintf("covariates: unknown covariate %q", name))
	}
	return m.At(borrower, day)
}

// Row returns a fresh slice of all covariate values for one borrower at one
// day, ordered like Names.
func (p *Panel) Row(borrower, day int) []float64 {
	row := make([]float64, len(p.names))
	for i, name := range p.names {
		row[i] = p.data[name].At(borrower, day)
	}
	return row
}

// CheckHorizon verifies the panel covers a simulation of the given length,
// so the engine can reject a mismatched scenario before the day loop starts.
func (p *Panel) CheckHorizon(days int) error {
	if days > p.days {
		return fmt.Errorf("panel covers %d days, need %d", p.days, days)
	}
	return nil
}

func (p *Panel) set(name string, borrower, day int, v float64) {
	p.data[name].Set(borrower, day, v)
}
