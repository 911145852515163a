// Package sim provides the core multi-state simulation engine for the
// synthetic loan portfolio.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - state.go: the ordered delinquency chain (current → mild → severe → default)
//   - intensity.go: proportional-hazards transition intensities and the
//     per-step jump probability
//   - simulator.go: the per-borrower day loop that emits the interval table
//
// # Architecture
//
// The sim package defines the engine and the CovariatePanel bridge interface;
// implementations and downstream consumers live in sub-packages:
//   - sim/covariates/: synthetic covariate trajectory generation
//   - sim/risk/: forward default-probability projection and scoring glue
//   - sim/record/: persistence of the event table and risk scores
//
// Randomness is handled by a PartitionedRNG (rng.go): every borrower draws
// from its own deterministically-derived substream, so output is independent
// of borrower iteration order and stable for a fixed seed.
package sim
