package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible portfolio run.
// Two runs with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical output tables.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemCovariates is the RNG subsystem for covariate trajectory
	// generation. Uses the master seed directly.
	SubsystemCovariates = "covariates"
)

// SubsystemBorrower returns the subsystem name for borrower N's path
// substream. Each borrower draws its transition uniforms from its own
// stream, so output is independent of borrower iteration order.
func SubsystemBorrower(id int) string {
	return fmt.Sprintf("borrower_%d", id)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemCovariates: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// SeedFor returns the derived seed for the named subsystem without
// instantiating a *rand.Rand. Used to feed generator sources that are not
// math/rand based (e.g. gonum distribution samplers).
func (p *PartitionedRNG) SeedFor(name string) int64 {
	if name == SubsystemCovariates {
		return int64(p.key)
	}
	return int64(p.key) ^ fnv1a64(name)
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.SeedFor(name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
