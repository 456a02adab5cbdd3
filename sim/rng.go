package sim

import (
	"hash/fnv"

	"golang.org/x/exp/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

// One RNG subsystem per generation stage. Stages never share a stream, so
// the number of draws in one stage cannot shift the values of another.
const (
	// SubsystemTraits is the RNG subsystem for species trait draws.
	// Uses the master seed directly.
	SubsystemTraits = "traits"

	// SubsystemGradient is the RNG subsystem for site gradient draws.
	SubsystemGradient = "gradient"

	// SubsystemDates is the RNG subsystem for survey-date covariate draws.
	SubsystemDates = "dates"

	// SubsystemOccurrenceEffects is the RNG subsystem for per-species
	// occurrence-intercept noise.
	SubsystemOccurrenceEffects = "occurrence_effects"

	// SubsystemDetectionEffects is the RNG subsystem for per-species
	// detection-intercept noise.
	SubsystemDetectionEffects = "detection_effects"

	// SubsystemOccurrence is the RNG subsystem for latent presence draws.
	SubsystemOccurrence = "occurrence"

	// SubsystemDetection is the RNG subsystem for detection draws.
	SubsystemDetection = "detection"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemTraits: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Sources come from golang.org/x/exp/rand so they plug directly into
// gonum/stat/distuv distributions as Src fields.
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

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil. The returned *rand.Rand also satisfies rand.Source.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemTraits {
		// First stage of the pipeline uses the master seed directly.
		derivedSeed = int64(p.key)
	} else {
		// All other subsystems: XOR with hash for isolation.
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(uint64(derivedSeed)))
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
