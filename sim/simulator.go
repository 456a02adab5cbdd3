package sim

import (
	"github.com/sirupsen/logrus"
)

// Dataset is the result bundle of one simulation run. All fields are
// written once by Simulate and never mutated afterwards.
type Dataset struct {
	// Config echoes the hyperparameters the run was generated with.
	Config Config

	// Traits is the species trait vector, length NSpec.
	Traits []float64
	// Gradient is the site environmental gradient, length NSite.
	Gradient []float64
	// Date is the site × visit survey-date covariate.
	Date [][]float64

	// PsiIntercepts and PIntercepts are the per-species random intercepts
	// (logit scale), length NSpec each.
	PsiIntercepts []float64
	PIntercepts   []float64

	// Psi is the site × species occurrence probability matrix (diagnostic).
	Psi [][]float64
	// ZTrue is the latent site × species true-occurrence state. Unobservable
	// in a real survey; retained for validation.
	ZTrue [][]int8
	// Y is the site × species × visit detection/non-detection array.
	// Y[i][k][j]=1 implies ZTrue[i][k]=1.
	Y [][][]int8
}

// Simulate runs the full generative model and returns the assembled bundle.
// It validates cfg first and performs no random draw on invalid input.
//
// Given identical cfg (seed included), output is bit-identical. The fixed
// draw order is: traits (by species), gradient (by site), dates
// (site-major), species effects (by species), occurrence (site-major,
// species inner), detection (site-major, species middle, visit inner,
// occupied cells only). Each stage draws from its own RNG subsystem.
//
// A species with no true occurrences, or no detections despite occurring,
// is a legal output state, not an error.
func Simulate(cfg *Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))

	traits := DrawTraits(cfg.NSpec, rng.ForSubsystem(SubsystemTraits))
	gradient := DrawGradient(cfg.NSite, cfg.GradientDist, rng.ForSubsystem(SubsystemGradient))
	date := DrawDates(cfg.NSite, cfg.NRep, cfg.DateDist, rng.ForSubsystem(SubsystemDates))

	eff := DrawSpeciesEffects(cfg, traits,
		rng.ForSubsystem(SubsystemOccurrenceEffects),
		rng.ForSubsystem(SubsystemDetectionEffects))

	z, psi := drawOccurrence(cfg, eff, gradient, rng.ForSubsystem(SubsystemOccurrence))
	y := drawDetection(cfg, eff, z, date, rng.ForSubsystem(SubsystemDetection))

	logrus.Debugf("simulated community: %d sites x %d species x %d visits (seed=%d)",
		cfg.NSite, cfg.NSpec, cfg.NRep, cfg.Seed)

	return &Dataset{
		Config:        *cfg,
		Traits:        traits,
		Gradient:      gradient,
		Date:          date,
		PsiIntercepts: eff.PsiIntercepts,
		PIntercepts:   eff.PIntercepts,
		Psi:           psi,
		ZTrue:         z,
		Y:             y,
	}, nil
}
