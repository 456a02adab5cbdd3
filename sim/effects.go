package sim

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SpeciesEffects holds the per-species random intercepts of the two
// filtered processes, indexed by species.
type SpeciesEffects struct {
	// PsiIntercepts are the occurrence intercepts (logit scale):
	// logit(MeanPsi) + MuFTFilterLpsi·trait + Normal(0, SigmaLpsi).
	PsiIntercepts []float64

	// PIntercepts are the detection intercepts (logit scale):
	// logit(MeanP) + MuFTFilterLp·trait + Normal(0, SigmaLp).
	PIntercepts []float64
}

// DrawSpeciesEffects draws the trait-filtered random intercepts for every
// species. The baselines are calibrated so a species with trait 0 and zero
// noise has occurrence probability MeanPsi and per-visit detection
// probability MeanP. Noise is independent per species and per process;
// occurrence and detection noise come from separate sources.
//
// Draw order: species 0..nspec-1, one occurrence-noise draw then one
// detection-noise draw per species (distinct streams, so the interleaving
// is immaterial to either stream's sequence).
func DrawSpeciesEffects(cfg *Config, traits []float64, occSrc, detSrc rand.Source) *SpeciesEffects {
	occNoise := distuv.Normal{Mu: 0, Sigma: cfg.SigmaLpsi, Src: occSrc}
	detNoise := distuv.Normal{Mu: 0, Sigma: cfg.SigmaLp, Src: detSrc}

	basePsi := Logit(cfg.MeanPsi)
	baseP := Logit(cfg.MeanP)

	eff := &SpeciesEffects{
		PsiIntercepts: make([]float64, len(traits)),
		PIntercepts:   make([]float64, len(traits)),
	}
	for k, t := range traits {
		eff.PsiIntercepts[k] = basePsi + cfg.MuFTFilterLpsi*t + occNoise.Rand()
		eff.PIntercepts[k] = baseP + cfg.MuFTFilterLp*t + detNoise.Rand()
	}
	return eff
}
