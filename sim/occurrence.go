package sim

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// drawOccurrence draws the latent true-occurrence state. For every
// (site i, species k) the linear predictor is
// PsiIntercepts[k] + BetaLpsi·gradient[i]; z[i][k] is Bernoulli of its
// inverse logit, independent across cells.
//
// Draw order is site-major: site outer, species inner.
//
// Returns z plus the probability matrix psi for diagnostics.
func drawOccurrence(cfg *Config, eff *SpeciesEffects, gradient []float64, src rand.Source) (z [][]int8, psi [][]float64) {
	z = make([][]int8, cfg.NSite)
	psi = make([][]float64, cfg.NSite)
	for i := 0; i < cfg.NSite; i++ {
		zRow := make([]int8, cfg.NSpec)
		pRow := make([]float64, cfg.NSpec)
		for k := 0; k < cfg.NSpec; k++ {
			p := InvLogit(eff.PsiIntercepts[k] + cfg.BetaLpsi*gradient[i])
			pRow[k] = p
			if (distuv.Bernoulli{P: p, Src: src}).Rand() == 1 {
				zRow[k] = 1
			}
		}
		z[i] = zRow
		psi[i] = pRow
	}
	return z, psi
}
