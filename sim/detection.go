package sim

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// drawDetection draws the observation array conditioned on true occurrence.
// For every (site i, species k, visit j): if z[i][k]=0 the observation is 0
// deterministically and no random variate is consumed; otherwise the linear
// predictor is PIntercepts[k] + BetaLp·date[i][j] and y[i][k][j] is
// Bernoulli of its inverse logit, independent across cells.
//
// Draw order is site-major: site outer, species middle, visit inner,
// occupied cells only.
func drawDetection(cfg *Config, eff *SpeciesEffects, z [][]int8, date [][]float64, src rand.Source) [][][]int8 {
	y := make([][][]int8, cfg.NSite)
	for i := 0; i < cfg.NSite; i++ {
		site := make([][]int8, cfg.NSpec)
		for k := 0; k < cfg.NSpec; k++ {
			visits := make([]int8, cfg.NRep)
			if z[i][k] == 1 {
				for j := 0; j < cfg.NRep; j++ {
					p := InvLogit(eff.PIntercepts[k] + cfg.BetaLp*date[i][j])
					if (distuv.Bernoulli{P: p, Src: src}).Rand() == 1 {
						visits[j] = 1
					}
				}
			}
			site[k] = visits
		}
		y[i] = site
	}
	return y
}
