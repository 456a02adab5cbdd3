package sim

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// covariateSampler builds the scalar sampler for a named covariate
// distribution. The default (and "normal") is standard normal; "uniform"
// covers [-1, 1].
func covariateSampler(name string, src rand.Source) func() float64 {
	if name == DistUniform {
		u := distuv.Uniform{Min: -1, Max: 1, Src: src}
		return u.Rand
	}
	n := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	return n.Rand
}

// DrawTraits draws the species trait vector: nspec i.i.d. standard-normal
// values, indexed by species. Traits are fixed for the remainder of a run.
func DrawTraits(nspec int, src rand.Source) []float64 {
	std := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	traits := make([]float64, nspec)
	for k := range traits {
		traits[k] = std.Rand()
	}
	return traits
}

// DrawGradient draws the per-site environmental gradient: nsite i.i.d.
// values from the named distribution, indexed by site.
func DrawGradient(nsite int, dist string, src rand.Source) []float64 {
	sample := covariateSampler(dist, src)
	gradient := make([]float64, nsite)
	for i := range gradient {
		gradient[i] = sample()
	}
	return gradient
}

// DrawDates draws the site × visit survey-date covariate, i.i.d. across
// sites and visits. Draw order is site-major: all visits of site 0, then
// all visits of site 1, and so on.
func DrawDates(nsite, nrep int, dist string, src rand.Source) [][]float64 {
	sample := covariateSampler(dist, src)
	date := make([][]float64, nsite)
	for i := range date {
		row := make([]float64, nrep)
		for j := range row {
			row[j] = sample()
		}
		date[i] = row
	}
	return date
}
