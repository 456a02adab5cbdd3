package occu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metacomm-sim/metacomm-sim/sim"
)

func TestGLMEstimator_DegenerateSpecies(t *testing.T) {
	data := SpeciesData{
		Detections: [][]int8{{0, 0}, {0, 0}, {0, 0}},
		Date:       [][]float64{{0.1, -0.2}, {0.3, 0}, {-1, 1}},
		Gradient:   []float64{-1, 0, 1},
	}

	fit, err := GLMEstimator{}.FitSpecies(data)
	if err == nil {
		t.Fatal("expected error for an all-zero detection matrix")
	}
	if !errors.Is(err, ErrDegenerateSpecies) {
		t.Errorf("error %v does not wrap ErrDegenerateSpecies", err)
	}
	if fit != nil {
		t.Error("failed fit must not return partial output")
	}
}

func TestGLMEstimator_EmptyMatrix(t *testing.T) {
	_, err := GLMEstimator{}.FitSpecies(SpeciesData{})
	if !errors.Is(err, ErrDegenerateSpecies) {
		t.Errorf("expected ErrDegenerateSpecies, got %v", err)
	}
}

func TestGLMEstimator_FitOnSimulatedSpecies(t *testing.T) {
	if testing.Short() {
		t.Skip("GLM fitting")
	}
	cfg := sim.DefaultConfig()
	cfg.NSite = 300
	cfg.NSpec = 5
	cfg.NRep = 3
	cfg.MeanPsi = 0.6
	cfg.MeanP = 0.6
	cfg.Seed = 21
	ds, err := sim.Simulate(cfg)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	fit, err := GLMEstimator{}.FitSpecies(SpeciesSlice(ds, 0))
	if err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	assert.Len(t, fit.OccCoefs, 2)
	assert.Len(t, fit.OccStdErr, 2)
	assert.Len(t, fit.DetCoefs, 2)
	assert.Len(t, fit.DetStdErr, 2)
	assert.Len(t, fit.PosteriorZ, cfg.NSite)

	// The structural invariant carries into the posterior: a site with a
	// detection has posterior mode 1.
	obs := ds.ObservedMatrix()
	for i := 0; i < cfg.NSite; i++ {
		if obs[i][0] == 1 && fit.PosteriorZ[i] != 1 {
			t.Fatalf("site %d has a detection but posterior mode %d", i, fit.PosteriorZ[i])
		}
	}
}

func TestPosteriorModes_KnownCoefficients(t *testing.T) {
	// Two sites, one visit each. Site 0 has a detection (mode 1 outright).
	// Site 1 has none: with psi = invlogit(2) ≈ 0.88 and p = invlogit(0) =
	// 0.5 the posterior is 0.44/(0.44+0.12) ≈ 0.79 → mode 1.
	data := SpeciesData{
		Detections: [][]int8{{1}, {0}},
		Date:       [][]float64{{0}, {0}},
		Gradient:   []float64{0, 0},
	}
	modes := posteriorModes(data, []float64{1, 0}, []float64{2, 0}, []float64{0, 0})
	assert.Equal(t, []int8{1, 1}, modes)

	// With psi = invlogit(-2) ≈ 0.12 the same empty history flips: the
	// posterior ≈ 0.06/(0.06+0.88) ≈ 0.06 → mode 0.
	modes = posteriorModes(data, []float64{1, 0}, []float64{-2, 0}, []float64{0, 0})
	assert.Equal(t, []int8{1, 0}, modes)
}
