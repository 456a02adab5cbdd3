package sim

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestDrawGradient_UniformStaysInRange(t *testing.T) {
	src := rand.NewSource(1)
	gradient := DrawGradient(1000, DistUniform, src)
	for i, g := range gradient {
		if g < -1 || g > 1 {
			t.Fatalf("gradient[%d] = %v, want within [-1,1]", i, g)
		}
	}
}

func TestDrawDates_Shape(t *testing.T) {
	src := rand.NewSource(1)
	date := DrawDates(7, 3, DistNormal, src)
	if len(date) != 7 {
		t.Fatalf("rows = %d, want 7", len(date))
	}
	for i := range date {
		if len(date[i]) != 3 {
			t.Fatalf("row %d has %d visits, want 3", i, len(date[i]))
		}
	}
}

func TestDrawTraits_Deterministic(t *testing.T) {
	t1 := DrawTraits(50, rand.NewSource(9))
	t2 := DrawTraits(50, rand.NewSource(9))
	for k := range t1 {
		if t1[k] != t2[k] {
			t.Fatalf("trait %d differs: %v vs %v", k, t1[k], t2[k])
		}
	}
}

func TestDrawSpeciesEffects_Calibration(t *testing.T) {
	// With zero spread and zero filter, every intercept equals the logit
	// of the target mean.
	cfg := DefaultConfig()
	cfg.SigmaLpsi = 0
	cfg.SigmaLp = 0
	cfg.MeanPsi = 0.8
	cfg.MeanP = 0.3

	traits := []float64{-1, 0, 2}
	eff := DrawSpeciesEffects(cfg, traits, rand.NewSource(1), rand.NewSource(2))

	for k := range traits {
		if got := InvLogit(eff.PsiIntercepts[k]); math.Abs(got-0.8) > 1e-12 {
			t.Errorf("species %d occurrence probability = %v, want 0.8", k, got)
		}
		if got := InvLogit(eff.PIntercepts[k]); math.Abs(got-0.3) > 1e-12 {
			t.Errorf("species %d detection probability = %v, want 0.3", k, got)
		}
	}
}

func TestDrawSpeciesEffects_FilterShiftsIntercepts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SigmaLpsi = 0
	cfg.SigmaLp = 0
	cfg.MuFTFilterLpsi = -0.5
	cfg.MuFTFilterLp = 1

	traits := []float64{-2, 0, 2}
	eff := DrawSpeciesEffects(cfg, traits, rand.NewSource(1), rand.NewSource(2))

	// Negative occurrence filter: intercepts decrease with trait.
	if !(eff.PsiIntercepts[0] > eff.PsiIntercepts[1] && eff.PsiIntercepts[1] > eff.PsiIntercepts[2]) {
		t.Errorf("occurrence intercepts not decreasing in trait: %v", eff.PsiIntercepts)
	}
	// Positive detection filter: intercepts increase with trait.
	if !(eff.PIntercepts[0] < eff.PIntercepts[1] && eff.PIntercepts[1] < eff.PIntercepts[2]) {
		t.Errorf("detection intercepts not increasing in trait: %v", eff.PIntercepts)
	}
}
