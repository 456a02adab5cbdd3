package sim

import (
	"math"
	"testing"
)

func TestLogitInvLogit_Inverses(t *testing.T) {
	for _, p := range []float64{0.001, 0.1, 0.25, 0.5, 0.75, 0.9, 0.999} {
		got := InvLogit(Logit(p))
		if math.Abs(got-p) > 1e-12 {
			t.Errorf("InvLogit(Logit(%v)) = %v", p, got)
		}
	}
}

func TestInvLogit_Range(t *testing.T) {
	// ±50 rounds to exactly 0/1 in naive float64 evaluation, ±800
	// overflows exp; both must still land strictly inside (0,1).
	for _, x := range []float64{-800, -50, -5, -0.3, 0, 0.3, 5, 50, 800} {
		p := InvLogit(x)
		if p <= 0 || p >= 1 {
			t.Errorf("InvLogit(%v) = %v, want strictly inside (0,1)", x, p)
		}
	}
	if InvLogit(0) != 0.5 {
		t.Errorf("InvLogit(0) = %v, want 0.5", InvLogit(0))
	}
}

func TestInvLogit_ClampedTailsStayMonotone(t *testing.T) {
	lo := InvLogit(-800)
	hi := InvLogit(800)
	if !(lo > 0 && lo < InvLogit(-5)) {
		t.Errorf("InvLogit(-800) = %v, want in (0, InvLogit(-5))", lo)
	}
	if !(hi < 1 && hi > InvLogit(5)) {
		t.Errorf("InvLogit(800) = %v, want in (InvLogit(5), 1)", hi)
	}
	if Logit(hi) <= 0 || Logit(lo) >= 0 {
		t.Error("clamped outputs must remain valid Logit inputs")
	}
}

func TestLogit_KnownValues(t *testing.T) {
	if Logit(0.5) != 0 {
		t.Errorf("Logit(0.5) = %v, want 0", Logit(0.5))
	}
	if Logit(0.8) <= 0 || Logit(0.2) >= 0 {
		t.Error("Logit must be positive above 0.5 and negative below")
	}
}
