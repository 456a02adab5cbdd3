package occu

import (
	"errors"
	"fmt"

	"github.com/kshedden/statmodel/glm"
	"github.com/kshedden/statmodel/statmodel"

	"github.com/metacomm-sim/metacomm-sim/sim"
)

// ErrDegenerateSpecies marks a species whose detection matrix is all zero.
// There is nothing to fit for such a species; the correction workflow
// records the error and keeps the naive (all-zero) column.
var ErrDegenerateSpecies = errors.New("species has no detections")

// GLMEstimator implements Estimator with two maximum-likelihood logistic
// regressions from kshedden/statmodel:
//
//   - a detection model on visit-level records restricted to sites with at
//     least one detection (where true presence is known), detected ~ date;
//   - an occupancy model on the site-level ever-detected indicator,
//     detected ~ gradient.
//
// The empirical-Bayes posterior of true occurrence at a site with an
// all-zero history is
//
//	psi·∏(1-p_j) / (psi·∏(1-p_j) + 1-psi)
//
// with psi and p_j evaluated from the fitted models; the posterior mode is
// 1 iff that exceeds 1/2. Sites with a detection have mode 1 outright.
type GLMEstimator struct{}

var _ Estimator = GLMEstimator{}

// FitSpecies fits the two logistic models and computes per-site posterior
// occurrence modes. Returns ErrDegenerateSpecies (wrapped) when the species
// was never detected.
func (GLMEstimator) FitSpecies(data SpeciesData) (*SpeciesFit, error) {
	nsite := len(data.Detections)
	if nsite == 0 {
		return nil, fmt.Errorf("empty detection matrix: %w", ErrDegenerateSpecies)
	}
	nrep := len(data.Detections[0])

	// Site-level ever-detected indicator.
	everDetected := make([]float64, nsite)
	detectedSites := 0
	for i := 0; i < nsite; i++ {
		for j := 0; j < nrep; j++ {
			if data.Detections[i][j] == 1 {
				everDetected[i] = 1
				break
			}
		}
		if everDetected[i] == 1 {
			detectedSites++
		}
	}
	if detectedSites == 0 {
		return nil, fmt.Errorf("all %d sites have empty histories: %w", nsite, ErrDegenerateSpecies)
	}

	// Occupancy model: ever-detected ~ icept + gradient.
	occResult, err := fitLogistic(
		[][]float64{everDetected, ones(nsite), data.Gradient},
		[]string{"detected", "icept", "gradient"},
	)
	if err != nil {
		return nil, fmt.Errorf("occupancy model: %w", err)
	}

	// Detection model: visit-level detected ~ icept + date, at sites with
	// a known presence only.
	var yv, iv, dv []float64
	for i := 0; i < nsite; i++ {
		if everDetected[i] != 1 {
			continue
		}
		for j := 0; j < nrep; j++ {
			yv = append(yv, float64(data.Detections[i][j]))
			iv = append(iv, 1)
			dv = append(dv, data.Date[i][j])
		}
	}
	detResult, err := fitLogistic(
		[][]float64{yv, iv, dv},
		[]string{"detected", "icept", "date"},
	)
	if err != nil {
		return nil, fmt.Errorf("detection model: %w", err)
	}

	fit := &SpeciesFit{
		OccCoefs:  occResult.Params(),
		OccStdErr: occResult.StdErr(),
		DetCoefs:  detResult.Params(),
		DetStdErr: detResult.StdErr(),
	}
	fit.PosteriorZ = posteriorModes(data, everDetected, fit.OccCoefs, fit.DetCoefs)
	return fit, nil
}

// fitLogistic runs a binomial GLM with logit link. The first column is the
// outcome; the remaining columns are the predictors, in order (coefficient
// order follows predictor order).
func fitLogistic(columns [][]float64, names []string) (*glm.GLMResults, error) {
	dataset := statmodel.NewDataset(columns, names)

	config := glm.DefaultConfig()
	config.Family = glm.NewFamily(glm.BinomialFamily)

	model, err := glm.NewGLM(dataset, names[0], names[1:], config)
	if err != nil {
		return nil, fmt.Errorf("building GLM: %w", err)
	}
	return model.Fit(), nil
}

// posteriorModes evaluates the fitted models at every site and returns the
// empirical-Bayes posterior occurrence modes.
func posteriorModes(data SpeciesData, everDetected, occCoefs, detCoefs []float64) []int8 {
	modes := make([]int8, len(data.Gradient))
	for i := range modes {
		if everDetected[i] == 1 {
			modes[i] = 1
			continue
		}
		psi := sim.InvLogit(occCoefs[0] + occCoefs[1]*data.Gradient[i])
		missProb := 1.0
		for j := range data.Date[i] {
			p := sim.InvLogit(detCoefs[0] + detCoefs[1]*data.Date[i][j])
			missProb *= 1 - p
		}
		posterior := psi * missProb / (psi*missProb + (1 - psi))
		if posterior > 0.5 {
			modes[i] = 1
		}
	}
	return modes
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}
