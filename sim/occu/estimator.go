package occu

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/metacomm-sim/metacomm-sim/sim"
)

// SpeciesData is the per-species input to the estimation service.
type SpeciesData struct {
	// Detections is the site × visit detection matrix for one species.
	Detections [][]int8
	// Date is the site × visit survey-date covariate.
	Date [][]float64
	// Gradient is the per-site environmental covariate.
	Gradient []float64
}

// SpeciesFit is the estimation service's output for one species.
type SpeciesFit struct {
	// OccCoefs/OccStdErr are the occupancy model's logistic coefficients
	// (intercept, gradient) with standard errors.
	OccCoefs  []float64
	OccStdErr []float64

	// DetCoefs/DetStdErr are the detection model's logistic coefficients
	// (intercept, date) with standard errors.
	DetCoefs  []float64
	DetStdErr []float64

	// PosteriorZ is the per-site empirical-Bayes posterior mode (0/1) of
	// true occurrence given the fitted model and the observations.
	PosteriorZ []int8
}

// Estimator is the occupancy-estimation service contract. Implementations
// are expected to fail for a species with an all-zero detection matrix
// (no information to fit); callers must handle that case.
type Estimator interface {
	FitSpecies(data SpeciesData) (*SpeciesFit, error)
}

// SpeciesSlice extracts species k's estimation input from a dataset.
// The returned matrices share no storage with the dataset's Y array.
func SpeciesSlice(ds *sim.Dataset, k int) SpeciesData {
	det := make([][]int8, ds.Config.NSite)
	for i := range det {
		row := make([]int8, ds.Config.NRep)
		copy(row, ds.Y[i][k])
		det[i] = row
	}
	return SpeciesData{
		Detections: det,
		Date:       ds.Date,
		Gradient:   ds.Gradient,
	}
}

// CommunityFit collects the per-species estimation results of one
// correction run. Fits[k] is nil exactly when Errs[k] is non-nil.
type CommunityFit struct {
	Fits []*SpeciesFit
	Errs []error
}

// Failed returns the number of species whose fit failed.
func (cf *CommunityFit) Failed() int {
	n := 0
	for _, err := range cf.Errs {
		if err != nil {
			n++
		}
	}
	return n
}

// FitCommunity maps every species of the dataset through the estimator.
// Iterations are independent (no shared mutable state); a failed species is
// recorded and skipped, never aborting the remaining species.
func FitCommunity(est Estimator, ds *sim.Dataset) *CommunityFit {
	cf := &CommunityFit{
		Fits: make([]*SpeciesFit, ds.Config.NSpec),
		Errs: make([]error, ds.Config.NSpec),
	}
	for k := 0; k < ds.Config.NSpec; k++ {
		fit, err := est.FitSpecies(SpeciesSlice(ds, k))
		if err != nil {
			cf.Errs[k] = fmt.Errorf("species %d: %w", k, err)
			logrus.Debugf("occupancy fit skipped: %v", cf.Errs[k])
			continue
		}
		cf.Fits[k] = fit
	}
	return cf
}

// CorrectedMatrix assembles the detection-corrected meta-community matrix
// from the per-species posterior modes. Species whose fit failed keep their
// naive observed column (for an all-zero detection history that column is
// all zeros anyway).
func CorrectedMatrix(ds *sim.Dataset, cf *CommunityFit) [][]int8 {
	obs := ds.ObservedMatrix()
	corrected := make([][]int8, ds.Config.NSite)
	for i := range corrected {
		row := make([]int8, ds.Config.NSpec)
		for k := range row {
			if cf.Fits[k] != nil {
				row[k] = cf.Fits[k].PosteriorZ[i]
			} else {
				row[k] = obs[i][k]
			}
		}
		corrected[i] = row
	}
	return corrected
}
