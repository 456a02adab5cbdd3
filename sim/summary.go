package sim

import (
	"gonum.org/v1/gonum/stat"
)

// DatasetSummary aggregates statistics from one simulated dataset.
type DatasetSummary struct {
	TrueOccupancy     float64 // mean of ZTrue over all (site, species) cells
	NaiveOccupancy    float64 // mean of the observed meta-community matrix
	MeanDetections    float64 // mean detections per species over sites and visits
	SpeciesDetections []int   // total detections per species
	SpeciesOccupied   []int   // truly occupied sites per species
	UnoccupiedSpecies int     // species never truly present
	UnobservedSpecies int     // species with zero detections
}

// Summarize computes aggregate statistics for the dataset.
func (d *Dataset) Summarize() *DatasetSummary {
	nsite, nspec := d.Config.NSite, d.Config.NSpec

	s := &DatasetSummary{
		SpeciesDetections: make([]int, nspec),
		SpeciesOccupied:   make([]int, nspec),
	}

	obs := d.ObservedMatrix()
	zTotal, obsTotal := 0, 0
	for i := 0; i < nsite; i++ {
		for k := 0; k < nspec; k++ {
			if d.ZTrue[i][k] == 1 {
				zTotal++
				s.SpeciesOccupied[k]++
			}
			if obs[i][k] == 1 {
				obsTotal++
			}
			for j := 0; j < d.Config.NRep; j++ {
				if d.Y[i][k][j] == 1 {
					s.SpeciesDetections[k]++
				}
			}
		}
	}

	cells := float64(nsite * nspec)
	s.TrueOccupancy = float64(zTotal) / cells
	s.NaiveOccupancy = float64(obsTotal) / cells

	det := make([]float64, nspec)
	for k := range s.SpeciesDetections {
		det[k] = float64(s.SpeciesDetections[k])
		if s.SpeciesDetections[k] == 0 {
			s.UnobservedSpecies++
		}
		if s.SpeciesOccupied[k] == 0 {
			s.UnoccupiedSpecies++
		}
	}
	s.MeanDetections = stat.Mean(det, nil)

	return s
}

// ObservedMatrix collapses Y into the naive meta-community matrix: 1 where
// a species was detected on at least one visit to a site.
func (d *Dataset) ObservedMatrix() [][]int8 {
	obs := make([][]int8, d.Config.NSite)
	for i := range obs {
		row := make([]int8, d.Config.NSpec)
		for k := range row {
			for j := 0; j < d.Config.NRep; j++ {
				if d.Y[i][k][j] == 1 {
					row[k] = 1
					break
				}
			}
		}
		obs[i] = row
	}
	return obs
}

// SpeciesOccupancyRates returns each species' fraction of truly occupied
// sites, used for filter-direction diagnostics against the trait vector.
func (d *Dataset) SpeciesOccupancyRates() []float64 {
	rates := make([]float64, d.Config.NSpec)
	for k := 0; k < d.Config.NSpec; k++ {
		occupied := 0
		for i := 0; i < d.Config.NSite; i++ {
			if d.ZTrue[i][k] == 1 {
				occupied++
			}
		}
		rates[k] = float64(occupied) / float64(d.Config.NSite)
	}
	return rates
}
