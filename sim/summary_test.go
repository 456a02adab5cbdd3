package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// handDataset builds a tiny fixed dataset: 2 sites, 3 species, 2 visits.
// Species 0 occurs everywhere and is detected at site 0 only; species 1
// occurs at site 1 and is never detected; species 2 never occurs.
func handDataset() *Dataset {
	cfg := Config{NSite: 2, NSpec: 3, NRep: 2}
	return &Dataset{
		Config: cfg,
		ZTrue: [][]int8{
			{1, 0, 0},
			{1, 1, 0},
		},
		Y: [][][]int8{
			{{1, 0}, {0, 0}, {0, 0}},
			{{0, 0}, {0, 0}, {0, 0}},
		},
	}
}

func TestSummarize_HandDataset(t *testing.T) {
	s := handDataset().Summarize()

	assert.InDelta(t, 3.0/6.0, s.TrueOccupancy, 1e-12)
	assert.InDelta(t, 1.0/6.0, s.NaiveOccupancy, 1e-12)
	assert.Equal(t, []int{1, 0, 0}, s.SpeciesDetections)
	assert.Equal(t, []int{2, 1, 0}, s.SpeciesOccupied)
	assert.Equal(t, 1, s.UnoccupiedSpecies)
	assert.Equal(t, 2, s.UnobservedSpecies)
}

func TestObservedMatrix_CollapsesVisits(t *testing.T) {
	obs := handDataset().ObservedMatrix()

	assert.Equal(t, [][]int8{
		{1, 0, 0},
		{0, 0, 0},
	}, obs)
}

func TestSpeciesOccupancyRates(t *testing.T) {
	rates := handDataset().SpeciesOccupancyRates()
	assert.Equal(t, []float64{1, 0.5, 0}, rates)
}
