package sim

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Covariate distribution names accepted by Config.
const (
	DistNormal  = "normal"  // standard normal
	DistUniform = "uniform" // uniform over [-1, 1]
)

var validCovariateDists = map[string]bool{
	"": true, DistNormal: true, DistUniform: true,
}

// Config holds every hyperparameter of one simulation run.
// Loadable from YAML via LoadConfig(path); zero-config callers should start
// from DefaultConfig.
type Config struct {
	// Design sizes.
	NSite int `yaml:"nsite"` // number of sites
	NSpec int `yaml:"nspec"` // number of species in the pool
	NRep  int `yaml:"nrep"`  // repeated survey visits per site

	// Community means. Baseline occurrence/detection probability of a
	// species with trait 0 and zero intercept noise.
	MeanPsi float64 `yaml:"mean_psi"`
	MeanP   float64 `yaml:"mean_p"`

	// Filter strengths: slope of the trait effect on the occurrence and
	// detection intercepts (logit scale). Zero disables the filter.
	MuFTFilterLpsi float64 `yaml:"mu_ftfilter_lpsi"`
	MuFTFilterLp   float64 `yaml:"mu_ftfilter_lp"`

	// Spread of the per-species random intercepts around their
	// trait-driven means (logit scale).
	SigmaLpsi float64 `yaml:"sigma_lpsi"`
	SigmaLp   float64 `yaml:"sigma_lp"`

	// Fixed covariate slopes: occurrence on the site gradient, detection
	// on the visit date.
	BetaLpsi float64 `yaml:"beta_lpsi"`
	BetaLp   float64 `yaml:"beta_lp"`

	// Covariate distributions ("normal" default, or "uniform").
	GradientDist string `yaml:"gradient_distribution,omitempty"`
	DateDist     string `yaml:"date_distribution,omitempty"`

	// Seed for the partitioned RNG; identical Config (seed included)
	// reproduces bit-identical output.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns a Config with neutral filters and a modest design.
func DefaultConfig() *Config {
	return &Config{
		NSite:          100,
		NSpec:          50,
		NRep:           3,
		MeanPsi:        0.5,
		MeanP:          0.5,
		MuFTFilterLpsi: 0,
		MuFTFilterLp:   0,
		SigmaLpsi:      0.5,
		SigmaLp:        0.5,
		BetaLpsi:       1,
		BetaLp:         -1,
		GradientDist:   DistNormal,
		DateDist:       DistNormal,
		Seed:           42,
	}
}

// LoadConfig reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return cfg, nil
}

// Validate checks every hyperparameter. It returns an InvalidParameterError
// (wrapping ErrInvalidParameter) on the first violation. MeanPsi and MeanP
// must lie strictly inside (0,1): the exact endpoints have no finite logit.
func (c *Config) Validate() error {
	if c.NSite <= 0 {
		return invalidParam("nsite", "must be a positive integer, got %d", c.NSite)
	}
	if c.NSpec <= 0 {
		return invalidParam("nspec", "must be a positive integer, got %d", c.NSpec)
	}
	if c.NRep <= 0 {
		return invalidParam("nrep", "must be a positive integer, got %d", c.NRep)
	}
	if err := validateProbTarget("mean_psi", c.MeanPsi); err != nil {
		return err
	}
	if err := validateProbTarget("mean_p", c.MeanP); err != nil {
		return err
	}
	if err := validateFinite("mu_ftfilter_lpsi", c.MuFTFilterLpsi); err != nil {
		return err
	}
	if err := validateFinite("mu_ftfilter_lp", c.MuFTFilterLp); err != nil {
		return err
	}
	if err := validateSpread("sigma_lpsi", c.SigmaLpsi); err != nil {
		return err
	}
	if err := validateSpread("sigma_lp", c.SigmaLp); err != nil {
		return err
	}
	if err := validateFinite("beta_lpsi", c.BetaLpsi); err != nil {
		return err
	}
	if err := validateFinite("beta_lp", c.BetaLp); err != nil {
		return err
	}
	if !validCovariateDists[c.GradientDist] {
		return invalidParam("gradient_distribution", "unknown distribution %q; valid: normal, uniform", c.GradientDist)
	}
	if !validCovariateDists[c.DateDist] {
		return invalidParam("date_distribution", "unknown distribution %q; valid: normal, uniform", c.DateDist)
	}
	return nil
}

func validateProbTarget(name string, val float64) error {
	if math.IsNaN(val) || val <= 0 || val >= 1 {
		return invalidParam(name, "must lie strictly between 0 and 1, got %v", val)
	}
	return nil
}

func validateSpread(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) || val < 0 {
		return invalidParam(name, "must be a finite non-negative number, got %v", val)
	}
	return nil
}

func validateFinite(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return invalidParam(name, "must be a finite number, got %v", val)
	}
	return nil
}
