// Package sim implements the generative model for meta-community
// occupancy-detection data under confounded trait filtering.
//
// # Reading Guide
//
// Start with these three files to understand the model:
//   - config.go: hyperparameters, defaults, and validation
//   - simulator.go: the staged generation pipeline and the Dataset bundle
//   - effects.go: how species traits filter occurrence and detection
//
// # Architecture
//
// Generation is a strict top-down pipeline with no feedback:
//
//	covariates (traits, gradient, dates)
//	  → species random effects (trait-filtered intercepts)
//	  → occurrence process (latent site × species presence z)
//	  → detection process (observed site × species × visit array y)
//
// Every stage is a pure function over an explicitly threaded random
// source; Simulate composes them. Each stage draws from its own
// partitioned RNG subsystem (see rng.go), so adding draws to one stage
// never perturbs another stage's stream.
//
// The structural invariant of the whole model is f(y|z): a species absent
// from a site (z=0) yields y=0 deterministically on every visit, and no
// random variate is consumed for those cells.
//
// Estimation of occupancy from the simulated observations lives in the
// sim/occu sub-package behind the occu.Estimator interface.
package sim
