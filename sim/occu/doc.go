// Package occu defines the occupancy-estimation service contract consumed
// by the detection-filtering correction workflow, plus a logistic-GLM
// backed implementation.
//
// The simulator in the parent package produces a site × species × visit
// detection array; correction fits one single-season occupancy model per
// species (an independent, pure mapping from species index to fit) and
// replaces the raw observations with each model's empirical-Bayes posterior
// mode of true occurrence.
package occu
