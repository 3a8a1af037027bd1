// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ewald is the long-range add-on (the design): a single external
// kernel invoked once per observable and summed on top of the short-range
// totals produced by the loop package. The core never implements
// reciprocal-space math itself; Kernel is the seam.
package ewald

import (
	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/geometry"
)

// Params mirrors the design's set_ewald_parameters: a real-space cutoff, a
// reciprocal-space cutoff triple (max reflection index per lattice
// direction), the Gaussian charge-smearing width sigma, the vacuum
// permittivity epsilon0, and a per-atom scaler (all-ones unless the caller
// wants to mask or weight specific atoms).
type Params struct {
	RealCutoff float64
	KCutoff    [3]int
	Sigma      float64
	Epsilon0   float64
	Scaler     []float64 // length N_atoms; nil means all atoms scaled by 1
}

func (p Params) scalerFor(set *atom.Set) []float64 {
	if p.Scaler != nil {
		return p.Scaler
	}
	s := make([]float64, set.N())
	for i := range s {
		s[i] = 1
	}
	return s
}

// Kernel is the external Ewald routine boundary (the design "Out of scope":
// calculate_ewald_{energy,forces,electronegativities}). The core calls
// exactly one of these per requested observable, only after the short-range
// accumulation has already succeeded (the design "long-range add-on is
// attempted only if short-range succeeded").
type Kernel interface {
	Energy(set *atom.Set, cell geometry.Cell, p Params) (float64, error)
	Forces(set *atom.Set, cell geometry.Cell, p Params) (float64, [][3]float64, [6]float64, error)
	Electronegativities(set *atom.Set, cell geometry.Cell, p Params) ([]float64, error)
}
