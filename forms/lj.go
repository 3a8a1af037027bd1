// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forms

import (
	"math"

	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/gosl/fun"
)

// ljForm is a 2-body potential: V(r) = epsilon[(sigma/r)^12 - (sigma/r)^6].
// Reference form behind the design scenario S2.
type ljForm struct{}

func (ljForm) NumTargets() int { return 2 }

func ljEnergy(p fun.Prms, r float64) float64 {
	eps := prmVal(p, "epsilon", 1.0)
	sigma := prmVal(p, "sigma", 1.0)
	sr6 := math.Pow(sigma/r, 6)
	sr12 := sr6 * sr6
	return eps * (sr12 - sr6)
}

func (ljForm) Energy(p fun.Prms, t Tuple) (float64, error) {
	return ljEnergy(p, t.Dists[0]), nil
}

func (ljForm) Forces(p fun.Prms, t Tuple) (float64, [][3]float64, error) {
	eps := prmVal(p, "epsilon", 1.0)
	sigma := prmVal(p, "sigma", 1.0)
	r := t.Dists[0]
	sr6 := math.Pow(sigma/r, 6)
	sr12 := sr6 * sr6
	energy := eps * (sr12 - sr6)
	// radial force magnitude F_r = -dV/dr; positive means repulsive (push apart)
	fr := eps / r * (12*sr12 - 6*sr6)
	dir := geometry.Direction(t.Seps[0])
	onAtom1 := [3]float64{fr * dir[0], fr * dir[1], fr * dir[2]}
	forces := [][3]float64{
		{-onAtom1[0], -onAtom1[1], -onAtom1[2]},
		onAtom1,
	}
	return energy, forces, nil
}

func (ljForm) Electronegativity(p fun.Prms, t Tuple) ([]float64, error) {
	return make([]float64, 2), nil
}
