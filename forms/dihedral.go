// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forms

import (
	"math"

	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/num"
)

// dihedralForm is a 4-body torsion potential: E = 0.5*k*(cos(phi) -
// cos(theta0))^2, where phi is the dihedral angle of the chain Atoms[0]-
// Atoms[1]-Atoms[2]-Atoms[3]. Reference form behind the design scenario S5.
//
// Forces are obtained by central-difference differentiation of the energy
// with respect to each atom's local coordinate (gosl/num.DerivCen, the same
// finite-difference helper msolid/driver.go uses to check a consistent
// tangent matrix) rather than a hand-derived analytic torsion gradient —
// acceptable for a reference/test catalog form, and it keeps the sign
// convention of the dihedral angle (which the energy term does not care
// about, only cos(phi) appears) out of the force code entirely.
type dihedralForm struct{}

func (dihedralForm) NumTargets() int { return 4 }

// localPositions reconstructs gauge-invariant positions for the four atoms
// from the chain of separations, pinning Atoms[0] at the origin. Energy
// here depends only on differences, so the pin is just a choice of frame.
func localPositions(t Tuple) [4][3]float64 {
	var pos [4][3]float64
	pos[1] = add(pos[0], t.Seps[0])
	pos[2] = add(pos[1], t.Seps[1])
	pos[3] = add(pos[2], t.Seps[2])
	return pos
}

func dihedralEnergyFromPositions(pos [4][3]float64, k, cosTheta0 float64) float64 {
	b1 := sub(pos[1], pos[0])
	b2 := sub(pos[2], pos[1])
	b3 := sub(pos[3], pos[2])
	n1 := cross(b1, b2)
	n2 := cross(b2, b3)
	nn1, nn2 := geometry.Norm(n1), geometry.Norm(n2)
	if nn1 == 0 || nn2 == 0 {
		return 0
	}
	cosPhi := dot(n1, n2) / (nn1 * nn2)
	if cosPhi > 1 {
		cosPhi = 1
	}
	if cosPhi < -1 {
		cosPhi = -1
	}
	d := cosPhi - cosTheta0
	return 0.5 * k * d * d
}

func (dihedralForm) Energy(p fun.Prms, t Tuple) (float64, error) {
	k := prmVal(p, "k", 0)
	theta0 := prmVal(p, "theta0", 0)
	pos := localPositions(t)
	return dihedralEnergyFromPositions(pos, k, math.Cos(theta0)), nil
}

func (dihedralForm) Forces(p fun.Prms, t Tuple) (float64, [][3]float64, error) {
	k := prmVal(p, "k", 0)
	theta0 := prmVal(p, "theta0", 0)
	cosTheta0 := math.Cos(theta0)
	pos := localPositions(t)
	energy := dihedralEnergyFromPositions(pos, k, cosTheta0)

	const h = 1e-6
	forces := make([][3]float64, 4)
	for atomIdx := 0; atomIdx < 4; atomIdx++ {
		for dim := 0; dim < 3; dim++ {
			orig := pos[atomIdx][dim]
			deriv := num.DerivCen(func(x float64) float64 {
				pos[atomIdx][dim] = x
				e := dihedralEnergyFromPositions(pos, k, cosTheta0)
				pos[atomIdx][dim] = orig
				return e
			}, orig, h)
			forces[atomIdx][dim] = -deriv
		}
	}
	return energy, forces, nil
}

func (dihedralForm) Electronegativity(p fun.Prms, t Tuple) ([]float64, error) {
	return make([]float64, 4), nil
}
