// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forms

import (
	"math"

	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/gosl/fun"
)

// bondBendForm is a 3-body harmonic angle potential centered on the middle
// atom of the tuple: E = 0.5*k*(theta - theta0)^2, where theta is the angle
// at Atoms[1] between the bonds to Atoms[0] and Atoms[2] (the design
// triplet convention: a triplet's center sits in the middle position).
// Reference form behind the design scenario S3.
type bondBendForm struct{}

func (bondBendForm) NumTargets() int { return 3 }

func bendGeometry(t Tuple) (vec1, vec2 [3]float64, r1, r2, cosT, sinT, theta float64) {
	vec1 = neg(t.Seps[0]) // Atoms[0] - Atoms[1]
	vec2 = t.Seps[1]      // Atoms[2] - Atoms[1]
	r1 = geometry.Norm(vec1)
	r2 = geometry.Norm(vec2)
	if r1 == 0 || r2 == 0 {
		return
	}
	cosT = dot(vec1, vec2) / (r1 * r2)
	if cosT > 1 {
		cosT = 1
	}
	if cosT < -1 {
		cosT = -1
	}
	theta = math.Acos(cosT)
	sinT = math.Sqrt(1 - cosT*cosT)
	return
}

func (bondBendForm) Energy(p fun.Prms, t Tuple) (float64, error) {
	k := prmVal(p, "k", 0)
	theta0 := prmVal(p, "theta0", 0)
	_, _, _, _, _, _, theta := bendGeometry(t)
	d := theta - theta0
	return 0.5 * k * d * d, nil
}

func (bondBendForm) Forces(p fun.Prms, t Tuple) (float64, [][3]float64, error) {
	k := prmVal(p, "k", 0)
	theta0 := prmVal(p, "theta0", 0)
	vec1, vec2, r1, r2, cosT, sinT, theta := bendGeometry(t)
	d := theta - theta0
	energy := 0.5 * k * d * d
	dEdTheta := k * d

	var dThetaDVec1, dThetaDVec2 [3]float64
	if sinT > 1e-12 {
		for a := 0; a < 3; a++ {
			dThetaDVec1[a] = -1 / sinT * (vec2[a]/(r1*r2) - cosT*vec1[a]/(r1*r1))
			dThetaDVec2[a] = -1 / sinT * (vec1[a]/(r1*r2) - cosT*vec2[a]/(r2*r2))
		}
	}

	var fj, fk, fi [3]float64
	for a := 0; a < 3; a++ {
		fj[a] = -dEdTheta * dThetaDVec1[a]
		fk[a] = -dEdTheta * dThetaDVec2[a]
		fi[a] = -(fj[a] + fk[a])
	}
	return energy, [][3]float64{fj, fi, fk}, nil
}

func (bondBendForm) Electronegativity(p fun.Prms, t Tuple) ([]float64, error) {
	return make([]float64, 3), nil
}
