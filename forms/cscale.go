// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forms

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// cScaleForm is a logistic bond-order post-processing scaler:
// deltaN = S - C*N
// b = epsilon * deltaN / (1 + exp(gamma*deltaN))
// Reference post-processor behind the design scenario S4.
type cScaleForm struct{}

func (cScaleForm) Apply(p fun.Prms, sum float64) (float64, error) {
	eps := prmVal(p, "epsilon", 0)
	n := prmVal(p, "N", 0)
	c := prmVal(p, "C", 1)
	gamma := prmVal(p, "gamma", 1)
	dn := sum - c*n
	return eps * dn / (1 + math.Exp(gamma*dn)), nil
}

func (cScaleForm) Deriv(p fun.Prms, sum float64) (float64, error) {
	eps := prmVal(p, "epsilon", 0)
	n := prmVal(p, "N", 0)
	c := prmVal(p, "C", 1)
	gamma := prmVal(p, "gamma", 1)
	dn := sum - c*n
	expg := math.Exp(gamma * dn)
	denom := 1 + expg
	return eps * (denom - dn*gamma*expg) / (denom * denom), nil
}
