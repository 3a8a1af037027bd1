// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forms

import "github.com/cpmech/gosl/fun"

// constantForm is a 1-body potential contributing a fixed energy "V" per
// targeted atom, zero force, and zero electronegativity — the reference
// form behind the design scenarios S1 and S4.
type constantForm struct{}

func (constantForm) NumTargets() int { return 1 }

func (constantForm) Energy(p fun.Prms, t Tuple) (float64, error) {
	return prmVal(p, "V", 0), nil
}

func (constantForm) Forces(p fun.Prms, t Tuple) (float64, [][3]float64, error) {
	e, _ := constantForm{}.Energy(p, t)
	return e, make([][3]float64, len(t.Atoms)), nil
}

func (constantForm) Electronegativity(p fun.Prms, t Tuple) ([]float64, error) {
	return make([]float64, len(t.Atoms)), nil
}
