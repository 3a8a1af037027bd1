// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forms

import "github.com/cpmech/gosl/fun"

// prmVal looks a named parameter up in a fun.Prms vector, falling back to
// def when absent — the same linear scan msolid's Init methods use over
// fun.Prms ("for _, p := range prms { switch p.N { ... } }"), wrapped once
// so every form doesn't repeat the switch boilerplate.
func prmVal(p fun.Prms, name string, def float64) float64 {
	for _, prm := range p {
		if prm.N == name {
			return prm.V
		}
	}
	return def
}
