// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import (
	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/forms"
)

// oneBody accumulates every 1-body potential targeting ai (the design).
func (d *Driver) oneBody(kind Kind, ai *atom.Atom, res *Result) error {
	tup := forms.Tuple{Atoms: []*atom.Atom{ai}}
	for _, idx := range ai.PotentialIndices {
		rec := d.Potentials.Records[idx]
		if rec.NumTargets != 1 {
			continue
		}
		form, ok := d.Catalog.Potential(rec.FormID)
		if !ok {
			return internalErr("potential form %q not in catalog", rec.FormID)
		}
		b, err := d.groupFactor(rec.BOFGroupID, ai.Index)
		if err != nil {
			return err
		}

		switch kind {
		case Energy:
			e, err := form.Energy(rec.Params, tup)
			if err != nil {
				return err
			}
			if err := checkFinite("1-body energy", e); err != nil {
				return err
			}
			res.Energy += e * b

		case Electronegativity:
			chi, err := form.Electronegativity(rec.Params, tup)
			if err != nil {
				return err
			}
			res.Electronegativity[ai.Index-1] += chi[0] * b

		case Forces:
			v, f, err := form.Forces(rec.Params, tup)
			if err != nil {
				return err
			}
			if err := checkFinite("1-body energy", v); err != nil {
				return err
			}
			res.Energy += v * b
			addForce(res.Forces, ai.Index, scale(f[0], b))

			if rec.BOFGroupID != 0 {
				grads, _, err := gradForFactorCached(d, rec.BOFGroupID, ai.Index)
				if err != nil {
					return err
				}
				for alpha, g := range grads {
					addForce(res.Forces, alpha, scale(g, -v))
				}
			}
		}
	}
	return nil
}

func scale(v [3]float64, s float64) [3]float64 {
	return [3]float64{v[0] * s, v[1] * s, v[2] * s}
}
