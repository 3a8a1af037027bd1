// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import (
	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/forms"
)

// twoBody accumulates every 2-body potential targeting the canonical pair
// (ai, aj) (the design).
func (d *Driver) twoBody(kind Kind, ai, aj *atom.Atom, sep [3]float64, dist float64, res *Result) error {
	dir := unit(sep, dist)
	for _, idx := range ai.PotentialIndices {
		rec := d.Potentials.Records[idx]
		if rec.NumTargets != 2 || !rec.Targets[1].Matches(aj) || dist >= rec.HardCutoff {
			continue
		}
		form, ok := d.Catalog.Potential(rec.FormID)
		if !ok {
			return internalErr("potential form %q not in catalog", rec.FormID)
		}
		fs, dfs, err := forms.Smoothen(dist, rec.SoftCutoff, rec.HardCutoff)
		if err != nil {
			return err
		}
		bi, err := d.groupFactor(rec.BOFGroupID, ai.Index)
		if err != nil {
			return err
		}
		bj, err := d.groupFactor(rec.BOFGroupID, aj.Index)
		if err != nil {
			return err
		}
		weight := (bi + bj) / 2
		tup := forms.Tuple{Atoms: []*atom.Atom{ai, aj}, Seps: [][3]float64{sep}, Dists: []float64{dist}}

		switch kind {
		case Energy:
			e, err := form.Energy(rec.Params, tup)
			if err != nil {
				return err
			}
			if err := checkFinite("2-body energy", e); err != nil {
				return err
			}
			res.Energy += e * fs * weight

		case Electronegativity:
			chi, err := form.Electronegativity(rec.Params, tup)
			if err != nil {
				return err
			}
			res.Electronegativity[ai.Index-1] += chi[0] * fs * weight
			res.Electronegativity[aj.Index-1] += chi[1] * fs * weight

		case Forces:
			e, f, err := form.Forces(rec.Params, tup)
			if err != nil {
				return err
			}
			if err := checkFinite("2-body energy", e); err != nil {
				return err
			}
			res.Energy += e * fs * weight

			gradFsJ := scale(dir, dfs)
			gradFsI := scale(dir, -dfs)
			contribI := scale(sub3(scale(f[0], fs), scale(gradFsI, e)), weight)
			contribJ := scale(sub3(scale(f[1], fs), scale(gradFsJ, e)), weight)
			addForce(res.Forces, ai.Index, contribI)
			addForce(res.Forces, aj.Index, contribJ)
			voigtAdd(&res.Stress, sep, contribJ)

			if rec.BOFGroupID != 0 {
				gi, _, err := gradForFactorCached(d, rec.BOFGroupID, ai.Index)
				if err != nil {
					return err
				}
				gj, _, err := gradForFactorCached(d, rec.BOFGroupID, aj.Index)
				if err != nil {
					return err
				}
				ef := e * fs
				for alpha, g := range gi {
					addForce(res.Forces, alpha, scale(g, -0.5*ef))
				}
				for alpha, g := range gj {
					addForce(res.Forces, alpha, scale(g, -0.5*ef))
				}
			}
		}
	}
	return nil
}
