// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import (
	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/forms"
	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/atomint/neighbor"
)

// threeBody accumulates every 3-body potential targeting a canonical
// triplet extending the pair (ai, aj) (the design). Canonical triplets
// are enumerated identically to bof.fillTriplets: ai's neighbors give
// triplets centered on ai, aj's neighbors give triplets centered on aj.
func (d *Driver) threeBody(kind Kind, ai, aj *atom.Atom, offIJ [3]int, res *Result) error {
	for _, ext := range neighbor.ExtendPairToTriplets(d.Atoms, ai.Index, aj.Index, offIJ) {
		ak := d.Atoms.Get(ext.K)
		var chain [3]*atom.Atom
		var offFirstMid [3]int
		if ext.CenterIsI {
			chain = [3]*atom.Atom{aj, ai, ak}
			offFirstMid = neighbor.Negate(offIJ)
		} else {
			chain = [3]*atom.Atom{ai, aj, ak}
			offFirstMid = offIJ
		}
		if err := d.threeBodyTriplet(kind, chain[0], chain[1], chain[2], offFirstMid, ext.ChainOffset, res); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) threeBodyTriplet(kind Kind, a0, center, a2 *atom.Atom, off01, off12 [3]int, res *Result) error {
	sep0 := d.Cell.Separation(a0.Position, center.Position, off01)
	sep1 := d.Cell.Separation(center.Position, a2.Position, off12)
	d1, d2 := geometry.Norm(sep0), geometry.Norm(sep1)
	dir1 := unit(sep0, d1)
	dir2 := unit(sep1, d2)

	for _, idx := range a0.PotentialIndices {
		rec := d.Potentials.Records[idx]
		if rec.NumTargets != 3 || !rec.Targets[1].Matches(center) || !rec.Targets[2].Matches(a2) {
			continue
		}
		if d1 >= rec.HardCutoff || d2 >= rec.HardCutoff {
			continue
		}
		form, ok := d.Catalog.Potential(rec.FormID)
		if !ok {
			return internalErr("potential form %q not in catalog", rec.FormID)
		}
		fs1, dfs1, err := forms.Smoothen(d1, rec.SoftCutoff, rec.HardCutoff)
		if err != nil {
			return err
		}
		fs2, dfs2, err := forms.Smoothen(d2, rec.SoftCutoff, rec.HardCutoff)
		if err != nil {
			return err
		}
		fsTotal := fs1 * fs2

		b0, err := d.groupFactor(rec.BOFGroupID, a0.Index)
		if err != nil {
			return err
		}
		bc, err := d.groupFactor(rec.BOFGroupID, center.Index)
		if err != nil {
			return err
		}
		b2, err := d.groupFactor(rec.BOFGroupID, a2.Index)
		if err != nil {
			return err
		}
		weight := (b0 + bc + b2) / 3

		tup := forms.Tuple{
			Atoms: []*atom.Atom{a0, center, a2},
			Seps:  [][3]float64{sep0, sep1},
			Dists: []float64{d1, d2},
		}

		switch kind {
		case Energy:
			e, err := form.Energy(rec.Params, tup)
			if err != nil {
				return err
			}
			if err := checkFinite("3-body energy", e); err != nil {
				return err
			}
			res.Energy += e * fsTotal * weight

		case Electronegativity:
			chi, err := form.Electronegativity(rec.Params, tup)
			if err != nil {
				return err
			}
			res.Electronegativity[a0.Index-1] += chi[0] * fsTotal * weight
			res.Electronegativity[center.Index-1] += chi[1] * fsTotal * weight
			res.Electronegativity[a2.Index-1] += chi[2] * fsTotal * weight

		case Forces:
			e, f, err := form.Forces(rec.Params, tup)
			if err != nil {
				return err
			}
			if err := checkFinite("3-body energy", e); err != nil {
				return err
			}
			res.Energy += e * fsTotal * weight

			contrib0 := add3(scale(f[0], fsTotal), scale(dir1, e*fs2*dfs1))
			contribC := add3(add3(scale(f[1], fsTotal), scale(dir1, -e*fs2*dfs1)), scale(dir2, e*fs1*dfs2))
			contrib2 := add3(scale(f[2], fsTotal), scale(dir2, -e*fs1*dfs2))

			contrib0 = scale(contrib0, weight)
			contribC = scale(contribC, weight)
			contrib2 = scale(contrib2, weight)

			addForce(res.Forces, a0.Index, contrib0)
			addForce(res.Forces, center.Index, contribC)
			addForce(res.Forces, a2.Index, contrib2)

			sep13 := add3(sep0, sep1)
			voigtAdd(&res.Stress, sep0, contribC)
			voigtAdd(&res.Stress, sep13, contrib2)

			if rec.BOFGroupID != 0 {
				ef := e * fsTotal
				for _, center2 := range []int{a0.Index, center.Index, a2.Index} {
					g, _, err := gradForFactorCached(d, rec.BOFGroupID, center2)
					if err != nil {
						return err
					}
					for alpha, gr := range g {
						addForce(res.Forces, alpha, scale(gr, -ef/3))
					}
				}
			}
		}
	}
	return nil
}
