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

// fourBody accumulates every 4-body potential targeting a canonical
// quadruplet extending the triplet rooted at (ai, aj) (the design). The
// fourth atom is never the chain's first atom, nor the middle atom reached
// back along the same bond (neighbor.ExtendTripletToQuadruplets enforces
// this).
func (d *Driver) fourBody(kind Kind, ai, aj *atom.Atom, offIJ [3]int, res *Result) error {
	for _, ext := range neighbor.ExtendPairToTriplets(d.Atoms, ai.Index, aj.Index, offIJ) {
		ak := d.Atoms.Get(ext.K)
		var first, mid, last *atom.Atom
		var offFirstMid, offMidLast [3]int
		if ext.CenterIsI {
			first, mid, last = aj, ai, ak
			offFirstMid = neighbor.Negate(offIJ)
			offMidLast = ext.ChainOffset
		} else {
			first, mid, last = ai, aj, ak
			offFirstMid = offIJ
			offMidLast = ext.ChainOffset
		}
		for _, qext := range neighbor.ExtendTripletToQuadruplets(d.Atoms, first.Index, mid.Index, last.Index, offMidLast) {
			al := d.Atoms.Get(qext.L)
			if err := d.fourBodyQuadruplet(kind, first, mid, last, al, offFirstMid, offMidLast, qext.ChainOffset, res); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Driver) fourBodyQuadruplet(kind Kind, a0, a1, a2, a3 *atom.Atom, off01, off12, off23 [3]int, res *Result) error {
	sep0 := d.Cell.Separation(a0.Position, a1.Position, off01)
	sep1 := d.Cell.Separation(a1.Position, a2.Position, off12)
	sep2 := d.Cell.Separation(a2.Position, a3.Position, off23)
	d0, d1, d2 := geometry.Norm(sep0), geometry.Norm(sep1), geometry.Norm(sep2)
	dir0, dir1, dir2 := unit(sep0, d0), unit(sep1, d1), unit(sep2, d2)

	for _, idx := range a0.PotentialIndices {
		rec := d.Potentials.Records[idx]
		if rec.NumTargets != 4 || !rec.Targets[1].Matches(a1) || !rec.Targets[2].Matches(a2) || !rec.Targets[3].Matches(a3) {
			continue
		}
		if d0 >= rec.HardCutoff || d1 >= rec.HardCutoff || d2 >= rec.HardCutoff {
			continue
		}
		form, ok := d.Catalog.Potential(rec.FormID)
		if !ok {
			return internalErr("potential form %q not in catalog", rec.FormID)
		}
		fs0, dfs0, err := forms.Smoothen(d0, rec.SoftCutoff, rec.HardCutoff)
		if err != nil {
			return err
		}
		fs1, dfs1, err := forms.Smoothen(d1, rec.SoftCutoff, rec.HardCutoff)
		if err != nil {
			return err
		}
		fs2, dfs2, err := forms.Smoothen(d2, rec.SoftCutoff, rec.HardCutoff)
		if err != nil {
			return err
		}
		fsTotal := fs0 * fs1 * fs2

		b0, err := d.groupFactor(rec.BOFGroupID, a0.Index)
		if err != nil {
			return err
		}
		b1, err := d.groupFactor(rec.BOFGroupID, a1.Index)
		if err != nil {
			return err
		}
		b2, err := d.groupFactor(rec.BOFGroupID, a2.Index)
		if err != nil {
			return err
		}
		b3, err := d.groupFactor(rec.BOFGroupID, a3.Index)
		if err != nil {
			return err
		}
		weight := (b0 + b1 + b2 + b3) / 4

		tup := forms.Tuple{
			Atoms: []*atom.Atom{a0, a1, a2, a3},
			Seps:  [][3]float64{sep0, sep1, sep2},
			Dists: []float64{d0, d1, d2},
		}

		switch kind {
		case Energy:
			e, err := form.Energy(rec.Params, tup)
			if err != nil {
				return err
			}
			if err := checkFinite("4-body energy", e); err != nil {
				return err
			}
			res.Energy += e * fsTotal * weight

		case Electronegativity:
			chi, err := form.Electronegativity(rec.Params, tup)
			if err != nil {
				return err
			}
			res.Electronegativity[a0.Index-1] += chi[0] * fsTotal * weight
			res.Electronegativity[a1.Index-1] += chi[1] * fsTotal * weight
			res.Electronegativity[a2.Index-1] += chi[2] * fsTotal * weight
			res.Electronegativity[a3.Index-1] += chi[3] * fsTotal * weight

		case Forces:
			e, f, err := form.Forces(rec.Params, tup)
			if err != nil {
				return err
			}
			if err := checkFinite("4-body energy", e); err != nil {
				return err
			}
			res.Energy += e * fsTotal * weight

			grad0 := scale(dir0, -dfs0*fs1*fs2)
			grad1 := sub3(scale(dir0, dfs0*fs1*fs2), scale(dir1, dfs1*fs0*fs2))
			grad2 := sub3(scale(dir1, dfs1*fs0*fs2), scale(dir2, dfs2*fs0*fs1))
			grad3 := scale(dir2, dfs2*fs0*fs1)

			contrib0 := scale(sub3(scale(f[0], fsTotal), scale(grad0, e)), weight)
			contrib1 := scale(sub3(scale(f[1], fsTotal), scale(grad1, e)), weight)
			contrib2 := scale(sub3(scale(f[2], fsTotal), scale(grad2, e)), weight)
			contrib3 := scale(sub3(scale(f[3], fsTotal), scale(grad3, e)), weight)

			addForce(res.Forces, a0.Index, contrib0)
			addForce(res.Forces, a1.Index, contrib1)
			addForce(res.Forces, a2.Index, contrib2)
			addForce(res.Forces, a3.Index, contrib3)

			r12 := sep0
			r13 := add3(sep0, sep1)
			r14 := add3(r13, sep2)
			voigtAdd(&res.Stress, r12, contrib1)
			voigtAdd(&res.Stress, r13, contrib2)
			voigtAdd(&res.Stress, r14, contrib3)

			if rec.BOFGroupID != 0 {
				ef := e * fsTotal
				for _, center := range []int{a0.Index, a1.Index, a2.Index, a3.Index} {
					g, _, err := gradForFactorCached(d, rec.BOFGroupID, center)
					if err != nil {
						return err
					}
					for alpha, gr := range g {
						addForce(res.Forces, alpha, scale(gr, -ef/4))
					}
				}
			}
		}
	}
	return nil
}
