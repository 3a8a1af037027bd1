// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bof

import (
	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/forms"
	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/atomint/registry"
	"github.com/cpmech/gosl/chk"
)

// voigtAdd accumulates r⊗f into a 6-component Voigt-order virial (xx, yy,
// zz, yz, xz, xy), the same accumulation order used throughout this core.
func voigtAdd(v *[6]float64, r, f [3]float64) {
	v[0] += r[0] * f[0]
	v[1] += r[1] * f[1]
	v[2] += r[2] * f[2]
	v[3] += 0.5 * (r[1]*f[2] + r[2]*f[1])
	v[4] += 0.5 * (r[0]*f[2] + r[2]*f[0])
	v[5] += 0.5 * (r[0]*f[1] + r[1]*f[0])
}

// GradForMovingAtom computes ∇_α S_i for every atom i affected when atom
// alpha is displaced (the design "per-moving-atom mode"), for the 2-body
// BOF records of group. Checks the gradient cache at (group, slot 1) first.
func GradForMovingAtom(c *Cache, atoms *atom.Set, cell geometry.Cell, reg *registry.BOFRegistry, cat *forms.Catalog, group, alpha int) (map[int][3]float64, [6]float64, error) {
	if grads, virial, ok := c.GradientHit(group, 1, alpha); ok {
		return grads, virial, nil
	}
	grads := map[int][3]float64{}
	var virial [6]float64
	a := atoms.Get(alpha)
	for _, nb := range a.Neighbors {
		other := nb.Index
		ai, aj := a, atoms.Get(other)
		sep := cell.Separation(ai.Position, aj.Position, nb.Offset)
		dist := geometry.Norm(sep)
		for _, recIdx := range matchingRecords(reg, c, 2) {
			rec := reg.Records[recIdx]
			if rec.GroupID != group {
				continue
			}
			if !rec.Targets[0].Matches(ai) || !rec.Targets[1].Matches(aj) || dist >= rec.HardCutoff {
				continue
			}
			form, ok := cat.BOF(rec.FormID)
			if !ok {
				return nil, virial, chk.Err("bof: internal: form %q not in catalog", rec.FormID)
			}
			tup := forms.Tuple{Atoms: []*atom.Atom{ai, aj}, Seps: [][3]float64{sep}, Dists: []float64{dist}}
			g, err := form.Gradient(rec.ParamsByBody[1], tup)
			if err != nil {
				return nil, virial, err
			}
			// ai is alpha in this tuple ordering (position 0), so g[0] is
			// the own-position derivative alpha contributes to S_alpha.
			dAlpha := g[0]
			// by the symmetric-form assumption (see forms.BOFForm.Gradient
			// doc), this same value is also d(S_other)/d(pos_alpha).
			accum := grads[alpha]
			accum[0] += dAlpha[0]
			accum[1] += dAlpha[1]
			accum[2] += dAlpha[2]
			grads[alpha] = accum
			accum = grads[other]
			accum[0] += dAlpha[0]
			accum[1] += dAlpha[1]
			accum[2] += dAlpha[2]
			grads[other] = accum
			voigtAdd(&virial, sep, dAlpha)
		}
	}
	c.GradientFill(group, 1, alpha, grads, virial)
	return grads, virial, nil
}

// GradForFactor computes ∇_α b_i for every atom α, for a fixed center atom
// i and group (the design "per-factor mode"): it walks the same tuples as
// GradForMovingAtom rooted at i to get ∇_α S_i, then applies the chain rule
// through the post-processor's derivative, f'_i(S_i), via
// post_process_bond_order_gradient. If no post-processor matches, b_i = S_i
// so the gradient passes through unscaled.
func GradForFactor(c *Cache, atoms *atom.Set, cell geometry.Cell, reg *registry.BOFRegistry, cat *forms.Catalog, group, center int) (map[int][3]float64, [6]float64, error) {
	raw, virial, err := GradForMovingAtom(c, atoms, cell, reg, cat, group, center)
	if err != nil {
		return nil, virial, err
	}
	// raw[alpha] holds ∇_center S_alpha; for the symmetric pair form
	// ∇_alpha S_center is its negative when alpha != center.
	perFactor := make(map[int][3]float64, len(raw))
	for atomIdx, g := range raw {
		if atomIdx != center {
			g = [3]float64{-g[0], -g[1], -g[2]}
		}
		perFactor[atomIdx] = g
	}
	ai := atoms.Get(center)
	rec, found := reg.PostProcessor(group, ai.Element)
	if !found {
		return perFactor, virial, nil
	}
	pp, ok := cat.PostProcessorByTag(rec.FormID)
	if !ok {
		return nil, virial, chk.Err("bof: internal: post-processor form %q not in catalog", rec.FormID)
	}
	sum, have := c.Sum(center, group)
	if !have {
		return nil, virial, chk.Err("bof: internal: gradient requested before sum fill for atom %v group %v", center, group)
	}
	deriv, err := pp.Deriv(rec.ParamsByBody[0], sum)
	if err != nil {
		return nil, virial, err
	}
	scaled := make(map[int][3]float64, len(perFactor))
	for atomIdx, g := range perFactor {
		scaled[atomIdx] = [3]float64{g[0] * deriv, g[1] * deriv, g[2] * deriv}
	}
	for k := range virial {
		virial[k] *= deriv
	}
	c.GradientFill(group, 2, center, scaled, virial)
	return scaled, virial, nil
}
