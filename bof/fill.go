// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bof

import (
	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/forms"
	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/atomint/neighbor"
	"github.com/cpmech/atomint/registry"
	"github.com/cpmech/gosl/chk"
)

// Fill walks every atom's neighbor list and accumulates the raw sums
// (the design "Contract") for every group this cache was allocated for,
// then post-processes each atom's sum into its scaled factor (the design's
// `fill_bond_order_storage`, step 3 of the lifecycle in the design). Call
// EmptyStorage first.
func Fill(c *Cache, atoms *atom.Set, cell geometry.Cell, reg *registry.BOFRegistry, cat *forms.Catalog) error {
	if err := fillPairs(c, atoms, cell, reg, cat); err != nil {
		return err
	}
	if err := fillTriplets(c, atoms, cell, reg, cat); err != nil {
		return err
	}
	if err := fillQuadruplets(c, atoms, cell, reg, cat); err != nil {
		return err
	}
	return postProcess(c, atoms, reg, cat)
}

// matchingRecords returns the indices of every BOFRecord in reg with the
// given body count belonging to a group this cache tracks. Unlike potential
// targeting (the design, precomputed per atom because position 1 is
// always the iterating atom), a BOF tuple's center can sit at any chain
// position (the design's triplet center is position 1 of 0..2, not
// position 0), so candidates are filtered by body count and group only
// here; per-position target filtering happens at each call site against
// the tuple's actual chain.
func matchingRecords(reg *registry.BOFRegistry, c *Cache, numTargets int) []int {
	var out []int
	for idx, rec := range reg.Records {
		if rec.NumTargets != numTargets {
			continue
		}
		if !c.hasGroup(rec.GroupID) {
			continue
		}
		out = append(out, idx)
	}
	return out
}

func fillPairs(c *Cache, atoms *atom.Set, cell geometry.Cell, reg *registry.BOFRegistry, cat *forms.Catalog) error {
	for _, a := range atoms.Atoms {
		i := a.Index
		for _, nb := range a.Neighbors {
			j := nb.Index
			if !neighbor.Pick(i, j, nb.Offset) {
				continue
			}
			b := atoms.Get(j)
			sep := cell.Separation(a.Position, b.Position, nb.Offset)
			dist := geometry.Norm(sep)
			for _, recIdx := range matchingRecords(reg, c, 2) {
				rec := reg.Records[recIdx]
				if !rec.Targets[0].Matches(a) || !rec.Targets[1].Matches(b) {
					continue
				}
				if dist >= rec.HardCutoff {
					continue
				}
				form, ok := cat.BOF(rec.FormID)
				if !ok {
					return chk.Err("bof: internal: form %q not in catalog", rec.FormID)
				}
				tup := forms.Tuple{Atoms: []*atom.Atom{a, b}, Seps: [][3]float64{sep}, Dists: []float64{dist}}
				contrib, err := form.Sum(rec.ParamsByBody[1], tup)
				if err != nil {
					return err
				}
				if err := c.AddSum(i, rec.GroupID, contrib[0]); err != nil {
					return err
				}
				if err := c.AddSum(j, rec.GroupID, contrib[1]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func fillTriplets(c *Cache, atoms *atom.Set, cell geometry.Cell, reg *registry.BOFRegistry, cat *forms.Catalog) error {
	anyTriplet := false
	for _, rec := range reg.Records {
		if rec.NumTargets == 3 {
			anyTriplet = true
			break
		}
	}
	if !anyTriplet {
		return nil
	}
	for _, a := range atoms.Atoms {
		i := a.Index
		for _, nb := range a.Neighbors {
			j := nb.Index
			if !neighbor.Pick(i, j, nb.Offset) {
				continue
			}
			for _, ext := range neighbor.ExtendPairToTriplets(atoms, i, j, nb.Offset) {
				var chain []*atom.Atom
				var seps [][3]float64
				var centerIdx int
				b := atoms.Get(j)
				k := atoms.Get(ext.K)
				if ext.CenterIsI {
					sepJI := cell.Separation(b.Position, a.Position, neighbor.Negate(nb.Offset))
					sepIK := cell.Separation(a.Position, k.Position, ext.ChainOffset)
					chain = []*atom.Atom{b, a, k}
					seps = [][3]float64{sepJI, sepIK}
					centerIdx = i
				} else {
					sepIJ := cell.Separation(a.Position, b.Position, nb.Offset)
					sepJK := cell.Separation(b.Position, k.Position, ext.ChainOffset)
					chain = []*atom.Atom{a, b, k}
					seps = [][3]float64{sepIJ, sepJK}
					centerIdx = j
				}
				center := atoms.Get(centerIdx)
				for _, recIdx := range matchingRecords(reg, c, 3) {
					rec := reg.Records[recIdx]
					if !rec.Targets[0].Matches(chain[0]) || !rec.Targets[1].Matches(center) || !rec.Targets[2].Matches(chain[2]) {
						continue
					}
					d1, d2 := geometry.Norm(seps[0]), geometry.Norm(seps[1])
					if d1 >= rec.HardCutoff || d2 >= rec.HardCutoff {
						continue
					}
					form, ok := cat.BOF(rec.FormID)
					if !ok {
						return chk.Err("bof: internal: form %q not in catalog", rec.FormID)
					}
					tup := forms.Tuple{Atoms: chain, Seps: seps, Dists: []float64{d1, d2}}
					contrib, err := form.Sum(rec.ParamsByBody[2], tup)
					if err != nil {
						return err
					}
					for pos, atm := range chain {
						if err := c.AddSum(atm.Index, rec.GroupID, contrib[pos]); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}

func fillQuadruplets(c *Cache, atoms *atom.Set, cell geometry.Cell, reg *registry.BOFRegistry, cat *forms.Catalog) error {
	anyQuad := false
	for _, rec := range reg.Records {
		if rec.NumTargets == 4 {
			anyQuad = true
			break
		}
	}
	if !anyQuad {
		return nil
	}
	for _, a := range atoms.Atoms {
		i := a.Index
		for _, nb := range a.Neighbors {
			j := nb.Index
			if !neighbor.Pick(i, j, nb.Offset) {
				continue
			}
			for _, ext := range neighbor.ExtendPairToTriplets(atoms, i, j, nb.Offset) {
				var first, mid, last *atom.Atom
				var offFirstMid, offMidLast [3]int
				b := atoms.Get(j)
				k := atoms.Get(ext.K)
				if ext.CenterIsI {
					first, mid, last = b, a, k
					offFirstMid = neighbor.Negate(nb.Offset)
					offMidLast = ext.ChainOffset
				} else {
					first, mid, last = a, b, k
					offFirstMid = nb.Offset
					offMidLast = ext.ChainOffset
				}
				for _, qext := range neighbor.ExtendTripletToQuadruplets(atoms, first.Index, mid.Index, last.Index, offMidLast) {
					l := atoms.Get(qext.L)
					chain := []*atom.Atom{first, mid, last, l}
					seps := [][3]float64{
						cell.Separation(first.Position, mid.Position, offFirstMid),
						cell.Separation(mid.Position, last.Position, offMidLast),
						cell.Separation(last.Position, l.Position, qext.ChainOffset),
					}
					d := [3]float64{geometry.Norm(seps[0]), geometry.Norm(seps[1]), geometry.Norm(seps[2])}
					for _, recIdx := range matchingRecords(reg, c, 4) {
						rec := reg.Records[recIdx]
						if !rec.Targets[0].Matches(chain[0]) || !rec.Targets[1].Matches(mid) ||
							!rec.Targets[2].Matches(last) || !rec.Targets[3].Matches(chain[3]) {
							continue
						}
						if d[0] >= rec.HardCutoff || d[1] >= rec.HardCutoff || d[2] >= rec.HardCutoff {
							continue
						}
						form, ok := cat.BOF(rec.FormID)
						if !ok {
							return chk.Err("bof: internal: form %q not in catalog", rec.FormID)
						}
						tup := forms.Tuple{Atoms: chain, Seps: seps, Dists: d[:]}
						contrib, err := form.Sum(rec.ParamsByBody[3], tup)
						if err != nil {
							return err
						}
						for pos, atm := range chain {
							if err := c.AddSum(atm.Index, rec.GroupID, contrib[pos]); err != nil {
								return err
							}
						}
					}
				}
			}
		}
	}
	return nil
}

// postProcess computes each atom's scaled factor b_i = f_i(S_i) for every
// group the cache tracks (the design "Contract" and post-processing
// selection rule, the design decision 3: first matching record in
// registration order).
func postProcess(c *Cache, atoms *atom.Set, reg *registry.BOFRegistry, cat *forms.Catalog) error {
	for _, a := range atoms.Atoms {
		for _, group := range c.GroupIDs() {
			sum, have := c.Sum(a.Index, group)
			if !have {
				continue
			}
			rec, found := reg.PostProcessor(group, a.Element)
			if !found {
				if err := c.SetFactor(a.Index, group, sum); err != nil {
					return err
				}
				continue
			}
			pp, ok := cat.PostProcessorByTag(rec.FormID)
			if !ok {
				return chk.Err("bof: internal: post-processor form %q not in catalog", rec.FormID)
			}
			b, err := pp.Apply(rec.ParamsByBody[0], sum)
			if err != nil {
				return err
			}
			if err := c.SetFactor(a.Index, group, b); err != nil {
				return err
			}
		}
	}
	return nil
}
