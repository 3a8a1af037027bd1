// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bof is the two-level bond-order-factor cache: per-atom raw sums
// and post-processed scaled factors keyed by group, plus a small
// fixed-size gradient/virial slot table keyed by (group, position-in-tuple).
package bof

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

const numSlots = 4 // slot in {1,2,3,4}, the position of the differentiated atom inside the interacting n-tuple

// gradSlot holds the most recently computed gradient/virial for one
// (group, position) pair: which atom it was computed with respect to, the
// per-atom gradient vectors it produced, and the Voigt virial contribution.
type gradSlot struct {
	valid     bool
	center    int // atom index the slot's gradients are with respect to; 0 means empty
	gradients map[int][3]float64
	virial    [6]float64
}

// Cache is the BOF sum/factor/gradient cache owned by one calculation step
// (the design "The BOF cache is owned by the loop driver"). It is not
// reentrant: one Cache instance backs one loop invocation at a time.
type Cache struct {
	nAtoms  int
	groups  []int       // distinct group ids, first-registration order
	slotOf  map[int]int // group id -> column in sums/factors
	sums    [][]float64 // [atom][groupSlot] raw S_i
	factors [][]float64 // [atom][groupSlot] scaled b_i
	haveSum [][]bool    // whether sums[atom][groupSlot] has been filled this step
	slots   map[int][numSlots]gradSlot
}

// Allocate sizes the cache for nAtoms atoms and the given set of group ids
// (the design's `allocate_bond_order_storage(n_atoms, n_groups, n_factors)`).
// Group ids need not be contiguous or small; Allocate builds the id->slot
// map once here.
func Allocate(nAtoms int, groupIDs []int) (*Cache, error) {
	if nAtoms <= 0 {
		return nil, chk.Err("bof: number of atoms must be positive, got %v", nAtoms)
	}
	c := &Cache{
		nAtoms: nAtoms,
		groups: append([]int(nil), groupIDs...),
		slotOf: make(map[int]int, len(groupIDs)),
		slots:  make(map[int][numSlots]gradSlot, len(groupIDs)),
	}
	for i, g := range groupIDs {
		c.slotOf[g] = i
	}
	c.sums = la.MatAlloc(nAtoms, len(groupIDs))
	c.factors = la.MatAlloc(nAtoms, len(groupIDs))
	c.haveSum = make([][]bool, nAtoms)
	for i := range c.haveSum {
		c.haveSum[i] = make([]bool, len(groupIDs))
	}
	for _, g := range groupIDs {
		c.slots[g] = [numSlots]gradSlot{}
	}
	return c, nil
}

// EmptyStorage clears every sum and factor entry (the design's
// `empty_bond_order_storage`, called at the start of every step before the
// fill phase).
func (c *Cache) EmptyStorage() {
	for i := range c.sums {
		for j := range c.sums[i] {
			c.sums[i][j] = 0
			c.factors[i][j] = 0
			c.haveSum[i][j] = false
		}
	}
}

// EmptyGradientStorage clears the gradient/virial slots. With slot == 0 all
// four positions of every group are cleared (the design's
// `empty_bond_order_gradient_storage(slot?)`, the no-argument form used at
// the outer-atom-iteration boundary, the design "on the outer atom
// iteration boundary all slots are cleared"); with slot in 1..4 only that
// position is cleared across every group (used "on each change of the
// second-position atom, slot 2 is cleared").
func (c *Cache) EmptyGradientStorage(slot int) {
	for g := range c.slots {
		s := c.slots[g]
		if slot == 0 {
			s = [numSlots]gradSlot{}
		} else {
			s[slot-1] = gradSlot{}
		}
		c.slots[g] = s
	}
}

// hasGroup reports whether group is a slot this cache was allocated for.
func (c *Cache) hasGroup(group int) bool {
	_, ok := c.slotOf[group]
	return ok
}

// SetSum records atom i's raw sum for group, marking it filled.
func (c *Cache) SetSum(atomIdx, group int, value float64) error {
	s, ok := c.slotOf[group]
	if !ok {
		return chk.Err("bof: internal: group %v was not allocated", group)
	}
	c.sums[atomIdx-1][s] = value
	c.haveSum[atomIdx-1][s] = true
	return nil
}

// AddSum accumulates a contribution into atom i's raw sum for group.
func (c *Cache) AddSum(atomIdx, group int, contribution float64) error {
	s, ok := c.slotOf[group]
	if !ok {
		return chk.Err("bof: internal: group %v was not allocated", group)
	}
	c.sums[atomIdx-1][s] += contribution
	c.haveSum[atomIdx-1][s] = true
	return nil
}

// Sum returns atom i's raw sum for group, and whether it has been filled
// (invariant (a) of the design: the scaled factor is defined only if the
// sum is).
func (c *Cache) Sum(atomIdx, group int) (float64, bool) {
	s, ok := c.slotOf[group]
	if !ok {
		return 0, false
	}
	return c.sums[atomIdx-1][s], c.haveSum[atomIdx-1][s]
}

// SetFactor records atom i's post-processed scaled factor for group.
func (c *Cache) SetFactor(atomIdx, group int, value float64) error {
	s, ok := c.slotOf[group]
	if !ok {
		return chk.Err("bof: internal: group %v was not allocated", group)
	}
	if !c.haveSum[atomIdx-1][s] {
		return chk.Err("bof: internal: factor set before sum for atom %v group %v", atomIdx, group)
	}
	c.factors[atomIdx-1][s] = value
	return nil
}

// Factor returns atom i's scaled factor b_i for group. A group of 0 always
// returns 1 (the design "fetch b_i for its group (if any, else 1)").
func (c *Cache) Factor(atomIdx, group int) (float64, error) {
	if group == 0 {
		return 1, nil
	}
	s, ok := c.slotOf[group]
	if !ok {
		return 0, chk.Err("bof: internal: group %v was not allocated", group)
	}
	if !c.haveSum[atomIdx-1][s] {
		return 0, chk.Err("bof: internal: cache miss reading factor for atom %v group %v after fill", atomIdx, group)
	}
	return c.factors[atomIdx-1][s], nil
}

// GroupIDs returns the group ids this cache was allocated for.
func (c *Cache) GroupIDs() []int { return c.groups }

// GradientHit looks up a cached (group, slot) gradient table for center,
// returning ok=false on a miss (the design "Cache hit returns stored
// values in O(N); miss recomputes, fills the slot, and returns").
func (c *Cache) GradientHit(group, slot, center int) (grads map[int][3]float64, virial [6]float64, ok bool) {
	s, found := c.slots[group]
	if !found {
		return nil, [6]float64{}, false
	}
	entry := s[slot-1]
	if !entry.valid || entry.center != center {
		return nil, [6]float64{}, false
	}
	return entry.gradients, entry.virial, true
}

// GradientFill stores a freshly computed (group, slot) gradient table,
// evicting whatever the slot held before.
func (c *Cache) GradientFill(group, slot, center int, grads map[int][3]float64, virial [6]float64) {
	s, ok := c.slots[group]
	if !ok {
		s = [numSlots]gradSlot{}
	}
	s[slot-1] = gradSlot{valid: true, center: center, gradients: grads, virial: virial}
	c.slots[group] = s
}
