// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package atom holds the atom data model: stable indices, mutable physical
// state, and the per-atom side-tables (neighbors, potential/BOF targeting)
// that the rest of the core attaches to each atom.
package atom

// Atom holds one atom's identity and mutable physical state.
//
// Index numbering is dense from 1 to N and never changes over a run; Index
// is the atom's position (Index-1) in the owning Set's slices as well, kept
// alongside the value for convenience when an Atom is passed around alone.
type Atom struct {

	// identity (immutable over a run)
	Index   int    // dense index, 1..N
	Element string // chemical label, e.g. "Si", "O", "Cu"
	Tag     int    // user tag, e.g. group/region marker

	// physical state (mutable between calculation steps)
	Mass     float64    // atomic mass
	Charge   float64    // partial charge
	Position [3]float64 // absolute (unwrapped) position
	Momentum [3]float64 // momentum, not touched by this core but carried for the caller

	// populated by registration/neighbor construction; read-only during a step
	Neighbors        []Neighbor // (neighbor index, offset) pairs, see neighbor package
	PotentialIndices []int      // indices into the potential registry that target this atom in position 1
	BOFIndices       []int      // indices into the BOF registry that target this atom in position 1
	Subcell          [3]int     // subcell grid coordinate, set by the neighbor builder

	// derived once at registration time (see the design): the largest
	// hard cutoff among potentials/BOFs targeting this atom, used to size
	// the neighbor search per atom instead of a single global cutoff.
	EffectiveCutoff float64
}

// Neighbor is one entry of an atom's neighbor list: the neighbor's atom
// index and the integer triple of supercell-vector multiples added to the
// neighbor's wrapped position to reach the minimum-image location relative
// to the owning atom.
type Neighbor struct {
	Index  int
	Offset [3]int
}

// Set owns the dense atom array for one CoreState. Index i (1-based) maps to
// slice position i-1; a Set never reorders atoms, only mutates fields.
type Set struct {
	Atoms []*Atom
}

// NewSet allocates a Set with n atoms, indices 1..n, zeroed physical state.
func NewSet(n int) *Set {
	s := &Set{Atoms: make([]*Atom, n)}
	for i := 0; i < n; i++ {
		s.Atoms[i] = &Atom{Index: i + 1}
	}
	return s
}

// N returns the number of atoms.
func (s *Set) N() int { return len(s.Atoms) }

// Get returns the atom with the given 1-based index.
func (s *Set) Get(index int) *Atom { return s.Atoms[index-1] }

// UpdateCoordinates overwrites every atom's position from pos, ordered by
// 1-based index (pos[i-1] is atom i's new position).
func (s *Set) UpdateCoordinates(pos [][3]float64) {
	for i, a := range s.Atoms {
		a.Position = pos[i]
	}
}

// UpdateCharges overwrites every atom's charge from q, ordered by 1-based
// index (q[i-1] is atom i's new charge).
func (s *Set) UpdateCharges(q []float64) {
	for i, a := range s.Atoms {
		a.Charge = q[i]
	}
}

// ClearTargeting drops the potential/BOF index side-tables on every atom;
// they stay empty until the registries' AssignIndices runs again.
func (s *Set) ClearTargeting() {
	for _, a := range s.Atoms {
		a.PotentialIndices = a.PotentialIndices[:0]
		a.BOFIndices = a.BOFIndices[:0]
	}
}

// ClearNeighbors drops every atom's neighbor list; called when geometry
// changes invalidate the spatial partitioning.
func (s *Set) ClearNeighbors() {
	for _, a := range s.Atoms {
		a.Neighbors = nil
	}
}
