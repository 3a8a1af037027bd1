// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neighbor

import (
	"math"

	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/gosl/chk"
)

// cellLink is one entry of a subcell's 3x3x3 neighbor table: which subcell
// to look in, which image offset that subcell sits at relative to the
// owning subcell, and whether the link is usable at all (false when a
// non-periodic axis would walk off the grid).
type cellLink struct {
	cell    [3]int
	offset  [3]int
	include bool
}

// subcell stores the atoms currently binned into one grid cell plus its
// precomputed 27-entry neighbor table (the design, "Subcell grid").
type subcell struct {
	atoms     []int
	neighbors [27]cellLink
}

// Grid is the spatial partitioning of a Cell into subcells whose edge is at
// least as large as the largest interaction cutoff (the design step 1).
type Grid struct {
	Dims     [3]int
	cells    []subcell
	maxCut   float64
	periodic [3]bool
}

// NewGrid partitions cell into subcells with edge >= maxCutoff along
// periodic axes; non-periodic axes are truncated to the same number of
// subcells the cell length allows, with edge cells whose outward neighbor
// links are marked not-included.
func NewGrid(cell geometry.Cell, maxCutoff float64) (*Grid, error) {
	if maxCutoff <= 0 {
		return nil, chk.Err("neighbor: max cutoff must be positive, got %v", maxCutoff)
	}
	vecs := cell.Vectors()
	periodic := cell.Periodic()
	g := &Grid{maxCut: maxCutoff, periodic: periodic}
	for k := 0; k < 3; k++ {
		length := geometry.Norm(vecs[k])
		n := int(math.Floor(length / maxCutoff))
		if n < 1 {
			n = 1
		}
		g.Dims[k] = n
	}
	ncells := g.Dims[0] * g.Dims[1] * g.Dims[2]
	g.cells = make([]subcell, ncells)
	g.buildNeighborTables()
	return g, nil
}

func (g *Grid) index(c [3]int) int {
	return (c[0]*g.Dims[1]+c[1])*g.Dims[2] + c[2]
}

// buildNeighborTables fills each subcell's 27-entry neighbor table once;
// it never changes for the lifetime of the Grid.
func (g *Grid) buildNeighborTables() {
	for cx := 0; cx < g.Dims[0]; cx++ {
		for cy := 0; cy < g.Dims[1]; cy++ {
			for cz := 0; cz < g.Dims[2]; cz++ {
				idx := g.index([3]int{cx, cy, cz})
				slot := 0
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						for dz := -1; dz <= 1; dz++ {
							link := g.link([3]int{cx, cy, cz}, [3]int{dx, dy, dz})
							g.cells[idx].neighbors[slot] = link
							slot++
						}
					}
				}
			}
		}
	}
}

// link resolves subcell "from" shifted by delta into a neighbor-table entry:
// the wrapped target subcell, the image offset implied by any wraparound,
// and whether the link is valid at all (false only for an out-of-range,
// non-periodic axis).
func (g *Grid) link(from, delta [3]int) cellLink {
	var l cellLink
	l.include = true
	for k := 0; k < 3; k++ {
		raw := from[k] + delta[k]
		if g.periodic[k] {
			n := g.Dims[k]
			wrapped := ((raw % n) + n) % n
			l.offset[k] = (raw - wrapped) / n
			l.cell[k] = wrapped
		} else {
			if raw < 0 || raw >= g.Dims[k] {
				l.include = false
				l.cell[k] = from[k]
				continue
			}
			l.cell[k] = raw
		}
	}
	return l
}

// Bin assigns every atom to its subcell using fractional coordinates under
// the cell's inverse lattice, wrapping positions into the primary image
// first along periodic axes (the design step 2).
func (g *Grid) Bin(atoms []*atom.Atom, cell geometry.Cell) {
	for i := range g.cells {
		g.cells[i].atoms = g.cells[i].atoms[:0]
	}
	inv := cell.Inverse()
	for _, a := range atoms {
		pos := a.Position
		var c [3]int
		for k := 0; k < 3; k++ {
			f := pos[0]*inv[0][k] + pos[1]*inv[1][k] + pos[2]*inv[2][k]
			if g.periodic[k] {
				f -= math.Floor(f)
			}
			n := int(math.Floor(f * float64(g.Dims[k])))
			if n < 0 {
				n = 0
			}
			if n >= g.Dims[k] {
				n = g.Dims[k] - 1
			}
			c[k] = n
		}
		a.Subcell = c
		idx := g.index(c)
		g.cells[idx].atoms = append(g.cells[idx].atoms, a.Index)
	}
}

func mulVec(m [3][3]float64, v [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// Build fills the neighbor list of every atom in owned (1-based indices; nil
// means all atoms) by walking each owned atom's subcell and its 26
// neighbors, comparing against each candidate's per-pair distance and
// appending the (owned, candidate) entry to the owned atom's list only; the
// reverse entry comes from the candidate's own pass when it is owned too
// (the design step 3). cutoff(i) is the caller-supplied per-atom cutoff
// (the design: the registry precomputes this as the atom's
// EffectiveCutoff).
func Build(atoms []*atom.Set, cell geometry.Cell, g *Grid, cutoff func(i int) float64, owned []int) {
	all := atoms[0]
	if owned == nil {
		owned = make([]int, all.N())
		for i := range owned {
			owned[i] = i + 1
		}
	}
	for _, ownedIdx := range owned {
		a := all.Get(ownedIdx)
		cutA := cutoff(ownedIdx)
		cut2 := cutA * cutA
		cellIdx := g.index(a.Subcell)
		for _, link := range g.cells[cellIdx].neighbors {
			if !link.include {
				continue
			}
			target := &g.cells[g.index(link.cell)]
			for _, bIdx := range target.atoms {
				if bIdx == ownedIdx && link.offset == [3]int{} {
					continue // an atom is not its own neighbor at zero offset
				}
				b := all.Get(bIdx)
				sep := cell.Separation(a.Position, b.Position, link.offset)
				if geometry.Norm2(sep) >= cut2 {
					continue
				}
				a.Neighbors = append(a.Neighbors, atom.Neighbor{Index: bIdx, Offset: link.offset})
			}
		}
	}
}
