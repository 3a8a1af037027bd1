// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package loop is the nested interaction loop: the driver that walks 1-,
// 2-, 3-, and 4-body tuples and accumulates a requested observable (energy,
// forces, electronegativity) plus stress, consulting the BOF cache for
// factors and gradients (the design). This is the hard center of the
// core — the rest of the tree exists to make this loop tractable.
package loop

import (
	"math"

	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/bof"
	"github.com/cpmech/atomint/forms"
	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/atomint/neighbor"
	"github.com/cpmech/atomint/registry"
	"github.com/cpmech/gosl/chk"
)

// Kind selects which observable the loop accumulates (the design "a
// calculation-type selector").
type Kind int

const (
	Energy Kind = iota
	Forces
	Electronegativity
)

// Result is the loop's output: the scalar/vector observable and, in the
// Forces path, the per-atom force table and the Voigt-order stress.
type Result struct {
	Energy            float64
	Forces            [][3]float64 // 1-based atom index into slot index-1
	Electronegativity []float64
	Stress            [6]float64 // (xx, yy, zz, yz, xz, xy), force path only
}

// Driver owns one calculation step's walk over the registries and cache.
// It is not reentrant (the design "The loop is not reentrant").
type Driver struct {
	Atoms      *atom.Set
	Cell       geometry.Cell
	Potentials *registry.PotentialRegistry
	BOFs       *registry.BOFRegistry
	Cache      *bof.Cache
	Catalog    *forms.Catalog
	Owned      []int // atom indices this rank accumulates for; nil means all
}

// Run walks every owned atom's tuples and returns the requested observable
// (the design). The BOF cache must already be filled (bof.Fill) before
// calling Run.
func (d *Driver) Run(kind Kind) (*Result, error) {
	if d.Atoms == nil || d.Cell == nil {
		return nil, chk.Err("loop: state error: evaluation attempted with no atoms or cell assigned")
	}
	n := d.Atoms.N()
	res := &Result{}
	if kind == Forces {
		res.Forces = make([][3]float64, n)
	}
	if kind == Electronegativity {
		res.Electronegativity = make([]float64, n)
	}

	owned := d.Owned
	if owned == nil {
		owned = make([]int, n)
		for i := range owned {
			owned[i] = i + 1
		}
	}

	// Whether 3-/4-body potentials are registered at all is a property of
	// the registry, not of any particular pair, so the flags are derived
	// once rather than re-checked per neighbor (the design).
	manyBodiesFound, enable4 := false, false
	for _, rec := range d.Potentials.Records {
		if rec.NumTargets > 2 {
			manyBodiesFound = true
		}
		if rec.NumTargets > 3 {
			enable4 = true
		}
	}

	for _, i := range owned {
		d.Cache.EmptyGradientStorage(0) // outer atom boundary: clear all slots
		ai := d.Atoms.Get(i)

		if err := d.oneBody(kind, ai, res); err != nil {
			return nil, err
		}

		for _, nb := range ai.Neighbors {
			j := nb.Index
			if !neighbor.Pick(i, j, nb.Offset) {
				continue
			}
			d.Cache.EmptyGradientStorage(2) // second-position atom changed
			aj := d.Atoms.Get(j)
			sep := d.Cell.Separation(ai.Position, aj.Position, nb.Offset)
			dist := geometry.Norm(sep)

			if err := d.twoBody(kind, ai, aj, sep, dist, res); err != nil {
				return nil, err
			}

			if manyBodiesFound {
				if err := d.threeBody(kind, ai, aj, nb.Offset, res); err != nil {
					return nil, err
				}
				if enable4 {
					if err := d.fourBody(kind, ai, aj, nb.Offset, res); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return res, nil
}

// groupFactor fetches b_i for group, or 1 if group is 0 ("no bond-order
// modulation", the design "Potential record").
func (d *Driver) groupFactor(group, atomIdx int) (float64, error) {
	if group == 0 {
		return 1, nil
	}
	return d.Cache.Factor(atomIdx, group)
}

// checkFinite enforces the design failure semantics: any kernel returning
// a non-finite value fails the step with a numerical kind.
func checkFinite(label string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return chk.Err("loop: numerical: %s evaluated to a non-finite value", label)
	}
	return nil
}

func addForce(dst [][3]float64, atomIdx int, f [3]float64) {
	if dst == nil {
		return
	}
	dst[atomIdx-1][0] += f[0]
	dst[atomIdx-1][1] += f[1]
	dst[atomIdx-1][2] += f[2]
}
