// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package forms is the closed catalog of potential and bond-order-factor
// functional forms (the design "Out of scope... the closed catalog of
// potential and BOF functional forms"). The interaction loop and the BOF
// cache call into this catalog by form tag; they never know the math of any
// single form. This package ships a small reference catalog — constant,
// Lennard-Jones, harmonic bond bending, a cosine dihedral, a coordination
// bond-order sum, and its logistic post-processing scaler — sufficient to
// run every end-to-end scenario in the design Extending the catalog with a
// new functional form never requires touching the loop or cache packages,
// only registering a new tag here (the design "Dynamic dispatch on
// potential/BOF form").
package forms

import (
	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/gosl/fun"
)

// Tuple is the bundle of atoms, separations, and distances passed to a
// kernel call: the n atoms of the interacting tuple in canonical order (for
// 2/3/4-body forms, chain-ordered so Seps[k] is the separation from
// Atoms[k] to Atoms[k+1]), and their lengths.
type Tuple struct {
	Atoms []*atom.Atom
	Seps  [][3]float64 // len = len(Atoms)-1
	Dists []float64    // len = len(Atoms)-1
}

// PotentialForm is the contract every registered potential functional form
// satisfies: the design's evaluate_energy/evaluate_forces/
// evaluate_electronegativity, scoped to one form tag.
type PotentialForm interface {
	// NumTargets is the body count this form expects.
	NumTargets() int
	Energy(p fun.Prms, t Tuple) (float64, error)
	// Forces returns the energy (needed by the loop to weight by cutoff
	// smoothening and BOF factors identically to Energy) together with the
	// per-atom force contribution, aligned index-for-index with t.Atoms.
	Forces(p fun.Prms, t Tuple) (energy float64, forces [][3]float64, err error)
	Electronegativity(p fun.Prms, t Tuple) ([]float64, error)
}

// BOFForm is the contract every registered bond-order-factor functional
// form satisfies: the design's evaluate_bond_order_factor and
// evaluate_bond_order_gradient, scoped to one form tag.
type BOFForm interface {
	NumTargets() int
	// Sum returns the tuple's raw contribution to each atom in the tuple,
	// aligned index-for-index with t.Atoms (the design: "its return is a
	// 2-vector whose components are added to S_i and S_j respectively",
	// generalized here to n components for n-body BOFs).
	Sum(p fun.Prms, t Tuple) ([]float64, error)
	// Gradient returns, for every atom in the tuple, the gradient of that
	// atom's OWN Sum component with respect to its own position — e.g. for
	// a 2-body form, result[0] is d(Sum()[0])/d(Atoms[0].Position). The bof
	// package's gradient walk additionally relies on forms
	// in this catalog being symmetric (every tuple member's Sum component is
	// the same function of the tuple geometry, as "neighbors" is), so that
	// a cross-derivative d(Sum()[m])/d(Atoms[k].Position) for m != k equals
	// result[k]; an asymmetric multi-body BOF form would need a richer
	// contract than this reference catalog exercises.
	Gradient(p fun.Prms, t Tuple) ([][3]float64, error)
}

// PostProcessor is the contract a BOF record flagged PostProcess satisfies:
// the design's post_process_bond_order_factor / post_process_bond_order_gradient.
type PostProcessor interface {
	// Apply computes b_i = f_i(S_i).
	Apply(p fun.Prms, sum float64) (float64, error)
	// Deriv computes f'_i(S_i), the scalar the BOF gradient cache multiplies
	// per-moving-atom gradients by in per-factor mode (the design).
	Deriv(p fun.Prms, sum float64) (float64, error)
}

// Catalog is the function table keyed by form tag (the design "a tagged-
// variant form_tag plus a function table keyed by tag").
type Catalog struct {
	potentials     map[string]PotentialForm
	bofs           map[string]BOFForm
	postProcessors map[string]PostProcessor
}

// NewCatalog builds the reference catalog described in this package's doc
// comment.
func NewCatalog() *Catalog {
	c := &Catalog{
		potentials:     map[string]PotentialForm{},
		bofs:           map[string]BOFForm{},
		postProcessors: map[string]PostProcessor{},
	}
	c.RegisterPotential("constant", constantForm{})
	c.RegisterPotential("lj", ljForm{})
	c.RegisterPotential("bond_bend", bondBendForm{})
	c.RegisterPotential("dihedral", dihedralForm{})
	c.RegisterBOF("neighbors", neighborsForm{})
	c.RegisterPostProcessor("c_scale", cScaleForm{})
	return c
}

func (c *Catalog) RegisterPotential(tag string, f PotentialForm) { c.potentials[tag] = f }
func (c *Catalog) RegisterBOF(tag string, f BOFForm)              { c.bofs[tag] = f }
func (c *Catalog) RegisterPostProcessor(tag string, f PostProcessor) {
	c.postProcessors[tag] = f
}

func (c *Catalog) Potential(tag string) (PotentialForm, bool) { f, ok := c.potentials[tag]; return f, ok }
func (c *Catalog) BOF(tag string) (BOFForm, bool)             { f, ok := c.bofs[tag]; return f, ok }
func (c *Catalog) PostProcessorByTag(tag string) (PostProcessor, bool) {
	f, ok := c.postProcessors[tag]
	return f, ok
}

// KnownPotentials and KnownBOFs return the sets of registered potential and
// BOF form tags, for registry configuration validation (the design
// "configuration" kind).
func (c *Catalog) KnownPotentials() map[string]bool {
	out := make(map[string]bool, len(c.potentials))
	for k := range c.potentials {
		out[k] = true
	}
	return out
}

func (c *Catalog) KnownBOFs() map[string]bool {
	out := make(map[string]bool, len(c.bofs))
	for k := range c.bofs {
		out[k] = true
	}
	return out
}
