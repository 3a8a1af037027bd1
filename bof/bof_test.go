// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bof

import (
	"testing"

	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/forms"
	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/atomint/neighbor"
	"github.com/cpmech/atomint/registry"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// buildS4 reproduces the design scenario S4: Cu at the origin surrounded by
// four O at unit distance along +-x, +-y.
func buildS4() (*atom.Set, geometry.Cell, *registry.BOFRegistry, *forms.Catalog) {
	set := atom.NewSet(5)
	set.Get(1).Element = "Cu"
	set.Get(1).Position = [3]float64{0, 0, 0}
	offsets := [][3]float64{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}
	for k, off := range offsets {
		a := set.Get(k + 2)
		a.Element = "O"
		a.Position = off
	}

	cell := geometry.NewOrthorhombic(10, 10, 10, [3]bool{false, false, false})
	cat := forms.NewCatalog()
	reg := registry.NewBOFRegistry(cat.KnownBOFs())
	bofParams := fun.Prms{&fun.Prm{N: "cutoff", V: 1.5}, &fun.Prm{N: "margin", V: 0.5}}
	reg.Add("neighbors", [4]fun.Prms{{}, bofParams, {}, {}}, 1.5, 0,
		[]registry.Target{{Elements: []string{"Cu"}}, {Elements: []string{"O"}}}, 1, false)
	postParams := fun.Prms{
		&fun.Prm{N: "epsilon", V: 1.0}, &fun.Prm{N: "N", V: 4}, &fun.Prm{N: "C", V: 1}, &fun.Prm{N: "gamma", V: 1},
	}
	reg.Add("c_scale", [4]fun.Prms{postParams, {}, {}, {}}, 1.5, 0,
		[]registry.Target{{Elements: []string{"Cu"}}}, 1, true)

	reg.AssignIndices(set)
	return set, cell, reg, cat
}

func Test_fill_coordination(tst *testing.T) {

	chk.PrintTitle("fill_coordination. S4: Cu coordination sum and scaled factor")

	set, cell, reg, cat := buildS4()
	grid, err := neighbor.NewGrid(cell, 1.5)
	if err != nil {
		tst.Fatalf("NewGrid failed: %v", err)
	}
	grid.Bin(set.Atoms, cell)
	neighbor.Build([]*atom.Set{set}, cell, grid, func(i int) float64 { return set.Get(i).EffectiveCutoff }, nil)

	cache, err := Allocate(set.N(), reg.GroupIDs())
	if err != nil {
		tst.Fatalf("Allocate failed: %v", err)
	}
	cache.EmptyStorage()
	if err := Fill(cache, set, cell, reg, cat); err != nil {
		tst.Fatalf("Fill failed: %v", err)
	}

	sum, have := cache.Sum(1, 1)
	if !have {
		tst.Fatal("expected Cu sum to be filled")
	}
	chk.Scalar(tst, "S_Cu", 1e-13, sum, 4.0)

	b, err := cache.Factor(1, 1)
	if err != nil {
		tst.Fatalf("Factor failed: %v", err)
	}
	chk.Scalar(tst, "b_Cu", 1e-13, b, 0)
}

func Test_gradient_idempotent(tst *testing.T) {

	chk.PrintTitle("gradient_idempotent. repeated gradient queries hit the cache with identical results")

	set, cell, reg, cat := buildS4()
	grid, _ := neighbor.NewGrid(cell, 1.5)
	grid.Bin(set.Atoms, cell)
	neighbor.Build([]*atom.Set{set}, cell, grid, func(i int) float64 { return set.Get(i).EffectiveCutoff }, nil)

	cache, _ := Allocate(set.N(), reg.GroupIDs())
	cache.EmptyStorage()
	if err := Fill(cache, set, cell, reg, cat); err != nil {
		tst.Fatalf("Fill failed: %v", err)
	}

	g1, v1, err := GradForMovingAtom(cache, set, cell, reg, cat, 1, 2)
	if err != nil {
		tst.Fatalf("GradForMovingAtom failed: %v", err)
	}
	g2, v2, err := GradForMovingAtom(cache, set, cell, reg, cat, 1, 2)
	if err != nil {
		tst.Fatalf("GradForMovingAtom (cached) failed: %v", err)
	}
	chk.Vector(tst, "virial", 1e-14, v1[:], v2[:])
	for k, v := range g1 {
		o, ok := g2[k]
		if !ok {
			tst.Fatalf("cached gradient missing atom %v", k)
		}
		chk.Vector(tst, "grad", 1e-14, v[:], o[:])
	}
}
