// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import (
	"testing"

	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/bof"
	"github.com/cpmech/atomint/forms"
	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/atomint/neighbor"
	"github.com/cpmech/atomint/registry"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// newDriver wires a Driver around a freshly built neighbor list, matching
// the lifecycle the design describes: register, assign indices, partition,
// build neighbors, allocate/fill the BOF cache, then evaluate.
func newDriver(set *atom.Set, cell geometry.Cell, pot *registry.PotentialRegistry, bofReg *registry.BOFRegistry, cat *forms.Catalog, maxCutoff float64) *Driver {
	pot.AssignIndices(set)
	bofReg.AssignIndices(set)
	grid, err := neighbor.NewGrid(cell, maxCutoff)
	if err != nil {
		panic(err)
	}
	grid.Bin(set.Atoms, cell)
	neighbor.Build([]*atom.Set{set}, cell, grid, func(i int) float64 { return set.Get(i).EffectiveCutoff }, nil)

	cache, err := bof.Allocate(set.N(), bofReg.GroupIDs())
	if err != nil {
		panic(err)
	}
	cache.EmptyStorage()
	if err := bof.Fill(cache, set, cell, bofReg, cat); err != nil {
		panic(err)
	}
	return &Driver{Atoms: set, Cell: cell, Potentials: pot, BOFs: bofReg, Cache: cache, Catalog: cat}
}

func Test_S1_constant_one_body(tst *testing.T) {

	chk.PrintTitle("S1. one atom, constant 1-body")

	set := atom.NewSet(1)
	set.Get(1).Element = "X"
	cell := geometry.NewOrthorhombic(10, 10, 10, [3]bool{false, false, false})
	cat := forms.NewCatalog()
	pot := registry.NewPotentialRegistry(cat.KnownPotentials())
	bofReg := registry.NewBOFRegistry(cat.KnownBOFs())
	err := pot.Add("constant", fun.Prms{&fun.Prm{N: "V", V: 1.5}}, 1.0, 0,
		[]registry.Target{{Elements: []string{"X"}}}, 0)
	if err != nil {
		tst.Fatalf("Add failed: %v", err)
	}

	d := newDriver(set, cell, pot, bofReg, cat, 1.0)
	res, err := d.Run(Forces)
	if err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	chk.Scalar(tst, "energy", 1e-14, res.Energy, 1.5)
	chk.Vector(tst, "force", 1e-14, res.Forces[0][:], []float64{0, 0, 0})
	chk.Vector(tst, "stress", 1e-14, res.Stress[:], []float64{0, 0, 0, 0, 0, 0})
}

func Test_S2_lj_dimer_at_sigma(tst *testing.T) {

	chk.PrintTitle("S2. dimer, Lennard-Jones at r=sigma")

	set := atom.NewSet(2)
	set.Get(1).Element = "X"
	set.Get(1).Position = [3]float64{0, 0, 0}
	set.Get(2).Element = "X"
	set.Get(2).Position = [3]float64{1, 0, 0}
	cell := geometry.NewOrthorhombic(10, 10, 10, [3]bool{false, false, false})
	cat := forms.NewCatalog()
	pot := registry.NewPotentialRegistry(cat.KnownPotentials())
	bofReg := registry.NewBOFRegistry(cat.KnownBOFs())
	params := fun.Prms{&fun.Prm{N: "epsilon", V: 1.0}, &fun.Prm{N: "sigma", V: 1.0}}
	err := pot.Add("lj", params, 2.5, 2.0, []registry.Target{{Elements: []string{"X"}}, {Elements: []string{"X"}}}, 0)
	if err != nil {
		tst.Fatalf("Add failed: %v", err)
	}

	d := newDriver(set, cell, pot, bofReg, cat, 2.5)
	res, err := d.Run(Forces)
	if err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	chk.Scalar(tst, "energy", 1e-13, res.Energy, 0)
	chk.Scalar(tst, "force on atom2 along x", 1e-10, res.Forces[1][0], 0)
}

func Test_S3_bondbend_rightangle(tst *testing.T) {

	chk.PrintTitle("S3. trimer, bond-bending at theta0")

	set := atom.NewSet(3)
	set.Get(1).Element = "X"
	set.Get(1).Position = [3]float64{0, 0, 0}
	set.Get(2).Element = "X"
	set.Get(2).Position = [3]float64{1, 0, 0}
	set.Get(3).Element = "X"
	set.Get(3).Position = [3]float64{1, 1, 0}
	cell := geometry.NewOrthorhombic(10, 10, 10, [3]bool{false, false, false})
	cat := forms.NewCatalog()
	pot := registry.NewPotentialRegistry(cat.KnownPotentials())
	bofReg := registry.NewBOFRegistry(cat.KnownBOFs())
	params := fun.Prms{&fun.Prm{N: "k", V: 1.0}, &fun.Prm{N: "theta0", V: 1.5707963267948966}}
	// cutoff kept below the 1-3 diagonal distance (sqrt(2)) so the triangle's
	// other two vertex angles never enter the neighbor list or candidate
	// filtering; only the intended center=atom2 triplet is visited.
	err := pot.Add("bond_bend", params, 1.2, 0, []registry.Target{
		{Elements: []string{"X"}}, {Elements: []string{"X"}}, {Elements: []string{"X"}},
	}, 0)
	if err != nil {
		tst.Fatalf("Add failed: %v", err)
	}

	d := newDriver(set, cell, pot, bofReg, cat, 1.2)
	res, err := d.Run(Forces)
	if err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	chk.Scalar(tst, "energy", 1e-12, res.Energy, 0)
}
