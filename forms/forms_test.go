// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forms

import (
	"math"
	"testing"

	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func mkAtom(idx int, el string, pos [3]float64) *atom.Atom {
	return &atom.Atom{Index: idx, Element: el, Position: pos}
}

func Test_lj_at_sigma(tst *testing.T) {

	chk.PrintTitle("lj_at_sigma. S2: LJ energy is zero at r=sigma")

	p := fun.Prms{&fun.Prm{N: "epsilon", V: 1.0}, &fun.Prm{N: "sigma", V: 1.0}}
	a1 := mkAtom(1, "X", [3]float64{0, 0, 0})
	a2 := mkAtom(2, "X", [3]float64{1, 0, 0})
	tup := Tuple{Atoms: []*atom.Atom{a1, a2}, Seps: [][3]float64{{1, 0, 0}}, Dists: []float64{1.0}}
	e, err := (ljForm{}).Energy(p, tup)
	if err != nil {
		tst.Errorf("Energy failed: %v", err)
	}
	chk.Scalar(tst, "E(sigma)", 1e-14, e, 0)
}

func Test_lj_perturbed(tst *testing.T) {

	chk.PrintTitle("lj_perturbed. S2: energy and numerical force at r=1.1")

	p := fun.Prms{&fun.Prm{N: "epsilon", V: 1.0}, &fun.Prm{N: "sigma", V: 1.0}}
	r := 1.1
	energyAt := func(rr float64) float64 {
		a1 := mkAtom(1, "X", [3]float64{0, 0, 0})
		a2 := mkAtom(2, "X", [3]float64{rr, 0, 0})
		tup := Tuple{Atoms: []*atom.Atom{a1, a2}, Seps: [][3]float64{{rr, 0, 0}}, Dists: []float64{rr}}
		e, _ := (ljForm{}).Energy(p, tup)
		return e
	}
	e := energyAt(r)
	expected := 1.0 * (math.Pow(1/r, 12) - math.Pow(1/r, 6))
	chk.Scalar(tst, "E(1.1)", 1e-14, e, expected)

	h := 1e-6
	numForce := -(energyAt(r+h) - energyAt(r-h)) / (2 * h)

	a1 := mkAtom(1, "X", [3]float64{0, 0, 0})
	a2 := mkAtom(2, "X", [3]float64{r, 0, 0})
	tup := Tuple{Atoms: []*atom.Atom{a1, a2}, Seps: [][3]float64{{r, 0, 0}}, Dists: []float64{r}}
	_, forces, err := (ljForm{}).Forces(p, tup)
	if err != nil {
		tst.Errorf("Forces failed: %v", err)
	}
	chk.Scalar(tst, "F on atom2 (x)", 1e-6, forces[1][0], numForce)
}

func Test_bondbend_rightangle(tst *testing.T) {

	chk.PrintTitle("bondbend_rightangle. S3: 90-degree bend at theta0=pi/2 has zero energy")

	p := fun.Prms{&fun.Prm{N: "k", V: 1.0}, &fun.Prm{N: "theta0", V: math.Pi / 2}}
	j := mkAtom(1, "X", [3]float64{0, 0, 0})
	i := mkAtom(2, "X", [3]float64{1, 0, 0})
	k := mkAtom(3, "X", [3]float64{1, 1, 0})
	tup := Tuple{
		Atoms: []*atom.Atom{j, i, k},
		Seps:  [][3]float64{{1, 0, 0}, {0, 1, 0}},
		Dists: []float64{1, 1},
	}
	e, _ := (bondBendForm{}).Energy(p, tup)
	chk.Scalar(tst, "E", 1e-14, e, 0)

	_, forces, _ := (bondBendForm{}).Forces(p, tup)
	for idx, f := range forces {
		chk.Vector(tst, "force", 1e-13, f[:], []float64{0, 0, 0})
		_ = idx
	}
}

func Test_dihedral_trans(tst *testing.T) {

	chk.PrintTitle("dihedral_trans. S5: planar trans chain (phi=pi) gives energy 2.0")

	p := fun.Prms{&fun.Prm{N: "k", V: 1.0}, &fun.Prm{N: "theta0", V: 0}}
	// a zig-zag planar chain with dihedral angle pi (all-trans)
	a1 := mkAtom(1, "X", [3]float64{0, 1, 0})
	a2 := mkAtom(2, "X", [3]float64{1, 0, 0})
	a3 := mkAtom(3, "X", [3]float64{2, 1, 0})
	a4 := mkAtom(4, "X", [3]float64{3, 0, 0})
	tup := Tuple{
		Atoms: []*atom.Atom{a1, a2, a3, a4},
		Seps: [][3]float64{
			{a2.Position[0] - a1.Position[0], a2.Position[1] - a1.Position[1], a2.Position[2] - a1.Position[2]},
			{a3.Position[0] - a2.Position[0], a3.Position[1] - a2.Position[1], a3.Position[2] - a2.Position[2]},
			{a4.Position[0] - a3.Position[0], a4.Position[1] - a3.Position[1], a4.Position[2] - a3.Position[2]},
		},
	}
	e, err := (dihedralForm{}).Energy(p, tup)
	if err != nil {
		tst.Errorf("Energy failed: %v", err)
	}
	chk.Scalar(tst, "E", 1e-10, e, 2.0)
}

func Test_neighbors_and_cscale(tst *testing.T) {

	chk.PrintTitle("neighbors_and_cscale. S4: coordination sum=4 matches target, factor is zero")

	bp := fun.Prms{&fun.Prm{N: "cutoff", V: 1.5}, &fun.Prm{N: "margin", V: 0.5}}
	cu := mkAtom(1, "Cu", [3]float64{0, 0, 0})
	var sum float64
	for _, d := range [][3]float64{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}} {
		o := mkAtom(2, "O", d)
		tup := Tuple{Atoms: []*atom.Atom{cu, o}, Seps: [][3]float64{d}, Dists: []float64{1.0}}
		contrib, err := (neighborsForm{}).Sum(bp, tup)
		if err != nil {
			tst.Errorf("Sum failed: %v", err)
		}
		sum += contrib[0]
	}
	chk.Scalar(tst, "S_Cu", 1e-14, sum, 4.0)

	pp := fun.Prms{
		&fun.Prm{N: "epsilon", V: 1.0}, &fun.Prm{N: "N", V: 4}, &fun.Prm{N: "C", V: 1}, &fun.Prm{N: "gamma", V: 1},
	}
	b, err := (cScaleForm{}).Apply(pp, sum)
	if err != nil {
		tst.Errorf("Apply failed: %v", err)
	}
	chk.Scalar(tst, "b_Cu", 1e-14, b, 0)
}
