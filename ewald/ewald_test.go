// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ewald

import (
	"math"
	"testing"

	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/gosl/chk"
)

// buildS6 builds the two-ion scenario of the design S6: +1 and -1 at
// (0,0,0) and (L/2, 0, 0) in a fully periodic cubic cell of edge L=10.
func buildS6(tst *testing.T) (*atom.Set, *geometry.Triclinic, Params) {
	const L = 10.0
	set := atom.NewSet(2)
	set.Get(1).Charge = 1
	set.Get(1).Position = [3]float64{0, 0, 0}
	set.Get(2).Charge = -1
	set.Get(2).Position = [3]float64{L / 2, 0, 0}
	cell := geometry.NewOrthorhombic(L, L, L, [3]bool{true, true, true})
	p := Params{
		RealCutoff: 5,
		KCutoff:    [3]int{5, 5, 5},
		Sigma:      1.0,
		Epsilon0:   1.0,
	}
	return set, cell, p
}

func Test_S6_ewald_dimer_energy_finite(tst *testing.T) {

	chk.PrintTitle("S6. two-ion dimer, Ewald sum")

	set, cell, p := buildS6(tst)
	var k DirectSummation
	e, err := k.Energy(set, cell, p)
	if err != nil {
		tst.Fatalf("Energy failed: %v", err)
	}
	if math.IsNaN(e) || math.IsInf(e, 0) {
		tst.Fatalf("energy is not finite: %v", e)
	}
	// Opposite-sign ions attract: the Coulomb total must be negative.
	if e >= 0 {
		tst.Fatalf("expected attractive (negative) total energy, got %v", e)
	}
}

func Test_S6_ewald_newton_third_law(tst *testing.T) {

	chk.PrintTitle("S6. force on atom1 is opposite force on atom2 (axial symmetry)")

	set, cell, p := buildS6(tst)
	var k DirectSummation
	_, forces, _, err := k.Forces(set, cell, p)
	if err != nil {
		tst.Fatalf("Forces failed: %v", err)
	}
	// The two ions sit on the cell's x-axis at a separation of exactly L/2;
	// the configuration is symmetric under reflection through either ion,
	// so the net force from the full periodic lattice sum must vanish
	// along every axis other than x, and must be equal and opposite in x.
	chk.Scalar(tst, "Fx1+Fx2", 1e-9, forces[0][0]+forces[1][0], 0)
	for _, f := range forces {
		chk.Scalar(tst, "Fy", 1e-9, f[1], 0)
		chk.Scalar(tst, "Fz", 1e-9, f[2], 0)
	}
}

func Test_S6_ewald_electronegativity_sign(tst *testing.T) {

	chk.PrintTitle("S6. electronegativity opposes the local field from the other ion")

	set, cell, p := buildS6(tst)
	var k DirectSummation
	chi, err := k.Electronegativities(set, cell, p)
	if err != nil {
		tst.Fatalf("Electronegativities failed: %v", err)
	}
	if len(chi) != 2 {
		tst.Fatalf("expected 2 electronegativities, got %d", len(chi))
	}
	// By the charge-reflection antisymmetry of this scenario (q1=+1 at the
	// origin, q2=-1 at L/2), chi1 == -chi2.
	chk.Scalar(tst, "chi1+chi2", 1e-9, chi[0]+chi[1], 0)
}
