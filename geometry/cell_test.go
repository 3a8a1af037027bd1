// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_wrap01(tst *testing.T) {

	chk.PrintTitle("wrap01. cubic cell, fully periodic")

	c := NewOrthorhombic(10, 10, 10, [3]bool{true, true, true})
	wrapped, offset := c.Wrap([3]float64{12.5, -1.0, 5.0})
	chk.Vector(tst, "wrapped", 1e-15, wrapped[:], []float64{2.5, 9.0, 5.0})
	if offset != [3]int{1, -1, 0} {
		tst.Errorf("offset wrong: %v", offset)
	}
}

func Test_wrap02(tst *testing.T) {

	chk.PrintTitle("wrap02. non-periodic axis is untouched")

	c := NewOrthorhombic(10, 10, 10, [3]bool{true, true, false})
	wrapped, offset := c.Wrap([3]float64{-3.0, 0.0, 55.0})
	chk.Vector(tst, "wrapped", 1e-15, wrapped[:], []float64{7.0, 0.0, 55.0})
	if offset != [3]int{-1, 0, 0} {
		tst.Errorf("offset wrong: %v", offset)
	}
}

func Test_separation01(tst *testing.T) {

	chk.PrintTitle("separation01. minimum image across one boundary")

	c := NewOrthorhombic(10, 10, 10, [3]bool{true, true, true})
	a := [3]float64{0.5, 0, 0}
	b := [3]float64{9.5, 0, 0}
	sep := c.Separation(a, b, [3]int{-1, 0, 0})
	chk.Vector(tst, "sep", 1e-15, sep[:], []float64{-1.0, 0, 0})
	if Norm(sep) >= Norm([3]float64{9, 0, 0}) {
		tst.Errorf("minimum image should be shorter than the bare separation")
	}
}

func Test_direction01(tst *testing.T) {

	chk.PrintTitle("direction01. degenerate zero separation tolerated")

	d := Direction([3]float64{0, 0, 0})
	chk.Vector(tst, "dir", 1e-15, d[:], []float64{0, 0, 0})
}
