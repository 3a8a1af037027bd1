// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neighbor

import (
	"testing"

	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/gosl/chk"
)

func Test_pick01(tst *testing.T) {

	chk.PrintTitle("pick01. canonical pair predicate")

	if !Pick(1, 2, [3]int{0, 0, 0}) {
		tst.Errorf("(1,2,0) should be canonical")
	}
	if Pick(2, 1, [3]int{0, 0, 0}) {
		tst.Errorf("(2,1,0) should not be canonical")
	}
	if !Pick(3, 3, [3]int{1, 0, 0}) {
		tst.Errorf("(3,3,+1,0,0) should be canonical (self image, positive offset)")
	}
	if Pick(3, 3, [3]int{-1, 0, 0}) {
		tst.Errorf("(3,3,-1,0,0) should not be canonical")
	}
}

func Test_grid01(tst *testing.T) {

	chk.PrintTitle("grid01. dimer in a large non-periodic cell")

	cell := geometry.NewOrthorhombic(10, 10, 10, [3]bool{false, false, false})
	set := atom.NewSet(2)
	set.Get(1).Position = [3]float64{0, 0, 0}
	set.Get(2).Position = [3]float64{1, 0, 0}

	g, err := NewGrid(cell, 2.5)
	if err != nil {
		tst.Errorf("NewGrid failed: %v", err)
		return
	}
	g.Bin(set.Atoms, cell)
	Build([]*atom.Set{set}, cell, g, func(i int) float64 { return 2.5 }, nil)

	if len(set.Get(1).Neighbors) != 1 || set.Get(1).Neighbors[0].Index != 2 {
		tst.Errorf("atom 1 should see atom 2 once, got %v", set.Get(1).Neighbors)
	}
	if len(set.Get(2).Neighbors) != 1 || set.Get(2).Neighbors[0].Index != 1 {
		tst.Errorf("atom 2 should see atom 1 once, got %v", set.Get(2).Neighbors)
	}
}

func Test_grid02(tst *testing.T) {

	chk.PrintTitle("grid02. small periodic cell sees multiple images")

	cell := geometry.NewOrthorhombic(1.0, 10, 10, [3]bool{true, true, true})
	set := atom.NewSet(1)
	set.Get(1).Position = [3]float64{0, 0, 0}

	g, err := NewGrid(cell, 1.5)
	if err != nil {
		tst.Errorf("NewGrid failed: %v", err)
		return
	}
	g.Bin(set.Atoms, cell)
	Build([]*atom.Set{set}, cell, g, func(i int) float64 { return 1.5 }, nil)

	if len(set.Get(1).Neighbors) < 2 {
		tst.Errorf("atom should see at least 2 periodic images of itself, got %v", set.Get(1).Neighbors)
	}
}
