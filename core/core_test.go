// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/cpmech/atomint/forms"
	"github.com/cpmech/atomint/registry"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// lifecycle runs the "Lifecycle" sequence common to every scenario: index,
// partition, build neighbors, allocate/empty/fill BOF storage.
func lifecycle(tst *testing.T, s *CoreState) {
	if err := s.AssignIndices(); err != nil {
		tst.Fatalf("AssignIndices: %v", err)
	}
	if err := s.BuildNeighborLists(); err != nil {
		tst.Fatalf("BuildNeighborLists: %v", err)
	}
	if err := s.AllocateBondOrderStorage(); err != nil {
		tst.Fatalf("AllocateBondOrderStorage: %v", err)
	}
	if err := s.EmptyBondOrderStorage(); err != nil {
		tst.Fatalf("EmptyBondOrderStorage: %v", err)
	}
	if err := s.FillBondOrderStorage(); err != nil {
		tst.Fatalf("FillBondOrderStorage: %v", err)
	}
}

func Test_core_S1_constant_one_body(tst *testing.T) {

	chk.PrintTitle("core S1. one atom, constant 1-body, through CoreState")

	s := New(forms.NewCatalog())
	if err := s.GenerateAtoms(1); err != nil {
		tst.Fatalf("GenerateAtoms: %v", err)
	}
	s.Atoms.Get(1).Element = "X"
	s.CreateCell([3][3]float64{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}}, [3]bool{false, false, false})
	if err := s.AddPotential("constant", fun.Prms{&fun.Prm{N: "V", V: 1.5}}, 1.0, 0,
		[]registry.Target{{Elements: []string{"X"}}}, 0); err != nil {
		tst.Fatalf("AddPotential: %v", err)
	}

	lifecycle(tst, s)

	e, err := s.CalculateEnergy()
	if err != nil {
		tst.Fatalf("CalculateEnergy: %v", err)
	}
	chk.Scalar(tst, "energy", 1e-14, e, 1.5)

	if s.LastStepDuration() < 0 {
		tst.Fatalf("expected a non-negative step duration")
	}
}

func Test_core_evaluation_before_indexing_fails_with_state_kind(tst *testing.T) {

	chk.PrintTitle("core: evaluation before assign_indices surfaces a state error")

	s := New(forms.NewCatalog())
	if err := s.GenerateAtoms(1); err != nil {
		tst.Fatalf("GenerateAtoms: %v", err)
	}
	s.CreateCell([3][3]float64{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}}, [3]bool{false, false, false})

	_, err := s.CalculateEnergy()
	if err == nil {
		tst.Fatalf("expected an error")
	}
	ce, ok := err.(*Error)
	if !ok {
		tst.Fatalf("expected *core.Error, got %T", err)
	}
	if ce.Kind != State {
		tst.Fatalf("expected State kind, got %v", ce.Kind)
	}
}

func Test_core_release_all_memory_resets_registries(tst *testing.T) {

	chk.PrintTitle("core: release_all_memory clears atoms, cell and registries")

	s := New(forms.NewCatalog())
	if err := s.GenerateAtoms(2); err != nil {
		tst.Fatalf("GenerateAtoms: %v", err)
	}
	s.CreateCell([3][3]float64{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}}, [3]bool{false, false, false})
	if err := s.AddPotential("constant", fun.Prms{&fun.Prm{N: "V", V: 1.0}}, 1.0, 0,
		[]registry.Target{{Elements: []string{"X"}}}, 0); err != nil {
		tst.Fatalf("AddPotential: %v", err)
	}

	s.ReleaseAllMemory()

	if s.Atoms != nil || s.Cell != nil {
		tst.Fatalf("expected atoms and cell to be released")
	}
	if len(s.Potentials.Records) != 0 {
		tst.Fatalf("expected an empty potential registry after release")
	}
}
