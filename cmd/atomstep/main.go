// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command atomstep is a debug CLI: it loads one scene file, runs a single
// energy/forces/electronegativities evaluation, prints the results and
// writes the per-rank debug dump. It mirrors gofem's root main.go at the
// scale of one evaluation instead of a full stage-by-stage simulation.
package main

import (
	"flag"

	"github.com/cpmech/atomint/core"
	"github.com/cpmech/atomint/ewald"
	"github.com/cpmech/atomint/forms"
	"github.com/cpmech/atomint/registry"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

func main() {

	verbose := true

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\natomstep -- single-step interatomic potential evaluator\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
	}

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a scene filename. Ex.: dimer.scene\n")
	}
	fnamepath := flag.Arg(0)
	if len(flag.Args()) > 1 {
		verbose = io.Atob(flag.Arg(1))
	}

	s, err := run(fnamepath, verbose)
	if err != nil {
		chk.Panic("%v\n", err)
	}

	if mpi.Rank() == 0 {
		io.Pf("\nstep duration = %v\n", s.LastStepDuration())
	}
}

// run loads the scene at fnamepath, runs the lifecycle once and prints the
// three observables. Split out from main so it returns an error instead of
// panicking, the way tests drive it.
func run(fnamepath string, verbose bool) (*core.CoreState, error) {

	sc, err := readScene(fnamepath)
	if err != nil {
		return nil, err
	}

	s := core.New(forms.NewCatalog())
	s.Verbose = verbose

	functions, err := registry.LoadFile(sc.Database, s.Potentials, s.BOFs)
	if err != nil {
		return nil, err
	}
	s.Functions = functions

	if err := s.GenerateAtoms(len(sc.Atoms)); err != nil {
		return nil, err
	}
	positions := make([][3]float64, len(sc.Atoms))
	charges := make([]float64, len(sc.Atoms))
	for i, a := range sc.Atoms {
		s.Atoms.Get(i + 1).Element = a.Element
		positions[i] = a.Position
		charges[i] = a.Charge
	}
	if err := s.UpdateCoordinates(positions); err != nil {
		return nil, err
	}
	if err := s.UpdateCharges(charges); err != nil {
		return nil, err
	}

	s.CreateCell(sc.Lattice, sc.Periodic)
	if err := s.CreateSpacePartitioning(sc.MaxCutoff); err != nil {
		return nil, err
	}

	if err := s.AssignIndices(); err != nil {
		return nil, err
	}
	if err := s.BuildNeighborLists(); err != nil {
		return nil, err
	}
	if err := s.AllocateBondOrderStorage(); err != nil {
		return nil, err
	}
	if err := s.EmptyBondOrderStorage(); err != nil {
		return nil, err
	}
	if err := s.FillBondOrderStorage(); err != nil {
		return nil, err
	}

	if p, ok := sc.ewaldParams(); ok {
		s.SetEwaldParameters(ewald.DirectSummation{}, p)
	}

	e, err := s.CalculateEnergy()
	if err != nil {
		return nil, err
	}
	forcesVec, stress, err := s.CalculateForces()
	if err != nil {
		return nil, err
	}
	chi, err := s.CalculateElectronegativities()
	if err != nil {
		return nil, err
	}

	if s.Verbose && mpi.Rank() == 0 {
		io.Pf("energy = %v\n", e)
		for i, f := range forcesVec {
			io.Pf("force[%d] = %v\n", i+1, f)
		}
		io.Pf("stress = %v\n", stress)
		for i, x := range chi {
			io.Pf("electronegativity[%d] = %v\n", i+1, x)
		}
	}

	if err := s.DumpDebug(0); err != nil {
		return nil, err
	}
	return s, nil
}
