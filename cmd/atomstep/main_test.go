// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Test_atomstep_one_atom_constant_potential exercises the whole scene ->
// CoreState -> evaluation path end to end, the way a one-off debug run
// would, following inp/t_read_test.go's /tmp/... fixture convention.
func Test_atomstep_one_atom_constant_potential(tst *testing.T) {

	chk.PrintTitle("atomstep: scene file drives a one-atom constant-potential run")

	dir := "/tmp/atomint/atomstep"
	dbName := "one_atom.db.json"
	io.WriteFileSD(dir, dbName, `{
		"potentials": [
			{"form": "constant", "params": [{"n": "V", "v": 2.0}], "hard_cutoff": 1.0,
			 "soft_cutoff": 0, "targets": [{"elements": ["X"]}]}
		]
	}`)

	sceneName := "one_atom.scene.json"
	io.WriteFileSD(dir, sceneName, io.Sf(`{
		"lattice": [[10,0,0],[0,10,0],[0,0,10]],
		"periodic": [false,false,false],
		"database": "%s/%s",
		"atoms": [{"element": "X", "position": [0,0,0], "charge": 0}]
	}`, dir, dbName))

	s, err := run(dir+"/"+sceneName, false)
	if err != nil {
		tst.Fatalf("run: %v", err)
	}

	e, err := s.CalculateEnergy()
	if err != nil {
		tst.Fatalf("CalculateEnergy: %v", err)
	}
	chk.Scalar(tst, "energy", 1e-14, e, 2.0)
}
