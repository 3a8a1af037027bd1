// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/cpmech/atomint/ewald"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// atomSpec is one JSON atom entry.
type atomSpec struct {
	Element  string     `json:"element"`
	Position [3]float64 `json:"position"`
	Charge   float64    `json:"charge"`
}

// ewaldSpec is the optional long-range add-on block; ewaldParams converts
// it to ewald.Params.
type ewaldSpec struct {
	RealCutoff float64    `json:"real_cutoff"`
	KCutoff    [3]int     `json:"k_cutoff"`
	Sigma      float64    `json:"sigma"`
	Epsilon0   float64    `json:"epsilon0"`
	Scaler     []float64  `json:"scaler"`
}

// scene is the on-disk input a single atomstep run acts on: lattice and
// atoms inline, potentials/BOFs out in a separate database file, mirroring
// gofem's own .sim/.mat split (inp.Simulation.Data.Matfile).
type scene struct {
	Lattice  [3][3]float64 `json:"lattice"`
	Periodic [3]bool       `json:"periodic"`
	Database string        `json:"database"`
	Atoms    []atomSpec    `json:"atoms"`
	Ewald    *ewaldSpec    `json:"ewald"`
	MaxCutoff float64      `json:"max_cutoff"`
}

// readScene loads and decodes a scene file from disk.
func readScene(path string) (*scene, error) {
	buf, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("atomstep: cannot read %q: %v", path, err)
	}
	var sc scene
	if err := json.Unmarshal(buf, &sc); err != nil {
		return nil, chk.Err("atomstep: cannot decode %q: %v", path, err)
	}
	return &sc, nil
}

// ewaldParams converts the optional JSON block to ewald.Params; ok reports
// whether a block was present at all.
func (sc *scene) ewaldParams() (ewald.Params, bool) {
	if sc.Ewald == nil {
		return ewald.Params{}, false
	}
	return ewald.Params{
		RealCutoff: sc.Ewald.RealCutoff,
		KCutoff:    sc.Ewald.KCutoff,
		Sigma:      sc.Ewald.Sigma,
		Epsilon0:   sc.Ewald.Epsilon0,
		Scaler:     sc.Ewald.Scaler,
	}, true
}
