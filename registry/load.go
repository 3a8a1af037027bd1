// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// TargetSpec is the JSON-friendly form of Target, used by File below and
// converted to a Target by toTarget.
type TargetSpec struct {
	Elements []string `json:"elements"`
	Tags     []int    `json:"tags"`
	Indices  []int    `json:"indices"`
}

func (s TargetSpec) toTarget() Target {
	return Target{Elements: s.Elements, Tags: s.Tags, Indices: s.Indices}
}

// PotentialSpec is one JSON potential entry.
type PotentialSpec struct {
	Form       string       `json:"form"`
	Params     fun.Prms     `json:"params"`
	HardCutoff float64      `json:"hard_cutoff"`
	SoftCutoff float64      `json:"soft_cutoff"`
	Targets    []TargetSpec `json:"targets"`
	BOFGroup   int          `json:"bof_group"`
}

// BOFSpec is one JSON bond-order-factor entry; ParamsBody has up to 4
// entries, one per body count (1-body first).
type BOFSpec struct {
	Form        string       `json:"form"`
	ParamsBody  []fun.Prms   `json:"params_by_body"`
	HardCutoff  float64      `json:"hard_cutoff"`
	SoftCutoff  float64      `json:"soft_cutoff"`
	Targets     []TargetSpec `json:"targets"`
	Group       int          `json:"group"`
	PostProcess bool         `json:"post_process"`
}

// File is the on-disk shape of a potential+BOF database, the scene-building
// caller's equivalent of gofem's `inp.MatDb` `.mat` JSON file
// (the design "Configuration / parameter ingestion"). Functions mirrors
// gofem's `.sim` "functions" block (inp.FuncsData): named, time-dependent
// scalars a caller can look up instead of inlining a bare constant.
type File struct {
	Potentials       []PotentialSpec `json:"potentials"`
	BondOrderFactors []BOFSpec       `json:"bond_order_factors"`
	Functions        []FunctionSpec  `json:"functions"`
}

// Load decodes a File from JSON bytes and populates pr/br, in registration
// order, via Add (so configuration validation runs exactly as it would for
// programmatically-built registries), and builds the named function table.
func Load(data []byte, pr *PotentialRegistry, br *BOFRegistry) (*FunctionTable, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, chk.Err("registry: cannot decode JSON database: %v", err)
	}
	for _, p := range f.Potentials {
		targets := make([]Target, len(p.Targets))
		for i, t := range p.Targets {
			targets[i] = t.toTarget()
		}
		if err := pr.Add(p.Form, p.Params, p.HardCutoff, p.SoftCutoff, targets, p.BOFGroup); err != nil {
			return nil, err
		}
	}
	for _, b := range f.BondOrderFactors {
		targets := make([]Target, len(b.Targets))
		for i, t := range b.Targets {
			targets[i] = t.toTarget()
		}
		var byBody [4]fun.Prms
		for i := 0; i < len(b.ParamsBody) && i < 4; i++ {
			byBody[i] = b.ParamsBody[i]
		}
		if err := br.Add(b.Form, byBody, b.HardCutoff, b.SoftCutoff, targets, b.Group, b.PostProcess); err != nil {
			return nil, err
		}
	}
	functions, err := BuildFunctionTable(f.Functions)
	if err != nil {
		return nil, err
	}
	return functions, nil
}

// LoadFile reads and decodes a potential+BOF database from disk via
// gosl/io, the way gofem's inp.ReadMat does.
func LoadFile(path string, pr *PotentialRegistry, br *BOFRegistry) (*FunctionTable, error) {
	buf, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("registry: cannot read %q: %v", path, err)
	}
	return Load(buf, pr, br)
}
