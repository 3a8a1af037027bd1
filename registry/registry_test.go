// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"testing"

	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func Test_permutation01(tst *testing.T) {

	chk.PrintTitle("permutation01. pair potential targets expand both ways")

	pr := NewPotentialRegistry(map[string]bool{"lj": true})
	targets := []Target{{Elements: []string{"Si"}}, {Elements: []string{"O"}}}
	err := pr.Add("lj", fun.Prms{}, 2.5, 2.0, targets, 0)
	if err != nil {
		tst.Errorf("Add failed: %v", err)
		return
	}
	if len(pr.Records) != 2 {
		tst.Errorf("expected 2 expanded records (Si-O, O-Si), got %d", len(pr.Records))
	}
	siFirst, oFirst := false, false
	for _, rec := range pr.Records {
		if rec.Targets[0].Elements[0] == "Si" {
			siFirst = true
		}
		if rec.Targets[0].Elements[0] == "O" {
			oFirst = true
		}
		if len(rec.Original) != 2 || rec.Original[0].Elements[0] != "Si" {
			tst.Errorf("original target list should stay in caller order")
		}
	}
	if !siFirst || !oFirst {
		tst.Errorf("both orderings should be present")
	}
}

func Test_permutation02(tst *testing.T) {

	chk.PrintTitle("permutation02. identical targets collapse to a single record")

	pr := NewPotentialRegistry(nil)
	targets := []Target{{Elements: []string{"X"}}, {Elements: []string{"X"}}}
	pr.Add("const", fun.Prms{}, 1.0, 0, targets, 0)
	if len(pr.Records) != 1 {
		tst.Errorf("expected 1 record when both targets are identical, got %d", len(pr.Records))
	}
}

func Test_configuration_errors(tst *testing.T) {

	chk.PrintTitle("configuration_errors. bad form and bad cutoff are rejected")

	pr := NewPotentialRegistry(map[string]bool{"lj": true})
	if err := pr.Add("bogus", fun.Prms{}, 1.0, 0, []Target{{}}, 0); err == nil {
		tst.Errorf("unknown form should be rejected")
	}
	if err := pr.Add("lj", fun.Prms{}, -1.0, 0, []Target{{}}, 0); err == nil {
		tst.Errorf("non-positive cutoff should be rejected")
	}
}

func Test_assign_indices01(tst *testing.T) {

	chk.PrintTitle("assign_indices01. per-atom targeting and effective cutoff")

	pr := NewPotentialRegistry(nil)
	pr.Add("const", fun.Prms{}, 1.5, 0, []Target{{Elements: []string{"Cu"}}}, 0)
	pr.Add("lj", fun.Prms{}, 3.0, 0, []Target{{Elements: []string{"Cu"}}, {Elements: []string{"O"}}}, 0)

	set := atom.NewSet(2)
	set.Get(1).Element = "Cu"
	set.Get(2).Element = "O"
	pr.AssignIndices(set)

	if len(set.Get(1).PotentialIndices) != 2 {
		tst.Errorf("Cu atom should match both records, got %v", set.Get(1).PotentialIndices)
	}
	if set.Get(1).EffectiveCutoff != 3.0 {
		tst.Errorf("effective cutoff should be the largest matching hard cutoff, got %v", set.Get(1).EffectiveCutoff)
	}
	if len(set.Get(2).PotentialIndices) != 1 {
		tst.Errorf("O atom should match only the expanded O-Cu record in position 1, got %v", set.Get(2).PotentialIndices)
	}
}

func Test_bof_postprocessor01(tst *testing.T) {

	chk.PrintTitle("bof_postprocessor01. first matching post-processor wins")

	br := NewBOFRegistry(nil)
	var none [4]fun.Prms
	br.Add("neighbors", none, 1.5, 0, []Target{{Elements: []string{"Cu"}}, {Elements: []string{"O"}}}, 1, false)
	br.Add("c_scale", none, 1.5, 0, []Target{{Elements: []string{"Cu"}}}, 1, true)

	rec, ok := br.PostProcessor(1, "Cu")
	if !ok || rec.FormID != "c_scale" {
		tst.Errorf("expected c_scale as the post-processor for Cu in group 1")
	}
	_, ok = br.PostProcessor(1, "O")
	if ok {
		tst.Errorf("no post-processor should match element O")
	}
}

func Test_load_functions01(tst *testing.T) {

	chk.PrintTitle("load_functions01. a database's named functions build and evaluate")

	pr := NewPotentialRegistry(map[string]bool{"constant": true})
	br := NewBOFRegistry(nil)

	functions, err := Load([]byte(`{
		"potentials": [
			{"form": "constant", "params": [{"n": "V", "v": 1.0}], "hard_cutoff": 1.0,
			 "soft_cutoff": 0, "targets": [{"elements": ["X"]}]}
		],
		"functions": [
			{"name": "switch", "type": "cte", "params": [{"n": "c", "v": 0.5}]}
		]
	}`), pr, br)
	if err != nil {
		tst.Fatalf("Load: %v", err)
	}

	fcn, ok := functions.Get("switch")
	if !ok {
		tst.Fatalf("expected to find function %q", "switch")
	}
	if v := fcn.F(0, nil); v != 0.5 {
		tst.Errorf("expected the constant function to evaluate to 0.5 at t=0, got %v", v)
	}

	if _, ok := functions.Get("missing"); ok {
		tst.Errorf("expected no function named %q", "missing")
	}
}
