// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// PotentialRecord is one entry of the potential registry (the design
// "Potential record"). Targets holds the permutation-expanded target list
// (one Target per body position); Original holds the list as the caller
// gave it, before expansion, so asymmetric many-body forms (bond bending
// with a distinguished center) can still filter on the caller's intended
// roles during evaluation.
type PotentialRecord struct {
	FormID      string
	Params      fun.Prms
	HardCutoff  float64
	SoftCutoff  float64 // 0 disables smoothening (f_s == 1 always)
	Targets     []Target
	Original    []Target
	BOFGroupID  int // 0 means "no bond-order modulation"
	NumTargets  int // body count, len(Original)
}

// PotentialRegistry is the immutable, ordered collection of potential
// records (the design item 3). Records are appended only through Add, which
// performs permutation expansion and configuration validation.
type PotentialRegistry struct {
	Records []*PotentialRecord
	catalog map[string]bool // known form tags, for configuration validation
}

// NewPotentialRegistry creates an empty registry that validates FormID
// against the supplied catalog of known form tags (the design
// "configuration" kind: "a potential or BOF form name is not in the
// catalog").
func NewPotentialRegistry(knownForms map[string]bool) *PotentialRegistry {
	return &PotentialRegistry{catalog: knownForms}
}

// Add registers a new potential, expanding targets by permutation and
// appending one record per distinct ordering. hardCutoff must be positive
// and, if soft smoothening is requested, soft must be < hard (the design
// "numerical" kind catches soft > hard only at evaluation time for a
// degenerate *interval*; a non-positive cutoff is rejected here as a
// configuration error).
func (r *PotentialRegistry) Add(formID string, params fun.Prms, hardCutoff, softCutoff float64, targets []Target, groupID int) error {
	if r.catalog != nil && !r.catalog[formID] {
		return chk.Err("registry: unknown potential form %q", formID)
	}
	if hardCutoff <= 0 {
		return chk.Err("registry: hard cutoff must be positive, got %v", hardCutoff)
	}
	if len(targets) == 0 {
		return chk.Err("registry: potential %q needs at least one target", formID)
	}
	original := append([]Target(nil), targets...)
	for _, ordering := range permutations(targets) {
		r.Records = append(r.Records, &PotentialRecord{
			FormID:     formID,
			Params:     params,
			HardCutoff: hardCutoff,
			SoftCutoff: softCutoff,
			Targets:    ordering,
			Original:   original,
			BOFGroupID: groupID,
			NumTargets: len(targets),
		})
	}
	return nil
}

// AssignIndices computes, for every atom, the list of record indices whose
// first-position target accepts it (the design), and caches each atom's
// effective cutoff as the largest hard cutoff among potentials targeting it
// in position 1 (the design).
func (r *PotentialRegistry) AssignIndices(set *atom.Set) {
	for _, a := range set.Atoms {
		a.PotentialIndices = a.PotentialIndices[:0]
		a.EffectiveCutoff = 0
		for i, rec := range r.Records {
			if rec.Targets[0].Matches(a) {
				a.PotentialIndices = append(a.PotentialIndices, i)
				if rec.HardCutoff > a.EffectiveCutoff {
					a.EffectiveCutoff = rec.HardCutoff
				}
			}
		}
	}
}

// MaxCutoff returns the largest hard cutoff across every registered
// potential, used to size the spatial partitioning (the design).
func (r *PotentialRegistry) MaxCutoff() float64 {
	var m float64
	for _, rec := range r.Records {
		if rec.HardCutoff > m {
			m = rec.HardCutoff
		}
	}
	return m
}
