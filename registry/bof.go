// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// BOFRecord is one entry of the bond-order-factor registry (the design "BOF
// parameter record"). ParamsByBody splits the parameter vector by body
// count: ParamsByBody[0] are 1-body parameters, [1] are 2-body, [2] are
// 3-body, [3] are 4-body — mirroring how msolid/inp split solid-model
// parameters by role, generalized to body arity here.
type BOFRecord struct {
	FormID       string
	ParamsByBody [4]fun.Prms
	HardCutoff   float64
	SoftCutoff   float64
	Targets      []Target
	Original     []Target
	GroupID      int
	NumTargets   int
	PostProcess  bool // true: this record supplies the per-atom scaling function f_i
}

// BOFRegistry is the immutable, ordered collection of BOF records.
type BOFRegistry struct {
	Records []*BOFRecord
	catalog map[string]bool
}

// NewBOFRegistry creates an empty registry validating FormID against the
// supplied catalog.
func NewBOFRegistry(knownForms map[string]bool) *BOFRegistry {
	return &BOFRegistry{catalog: knownForms}
}

// Add registers a new BOF record, expanding targets by permutation exactly
// as PotentialRegistry.Add does.
func (r *BOFRegistry) Add(formID string, paramsByBody [4]fun.Prms, hardCutoff, softCutoff float64, targets []Target, groupID int, postProcess bool) error {
	if r.catalog != nil && !r.catalog[formID] {
		return chk.Err("registry: unknown BOF form %q", formID)
	}
	if hardCutoff <= 0 {
		return chk.Err("registry: BOF hard cutoff must be positive, got %v", hardCutoff)
	}
	if len(targets) == 0 {
		return chk.Err("registry: BOF %q needs at least one target", formID)
	}
	original := append([]Target(nil), targets...)
	for _, ordering := range permutations(targets) {
		r.Records = append(r.Records, &BOFRecord{
			FormID:       formID,
			ParamsByBody: paramsByBody,
			HardCutoff:   hardCutoff,
			SoftCutoff:   softCutoff,
			Targets:      ordering,
			Original:     original,
			GroupID:      groupID,
			NumTargets:   len(targets),
			PostProcess:  postProcess,
		})
	}
	return nil
}

// AssignIndices computes, for every atom, the list of BOF record indices
// whose first-position target accepts it (the design).
func (r *BOFRegistry) AssignIndices(set *atom.Set) {
	for _, a := range set.Atoms {
		a.BOFIndices = a.BOFIndices[:0]
		for i, rec := range r.Records {
			if rec.Targets[0].Matches(a) {
				a.BOFIndices = append(a.BOFIndices, i)
				if rec.HardCutoff > a.EffectiveCutoff {
					a.EffectiveCutoff = rec.HardCutoff
				}
			}
		}
	}
}

// GroupIDs returns the distinct BOF group ids referenced by at least one
// record, in first-registration order — used to size the BOF cache.
func (r *BOFRegistry) GroupIDs() []int {
	var ids []int
	seen := map[int]bool{}
	for _, rec := range r.Records {
		if !seen[rec.GroupID] {
			seen[rec.GroupID] = true
			ids = append(ids, rec.GroupID)
		}
	}
	return ids
}

// PostProcessor returns the first BOF record in registration order that (a)
// belongs to group, (b) has PostProcess set, and (c) whose first original
// target accepts element el — the contract the design and open question 3
// fix as "first matching BOF record", kept deliberately rather than
// resorted by specificity.
func (r *BOFRegistry) PostProcessor(group int, el string) (*BOFRecord, bool) {
	for _, rec := range r.Records {
		if rec.GroupID != group || !rec.PostProcess {
			continue
		}
		if len(rec.Original) == 0 {
			continue
		}
		if len(rec.Original[0].Elements) > 0 && !containsStr(rec.Original[0].Elements, el) {
			continue
		}
		return rec, true
	}
	return nil, false
}
