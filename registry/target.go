// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package registry holds the immutable, ordered potential and bond-order
// factor (BOF) parameter records (the design "Potential record" / "BOF
// parameter record") and the per-atom targeting step that runs once after
// registration (the design).
package registry

import "github.com/cpmech/atomint/atom"

// Target is one position's filter inside a potential or BOF record: the
// element/tag/index sets it accepts. An empty set in any dimension means
// "no restriction on that dimension"; a record with all three sets empty
// targets every atom.
type Target struct {
	Elements []string
	Tags     []int
	Indices  []int
}

// Matches reports whether atom a satisfies this Target's filter. This is
// the concrete, in-core implementation of the position-matching test that
// the design delegates to "bond_order_factor_affects_atom" for BOFs and
// the equivalent logic for potentials — the filter itself is plain data, so
// unlike the functional-form kernels it is not treated as an external
// collaborator here.
func (t Target) Matches(a *atom.Atom) bool {
	if len(t.Elements) > 0 && !containsStr(t.Elements, a.Element) {
		return false
	}
	if len(t.Tags) > 0 && !containsInt(t.Tags, a.Tag) {
		return false
	}
	if len(t.Indices) > 0 && !containsInt(t.Indices, a.Index) {
		return false
	}
	return true
}

// equal reports whether two Targets have identical filter sets, used to
// deduplicate permutation expansion when some body positions share the
// same filter.
func (t Target) equal(o Target) bool {
	return equalStrSlice(t.Elements, o.Elements) &&
		equalIntSlice(t.Tags, o.Tags) &&
		equalIntSlice(t.Indices, o.Indices)
}

func containsStr(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func equalStrSlice(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalIntSlice(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// permutations returns every distinct ordering of targets (as a
// target-list, not an index list), used at registration time to expand a
// record such as [Si, O] into both the Si-O and O-Si orderings (the design,
// "Creation from user input performs permutation expansion"). Orderings
// that come out identical (because two positions share the same filter)
// are collapsed to one.
func permutations(targets []Target) [][]Target {
	n := len(targets)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var perms [][]int
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			p := append([]int(nil), idx...)
			perms = append(perms, p)
			return
		}
		for i := k; i < n; i++ {
			idx[k], idx[i] = idx[i], idx[k]
			permute(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	permute(0)

	var out [][]Target
	for _, p := range perms {
		row := make([]Target, n)
		for i, pi := range p {
			row[i] = targets[pi]
		}
		dup := false
		for _, existing := range out {
			if rowEqual(existing, row) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, row)
		}
	}
	return out
}

func rowEqual(a, b []Target) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}
