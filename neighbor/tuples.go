// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neighbor

import "github.com/cpmech/atomint/atom"

// TripletExtension is one third atom completing a canonical triplet built
// from a canonical pair (i, j, offIJ) (the design "Triplet terms"). When
// CenterIsI is true the triplet chain is (j, i, k) with center i and
// ChainOffset is the offset from i to k; otherwise the chain is (i, j, k)
// with center j and ChainOffset is the offset from j to k.
type TripletExtension struct {
	K           int
	CenterIsI   bool
	ChainOffset [3]int
}

// ExtendPairToTriplets walks i's and j's neighbor lists to find every
// third atom k that completes a canonical triplet with the canonical pair
// (i, j, offIJ): examining i's neighbors for k with pick(j, k, offset_jk)
// true gives a triplet centered on i; examining j's neighbors for k with
// pick(i, k, offset_ik) true gives a triplet centered on j. The same k can
// come out of both passes, as two different triplets (one centered on i,
// one on j); since pick admits exactly one of (j,k,off) / (k,j,-off) as
// canonical, a given triplet is not yielded twice.
func ExtendPairToTriplets(atoms *atom.Set, i, j int, offIJ [3]int) []TripletExtension {
	var out []TripletExtension
	ai := atoms.Get(i)
	for _, nb := range ai.Neighbors {
		k := nb.Index
		if k == j && nb.Offset == offIJ {
			continue // k would just be the pair's own j
		}
		offJK := Sub(nb.Offset, offIJ)
		if Pick(j, k, offJK) {
			out = append(out, TripletExtension{K: k, CenterIsI: true, ChainOffset: nb.Offset})
		}
	}
	aj := atoms.Get(j)
	for _, nb := range aj.Neighbors {
		k := nb.Index
		if k == i && nb.Offset == Negate(offIJ) {
			continue // k would just be the pair's own i
		}
		offIK := Add(nb.Offset, offIJ)
		if Pick(i, k, offIK) {
			out = append(out, TripletExtension{K: k, CenterIsI: false, ChainOffset: nb.Offset})
		}
	}
	return out
}

// QuadrupletExtension is one fourth atom extending a canonical triplet's
// chain at the far end (the design "4-body terms are enumerated by
// extending each triplet by one neighbor at each end"). L holds the
// fourth atom's index and ChainOffset the offset from the chain's current
// last atom to it.
type QuadrupletExtension struct {
	L           int
	ChainOffset [3]int
}

// ExtendTripletToQuadruplets extends the chain (first, mid, last) — with
// mid the triplet's center and chain-offset offMidLast the offset from mid
// to last — by one neighbor of last, excluding the disallowed self-closure
// where the fourth atom would be the atom diagonally opposite it in the
// resulting 4-chain (i.e. "first"), and filtering through pick so the
// extended chain is the canonical representative of the new bond.
func ExtendTripletToQuadruplets(atoms *atom.Set, first, mid, last int, offMidLast [3]int) []QuadrupletExtension {
	var out []QuadrupletExtension
	alast := atoms.Get(last)
	for _, nb := range alast.Neighbors {
		l := nb.Index
		if l == mid && nb.Offset == Negate(offMidLast) {
			continue // would just close back onto mid
		}
		offLastL := nb.Offset
		// disallowed self-closure: the fourth atom must differ from the
		// atom diagonally opposite it in the chain (first, at position 1).
		if l == first {
			continue
		}
		if Pick(last, l, offLastL) {
			out = append(out, QuadrupletExtension{L: l, ChainOffset: offLastL})
		}
	}
	return out
}
