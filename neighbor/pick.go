// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package neighbor builds per-atom neighbor lists via a subcell spatial
// partitioning (the design) and provides the canonical-tuple predicate
// ("pick") that every enumeration in this core (pairs, triplets,
// quadruplets) relies on to visit each unordered n-tuple exactly once.
package neighbor

// Pick decides whether the ordered pair (i, j, offset) is the canonical
// representative of the unordered pair {i@origin, j@offset}. The rule
// (the design step 4): j > i is always canonical; j == i is canonical
// only when offset is lexicographically positive (the pair is an atom with
// its own periodic image); j < i is never canonical. This fixed rule
// guarantees every unordered pair is visited exactly once globally,
// regardless of which atom's neighbor list it is discovered from.
func Pick(i, j int, offset [3]int) bool {
	if j > i {
		return true
	}
	if j < i {
		return false
	}
	return lexPositive(offset)
}

// lexPositive reports whether offset is lexicographically greater than the
// zero triple, i.e. its first nonzero component is positive.
func lexPositive(o [3]int) bool {
	for _, c := range o {
		if c != 0 {
			return c > 0
		}
	}
	return false
}

// Negate returns the inverse offset, used when mirroring a canonical
// pair (i,j,o) into atom j's own neighbor-list entry (j,i,-o).
func Negate(o [3]int) [3]int {
	return [3]int{-o[0], -o[1], -o[2]}
}

// Add combines two offsets, used when composing offsets across a chain of
// neighbor relations (e.g. a triplet's third bond offset = sum of the two
// pair offsets it was built from).
func Add(a, b [3]int) [3]int {
	return [3]int{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub subtracts offset b from a.
func Sub(a, b [3]int) [3]int {
	return [3]int{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}
