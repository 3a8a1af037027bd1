// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel is the MPI-style bulk-synchronous reducer: it partitions
// the outer atom loop across ranks and all-reduces
// whatever the loop package accumulated. It wraps github.com/cpmech/gosl/mpi
// the same way fem.FEM's solver loop does: mpi.Rank()/mpi.Size() gate who
// does what, mpi.AllReduceSum folds partial sums back together.
package parallel

import "github.com/cpmech/gosl/mpi"

// Partition returns the 1-based atom indices this rank owns, splitting
// deterministically by atom index modulo rank count (the design
// "Partitions the outer atom iteration deterministically by atom index
// modulo rank count"). With MPI not started, every atom belongs to the
// sole rank.
func Partition(nAtoms int) []int {
	if !mpi.IsOn() {
		owned := make([]int, nAtoms)
		for i := range owned {
			owned[i] = i + 1
		}
		return owned
	}
	rank, size := mpi.Rank(), mpi.Size()
	var owned []int
	for i := 1; i <= nAtoms; i++ {
		if (i-1)%size == rank {
			owned = append(owned, i)
		}
	}
	return owned
}
