// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

// KahanSum compensated-sums values in the given fixed order. the design:
// "when strict bit-for-bit reproducibility across rank counts is required,
// a Kahan or pairwise reduction must be used." gosl/mpi's AllReduceSum
// performs a plain MPI sum reduction with no compensation; KahanSum is a
// fixed-order compensated alternative. Neither Reduce nor CoreState calls
// it.
func KahanSum(values []float64) float64 {
	var sum, c float64
	for _, v := range values {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}
