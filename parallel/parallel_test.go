// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_partition_covers_every_atom_exactly_once(tst *testing.T) {

	chk.PrintTitle("partition without MPI owns every atom on the sole rank")

	owned := Partition(5)
	chk.Ints(tst, "owned", owned, []int{1, 2, 3, 4, 5})
}

func Test_kahan_sum_matches_naive_for_well_scaled_values(tst *testing.T) {

	chk.PrintTitle("Kahan sum reproduces a plain sum for well-conditioned inputs")

	values := []float64{1.0, 2.0, 3.0, 4.5, -0.5}
	got := KahanSum(values)
	chk.Scalar(tst, "sum", 1e-13, got, 10.0)
}

func Test_kahan_sum_order_independent_within_tolerance(tst *testing.T) {

	chk.PrintTitle("Kahan sum agrees regardless of accumulation order")

	forward := []float64{1e10, 1, -1e10, 1}
	backward := []float64{1, -1e10, 1, 1e10}
	a := KahanSum(forward)
	b := KahanSum(backward)
	chk.Scalar(tst, "order-independence", 1e-6, a, b)
}
