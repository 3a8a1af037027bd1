// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"github.com/cpmech/atomint/loop"
	"github.com/cpmech/gosl/mpi"
)

// Reduce all-reduces a loop.Result's accumulators across ranks in place;
// after each loop phase the accumulators are summed via an all-reduce. It
// is a no-op with MPI not started.
func Reduce(res *loop.Result) {
	if !mpi.IsOn() {
		return
	}

	energy := []float64{res.Energy}
	allReduceSum(energy)
	res.Energy = energy[0]

	if res.Forces != nil {
		flat := flattenVec3(res.Forces)
		allReduceSum(flat)
		unflattenVec3(flat, res.Forces)
	}

	if res.Electronegativity != nil {
		allReduceSum(res.Electronegativity)
	}

	stress := res.Stress[:]
	allReduceSum(stress)
}

func allReduceSum(v []float64) {
	work := make([]float64, len(v))
	mpi.AllReduceSum(v, work)
}

func flattenVec3(v [][3]float64) []float64 {
	out := make([]float64, len(v)*3)
	for i, f := range v {
		out[i*3], out[i*3+1], out[i*3+2] = f[0], f[1], f[2]
	}
	return out
}

func unflattenVec3(flat []float64, dst [][3]float64) {
	for i := range dst {
		dst[i][0], dst[i][1], dst[i][2] = flat[i*3], flat[i*3+1], flat[i*3+2]
	}
}
