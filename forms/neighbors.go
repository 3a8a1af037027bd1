// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forms

import (
	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/gosl/fun"
)

// neighborsForm is a 2-body bond-order factor counting smoothly-cut
// neighbors: each pair within "cutoff" contributes a smoothened count of 1
// to both atoms' raw sums, ramping to zero over the last "margin" distance
// before cutoff. Reference BOF behind the design scenario S4's coordination
// count.
type neighborsForm struct{}

func (neighborsForm) NumTargets() int { return 2 }

func neighborsSmoothen(p fun.Prms, r float64) (float64, float64, error) {
	cutoff := prmVal(p, "cutoff", 0)
	margin := prmVal(p, "margin", 0)
	soft := cutoff - margin
	return Smoothen(r, soft, cutoff)
}

func (neighborsForm) Sum(p fun.Prms, t Tuple) ([]float64, error) {
	f, _, err := neighborsSmoothen(p, t.Dists[0])
	if err != nil {
		return nil, err
	}
	return []float64{f, f}, nil
}

func (neighborsForm) Gradient(p fun.Prms, t Tuple) ([][3]float64, error) {
	_, df, err := neighborsSmoothen(p, t.Dists[0])
	if err != nil {
		return nil, err
	}
	dir := geometry.Direction(t.Seps[0])
	onAtom1 := [3]float64{df * dir[0], df * dir[1], df * dir[2]}
	return [][3]float64{
		{-onAtom1[0], -onAtom1[1], -onAtom1[2]},
		onAtom1,
	}, nil
}
