// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import (
	"github.com/cpmech/atomint/bof"
	"github.com/cpmech/gosl/chk"
)

func internalErr(format string, args ...interface{}) error {
	return chk.Err("loop: internal: "+format, args...)
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func add3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func unit(v [3]float64, n float64) [3]float64 {
	if n == 0 {
		return [3]float64{}
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

// voigtAdd accumulates r⊗f into a 6-component Voigt-order stress (xx, yy,
// zz, yz, xz, xy), matching bof.voigtAdd's convention.
func voigtAdd(v *[6]float64, r, f [3]float64) {
	v[0] += r[0] * f[0]
	v[1] += r[1] * f[1]
	v[2] += r[2] * f[2]
	v[3] += 0.5 * (r[1]*f[2] + r[2]*f[1])
	v[4] += 0.5 * (r[0]*f[2] + r[2]*f[0])
	v[5] += 0.5 * (r[0]*f[1] + r[1]*f[0])
}

// gradForFactorCached is a thin wrapper kept so the body-count files read
// uniformly; the caching itself lives in the bof package, where
// GradForFactor reuses the slot-1 table and records its result in slot 2.
func gradForFactorCached(d *Driver, group, center int) (map[int][3]float64, [6]float64, error) {
	return bof.GradForFactor(d.Cache, d.Atoms, d.Cell, d.BOFs, d.Catalog, group, center)
}
