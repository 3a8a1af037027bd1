// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forms

import "github.com/cpmech/gosl/utl"

func dot(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func neg(a [3]float64) [3]float64 { return [3]float64{-a[0], -a[1], -a[2]} }

func add(a, b [3]float64) [3]float64 { return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

func sub(a, b [3]float64) [3]float64 { return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// cross is the cross product, computed through gosl/utl.Cross3d the same
// way gofem's beam/rod elements build their local triads; utl.Cross3d
// writes into slices, so the [3]float64 arrays this package works with are
// borrowed into slices around the call.
func cross(a, b [3]float64) [3]float64 {
	var w [3]float64
	utl.Cross3d(w[:], a[:], b[:])
	return w
}
