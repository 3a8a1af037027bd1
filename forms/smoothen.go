// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forms

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Smoothen computes the generic cosine switching function and its
// derivative with respect to distance (the design's smoothening_factor /
// smoothening_gradient): 1 for r <= soft, 0 for r >= hard, a smooth cosine
// ramp in between. soft == 0 (no soft cutoff requested) returns f=1, df=0
// unconditionally. soft > hard is the "degenerate smoothening interval"
// numerical-kind error (the design).
func Smoothen(r, soft, hard float64) (f, df float64, err error) {
	if soft <= 0 {
		return 1, 0, nil
	}
	if soft > hard {
		return 0, 0, chk.Err("forms: degenerate smoothening interval: soft=%v > hard=%v", soft, hard)
	}
	switch {
	case r <= soft:
		return 1, 0, nil
	case r >= hard:
		return 0, 0, nil
	}
	width := hard - soft
	x := (r - soft) / width
	f = 0.5 * (1 + math.Cos(math.Pi*x))
	df = -0.5 * math.Pi / width * math.Sin(math.Pi*x)
	return f, df, nil
}
