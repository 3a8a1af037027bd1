// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geometry defines the supercell/periodicity contract. Per
// the design this is an external collaborator: the core depends only on
// the Cell interface. Triclinic is a reference implementation good
// enough to drive every end-to-end scenario in the design
package geometry

import "math"

// Cell is the contract the core's neighbor and separation code depends on.
// Implementations own the lattice vectors, their inverse, and per-axis
// periodicity; they are immutable during a calculation step (the design,
// "Supercell... Immutable during a calculation step; rebuilding it
// invalidates neighbor lists and BOF caches").
type Cell interface {
	Vectors() [3][3]float64     // lattice vectors as rows
	Inverse() [3][3]float64     // inverse of the matrix formed by Vectors' rows
	Periodic() [3]bool          // per-axis periodicity flag
	Wrap(pos [3]float64) (wrapped [3]float64, offset [3]int)
	Separation(a, b [3]float64, offset [3]int) [3]float64
}

// Triclinic is the reference Cell implementation: three lattice vectors
// (rows of Lattice), computed inverse, and a periodicity flag per axis.
type Triclinic struct {
	Lattice  [3][3]float64
	inverse  [3][3]float64
	periodic [3]bool
}

// New builds a Triclinic cell and precomputes its inverse.
func New(lattice [3][3]float64, periodic [3]bool) *Triclinic {
	c := &Triclinic{Lattice: lattice, periodic: periodic}
	c.inverse = invert3(lattice)
	return c
}

// NewOrthorhombic is a convenience constructor for axis-aligned cells, the
// common case in the end-to-end scenarios of the design
func NewOrthorhombic(lx, ly, lz float64, periodic [3]bool) *Triclinic {
	return New([3][3]float64{{lx, 0, 0}, {0, ly, 0}, {0, 0, lz}}, periodic)
}

func (c *Triclinic) Vectors() [3][3]float64 { return c.Lattice }
func (c *Triclinic) Inverse() [3][3]float64 { return c.inverse }
func (c *Triclinic) Periodic() [3]bool      { return c.periodic }

// Wrap maps an absolute position into the primary image along periodic axes
// and returns the integer offset triple that was subtracted (the number of
// lattice vectors removed to get there). Non-periodic axes are left
// untouched with an offset of zero.
func (c *Triclinic) Wrap(pos [3]float64) (wrapped [3]float64, offset [3]int) {
	frac := mulVecT(c.inverse, pos)
	for k := 0; k < 3; k++ {
		if !c.periodic[k] {
			continue
		}
		n := math.Floor(frac[k])
		offset[k] = int(n)
		frac[k] -= n
	}
	wrapped = mulVecT(c.Lattice, frac)
	return
}

// Separation computes sep = b - a + offset·Lattice, the minimum-image
// separation vector used throughout the neighbor and interaction code
// (the design step 3).
func (c *Triclinic) Separation(a, b [3]float64, offset [3]int) [3]float64 {
	var sep [3]float64
	for k := 0; k < 3; k++ {
		sep[k] = b[k] - a[k]
	}
	for k := 0; k < 3; k++ {
		if offset[k] == 0 {
			continue
		}
		f := float64(offset[k])
		for j := 0; j < 3; j++ {
			sep[j] += f * c.Lattice[k][j]
		}
	}
	return sep
}

// Norm returns the Euclidean length of a 3-vector.
func Norm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Norm2 returns the squared Euclidean length, avoiding a sqrt on the hot
// cutoff-comparison path (the design step 3: "if |sep|² < cutoff²(a)").
func Norm2(v [3]float64) float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Direction returns the unit vector along v, or the zero vector if v is
// degenerate (the design Failure: "positions producing a degenerate
// distance of exactly zero are permitted").
func Direction(v [3]float64) [3]float64 {
	n := Norm(v)
	if n == 0 {
		return [3]float64{}
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

func mulVec(m [3][3]float64, v [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// mulVecT multiplies a row vector by a matrix whose rows are basis vectors:
// out = sum_k v[k] * m[k]
func mulVecT(m [3][3]float64, v [3]float64) [3]float64 {
	var out [3]float64
	for k := 0; k < 3; k++ {
		for j := 0; j < 3; j++ {
			out[j] += v[k] * m[k][j]
		}
	}
	return out
}

func invert3(m [3][3]float64) [3][3]float64 {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	var inv [3][3]float64
	if det == 0 {
		return inv
	}
	invdet := 1.0 / det
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invdet
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invdet
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invdet
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invdet
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invdet
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invdet
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invdet
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invdet
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invdet
	return inv
}
