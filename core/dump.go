// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"sort"

	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// DumpDebug writes the one optional debug artifact the design names:
// "dump_<rank>_<step>.txt containing atom positions, forces, and sorted
// neighbor lists with distances." Mirrors gofem's tools/GenVtu.go naming
// convention (`fnkey_%06d_label.vtu`) adapted to the per-rank/per-step shape
// the design fixes.
func (s *CoreState) DumpDebug(step int) error {
	if s.Atoms == nil || s.Cell == nil {
		return wrap(State, "core: dump_debug: no atoms or cell")
	}
	forces, _, err := s.CalculateForces()
	if err != nil {
		return err
	}

	var buf string
	buf += io.Sf("step = %d, rank = %d, natoms = %d\n", step, mpi.Rank(), s.Atoms.N())
	for i := 1; i <= s.Atoms.N(); i++ {
		a := s.Atoms.Get(i)
		f := forces[i-1]
		buf += io.Sf("atom %4d  elem=%-4s  pos=(%+.6e,%+.6e,%+.6e)  force=(%+.6e,%+.6e,%+.6e)\n",
			a.Index, a.Element, a.Position[0], a.Position[1], a.Position[2], f[0], f[1], f[2])

		type neighborDist struct {
			index int
			dist  float64
		}
		nbs := make([]neighborDist, len(a.Neighbors))
		for k, nb := range a.Neighbors {
			other := s.Atoms.Get(nb.Index)
			sep := s.Cell.Separation(a.Position, other.Position, nb.Offset)
			nbs[k] = neighborDist{nb.Index, geometry.Norm(sep)}
		}
		sort.Slice(nbs, func(i, j int) bool { return nbs[i].dist < nbs[j].dist })
		for _, nb := range nbs {
			buf += io.Sf("    neighbor %4d  dist=%.6e\n", nb.index, nb.dist)
		}
	}

	filename := io.Sf("dump_%d_%d.txt", mpi.Rank(), step)
	io.WriteFileSD(s.DirOut, filename, buf)
	s.step = step
	return nil
}
