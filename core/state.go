// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core is the explicit re-architecture target of the design: a
// CoreState value the caller owns and passes, replacing the source's
// process-global atoms/cell/registries/cache. Every imperative operation of
// the design is a method on *CoreState.
package core

import (
	"time"

	"github.com/cpmech/atomint/atom"
	"github.com/cpmech/atomint/bof"
	"github.com/cpmech/atomint/ewald"
	"github.com/cpmech/atomint/forms"
	"github.com/cpmech/atomint/geometry"
	"github.com/cpmech/atomint/loop"
	"github.com/cpmech/atomint/neighbor"
	"github.com/cpmech/atomint/parallel"
	"github.com/cpmech/atomint/registry"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	gmpi "github.com/cpmech/gosl/mpi"
)

// CoreState owns one simulation's atoms, cell, registries, BOF cache and
// optional Ewald kernel (the design "Re-architect as a CoreState value
// owned by the caller; all operations take this value as their first
// argument" — here expressed idiomatically as methods instead).
type CoreState struct {
	Atoms      *atom.Set
	Cell       geometry.Cell
	Catalog    *forms.Catalog
	Potentials *registry.PotentialRegistry
	BOFs       *registry.BOFRegistry
	Cache      *bof.Cache
	Grid       *neighbor.Grid

	EwaldKernel  ewald.Kernel
	EwaldParams  ewald.Params
	EwaldEnabled bool

	// Functions is the named time-dependent scalar table a database file's
	// "functions" block builds (registry.BuildFunctionTable); nil until a
	// caller loads one. ApplyScalerFunction below is the one place it feeds
	// into evaluation.
	Functions *registry.FunctionTable

	// Verbose gates console output as fem.FEM.ShowMsg does; logf prints
	// only when it is true and this is rank 0.
	Verbose bool
	DirOut  string

	step             int
	lastStepDuration time.Duration
	indexed          bool
	storageAllocated bool
}

// New builds an empty CoreState whose registries validate form tags against
// cat's known potentials/BOFs.
func New(cat *forms.Catalog) *CoreState {
	return &CoreState{
		Catalog:    cat,
		Potentials: registry.NewPotentialRegistry(cat.KnownPotentials()),
		BOFs:       registry.NewBOFRegistry(cat.KnownBOFs()),
		Verbose:    true,
		DirOut:     ".",
	}
}

// LastStepDuration returns the wall-clock elapsed during the most recent
// CalculateEnergy/CalculateForces/CalculateElectronegativities call
// (the design "per-step wall-clock via core.CoreState.LastStepDuration",
// grounded in fem.FEM.onexit's cputime/time.Since pattern).
func (s *CoreState) LastStepDuration() time.Duration { return s.lastStepDuration }

// GenerateAtoms allocates a fresh dense atom array of size n (the design
// "Structure: generate_atoms"). Any existing neighbor lists, indices and
// BOF storage are invalidated.
func (s *CoreState) GenerateAtoms(n int) error {
	if n <= 0 {
		return wrap(Configuration, "core: generate_atoms: n must be positive, got %v", n)
	}
	s.Atoms = atom.NewSet(n)
	s.indexed = false
	s.storageAllocated = false
	s.Grid = nil
	return nil
}

// UpdateCoordinates overwrites every atom's position (the design
// "update_coordinates"). Rebuilding geometry is the caller's
// responsibility — the design's Lifecycle step (1) says to rebuild the
// subcell grid and neighbor lists "if geometry changed".
func (s *CoreState) UpdateCoordinates(positions [][3]float64) error {
	if s.Atoms == nil {
		return wrap(State, "core: update_coordinates: no atoms generated")
	}
	if len(positions) != s.Atoms.N() {
		return wrap(Configuration, "core: update_coordinates: expected %d positions, got %d", s.Atoms.N(), len(positions))
	}
	s.Atoms.UpdateCoordinates(positions)
	return nil
}

// UpdateCharges overwrites every atom's charge (the design
// "update_charges").
func (s *CoreState) UpdateCharges(charges []float64) error {
	if s.Atoms == nil {
		return wrap(State, "core: update_charges: no atoms generated")
	}
	if len(charges) != s.Atoms.N() {
		return wrap(Configuration, "core: update_charges: expected %d charges, got %d", s.Atoms.N(), len(charges))
	}
	s.Atoms.UpdateCharges(charges)
	return nil
}

// CreateCell installs the supercell (the design "create_cell"). Rebuilding
// the cell invalidates neighbor lists and the BOF cache (the design
// "Supercell... rebuilding it invalidates neighbor lists and BOF caches").
func (s *CoreState) CreateCell(lattice [3][3]float64, periodic [3]bool) {
	s.Cell = geometry.New(lattice, periodic)
	s.Grid = nil
	s.Cache = nil
	s.storageAllocated = false
}

// GetCellVectors returns the supercell's lattice vectors (the design
// "get_cell_vectors").
func (s *CoreState) GetCellVectors() ([3][3]float64, error) {
	if s.Cell == nil {
		return [3][3]float64{}, wrap(State, "core: get_cell_vectors: no cell created")
	}
	return s.Cell.Vectors(), nil
}

// GetNumberOfAtoms returns the atom count (the design
// "get_number_of_atoms").
func (s *CoreState) GetNumberOfAtoms() int {
	if s.Atoms == nil {
		return 0
	}
	return s.Atoms.N()
}

// ListAtoms is the debug accessor the design names ("list_atoms").
func (s *CoreState) ListAtoms() []*atom.Atom {
	if s.Atoms == nil {
		return nil
	}
	return s.Atoms.Atoms
}

// ListCell is the debug accessor the design names ("list_cell").
func (s *CoreState) ListCell() geometry.Cell { return s.Cell }

// AddPotential registers a potential record (the design "add_potential").
func (s *CoreState) AddPotential(formID string, params fun.Prms, hardCutoff, softCutoff float64, targets []registry.Target, groupID int) error {
	if err := s.Potentials.Add(formID, params, hardCutoff, softCutoff, targets, groupID); err != nil {
		return wrap(Configuration, "%v", err)
	}
	s.indexed = false
	return nil
}

// AddBOF registers a BOF record (the design "identical shape for BOFs with
// an extra param_split subdivision").
func (s *CoreState) AddBOF(formID string, paramsByBody [4]fun.Prms, hardCutoff, softCutoff float64, targets []registry.Target, groupID int, postProcess bool) error {
	if err := s.BOFs.Add(formID, paramsByBody, hardCutoff, softCutoff, targets, groupID, postProcess); err != nil {
		return wrap(Configuration, "%v", err)
	}
	s.indexed = false
	return nil
}

// AssignIndices runs the design's "assign_potential_indices" and
// "assign_bond_order_factor_indices": must be called after registration and
// before evaluation.
func (s *CoreState) AssignIndices() error {
	if s.Atoms == nil {
		return wrap(State, "core: assign_indices: no atoms generated")
	}
	s.Potentials.AssignIndices(s.Atoms)
	s.BOFs.AssignIndices(s.Atoms)
	s.indexed = true
	return nil
}

// CreateSpacePartitioning builds the subcell grid sized for maxCutoff
// (the design "create_space_partitioning"). Pass 0 to size from the
// largest hard cutoff over both registries.
func (s *CoreState) CreateSpacePartitioning(maxCutoff float64) error {
	if s.Cell == nil {
		return wrap(State, "core: create_space_partitioning: no cell created")
	}
	if maxCutoff <= 0 {
		maxCutoff = s.Potentials.MaxCutoff()
		for _, rec := range s.BOFs.Records {
			if rec.HardCutoff > maxCutoff {
				maxCutoff = rec.HardCutoff
			}
		}
	}
	if maxCutoff <= 0 {
		return wrap(Configuration, "core: create_space_partitioning: no positive cutoff available")
	}
	g, err := neighbor.NewGrid(s.Cell, maxCutoff)
	if err != nil {
		return wrap(Resource, "%v", err)
	}
	s.Grid = g
	return nil
}

// BuildNeighborLists is the design's "build_neighbor_lists(cutoffs[N])":
// bins atoms into the subcell grid and populates every atom's full neighbor
// list. Every rank builds the complete local neighbor structure; accumulation
// ownership is restricted separately, per loop.Driver.Owned (see newDriver),
// since bof.Fill and the tuple walks read every atom's .Neighbors regardless
// of which rank accumulates for it (e.g. ExtendPairToTriplets looks at the
// non-owned side of a pair to find triplets centered there).
func (s *CoreState) BuildNeighborLists() error {
	if s.Atoms == nil || s.Cell == nil {
		return wrap(State, "core: build_neighbor_lists: atoms and cell are required")
	}
	if s.Grid == nil {
		if err := s.CreateSpacePartitioning(0); err != nil {
			return err
		}
	}
	if !s.indexed {
		return wrap(State, "core: build_neighbor_lists: indices not assigned")
	}
	s.Atoms.ClearNeighbors()
	s.Grid.Bin(s.Atoms.Atoms, s.Cell)
	neighbor.Build([]*atom.Set{s.Atoms}, s.Cell, s.Grid, func(i int) float64 {
		return s.Atoms.Get(i).EffectiveCutoff
	}, nil)
	return nil
}

// GetNumberOfNeighbors is the design's "get_number_of_neighbors(i)".
func (s *CoreState) GetNumberOfNeighbors(i int) int {
	return len(s.Atoms.Get(i).Neighbors)
}

// GetNeighborListOfAtom is the design's "get_neighbor_list_of_atom(i)".
func (s *CoreState) GetNeighborListOfAtom(i int) []atom.Neighbor {
	return s.Atoms.Get(i).Neighbors
}

// AllocateBondOrderStorage is the design's
// "allocate_bond_order_storage(n_atoms, n_groups, n_factors)".
func (s *CoreState) AllocateBondOrderStorage() error {
	if s.Atoms == nil {
		return wrap(State, "core: allocate_bond_order_storage: no atoms generated")
	}
	c, err := bof.Allocate(s.Atoms.N(), s.BOFs.GroupIDs())
	if err != nil {
		return wrap(Resource, "%v", err)
	}
	s.Cache = c
	s.storageAllocated = true
	return nil
}

// EmptyBondOrderStorage is the design's "empty_bond_order_storage".
func (s *CoreState) EmptyBondOrderStorage() error {
	if s.Cache == nil {
		return wrap(State, "core: empty_bond_order_storage: storage not allocated")
	}
	s.Cache.EmptyStorage()
	return nil
}

// EmptyBondOrderGradientStorage is the design's
// "empty_bond_order_gradient_storage(slot?)"; slot 0 clears every slot.
func (s *CoreState) EmptyBondOrderGradientStorage(slot int) error {
	if s.Cache == nil {
		return wrap(State, "core: empty_bond_order_gradient_storage: storage not allocated")
	}
	s.Cache.EmptyGradientStorage(slot)
	return nil
}

// FillBondOrderStorage is the design's "fill_bond_order_storage"
// (the design): the recoverable fill phase.
func (s *CoreState) FillBondOrderStorage() error {
	if s.Cache == nil {
		return wrap(State, "core: fill_bond_order_storage: storage not allocated")
	}
	if err := bof.Fill(s.Cache, s.Atoms, s.Cell, s.BOFs, s.Catalog); err != nil {
		return wrap(Numerical, "%v", err)
	}
	return nil
}

func (s *CoreState) newDriver() (*loop.Driver, error) {
	if s.Atoms == nil || s.Cell == nil {
		return nil, wrap(State, "core: evaluation requires atoms and a cell")
	}
	if !s.indexed {
		return nil, wrap(State, "core: evaluation requires assigned indices")
	}
	return &loop.Driver{
		Atoms:      s.Atoms,
		Cell:       s.Cell,
		Potentials: s.Potentials,
		BOFs:       s.BOFs,
		Cache:      s.Cache,
		Catalog:    s.Catalog,
		Owned:      parallel.Partition(s.Atoms.N()),
	}, nil
}

// CalculateEnergy runs "calculate_energy -> scalar": short-range loop,
// cross-rank reduce, optional Ewald add-on.
func (s *CoreState) CalculateEnergy() (float64, error) {
	start := time.Now()
	defer func() { s.lastStepDuration = time.Since(start) }()

	d, err := s.newDriver()
	if err != nil {
		return 0, err
	}
	res, err := d.Run(loop.Energy)
	if err != nil {
		return 0, wrap(Numerical, "%v", err)
	}
	parallel.Reduce(res)

	if s.EwaldEnabled {
		e, err := s.EwaldKernel.Energy(s.Atoms, s.Cell, s.EwaldParams)
		if err != nil {
			return 0, wrap(Numerical, "%v", err)
		}
		res.Energy += e
	}
	return res.Energy, nil
}

// CalculateForces is the design's
// "calculate_forces -> (3xN forces, 6-vector stress)".
func (s *CoreState) CalculateForces() ([][3]float64, [6]float64, error) {
	start := time.Now()
	defer func() { s.lastStepDuration = time.Since(start) }()

	d, err := s.newDriver()
	if err != nil {
		return nil, [6]float64{}, err
	}
	res, err := d.Run(loop.Forces)
	if err != nil {
		return nil, [6]float64{}, wrap(Numerical, "%v", err)
	}
	parallel.Reduce(res)

	if s.EwaldEnabled {
		e, f, st, err := s.EwaldKernel.Forces(s.Atoms, s.Cell, s.EwaldParams)
		if err != nil {
			return nil, [6]float64{}, wrap(Numerical, "%v", err)
		}
		res.Energy += e
		for i := range res.Forces {
			res.Forces[i][0] += f[i][0]
			res.Forces[i][1] += f[i][1]
			res.Forces[i][2] += f[i][2]
		}
		for k := range res.Stress {
			res.Stress[k] += st[k]
		}
	}
	return res.Forces, res.Stress, nil
}

// CalculateElectronegativities is the design's
// "calculate_electronegativities -> N-vector".
func (s *CoreState) CalculateElectronegativities() ([]float64, error) {
	start := time.Now()
	defer func() { s.lastStepDuration = time.Since(start) }()

	d, err := s.newDriver()
	if err != nil {
		return nil, err
	}
	res, err := d.Run(loop.Electronegativity)
	if err != nil {
		return nil, wrap(Numerical, "%v", err)
	}
	parallel.Reduce(res)

	if s.EwaldEnabled {
		chi, err := s.EwaldKernel.Electronegativities(s.Atoms, s.Cell, s.EwaldParams)
		if err != nil {
			return nil, wrap(Numerical, "%v", err)
		}
		for i := range res.Electronegativity {
			res.Electronegativity[i] += chi[i]
		}
	}
	return res.Electronegativity, nil
}

// SetEwaldParameters is the design's
// "set_ewald_parameters(real_cutoff, k_cutoffs[3], sigma, epsilon, scaler[N])".
// The long-range add-on is only attempted by Calculate* once a kernel has
// been set here (the design "long-range add-on is attempted only if
// short-range succeeded").
func (s *CoreState) SetEwaldParameters(kernel ewald.Kernel, p ewald.Params) {
	s.EwaldKernel = kernel
	s.EwaldParams = p
	s.EwaldEnabled = kernel != nil
}

// ApplyScalerFunction evaluates the named function at time t, the way
// inp.FuncsData.Get feeds a ramp/constant function into a boundary
// condition, and multiplies the result uniformly into every entry of
// EwaldParams.Scaler — e.g. a "cte" function holds electrostatics at full
// strength, a ramp function switches them in gradually over a scan.
func (s *CoreState) ApplyScalerFunction(name string, t float64) error {
	fcn, ok := s.Functions.Get(name)
	if !ok {
		return wrap(Configuration, "core: apply_scaler_function: no function named %q", name)
	}
	if s.Atoms == nil {
		return wrap(State, "core: apply_scaler_function: no atoms generated")
	}
	factor := fcn.F(t, nil)
	if s.EwaldParams.Scaler == nil {
		s.EwaldParams.Scaler = make([]float64, s.Atoms.N())
		for i := range s.EwaldParams.Scaler {
			s.EwaldParams.Scaler[i] = 1
		}
	}
	for i := range s.EwaldParams.Scaler {
		s.EwaldParams.Scaler[i] *= factor
	}
	return nil
}

// GetEwaldEnergy is the debug accessor "get_ewald_energy(...)": the
// long-range contribution alone, bypassing the short-range loop.
func (s *CoreState) GetEwaldEnergy() (float64, error) {
	if !s.EwaldEnabled {
		return 0, wrap(State, "core: get_ewald_energy: no Ewald kernel set")
	}
	e, err := s.EwaldKernel.Energy(s.Atoms, s.Cell, s.EwaldParams)
	if err != nil {
		return 0, wrap(Numerical, "%v", err)
	}
	return e, nil
}

// ReleaseAllMemory is the design's "release_all_memory": drops every owned
// structure, matching fem.FEM.onexit's "clean resources" step at simulation
// end.
func (s *CoreState) ReleaseAllMemory() {
	s.Atoms = nil
	s.Cell = nil
	s.Grid = nil
	s.Cache = nil
	s.Potentials = registry.NewPotentialRegistry(s.Catalog.KnownPotentials())
	s.BOFs = registry.NewBOFRegistry(s.Catalog.KnownBOFs())
	s.indexed = false
	s.storageAllocated = false
}

// ClearAtoms is the design's individual "clear_*" lifecycle operation for
// atoms.
func (s *CoreState) ClearAtoms() {
	s.Atoms = nil
	s.Grid = nil
	s.indexed = false
}

// ClearPotentials is the design's "clear_*" operation for potentials.
func (s *CoreState) ClearPotentials() {
	s.Potentials = registry.NewPotentialRegistry(s.Catalog.KnownPotentials())
	s.indexed = false
}

// ClearBOFs is the design's "clear_*" operation for BOFs.
func (s *CoreState) ClearBOFs() {
	s.BOFs = registry.NewBOFRegistry(s.Catalog.KnownBOFs())
	s.indexed = false
}

// ClearBondOrderStorage is the design's "clear_*" operation for BOF
// storage.
func (s *CoreState) ClearBondOrderStorage() {
	s.Cache = nil
	s.storageAllocated = false
}

func (s *CoreState) logf(format string, args ...interface{}) {
	if s.Verbose && gmpi.Rank() == 0 {
		io.Pf(format, args...)
	}
}
