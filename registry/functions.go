// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

// FunctionSpec is one named, time-dependent scalar function, the way
// inp.FuncData names functions in a .sim file: a type tag ("cte", "rmp",
// ...) plus its parameters, looked up by name wherever a caller needs a
// scalar that may vary instead of a bare constant.
type FunctionSpec struct {
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	Params dbf.Params `json:"params"`
}

// FunctionTable is the built, queryable form of a []FunctionSpec, mirroring
// inp.FuncsData.Get: built once at load time, looked up by name thereafter.
type FunctionTable struct {
	byName map[string]fun.TimeSpace
}

// BuildFunctionTable constructs every named function via fun.New, failing
// fast on an unknown type or duplicate name rather than at first use.
func BuildFunctionTable(specs []FunctionSpec) (*FunctionTable, error) {
	t := &FunctionTable{byName: make(map[string]fun.TimeSpace, len(specs))}
	for _, s := range specs {
		if _, exists := t.byName[s.Name]; exists {
			return nil, chk.Err("registry: duplicate function name %q", s.Name)
		}
		fcn, err := fun.New(s.Type, s.Params)
		if err != nil {
			return nil, chk.Err("registry: cannot build function %q: %v", s.Name, err)
		}
		t.byName[s.Name] = fcn
	}
	return t, nil
}

// Get returns the named function and whether it was found, the same
// two-value shape inp.FuncsData.Get collapses into an error on miss; here
// the caller decides whether a missing name is fatal.
func (t *FunctionTable) Get(name string) (fun.TimeSpace, bool) {
	if t == nil {
		return nil, false
	}
	fcn, ok := t.byName[name]
	return fcn, ok
}
