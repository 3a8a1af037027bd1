// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/cpmech/gosl/chk"

// Kind classifies a core error by its category: configuration, resource,
// state, numerical, internal.
type Kind int

const (
	Configuration Kind = iota
	Resource
	State
	Numerical
	Internal
)

func (k Kind) String() string {
	switch k {
	case Configuration:
		return "configuration"
	case Resource:
		return "resource"
	case State:
		return "state"
	case Numerical:
		return "numerical"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error wraps a chk-built error message with its the design kind so callers
// can branch with errors.As, e.g. retrying on Resource but not Configuration.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func wrap(kind Kind, format string, args ...interface{}) error {
	err := chk.Err(format, args...)
	return &Error{Kind: kind, Message: err.Error()}
}
