// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package argv

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=argv.go -destination=mocks/mock_provider.go -package=mocks Provider

import (
	"os"
	"slices"
)

// Vector is an ordered sequence of invocation tokens.
type Vector []string

// Provider defines an interface for reading the argument vector.
// Every call returns a vector the caller owns.
type Provider interface {
	Arguments() Vector
}

// OSProvider implements Provider using os.Args.
type OSProvider struct{}

// Arguments returns a copy of os.Args.
func (*OSProvider) Arguments() Vector {
	return Vector(slices.Clone(os.Args))
}

// Arguments returns a copy of the process argument vector.
func Arguments() Vector {
	return (&OSProvider{}).Arguments()
}

type staticProvider struct {
	values Vector
}

// Static returns a Provider that always reports values.
func Static(values ...string) Provider {
	return &staticProvider{values: Vector(slices.Clone(values))}
}

func (s *staticProvider) Arguments() Vector {
	return slices.Clone(s.values)
}
