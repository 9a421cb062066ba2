// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"fmt"
	"os"
)

// Result is the outcome of an environment lookup.
// The zero value is Absent.
type Result struct {
	value   string
	present bool
}

// Present returns a Result for a variable that is set to value.
func Present(value string) Result {
	return Result{value: value, present: true}
}

// Absent returns a Result for a variable that is not set.
func Absent() Result {
	return Result{}
}

// IsPresent reports whether the variable was set.
func (r Result) IsPresent() bool {
	return r.present
}

// Value returns the variable's value and whether it was set.
func (r Result) Value() (string, bool) {
	return r.value, r.present
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if !r.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%q)", r.value)
}

// Reader defines an interface for environment variable lookups
type Reader interface {
	Lookup(key string) Result
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Lookup returns the value of the environment variable named by the key
func (*OSReader) Lookup(key string) Result {
	return fromCommaOK(os.LookupEnv(key))
}

// Lookup reads the environment variable named by key from the process environment.
func Lookup(key string) Result {
	return (&OSReader{}).Lookup(key)
}

// LookupFunc adapts a comma-ok lookup function to the Reader interface.
type LookupFunc func(key string) (string, bool)

// Lookup calls f(key).
func (f LookupFunc) Lookup(key string) Result {
	return fromCommaOK(f(key))
}

// MapReader is a Reader backed by a fixed set of variables.
type MapReader map[string]string

// Lookup returns the entry for key, if any.
func (m MapReader) Lookup(key string) Result {
	value, ok := m[key]
	return fromCommaOK(value, ok)
}

func fromCommaOK(value string, ok bool) Result {
	if !ok {
		return Absent()
	}
	return Present(value)
}
