// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides read-only access to the process environment with an
explicit two-variant lookup result.

A lookup never fails. It resolves to exactly one of [Present] or [Absent],
and a variable set to the empty string is Present, not Absent.

# Basic Usage

Look up a variable through the operating system:

	res := env.Lookup("PATH")
	if value, ok := res.Value(); ok {
		fmt.Println(value)
	}

# Testing

The Reader interface allows injecting a fixed source or a mock in tests to
avoid relying on real environment variables:

	reader := env.MapReader{"MY_VAR": "test-value"}

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Lookup("MY_VAR").Return(env.Present("test-value"))

# Design

Production code accepts an env.Reader, while tests substitute a MapReader
or the generated mock. Mapping the result onto a caller's own absence
convention is left to the caller.
*/
package env
