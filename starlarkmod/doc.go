// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package starlarkmod exposes the process argument vector and environment to
Starlark programs as a module named host.

	host.args()     frozen list of strings, program path first
	host.env(key)   the value as a string, or None when unset

None and "" are distinct, so an empty variable is never mistaken for an
unset one:

	home = host.env("HOME")
	if home == None:
	    home = "/root"

# Basic Usage

	globals, err := starlarkmod.Exec(ctx, "config.star", src)

Or predeclare the module in an existing interpreter setup:

	predeclared := starlark.StringDict{"host": starlarkmod.Module()}
*/
package starlarkmod
