// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package host holds the source configuration shared by the language bindings
in the cel, js and starlarkmod packages.

A [Binding] pairs an [argv.Provider] with an [env.Reader] and records a DEBUG
log entry for every read. It adds no caching: each call goes through to the
configured sources.

# Basic Usage

	b := host.New(
		host.WithArguments(argv.Static("prog", "--flag")),
		host.WithEnvironment(env.MapReader{"HOME": "/home/user"}),
		host.WithLogger(logger),
	)
	b.Lookup("HOME") // env.Present("/home/user")

Without options the binding reads the real process state.
*/
package host
