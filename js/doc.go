// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package js exposes the process argument vector and environment to
JavaScript running in a goja runtime.

Two functions are installed:

	args()     Array of strings, program path first
	env(key)   {ok: true, value: "..."} or {ok: false}

An unset variable yields {ok: false} and never throws, while a variable set
to "" yields {ok: true, value: ""}. Calling env with a non-string key
throws a TypeError.

# Global Object

	vm := goja.New()
	if err := js.Register(vm); err != nil {
		return err
	}
	vm.RunString(`host.env("HOME").ok`)

# CommonJS Module

	registry := require.NewRegistry()
	js.Enable(registry)
	registry.Enable(vm)
	vm.RunString(`const { env } = require("hostenv"); env("HOME")`)

# One-shot Scripts

	result, err := js.Run(ctx, `host.args().length`)
*/
package js
