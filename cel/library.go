// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cel

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/stacklok/hostenv/host"
)

// Function names declared by [Library].
const (
	ArgsFunction = "args"
	EnvFunction  = "env"
)

// Library returns a CEL environment option declaring the host functions:
//
//	args() -> list(string)
//	env(string) -> optional_type(string)
//
// A set variable maps to optional.of(value), an unset one to optional.none(),
// so `env("X").hasValue()` distinguishes an empty value from absence.
// Optional types are enabled as part of the library.
func Library(opts ...host.Option) cel.EnvOption {
	return cel.Lib(&hostLibrary{binding: host.New(opts...)})
}

// NewHostEngine creates an Engine with the host library installed, followed
// by any additional environment options.
func NewHostEngine(bindingOpts []host.Option, options ...cel.EnvOption) *Engine {
	return NewEngine(append([]cel.EnvOption{Library(bindingOpts...)}, options...)...)
}

type hostLibrary struct {
	binding *host.Binding
}

func (*hostLibrary) LibraryName() string {
	return "stacklok.hostenv"
}

func (l *hostLibrary) CompileOptions() []cel.EnvOption {
	return []cel.EnvOption{
		cel.OptionalTypes(),
		cel.Function(ArgsFunction,
			cel.Overload("args",
				[]*cel.Type{},
				cel.ListType(cel.StringType),
				cel.FunctionBinding(l.args),
			),
		),
		cel.Function(EnvFunction,
			cel.Overload("env_string",
				[]*cel.Type{cel.StringType},
				cel.OptionalType(cel.StringType),
				cel.UnaryBinding(l.env),
			),
		),
	}
}

func (*hostLibrary) ProgramOptions() []cel.ProgramOption {
	return nil
}

func (l *hostLibrary) args(...ref.Val) ref.Val {
	return types.NewStringList(types.DefaultTypeAdapter, l.binding.Arguments())
}

func (l *hostLibrary) env(arg ref.Val) ref.Val {
	key, ok := arg.(types.String)
	if !ok {
		return types.MaybeNoSuchOverloadErr(arg)
	}
	if value, ok := l.binding.Lookup(string(key)).Value(); ok {
		return types.OptionalOf(types.String(value))
	}
	return types.OptionalNone
}
