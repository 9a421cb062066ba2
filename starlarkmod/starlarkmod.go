// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package starlarkmod

import (
	"context"
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"github.com/stacklok/hostenv/host"
)

// ModuleName is the name under which Exec predeclares the module.
const ModuleName = "host"

// ErrExec is returned when a program passed to Exec fails to parse or run.
var ErrExec = errors.New("starlark execution failed")

// Module returns the host module.
func Module(opts ...host.Option) *starlarkstruct.Module {
	b := host.New(opts...)

	return &starlarkstruct.Module{
		Name: ModuleName,
		Members: starlark.StringDict{
			"args": starlark.NewBuiltin("args", func(
				_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple,
			) (starlark.Value, error) {
				if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
					return nil, err
				}

				vec := b.Arguments()
				elems := make([]starlark.Value, len(vec))
				for i, a := range vec {
					elems[i] = starlark.String(a)
				}
				list := starlark.NewList(elems)
				list.Freeze()
				return list, nil
			}),
			"env": starlark.NewBuiltin("env", func(
				_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple,
			) (starlark.Value, error) {
				var key string
				if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &key); err != nil {
					return nil, err
				}

				if value, ok := b.Lookup(key).Value(); ok {
					return starlark.String(value), nil
				}
				return starlark.None, nil
			}),
		},
	}
}

// Exec runs the Starlark program in src with the host module predeclared
// and returns its frozen globals. src may be anything accepted by
// starlark.ExecFileOptions, or nil to read filename.
func Exec(ctx context.Context, filename string, src any, opts ...host.Option) (starlark.StringDict, error) {
	thread := &starlark.Thread{Name: filename}

	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	predeclared := starlark.StringDict{ModuleName: Module(opts...)}
	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, filename, src, predeclared)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExec, err)
	}
	return globals, nil
}
