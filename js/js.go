// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package js

import (
	"context"
	"errors"
	"fmt"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"

	"github.com/stacklok/hostenv/env"
	"github.com/stacklok/hostenv/host"
)

const (
	// GlobalName is the global object installed by Register.
	GlobalName = "host"

	// ModuleName is the name passed to require() for the module installed by Enable.
	ModuleName = "hostenv"
)

// ErrScript is returned when a script passed to Run throws or is interrupted.
var ErrScript = errors.New("script evaluation failed")

// Register installs the host object as a global on vm.
func Register(vm *goja.Runtime, opts ...host.Option) error {
	obj := vm.NewObject()
	if err := install(vm, obj, host.New(opts...)); err != nil {
		return err
	}
	return vm.Set(GlobalName, obj)
}

// Enable registers the hostenv native module on registry. Every runtime the
// registry is enabled on shares the same sources.
func Enable(registry *require.Registry, opts ...host.Option) {
	b := host.New(opts...)
	registry.RegisterNativeModule(ModuleName, func(vm *goja.Runtime, module *goja.Object) {
		exports := module.Get("exports").(*goja.Object)
		if err := install(vm, exports, b); err != nil {
			panic(vm.NewGoError(err))
		}
	})
}

// Run evaluates script in a fresh runtime with the host object installed
// and returns the exported completion value. The script is interrupted when
// ctx is done.
func Run(ctx context.Context, script string, opts ...host.Option) (any, error) {
	vm := goja.New()
	if err := Register(vm, opts...); err != nil {
		return nil, err
	}

	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	v, err := vm.RunString(script)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	if v == nil {
		return nil, nil
	}
	return v.Export(), nil
}

func install(vm *goja.Runtime, target *goja.Object, b *host.Binding) error {
	if err := target.Set("args", func(goja.FunctionCall) goja.Value {
		args := b.Arguments()
		items := make([]any, len(args))
		for i, a := range args {
			items[i] = a
		}
		return vm.NewArray(items...)
	}); err != nil {
		return err
	}

	return target.Set("env", func(call goja.FunctionCall) goja.Value {
		key, ok := call.Argument(0).Export().(string)
		if !ok {
			panic(vm.NewTypeError("env: key must be a string"))
		}

		return lookupResult(vm, b.Lookup(key))
	})
}

// lookupResult builds {ok: true, value} for a present variable and
// {ok: false} for an absent one.
func lookupResult(vm *goja.Runtime, res env.Result) *goja.Object {
	obj := vm.NewObject()
	value, present := res.Value()
	if err := obj.Set("ok", present); err != nil {
		panic(vm.NewGoError(err))
	}
	if present {
		if err := obj.Set("value", value); err != nil {
			panic(vm.NewGoError(err))
		}
	}
	return obj
}
