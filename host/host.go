// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"log/slog"

	"go.uber.org/zap"

	"github.com/stacklok/hostenv/argv"
	"github.com/stacklok/hostenv/env"
	"github.com/stacklok/hostenv/logger"
	"github.com/stacklok/hostenv/logging"
)

// debugFunc records a DEBUG message with alternating key/value pairs.
// Both slog.Logger.Debug and zap.SugaredLogger.Debugw have this shape.
type debugFunc func(msg string, keysAndValues ...any)

// Binding is the pair of read-only accessors exposed to a language runtime.
// It is safe for concurrent use when its sources are.
type Binding struct {
	args  argv.Provider
	env   env.Reader
	debug debugFunc
}

// Option configures a Binding created by [New].
type Option func(*Binding)

// WithArguments sets the argument source.
// The default is [argv.OSProvider].
func WithArguments(p argv.Provider) Option {
	return func(b *Binding) {
		b.args = p
	}
}

// WithEnvironment sets the environment source.
// The default is [env.OSReader].
func WithEnvironment(r env.Reader) Option {
	return func(b *Binding) {
		b.env = r
	}
}

// WithLogger sends read records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binding) {
		if l != nil {
			b.debug = l.Debug
		}
	}
}

// WithZapLogger sends read records to l. A nil logger is ignored.
func WithZapLogger(l *zap.Logger) Option {
	return func(b *Binding) {
		if l != nil {
			b.debug = l.Sugar().Debugw
		}
	}
}

// New creates a Binding. Nil sources passed through options fall back to
// the process implementations.
//
// Without a logger option, records go to the zap singleton once
// [logger.Initialize] has run, and otherwise to a [logging.New] logger
// configured from the process environment.
func New(opts ...Option) *Binding {
	b := &Binding{}
	for _, opt := range opts {
		opt(b)
	}

	if b.args == nil {
		b.args = &argv.OSProvider{}
	}
	if b.env == nil {
		b.env = &env.OSReader{}
	}
	if b.debug == nil {
		b.debug = defaultDebug()
	}
	return b
}

func defaultDebug() debugFunc {
	if logger.Initialized() {
		return logger.Debugw
	}
	return logging.New(logging.WithEnv(&env.OSReader{})).Debug
}

// Arguments returns the argument vector.
func (b *Binding) Arguments() argv.Vector {
	args := b.args.Arguments()
	b.debug("arguments read", "count", len(args))
	return args
}

// Lookup returns the environment lookup result for key.
// Only the key and presence are logged, never the value.
func (b *Binding) Lookup(key string) env.Result {
	res := b.env.Lookup(key)
	b.debug("environment lookup", "key", key, "present", res.IsPresent())
	return res
}
