// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/stacklok/hostenv/env"
)

// Environment variables consulted by [WithEnv].
const (
	LevelEnvVar  = "HOSTENV_LOG_LEVEL"
	FormatEnvVar = "HOSTENV_LOG_FORMAT"
)

// Format names a record encoding.
type Format string

// Supported formats. Any other value encodes as JSON.
const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat maps a case-insensitive format name to a Format.
func ParseFormat(name string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatText:
		return f, true
	default:
		return "", false
	}
}

type settings struct {
	format Format
	level  slog.Leveler
	output io.Writer
}

// Option configures the logger created by [New]. Options apply in order,
// so a later option overrides what an earlier one set.
type Option func(*settings)

// WithFormat sets the record encoding. The default is [FormatJSON].
func WithFormat(f Format) Option {
	return func(s *settings) {
		s.format = f
	}
}

// WithLevel sets the minimum level. The default is INFO, which hides the
// per-call records of the host bindings.
func WithLevel(l slog.Leveler) Option {
	return func(s *settings) {
		s.level = l
	}
}

// WithOutput sets the destination. The default is [os.Stderr].
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		s.output = w
	}
}

// WithEnv reads [LevelEnvVar] and [FormatEnvVar] through reader.
// Absent or unrecognized values leave the current setting unchanged.
func WithEnv(reader env.Reader) Option {
	return func(s *settings) {
		if value, ok := reader.Lookup(LevelEnvVar).Value(); ok {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(strings.TrimSpace(value))); err == nil {
				s.level = lvl
			}
		}
		if value, ok := reader.Lookup(FormatEnvVar).Value(); ok {
			if f, ok := ParseFormat(value); ok {
				s.format = f
			}
		}
	}
}

// New returns a logger writing JSON at INFO to stderr unless opts say
// otherwise. Timestamps are RFC3339.
func New(opts ...Option) *slog.Logger {
	s := &settings{
		format: FormatJSON,
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return slog.New(s.handler())
}

func (s *settings) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       s.level,
		ReplaceAttr: rfc3339Time,
	}
	if s.format == FormatText {
		return slog.NewTextHandler(s.output, opts)
	}
	return slog.NewJSONHandler(s.output, opts)
}

func rfc3339Time(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
	}
	return a
}
