// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a zap-backed process logger for applications that
// embed the host bindings and run locally as a CLI or in a container.
package logger

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/hostenv/env"
)

// Environment variables consulted by Initialize.
const (
	UnstructuredLogsEnvVar = "UNSTRUCTURED_LOGS"
	DebugEnvVar            = "HOSTENV_DEBUG"
)

var initialized atomic.Bool

// Initialized reports whether [Initialize] or [InitializeWithOptions] has
// installed the singleton logger. Host bindings built afterwards send their
// read records through it.
func Initialized() bool {
	return initialized.Load()
}

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// NewLogr returns a logr.Logger which uses zap logger
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// DebugProvider is an interface for checking if debug mode is enabled.
type DebugProvider interface {
	IsDebug() bool
}

// EnvDebugProvider reports debug mode from the HOSTENV_DEBUG variable.
type EnvDebugProvider struct {
	Reader env.Reader
}

// IsDebug returns true when HOSTENV_DEBUG is set to a true boolean value.
func (p *EnvDebugProvider) IsDebug() bool {
	value, ok := p.Reader.Lookup(DebugEnvVar).Value()
	if !ok {
		return false
	}
	debug, err := strconv.ParseBool(value)
	return err == nil && debug
}

// Initialize configures the singleton logger from the process environment.
// If UNSTRUCTURED_LOGS is unset or true, it outputs plain log messages
// with only time and level. Otherwise it writes structured JSON to stdout.
func Initialize() {
	reader := &env.OSReader{}
	InitializeWithOptions(reader, &EnvDebugProvider{Reader: reader})
}

// InitializeWithOptions configures the singleton logger with a custom environment reader and debug provider.
func InitializeWithOptions(envReader env.Reader, debugProvider DebugProvider) {
	zap.ReplaceGlobals(zap.Must(buildConfig(envReader, debugProvider).Build()))
	initialized.Store(true)
}

func buildConfig(envReader env.Reader, debugProvider DebugProvider) zap.Config {
	var config zap.Config
	if unstructuredLogs(envReader) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	}

	if debugProvider.IsDebug() {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return config
}

func unstructuredLogs(envReader env.Reader) bool {
	value, ok := envReader.Lookup(UnstructuredLogsEnvVar).Value()
	if !ok {
		return true
	}
	unstructured, err := strconv.ParseBool(value)
	if err != nil {
		return true
	}
	return unstructured
}
