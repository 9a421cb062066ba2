// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package cel exposes the process argument vector and environment to CEL
expressions and provides the engine that compiles and evaluates them.

# Host Functions

[Library] declares two functions:

	args()       list(string)            the argument vector, program path first
	env(string)  optional_type(string)   optional.of(value) or optional.none()

The optional result keeps a variable set to "" apart from an unset one:

	env("HOME").hasValue()            // true when HOME is set, even to ""
	env("HOME").orValue("/root")      // caller-chosen fallback
	size(args()) > 1 && args()[1] == "--verbose"

# Basic Usage

	engine := cel.NewHostEngine(nil)

	expr, err := engine.Compile(`env("CI").hasValue()`)
	if err != nil {
	    // handle compilation error
	}

	inCI, err := expr.EvaluateBool(nil)

Sources and logging are configured with host options, and additional
variables with cel-go options:

	engine := cel.NewHostEngine(
	    []host.Option{host.WithEnvironment(env.MapReader{"CI": "true"})},
	    celgo.Variable("stage", celgo.StringType),
	)

# Error Handling

Compilation errors are returned as structured types with location information:

	expr, err := engine.Compile(`env("HOME"`)
	var parseErr *cel.ParseError
	if errors.As(err, &parseErr) {
	    fmt.Println(parseErr.Source)  // the original expression
	    fmt.Println(parseErr.Errors) // line/column/message details
	}

	expr, err = engine.Compile(`env(1)`)
	var checkErr *cel.CheckError
	if errors.As(err, &checkErr) {
	    fmt.Println(checkErr.AsJSON()) // structured JSON error details
	}

An unset variable is never an error; it is optional.none().

# Limits

	engine := cel.NewHostEngine(nil).
	    WithMaxExpressionLength(5000). // reject overly long expressions
	    WithCostLimit(500000)          // limit runtime evaluation cost

# Concurrency

The Engine and CompiledExpression types are safe for concurrent use. A compiled
expression can be evaluated from multiple goroutines simultaneously.
*/
package cel
