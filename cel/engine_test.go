// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cel_test

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	celgo "github.com/google/cel-go/cel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/hostenv/argv"
	"github.com/stacklok/hostenv/cel"
	"github.com/stacklok/hostenv/env"
	"github.com/stacklok/hostenv/host"
)

// newTestEngine creates a host engine backed by fixed sources.
func newTestEngine(options ...celgo.EnvOption) *cel.Engine {
	return cel.NewHostEngine([]host.Option{
		host.WithArguments(argv.Static("prog", "--flag", "value")),
		host.WithEnvironment(env.MapReader{
			"PATH":  "/usr/bin",
			"EMPTY": "",
		}),
	}, options...)
}

func TestEngine_Compile_ValidExpressions(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	tests := []struct {
		name string
		expr string
	}{
		{name: "args call", expr: `args()`},
		{name: "args index", expr: `args()[0] == "prog"`},
		{name: "args membership", expr: `"--flag" in args()`},
		{name: "env call", expr: `env("PATH")`},
		{name: "env hasValue", expr: `env("PATH").hasValue()`},
		{name: "env orValue", expr: `env("PATH").orValue("/bin")`},
		{name: "env value", expr: `env("PATH").value().startsWith("/usr")`},
		{name: "exists over args", expr: `args().exists(a, a.startsWith("--"))`},
		{name: "true literal", expr: `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			expr, err := engine.Compile(tt.expr)
			require.NoError(t, err)
			require.NotNil(t, expr)
			assert.Equal(t, tt.expr, expr.Source())
		})
	}
}

func TestEngine_Compile_ParseErrors(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	tests := []struct {
		name string
		expr string
	}{
		{name: "unclosed call", expr: `env("PATH"`},
		{name: "invalid operator", expr: `args() === []`},
		{name: "unclosed string", expr: `env("PATH)`},
		{name: "missing operand", expr: `size(args()) ==`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			expr, err := engine.Compile(tt.expr)
			require.Error(t, err)
			require.Nil(t, expr)

			var parseErr *cel.ParseError
			assert.True(t, errors.As(err, &parseErr), "expected ParseError, got %T", err)
			assert.ErrorIs(t, err, cel.ErrExpressionCheck)
		})
	}
}

func TestEngine_Compile_CheckErrors(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	tests := []struct {
		name string
		expr string
	}{
		{name: "undefined variable", expr: `undefined_var == "test"`},
		{name: "env with int key", expr: `env(1)`},
		{name: "env without key", expr: `env()`},
		{name: "args with argument", expr: `args("x")`},
		{name: "optional compared to string", expr: `env("PATH") == "/usr/bin"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			expr, err := engine.Compile(tt.expr)
			require.Error(t, err)
			require.Nil(t, expr)

			var checkErr *cel.CheckError
			assert.True(t, errors.As(err, &checkErr), "expected CheckError, got %T", err)
		})
	}
}

func TestEngine_Check(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	t.Run("valid expression", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, engine.Check(`env("PATH").hasValue()`))
	})

	t.Run("invalid expression", func(t *testing.T) {
		t.Parallel()
		err := engine.Check(`env("PATH"`)
		require.Error(t, err)

		var parseErr *cel.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})
}

func TestEngine_MaxExpressionLength(t *testing.T) {
	t.Parallel()

	engine := newTestEngine().WithMaxExpressionLength(10)

	_, err := engine.Compile(`env("PATH").hasValue()`)
	require.ErrorIs(t, err, cel.ErrExpressionCheck)
	assert.Contains(t, err.Error(), "exceeds maximum of 10")

	require.ErrorIs(t, engine.Check(strings.Repeat("a", 11)), cel.ErrExpressionCheck)
}

func TestEngine_CostLimit(t *testing.T) {
	t.Parallel()

	engine := newTestEngine().WithCostLimit(1)

	expr, err := engine.Compile(`args().all(a, args().all(b, a.size() + b.size() >= 0))`)
	require.NoError(t, err)

	_, err = expr.Evaluate(nil)
	require.ErrorIs(t, err, cel.ErrEvaluation)
}

func TestCompiledExpression_Evaluate(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(celgo.Variable("stage", celgo.StringType))

	tests := []struct {
		name     string
		expr     string
		ctx      map[string]any
		expected any
	}{
		{
			name:     "args in invocation order",
			expr:     `args()`,
			expected: []string{"prog", "--flag", "value"},
		},
		{
			name:     "args size",
			expr:     `size(args())`,
			expected: int64(3),
		},
		{
			name:     "args equal list literal",
			expr:     `args() == ["prog", "--flag", "value"]`,
			expected: true,
		},
		{
			name:     "present variable unwraps to value",
			expr:     `env("PATH")`,
			expected: "/usr/bin",
		},
		{
			name:     "empty variable unwraps to empty string",
			expr:     `env("EMPTY")`,
			expected: "",
		},
		{
			name:     "absent variable unwraps to nil",
			expr:     `env("DOES_NOT_EXIST_123")`,
			expected: nil,
		},
		{
			name:     "empty variable has value",
			expr:     `env("EMPTY").hasValue()`,
			expected: true,
		},
		{
			name:     "absent variable has no value",
			expr:     `env("DOES_NOT_EXIST_123").hasValue()`,
			expected: false,
		},
		{
			name:     "absent equals optional none",
			expr:     `env("DOES_NOT_EXIST_123") == optional.none()`,
			expected: true,
		},
		{
			name:     "present equals optional of",
			expr:     `env("PATH") == optional.of("/usr/bin")`,
			expected: true,
		},
		{
			name:     "caller fallback",
			expr:     `env("DOES_NOT_EXIST_123").orValue("fallback")`,
			expected: "fallback",
		},
		{
			name:     "combined with declared variable",
			expr:     `stage + ":" + args()[1]`,
			ctx:      map[string]any{"stage": "build"},
			expected: "build:--flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expr, err := engine.Compile(tt.expr)
			require.NoError(t, err)

			result, err := expr.Evaluate(tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCompiledExpression_EvaluateBool(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	t.Run("returns true", func(t *testing.T) {
		t.Parallel()

		expr, err := engine.Compile(`env("PATH").hasValue()`)
		require.NoError(t, err)

		result, err := expr.EvaluateBool(nil)
		require.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("error on non-bool result", func(t *testing.T) {
		t.Parallel()

		expr, err := engine.Compile(`args()[0]`)
		require.NoError(t, err)

		_, err = expr.EvaluateBool(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, cel.ErrInvalidResult)
	})

	t.Run("evaluation error wraps ErrEvaluation", func(t *testing.T) {
		t.Parallel()

		expr, err := engine.Compile(`args()[10] == "x"`)
		require.NoError(t, err)

		_, err = expr.EvaluateBool(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, cel.ErrEvaluation)
	})

	t.Run("value of absent variable fails evaluation", func(t *testing.T) {
		t.Parallel()

		expr, err := engine.Compile(`env("DOES_NOT_EXIST_123").value() == ""`)
		require.NoError(t, err)

		_, err = expr.EvaluateBool(nil)
		assert.ErrorIs(t, err, cel.ErrEvaluation)
	})
}

func TestCompiledExpression_EvaluateString(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	expr, err := engine.Compile(`env("PATH").orValue("")`)
	require.NoError(t, err)
	result, err := expr.EvaluateString(nil)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin", result)

	expr, err = engine.Compile(`env("DOES_NOT_EXIST_123")`)
	require.NoError(t, err)
	_, err = expr.EvaluateString(nil)
	assert.ErrorIs(t, err, cel.ErrInvalidResult)
}

func TestHostEngine_ReadsProcessState(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	t.Setenv("PATH", "/usr/bin")

	engine := cel.NewHostEngine(nil)

	expr, err := engine.Compile(`env("PATH") == optional.of("/usr/bin") && size(args()) >= 1`)
	require.NoError(t, err)

	result, err := expr.EvaluateBool(nil)
	require.NoError(t, err)
	assert.True(t, result)
}

func TestParseError_Details(t *testing.T) {
	t.Parallel()

	_, err := newTestEngine().Compile(`env("PATH"`)
	require.Error(t, err)

	var parseErr *cel.ParseError
	require.True(t, errors.As(err, &parseErr))

	assert.Contains(t, parseErr.Error(), "host expression parse error")
	assert.Contains(t, parseErr.Source, `env("PATH"`)
	assert.NotEmpty(t, parseErr.Errors)
	assert.Contains(t, parseErr.AsJSON(), `"source"`)
}

func TestCheckError_Details(t *testing.T) {
	t.Parallel()

	_, err := newTestEngine().Compile(`env(1)`)
	require.Error(t, err)

	var checkErr *cel.CheckError
	require.True(t, errors.As(err, &checkErr))

	assert.Contains(t, checkErr.Error(), "host expression check error")
	assert.Equal(t, "env(1)", checkErr.Source)
	require.NotEmpty(t, checkErr.Errors)
	assert.Equal(t, 1, checkErr.Errors[0].Line)
	assert.Contains(t, checkErr.Errors[0].Msg, "env")

	var decoded cel.Details
	require.NoError(t, json.Unmarshal([]byte(checkErr.AsJSON()), &decoded))
	assert.Equal(t, checkErr.Details, decoded)
}

func TestEngine_Concurrency(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	expr, err := engine.Compile(`env("PATH").hasValue() && args()[1] == "--flag"`)
	require.NoError(t, err)

	const numGoroutines = 100
	var wg sync.WaitGroup
	errs := make(chan error, numGoroutines)
	results := make(chan bool, numGoroutines)

	for range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := expr.EvaluateBool(nil)
			if err != nil {
				errs <- err
				return
			}
			results <- result
		}()
	}
	wg.Wait()
	close(errs)
	close(results)

	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}
	for result := range results {
		assert.True(t, result)
	}
}
