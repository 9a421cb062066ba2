// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cel

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length for a CEL expression.
	DefaultMaxExpressionLength = 10000

	// DefaultCostLimit is the default runtime cost limit for CEL program evaluation.
	DefaultCostLimit = 1000000
)

// Engine compiles and evaluates CEL expressions.
// It is safe for concurrent use from multiple goroutines.
type Engine struct {
	options             []cel.EnvOption
	maxExpressionLength int
	costLimit           uint64

	once sync.Once
	env  *cel.Env
	err  error
}

// CompiledExpression represents a pre-compiled CEL program ready for evaluation.
type CompiledExpression struct {
	source  string
	program cel.Program
}

// Source returns the original expression source string.
func (ce *CompiledExpression) Source() string {
	return ce.source
}

// NewEngine creates a new CEL engine. The options are passed to cel.NewEnv
// the first time an expression is compiled or checked.
//
// Use [NewHostEngine] for an engine with the args() and env() functions.
func NewEngine(options ...cel.EnvOption) *Engine {
	return &Engine{
		options:             options,
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
	}
}

// WithMaxExpressionLength sets the maximum allowed length for CEL expressions.
// Expressions exceeding this length will be rejected during compilation.
func (e *Engine) WithMaxExpressionLength(maxLen int) *Engine {
	e.maxExpressionLength = maxLen
	return e
}

// WithCostLimit sets the runtime cost limit for CEL program evaluation.
// Programs that exceed this cost during evaluation will return an error.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

func (e *Engine) getEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.err = cel.NewEnv(e.options...)
	})
	return e.env, e.err
}

// checked runs the length limit, parser and type checker over expr.
func (e *Engine) checked(expr string) (*cel.Env, *cel.Ast, error) {
	if len(expr) > e.maxExpressionLength {
		return nil, nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), e.maxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	parsedAst, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, nil, newParseError(expr, issues)
	}

	checkedAst, issues := env.Check(parsedAst)
	if issues.Err() != nil {
		return nil, nil, newCheckError(expr, issues)
	}

	return env, checkedAst, nil
}

// Compile parses and compiles a CEL expression, returning a CompiledExpression
// that can be evaluated multiple times against different contexts.
//
// Returns an error if the expression exceeds the maximum length, a ParseError
// if the expression has syntax errors, or a CheckError if the expression has
// type checking errors.
func (e *Engine) Compile(expr string) (*CompiledExpression, error) {
	env, ast, err := e.checked(expr)
	if err != nil {
		return nil, err
	}

	program, err := env.Program(ast, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &CompiledExpression{
		source:  expr,
		program: program,
	}, nil
}

// Check verifies that a CEL expression is syntactically and semantically valid
// without creating a compiled program.
func (e *Engine) Check(expr string) error {
	_, _, err := e.checked(expr)
	return err
}

// Evaluate executes the compiled expression against the provided context
// and returns the result. The context should contain values for all variables
// declared when creating the Engine. A nil ctx is valid for expressions that
// only call host functions.
//
// An optional result is returned as its wrapped value, or nil when empty.
func (ce *CompiledExpression) Evaluate(ctx map[string]any) (any, error) {
	if ctx == nil {
		ctx = map[string]any{}
	}
	out, _, err := ce.program.Eval(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}
	return out.Value(), nil
}

// EvaluateBool executes the compiled expression and returns the result as a bool.
func (ce *CompiledExpression) EvaluateBool(ctx map[string]any) (bool, error) {
	return evaluateAs[bool](ce, ctx)
}

// EvaluateString executes the compiled expression and returns the result as a string.
func (ce *CompiledExpression) EvaluateString(ctx map[string]any) (string, error) {
	return evaluateAs[string](ce, ctx)
}

func evaluateAs[T any](ce *CompiledExpression, ctx map[string]any) (T, error) {
	var zero T
	result, err := ce.Evaluate(ctx)
	if err != nil {
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("%w: expected %T, got %T", ErrInvalidResult, zero, result)
	}
	return typed, nil
}
