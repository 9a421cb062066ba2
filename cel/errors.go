// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cel

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

var (
	// ErrExpressionCheck wraps every rejection of a host expression before
	// evaluation: syntax errors, type errors such as env(1), and length limits.
	ErrExpressionCheck = errors.New("host expression rejected")

	// ErrEvaluation wraps runtime failures, including exceeding the cost limit.
	ErrEvaluation = errors.New("host expression evaluation failed")

	// ErrInvalidResult is returned when a result has a different Go type than
	// the typed evaluate method asked for.
	ErrInvalidResult = errors.New("host expression result has the wrong type")
)

// Compilation stages reported by ParseError and CheckError.
const (
	stageParse = "parse"
	stageCheck = "check"
)

// Issue locates one problem in an expression. Line and Col are 1-based.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// Details lists the issues cel-go reported for Source.
type Details struct {
	Errors []Issue `json:"errors,omitempty"`
	Source string  `json:"source,omitempty"`
}

// AsJSON renders the details for callers that forward them to a client.
func (d *Details) AsJSON() string {
	out, err := json.Marshal(d)
	if err != nil {
		return fmt.Sprintf(`{"source":%q}`, d.Source)
	}
	return string(out)
}

// compileError carries the details shared by ParseError and CheckError.
type compileError struct {
	Details
	stage    string
	original error
}

// Error implements the error interface.
func (e *compileError) Error() string {
	return fmt.Sprintf("host expression %s error in %q: %s", e.stage, e.Source, e.original)
}

// Unwrap returns the underlying error, which always wraps ErrExpressionCheck.
func (e *compileError) Unwrap() error {
	return e.original
}

// ParseError represents a CEL syntax error with location information.
type ParseError struct {
	compileError
}

// CheckError represents a CEL type checking error, such as calling env()
// with a non-string key.
type CheckError struct {
	compileError
}

func newCompileError(stage, source string, issues *cel.Issues) compileError {
	details := Details{
		Source: source,
		Errors: make([]Issue, 0, len(issues.Errors())),
	}
	for _, err := range issues.Errors() {
		details.Errors = append(details.Errors, Issue{
			Line: err.Location.Line(),
			Col:  err.Location.Column(),
			Msg:  err.Message,
		})
	}

	return compileError{
		Details:  details,
		stage:    stage,
		original: fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}

func newParseError(source string, issues *cel.Issues) error {
	return &ParseError{compileError: newCompileError(stageParse, source, issues)}
}

func newCheckError(source string, issues *cel.Issues) error {
	return &CheckError{compileError: newCompileError(stageCheck, source, issues)}
}
