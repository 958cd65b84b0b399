// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package celquery compiles and evaluates CEL filter expressions against
// skill records. Expressions see a single variable, "skill", a map of the
// record's fields, and must evaluate to a boolean.
package celquery

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

const (
	// MaxExpressionLength is the maximum allowed length for a filter expression.
	// This limit rejects pathological inputs before parsing.
	MaxExpressionLength = 2048

	// CostLimit is the runtime cost limit for filter evaluation, bounding
	// the work a single record match may perform.
	CostLimit = 100000
)

// Sentinel errors for filter operations.
var (
	// ErrExpressionCheck is returned when an expression fails syntax or type checking.
	ErrExpressionCheck = errors.New("filter expression check failed")

	// ErrEvaluation is returned when expression evaluation fails.
	ErrEvaluation = errors.New("filter expression evaluation failed")

	// ErrInvalidResult is returned when the expression does not yield a boolean.
	ErrInvalidResult = errors.New("filter expression must evaluate to a boolean")
)

// Engine compiles skill filter expressions. It is safe for concurrent use
// and lazily builds its CEL environment on first compile.
type Engine struct {
	once sync.Once
	env  *cel.Env
	err  error
}

// NewEngine creates an engine whose expressions may reference the "skill"
// variable, e.g. `skill.isForSale && skill.creator == skill.owner`.
func NewEngine() *Engine {
	return &Engine{}
}

// Filter is a compiled filter expression ready for repeated evaluation.
type Filter struct {
	source  string
	program cel.Program
}

// Source returns the original expression source string.
func (f *Filter) Source() string {
	return f.source
}

// Compile parses and type-checks a filter expression.
func (e *Engine) Compile(expr string) (*Filter, error) {
	if len(expr) > MaxExpressionLength {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), MaxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, fmt.Errorf("building CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err())
	}

	program, err := env.Program(ast, cel.CostLimit(CostLimit))
	if err != nil {
		return nil, fmt.Errorf("creating CEL program for %q: %w", expr, err)
	}

	return &Filter{source: expr, program: program}, nil
}

// Check verifies that an expression is valid without retaining a program.
// Useful for validating stored queries ahead of use.
func (e *Engine) Check(expr string) error {
	_, err := e.Compile(expr)
	return err
}

// Match evaluates the filter against one skill record context.
// The skill map should carry the record's fields keyed by their JSON names.
func (f *Filter) Match(skill map[string]any) (bool, error) {
	out, _, err := f.program.Eval(map[string]any{"skill": skill})
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %T", ErrInvalidResult, out.Value())
	}
	return result, nil
}

func (e *Engine) getEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.err = cel.NewEnv(
			cel.Variable("skill", cel.MapType(cel.StringType, cel.DynType)),
		)
	})
	return e.env, e.err
}
