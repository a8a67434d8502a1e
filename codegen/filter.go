// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"fmt"

	"github.com/casbin/govaluate"
)

// MethodFilter selects the methods a proxy overrides.
//
// The filter is a govaluate expression evaluated per method with the
// parameters:
//
//	name      method name (string)
//	params    number of parameters
//	results   number of results, not counting a trailing error
//	error     whether the method returns a trailing error
//	variadic  whether the last parameter is variadic
//	abstract  whether the method is provided by an embedded interface
//
// Example: `name != 'String' && (error || results > 0)`.
type MethodFilter struct {
	source     string
	expression *govaluate.EvaluableExpression
}

// NewMethodFilter parses a filter expression.
func NewMethodFilter(expr string) (*MethodFilter, error) {
	expression, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("error parsing method filter %q: %v", expr, err)
	}

	return &MethodFilter{
		source:     expr,
		expression: expression,
	}, nil
}

// Match evaluates the filter for method.
func (f *MethodFilter) Match(method *ProxyMethod) (bool, error) {
	params := map[string]interface{}{
		"name":     method.Name,
		"params":   float64(method.Signature.Params().Len()),
		"results":  float64(method.NumResults),
		"error":    method.ReturnsError,
		"variadic": method.Signature.Variadic(),
		"abstract": method.Abstract,
	}

	result, err := f.expression.Evaluate(params)
	if err != nil {
		return false, fmt.Errorf("error evaluating method filter %q for %s: %v", f.source, method.Name, err)
	}

	match, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("method filter %q evaluated to %v, expected a boolean", f.source, result)
	}

	return match, nil
}

func (f *MethodFilter) String() string {
	return f.source
}
