// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

import (
	"fmt"
	"reflect"
)

// Result coerces value i of an interceptor result list to T.
//
// Missing and nil values yield the zero value of T. Values of a different
// numeric kind are converted (an interceptor may return the literal 42 for an
// int64 result). Every other mismatch yields a TypeMismatchError naming the
// expected and actual type.
func Result[T any](m *Method, results []any, i int) (T, error) {
	var zero T
	if i >= len(results) || results[i] == nil {
		return zero, nil
	}
	if v, ok := results[i].(T); ok {
		return v, nil
	}

	expected := reflect.TypeOf((*T)(nil)).Elem()
	value := reflect.ValueOf(results[i])
	if isNumericKind(value.Kind()) && isNumericKind(expected.Kind()) {
		return value.Convert(expected).Interface().(T), nil
	}

	return zero, &TypeMismatchError{
		Method:   m.String(),
		Index:    i,
		Expected: expected,
		Actual:   value.Type(),
	}
}

// Arg extracts argument i of a MethodProxy call as T. nil yields the zero value
// for nilable types; everything else must match T exactly.
func Arg[T any](m *Method, args []any, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, &IllegalArgumentError{
			Method: m.String(),
			Reason: fmt.Sprintf("missing argument %d", i),
		}
	}
	if v, ok := args[i].(T); ok {
		return v, nil
	}

	expected := reflect.TypeOf((*T)(nil)).Elem()
	if args[i] == nil && isNilableKind(expected.Kind()) {
		return zero, nil
	}

	return zero, &IllegalArgumentError{
		Method: m.String(),
		Reason: fmt.Sprintf("argument %d: expected %s, got %s", i, TypeString(expected), TypeString(reflect.TypeOf(args[i]))),
	}
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isNilableKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
