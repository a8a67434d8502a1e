// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotRegistered is returned when no generated proxy is registered for a target type.
	ErrNotRegistered = errors.New("no proxy registered for target type")
	// ErrInvalidConfig is returned for malformed generation configurations.
	ErrInvalidConfig = errors.New("invalid proxy configuration")
	// ErrMissingMethod is returned when method metadata cannot be resolved on the target type.
	ErrMissingMethod = errors.New("method not declared by target type")
	// ErrAbstractMethod is matched by AbstractMethodError.
	ErrAbstractMethod = errors.New("abstract method invoked")
	// ErrIllegalArgument is matched by IllegalArgumentError.
	ErrIllegalArgument = errors.New("illegal argument")
	// ErrTypeMismatch is matched by TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
)

// GenerationError reports a failure to synthesize a proxy class.
type GenerationError struct {
	Target    reflect.Type
	Signature string
	Err       error
}

func (e *GenerationError) Error() string {
	if e.Signature != "" {
		return fmt.Sprintf("generating proxy for %s: method %s: %v", TypeString(e.Target), e.Signature, e.Err)
	}
	return fmt.Sprintf("generating proxy for %s: %v", TypeString(e.Target), e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// AbstractMethodError is raised by access methods of methods without a
// concrete original implementation.
type AbstractMethodError struct {
	Method string
}

// NewAbstractMethodError creates an AbstractMethodError for the given method description.
func NewAbstractMethodError(method string) *AbstractMethodError {
	return &AbstractMethodError{Method: method}
}

func (e *AbstractMethodError) Error() string {
	return e.Method + " is abstract"
}

func (e *AbstractMethodError) Is(target error) bool {
	return target == ErrAbstractMethod
}

// IllegalArgumentError reports misuse of a MethodProxy: a receiver that is not an
// instance of the bound class, or arguments that do not fit the signature.
type IllegalArgumentError struct {
	Method string
	Reason string
}

func (e *IllegalArgumentError) Error() string {
	return fmt.Sprintf("illegal argument for %s: %s", e.Method, e.Reason)
}

func (e *IllegalArgumentError) Is(target error) bool {
	return target == ErrIllegalArgument
}

// TypeMismatchError reports an interceptor result that cannot be coerced to the
// declared result type.
type TypeMismatchError struct {
	Method   string
	Index    int
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("result %d of %s: expected %s, got %s", e.Index, e.Method, TypeString(e.Expected), TypeString(e.Actual))
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
