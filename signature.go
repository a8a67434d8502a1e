// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

import (
	"fmt"
	"reflect"
	"strings"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Signature is the immutable identity of a method: its name, ordered parameter
// types, result types and whether it declares a trailing error result.
//
// The trailing error result is the Go counterpart of a declared exception set;
// it is tracked by ReturnsError and not included in Results. Signatures are
// compared through their descriptor string, which is also the dispatch key of
// the generated signature dispatchers.
type Signature struct {
	name         string
	params       []reflect.Type
	results      []reflect.Type
	variadic     bool
	returnsError bool
	descriptor   string
}

// NewSignature creates a signature. params and results are copied. For variadic
// signatures the last parameter must be a slice type.
func NewSignature(name string, params []reflect.Type, results []reflect.Type, variadic bool, returnsError bool) Signature {
	sig := Signature{
		name:         name,
		params:       append([]reflect.Type(nil), params...),
		results:      append([]reflect.Type(nil), results...),
		variadic:     variadic && len(params) > 0,
		returnsError: returnsError,
	}
	sig.descriptor = sig.buildDescriptor()
	return sig
}

// SignatureOf derives the signature of method name from a func type. When
// hasReceiver is set the first parameter is skipped (method expressions taken
// from a concrete type carry the receiver as first argument).
func SignatureOf(name string, fnType reflect.Type, hasReceiver bool) (Signature, error) {
	if fnType == nil || fnType.Kind() != reflect.Func {
		return Signature{}, fmt.Errorf("signature of %s: %v is not a func type", name, fnType)
	}

	skip := 0
	if hasReceiver {
		if fnType.NumIn() == 0 {
			return Signature{}, fmt.Errorf("signature of %s: func type %v has no receiver", name, fnType)
		}
		skip = 1
	}

	params := make([]reflect.Type, 0, fnType.NumIn()-skip)
	for i := skip; i < fnType.NumIn(); i++ {
		params = append(params, fnType.In(i))
	}

	numOut := fnType.NumOut()
	returnsError := numOut > 0 && fnType.Out(numOut-1) == errorType
	if returnsError {
		numOut--
	}

	results := make([]reflect.Type, 0, numOut)
	for i := 0; i < numOut; i++ {
		results = append(results, fnType.Out(i))
	}

	return NewSignature(name, params, results, fnType.IsVariadic(), returnsError), nil
}

// MethodSignature looks up the signature of method name in the method set of t.
func MethodSignature(t reflect.Type, name string) (Signature, bool) {
	if t == nil {
		return Signature{}, false
	}

	method, ok := t.MethodByName(name)
	if !ok {
		return Signature{}, false
	}

	sig, err := SignatureOf(name, method.Type, t.Kind() != reflect.Interface)
	if err != nil {
		return Signature{}, false
	}

	return sig, true
}

// Name returns the method name.
func (s Signature) Name() string { return s.name }

// NumParams returns the number of parameters.
func (s Signature) NumParams() int { return len(s.params) }

// Param returns the type of parameter i. The last parameter of a variadic
// signature is the slice type.
func (s Signature) Param(i int) reflect.Type { return s.params[i] }

// NumResults returns the number of results, not counting a trailing error.
func (s Signature) NumResults() int { return len(s.results) }

// Result returns the type of result i.
func (s Signature) Result(i int) reflect.Type { return s.results[i] }

// IsVariadic reports whether the last parameter is variadic.
func (s Signature) IsVariadic() bool { return s.variadic }

// ReturnsError reports whether the method declares a trailing error result.
func (s Signature) ReturnsError() bool { return s.returnsError }

// Descriptor returns the canonical serialization of the signature, e.g.
// "Get(string,...int)(*github.com/x/store.Item,error)".
func (s Signature) Descriptor() string { return s.descriptor }

// String returns the descriptor.
func (s Signature) String() string { return s.descriptor }

// IsZero reports whether s is the zero Signature.
func (s Signature) IsZero() bool { return s.descriptor == "" }

// Equal reports whether both signatures describe the same method.
func (s Signature) Equal(other Signature) bool {
	return s.descriptor == other.descriptor
}

func (s Signature) buildDescriptor() string {
	var b strings.Builder
	b.WriteString(s.name)
	b.WriteByte('(')
	for i, p := range s.params {
		if i > 0 {
			b.WriteByte(',')
		}
		if s.variadic && i == len(s.params)-1 && p.Kind() == reflect.Slice {
			b.WriteString("...")
			writeType(&b, p.Elem())
			continue
		}
		writeType(&b, p)
	}
	b.WriteString(")(")
	for i, r := range s.results {
		if i > 0 {
			b.WriteByte(',')
		}
		writeType(&b, r)
	}
	if s.returnsError {
		if len(s.results) > 0 {
			b.WriteByte(',')
		}
		b.WriteString("error")
	}
	b.WriteByte(')')
	return b.String()
}
