// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

import (
	"fmt"
	"reflect"
)

// InvokeFunc is a typed invoker emitted by the code generator. It is only called
// after the receiver and the argument count have been validated.
type InvokeFunc func(obj Proxy, args []any) ([]any, error)

// MethodProxy is the Fast Invocation Handle of one method on one proxy class.
//
// It is bound once while the class is initialized and calls the generated
// methods through typed invokers, so no reflective method lookup happens per
// call. A MethodProxy is immutable and safe for concurrent use.
type MethodProxy struct {
	class      *Class
	method     *Method
	accessName string
	superFn    InvokeFunc
	invokeFn   InvokeFunc
}

// Class returns the class the handle is bound to.
func (mp *MethodProxy) Class() *Class { return mp.class }

// Method returns the metadata of the bound method.
func (mp *MethodProxy) Method() *Method { return mp.method }

// Signature returns the signature of the bound method.
func (mp *MethodProxy) Signature() Signature { return mp.method.signature }

// DeclaringType returns the type declaring the original implementation.
func (mp *MethodProxy) DeclaringType() reflect.Type { return mp.method.declaring }

// ProxyType returns the generated Go type of the bound class.
func (mp *MethodProxy) ProxyType() reflect.Type { return mp.class.ProxyType() }

// AccessName returns the name of the generated access method.
func (mp *MethodProxy) AccessName() string { return mp.accessName }

// InvokeSuper calls the original implementation (the access method) on obj.
//
// Results are returned without the trailing error, which is returned unchanged
// as err. Panics of the original implementation propagate. obj must be an
// instance of exactly the bound class, otherwise an IllegalArgumentError is
// returned before anything is called.
func (mp *MethodProxy) InvokeSuper(obj any, args []any) ([]any, error) {
	p, err := mp.checkCall(obj, args)
	if err != nil {
		return nil, err
	}
	return mp.superFn(p, args)
}

// Invoke calls the around method on obj, going through the interceptor bound to
// obj if there is one. The receiver rules of InvokeSuper apply.
func (mp *MethodProxy) Invoke(obj any, args []any) ([]any, error) {
	p, err := mp.checkCall(obj, args)
	if err != nil {
		return nil, err
	}
	return mp.invokeFn(p, args)
}

func (mp *MethodProxy) checkCall(obj any, args []any) (Proxy, error) {
	if obj == nil {
		return nil, mp.illegal("nil receiver")
	}

	p, ok := obj.(Proxy)
	if !ok || reflect.TypeOf(obj) != mp.class.ProxyType() {
		return nil, mp.illegal(fmt.Sprintf("receiver of type %s is not a %s", TypeString(reflect.TypeOf(obj)), TypeString(mp.class.ProxyType())))
	}
	if isNilValue(reflect.ValueOf(obj)) {
		return nil, mp.illegal("nil receiver")
	}
	if p.ProxyClass() != mp.class {
		return nil, mp.illegal(fmt.Sprintf("receiver belongs to class %v, handle is bound to %v", p.ProxyClass(), mp.class))
	}

	if len(args) != mp.method.signature.NumParams() {
		return nil, mp.illegal(fmt.Sprintf("expected %d arguments, got %d", mp.method.signature.NumParams(), len(args)))
	}

	return p, nil
}

func (mp *MethodProxy) illegal(reason string) error {
	return &IllegalArgumentError{
		Method: mp.method.String(),
		Reason: reason,
	}
}

func (mp *MethodProxy) String() string {
	return fmt.Sprintf("MethodProxy(%s -> %s)", mp.method, mp.accessName)
}
