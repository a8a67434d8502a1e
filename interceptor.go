// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

import (
	"sync/atomic"
)

// MethodInterceptor is the caller supplied policy invoked by the around methods
// of a generated proxy while it is bound to the proxy instance.
//
// Intercept receives the proxy instance, the reflected metadata of the called
// method, the call arguments (a variadic tail is passed as one slice) and the
// Fast Invocation Handle of the method. The returned values are coerced to the
// declared result types; missing or nil values become zero values. A returned
// error is passed through unchanged when the method declares an error result and
// panicked otherwise.
//
// The original implementation can be reached with proxy.InvokeSuper(obj, args).
type MethodInterceptor interface {
	Intercept(obj Proxy, method *Method, args []any, proxy *MethodProxy) ([]any, error)
}

// InterceptorFunc adapts a function to the MethodInterceptor interface.
type InterceptorFunc func(obj Proxy, method *Method, args []any, proxy *MethodProxy) ([]any, error)

// Intercept calls f.
func (f InterceptorFunc) Intercept(obj Proxy, method *Method, args []any, proxy *MethodProxy) ([]any, error) {
	return f(obj, method, args, proxy)
}

// PassThrough forwards every call to the original implementation.
var PassThrough MethodInterceptor = InterceptorFunc(func(obj Proxy, _ *Method, args []any, proxy *MethodProxy) ([]any, error) {
	return proxy.InvokeSuper(obj, args)
})

// Proxy is implemented by all generated proxy types.
type Proxy interface {
	// ProxyClass returns the class the instance was created from.
	ProxyClass() *Class
	// ProxyCallback returns the currently bound interceptor or nil.
	ProxyCallback() MethodInterceptor
	// SetProxyCallback binds cb to the instance; nil unbinds.
	SetProxyCallback(cb MethodInterceptor)
	// FindMethodProxy resolves a signature through the generated dispatcher.
	FindMethodProxy(sig Signature) *MethodProxy
}

// Binding is the per-instance callback slot of a generated proxy. It may be
// swapped while other goroutines invoke methods on the instance; readers observe
// either the previous or the new interceptor.
type Binding struct {
	slot atomic.Pointer[bindingSlot]
}

type bindingSlot struct {
	interceptor MethodInterceptor
}

// Load returns the bound interceptor or nil.
func (b *Binding) Load() MethodInterceptor {
	if s := b.slot.Load(); s != nil {
		return s.interceptor
	}
	return nil
}

// Store binds cb; a nil cb clears the slot.
func (b *Binding) Store(cb MethodInterceptor) {
	if cb == nil {
		b.slot.Store(nil)
		return
	}
	b.slot.Store(&bindingSlot{interceptor: cb})
}
