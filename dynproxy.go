// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

// Package dynproxy provides transparent method interception for Go types.
//
// Proxy types are produced ahead of time by the dynproxy-gen code generator:
// for a target type it emits a proxy that embeds the target and overrides each
// selected method with an around method (routing through a MethodInterceptor
// when one is bound) and an access method (calling the original
// implementation). At run time the engine binds a generated proxy type to a
// Class once per target type and configuration and hands out instances of it.
//
// Example usage:
//
//	dp := dynproxy.NewDynProxy()
//
//	counter, err := dynproxy.NewProxy[*store.Counter](dp, &store.Counter{},
//	    dynproxy.InterceptorFunc(func(obj dynproxy.Proxy, m *dynproxy.Method, args []any, mp *dynproxy.MethodProxy) ([]any, error) {
//	        log.Printf("calling %v", m)
//	        return mp.InvokeSuper(obj, args)
//	    }))
//
//	counter.(*store.CounterProxy).Size()
package dynproxy

import (
	"fmt"
	"reflect"
)

// DynProxy is a proxy engine. It owns the class cache, which is the scope
// generated classes live in: every DynProxy synthesizes its own classes, and
// dropping the engine drops its classes.
//
// A DynProxy is safe for concurrent use. It's recommended to share one engine
// per process to benefit from caching.
type DynProxy struct {
	classCache    *ClassCache
	registry      *Registry
	defaultConfig Config

	// Verbose enables logging of class synthesis.
	Verbose bool
	logCb   func(format string, args ...any)
}

// NewDynProxy creates a new proxy engine.
func NewDynProxy(opts ...DynProxyOption) *DynProxy {
	options := &DynProxyOptions{}
	for _, opt := range opts {
		opt(options)
	}

	dp := &DynProxy{
		classCache:    NewClassCache(),
		registry:      options.Registry,
		defaultConfig: DefaultConfig(),
		Verbose:       options.Verbose,
		logCb:         options.LogCb,
	}

	if dp.registry == nil {
		dp.registry = DefaultRegistry()
	}
	if options.DefaultConfig != nil {
		dp.defaultConfig = *options.DefaultConfig
	}

	return dp
}

// GetClassCache returns the class cache of the engine.
func (d *DynProxy) GetClassCache() *ClassCache {
	return d.classCache
}

// GetRegistry returns the registry the engine resolves generated code from.
func (d *DynProxy) GetRegistry() *Registry {
	return d.registry
}

// DefaultConfig returns the configuration used when none is given.
func (d *DynProxy) DefaultConfig() Config {
	return d.defaultConfig
}

// GetClass returns the class for target and cfg, synthesizing it on first use.
//
// Synthesis fails with a GenerationError if no proxy was generated for target,
// cfg is malformed, or the generated code does not match the target's method
// set.
func (d *DynProxy) GetClass(target reflect.Type, cfg Config) (*Class, error) {
	if target == nil {
		return nil, &GenerationError{Err: fmt.Errorf("%w: nil target type", ErrNotRegistered)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &GenerationError{Target: target, Err: err}
	}

	key := ClassKey{Target: target, Config: cfg}
	return d.classCache.GetOrCreate(key, func() (*Class, error) {
		spec, ok := d.registry.Lookup(target)
		if !ok {
			return nil, &GenerationError{Target: target, Err: ErrNotRegistered}
		}

		cls, err := newClass(key, spec)
		if err != nil {
			d.logf("dynproxy: failed synthesizing %v: %v", key, err)
			return nil, err
		}

		d.logf("dynproxy: synthesized %v with %d methods", cls, cls.NumMethods())
		return cls, nil
	})
}

// CreateProxy creates a proxy instance for target.
//
// base is the wrapped original: a value assignable to target, or nil for a zero
// struct target or an unset interface delegate. cb is bound to the instance and
// may be nil (every call then goes to the original implementation).
func (d *DynProxy) CreateProxy(target reflect.Type, cfg Config, base any, cb MethodInterceptor) (Proxy, error) {
	cls, err := d.GetClass(target, cfg)
	if err != nil {
		return nil, err
	}

	return cls.NewInstance(base, cb)
}

// NewProxy creates a proxy for the target type T, which is a pointer to a named
// struct or a named interface type. The engine default configuration is used
// unless cfg is given.
func NewProxy[T any](d *DynProxy, base T, cb MethodInterceptor, cfg ...Config) (Proxy, error) {
	config := d.defaultConfig
	if len(cfg) > 0 {
		config = cfg[0]
	}

	var baseValue any
	if v := reflect.ValueOf(&base).Elem(); !isNilValue(v) {
		baseValue = base
	}

	return d.CreateProxy(reflect.TypeOf((*T)(nil)).Elem(), config, baseValue, cb)
}

func isNilValue(v reflect.Value) bool {
	if isNilableKind(v.Kind()) {
		return v.IsNil()
	}
	return false
}

func (d *DynProxy) logf(format string, args ...any) {
	if !d.Verbose || d.logCb == nil {
		return
	}
	d.logCb(format, args...)
}
