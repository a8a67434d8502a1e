// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

import (
	"fmt"
	"reflect"

	"github.com/pk910/dynamic-proxy/switchtable"
)

// Class is a generated proxy type bound to one generation key.
//
// A Class holds the reflected metadata and the Fast Invocation Handle of every
// overridden method by slot, plus a runtime dispatch table over the signature
// descriptors laid out according to the key's configuration. Classes are fully
// initialized before they are published by the class cache and are immutable
// afterwards.
type Class struct {
	key     ClassKey
	spec    *ClassSpec
	methods []*Method
	proxies []*MethodProxy
	table   *switchtable.Table
}

func newClass(key ClassKey, spec *ClassSpec) (*Class, error) {
	if spec.Target != key.Target {
		return nil, &GenerationError{
			Target: key.Target,
			Err:    fmt.Errorf("class spec was registered for %s", TypeString(spec.Target)),
		}
	}

	table, err := switchtable.Build(key.Config.SwitchStyle, spec.Descriptors)
	if err != nil {
		return nil, &GenerationError{Target: key.Target, Err: err}
	}

	cls := &Class{
		key:     key,
		spec:    spec,
		methods: make([]*Method, len(spec.Descriptors)),
		proxies: make([]*MethodProxy, len(spec.Descriptors)),
		table:   table,
	}

	if err := spec.StaticInit(cls); err != nil {
		return nil, err
	}

	if err := cls.verify(); err != nil {
		return nil, err
	}

	return cls, nil
}

// verify checks that every slot is bound and that both the generated and the
// runtime dispatcher resolve each descriptor to its own slot.
func (c *Class) verify() error {
	for slot, desc := range c.spec.Descriptors {
		if c.methods[slot] == nil || c.proxies[slot] == nil {
			return &GenerationError{Target: c.key.Target, Signature: desc, Err: fmt.Errorf("slot %d not bound by static initializer", slot)}
		}
		if found := c.spec.FindSlot(desc); found != slot {
			return &GenerationError{Target: c.key.Target, Signature: desc, Err: fmt.Errorf("generated dispatcher resolved slot %d, expected %d", found, slot)}
		}
		if found := c.table.Lookup(desc); found != slot {
			return &GenerationError{Target: c.key.Target, Signature: desc, Err: fmt.Errorf("dispatch table resolved slot %d, expected %d", found, slot)}
		}
	}
	return nil
}

// ResolveMethod resolves the reflected metadata of the method in slot from the
// target type and checks it against the descriptor recorded at generation time.
// It is called by generated static initializers.
func (c *Class) ResolveMethod(slot int, name string, descriptor string, declaring reflect.Type, abstract bool) (*Method, error) {
	if slot < 0 || slot >= len(c.spec.Descriptors) {
		return nil, &GenerationError{Target: c.key.Target, Signature: descriptor, Err: fmt.Errorf("slot %d out of range", slot)}
	}
	if c.spec.Descriptors[slot] != descriptor {
		return nil, &GenerationError{Target: c.key.Target, Signature: descriptor, Err: fmt.Errorf("slot %d is registered as %s", slot, c.spec.Descriptors[slot])}
	}

	target := c.key.Target
	reflected, ok := target.MethodByName(name)
	if !ok {
		return nil, &GenerationError{Target: target, Signature: descriptor, Err: ErrMissingMethod}
	}

	sig, err := SignatureOf(name, reflected.Type, target.Kind() != reflect.Interface)
	if err != nil {
		return nil, &GenerationError{Target: target, Signature: descriptor, Err: err}
	}
	if sig.Descriptor() != descriptor {
		return nil, &GenerationError{
			Target:    target,
			Signature: descriptor,
			Err:       fmt.Errorf("%w: target declares %s", ErrMissingMethod, sig.Descriptor()),
		}
	}

	if declaring == nil {
		declaring = target
	}

	return &Method{
		slot:      slot,
		signature: sig,
		target:    target,
		declaring: declaring,
		abstract:  abstract,
		reflected: reflected,
	}, nil
}

// Bind stores the metadata and the Fast Invocation Handle of slot. It is called
// by generated static initializers.
func (c *Class) Bind(slot int, m *Method, accessName string, super InvokeFunc, invoke InvokeFunc) error {
	if m == nil || m.slot != slot || slot >= len(c.methods) {
		return &GenerationError{Target: c.key.Target, Err: fmt.Errorf("invalid binding for slot %d", slot)}
	}
	if super == nil || invoke == nil {
		return &GenerationError{Target: c.key.Target, Signature: m.signature.Descriptor(), Err: fmt.Errorf("missing invoker")}
	}
	if c.methods[slot] != nil {
		return &GenerationError{Target: c.key.Target, Signature: m.signature.Descriptor(), Err: fmt.Errorf("slot %d bound twice", slot)}
	}

	c.methods[slot] = m
	c.proxies[slot] = &MethodProxy{
		class:      c,
		method:     m,
		accessName: accessName,
		superFn:    super,
		invokeFn:   invoke,
	}
	return nil
}

// Key returns the generation key of the class.
func (c *Class) Key() ClassKey { return c.key }

// Target returns the proxied type.
func (c *Class) Target() reflect.Type { return c.key.Target }

// ProxyType returns the generated proxy type.
func (c *Class) ProxyType() reflect.Type { return c.spec.Proxy }

// Config returns the configuration the class was built with.
func (c *Class) Config() Config { return c.key.Config }

// NumMethods returns the number of overridden methods.
func (c *Class) NumMethods() int { return len(c.methods) }

// Method returns the metadata of slot.
func (c *Class) Method(slot int) *Method { return c.methods[slot] }

// Proxy returns the Fast Invocation Handle of slot.
func (c *Class) Proxy(slot int) *MethodProxy { return c.proxies[slot] }

// Methods returns the metadata of all overridden methods by slot.
func (c *Class) Methods() []*Method {
	return append([]*Method(nil), c.methods...)
}

// FindMethodProxy returns the handle bound to sig, or nil if the class does not
// override a method with that signature.
func (c *Class) FindMethodProxy(sig Signature) *MethodProxy {
	return c.FindMethodProxyByDescriptor(sig.Descriptor())
}

// FindMethodProxyByDescriptor returns the handle bound to a descriptor string.
func (c *Class) FindMethodProxyByDescriptor(descriptor string) *MethodProxy {
	slot := c.table.Lookup(descriptor)
	if slot == switchtable.NotFound {
		return nil
	}
	return c.proxies[slot]
}

// NewInstance creates a proxy instance around base and binds cb to it.
func (c *Class) NewInstance(base any, cb MethodInterceptor) (Proxy, error) {
	p, err := c.spec.New(c, base)
	if err != nil {
		return nil, err
	}
	if p.ProxyClass() != c {
		return nil, &GenerationError{Target: c.key.Target, Err: fmt.Errorf("generated constructor returned an instance of another class")}
	}
	p.SetProxyCallback(cb)
	return p, nil
}

// InvalidBase returns the error generated constructors report for a base value
// that is not assignable to the target type.
func (c *Class) InvalidBase(base any) error {
	return &IllegalArgumentError{
		Method: "New" + TypeString(c.spec.Proxy),
		Reason: fmt.Sprintf("base of type %s is not a %s", TypeString(reflect.TypeOf(base)), TypeString(c.key.Target)),
	}
}

func (c *Class) String() string {
	return fmt.Sprintf("%s[%s]", TypeString(c.spec.Proxy), c.key.Config)
}
