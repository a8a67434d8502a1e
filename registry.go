// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// ClassSpec is the registration emitted by the code generator for one target type.
type ClassSpec struct {
	// Target is the proxied type: a pointer to a named struct or a named interface.
	Target reflect.Type
	// Proxy is the generated proxy type (always a pointer type).
	Proxy reflect.Type
	// Descriptors lists the signature descriptors of the overridden methods by slot.
	Descriptors []string
	// StaticInit resolves method metadata and binds the Fast Invocation Handles.
	StaticInit func(cls *Class) error
	// FindSlot is the generated signature dispatcher.
	FindSlot func(descriptor string) int
	// New creates a proxy instance around base. A nil base creates a zero target
	// for struct targets and an unset delegate for interface targets.
	New func(cls *Class, base any) (Proxy, error)
}

func (s *ClassSpec) validate() error {
	switch {
	case s.Target == nil:
		return fmt.Errorf("class spec without target type")
	case s.Proxy == nil:
		return fmt.Errorf("class spec for %s without proxy type", TypeString(s.Target))
	case s.StaticInit == nil || s.FindSlot == nil || s.New == nil:
		return fmt.Errorf("class spec for %s is incomplete", TypeString(s.Target))
	}
	return nil
}

// Registry maps target types to the generated class specs.
type Registry struct {
	mutex sync.RWMutex
	specs map[reflect.Type]*ClassSpec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[reflect.Type]*ClassSpec),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry generated code registers with.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds spec to the default registry. It is called from the init
// functions of generated code and panics on invalid or duplicate specs.
func Register(spec *ClassSpec) {
	if err := defaultRegistry.Register(spec); err != nil {
		panic(err)
	}
}

// Register adds spec to the registry.
func (r *Registry) Register(spec *ClassSpec) error {
	if spec == nil {
		return fmt.Errorf("nil class spec")
	}
	if err := spec.validate(); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.specs[spec.Target]; exists {
		return fmt.Errorf("proxy for %s registered twice", TypeString(spec.Target))
	}
	r.specs[spec.Target] = spec
	return nil
}

// Lookup returns the spec registered for target.
func (r *Registry) Lookup(target reflect.Type) (*ClassSpec, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	spec, ok := r.specs[target]
	return spec, ok
}

// Targets returns all registered target types ordered by name.
func (r *Registry) Targets() []reflect.Type {
	r.mutex.RLock()
	targets := make([]reflect.Type, 0, len(r.specs))
	for t := range r.specs {
		targets = append(targets, t)
	}
	r.mutex.RUnlock()

	sort.Slice(targets, func(i, j int) bool {
		return TypeString(targets[i]) < TypeString(targets[j])
	})
	return targets
}
