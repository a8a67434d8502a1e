// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

import (
	"reflect"
)

// Method is the reflected metadata of one overridden method of a proxy class.
type Method struct {
	slot      int
	signature Signature
	target    reflect.Type
	declaring reflect.Type
	abstract  bool
	reflected reflect.Method
}

// Name returns the method name.
func (m *Method) Name() string { return m.signature.Name() }

// Slot returns the index of the method within its class.
func (m *Method) Slot() int { return m.slot }

// Signature returns the method signature.
func (m *Method) Signature() Signature { return m.signature }

// Target returns the proxied target type.
func (m *Method) Target() reflect.Type { return m.target }

// DeclaringType returns the type that declares the original implementation. For
// methods promoted from embedded fields this is the embedded type.
func (m *Method) DeclaringType() reflect.Type { return m.declaring }

// IsAbstract reports whether the original implementation is provided by an
// embedded interface value that may be unset.
func (m *Method) IsAbstract() bool { return m.abstract }

// Reflect returns the reflect.Method of the target type.
func (m *Method) Reflect() reflect.Method { return m.reflected }

// String returns a description like "github.com/x/store.Counter.Size()(int)".
func (m *Method) String() string {
	owner := m.declaring
	if owner.Kind() == reflect.Pointer && owner.Name() == "" {
		owner = owner.Elem()
	}
	return TypeString(owner) + "." + m.signature.Descriptor()
}
