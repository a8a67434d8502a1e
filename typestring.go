// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeString renders t in the canonical form used by signature descriptors.
//
// Named types are qualified with their full package path ("github.com/x/pkg.Item"),
// predeclared types use their Go name with byte and rune normalized to uint8 and
// int32. The code generator renders go/types types with the same rules, so a
// descriptor computed at generation time matches the one computed at run time.
//
// Examples:
//
//	TypeString(reflect.TypeOf(0))                // "int"
//	TypeString(reflect.TypeOf([]*bytes.Buffer{})) // "[]*bytes.Buffer"
//	TypeString(reflect.TypeOf(map[string]any{}))  // "map[string]interface {}"
func TypeString(t reflect.Type) string {
	var b strings.Builder
	writeType(&b, t)
	return b.String()
}

func writeType(b *strings.Builder, t reflect.Type) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}

	if t.Kind() == reflect.UnsafePointer {
		b.WriteString("unsafe.Pointer")
		return
	}

	if name := t.Name(); name != "" {
		if pkg := t.PkgPath(); pkg != "" {
			b.WriteString(pkg)
			b.WriteByte('.')
		}
		b.WriteString(name)
		return
	}

	switch t.Kind() {
	case reflect.Pointer:
		b.WriteByte('*')
		writeType(b, t.Elem())
	case reflect.Slice:
		b.WriteString("[]")
		writeType(b, t.Elem())
	case reflect.Array:
		fmt.Fprintf(b, "[%d]", t.Len())
		writeType(b, t.Elem())
	case reflect.Map:
		b.WriteString("map[")
		writeType(b, t.Key())
		b.WriteByte(']')
		writeType(b, t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			b.WriteString("<-chan ")
		case reflect.SendDir:
			b.WriteString("chan<- ")
		default:
			b.WriteString("chan ")
		}
		writeType(b, t.Elem())
	case reflect.Func:
		b.WriteString("func")
		writeFuncTypes(b, t, 0)
	case reflect.Interface:
		if t.NumMethod() == 0 {
			b.WriteString("interface {}")
			return
		}
		b.WriteString("interface { ")
		for i := 0; i < t.NumMethod(); i++ {
			m := t.Method(i)
			if i > 0 {
				b.WriteString("; ")
			}
			if m.PkgPath != "" {
				b.WriteString(m.PkgPath)
				b.WriteByte('.')
			}
			b.WriteString(m.Name)
			writeFuncTypes(b, m.Type, 0)
		}
		b.WriteString(" }")
	case reflect.Struct:
		if t.NumField() == 0 {
			b.WriteString("struct {}")
			return
		}
		b.WriteString("struct { ")
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if i > 0 {
				b.WriteString("; ")
			}
			if !f.Anonymous {
				b.WriteString(f.Name)
				b.WriteByte(' ')
			}
			writeType(b, f.Type)
		}
		b.WriteString(" }")
	default:
		b.WriteString(t.String())
	}
}

// writeFuncTypes writes "(params)(results)" of a func type, skipping the first
// skip parameters (the receiver of method values taken from a concrete type).
func writeFuncTypes(b *strings.Builder, t reflect.Type, skip int) {
	b.WriteByte('(')
	for i := skip; i < t.NumIn(); i++ {
		if i > skip {
			b.WriteByte(',')
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			b.WriteString("...")
			writeType(b, t.In(i).Elem())
			continue
		}
		writeType(b, t.In(i))
	}
	b.WriteString(")(")
	for i := 0; i < t.NumOut(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		writeType(b, t.Out(i))
	}
	b.WriteByte(')')
}
