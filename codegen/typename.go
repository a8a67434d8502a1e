// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/dave/jennifer/jen"
)

// typeString renders t like dynproxy.TypeString renders the reflect.Type of t.
// Both renderings must stay in sync: descriptors computed here are embedded in
// generated code and compared against the runtime ones on class synthesis.
func typeString(t types.Type) string {
	var b strings.Builder
	writeTypeString(&b, t)
	return b.String()
}

func writeTypeString(b *strings.Builder, t types.Type) {
	t = types.Unalias(t)

	switch tt := t.(type) {
	case *types.Basic:
		switch tt.Kind() {
		case types.UnsafePointer:
			b.WriteString("unsafe.Pointer")
		default:
			// byte and rune share the kind of uint8 and int32
			b.WriteString(types.Typ[tt.Kind()].Name())
		}
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() != nil {
			b.WriteString(obj.Pkg().Path())
			b.WriteByte('.')
		}
		b.WriteString(obj.Name())
		if args := tt.TypeArgs(); args != nil && args.Len() > 0 {
			b.WriteByte('[')
			for i := 0; i < args.Len(); i++ {
				if i > 0 {
					b.WriteByte(',')
				}
				writeTypeString(b, args.At(i))
			}
			b.WriteByte(']')
		}
	case *types.Pointer:
		b.WriteByte('*')
		writeTypeString(b, tt.Elem())
	case *types.Slice:
		b.WriteString("[]")
		writeTypeString(b, tt.Elem())
	case *types.Array:
		fmt.Fprintf(b, "[%d]", tt.Len())
		writeTypeString(b, tt.Elem())
	case *types.Map:
		b.WriteString("map[")
		writeTypeString(b, tt.Key())
		b.WriteByte(']')
		writeTypeString(b, tt.Elem())
	case *types.Chan:
		switch tt.Dir() {
		case types.RecvOnly:
			b.WriteString("<-chan ")
		case types.SendOnly:
			b.WriteString("chan<- ")
		default:
			b.WriteString("chan ")
		}
		writeTypeString(b, tt.Elem())
	case *types.Signature:
		b.WriteString("func")
		writeSignatureString(b, tt)
	case *types.Interface:
		if tt.NumMethods() == 0 {
			b.WriteString("interface {}")
			return
		}
		b.WriteString("interface { ")
		for i := 0; i < tt.NumMethods(); i++ {
			m := tt.Method(i)
			if i > 0 {
				b.WriteString("; ")
			}
			if !m.Exported() && m.Pkg() != nil {
				b.WriteString(m.Pkg().Path())
				b.WriteByte('.')
			}
			b.WriteString(m.Name())
			writeSignatureString(b, m.Type().(*types.Signature))
		}
		b.WriteString(" }")
	case *types.Struct:
		if tt.NumFields() == 0 {
			b.WriteString("struct {}")
			return
		}
		b.WriteString("struct { ")
		for i := 0; i < tt.NumFields(); i++ {
			f := tt.Field(i)
			if i > 0 {
				b.WriteString("; ")
			}
			if !f.Embedded() {
				b.WriteString(f.Name())
				b.WriteByte(' ')
			}
			writeTypeString(b, f.Type())
		}
		b.WriteString(" }")
	default:
		b.WriteString(t.String())
	}
}

func writeSignatureString(b *strings.Builder, sig *types.Signature) {
	b.WriteByte('(')
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		if sig.Variadic() && i == params.Len()-1 {
			b.WriteString("...")
			writeTypeString(b, params.At(i).Type().(*types.Slice).Elem())
			continue
		}
		writeTypeString(b, params.At(i).Type())
	}
	b.WriteString(")(")
	results := sig.Results()
	for i := 0; i < results.Len(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		writeTypeString(b, results.At(i).Type())
	}
	b.WriteByte(')')
}

// typeCode converts t into a jennifer type expression. Named types are
// qualified by package path, jennifer drops the qualifier for the package of the
// generated file.
func typeCode(t types.Type) (jen.Code, error) {
	switch tt := t.(type) {
	case *types.Alias:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			return jen.Id(obj.Name()), nil
		}
		return jen.Qual(obj.Pkg().Path(), obj.Name()), nil
	case *types.Basic:
		if tt.Kind() == types.UnsafePointer {
			return jen.Qual("unsafe", "Pointer"), nil
		}
		return jen.Id(tt.Name()), nil
	case *types.Named:
		obj := tt.Obj()
		var code *jen.Statement
		if obj.Pkg() == nil {
			code = jen.Id(obj.Name())
		} else {
			code = jen.Qual(obj.Pkg().Path(), obj.Name())
		}
		if args := tt.TypeArgs(); args != nil && args.Len() > 0 {
			argCodes := make([]jen.Code, args.Len())
			for i := 0; i < args.Len(); i++ {
				c, err := typeCode(args.At(i))
				if err != nil {
					return nil, err
				}
				argCodes[i] = c
			}
			code = code.Types(argCodes...)
		}
		return code, nil
	case *types.Pointer:
		elem, err := typeCode(tt.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Op("*").Add(elem), nil
	case *types.Slice:
		elem, err := typeCode(tt.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Index().Add(elem), nil
	case *types.Array:
		elem, err := typeCode(tt.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Index(jen.Lit(int(tt.Len()))).Add(elem), nil
	case *types.Map:
		key, err := typeCode(tt.Key())
		if err != nil {
			return nil, err
		}
		elem, err := typeCode(tt.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Map(key).Add(elem), nil
	case *types.Chan:
		elem, err := typeCode(tt.Elem())
		if err != nil {
			return nil, err
		}
		switch tt.Dir() {
		case types.RecvOnly:
			return jen.Op("<-").Chan().Add(elem), nil
		case types.SendOnly:
			return jen.Chan().Op("<-").Add(elem), nil
		default:
			return jen.Chan().Add(elem), nil
		}
	case *types.Signature:
		params, results, err := signatureCode(tt)
		if err != nil {
			return nil, err
		}
		return jen.Func().Params(params...).Add(resultsCode(results)), nil
	case *types.Interface:
		methods := make([]jen.Code, 0, tt.NumExplicitMethods())
		for i := 0; i < tt.NumExplicitMethods(); i++ {
			m := tt.ExplicitMethod(i)
			params, results, err := signatureCode(m.Type().(*types.Signature))
			if err != nil {
				return nil, err
			}
			methods = append(methods, jen.Id(m.Name()).Params(params...).Add(resultsCode(results)))
		}
		for i := 0; i < tt.NumEmbeddeds(); i++ {
			c, err := typeCode(tt.EmbeddedType(i))
			if err != nil {
				return nil, err
			}
			methods = append(methods, c)
		}
		return jen.Interface(methods...), nil
	case *types.Struct:
		fields := make([]jen.Code, 0, tt.NumFields())
		for i := 0; i < tt.NumFields(); i++ {
			f := tt.Field(i)
			c, err := typeCode(f.Type())
			if err != nil {
				return nil, err
			}
			if f.Embedded() {
				fields = append(fields, c)
			} else {
				fields = append(fields, jen.Id(f.Name()).Add(c))
			}
		}
		return jen.Struct(fields...), nil
	case *types.TypeParam:
		return nil, fmt.Errorf("type parameter %s is not supported", tt.Obj().Name())
	}

	return nil, fmt.Errorf("unsupported type %s", t.String())
}

// signatureCode returns the parameter and result types of sig. A variadic last
// parameter is rendered as ...Elem.
func signatureCode(sig *types.Signature) ([]jen.Code, []jen.Code, error) {
	params := make([]jen.Code, 0, sig.Params().Len())
	for i := 0; i < sig.Params().Len(); i++ {
		pt := sig.Params().At(i).Type()
		if sig.Variadic() && i == sig.Params().Len()-1 {
			elem, err := typeCode(pt.(*types.Slice).Elem())
			if err != nil {
				return nil, nil, err
			}
			params = append(params, jen.Op("...").Add(elem))
			continue
		}
		c, err := typeCode(pt)
		if err != nil {
			return nil, nil, err
		}
		params = append(params, c)
	}

	results := make([]jen.Code, 0, sig.Results().Len())
	for i := 0; i < sig.Results().Len(); i++ {
		c, err := typeCode(sig.Results().At(i).Type())
		if err != nil {
			return nil, nil, err
		}
		results = append(results, c)
	}

	return params, results, nil
}

// resultsCode renders a result list: nothing, a single type or a parenthesized list.
func resultsCode(results []jen.Code) jen.Code {
	switch len(results) {
	case 0:
		return jen.Null()
	case 1:
		return results[0]
	default:
		return jen.Params(results...)
	}
}
