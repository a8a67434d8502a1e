// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"errors"
	"fmt"
	"go/types"
	"sort"

	"golang.org/x/tools/go/types/typeutil"
)

var (
	errorType = types.Universe.Lookup("error").Type()

	// reservedNames are the methods every generated proxy declares itself.
	reservedNames = map[string]bool{
		"ProxyClass":       true,
		"ProxyCallback":    true,
		"SetProxyCallback": true,
		"FindMethodProxy":  true,
	}
)

// ErrMethodNotDeclared is returned when a requested method is not part of the
// target's method set.
var ErrMethodNotDeclared = errors.New("method not declared by target")

// ProxyTarget is the analyzed form of a type to generate a proxy for.
type ProxyTarget struct {
	Named       *types.Named
	IsInterface bool
	// FieldName is the name of the embedded target field of the proxy struct.
	FieldName string
	Methods   []*ProxyMethod
}

// ProxyMethod is one method selected for interception.
type ProxyMethod struct {
	Slot       int
	Name       string
	AccessName string
	Signature  *types.Signature
	Descriptor string

	NumResults   int // without the trailing error
	ReturnsError bool

	// Abstract methods are provided by an embedded interface value, which
	// AbstractPath selects starting at the proxy's embedded target.
	Abstract     bool
	AbstractPath []string

	// Declaring is the named type that declares the original implementation,
	// nil if it cannot be referenced from the generated package.
	Declaring   *types.Named
	Description string
}

// Parser analyzes target types with go/types.
type Parser struct {
	methodSets typeutil.MethodSetCache
}

func NewParser() *Parser {
	return &Parser{}
}

// ParseTarget analyzes typ, which must be a named struct or interface type,
// and selects the methods to override. When methods is non-empty only the
// named methods are selected and each must be part of the target's method set;
// filter further narrows the selection.
func (p *Parser) ParseTarget(typ types.Type, methods []string, filter *MethodFilter) (*ProxyTarget, error) {
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = ptr.Elem()
	}

	named, ok := types.Unalias(typ).(*types.Named)
	if !ok {
		return nil, fmt.Errorf("type %s is not a named type", typ.String())
	}
	if named.Obj().Pkg() == nil {
		return nil, fmt.Errorf("type %s has no package", named.Obj().Name())
	}
	if named.TypeParams().Len() > 0 || named.TypeArgs().Len() > 0 {
		return nil, fmt.Errorf("generic type %s is not supported", named.Obj().Name())
	}

	target := &ProxyTarget{
		Named:     named,
		FieldName: named.Obj().Name(),
	}

	var mset *types.MethodSet
	switch named.Underlying().(type) {
	case *types.Struct:
		mset = p.methodSets.MethodSet(types.NewPointer(named))
	case *types.Interface:
		target.IsInterface = true
		mset = p.methodSets.MethodSet(named)
	default:
		return nil, fmt.Errorf("type %s is neither a struct nor an interface", named.Obj().Name())
	}

	selections := make(map[string]*types.Selection, mset.Len())
	names := make([]string, 0, mset.Len())
	for i := 0; i < mset.Len(); i++ {
		sel := mset.At(i)
		if !sel.Obj().Exported() {
			continue
		}
		selections[sel.Obj().Name()] = sel
		names = append(names, sel.Obj().Name())
	}

	if selections[target.FieldName] != nil {
		return nil, fmt.Errorf("method %s collides with the embedded field of the proxy", target.FieldName)
	}

	if len(methods) > 0 {
		for _, name := range methods {
			if selections[name] == nil {
				return nil, fmt.Errorf("%w: %s.%s", ErrMethodNotDeclared, named.Obj().Name(), name)
			}
		}
		names = append([]string(nil), methods...)
	}
	sort.Strings(names)

	taken := make(map[string]bool, len(selections)+len(reservedNames)+1)
	for name := range selections {
		taken[name] = true
	}
	for name := range reservedNames {
		taken[name] = true
	}
	taken[target.FieldName] = true

	for _, name := range names {
		if reservedNames[name] {
			return nil, fmt.Errorf("method %s.%s collides with a generated proxy method", named.Obj().Name(), name)
		}

		method, err := p.analyzeMethod(target, selections[name])
		if err != nil {
			return nil, fmt.Errorf("method %s.%s: %w", named.Obj().Name(), name, err)
		}

		if filter != nil {
			ok, err := filter.Match(method)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}

		method.Slot = len(target.Methods)
		method.AccessName = uniqueName("Super"+name, taken)
		target.Methods = append(target.Methods, method)
	}

	return target, nil
}

func (p *Parser) analyzeMethod(target *ProxyTarget, sel *types.Selection) (*ProxyMethod, error) {
	fn := sel.Obj().(*types.Func)
	sig := fn.Type().(*types.Signature)

	for i := 0; i < sig.Params().Len(); i++ {
		if _, err := typeCode(sig.Params().At(i).Type()); err != nil {
			return nil, err
		}
	}

	method := &ProxyMethod{
		Name:       fn.Name(),
		Signature:  sig,
		Descriptor: fn.Name() + signatureString(sig),
		NumResults: sig.Results().Len(),
	}
	if n := sig.Results().Len(); n > 0 && types.Identical(sig.Results().At(n-1).Type(), errorType) {
		method.ReturnsError = true
		method.NumResults--
	}

	if target.IsInterface {
		method.Abstract = true
		method.Declaring = target.Named
		method.Description = typeString(target.Named) + "." + method.Descriptor
		return method, nil
	}

	// walk the embedded fields the method is promoted through
	index := sel.Index()
	method.Declaring = target.Named
	cur := target.Named.Underlying().(*types.Struct)
	for depth := 0; depth < len(index)-1; depth++ {
		field := cur.Field(index[depth])
		fieldType := field.Type()
		if ptr, ok := fieldType.(*types.Pointer); ok {
			fieldType = ptr.Elem()
		}

		method.AbstractPath = append(method.AbstractPath, field.Name())
		if named, ok := types.Unalias(fieldType).(*types.Named); ok {
			method.Declaring = named
		}

		switch under := fieldType.Underlying().(type) {
		case *types.Interface:
			method.Abstract = true
		case *types.Struct:
			cur = under
		}
	}
	if !method.Abstract {
		method.AbstractPath = nil
		method.Declaring = declaringNamed(fn, method.Declaring)
	}

	if !referenceable(method.Declaring, target.Named.Obj().Pkg()) {
		method.Declaring = nil
	}

	owner := method.Declaring
	if owner == nil {
		owner = target.Named
	}
	method.Description = typeString(owner) + "." + method.Descriptor

	return method, nil
}

// declaringNamed returns the receiver base type of a concrete method.
func declaringNamed(fn *types.Func, fallback *types.Named) *types.Named {
	recv := fn.Type().(*types.Signature).Recv()
	if recv == nil {
		return fallback
	}
	rt := recv.Type()
	if ptr, ok := rt.(*types.Pointer); ok {
		rt = ptr.Elem()
	}
	if named, ok := types.Unalias(rt).(*types.Named); ok {
		return named
	}
	return fallback
}

// referenceable reports whether named can be spelled in a file of package pkg.
func referenceable(named *types.Named, pkg *types.Package) bool {
	if named == nil {
		return false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || named.TypeArgs().Len() > 0 {
		return false
	}
	return obj.Exported() || obj.Pkg() == pkg
}

func signatureString(sig *types.Signature) string {
	s := typeString(sig)
	return s[len("func"):]
}
