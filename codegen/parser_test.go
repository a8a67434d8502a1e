// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"errors"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"
)

const testPackagePath = "example.com/store"

const testSource = `package store

import "io"

type Item struct {
	ID int
}

type Loader interface {
	Load(key string) (*Item, error)
}

type Counter struct {
	items []string
}

func (c *Counter) Size() int { return len(c.items) }

func (c *Counter) SuperSize() int { return len(c.items) * 2 }

func (c *Counter) Add(values ...string) int {
	c.items = append(c.items, values...)
	return len(c.items)
}

func (c *Counter) Bytes(b []byte, r rune) (map[string]any, error) { return nil, nil }

func (c *Counter) Stream(w io.Writer) error { return nil }

func (c *Counter) reset() { c.items = nil }

type Cache struct {
	Loader
	*Counter
}

type Store interface {
	Get(key string) (*Item, bool)
	Close() error
}

type Reserved struct{}

func (Reserved) ProxyClass() int { return 0 }

type Self struct{}

func (Self) Self() {}

type ID int

type Box[T any] struct {
	value T
}

func (b *Box[T]) Value() T { return b.value }
`

// loadTestPackage type-checks src as package path.
func loadTestPackage(t *testing.T, path string, src string) *types.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", src, 0)
	if err != nil {
		t.Fatalf("failed to parse test source: %v", err)
	}

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check(path, fset, []*ast.File{file}, nil)
	if err != nil {
		t.Fatalf("failed to type-check test source: %v", err)
	}
	return pkg
}

func lookupType(t *testing.T, pkg *types.Package, name string) types.Type {
	t.Helper()

	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		t.Fatalf("type %s not found", name)
	}
	return obj.Type()
}

func methodNames(target *ProxyTarget) []string {
	names := make([]string, len(target.Methods))
	for i, m := range target.Methods {
		names[i] = m.Name
	}
	return names
}

func TestParseTarget_Struct(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)
	p := NewParser()

	target, err := p.ParseTarget(types.NewPointer(lookupType(t, pkg, "Counter")), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if target.IsInterface || target.FieldName != "Counter" {
		t.Errorf("unexpected target %+v", target)
	}

	expected := []struct {
		name         string
		accessName   string
		descriptor   string
		numResults   int
		returnsError bool
	}{
		{"Add", "SuperAdd", "Add(...string)(int)", 1, false},
		{"Bytes", "SuperBytes", "Bytes([]uint8,int32)(map[string]interface {},error)", 1, true},
		{"Size", "SuperSize_", "Size()(int)", 1, false},
		{"Stream", "SuperStream", "Stream(io.Writer)(error)", 0, true},
		{"SuperSize", "SuperSuperSize", "SuperSize()(int)", 1, false},
	}

	if len(target.Methods) != len(expected) {
		t.Fatalf("expected %d methods, got %v", len(expected), methodNames(target))
	}
	for i, exp := range expected {
		m := target.Methods[i]
		if m.Slot != i {
			t.Errorf("%s: expected slot %d, got %d", exp.name, i, m.Slot)
		}
		if m.Name != exp.name || m.AccessName != exp.accessName {
			t.Errorf("expected %s/%s, got %s/%s", exp.name, exp.accessName, m.Name, m.AccessName)
		}
		if m.Descriptor != exp.descriptor {
			t.Errorf("%s: expected descriptor %q, got %q", exp.name, exp.descriptor, m.Descriptor)
		}
		if m.NumResults != exp.numResults || m.ReturnsError != exp.returnsError {
			t.Errorf("%s: unexpected results %d/%v", exp.name, m.NumResults, m.ReturnsError)
		}
		if m.Abstract {
			t.Errorf("%s: unexpected abstract method", exp.name)
		}
		if m.Declaring == nil || m.Declaring.Obj().Name() != "Counter" {
			t.Errorf("%s: unexpected declaring type %v", exp.name, m.Declaring)
		}
	}
}

func TestParseTarget_Embedded(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)
	p := NewParser()

	target, err := p.ParseTarget(lookupType(t, pkg, "Cache"), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Join(methodNames(target), ","); got != "Add,Bytes,Load,Size,Stream,SuperSize" {
		t.Fatalf("unexpected methods %s", got)
	}

	load := target.Methods[2]
	if !load.Abstract {
		t.Error("expected Load to be abstract")
	}
	if len(load.AbstractPath) != 1 || load.AbstractPath[0] != "Loader" {
		t.Errorf("unexpected abstract path %v", load.AbstractPath)
	}
	if load.Declaring == nil || load.Declaring.Obj().Name() != "Loader" {
		t.Errorf("unexpected declaring type %v", load.Declaring)
	}
	if load.Description != "example.com/store.Loader.Load(string)(*example.com/store.Item,error)" {
		t.Errorf("unexpected description %s", load.Description)
	}

	size := target.Methods[3]
	if size.Abstract || size.AbstractPath != nil {
		t.Errorf("expected Size to be concrete, got path %v", size.AbstractPath)
	}
	if size.Declaring == nil || size.Declaring.Obj().Name() != "Counter" {
		t.Errorf("unexpected declaring type %v", size.Declaring)
	}
}

func TestParseTarget_Interface(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)
	p := NewParser()

	target, err := p.ParseTarget(lookupType(t, pkg, "Store"), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !target.IsInterface || target.FieldName != "Store" {
		t.Errorf("unexpected target %+v", target)
	}
	if got := strings.Join(methodNames(target), ","); got != "Close,Get" {
		t.Fatalf("unexpected methods %s", got)
	}
	for _, m := range target.Methods {
		if !m.Abstract || m.AbstractPath != nil {
			t.Errorf("%s: expected abstract method without path", m.Name)
		}
		if !strings.HasPrefix(m.Description, "example.com/store.Store.") {
			t.Errorf("%s: unexpected description %s", m.Name, m.Description)
		}
	}
	if target.Methods[1].Descriptor != "Get(string)(*example.com/store.Item,bool)" {
		t.Errorf("unexpected descriptor %s", target.Methods[1].Descriptor)
	}
}

func TestParseTarget_Methods(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)
	p := NewParser()
	counter := lookupType(t, pkg, "Counter")

	target, err := p.ParseTarget(counter, []string{"Size", "Add"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(methodNames(target), ","); got != "Add,Size" {
		t.Errorf("unexpected methods %s", got)
	}
	// the access name still avoids the unselected SuperSize method
	if target.Methods[1].AccessName != "SuperSize_" {
		t.Errorf("unexpected access name %s", target.Methods[1].AccessName)
	}

	_, err = p.ParseTarget(counter, []string{"Size", "Missing"}, nil)
	if !errors.Is(err, ErrMethodNotDeclared) {
		t.Errorf("expected ErrMethodNotDeclared, got %v", err)
	}

	_, err = p.ParseTarget(counter, []string{"reset"}, nil)
	if !errors.Is(err, ErrMethodNotDeclared) {
		t.Errorf("expected unexported method to be rejected, got %v", err)
	}
}

func TestParseTarget_Errors(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)
	p := NewParser()

	tests := []struct {
		name     string
		typ      types.Type
		expected string
	}{
		{"Basic type", types.Typ[types.Int], "is not a named type"},
		{"Named basic", lookupType(t, pkg, "ID"), "neither a struct nor an interface"},
		{"Reserved method", lookupType(t, pkg, "Reserved"), "collides with a generated proxy method"},
		{"Field collision", lookupType(t, pkg, "Self"), "collides with the embedded field"},
		{"Generic type", lookupType(t, pkg, "Box"), "generic type Box is not supported"},
		{"Predeclared", types.Universe.Lookup("error").Type(), "has no package"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseTarget(tt.typ, nil, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("expected error containing '%s', got: %s", tt.expected, err.Error())
			}
		})
	}
}

func TestMethodFilter(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)
	p := NewParser()

	tests := []struct {
		target   string
		expr     string
		expected string
	}{
		{"Counter", "error", "Bytes,Stream"},
		{"Counter", "name != 'Size' && params > 0", "Add,Bytes,Stream"},
		{"Counter", "variadic", "Add"},
		{"Counter", "results == 1 && !error", "Add,Size,SuperSize"},
		{"Cache", "abstract", "Load"},
		{"Cache", "!abstract && name =~ '^S'", "Size,Stream,SuperSize"},
	}

	for _, tt := range tests {
		t.Run(tt.target+"/"+tt.expr, func(t *testing.T) {
			filter, err := NewMethodFilter(tt.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if filter.String() != tt.expr {
				t.Errorf("unexpected filter source %s", filter)
			}

			target, err := p.ParseTarget(lookupType(t, pkg, tt.target), nil, filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.Join(methodNames(target), ","); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
			for i, m := range target.Methods {
				if m.Slot != i {
					t.Errorf("%s: expected slot %d, got %d", m.Name, i, m.Slot)
				}
			}
		})
	}

	t.Run("Invalid expression", func(t *testing.T) {
		if _, err := NewMethodFilter("name =="); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("Non boolean result", func(t *testing.T) {
		filter, err := NewMethodFilter("params + 1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = p.ParseTarget(lookupType(t, pkg, "Counter"), nil, filter)
		if err == nil || !strings.Contains(err.Error(), "expected a boolean") {
			t.Errorf("expected boolean error, got %v", err)
		}
	})
}
