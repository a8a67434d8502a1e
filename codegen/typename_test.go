// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/dave/jennifer/jen"
)

func TestTypeString(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)
	item := lookupType(t, pkg, "Item")
	byteType := types.Universe.Lookup("byte").Type()
	runeType := types.Universe.Lookup("rune").Type()
	anyType := types.Universe.Lookup("any").Type()

	tests := []struct {
		name     string
		typ      types.Type
		expected string
	}{
		{"int", types.Typ[types.Int], "int"},
		{"byte", byteType, "uint8"},
		{"rune", runeType, "int32"},
		{"unsafe pointer", types.Typ[types.UnsafePointer], "unsafe.Pointer"},
		{"error", types.Universe.Lookup("error").Type(), "error"},
		{"named", item, "example.com/store.Item"},
		{"pointer", types.NewPointer(item), "*example.com/store.Item"},
		{"byte slice", types.NewSlice(byteType), "[]uint8"},
		{"array", types.NewArray(types.Typ[types.Uint16], 4), "[4]uint16"},
		{"map", types.NewMap(types.Typ[types.String], anyType), "map[string]interface {}"},
		{"chan", types.NewChan(types.SendRecv, types.Typ[types.Int]), "chan int"},
		{"recv chan", types.NewChan(types.RecvOnly, types.Typ[types.String]), "<-chan string"},
		{"send chan", types.NewChan(types.SendOnly, types.Typ[types.String]), "chan<- string"},
		{"empty struct", types.NewStruct(nil, nil), "struct {}"},
		{"struct", types.NewStruct([]*types.Var{
			types.NewField(token.NoPos, pkg, "A", types.Typ[types.Int], false),
			types.NewField(token.NoPos, pkg, "Item", item, true),
		}, nil), "struct { A int; example.com/store.Item }"},
		{"func", types.NewSignatureType(nil, nil, nil,
			types.NewTuple(
				types.NewParam(token.NoPos, pkg, "a", types.Typ[types.Int]),
				types.NewParam(token.NoPos, pkg, "b", types.NewSlice(types.Typ[types.String])),
			),
			types.NewTuple(types.NewParam(token.NoPos, pkg, "", types.Universe.Lookup("error").Type())),
			true), "func(int,...string)(error)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typeString(tt.typ); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTypeString_Methods(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)
	mset := types.NewMethodSet(types.NewPointer(lookupType(t, pkg, "Counter")))

	expected := map[string]string{
		"Add":    "(...string)(int)",
		"Bytes":  "([]uint8,int32)(map[string]interface {},error)",
		"Stream": "(io.Writer)(error)",
	}

	for name, exp := range expected {
		sel := mset.Lookup(pkg, name)
		if sel == nil {
			t.Fatalf("method %s not found", name)
		}
		if got := signatureString(sel.Type().(*types.Signature)); got != exp {
			t.Errorf("%s: expected %q, got %q", name, exp, got)
		}
	}
}

func TestTypeCode(t *testing.T) {
	tests := []struct {
		name     string
		typ      types.Type
		expected string
	}{
		{"int", types.Typ[types.Int], "var x int"},
		{"map", types.NewMap(types.Typ[types.String], types.NewSlice(types.Typ[types.Int])), "var x map[string][]int"},
		{"array", types.NewArray(types.Typ[types.Uint8], 32), "var x [32]uint8"},
		{"recv chan", types.NewChan(types.RecvOnly, types.Typ[types.Bool]), "var x <-chan bool"},
		{"send chan", types.NewChan(types.SendOnly, types.Typ[types.Bool]), "var x chan<- bool"},
		{"func", types.NewSignatureType(nil, nil, nil,
			types.NewTuple(types.NewParam(token.NoPos, nil, "v", types.NewSlice(types.Typ[types.Int]))),
			types.NewTuple(types.NewParam(token.NoPos, nil, "", types.Typ[types.Bool])),
			true), "var x func(...int) bool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := typeCode(tt.typ)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := fmt.Sprintf("%#v", jen.Var().Id("x").Add(code)); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}

	t.Run("Type parameter", func(t *testing.T) {
		pkg := loadTestPackage(t, testPackagePath, testSource)
		box := lookupType(t, pkg, "Box").(*types.Named)

		_, err := typeCode(box.TypeParams().At(0))
		if err == nil || !strings.Contains(err.Error(), "type parameter T is not supported") {
			t.Errorf("expected type parameter error, got %v", err)
		}
	})
}
