// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/pk910/dynamic-proxy/switchtable"
)

const switchtablePkg = "github.com/pk910/dynamic-proxy/switchtable"

// Emitter is the code emission capability the callback generator drives.
//
// Statements are jennifer code values. Declarations are opened with BeginType,
// BeginMethod or BeginFunc and closed with the matching End call; Emit and
// StringSwitch append to the open method body.
type Emitter interface {
	// BeginType opens a struct type declaration.
	BeginType(name string, doc string)
	// DeclareField adds a field to the open struct. An empty name embeds typ.
	DeclareField(name string, typ jen.Code)
	EndType()

	// BeginMethod opens a method on *recvType.
	BeginMethod(doc string, recvName string, recvType string, name string, params []jen.Code, results []jen.Code)
	// BeginFunc opens a package level function.
	BeginFunc(doc string, name string, params []jen.Code, results []jen.Code)
	// Emit appends statements to the open body.
	Emit(stmts ...jen.Code)
	EndMethod()

	// StringSwitch appends a dispatch over subject to the open body. onCase
	// emits the body for keys[idx] and must not fall through; onDefault emits
	// the branch taken for any other input.
	StringSwitch(subject jen.Code, keys []string, style switchtable.Style, onCase func(idx int) []jen.Code, onDefault func() []jen.Code) error

	// Declare adds a top level declaration.
	Declare(code jen.Code)
}

// jenEmitter implements Emitter on a jennifer file.
type jenEmitter struct {
	file *jen.File

	typeName string
	typeDoc  string
	fields   []jen.Code

	head *jen.Statement
	body []jen.Code
}

func newJenEmitter(file *jen.File) *jenEmitter {
	return &jenEmitter{file: file}
}

func (e *jenEmitter) BeginType(name string, doc string) {
	e.typeName = name
	e.typeDoc = doc
	e.fields = nil
}

func (e *jenEmitter) DeclareField(name string, typ jen.Code) {
	if name == "" {
		e.fields = append(e.fields, typ)
		return
	}
	e.fields = append(e.fields, jen.Id(name).Add(typ))
}

func (e *jenEmitter) EndType() {
	if e.typeDoc != "" {
		e.file.Comment(e.typeDoc)
	}
	e.file.Type().Id(e.typeName).Struct(e.fields...)
	e.file.Line()
	e.typeName, e.typeDoc, e.fields = "", "", nil
}

func (e *jenEmitter) BeginMethod(doc string, recvName string, recvType string, name string, params []jen.Code, results []jen.Code) {
	if doc != "" {
		e.file.Comment(doc)
	}
	e.head = jen.Func().Params(jen.Id(recvName).Op("*").Id(recvType)).Id(name).Params(params...).Add(resultsCode(results))
	e.body = nil
}

func (e *jenEmitter) BeginFunc(doc string, name string, params []jen.Code, results []jen.Code) {
	if doc != "" {
		e.file.Comment(doc)
	}
	e.head = jen.Func().Id(name).Params(params...).Add(resultsCode(results))
	e.body = nil
}

func (e *jenEmitter) Emit(stmts ...jen.Code) {
	e.body = append(e.body, stmts...)
}

func (e *jenEmitter) EndMethod() {
	e.file.Add(e.head.Block(e.body...))
	e.file.Line()
	e.head, e.body = nil, nil
}

func (e *jenEmitter) Declare(code jen.Code) {
	e.file.Add(code)
	e.file.Line()
}

func (e *jenEmitter) StringSwitch(subject jen.Code, keys []string, style switchtable.Style, onCase func(idx int) []jen.Code, onDefault func() []jen.Code) error {
	if len(keys) > 0 {
		// validates styles and rejects duplicate keys
		if _, err := switchtable.Build(style, keys); err != nil {
			return err
		}

		switch style {
		case switchtable.StyleHash:
			e.Emit(hashSwitch(subject, keys, onCase))
		case switchtable.StyleSorted:
			e.Emit(sortedSwitch(subject, keys, onCase))
		default:
			return fmt.Errorf("unknown switch style %v", style)
		}
	}

	e.Emit(onDefault()...)
	return nil
}

// hashSwitch switches on the bucket of subject and compares the keys of the
// selected bucket by string equality.
func hashSwitch(subject jen.Code, keys []string, onCase func(idx int) []jen.Code) jen.Code {
	plan := switchtable.PlanHash(keys)

	cases := make([]jen.Code, 0, len(plan.Buckets))
	for bucket, idxs := range plan.Buckets {
		if len(idxs) == 0 {
			continue
		}

		checks := make([]jen.Code, 0, len(idxs))
		for _, idx := range idxs {
			checks = append(checks, jen.If(jen.Add(subject).Op("==").Lit(keys[idx])).Block(onCase(idx)...))
		}
		cases = append(cases, jen.Case(jen.Lit(bucket)).Block(checks...))
	}

	return jen.Switch(jen.Qual(switchtablePkg, "Bucket").Call(subject, jen.Lit(int(plan.Seed)), jen.Lit(int(plan.Mask)))).Block(cases...)
}

// sortedSwitch switches on the length of subject, then on its value.
func sortedSwitch(subject jen.Code, keys []string, onCase func(idx int) []jen.Code) jen.Code {
	groups := switchtable.PlanSorted(keys)

	cases := make([]jen.Code, 0, len(groups))
	for _, group := range groups {
		inner := make([]jen.Code, 0, len(group.Keys))
		for _, idx := range group.Keys {
			inner = append(inner, jen.Case(jen.Lit(keys[idx])).Block(onCase(idx)...))
		}
		cases = append(cases, jen.Case(jen.Lit(group.Length)).Block(jen.Switch(subject).Block(inner...)))
	}

	return jen.Switch(jen.Len(subject)).Block(cases...)
}
