// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"go/types"

	"github.com/pk910/dynamic-proxy/switchtable"
)

type CodeGeneratorOption func(*CodeGeneratorOptions)

// CodeGeneratorOptions configures a generated file. Options given to
// NewCodeGenerator are the defaults of every file.
type CodeGeneratorOptions struct {
	Types        []*CodeGeneratorTypeOptions
	SwitchStyle  switchtable.Style
	MethodFilter string
	PackageName  string
	Verbose      bool
	LogCb        func(format string, args ...any)
}

type CodeGeneratorTypeOption func(*CodeGeneratorTypeOptions)

// CodeGeneratorTypeOptions configures the proxy of one target type.
type CodeGeneratorTypeOptions struct {
	GoType       types.Type
	ProxyName    string
	Methods      []string
	MethodFilter string
}

// WithGoTypesType adds a target type to the file.
func WithGoTypesType(t types.Type, opts ...CodeGeneratorTypeOption) CodeGeneratorOption {
	return func(o *CodeGeneratorOptions) {
		typeOpts := &CodeGeneratorTypeOptions{GoType: t}
		for _, opt := range opts {
			opt(typeOpts)
		}
		o.Types = append(o.Types, typeOpts)
	}
}

// WithSwitchStyle selects the layout of the generated signature dispatchers.
func WithSwitchStyle(style switchtable.Style) CodeGeneratorOption {
	return func(o *CodeGeneratorOptions) {
		o.SwitchStyle = style
	}
}

// WithMethodFilter sets the default method filter expression, see MethodFilter.
func WithMethodFilter(expr string) CodeGeneratorOption {
	return func(o *CodeGeneratorOptions) {
		o.MethodFilter = expr
	}
}

// WithPackageName overrides the package clause of the generated file.
func WithPackageName(name string) CodeGeneratorOption {
	return func(o *CodeGeneratorOptions) {
		o.PackageName = name
	}
}

func WithVerbose() CodeGeneratorOption {
	return func(o *CodeGeneratorOptions) {
		o.Verbose = true
	}
}

func WithLogCb(logCb func(format string, args ...any)) CodeGeneratorOption {
	return func(o *CodeGeneratorOptions) {
		o.LogCb = logCb
	}
}

// WithProxyName sets the name of the generated proxy type (default <Target>Proxy).
func WithProxyName(name string) CodeGeneratorTypeOption {
	return func(o *CodeGeneratorTypeOptions) {
		o.ProxyName = name
	}
}

// WithMethods restricts the proxy to the named methods. Each must be declared by
// the target.
func WithMethods(names ...string) CodeGeneratorTypeOption {
	return func(o *CodeGeneratorTypeOptions) {
		o.Methods = append(o.Methods, names...)
	}
}

// WithTypeMethodFilter overrides the file's method filter for one type.
func WithTypeMethodFilter(expr string) CodeGeneratorTypeOption {
	return func(o *CodeGeneratorTypeOptions) {
		o.MethodFilter = expr
	}
}
