// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

// Package codegen generates interception proxies for Go types. A generated
// proxy embeds its target, overrides the selected methods and registers itself
// with the dynproxy runtime, which binds it to a class on first use.
//
// Example usage:
//
//	cg := codegen.NewCodeGenerator(codegen.WithSwitchStyle(switchtable.StyleHash))
//	err := cg.BuildFile("store/gen_proxy.go", codegen.WithGoTypesType(counterType))
//	if err == nil {
//	    err = cg.Generate()
//	}
package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// CodeGenerator manages batch generation of proxies for multiple files.
type CodeGenerator struct {
	files   map[string]*CodeGeneratorOptions
	options *CodeGeneratorOptions
	parser  *Parser
}

// NewCodeGenerator creates a new code generator. opts are the defaults of all
// files built with it.
func NewCodeGenerator(opts ...CodeGeneratorOption) *CodeGenerator {
	options := &CodeGeneratorOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return &CodeGenerator{
		files:   make(map[string]*CodeGeneratorOptions),
		options: options,
		parser:  NewParser(),
	}
}

// BuildFile requests fileName to be generated with the given types. All types
// of a file must belong to the same package.
func (cg *CodeGenerator) BuildFile(fileName string, opts ...CodeGeneratorOption) error {
	if _, exists := cg.files[fileName]; exists {
		return fmt.Errorf("file %s requested twice", fileName)
	}

	fileOpts := *cg.options
	fileOpts.Types = append([]*CodeGeneratorTypeOptions(nil), cg.options.Types...)
	for _, opt := range opts {
		opt(&fileOpts)
	}

	if len(fileOpts.Types) == 0 {
		return fmt.Errorf("no types requested for file %s", fileName)
	}
	if !fileOpts.SwitchStyle.Valid() {
		return fmt.Errorf("unknown switch style %v", fileOpts.SwitchStyle)
	}

	var pkgPath string
	for _, t := range fileOpts.Types {
		if t.GoType == nil {
			return fmt.Errorf("nil type requested for file %s", fileName)
		}
		named, ok := namedOf(t.GoType)
		if !ok || named.Obj().Pkg() == nil {
			return fmt.Errorf("type %s has no package path", t.GoType.String())
		}
		if pkgPath == "" {
			pkgPath = named.Obj().Pkg().Path()
		} else if pkgPath != named.Obj().Pkg().Path() {
			return fmt.Errorf("type %s has different package path than %s. cannot combine types from different packages in a single file", named.Obj().Name(), pkgPath)
		}
		if t.ProxyName != "" && (!isIdentifier(t.ProxyName) || !isExported(t.ProxyName)) {
			return fmt.Errorf("invalid proxy name %q", t.ProxyName)
		}
	}

	cg.files[fileName] = &fileOpts
	return nil
}

// GenerateToMap generates all requested files and returns their code by file name.
func (cg *CodeGenerator) GenerateToMap() (map[string]string, error) {
	if len(cg.files) == 0 {
		return nil, fmt.Errorf("no types requested for generation")
	}

	fileNames := make([]string, 0, len(cg.files))
	for fileName := range cg.files {
		fileNames = append(fileNames, fileName)
	}
	sort.Strings(fileNames)

	results := make(map[string]string, len(cg.files))
	for _, fileName := range fileNames {
		code, err := cg.generateFile(cg.files[fileName])
		if err != nil {
			return nil, fmt.Errorf("failed to generate code for %s: %w", fileName, err)
		}
		results[fileName] = code
	}

	return results, nil
}

// Generate generates all requested files and writes them to disk.
func (cg *CodeGenerator) Generate() error {
	results, err := cg.GenerateToMap()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	for fileName, code := range results {
		dir := filepath.Dir(fileName)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		if err := os.WriteFile(fileName, []byte(code), 0644); err != nil {
			return fmt.Errorf("failed to write code to file %s: %w", fileName, err)
		}
	}

	return nil
}

func (cg *CodeGenerator) logf(opts *CodeGeneratorOptions, format string, args ...any) {
	if opts.Verbose && opts.LogCb != nil {
		opts.LogCb(format, args...)
	}
}
