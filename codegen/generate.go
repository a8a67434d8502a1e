// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"go/types"

	"github.com/dave/jennifer/jen"
)

// generateFile analyzes the targets of a file and renders the proxies.
//
// The file header carries a hash over the target names, the dispatcher style
// and all method descriptors, so regenerating unchanged targets yields an
// identical file.
func (cg *CodeGenerator) generateFile(opts *CodeGeneratorOptions) (string, error) {
	targets := make([]*ProxyTarget, 0, len(opts.Types))
	proxyNames := make([]string, 0, len(opts.Types))
	usedNames := map[string]bool{}

	var pkg *types.Package
	for _, t := range opts.Types {
		named, _ := namedOf(t.GoType)
		pkg = named.Obj().Pkg()

		filterExpr := opts.MethodFilter
		if t.MethodFilter != "" {
			filterExpr = t.MethodFilter
		}

		var filter *MethodFilter
		if filterExpr != "" {
			var err error
			filter, err = NewMethodFilter(filterExpr)
			if err != nil {
				return "", err
			}
		}

		target, err := cg.parser.ParseTarget(t.GoType, t.Methods, filter)
		if err != nil {
			return "", fmt.Errorf("failed to analyze type %s: %w", named.Obj().Name(), err)
		}

		proxyName := t.ProxyName
		if proxyName == "" {
			proxyName = target.Named.Obj().Name() + "Proxy"
		}
		if usedNames[proxyName] {
			return "", fmt.Errorf("proxy name %s used twice", proxyName)
		}

		// declarations of the target package only collide with files of that package
		inPackage := opts.PackageName == "" || opts.PackageName == pkg.Name()
		if obj := pkg.Scope().Lookup(proxyName); inPackage && obj != nil {
			if _, isGenerated := obj.(*types.TypeName); !isGenerated || !isProxyStruct(obj.Type(), target) {
				return "", fmt.Errorf("proxy name %s collides with %s", proxyName, obj.String())
			}
		}
		usedNames[proxyName] = true

		for _, name := range newCallbackGenerator(nil, target, proxyName, opts.SwitchStyle).helperNames() {
			if usedNames[name] {
				return "", fmt.Errorf("generated function %s of %s used twice", name, proxyName)
			}
			if obj := pkg.Scope().Lookup(name); inPackage && obj != nil && !isGeneratedHelper(obj) {
				return "", fmt.Errorf("generated function %s of %s collides with %s", name, proxyName, obj.String())
			}
			usedNames[name] = true
		}

		cg.logf(opts, "codegen: %s -> %s (%d methods)", target.Named.Obj().Name(), proxyName, len(target.Methods))

		targets = append(targets, target)
		proxyNames = append(proxyNames, proxyName)
	}

	pkgName := opts.PackageName
	if pkgName == "" {
		pkgName = pkg.Name()
	}
	external := pkgName != pkg.Name()
	if external {
		for _, target := range targets {
			if !target.Named.Obj().Exported() {
				return "", fmt.Errorf("unexported type %s cannot be proxied from package %s", target.Named.Obj().Name(), pkgName)
			}
		}
	}

	// a file of another package (e.g. an external test package) qualifies the targets
	file := jen.NewFilePathName(pkg.Path(), pkgName)
	if external {
		file = jen.NewFile(pkgName)
	}
	file.ImportAlias(dynproxyPkg, "dynproxy")
	emitter := newJenEmitter(file)

	hash := sha256.New()
	fmt.Fprintf(hash, "style=%s\n", opts.SwitchStyle)
	for i, target := range targets {
		fmt.Fprintf(hash, "%s=%s\n", typeString(target.Named), proxyNames[i])
		for _, m := range target.Methods {
			fmt.Fprintf(hash, "%s\n", m.Descriptor)
		}

		gen := newCallbackGenerator(emitter, target, proxyNames[i], opts.SwitchStyle)
		gen.external = external
		if err := gen.generateAll(); err != nil {
			return "", fmt.Errorf("failed to generate proxy for %s: %w", target.Named.Obj().Name(), err)
		}
	}

	file.HeaderComment("Code generated by dynamic-proxy. DO NOT EDIT.")
	file.HeaderComment(fmt.Sprintf("Hash: %s", hex.EncodeToString(hash.Sum(nil))))
	file.HeaderComment(fmt.Sprintf("Version: %s (https://github.com/pk910/dynamic-proxy)", Version))

	buf := &bytes.Buffer{}
	if err := file.Render(buf); err != nil {
		return "", fmt.Errorf("failed to render code: %w", err)
	}

	return buf.String(), nil
}

func namedOf(t types.Type) (*types.Named, bool) {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := types.Unalias(t).(*types.Named)
	return named, ok
}

// isProxyStruct reports whether t looks like a proxy previously generated for
// target, which is replaced when the file is regenerated.
func isProxyStruct(t types.Type, target *ProxyTarget) bool {
	st, ok := t.Underlying().(*types.Struct)
	if !ok || st.NumFields() != 3 {
		return false
	}
	return st.Field(0).Embedded() && st.Field(0).Name() == target.FieldName && st.Field(1).Name() == "proxyClass"
}

// isGeneratedHelper reports whether obj looks like a helper function emitted by
// a previous run, which is replaced when the file is regenerated.
func isGeneratedHelper(obj types.Object) bool {
	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}
	sig := fn.Type().(*types.Signature)
	if sig.Params().Len() == 0 {
		return false
	}
	ptr, ok := sig.Params().At(0).Type().(*types.Pointer)
	if !ok {
		// FindSlot takes the descriptor
		return sig.Params().Len() == 1 && types.Identical(sig.Params().At(0).Type(), types.Typ[types.String]) &&
			sig.Results().Len() == 1 && types.Identical(sig.Results().At(0).Type(), types.Typ[types.Int])
	}
	named, ok := types.Unalias(ptr.Elem()).(*types.Named)
	return ok && named.Obj().Pkg() != nil && named.Obj().Pkg().Path() == dynproxyPkg && named.Obj().Name() == "Class"
}
