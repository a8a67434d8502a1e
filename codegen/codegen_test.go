// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pk910/dynamic-proxy/switchtable"
)

func generateTestFile(t *testing.T, opts ...CodeGeneratorOption) string {
	t.Helper()

	cg := NewCodeGenerator()
	if err := cg.BuildFile("gen_proxy.go", opts...); err != nil {
		t.Fatalf("BuildFile failed: %v", err)
	}

	files, err := cg.GenerateToMap()
	if err != nil {
		t.Fatalf("GenerateToMap failed: %v", err)
	}

	code := files["gen_proxy.go"]
	if _, err := parser.ParseFile(token.NewFileSet(), "gen_proxy.go", code, 0); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, code)
	}
	return code
}

func assertContains(t *testing.T, code string, fragments ...string) {
	t.Helper()

	for _, fragment := range fragments {
		if !strings.Contains(code, fragment) {
			t.Errorf("generated code does not contain %q", fragment)
		}
	}
}

func TestGenerate_StructTarget(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)

	code := generateTestFile(t,
		WithSwitchStyle(switchtable.StyleSorted),
		WithGoTypesType(lookupType(t, pkg, "Counter")),
	)

	assertContains(t, code,
		"// Code generated by dynamic-proxy. DO NOT EDIT.",
		"package store",
		"type CounterProxy struct {\n\t*Counter\n\tproxyClass   *dynproxy.Class\n\tproxyBinding dynproxy.Binding\n}",
		"var _ dynproxy.Proxy = (*CounterProxy)(nil)",
		"func (p *CounterProxy) SuperSize_() int {\n\treturn p.Counter.Size()\n}",
		"func (p *CounterProxy) SuperSuperSize() int {\n\treturn p.Counter.SuperSize()\n}",
		"func (p *CounterProxy) SuperAdd(a0 ...string) int {\n\treturn p.Counter.Add(a0...)\n}",
		"func (p *CounterProxy) Bytes(a0 []byte, a1 rune) (map[string]",
		"func (p *CounterProxy) Stream(a0 io.Writer) error {",
		"cb := p.proxyBinding.Load()",
		"res, err := cb.Intercept(p, p.proxyClass.Method(1), []any{a0, a1}, p.proxyClass.Proxy(1))",
		"if r0, err = dynproxy.Result[map[string]",
		"func counterProxyStaticInit(cls *dynproxy.Class) error {",
		`m2, err := cls.ResolveMethod(2, "Size", "Size()(int)", reflect.TypeOf((*Counter)(nil)).Elem(), false)`,
		`cls.Bind(2, m2, "SuperSize_",`,
		"func counterProxyFindSlot(desc string) int {",
		"switch len(desc) {",
		"func newCounterProxy(cls *dynproxy.Class, base any) (dynproxy.Proxy, error) {",
		"p.Counter = new(Counter)",
		"return nil, cls.InvalidBase(base)",
		"dynproxy.Register(&dynproxy.ClassSpec{",
		`"Stream(io.Writer)(error)",`,
	)

	if strings.Contains(code, "switchtable.Bucket(") {
		t.Error("sorted dispatcher must not use hash buckets")
	}
}

func TestGenerate_HashDispatcher(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)

	code := generateTestFile(t,
		WithSwitchStyle(switchtable.StyleHash),
		WithGoTypesType(lookupType(t, pkg, "Counter"), WithMethods("Size", "Add")),
	)

	assertContains(t, code,
		"switch switchtable.Bucket(desc, ",
		`if desc == "Size()(int)" {`,
		`if desc == "Add(...string)(int)" {`,
		"return -1",
	)
	if strings.Contains(code, "SuperBytes") {
		t.Error("unselected method was generated")
	}
}

func TestGenerate_AbstractMethods(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)

	code := generateTestFile(t,
		WithGoTypesType(lookupType(t, pkg, "Cache"), WithTypeMethodFilter("abstract")),
		WithGoTypesType(lookupType(t, pkg, "Store"), WithProxyName("RecordingStore")),
	)

	assertContains(t, code,
		"if p.Cache.Loader == nil {",
		`return r0, dynproxy.NewAbstractMethodError("example.com/store.Loader.Load(string)(*example.com/store.Item,error)")`,
		"type RecordingStore struct {\n\tStore\n",
		"var _ Store = (*RecordingStore)(nil)",
		"if p.Store == nil {",
		`panic(dynproxy.NewAbstractMethodError("example.com/store.Store.Get(string)(*example.com/store.Item,bool)"))`,
		`return dynproxy.NewAbstractMethodError("example.com/store.Store.Close()(error)")`,
		"func recordingStoreStaticInit(cls *dynproxy.Class) error {",
		"reflect.TypeOf((*Store)(nil)).Elem()",
		"case Store:",
	)

	if strings.Contains(code, "SuperSize") {
		t.Error("filtered method was generated")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)
	opts := []CodeGeneratorOption{
		WithGoTypesType(lookupType(t, pkg, "Counter")),
		WithGoTypesType(lookupType(t, pkg, "Store")),
	}

	first := generateTestFile(t, opts...)
	second := generateTestFile(t, opts...)
	if first != second {
		t.Error("expected identical output for identical input")
	}

	sorted := generateTestFile(t, append(opts, WithSwitchStyle(switchtable.StyleSorted))...)
	hashLine := func(code string) string {
		for _, line := range strings.Split(code, "\n") {
			if strings.HasPrefix(line, "// Hash: ") {
				return line
			}
		}
		return ""
	}
	if hashLine(first) == "" || hashLine(first) == hashLine(sorted) {
		t.Errorf("expected the header hash to depend on the dispatcher style")
	}
}

func TestGenerate_PackageName(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)

	code := generateTestFile(t,
		WithPackageName("store_test"),
		WithGoTypesType(lookupType(t, pkg, "Store")),
	)
	assertContains(t, code, "package store_test", "store.Store")
}

func TestBuildFile_Errors(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)
	other := loadTestPackage(t, "example.com/other", "package other\n\ntype Thing struct{}\n\nfunc (*Thing) Do() {}\n")
	counter := lookupType(t, pkg, "Counter")

	tests := []struct {
		name     string
		opts     []CodeGeneratorOption
		expected string
	}{
		{"No types", nil, "no types requested"},
		{"Nil type", []CodeGeneratorOption{WithGoTypesType(nil)}, "nil type requested"},
		{"Invalid style", []CodeGeneratorOption{WithGoTypesType(counter), WithSwitchStyle(switchtable.Style(9))}, "unknown switch style"},
		{"Mixed packages", []CodeGeneratorOption{WithGoTypesType(counter), WithGoTypesType(lookupType(t, other, "Thing"))}, "cannot combine types from different packages"},
		{"Unexported proxy name", []CodeGeneratorOption{WithGoTypesType(counter, WithProxyName("counterProxy"))}, "invalid proxy name"},
		{"Invalid proxy name", []CodeGeneratorOption{WithGoTypesType(counter, WithProxyName("Counter-Proxy"))}, "invalid proxy name"},
		{"Unnamed type", []CodeGeneratorOption{WithGoTypesType(types.NewSlice(types.Typ[types.Int]))}, "has no package path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCodeGenerator().BuildFile("gen_proxy.go", tt.opts...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("expected error containing '%s', got: %s", tt.expected, err.Error())
			}
		})
	}

	t.Run("Duplicate file", func(t *testing.T) {
		cg := NewCodeGenerator()
		if err := cg.BuildFile("gen_proxy.go", WithGoTypesType(counter)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cg.BuildFile("gen_proxy.go", WithGoTypesType(counter)); err == nil || !strings.Contains(err.Error(), "requested twice") {
			t.Errorf("expected duplicate file error, got %v", err)
		}
	})
}

func TestGenerateToMap_Errors(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource+"\ntype CounterProxy int\n")
	counter := lookupType(t, pkg, "Counter")

	if _, err := NewCodeGenerator().GenerateToMap(); err == nil {
		t.Error("expected error without files")
	}

	tests := []struct {
		name     string
		opts     []CodeGeneratorOption
		expected string
	}{
		{"Existing declaration", []CodeGeneratorOption{WithGoTypesType(counter)}, "proxy name CounterProxy collides with"},
		{"Duplicate proxy name", []CodeGeneratorOption{
			WithGoTypesType(counter, WithProxyName("SharedProxy")),
			WithGoTypesType(lookupType(t, pkg, "Store"), WithProxyName("SharedProxy")),
		}, "proxy name SharedProxy used twice"},
		{"Undeclared method", []CodeGeneratorOption{WithGoTypesType(counter, WithProxyName("P"), WithMethods("Missing"))}, "method not declared by target"},
		{"Invalid filter", []CodeGeneratorOption{WithMethodFilter("name =="), WithGoTypesType(counter, WithProxyName("P"))}, "error parsing method filter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cg := NewCodeGenerator()
			if err := cg.BuildFile("gen_proxy.go", tt.opts...); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_, err := cg.GenerateToMap()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("expected error containing '%s', got: %s", tt.expected, err.Error())
			}
		})
	}
}

func TestGenerate_WritesFiles(t *testing.T) {
	pkg := loadTestPackage(t, testPackagePath, testSource)
	dir := t.TempDir()
	fileName := filepath.Join(dir, "store", "gen_proxy.go")

	var logged []string
	cg := NewCodeGenerator(WithVerbose(), WithLogCb(func(format string, args ...any) {
		logged = append(logged, format)
	}))
	if err := cg.BuildFile(fileName, WithGoTypesType(lookupType(t, pkg, "Store"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cg.Generate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatalf("failed to read generated file: %v", err)
	}
	assertContains(t, string(data), "type StoreProxy struct")

	if len(logged) != 1 {
		t.Errorf("expected one log line, got %d", len(logged))
	}
}

func TestGenerate_HelperNames(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"Constructor", "func newCounterProxy() {}\n", "generated function newCounterProxy of CounterProxy collides with"},
		{"Static init", "var counterProxyStaticInit = 1\n", "generated function counterProxyStaticInit of CounterProxy collides with"},
		{"Slot finder", "func counterProxyFindSlot(desc string) string { return desc }\n", "generated function counterProxyFindSlot of CounterProxy collides with"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := loadTestPackage(t, testPackagePath, testSource+"\n"+tt.source)

			cg := NewCodeGenerator()
			if err := cg.BuildFile("gen_proxy.go", WithGoTypesType(lookupType(t, pkg, "Counter"))); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_, err := cg.GenerateToMap()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("expected error containing '%s', got: %s", tt.expected, err.Error())
			}
		})
	}

	t.Run("Previous output", func(t *testing.T) {
		// helpers left by an earlier run are replaced
		pkg := loadTestPackage(t, testPackagePath, testSource+"\nfunc counterProxyFindSlot(desc string) int { return -1 }\n")
		generateTestFile(t, WithGoTypesType(lookupType(t, pkg, "Counter")))
	})
}

const shopSource = `package shop

type base struct{}

func (*base) Ping() int { return 1 }

type Shop struct {
	*base
}

type hidden struct{}

func (*hidden) Do() {}
`

func TestGenerate_ExternalPackage(t *testing.T) {
	pkg := loadTestPackage(t, "example.com/shop", shopSource)
	shop := lookupType(t, pkg, "Shop")

	internal := generateTestFile(t, WithGoTypesType(shop))
	assertContains(t, internal, `cls.ResolveMethod(0, "Ping", "Ping()(int)", reflect.TypeOf((*base)(nil)).Elem(), false)`)

	external := generateTestFile(t, WithPackageName("shop_test"), WithGoTypesType(shop))
	assertContains(t, external,
		"package shop_test",
		"*shop.Shop",
		`cls.ResolveMethod(0, "Ping", "Ping()(int)", nil, false)`,
	)
	if strings.Contains(external, "shop.base") {
		t.Error("unexported declaring type referenced from another package")
	}

	cg := NewCodeGenerator()
	if err := cg.BuildFile("gen_proxy.go", WithPackageName("shop_test"), WithGoTypesType(lookupType(t, pkg, "hidden"), WithProxyName("HiddenProxy"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cg.GenerateToMap(); err == nil || !strings.Contains(err.Error(), "unexported type hidden cannot be proxied from package shop_test") {
		t.Errorf("expected unexported target error, got %v", err)
	}
}
