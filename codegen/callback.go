// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"fmt"
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/pk910/dynamic-proxy/switchtable"
)

const dynproxyPkg = "github.com/pk910/dynamic-proxy"

// callbackGenerator emits the proxy for one target through an Emitter.
//
// Per overridden method it emits an access method calling the original
// implementation and an around method routing through the bound interceptor.
// The static initializer binds metadata and Fast Invocation Handles per slot,
// the signature dispatcher maps descriptors to slots.
type callbackGenerator struct {
	emitter   Emitter
	target    *ProxyTarget
	style     switchtable.Style
	proxyName string

	// external is set when the file belongs to another package than the target
	external bool

	// sigMap maps descriptors to access method names, filled by generate.
	sigMap map[string]string
}

func newCallbackGenerator(emitter Emitter, target *ProxyTarget, proxyName string, style switchtable.Style) *callbackGenerator {
	return &callbackGenerator{
		emitter:   emitter,
		target:    target,
		style:     style,
		proxyName: proxyName,
		sigMap:    make(map[string]string, len(target.Methods)),
	}
}

func (g *callbackGenerator) staticInitName() string { return lowerFirst(g.proxyName) + "StaticInit" }
func (g *callbackGenerator) findSlotName() string   { return lowerFirst(g.proxyName) + "FindSlot" }
func (g *callbackGenerator) newName() string        { return "new" + g.proxyName }

// helperNames returns the package level functions emitted besides the proxy type.
func (g *callbackGenerator) helperNames() []string {
	return []string{g.newName(), g.staticInitName(), g.findSlotName()}
}

// declaringCode is the reflected declaring type of m, or nil when it cannot be
// spelled in the generated file.
func (g *callbackGenerator) declaringCode(m *ProxyMethod) jen.Code {
	if m.Declaring == nil {
		return jen.Nil()
	}
	obj := m.Declaring.Obj()
	if g.external && !obj.Exported() {
		return jen.Nil()
	}
	return jen.Qual("reflect", "TypeOf").Call(jen.Parens(jen.Op("*").Qual(obj.Pkg().Path(), obj.Name())).Call(jen.Nil())).Dot("Elem").Call()
}

// targetCode is the target type as referenced in the generated package.
func (g *callbackGenerator) targetCode() jen.Code {
	obj := g.target.Named.Obj()
	return jen.Qual(obj.Pkg().Path(), obj.Name())
}

// embeddedField selects the embedded target of the proxy receiver.
func (g *callbackGenerator) embeddedField() *jen.Statement {
	return jen.Id("p").Dot(g.target.FieldName)
}

// generateAll emits the complete proxy for the target.
func (g *callbackGenerator) generateAll() error {
	g.generateType()

	if err := g.generate(g.target.Methods); err != nil {
		return err
	}
	if err := g.generateStatic(g.target.Methods); err != nil {
		return err
	}
	if err := g.generateFindProxy(g.sigMap); err != nil {
		return err
	}

	g.generateConstructor()
	g.generateRegistration()
	return nil
}

func (g *callbackGenerator) generateType() {
	e := g.emitter
	targetName := g.target.Named.Obj().Name()

	e.BeginType(g.proxyName, fmt.Sprintf("%s intercepts the methods of %s.", g.proxyName, targetName))
	if g.target.IsInterface {
		e.DeclareField("", g.targetCode())
	} else {
		e.DeclareField("", jen.Op("*").Add(g.targetCode()))
	}
	e.DeclareField("proxyClass", jen.Op("*").Qual(dynproxyPkg, "Class"))
	e.DeclareField("proxyBinding", jen.Qual(dynproxyPkg, "Binding"))
	e.EndType()

	e.Declare(jen.Var().Id("_").Qual(dynproxyPkg, "Proxy").Op("=").Parens(jen.Op("*").Id(g.proxyName)).Call(jen.Nil()))
	if g.target.IsInterface {
		e.Declare(jen.Var().Id("_").Add(g.targetCode()).Op("=").Parens(jen.Op("*").Id(g.proxyName)).Call(jen.Nil()))
	}

	e.BeginMethod("ProxyClass returns the class the proxy was created from.", "p", g.proxyName, "ProxyClass", nil, []jen.Code{jen.Op("*").Qual(dynproxyPkg, "Class")})
	e.Emit(jen.Return(jen.Id("p").Dot("proxyClass")))
	e.EndMethod()

	e.BeginMethod("ProxyCallback returns the bound interceptor or nil.", "p", g.proxyName, "ProxyCallback", nil, []jen.Code{jen.Qual(dynproxyPkg, "MethodInterceptor")})
	e.Emit(jen.Return(jen.Id("p").Dot("proxyBinding").Dot("Load").Call()))
	e.EndMethod()

	e.BeginMethod("SetProxyCallback binds cb to the proxy, nil unbinds.", "p", g.proxyName, "SetProxyCallback", []jen.Code{jen.Id("cb").Qual(dynproxyPkg, "MethodInterceptor")}, nil)
	e.Emit(jen.Id("p").Dot("proxyBinding").Dot("Store").Call(jen.Id("cb")))
	e.EndMethod()
}

// generate emits the access and around method of every signature and records
// the access method names in the signature map.
func (g *callbackGenerator) generate(methods []*ProxyMethod) error {
	for _, m := range methods {
		if _, exists := g.sigMap[m.Descriptor]; exists {
			return fmt.Errorf("duplicate signature %s", m.Descriptor)
		}

		params, results, err := signatureCode(m.Signature)
		if err != nil {
			return fmt.Errorf("method %s: %w", m.Name, err)
		}

		namedParams := make([]jen.Code, len(params))
		for i, p := range params {
			namedParams[i] = jen.Id(argName(i)).Add(p)
		}

		g.generateAccess(m, namedParams, results)
		g.generateAround(m, namedParams, results)

		g.sigMap[m.Descriptor] = m.AccessName
	}
	return nil
}

// callArgs forwards the parameters of m, spreading a variadic tail.
func callArgs(m *ProxyMethod) []jen.Code {
	n := m.Signature.Params().Len()
	args := make([]jen.Code, n)
	for i := 0; i < n; i++ {
		if m.Signature.Variadic() && i == n-1 {
			args[i] = jen.Id(argName(i)).Op("...")
		} else {
			args[i] = jen.Id(argName(i))
		}
	}
	return args
}

// zeroResults declares r0..rN for the non-error results of m and returns the
// identifiers.
func zeroResults(m *ProxyMethod, results []jen.Code) ([]jen.Code, []jen.Code) {
	decls := make([]jen.Code, 0, m.NumResults)
	ids := make([]jen.Code, 0, m.NumResults+1)
	for i := 0; i < m.NumResults; i++ {
		decls = append(decls, jen.Var().Id(resultName(i)).Add(results[i]))
		ids = append(ids, jen.Id(resultName(i)))
	}
	return decls, ids
}

func (g *callbackGenerator) generateAccess(m *ProxyMethod, params []jen.Code, results []jen.Code) {
	e := g.emitter
	e.BeginMethod(fmt.Sprintf("%s calls the original implementation of %s.", m.AccessName, m.Name), "p", g.proxyName, m.AccessName, params, results)

	if m.Abstract {
		failure := jen.Qual(dynproxyPkg, "NewAbstractMethodError").Call(jen.Lit(m.Description))

		var onAbstract []jen.Code
		if m.ReturnsError {
			decls, ids := zeroResults(m, results)
			onAbstract = append(decls, jen.Return(append(ids, failure)...))
		} else {
			onAbstract = []jen.Code{jen.Panic(failure)}
		}

		e.Emit(jen.If(g.embeddedField().Add(dotPath(m.AbstractPath)).Op("==").Nil()).Block(onAbstract...))
	}

	call := g.embeddedField().Dot(m.Name).Call(callArgs(m)...)
	if len(results) == 0 {
		e.Emit(call)
	} else {
		e.Emit(jen.Return(call))
	}
	e.EndMethod()
}

func (g *callbackGenerator) generateAround(m *ProxyMethod, params []jen.Code, results []jen.Code) {
	e := g.emitter
	e.BeginMethod("", "p", g.proxyName, m.Name, params, results)

	slot := jen.Lit(m.Slot)
	method := jen.Id("p").Dot("proxyClass").Dot("Method").Call(slot)

	// unbound: delegate to the original implementation
	e.Emit(jen.Id("cb").Op(":=").Id("p").Dot("proxyBinding").Dot("Load").Call())
	superCall := jen.Id("p").Dot(m.AccessName).Call(callArgs(m)...)
	if len(results) == 0 {
		e.Emit(jen.If(jen.Id("cb").Op("==").Nil()).Block(superCall, jen.Return()))
	} else {
		e.Emit(jen.If(jen.Id("cb").Op("==").Nil()).Block(jen.Return(superCall)))
	}

	args := make([]jen.Code, m.Signature.Params().Len())
	for i := range args {
		args[i] = jen.Id(argName(i))
	}
	intercept := jen.Id("cb").Dot("Intercept").Call(
		jen.Id("p"),
		method,
		jen.Index().Id("any").Values(args...),
		jen.Id("p").Dot("proxyClass").Dot("Proxy").Call(slot),
	)

	decls, ids := zeroResults(m, results)
	fail := func() jen.Code {
		if m.ReturnsError {
			return jen.Return(append(append([]jen.Code{}, ids...), jen.Err())...)
		}
		return jen.Panic(jen.Err())
	}

	if m.NumResults == 0 {
		e.Emit(jen.If(jen.List(jen.Id("_"), jen.Err()).Op(":=").Add(intercept), jen.Err().Op("!=").Nil()).Block(fail()))
		if m.ReturnsError {
			e.Emit(jen.Return(jen.Nil()))
		}
		e.EndMethod()
		return
	}

	e.Emit(decls...)
	e.Emit(
		jen.List(jen.Id("res"), jen.Err()).Op(":=").Add(intercept),
		jen.If(jen.Err().Op("!=").Nil()).Block(fail()),
	)
	for i := 0; i < m.NumResults; i++ {
		coerce := jen.Qual(dynproxyPkg, "Result").Types(results[i]).Call(method, jen.Id("res"), jen.Lit(i))
		e.Emit(jen.If(jen.List(jen.Id(resultName(i)), jen.Err()).Op("=").Add(coerce), jen.Err().Op("!=").Nil()).Block(fail()))
	}

	if m.ReturnsError {
		e.Emit(jen.Return(append(ids, jen.Nil())...))
	} else {
		e.Emit(jen.Return(ids...))
	}
	e.EndMethod()
}

// generateStatic emits the static initializer: per signature it resolves the
// reflected metadata and binds the Fast Invocation Handle.
func (g *callbackGenerator) generateStatic(methods []*ProxyMethod) error {
	e := g.emitter
	e.BeginFunc("", g.staticInitName(), []jen.Code{jen.Id("cls").Op("*").Qual(dynproxyPkg, "Class")}, []jen.Code{jen.Error()})

	if len(methods) > 0 {
		e.Emit(jen.Var().Err().Error())
	}

	for _, m := range methods {
		params, results, err := signatureCode(m.Signature)
		if err != nil {
			return fmt.Errorf("method %s: %w", m.Name, err)
		}

		declaring := g.declaringCode(m)

		metaVar := "m" + strconv.Itoa(m.Slot)
		e.Emit(
			jen.List(jen.Id(metaVar), jen.Err()).Op(":=").Id("cls").Dot("ResolveMethod").Call(
				jen.Lit(m.Slot), jen.Lit(m.Name), jen.Lit(m.Descriptor), declaring, jen.Lit(m.Abstract),
			),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		)

		superFn := g.invoker(m, metaVar, m.AccessName, params, results)
		invokeFn := g.invoker(m, metaVar, m.Name, params, results)
		e.Emit(jen.If(
			jen.Err().Op("=").Id("cls").Dot("Bind").Call(jen.Lit(m.Slot), jen.Id(metaVar), jen.Lit(m.AccessName), superFn, invokeFn),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Err())))
	}

	e.Emit(jen.Return(jen.Nil()))
	e.EndMethod()
	return nil
}

// invoker emits a typed dynproxy.InvokeFunc calling method name on the proxy.
func (g *callbackGenerator) invoker(m *ProxyMethod, metaVar string, name string, params []jen.Code, results []jen.Code) jen.Code {
	body := make([]jen.Code, 0, len(params)+3)

	for i := 0; i < m.Signature.Params().Len(); i++ {
		paramType, _ := typeCode(m.Signature.Params().At(i).Type())
		body = append(body,
			jen.List(jen.Id(argName(i)), jen.Err()).Op(":=").Qual(dynproxyPkg, "Arg").Types(paramType).Call(jen.Id(metaVar), jen.Id("args"), jen.Lit(i)),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err())),
		)
	}

	call := jen.Id("obj").Assert(jen.Op("*").Id(g.proxyName)).Dot(name).Call(callArgs(m)...)

	ids := make([]jen.Code, 0, m.NumResults)
	for i := 0; i < m.NumResults; i++ {
		ids = append(ids, jen.Id(resultName(i)))
	}

	switch {
	case m.NumResults == 0 && !m.ReturnsError:
		body = append(body, call, jen.Return(jen.Nil(), jen.Nil()))
	case m.NumResults == 0:
		body = append(body, jen.Return(jen.Nil(), call))
	case m.ReturnsError:
		body = append(body,
			jen.List(append(ids, jen.Err())...).Op(":=").Add(call),
			jen.Return(jen.Index().Id("any").Values(ids...), jen.Err()),
		)
	default:
		body = append(body,
			jen.List(ids...).Op(":=").Add(call),
			jen.Return(jen.Index().Id("any").Values(ids...), jen.Nil()),
		)
	}

	return jen.Func().Params(
		jen.Id("obj").Qual(dynproxyPkg, "Proxy"),
		jen.Id("args").Index().Id("any"),
	).Params(jen.Index().Id("any"), jen.Error()).Block(body...)
}

// generateFindProxy emits the signature dispatcher over sigMap and the
// FindMethodProxy method using it.
func (g *callbackGenerator) generateFindProxy(sigMap map[string]string) error {
	e := g.emitter

	keys := make([]string, len(g.target.Methods))
	for _, m := range g.target.Methods {
		if _, ok := sigMap[m.Descriptor]; !ok {
			return fmt.Errorf("signature %s has no access method", m.Descriptor)
		}
		keys[m.Slot] = m.Descriptor
	}

	e.BeginFunc("", g.findSlotName(), []jen.Code{jen.Id("desc").String()}, []jen.Code{jen.Int()})
	err := e.StringSwitch(jen.Id("desc"), keys, g.style,
		func(idx int) []jen.Code {
			return []jen.Code{jen.Return(jen.Lit(idx))}
		},
		func() []jen.Code {
			return []jen.Code{jen.Return(jen.Lit(switchtable.NotFound))}
		},
	)
	if err != nil {
		return err
	}
	e.EndMethod()

	e.BeginMethod("FindMethodProxy returns the Fast Invocation Handle bound to sig, or nil.", "p", g.proxyName, "FindMethodProxy",
		[]jen.Code{jen.Id("sig").Qual(dynproxyPkg, "Signature")},
		[]jen.Code{jen.Op("*").Qual(dynproxyPkg, "MethodProxy")},
	)
	e.Emit(
		jen.Id("slot").Op(":=").Id(g.findSlotName()).Call(jen.Id("sig").Dot("Descriptor").Call()),
		jen.If(jen.Id("slot").Op("<").Lit(0)).Block(jen.Return(jen.Nil())),
		jen.Return(jen.Id("p").Dot("proxyClass").Dot("Proxy").Call(jen.Id("slot"))),
	)
	e.EndMethod()
	return nil
}

func (g *callbackGenerator) generateConstructor() {
	e := g.emitter
	field := g.target.FieldName

	e.BeginFunc("", g.newName(),
		[]jen.Code{jen.Id("cls").Op("*").Qual(dynproxyPkg, "Class"), jen.Id("base").Id("any")},
		[]jen.Code{jen.Qual(dynproxyPkg, "Proxy"), jen.Error()},
	)

	baseType := g.targetCode()
	if !g.target.IsInterface {
		baseType = jen.Op("*").Add(g.targetCode())
	}

	e.Emit(
		jen.Id("p").Op(":=").Op("&").Id(g.proxyName).Values(jen.Dict{jen.Id("proxyClass"): jen.Id("cls")}),
		jen.Switch(jen.Id("b").Op(":=").Id("base").Assert(jen.Type())).Block(
			jen.Case(jen.Nil()).Block(),
			jen.Case(baseType).Block(jen.Id("p").Dot(field).Op("=").Id("b")),
			jen.Default().Block(jen.Return(jen.Nil(), jen.Id("cls").Dot("InvalidBase").Call(jen.Id("base")))),
		),
	)
	if !g.target.IsInterface {
		e.Emit(jen.If(jen.Id("p").Dot(field).Op("==").Nil()).Block(
			jen.Id("p").Dot(field).Op("=").New(g.targetCode()),
		))
	}
	e.Emit(jen.Return(jen.Id("p"), jen.Nil()))
	e.EndMethod()
}

func (g *callbackGenerator) generateRegistration() {
	e := g.emitter

	target := jen.Qual("reflect", "TypeOf").Call(jen.Parens(jen.Op("*").Add(g.targetCode())).Call(jen.Nil()))
	if g.target.IsInterface {
		target = target.Dot("Elem").Call()
	}

	descriptors := make([]jen.Code, len(g.target.Methods))
	for _, m := range g.target.Methods {
		descriptors[m.Slot] = jen.Lit(m.Descriptor)
	}

	e.BeginFunc("", "init", nil, nil)
	e.Emit(jen.Qual(dynproxyPkg, "Register").Call(jen.Op("&").Qual(dynproxyPkg, "ClassSpec").Values(jen.Dict{
		jen.Id("Target"):      target,
		jen.Id("Proxy"):       jen.Qual("reflect", "TypeOf").Call(jen.Parens(jen.Op("*").Id(g.proxyName)).Call(jen.Nil())),
		jen.Id("Descriptors"): jen.Index().String().ValuesFunc(func(grp *jen.Group) {
			for _, d := range descriptors {
				grp.Line().Add(d)
			}
			grp.Line()
		}),
		jen.Id("StaticInit"): jen.Id(g.staticInitName()),
		jen.Id("FindSlot"):   jen.Id(g.findSlotName()),
		jen.Id("New"):        jen.Id(g.newName()),
	})))
	e.EndMethod()
}

func argName(i int) string    { return "a" + strconv.Itoa(i) }
func resultName(i int) string { return "r" + strconv.Itoa(i) }

// dotPath selects a field path.
func dotPath(path []string) jen.Code {
	stmt := jen.Null()
	for _, name := range path {
		stmt = stmt.Dot(name)
	}
	return stmt
}
