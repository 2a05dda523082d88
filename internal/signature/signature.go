// Package signature builds a FunctionSignature — the pre-lowering model
// of a declaration's parameters, self, and result — from declaration
// syntax plus an optional enclosing-type context, using a symbol table to
// resolve syntactic types (spec.md §4.2).
package signature

import (
	"github.com/swiftlower/swiftlower/internal/ast"
	swifterrors "github.com/swiftlower/swiftlower/internal/errors"
	"github.com/swiftlower/swiftlower/internal/lowertype"
	"github.com/swiftlower/swiftlower/internal/symtab"
)

// Convention is how a parameter or result value is passed.
type Convention int

const (
	ByValue Convention = iota
	Inout
	Direct
)

// Parameter is one parameter of a (not yet lowered) function signature.
type Parameter struct {
	Convention    Convention
	ArgumentLabel string // "" means no label ("_" in source)
	ParameterName string
	Type          lowertype.Type
	IsPrimitive   bool
}

// ResultSignature is the result half of a FunctionSignature; convention
// is always Direct prior to lowering (spec.md §4.2).
type ResultSignature struct {
	Convention Convention
	Type       lowertype.Type
}

// FunctionSignature is the pre-lowering model of one declaration.
type FunctionSignature struct {
	IsStaticOrClass bool
	SelfParameter   *Parameter
	Parameters      []Parameter
	Result          ResultSignature
}

// resolveTypeSyntax converts a syntactic type reference to a lowertype.Type
// via the resolver, recursing into tuples/metatypes and preserving the
// Function/Optional markers so the lowering engine can reject them later.
func resolveTypeSyntax(resolver symtab.Resolver, ts ast.TypeSyntax) (lowertype.Type, error) {
	switch {
	case ts.IsTuple:
		elems := make([]lowertype.Type, len(ts.Elements))
		for i, e := range ts.Elements {
			t, err := resolveTypeSyntax(resolver, e)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return resolver.ResolveTuple(elems), nil
	case ts.IsMetatype:
		var inner lowertype.Type
		var err error
		if len(ts.GenericArgs) > 0 {
			inner, err = resolveTypeSyntax(resolver, ts.GenericArgs[0])
		} else {
			inner, err = resolver.ResolveNominal(ts.ModuleName, ts.Name, nil)
		}
		if err != nil {
			return nil, err
		}
		return resolver.ResolveMetatype(inner), nil
	case ts.IsFunction:
		return lowertype.Function{}, nil
	case ts.IsOptional:
		var of lowertype.Type = lowertype.Void
		var err error
		if len(ts.GenericArgs) > 0 {
			of, err = resolveTypeSyntax(resolver, ts.GenericArgs[0])
			if err != nil {
				return nil, err
			}
		}
		return lowertype.Optional{Of: of}, nil
	default:
		args := make([]lowertype.Type, len(ts.GenericArgs))
		for i, a := range ts.GenericArgs {
			t, err := resolveTypeSyntax(resolver, a)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		return resolver.ResolveNominal(ts.ModuleName, ts.Name, args)
	}
}

// ResolveType is the exported entry point other packages (the visitor, in
// particular) use to resolve a single syntactic type.
func ResolveType(resolver symtab.Resolver, ts ast.TypeSyntax) (lowertype.Type, error) {
	return resolveTypeSyntax(resolver, ts)
}

func buildParameter(resolver symtab.Resolver, p ast.ParameterSyntax) (Parameter, error) {
	t, err := resolveTypeSyntax(resolver, p.Type)
	if err != nil {
		return Parameter{}, swifterrors.WrapReport(swifterrors.UnresolvedType(p.ParameterName, p.Type.Name))
	}
	conv := ByValue
	if p.IsInout {
		conv = Inout
	}
	label := p.ArgumentLabel
	switch label {
	case "_":
		label = ""
	case "":
		label = p.ParameterName
	}
	return Parameter{
		Convention:    conv,
		ArgumentLabel: label,
		ParameterName: p.ParameterName,
		Type:          t,
	}, nil
}

// selfParameter computes the self parameter for a method, or nil for a
// free function or a static/class method (spec.md §4.2).
func selfParameter(enclosing *lowertype.NominalDecl, isStatic, isClassMethod, isMutating bool) *Parameter {
	if enclosing == nil || isStatic || isClassMethod {
		return nil
	}
	conv := ByValue
	if isMutating && !enclosing.Kind.IsReferenceKind() {
		conv = Inout
	}
	return &Parameter{
		Convention:    conv,
		ParameterName: "self",
		Type:          lowertype.Nominal{Decl: enclosing},
	}
}

// BuildFunction constructs a FunctionSignature for a function or method
// declaration.
func BuildFunction(decl *ast.FuncDecl, enclosing *lowertype.NominalDecl, resolver symtab.Resolver) (*FunctionSignature, error) {
	params := make([]Parameter, len(decl.Parameters))
	for i, p := range decl.Parameters {
		lp, err := buildParameter(resolver, p)
		if err != nil {
			return nil, err
		}
		params[i] = lp
	}

	var resultType lowertype.Type = lowertype.Void
	if decl.ResultType != nil {
		t, err := resolveTypeSyntax(resolver, *decl.ResultType)
		if err != nil {
			return nil, swifterrors.WrapReport(swifterrors.UnresolvedType(decl.Name, decl.ResultType.Name))
		}
		resultType = t
	}

	return &FunctionSignature{
		IsStaticOrClass: decl.IsStatic || decl.IsClassMethod,
		SelfParameter:   selfParameter(enclosing, decl.IsStatic, decl.IsClassMethod, decl.IsMutating),
		Parameters:      params,
		Result:          ResultSignature{Convention: Direct, Type: resultType},
	}, nil
}

// BuildInit constructs a FunctionSignature for a (non-failable) initializer.
// Initializers have no self parameter and their result is the enclosing
// nominal type; the thunk assembler treats the constructed instance as the
// thunk's "return value"
// through the same indirect/direct machinery as any other result (see
// internal/thunk).
func BuildInit(decl *ast.InitDecl, enclosing *lowertype.NominalDecl, resolver symtab.Resolver) (*FunctionSignature, error) {
	if enclosing == nil {
		return nil, swifterrors.WrapReport(swifterrors.InitializerOutsideNominal())
	}
	params := make([]Parameter, len(decl.Parameters))
	for i, p := range decl.Parameters {
		lp, err := buildParameter(resolver, p)
		if err != nil {
			return nil, err
		}
		params[i] = lp
	}
	return &FunctionSignature{
		Parameters: params,
		Result:     ResultSignature{Convention: Direct, Type: lowertype.Nominal{Decl: enclosing}},
	}, nil
}

// BuildPropertyGetter constructs the zero-parameter getter signature for a
// property binding.
func BuildPropertyGetter(decl *ast.PropertyDecl, enclosing *lowertype.NominalDecl, resolver symtab.Resolver) (*FunctionSignature, error) {
	resultType := lowertype.Void
	if decl.Type != nil {
		t, err := resolveTypeSyntax(resolver, *decl.Type)
		if err != nil {
			return nil, swifterrors.WrapReport(swifterrors.UnresolvedType(decl.Name, decl.Type.Name))
		}
		resultType = t
	}
	return &FunctionSignature{
		IsStaticOrClass: decl.IsStatic,
		SelfParameter:   selfParameter(enclosing, decl.IsStatic, false, false),
		Result:          ResultSignature{Convention: Direct, Type: resultType},
	}, nil
}

// BuildPropertySetter constructs the mirrored one-parameter setter
// signature for a property binding with a setter.
func BuildPropertySetter(decl *ast.PropertyDecl, enclosing *lowertype.NominalDecl, resolver symtab.Resolver) (*FunctionSignature, error) {
	paramType := lowertype.Void
	if decl.Type != nil {
		t, err := resolveTypeSyntax(resolver, *decl.Type)
		if err != nil {
			return nil, swifterrors.WrapReport(swifterrors.UnresolvedType(decl.Name, decl.Type.Name))
		}
		paramType = t
	}
	return &FunctionSignature{
		IsStaticOrClass: decl.IsStatic,
		SelfParameter:   selfParameter(enclosing, decl.IsStatic, false, true),
		Parameters: []Parameter{{
			Convention:    ByValue,
			ParameterName: "newValue",
			Type:          paramType,
		}},
		Result: ResultSignature{Convention: Direct, Type: lowertype.Void},
	}, nil
}
