// Package lowering implements the Function Signature Lowering Engine: the
// type-directed transform from a FunctionSignature to a
// LoweredFunctionSignature (spec.md §4.3). This is the algorithmic core of
// the project — parameter dispatch, self lowering, indirect-result
// selection, and cdecl assembly — grounded on the same type-switch
// dispatch shape as a conventional compiler lowering pass. Lowering stops
// at the first error; errors are not accumulated.
package lowering

import (
	"fmt"

	swifterrors "github.com/swiftlower/swiftlower/internal/errors"
	"github.com/swiftlower/swiftlower/internal/lowertype"
	"github.com/swiftlower/swiftlower/internal/signature"
)

// LoweredParameters pairs the reconstruction step for one original
// parameter (or the result) with the flat list of cdecl parameters it
// contributed.
type LoweredParameters struct {
	CdeclToOriginal ConversionStep
	CdeclParameters []signature.Parameter
}

// LoweredFunctionSignature is the complete output of lowering one
// declaration.
type LoweredFunctionSignature struct {
	Original       *signature.FunctionSignature
	Cdecl          *signature.FunctionSignature
	Parameters     []LoweredParameters
	Self           *LoweredParameters // nil iff Original.SelfParameter is nil
	Result         LoweredParameters
	IndirectResult bool
}

// Engine lowers FunctionSignatures one declaration at a time. It carries
// no mutable state across declarations (spec.md §5: purely sequential,
// referentially transparent); the zero value is ready to use.
type Engine struct{}

// New creates a ready-to-use Engine.
func New() *Engine { return &Engine{} }

// Lower runs the full algorithm for one declaration: per-parameter
// lowering, self lowering, indirect-result selection, and cdecl assembly
// (spec.md §4.3). declName is used only for diagnostics.
func (e *Engine) Lower(declName string, sig *signature.FunctionSignature) (*LoweredFunctionSignature, error) {
	lowered := make([]LoweredParameters, len(sig.Parameters))
	var flatParams []signature.Parameter

	for i, p := range sig.Parameters {
		lp, err := e.lowerOne(declName, p.ParameterName, p.Convention, p.Type)
		if err != nil {
			return nil, err
		}
		lowered[i] = lp
		flatParams = append(flatParams, lp.CdeclParameters...)
	}

	result, indirect, resultParams, err := e.lowerResult(declName, sig.Result)
	if err != nil {
		return nil, err
	}
	flatParams = append(flatParams, resultParams...)

	var selfLowered *LoweredParameters
	var selfParams []signature.Parameter
	if sig.SelfParameter != nil {
		sl, err := e.lowerOne(declName, "self", sig.SelfParameter.Convention, sig.SelfParameter.Type)
		if err != nil {
			return nil, err
		}
		selfLowered = &sl
		selfParams = sl.CdeclParameters
	}

	cdeclParams := append(flatParams, selfParams...)

	var cdeclResultType lowertype.Type = lowertype.Void
	if !indirect {
		cdeclResultType = result.cdeclDirectType()
	}

	cdecl := &signature.FunctionSignature{
		Parameters: cdeclParams,
		Result:     signature.ResultSignature{Convention: signature.Direct, Type: cdeclResultType},
	}

	return &LoweredFunctionSignature{
		Original:       sig,
		Cdecl:          cdecl,
		Parameters:     lowered,
		Self:           selfLowered,
		Result:         result.LoweredParameters,
		IndirectResult: indirect,
	}, nil
}

// loweredResult bundles the chosen LoweredParameters for the result
// together with enough of the pre-indirect-selection data to recover the
// direct cdecl result type without re-deriving it.
type loweredResult struct {
	LoweredParameters
	directParam *signature.Parameter // set only when exactly one primitive param was produced
}

func (r loweredResult) cdeclDirectType() lowertype.Type {
	if r.directParam != nil {
		return r.directParam.Type
	}
	return lowertype.Void
}

// lowerResult implements spec.md §4.3's indirect-result selection:
// lower as byValue first; zero params -> direct void; one primitive param
// -> direct; otherwise re-lower as inout and mark indirect.
func (e *Engine) lowerResult(declName string, result signature.ResultSignature) (loweredResult, bool, []signature.Parameter, error) {
	first, err := e.lowerOne(declName, "_result", signature.ByValue, result.Type)
	if err != nil {
		return loweredResult{}, false, nil, err
	}

	switch {
	case len(first.CdeclParameters) == 0:
		return loweredResult{LoweredParameters: first}, false, nil, nil
	case len(first.CdeclParameters) == 1 && first.CdeclParameters[0].IsPrimitive:
		p := first.CdeclParameters[0]
		return loweredResult{LoweredParameters: first, directParam: &p}, false, nil, nil
	default:
		indirect, err := e.lowerOne(declName, "_result", signature.Inout, result.Type)
		if err != nil {
			return loweredResult{}, false, nil, err
		}
		if len(indirect.CdeclParameters) == 0 {
			return loweredResult{}, false, nil, swifterrors.WrapReport(swifterrors.ImproperResultLowering(declName))
		}
		return loweredResult{LoweredParameters: indirect}, true, indirect.CdeclParameters, nil
	}
}

// lowerOne dispatches on the parameter's Type, implementing the full
// per-case table in spec.md §4.3.
func (e *Engine) lowerOne(declName, name string, conv signature.Convention, t lowertype.Type) (LoweredParameters, error) {
	switch typ := t.(type) {
	case lowertype.Function:
		return LoweredParameters{}, swifterrors.WrapReport(swifterrors.UnhandledType(declName, "function"))

	case lowertype.Optional:
		return LoweredParameters{}, swifterrors.WrapReport(swifterrors.UnhandledType(declName, "optional"))

	case lowertype.Metatype:
		param := signature.Parameter{
			Convention:    signature.ByValue,
			ParameterName: name,
			Type:          lowertype.RawPointerType(false),
		}
		return LoweredParameters{
			CdeclToOriginal: UnsafeCastPointer{Step: Placeholder{}, SwiftType: typ.Of},
			CdeclParameters: []signature.Parameter{param},
		}, nil

	case lowertype.Tuple:
		return e.lowerTuple(declName, name, conv, typ)

	case lowertype.Nominal:
		if typ.Decl.ModuleName == lowertype.SwiftModuleName && typ.Decl.Parent == nil {
			if pf, ok := lowertype.LookupPointerFamily(typ.Decl.Name); ok {
				return e.lowerPointerFamily(name, conv, typ, pf), nil
			}
			if pk, ok := lowertype.LookupPrimitive(typ.Decl.Name); ok {
				return e.lowerPrimitive(declName, name, conv, typ, pk)
			}
		}
		return e.lowerOtherNominal(name, conv, typ), nil

	default:
		return LoweredParameters{}, swifterrors.WrapReport(swifterrors.UnhandledType(declName, fmt.Sprintf("%T", t)))
	}
}

func (e *Engine) lowerPrimitive(declName, name string, conv signature.Convention, t lowertype.Nominal, _ lowertype.PrimitiveKind) (LoweredParameters, error) {
	if conv == signature.Inout {
		return LoweredParameters{}, swifterrors.WrapReport(swifterrors.InoutNotSupported(declName, name, t.String()))
	}
	param := signature.Parameter{
		Convention:    conv,
		ParameterName: name,
		Type:          t,
		IsPrimitive:   true,
	}
	return LoweredParameters{
		CdeclToOriginal: Placeholder{},
		CdeclParameters: []signature.Parameter{param},
	}, nil
}

func (e *Engine) lowerPointerFamily(name string, conv signature.Convention, t lowertype.Nominal, pf lowertype.PointerFamily) LoweredParameters {
	rawPtrType := lowertype.RawPointerType(pf.Mutable)
	pointerParam := signature.Parameter{Convention: conv, ParameterName: name + "_pointer", Type: rawPtrType}

	var elementType lowertype.Type
	if pf.RequiresElementType && len(t.GenericArgs) > 0 {
		elementType = t.GenericArgs[0]
	}

	pointerGroup := ConversionStep(Placeholder{})
	pointerComponent := ExplodedComponent{Step: pointerGroup, Component: ComponentPointer}

	if !pf.HasCount {
		if !pf.RequiresElementType {
			// (false, false): Placeholder
			return LoweredParameters{
				CdeclToOriginal: Placeholder{},
				CdeclParameters: []signature.Parameter{pointerParam},
			}
		}
		// (true, false): TypedPointer(ExplodedComponent(Placeholder, "pointer"), T)
		return LoweredParameters{
			CdeclToOriginal: TypedPointer{Step: pointerComponent, SwiftType: elementType},
			CdeclParameters: []signature.Parameter{pointerParam},
		}
	}

	countParam := signature.Parameter{Convention: conv, ParameterName: name + "_count", Type: lowertype.IntType(), IsPrimitive: true}
	countComponent := ExplodedComponent{Step: pointerGroup, Component: ComponentCount}
	params := []signature.Parameter{pointerParam, countParam}

	if !pf.RequiresElementType {
		// (false, true): Initialize(N, [start: pointerComponent, count: countComponent])
		return LoweredParameters{
			CdeclToOriginal: Initialize{SwiftType: t, Args: []LabeledArgument{
				{Label: "start", Step: pointerComponent},
				{Label: "count", Step: countComponent},
			}},
			CdeclParameters: params,
		}
	}

	// (true, true): Initialize(N, [start: TypedPointer(pointerComponent, T), count: countComponent])
	return LoweredParameters{
		CdeclToOriginal: Initialize{SwiftType: t, Args: []LabeledArgument{
			{Label: "start", Step: TypedPointer{Step: pointerComponent, SwiftType: elementType}},
			{Label: "count", Step: countComponent},
		}},
		CdeclParameters: params,
	}
}

func (e *Engine) lowerOtherNominal(name string, conv signature.Convention, t lowertype.Nominal) LoweredParameters {
	mutable := conv == signature.Inout
	param := signature.Parameter{Convention: signature.ByValue, ParameterName: name, Type: lowertype.RawPointerType(mutable)}

	var step ConversionStep
	if t.Decl.Kind.IsReferenceKind() {
		step = UnsafeCastPointer{Step: Placeholder{}, SwiftType: t}
	} else {
		step = PassIndirectly{Step: Pointee{Step: TypedPointer{Step: Placeholder{}, SwiftType: t}}}
	}
	return LoweredParameters{
		CdeclToOriginal: step,
		CdeclParameters: []signature.Parameter{param},
	}
}

func (e *Engine) lowerTuple(declName, name string, conv signature.Convention, t lowertype.Tuple) (LoweredParameters, error) {
	steps := make([]ConversionStep, len(t.Elements))
	var params []signature.Parameter
	for i, elem := range t.Elements {
		elemName := fmt.Sprintf("%s_%d", name, i)
		lp, err := e.lowerOne(declName, elemName, conv, elem)
		if err != nil {
			return LoweredParameters{}, err
		}
		steps[i] = lp.CdeclToOriginal
		params = append(params, lp.CdeclParameters...)
	}
	return LoweredParameters{
		CdeclToOriginal: Tuplify{Steps: steps},
		CdeclParameters: params,
	}, nil
}
