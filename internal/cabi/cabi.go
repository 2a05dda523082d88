// Package cabi maps a lowered (still S-typed) cdecl signature to a pure C
// function declaration: primitive numerics to fixed-width C types, Int to
// a pointer-sized integer, raw pointers to void*, and the empty tuple to
// void (spec.md §4.4).
package cabi

import (
	"fmt"

	"github.com/swiftlower/swiftlower/internal/lowering"
	"github.com/swiftlower/swiftlower/internal/lowertype"
)

// CType is a C type name, already decayed where applicable (array types
// never arise from this engine, but the field exists for completeness
// per spec.md §4.4).
type CType struct {
	Name string
}

func (c CType) String() string { return c.Name }

// CParameter is one parameter of a CFunction.
type CParameter struct {
	Name string
	Type CType
}

// CFunction is the C function declaration a host runtime binds against.
type CFunction struct {
	Name       string
	Result     CType
	Parameters []CParameter
	IsVariadic bool // always false; the engine never generates variadic thunks
}

var fixedWidthNames = map[string]string{
	"Int8": "int8_t", "Int16": "int16_t", "Int32": "int32_t", "Int64": "int64_t",
	"UInt8": "uint8_t", "UInt16": "uint16_t", "UInt32": "uint32_t", "UInt64": "uint64_t",
	"Float": "float", "Double": "double", "Bool": "bool",
}

// projectType maps one lowertype.Type (always a cdecl-stage type: a
// primitive, Int, a raw pointer, or void) to its C spelling.
func projectType(t lowertype.Type) (CType, error) {
	switch typ := t.(type) {
	case lowertype.Tuple:
		if typ.IsVoid() {
			return CType{Name: "void"}, nil
		}
		return CType{}, fmt.Errorf("cabi: non-void tuple %s reached C projection; cdecl signatures must be fully flattened", typ)
	case lowertype.Nominal:
		name := typ.Decl.Name
		if name == lowertype.UnsafeRawPointer || name == lowertype.UnsafeMutableRawPointer {
			return CType{Name: "void *"}, nil
		}
		if name == "Int" || name == "UInt" {
			return CType{Name: "intptr_t"}, nil
		}
		if c, ok := fixedWidthNames[name]; ok {
			return CType{Name: c}, nil
		}
		return CType{}, fmt.Errorf("cabi: nominal %s is not a C-representable cdecl type", typ)
	default:
		return CType{}, fmt.Errorf("cabi: type %T is not a C-representable cdecl type", t)
	}
}

// Project builds the C function declaration for a lowered signature. name
// is the caller-chosen cdecl symbol name (spec.md §6).
func Project(name string, lowered *lowering.LoweredFunctionSignature) (*CFunction, error) {
	result, err := projectType(lowered.Cdecl.Result.Type)
	if err != nil {
		return nil, err
	}

	params := make([]CParameter, len(lowered.Cdecl.Parameters))
	for i, p := range lowered.Cdecl.Parameters {
		ct, err := projectType(p.Type)
		if err != nil {
			return nil, err
		}
		params[i] = CParameter{Name: p.ParameterName, Type: ct}
	}

	return &CFunction{
		Name:       name,
		Result:     result,
		Parameters: params,
	}, nil
}

// Declare renders a CFunction as a C declaration string, e.g.
// "int32_t add_c(int32_t x, int32_t y);" — the textual form spec.md's
// end-to-end scenarios show.
func (f *CFunction) Declare() string {
	args := ""
	for i, p := range f.Parameters {
		if i > 0 {
			args += ", "
		}
		args += fmt.Sprintf("%s %s", p.Type.Name, p.Name)
	}
	if len(f.Parameters) == 0 {
		args = "void"
	}
	return fmt.Sprintf("%s %s(%s);", f.Result.Name, f.Name, args)
}
