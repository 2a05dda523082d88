package thunk

import (
	"fmt"

	"github.com/swiftlower/swiftlower/internal/lowering"
	"github.com/swiftlower/swiftlower/internal/lowertype"
	"github.com/swiftlower/swiftlower/internal/signature"
)

// cursor walks a LoweredParameters' flat cdecl parameter list left to
// right as the matching ConversionStep tree is rendered. Tree-leaf order
// and flat parameter order are produced together by the lowering engine
// (one parameter emitted per Placeholder/ExplodedComponent leaf, in the
// same order the leaf is visited), so a single positional cursor recovers
// the correct binding without re-deriving per-subtree parameter counts —
// including inside Tuplify, where each element's leaves consume exactly
// that element's own share of the flattened list.
type cursor struct {
	params []signature.Parameter
	pos    int
}

func (c *cursor) next() (signature.Parameter, error) {
	if c.pos >= len(c.params) {
		return signature.Parameter{}, fmt.Errorf("thunk: conversion step references more cdecl parameters than were produced")
	}
	p := c.params[c.pos]
	c.pos++
	return p, nil
}

// render turns one ConversionStep into its expression, consuming cdecl
// parameter names from c as it reaches Placeholder/ExplodedComponent leaves.
func render(step lowering.ConversionStep, c *cursor) (Expr, error) {
	switch s := step.(type) {
	case lowering.Placeholder:
		p, err := c.next()
		if err != nil {
			return nil, err
		}
		return Name{Value: p.ParameterName}, nil

	case lowering.ExplodedComponent:
		p, err := c.next()
		if err != nil {
			return nil, err
		}
		return Name{Value: p.ParameterName}, nil

	case lowering.TypedPointer:
		inner, err := render(s.Step, c)
		if err != nil {
			return nil, err
		}
		return TypedPointerExpr{Inner: inner, SwiftType: s.SwiftType}, nil

	case lowering.Pointee:
		inner, err := render(s.Step, c)
		if err != nil {
			return nil, err
		}
		return DereferenceExpr{Inner: inner}, nil

	case lowering.PassIndirectly:
		inner, err := render(s.Step, c)
		if err != nil {
			return nil, err
		}
		return AddressOfExpr{Inner: inner}, nil

	case lowering.UnsafeCastPointer:
		inner, err := render(s.Step, c)
		if err != nil {
			return nil, err
		}
		return UnsafeCastExpr{Inner: inner, SwiftType: s.SwiftType}, nil

	case lowering.Initialize:
		args := make([]LabeledArg, len(s.Args))
		for i, a := range s.Args {
			e, err := render(a.Step, c)
			if err != nil {
				return nil, err
			}
			args[i] = LabeledArg{Label: a.Label, Expr: e}
		}
		return InitializeExpr{SwiftType: s.SwiftType, Args: args}, nil

	case lowering.Tuplify:
		elems := make([]Expr, len(s.Steps))
		for i, sub := range s.Steps {
			e, err := render(sub, c)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return TupleExpr{Elements: elems}, nil

	default:
		return nil, fmt.Errorf("thunk: unrenderable conversion step %T", step)
	}
}

// Render renders a single LoweredParameters' reconstruction step using its
// own cdecl parameter list. Exported so callers (tests, diagnostics) can
// render one parameter's reconstruction in isolation.
func Render(lp lowering.LoweredParameters) (Expr, error) {
	c := &cursor{params: lp.CdeclParameters}
	return render(lp.CdeclToOriginal, c)
}

func isVoid(t lowertype.Type) bool {
	tup, ok := t.(lowertype.Tuple)
	return ok && tup.IsVoid()
}

// Assemble produces the complete thunk body for one lowered declaration.
// methodName is the original declaration's simple name as written in
// source (e.g. "translated" for `func translated(by:)`).
func Assemble(methodName string, lowered *lowering.LoweredFunctionSignature) (*Body, error) {
	if len(lowered.Original.Parameters) != len(lowered.Parameters) {
		return nil, fmt.Errorf("thunk: %d original parameters but %d lowered groups", len(lowered.Original.Parameters), len(lowered.Parameters))
	}

	args := make([]LabeledArg, len(lowered.Original.Parameters))
	for i, op := range lowered.Original.Parameters {
		e, err := Render(lowered.Parameters[i])
		if err != nil {
			return nil, fmt.Errorf("thunk: parameter %q: %w", op.ParameterName, err)
		}
		args[i] = LabeledArg{Label: op.ArgumentLabel, Expr: e}
	}

	call := CallExpr{Method: methodName, Args: args}
	if lowered.Original.SelfParameter != nil {
		if lowered.Self == nil {
			return nil, fmt.Errorf("thunk: original signature has self but lowering produced none")
		}
		recv, err := Render(*lowered.Self)
		if err != nil {
			return nil, fmt.Errorf("thunk: self: %w", err)
		}
		call.Receiver = recv
	}

	switch {
	case !lowered.IndirectResult && isVoid(lowered.Original.Result.Type):
		return &Body{Stmt: CallStmt{Call: call}}, nil
	case lowered.IndirectResult:
		lhs, err := Render(lowered.Result)
		if err != nil {
			return nil, fmt.Errorf("thunk: result: %w", err)
		}
		return &Body{Stmt: AssignStmt{LHS: lhs, RHS: call}}, nil
	default:
		return &Body{Stmt: ReturnStmt{Value: call}}, nil
	}
}
