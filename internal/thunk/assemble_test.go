package thunk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftlower/swiftlower/internal/lowering"
	"github.com/swiftlower/swiftlower/internal/lowertype"
	"github.com/swiftlower/swiftlower/internal/signature"
	"github.com/swiftlower/swiftlower/internal/symtab"
	"github.com/swiftlower/swiftlower/internal/thunk"
)

func TestAssemble_PrimitivesReturnsDirectReturnStatement(t *testing.T) {
	table := symtab.New()
	i32, err := table.ResolveNominal(lowertype.SwiftModuleName, "Int32", nil)
	require.NoError(t, err)

	sig := &signature.FunctionSignature{
		Parameters: []signature.Parameter{
			{Convention: signature.ByValue, ArgumentLabel: "", ParameterName: "x", Type: i32},
			{Convention: signature.ByValue, ArgumentLabel: "", ParameterName: "y", Type: i32},
		},
		Result: signature.ResultSignature{Convention: signature.Direct, Type: i32},
	}
	lowered, err := lowering.New().Lower("add", sig)
	require.NoError(t, err)

	body, err := thunk.Assemble("add", lowered)
	require.NoError(t, err)
	assert.Equal(t, "return add(x, y)", body.String())
}

func TestAssemble_IndirectResultProducesAssignment(t *testing.T) {
	table := symtab.New()
	decl := &lowertype.NominalDecl{Name: "Point", ModuleName: "Geometry", Kind: lowertype.Struct}
	table.Declare(decl)
	pointT, err := table.ResolveNominal("Geometry", "Point", nil)
	require.NoError(t, err)
	i32, err := table.ResolveNominal(lowertype.SwiftModuleName, "Int32", nil)
	require.NoError(t, err)

	sig := &signature.FunctionSignature{
		Parameters: []signature.Parameter{
			{Convention: signature.ByValue, ParameterName: "x", Type: i32},
		},
		Result: signature.ResultSignature{Convention: signature.Direct, Type: pointT},
	}
	lowered, err := lowering.New().Lower("makePoint", sig)
	require.NoError(t, err)

	body, err := thunk.Assemble("makePoint", lowered)
	require.NoError(t, err)
	assert.Equal(t, "&_result.assumingMemoryBound(to: Point.self).pointee = makePoint(x)", body.String())
}

func TestAssemble_VoidResultProducesBareCallStatement(t *testing.T) {
	sig := &signature.FunctionSignature{
		Result: signature.ResultSignature{Convention: signature.Direct, Type: lowertype.Void},
	}
	lowered, err := lowering.New().Lower("noop", sig)
	require.NoError(t, err)

	body, err := thunk.Assemble("noop", lowered)
	require.NoError(t, err)
	assert.Equal(t, "noop()", body.String())
}

func TestAssemble_SelfRendersAsReceiver(t *testing.T) {
	table := symtab.New()
	decl := &lowertype.NominalDecl{Name: "Counter", ModuleName: "App", Kind: lowertype.Class}
	table.Declare(decl)

	sig := &signature.FunctionSignature{
		SelfParameter: &signature.Parameter{Convention: signature.ByValue, ParameterName: "self", Type: lowertype.Nominal{Decl: decl}},
		Result:        signature.ResultSignature{Convention: signature.Direct, Type: lowertype.Void},
	}
	lowered, err := lowering.New().Lower("Counter.increment", sig)
	require.NoError(t, err)

	body, err := thunk.Assemble("increment", lowered)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "takeUnretainedValue().increment()")
}
