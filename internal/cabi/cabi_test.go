package cabi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftlower/swiftlower/internal/cabi"
	"github.com/swiftlower/swiftlower/internal/lowering"
	"github.com/swiftlower/swiftlower/internal/lowertype"
	"github.com/swiftlower/swiftlower/internal/signature"
	"github.com/swiftlower/swiftlower/internal/symtab"
)

func TestProject_PrimitivesOnlyRendersFixedWidthSignature(t *testing.T) {
	table := symtab.New()
	i32, err := table.ResolveNominal(lowertype.SwiftModuleName, "Int32", nil)
	require.NoError(t, err)

	sig := &signature.FunctionSignature{
		Parameters: []signature.Parameter{
			{Convention: signature.ByValue, ParameterName: "x", Type: i32},
			{Convention: signature.ByValue, ParameterName: "y", Type: i32},
		},
		Result: signature.ResultSignature{Convention: signature.Direct, Type: i32},
	}
	lowered, err := lowering.New().Lower("add", sig)
	require.NoError(t, err)

	fn, err := cabi.Project("add_c", lowered)
	require.NoError(t, err)

	assert.Equal(t, "int32_t add_c(int32_t x, int32_t y);", fn.Declare())
}

func TestProject_VoidResultRendersVoidReturnAndParams(t *testing.T) {
	sig := &signature.FunctionSignature{
		Result: signature.ResultSignature{Convention: signature.Direct, Type: lowertype.Void},
	}
	lowered, err := lowering.New().Lower("noop", sig)
	require.NoError(t, err)

	fn, err := cabi.Project("noop_c", lowered)
	require.NoError(t, err)

	assert.Equal(t, "void noop_c(void);", fn.Declare())
}

func TestProject_RawPointerParameterRendersVoidStar(t *testing.T) {
	table := symtab.New()
	decl := &lowertype.NominalDecl{Name: "Widget", ModuleName: "UI", Kind: lowertype.Class}
	table.Declare(decl)
	widgetT, err := table.ResolveNominal("UI", "Widget", nil)
	require.NoError(t, err)

	sig := &signature.FunctionSignature{
		Parameters: []signature.Parameter{
			{Convention: signature.ByValue, ParameterName: "w", Type: widgetT},
		},
		Result: signature.ResultSignature{Convention: signature.Direct, Type: lowertype.Void},
	}
	lowered, err := lowering.New().Lower("render", sig)
	require.NoError(t, err)

	fn, err := cabi.Project("render_c", lowered)
	require.NoError(t, err)

	assert.Equal(t, "void render_c(void * w);", fn.Declare())
}
