package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftlower/swiftlower/internal/ast"
	"github.com/swiftlower/swiftlower/internal/driver"
	"github.com/swiftlower/swiftlower/internal/symtab"
)

func int32Type() ast.TypeSyntax { return ast.TypeSyntax{Name: "Int32", ModuleName: "Swift"} }

func TestDriver_RunLowersFreeFunction(t *testing.T) {
	table := symtab.New()
	file := &ast.File{
		Path: "Add.swift",
		Funcs: []*ast.FuncDecl{
			{
				Name:   "add",
				Access: ast.AccessPublic,
				Parameters: []ast.ParameterSyntax{
					{ArgumentLabel: "_", ParameterName: "x", Type: int32Type()},
					{ArgumentLabel: "_", ParameterName: "y", Type: int32Type()},
				},
				ResultType: func() *ast.TypeSyntax { ts := int32Type(); return &ts }(),
			},
		},
	}

	cfg := &driver.Config{ModuleName: "App", MaxConcurrent: 1, SymbolPrefix: ""}
	artifacts, run := driver.New(cfg, table).Run([]*ast.File{file})

	require.Len(t, artifacts, 1)
	assert.Equal(t, "add_c", artifacts[0].SymbolName)
	assert.Equal(t, "int32_t add_c(int32_t x, int32_t y);", artifacts[0].CFunction.Declare())
	assert.Equal(t, "return add(x, y)", artifacts[0].Body.String())

	lowered, warnings, errs := run.Counts()
	assert.Equal(t, 1, lowered)
	assert.Equal(t, 0, warnings)
	assert.Equal(t, 0, errs)
}

func TestDriver_RunSkipsNonPublicDeclarations(t *testing.T) {
	table := symtab.New()
	file := &ast.File{
		Funcs: []*ast.FuncDecl{
			{Name: "internalHelper", Access: ast.AccessInternal},
		},
	}

	cfg := &driver.Config{ModuleName: "App", MaxConcurrent: 1}
	artifacts, run := driver.New(cfg, table).Run([]*ast.File{file})

	assert.Empty(t, artifacts)
	lowered, warnings, errs := run.Counts()
	assert.Equal(t, 0, lowered+warnings+errs)
}

func TestDriver_RunConcurrentProducesSameResultsAsSequential(t *testing.T) {
	table := symtab.New()
	var funcs []*ast.FuncDecl
	for i := 0; i < 8; i++ {
		funcs = append(funcs, &ast.FuncDecl{
			Name:   "f",
			Access: ast.AccessPublic,
			Parameters: []ast.ParameterSyntax{
				{ArgumentLabel: "_", ParameterName: "x", Type: int32Type()},
			},
			ResultType: func() *ast.TypeSyntax { ts := int32Type(); return &ts }(),
		})
	}
	file := &ast.File{Funcs: funcs}

	cfg := &driver.Config{ModuleName: "App", MaxConcurrent: 4}
	artifacts, run := driver.New(cfg, table).Run([]*ast.File{file})

	require.Len(t, artifacts, 8)
	lowered, _, _ := run.Counts()
	assert.Equal(t, 8, lowered)
	for _, a := range artifacts {
		assert.Equal(t, "return f(x)", a.Body.String())
	}
}
