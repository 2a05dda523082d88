package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftlower/swiftlower/internal/ast"
	"github.com/swiftlower/swiftlower/internal/errors"
	"github.com/swiftlower/swiftlower/internal/lowertype"
	"github.com/swiftlower/swiftlower/internal/symtab"
	"github.com/swiftlower/swiftlower/internal/visitor"
)

func int32Syntax() ast.TypeSyntax { return ast.TypeSyntax{Name: "Int32", ModuleName: "Swift"} }

func TestVisitFile_SkipsNonPublicFreeFunction(t *testing.T) {
	table := symtab.New()
	f := &ast.File{
		Funcs: []*ast.FuncDecl{
			{Name: "hidden", Access: ast.AccessInternal},
		},
	}
	res := visitor.New(table, "App").VisitFile(f)
	assert.Empty(t, res.Bindings)
	assert.Empty(t, res.Diagnostics)
}

func TestVisitFile_LowersPublicFreeFunction(t *testing.T) {
	table := symtab.New()
	ts := int32Syntax()
	f := &ast.File{
		Funcs: []*ast.FuncDecl{
			{
				Name:   "add",
				Access: ast.AccessPublic,
				Parameters: []ast.ParameterSyntax{
					{ArgumentLabel: "_", ParameterName: "x", Type: ts},
					{ArgumentLabel: "_", ParameterName: "y", Type: ts},
				},
				ResultType: &ts,
			},
		},
	}
	res := visitor.New(table, "App").VisitFile(f)
	require.Len(t, res.Bindings, 1)
	assert.Equal(t, "add", res.Bindings[0].Name)
	assert.False(t, res.Bindings[0].Lowered.IndirectResult)
}

func TestVisitFile_FailableInitializerSkippedWithWarning(t *testing.T) {
	table := symtab.New()
	decl := &lowertype.NominalDecl{Name: "Widget", ModuleName: "App", Kind: lowertype.Struct}
	table.Declare(decl)

	f := &ast.File{
		Types: []*ast.TypeDecl{
			{
				Kind:   ast.KindStruct,
				Name:   "Widget",
				Access: ast.AccessPublic,
				Members: []ast.MemberDecl{
					&ast.InitDecl{Access: ast.AccessPublic, IsFailable: true},
				},
			},
		},
	}
	res := visitor.New(table, "App").VisitFile(f)
	assert.Empty(t, res.Bindings)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, errors.VIS001, res.Diagnostics[0].Report.Code)
}

func TestVisitFile_GlobalPropertyReportsStructuredError(t *testing.T) {
	table := symtab.New()
	f := &ast.File{
		GlobalProperties: []*ast.PropertyDecl{
			{Name: "sharedCounter", Access: ast.AccessPublic},
		},
	}
	res := visitor.New(table, "App").VisitFile(f)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, errors.VIS002, res.Diagnostics[0].Report.Code)
}

func TestVisitFile_PropertyWithoutTypeDefaultsToVoidWithWarning(t *testing.T) {
	table := symtab.New()
	decl := &lowertype.NominalDecl{Name: "Widget", ModuleName: "App", Kind: lowertype.Struct}
	table.Declare(decl)

	f := &ast.File{
		Types: []*ast.TypeDecl{
			{
				Kind:   ast.KindStruct,
				Name:   "Widget",
				Access: ast.AccessPublic,
				Members: []ast.MemberDecl{
					&ast.PropertyDecl{Name: "untyped", Access: ast.AccessPublic},
				},
			},
		},
	}
	res := visitor.New(table, "App").VisitFile(f)
	require.Len(t, res.Bindings, 1)
	assert.Equal(t, "Widget.untyped_get", res.Bindings[0].Name)

	var warned bool
	for _, d := range res.Diagnostics {
		if d.Report.Code == errors.VIS003 {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestVisitFile_PropertyWithSetterProducesGetterAndSetter(t *testing.T) {
	table := symtab.New()
	decl := &lowertype.NominalDecl{Name: "Widget", ModuleName: "App", Kind: lowertype.Struct}
	table.Declare(decl)
	ts := int32Syntax()

	f := &ast.File{
		Types: []*ast.TypeDecl{
			{
				Kind:   ast.KindStruct,
				Name:   "Widget",
				Access: ast.AccessPublic,
				Members: []ast.MemberDecl{
					&ast.PropertyDecl{Name: "count", Access: ast.AccessPublic, Type: &ts, HasSetter: true},
				},
			},
		},
	}
	res := visitor.New(table, "App").VisitFile(f)
	require.Len(t, res.Bindings, 2)
	assert.Equal(t, "Widget.count_get", res.Bindings[0].Name)
	assert.Equal(t, "Widget.count_set", res.Bindings[1].Name)
}

func TestVisitFile_DeinitIsIgnored(t *testing.T) {
	table := symtab.New()
	decl := &lowertype.NominalDecl{Name: "Widget", ModuleName: "App", Kind: lowertype.Class}
	table.Declare(decl)

	f := &ast.File{
		Types: []*ast.TypeDecl{
			{
				Kind:   ast.KindClass,
				Name:   "Widget",
				Access: ast.AccessPublic,
				Members: []ast.MemberDecl{
					&ast.DeinitDecl{},
				},
			},
		},
	}
	res := visitor.New(table, "App").VisitFile(f)
	assert.Empty(t, res.Bindings)
	assert.Empty(t, res.Diagnostics)
}

func TestVisitFile_SkipsNonPublicType(t *testing.T) {
	table := symtab.New()
	f := &ast.File{
		Types: []*ast.TypeDecl{
			{
				Kind:   ast.KindStruct,
				Name:   "Internal",
				Access: ast.AccessInternal,
				Members: []ast.MemberDecl{
					&ast.FuncDecl{Name: "whatever", Access: ast.AccessPublic},
				},
			},
		},
	}
	res := visitor.New(table, "App").VisitFile(f)
	assert.Empty(t, res.Bindings)
}
