package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/swiftlower/swiftlower/internal/ast"
)

// declFile is the CLI's stand-in for the syntax tree API spec.md §6
// assumes is already available: a YAML-serialized declaration set, the
// smallest input format that exercises the pipeline end to end without
// writing a Language S parser (out of scope).
type declFile struct {
	ModuleName string      `yaml:"module_name"`
	Types      []typeSpec  `yaml:"types"`
	Funcs      []funcSpec  `yaml:"functions"`
}

type typeSpec struct {
	Name   string     `yaml:"name"`
	Kind   string     `yaml:"kind"` // class | actor | struct | enum | protocol
	Access string     `yaml:"access"`
	Funcs  []funcSpec `yaml:"methods"`
}

type funcSpec struct {
	Name       string       `yaml:"name"`
	Access     string       `yaml:"access"`
	Static     bool         `yaml:"static"`
	Mutating   bool         `yaml:"mutating"`
	Parameters []paramSpec  `yaml:"parameters"`
	Result     *typeRefSpec `yaml:"result"`
}

type paramSpec struct {
	Label   string      `yaml:"label"`
	Name    string      `yaml:"name"`
	Type    typeRefSpec `yaml:"type"`
	Inout   bool        `yaml:"inout"`
}

type typeRefSpec struct {
	Name   string `yaml:"name"`
	Module string `yaml:"module"`
}

func loadDeclFile(path string) (*declFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read declaration file %q: %w", path, err)
	}
	var df declFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("cannot parse declaration file %q: %w", path, err)
	}
	return &df, nil
}

func accessModifier(s string) ast.AccessModifier {
	switch s {
	case "public":
		return ast.AccessPublic
	case "open":
		return ast.AccessOpen
	case "private":
		return ast.AccessPrivate
	case "fileprivate":
		return ast.AccessFilePrivate
	default:
		return ast.AccessInternal
	}
}

func nominalKind(s string) ast.NominalKindSyntax {
	switch s {
	case "actor":
		return ast.KindActor
	case "struct":
		return ast.KindStruct
	case "enum":
		return ast.KindEnum
	case "protocol":
		return ast.KindProtocol
	default:
		return ast.KindClass
	}
}

func (p paramSpec) toAST() ast.ParameterSyntax {
	label := p.Label
	if label == "" {
		label = p.Name
	}
	return ast.ParameterSyntax{
		ArgumentLabel: label,
		ParameterName: p.Name,
		Type:          typeSyntax(p.Type),
		IsInout:       p.Inout,
	}
}

func typeSyntax(t typeRefSpec) ast.TypeSyntax {
	return ast.TypeSyntax{Name: t.Name, ModuleName: t.Module}
}

func (f funcSpec) toAST() *ast.FuncDecl {
	params := make([]ast.ParameterSyntax, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.toAST()
	}
	var result *ast.TypeSyntax
	if f.Result != nil {
		ts := typeSyntax(*f.Result)
		result = &ts
	}
	return &ast.FuncDecl{
		Name:       f.Name,
		Access:     accessModifier(f.Access),
		IsStatic:   f.Static,
		IsMutating: f.Mutating,
		Parameters: params,
		ResultType: result,
	}
}

// toFile converts the declaration file into the ast.File the driver
// expects. It does not touch the symbol table: buildTable (main.go)
// declares every type name so the visitor can resolve enclosing-type
// context for methods.
func (df *declFile) toFile() *ast.File {
	f := &ast.File{Path: "<decl-file>"}
	for _, fn := range df.Funcs {
		f.Funcs = append(f.Funcs, fn.toAST())
	}
	for _, ts := range df.Types {
		td := &ast.TypeDecl{
			Kind:   nominalKind(ts.Kind),
			Name:   ts.Name,
			Access: accessModifier(ts.Access),
		}
		for _, m := range ts.Funcs {
			td.Members = append(td.Members, m.toAST())
		}
		f.Types = append(f.Types, td)
	}
	return f
}
