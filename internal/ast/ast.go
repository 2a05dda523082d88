// Package ast represents the declaration-level syntax tree the lowering
// pipeline consumes. Full parsing of Language S is out of scope; these
// nodes model exactly the shapes a syntax tree API would hand the
// Declaration Visitor: type declarations, functions, initializers, and
// properties, along with enough syntactic detail (parameter labels,
// inout marks, trivia) to build a FunctionSignature from them.
package ast

import (
	"fmt"
)

// Node is the base interface for all declaration-syntax nodes.
type Node interface {
	String() string
	Position() Pos
}

// Pos represents a position in the source code.
type Pos struct {
	Line   int
	Column int
	File   string
}

// Span represents a range in source code.
type Span struct {
	Start Pos
	End   Pos
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// TypeSyntax is an unresolved, syntactic reference to a type: a name plus
// optional generic arguments, as written in source. The symbol table
// resolves one of these to a lowertype.Type.
type TypeSyntax struct {
	Name         string
	ModuleName   string // empty if not module-qualified in source
	GenericArgs  []TypeSyntax
	IsTuple      bool // true: Name/ModuleName/GenericArgs are ignored, Elements is authoritative
	Elements     []TypeSyntax
	IsMetatype   bool // "T.Type" in source; GenericArgs[0] names T if present, else Name/ModuleName do
	IsFunction   bool // closure/function type syntax — unsupported by lowering, kept for rejection
	IsOptional   bool // "T?" in source — unsupported by lowering, kept for rejection
	Pos          Pos
}

func (t TypeSyntax) String() string {
	switch {
	case t.IsTuple:
		return fmt.Sprintf("(tuple of %d)", len(t.Elements))
	case t.IsMetatype:
		return fmt.Sprintf("%s.Type", t.Name)
	case t.IsOptional:
		return fmt.Sprintf("%s?", t.Name)
	default:
		return t.Name
	}
}

// NominalKindSyntax mirrors the syntactic keyword introducing a type.
type NominalKindSyntax int

const (
	KindClass NominalKindSyntax = iota
	KindActor
	KindStruct
	KindEnum
	KindProtocol
	KindExtension
)

// ParameterSyntax is one declared parameter in source order.
type ParameterSyntax struct {
	ArgumentLabel string // "_" in source means no label; empty string means label == name
	ParameterName string
	Type          TypeSyntax
	IsInout       bool
	Pos           Pos
}

func (p ParameterSyntax) String() string {
	return fmt.Sprintf("%s %s: %s", p.ArgumentLabel, p.ParameterName, p.Type.Name)
}

func (p ParameterSyntax) Position() Pos { return p.Pos }

// AccessModifier is the declared visibility of a declaration.
type AccessModifier int

const (
	AccessInternal AccessModifier = iota
	AccessPrivate
	AccessFilePrivate
	AccessPublic
	AccessOpen
)

// IsPublic reports whether a declaration carrying this modifier is importable.
func (a AccessModifier) IsPublic() bool {
	return a == AccessPublic || a == AccessOpen
}

// FuncDecl is a free function or method declaration.
type FuncDecl struct {
	Name          string
	Access        AccessModifier
	IsStatic      bool
	IsClassMethod bool
	IsMutating    bool
	Parameters    []ParameterSyntax
	ResultType    *TypeSyntax // nil: no return clause (void)
	Pos           Pos
}

func (f *FuncDecl) String() string   { return fmt.Sprintf("func %s(...)", f.Name) }
func (f *FuncDecl) Position() Pos    { return f.Pos }
func (f *FuncDecl) declNode()        {}

// InitDecl is an initializer declaration.
type InitDecl struct {
	Access     AccessModifier
	IsFailable bool
	Parameters []ParameterSyntax
	Pos        Pos
}

func (i *InitDecl) String() string { return "init(...)" }
func (i *InitDecl) Position() Pos  { return i.Pos }
func (i *InitDecl) declNode()      {}

// PropertyDecl is a stored or computed property binding.
type PropertyDecl struct {
	Name        string
	Access      AccessModifier
	Type        *TypeSyntax // nil: no explicit type annotation (see SPEC_FULL §10 open question)
	HasSetter   bool        // var with a setter vs. let / get-only var
	IsStatic    bool
	MangledName string // from leading "MANGLED NAME: <string>" trivia, if present
	Pos         Pos
}

func (p *PropertyDecl) String() string { return fmt.Sprintf("var %s", p.Name) }
func (p *PropertyDecl) Position() Pos  { return p.Pos }
func (p *PropertyDecl) declNode()      {}

// DeinitDecl is a deinitializer; the visitor ignores these entirely.
type DeinitDecl struct {
	Pos Pos
}

func (d *DeinitDecl) String() string { return "deinit" }
func (d *DeinitDecl) Position() Pos  { return d.Pos }
func (d *DeinitDecl) declNode()      {}

// MemberDecl is any declaration that can appear inside a TypeDecl body.
type MemberDecl interface {
	Node
	declNode()
}

// TypeDecl is a class/struct/enum/protocol declaration or an extension.
// Extensions carry ExtendedTypeName instead of Name; the visitor resolves
// that name via the symbol table to determine the enclosing nominal.
type TypeDecl struct {
	Kind             NominalKindSyntax
	Name             string // declared type name; empty for extensions
	ExtendedTypeName string // populated only when Kind == KindExtension
	Access           AccessModifier
	Members          []MemberDecl
	Pos              Pos
}

func (t *TypeDecl) String() string {
	if t.Kind == KindExtension {
		return fmt.Sprintf("extension %s", t.ExtendedTypeName)
	}
	return fmt.Sprintf("type %s", t.Name)
}
func (t *TypeDecl) Position() Pos { return t.Pos }

// File is a complete source file: top-level types, extensions, functions,
// and (unsupported) global properties.
type File struct {
	Path             string
	Types            []*TypeDecl
	Funcs            []*FuncDecl
	GlobalProperties []*PropertyDecl
	Pos              Pos
}

func (f *File) String() string  { return fmt.Sprintf("file %s", f.Path) }
func (f *File) Position() Pos   { return f.Pos }
