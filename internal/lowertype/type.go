// Package lowertype is the canonical representation of Language S types
// consumed by the lowering engine: nominal references, tuples, metatypes,
// function types, and optionals, plus classification of the well-known
// standard-library nominals the engine needs to special-case (pointer
// families, Int, Void).
package lowertype

import (
	"fmt"
	"strings"
)

// Type is the sum type over the shapes the engine can see. Concrete cases
// are Nominal, Tuple, Metatype, Function, and Optional; the unexported
// marker method keeps the set closed so a type switch can be exhaustive.
type Type interface {
	String() string
	typeNode()
}

// NominalKind classifies a declared nominal type.
type NominalKind int

const (
	Class NominalKind = iota
	Actor
	Struct
	Enum
	Protocol
)

func (k NominalKind) String() string {
	switch k {
	case Class:
		return "class"
	case Actor:
		return "actor"
	case Struct:
		return "struct"
	case Enum:
		return "enum"
	case Protocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// IsReferenceKind reports whether instances of this kind are represented
// by a retained, reference-sized identity word rather than by value.
func (k NominalKind) IsReferenceKind() bool {
	return k == Class || k == Actor
}

// NominalDecl is a handle into the symbol table's flat declaration store.
// Nominal.Decl values are produced and owned by the symbol table; the
// type model only ever holds a pointer to one.
type NominalDecl struct {
	Name       string
	ModuleName string
	Parent     *NominalDecl // enclosing type, if nested; nil otherwise
	Kind       NominalKind
}

func (d *NominalDecl) QualifiedName() string {
	if d.Parent != nil {
		return d.Parent.QualifiedName() + "." + d.Name
	}
	return d.Name
}

// Nominal is a reference to a declared type, optionally generic.
type Nominal struct {
	Decl        *NominalDecl
	GenericArgs []Type
}

func (n Nominal) typeNode() {}
func (n Nominal) String() string {
	if len(n.GenericArgs) == 0 {
		return n.Decl.QualifiedName()
	}
	args := make([]string, len(n.GenericArgs))
	for i, a := range n.GenericArgs {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", n.Decl.QualifiedName(), strings.Join(args, ", "))
}

// Tuple is an ordered sequence of element types. The empty tuple is the
// canonical representation of void.
type Tuple struct {
	Elements []Type
}

func (t Tuple) typeNode() {}
func (t Tuple) String() string {
	if len(t.Elements) == 0 {
		return "()"
	}
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// IsVoid reports whether this tuple is the canonical empty-tuple void.
func (t Tuple) IsVoid() bool { return len(t.Elements) == 0 }

// Void is the canonical void type: the empty tuple.
var Void Type = Tuple{}

// Metatype is the "type of a type" of an instance type, e.g. Foo.Type.
type Metatype struct {
	Of Type
}

func (m Metatype) typeNode()     {}
func (m Metatype) String() string { return m.Of.String() + ".Type" }

// Function is a closure/function type. Lowering always rejects these;
// the variant exists so rejection is a type-switch case, not a special path.
type Function struct {
	Params []Type
	Result Type
}

func (f Function) typeNode() {}
func (f Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), f.Result.String())
}

// Optional wraps a type marked "T?" in source. Lowering always rejects
// these, for the same reason as Function.
type Optional struct {
	Of Type
}

func (o Optional) typeNode()     {}
func (o Optional) String() string { return o.Of.String() + "?" }
