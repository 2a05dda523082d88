// Package symtab provides the external-collaborator surface spec.md §6
// assumes is already available: a symbol table resolving a syntactic type
// to a lowertype.Type, and a well-known-type registry mapping the handful
// of standard-library names the engine special-cases to nominal
// declaration handles. Source parsing and symbol resolution proper are
// out of scope (spec.md §1); this package ships the smallest in-memory
// implementation that lets the rest of the pipeline run end to end.
package symtab

import (
	"fmt"

	"github.com/swiftlower/swiftlower/internal/lowertype"
)

// Resolver resolves a syntactic type reference to a lowertype.Type.
// A real front-end would back this with full name lookup and generic
// substitution; the in-memory Table below is sufficient for tests and
// for driving the engine over hand-built declaration syntax.
type Resolver interface {
	ResolveNominal(moduleName, name string, genericArgs []lowertype.Type) (lowertype.Type, error)
	ResolveTuple(elements []lowertype.Type) lowertype.Type
	ResolveMetatype(of lowertype.Type) lowertype.Type
}

// Table is a flat, map-backed Resolver plus declaration store, modeled on
// the teacher's map-backed environment lookups (internal/types.TypeEnv in
// the corpus this project was adapted from).
type Table struct {
	decls map[string]*lowertype.NominalDecl // keyed by "module.name"
}

// New creates an empty Table and pre-registers the well-known nominals.
func New() *Table {
	t := &Table{decls: map[string]*lowertype.NominalDecl{}}
	registerWellKnown(t)
	return t
}

func key(moduleName, name string) string { return moduleName + "." + name }

// Declare registers a nominal declaration so later ResolveNominal calls
// for the same (module, name) succeed.
func (t *Table) Declare(decl *lowertype.NominalDecl) {
	t.decls[key(decl.ModuleName, decl.Name)] = decl
}

// Lookup returns a previously declared nominal by module and name.
func (t *Table) Lookup(moduleName, name string) (*lowertype.NominalDecl, bool) {
	d, ok := t.decls[key(moduleName, name)]
	return d, ok
}

// ResolveNominal implements Resolver.
func (t *Table) ResolveNominal(moduleName, name string, genericArgs []lowertype.Type) (lowertype.Type, error) {
	decl, ok := t.Lookup(moduleName, name)
	if !ok {
		return nil, fmt.Errorf("unresolved nominal %s.%s", moduleName, name)
	}
	return lowertype.Nominal{Decl: decl, GenericArgs: genericArgs}, nil
}

// ResolveTuple implements Resolver.
func (t *Table) ResolveTuple(elements []lowertype.Type) lowertype.Type {
	return lowertype.Tuple{Elements: elements}
}

// ResolveMetatype implements Resolver.
func (t *Table) ResolveMetatype(of lowertype.Type) lowertype.Type {
	return lowertype.Metatype{Of: of}
}
