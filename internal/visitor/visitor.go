// Package visitor implements the Declaration Visitor: it walks a parsed
// File, decides which declarations are importable, tracks enclosing-type
// context, and drives each importable declaration through signature
// building and lowering (spec.md §4.1). One declaration failing is
// reported and the walk continues with its siblings — the same
// report-and-continue shape the teacher's batch evaluation runner uses
// for a single benchmark case failing without aborting the run.
package visitor

import (
	"github.com/swiftlower/swiftlower/internal/ast"
	swifterrors "github.com/swiftlower/swiftlower/internal/errors"
	"github.com/swiftlower/swiftlower/internal/lowering"
	"github.com/swiftlower/swiftlower/internal/lowertype"
	"github.com/swiftlower/swiftlower/internal/signature"
	"github.com/swiftlower/swiftlower/internal/symtab"
)

// Binding is one importable declaration the visitor produced, paired with
// its fully lowered signature. Name is how the binding should be
// addressed in the generated cdecl symbol (spec.md §6).
type Binding struct {
	Name          string
	EnclosingType string // "" for free functions
	Lowered       *lowering.LoweredFunctionSignature
}

// Diagnostic is one warning or error the visitor collected while walking
// a File. Fatal reports (VIS004) also abort lowering of the declaration
// that produced them; non-fatal ones (VIS001, VIS003) are advisory only.
type Diagnostic struct {
	Report *swifterrors.Report
}

// Result is everything the visitor produced for one File.
type Result struct {
	Bindings    []Binding
	Diagnostics []Diagnostic
}

// Visitor walks declaration syntax, resolving types through resolver and
// lowering every importable declaration it finds. moduleName is the
// module the File's own type declarations belong to, used to look their
// NominalDecl back up in the symbol table (extensions of well-known
// types fall back to the Swift module).
type Visitor struct {
	resolver   symtab.Resolver
	engine     *lowering.Engine
	moduleName string
}

// New creates a Visitor backed by resolver, for declarations belonging
// to moduleName. The caller must have already Declare()d every TypeDecl
// in the File it intends to visit (cmd/swiftlower's buildTable does this
// before handing the Table to internal/driver).
func New(resolver symtab.Resolver, moduleName string) *Visitor {
	return &Visitor{resolver: resolver, engine: lowering.New(), moduleName: moduleName}
}

// VisitFile walks every top-level declaration in f and lowers each
// importable one. A declaration that fails lowering is recorded as a
// Diagnostic rather than aborting the walk (spec.md §7).
func (v *Visitor) VisitFile(f *ast.File) Result {
	var res Result

	for _, fn := range f.Funcs {
		v.visitFunc(fn, nil, &res)
	}

	for _, td := range f.Types {
		v.visitType(td, &res)
	}

	for _, gp := range f.GlobalProperties {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{Report: swifterrors.GlobalPropertyUnsupported(gp.Name)})
	}

	return res
}

func (v *Visitor) visitType(td *ast.TypeDecl, res *Result) {
	if !td.Access.IsPublic() {
		return
	}

	enclosing := v.resolveEnclosing(td)
	if enclosing == nil {
		return
	}

	for _, member := range td.Members {
		switch m := member.(type) {
		case *ast.FuncDecl:
			v.visitFunc(m, enclosing, res)
		case *ast.InitDecl:
			v.visitInit(m, enclosing, res)
		case *ast.PropertyDecl:
			v.visitProperty(m, enclosing, res)
		case *ast.DeinitDecl:
			// deinitializers are never importable; nothing to do.
		}
	}
}

// resolveEnclosing looks up (or, for a plain type declaration, assumes
// the symbol table already carries) the NominalDecl a member's self
// parameter should reference. Extensions resolve ExtendedTypeName; plain
// declarations resolve their own Name. Both go through the same
// module-qualified lookup the symbol table exposes for well-known types.
func (v *Visitor) resolveEnclosing(td *ast.TypeDecl) *lowertype.NominalDecl {
	table, ok := v.resolver.(*symtab.Table)
	if !ok {
		return nil
	}
	name := td.Name
	if td.Kind == ast.KindExtension {
		name = td.ExtendedTypeName
	}
	decl, ok := table.Lookup(v.moduleName, name)
	if !ok {
		decl, ok = table.Lookup(lowertype.SwiftModuleName, name)
	}
	if !ok {
		return nil
	}
	return decl
}

func (v *Visitor) visitFunc(fn *ast.FuncDecl, enclosing *lowertype.NominalDecl, res *Result) {
	if !fn.Access.IsPublic() {
		return
	}
	sig, err := signature.BuildFunction(fn, enclosing, v.resolver)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, diagnosticFor(err))
		return
	}
	v.lowerAndRecord(fn.Name, enclosingName(enclosing), sig, res)
}

func (v *Visitor) visitInit(in *ast.InitDecl, enclosing *lowertype.NominalDecl, res *Result) {
	if !in.Access.IsPublic() {
		return
	}
	if in.IsFailable {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{Report: swifterrors.FailableInitializerSkipped(enclosingName(enclosing))})
		return
	}
	sig, err := signature.BuildInit(in, enclosing, v.resolver)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, diagnosticFor(err))
		return
	}
	v.lowerAndRecord("init", enclosingName(enclosing), sig, res)
}

func (v *Visitor) visitProperty(p *ast.PropertyDecl, enclosing *lowertype.NominalDecl, res *Result) {
	if !p.Access.IsPublic() {
		return
	}
	if p.Type == nil {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{Report: swifterrors.UntypedPropertyDefaultedToVoid(p.Name)})
	}

	getter, err := signature.BuildPropertyGetter(p, enclosing, v.resolver)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, diagnosticFor(err))
	} else {
		v.lowerAndRecord(p.Name+"_get", enclosingName(enclosing), getter, res)
	}

	if !p.HasSetter {
		return
	}
	setter, err := signature.BuildPropertySetter(p, enclosing, v.resolver)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, diagnosticFor(err))
		return
	}
	v.lowerAndRecord(p.Name+"_set", enclosingName(enclosing), setter, res)
}

func (v *Visitor) lowerAndRecord(name, enclosingType string, sig *signature.FunctionSignature, res *Result) {
	declName := name
	if enclosingType != "" {
		declName = enclosingType + "." + name
	}
	lowered, err := v.engine.Lower(declName, sig)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, diagnosticFor(err))
		return
	}
	res.Bindings = append(res.Bindings, Binding{Name: declName, EnclosingType: enclosingType, Lowered: lowered})
}

func enclosingName(enclosing *lowertype.NominalDecl) string {
	if enclosing == nil {
		return ""
	}
	return enclosing.QualifiedName()
}

func diagnosticFor(err error) Diagnostic {
	if rep, ok := swifterrors.AsReport(err); ok {
		return Diagnostic{Report: rep}
	}
	return Diagnostic{Report: swifterrors.New(swifterrors.PhaseVisitor, swifterrors.VIS000, err.Error())}
}
