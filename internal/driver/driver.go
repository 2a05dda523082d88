package driver

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/swiftlower/swiftlower/internal/ast"
	"github.com/swiftlower/swiftlower/internal/cabi"
	swifterrors "github.com/swiftlower/swiftlower/internal/errors"
	"github.com/swiftlower/swiftlower/internal/report"
	"github.com/swiftlower/swiftlower/internal/symtab"
	"github.com/swiftlower/swiftlower/internal/thunk"
	"github.com/swiftlower/swiftlower/internal/visitor"
)

// Artifact bundles everything produced for one importable declaration:
// the lowered signature, its C declaration, and its thunk body.
type Artifact struct {
	Binding   visitor.Binding
	SymbolName string
	CFunction *cabi.CFunction
	Body      *thunk.Body
}

// Driver runs the full pipeline over one or more Files sharing a symbol
// table, producing artifacts and a run report.
type Driver struct {
	cfg   *Config
	table *symtab.Table
}

var lowerCaser = cases.Lower(language.Und)

// New creates a Driver over table, configured by cfg. SymbolPrefix is
// normalized to lowercase: cdecl symbols are conventionally
// lowercase, and a config authored with a mixed-case prefix (copy-pasted
// from a Swift type name, say) shouldn't produce a mixed-case thunk
// symbol.
func New(cfg *Config, table *symtab.Table) *Driver {
	normalized := *cfg
	normalized.SymbolPrefix = lowerCaser.String(cfg.SymbolPrefix)
	return &Driver{cfg: &normalized, table: table}
}

// Run visits every declaration in files and lowers each importable one
// into an Artifact, fanning out across cfg.MaxConcurrent goroutines when
// greater than one (spec.md §5's stateless-engine guarantee is what
// makes this safe: the symbol table is read-only once construction
// finishes, and no other state is shared across declarations).
func (d *Driver) Run(files []*ast.File) ([]Artifact, *report.Run) {
	v := visitor.New(d.table, d.cfg.ModuleName)
	run := report.New()

	var bindings []visitor.Binding
	for _, f := range files {
		res := v.VisitFile(f)
		bindings = append(bindings, res.Bindings...)
		for _, diag := range res.Diagnostics {
			run.AddDiagnostic(declNameFor(diag), diag.Report)
		}
	}

	artifacts := make([]Artifact, len(bindings))
	errs := make([]error, len(bindings))

	if d.cfg.MaxConcurrent <= 1 {
		for i, b := range bindings {
			artifacts[i], errs[i] = d.build(b)
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, d.cfg.MaxConcurrent)
		for i, b := range bindings {
			wg.Add(1)
			go func(idx int, bnd visitor.Binding) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				artifacts[idx], errs[idx] = d.build(bnd)
			}(i, b)
		}
		wg.Wait()
	}

	var ok []Artifact
	for i, a := range artifacts {
		if errs[i] != nil {
			run.AddDiagnostic(bindings[i].Name, reportFor(bindings[i].Name, errs[i]))
			continue
		}
		run.AddLowered(bindings[i].Name)
		ok = append(ok, a)
	}

	return ok, run
}

func (d *Driver) build(b visitor.Binding) (Artifact, error) {
	symbolName := d.cfg.SymbolPrefix + strings.ToLower(strings.ReplaceAll(b.Name, ".", "_")) + "_c"

	cfn, err := cabi.Project(symbolName, b.Lowered)
	if err != nil {
		return Artifact{}, fmt.Errorf("cabi: %w", err)
	}

	methodName := b.Name
	if b.EnclosingType != "" {
		methodName = methodName[len(b.EnclosingType)+1:]
	}
	body, err := thunk.Assemble(methodName, b.Lowered)
	if err != nil {
		return Artifact{}, fmt.Errorf("thunk: %w", err)
	}

	return Artifact{Binding: b, SymbolName: symbolName, CFunction: cfn, Body: body}, nil
}

func declNameFor(diag visitor.Diagnostic) string {
	if diag.Report == nil {
		return "?"
	}
	if v, ok := diag.Report.Data["declaration"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	if v, ok := diag.Report.Data["property"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	if v, ok := diag.Report.Data["enclosingType"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return diag.Report.Code
}

// reportFor converts the build stage's plain wrapped error into a
// *Report for the run summary. cabi/thunk failures at this stage are
// internal invariant violations (the lowering engine already rejected
// anything a well-formed declaration could produce), so they're reported
// under the internal-invariant code LOW004 rather than a code of their own.
func reportFor(declName string, err error) *swifterrors.Report {
	if rep, ok := swifterrors.AsReport(err); ok {
		return rep
	}
	return swifterrors.New(swifterrors.PhaseLowering, swifterrors.LOW004, fmt.Sprintf("%s: %v", declName, err)).
		WithData("declaration", declName)
}
