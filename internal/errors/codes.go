// Package errors provides centralized, structured error reporting for the
// lowering pipeline. Every error surfaced to a caller is a *Report: a
// stable code, the phase that raised it, a human-readable message, and
// optional source span / structured data / suggested fix — the same
// shape used for a single declaration failing without aborting the run
// (spec.md §7: "one declaration failing is logged ... the visitor
// continues with siblings").
package errors

// Error code constants, grouped by phase. Each documents the condition in
// spec.md §7 it corresponds to.
const (
	// ============================================================================
	// Lowering Engine Errors (LOW###)
	// ============================================================================

	// LOW001 indicates a function- or optional-typed parameter/result was
	// encountered; both are unsupported by the lowering engine (spec.md §3, §4.3).
	LOW001 = "LOW001"

	// LOW002 indicates `inout` was applied to a primitive scalar parameter.
	LOW002 = "LOW002"

	// LOW003 indicates the symbol table could not resolve a syntactic type.
	LOW003 = "LOW003"

	// LOW004 indicates an internal invariant violation in indirect-result
	// selection (spec.md §4.3 step 4) — should be unreachable.
	LOW004 = "LOW004"

	// ============================================================================
	// Declaration Visitor Errors/Warnings (VIS###)
	// ============================================================================

	// VIS000 wraps an error raised outside the Report builders below (e.g.
	// a Resolver implementation returning a plain error) so it still
	// travels through the visitor's diagnostic list uniformly.
	VIS000 = "VIS000"

	// VIS001 is a warning: a failable initializer (`init?`) was skipped.
	VIS001 = "VIS001"

	// VIS002 indicates a global (module-scope) property was encountered;
	// unsupported, reported as a structured error rather than a fatal panic
	// (SPEC_FULL.md §10 open-question decision).
	VIS002 = "VIS002"

	// VIS003 is a warning: a property binding has no explicit type
	// annotation; its logical result defaults to void (SPEC_FULL.md §10).
	VIS003 = "VIS003"

	// VIS004 indicates an initializer declaration was found outside any
	// enclosing nominal type — a programmer-invariant violation, fatal.
	VIS004 = "VIS004"
)

// Phase names used in Report.Phase.
const (
	PhaseLowering  = "lowering"
	PhaseVisitor   = "visitor"
	PhaseSignature = "signature"
)
