package errors

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/swiftlower/swiftlower/internal/ast"
)

// Report is the canonical structured error type for the lowering pipeline.
// All error builders return a *Report, which can be wrapped as a ReportError
// to travel through ordinary Go error-handling paths.
type Report struct {
	Schema  string         `json:"schema"`         // Always "swiftlower.error/v1"
	Code    string         `json:"code"`           // Error code (LOW001, VIS002, ...)
	Phase   string         `json:"phase"`          // Phase: "lowering", "visitor", "signature"
	Message string         `json:"message"`        // Human-readable message
	Span    *ast.Span      `json:"span,omitempty"` // Source location (optional)
	Data    map[string]any `json:"data,omitempty"` // Structured data (declaration name, type, etc.)
	Fix     *Fix           `json:"fix,omitempty"`  // Suggested fix (optional)
}

// Fix is a suggested remediation attached to a Report.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// SchemaV1 is the schema string stamped on every Report.
const SchemaV1 = "swiftlower.error/v1"

// ReportError wraps a Report as an error so it survives errors.As()
// unwrapping through ordinary Go call chains.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport attempts to extract a Report from an error chain.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as a ReportError. Call sites should return
// errors.WrapReport(report) to preserve structure through `error` returns.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON converts a Report to JSON (compact or indented).
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// New builds a Report for the given phase/code/message.
func New(phase, code, message string) *Report {
	return &Report{Schema: SchemaV1, Phase: phase, Code: code, Message: message}
}

// WithSpan attaches a source span and returns the same Report for chaining.
func (r *Report) WithSpan(span ast.Span) *Report {
	r.Span = &span
	return r
}

// WithData attaches a structured data value and returns the same Report.
func (r *Report) WithData(key string, value any) *Report {
	if r.Data == nil {
		r.Data = map[string]any{}
	}
	r.Data[key] = value
	return r
}

// WithFix attaches a suggested fix and returns the same Report.
func (r *Report) WithFix(suggestion string, confidence float64) *Report {
	r.Fix = &Fix{Suggestion: suggestion, Confidence: confidence}
	return r
}

// UnhandledType builds a LOW001 report for a function- or optional-typed
// declaration the lowering engine cannot handle.
func UnhandledType(declName, typeDesc string) *Report {
	return New(PhaseLowering, LOW001, fmt.Sprintf("%s: unhandled type %s (function and optional types are not lowerable)", declName, typeDesc)).
		WithData("declaration", declName).
		WithData("type", typeDesc)
}

// InoutNotSupported builds a LOW002 report for `inout` applied to a primitive.
func InoutNotSupported(declName, paramName, typeDesc string) *Report {
	return New(PhaseLowering, LOW002, fmt.Sprintf("%s: inout not supported on primitive parameter %q of type %s", declName, paramName, typeDesc)).
		WithData("declaration", declName).
		WithData("parameter", paramName).
		WithData("type", typeDesc)
}

// UnresolvedType builds a LOW003 report for a syntactic type the symbol
// table could not resolve.
func UnresolvedType(declName, syntax string) *Report {
	return New(PhaseSignature, LOW003, fmt.Sprintf("%s: could not resolve type %q", declName, syntax)).
		WithData("declaration", declName).
		WithData("syntax", syntax)
}

// ImproperResultLowering builds a LOW004 internal-invariant report.
func ImproperResultLowering(declName string) *Report {
	return New(PhaseLowering, LOW004, fmt.Sprintf("%s: internal invariant violated during result lowering", declName)).
		WithData("declaration", declName)
}

// FailableInitializerSkipped builds a VIS001 warning report.
func FailableInitializerSkipped(enclosingType string) *Report {
	return New(PhaseVisitor, VIS001, fmt.Sprintf("%s: failable initializer skipped (init? is not importable)", enclosingType)).
		WithData("enclosingType", enclosingType)
}

// GlobalPropertyUnsupported builds a VIS002 report.
func GlobalPropertyUnsupported(propertyName string) *Report {
	return New(PhaseVisitor, VIS002, fmt.Sprintf("global property %q is not importable", propertyName)).
		WithData("property", propertyName)
}

// UntypedPropertyDefaultedToVoid builds a VIS003 warning report.
func UntypedPropertyDefaultedToVoid(propertyName string) *Report {
	return New(PhaseVisitor, VIS003, fmt.Sprintf("property %q has no explicit type annotation; defaulting its logical result to void", propertyName)).
		WithData("property", propertyName)
}

// InitializerOutsideNominal builds a fatal VIS004 report.
func InitializerOutsideNominal() *Report {
	return New(PhaseVisitor, VIS004, "initializer declared outside any enclosing nominal type")
}
