// Package thunk assembles the cdecl thunk's body expression tree from a
// LoweredFunctionSignature: argument reconstruction, self/receiver
// rendering, and return-mode selection (spec.md §4.5). Textual
// pretty-printing of the tree is a mechanical traversal left to callers
// (spec.md §1 scope); String() here renders the language-neutral textual
// intent the spec's conversion-step rendering rules describe, close
// enough to read as real thunk source in diagnostics and tests.
package thunk

import (
	"fmt"
	"strings"

	"github.com/swiftlower/swiftlower/internal/lowertype"
)

// Expr is the sum type over thunk body expressions.
type Expr interface {
	String() string
	exprNode()
}

// Name is a bound identifier — a cdecl parameter name.
type Name struct{ Value string }

func (n Name) exprNode()      {}
func (n Name) String() string { return n.Value }

// TypedPointerExpr interprets a raw pointer as a typed pointer to SwiftType.
type TypedPointerExpr struct {
	Inner     Expr
	SwiftType lowertype.Type
}

func (t TypedPointerExpr) exprNode() {}
func (t TypedPointerExpr) String() string {
	return fmt.Sprintf("%s.assumingMemoryBound(to: %s.self)", t.Inner, t.SwiftType)
}

// DereferenceExpr dereferences the pointer produced by Inner.
type DereferenceExpr struct{ Inner Expr }

func (d DereferenceExpr) exprNode()      {}
func (d DereferenceExpr) String() string { return d.Inner.String() + ".pointee" }

// AddressOfExpr passes the address of Inner (PassIndirectly rendering).
type AddressOfExpr struct{ Inner Expr }

func (a AddressOfExpr) exprNode()      {}
func (a AddressOfExpr) String() string { return "&" + a.Inner.String() }

// UnsafeCastExpr reinterprets Inner as a reference of type SwiftType.
type UnsafeCastExpr struct {
	Inner     Expr
	SwiftType lowertype.Type
}

func (u UnsafeCastExpr) exprNode() {}
func (u UnsafeCastExpr) String() string {
	return fmt.Sprintf("Unmanaged<%s>.fromOpaque(%s).takeUnretainedValue()", u.SwiftType, u.Inner)
}

// LabeledArg pairs an argument label (may be empty) with its expression.
type LabeledArg struct {
	Label string
	Expr  Expr
}

func (a LabeledArg) String() string {
	if a.Label == "" {
		return a.Expr.String()
	}
	return fmt.Sprintf("%s: %s", a.Label, a.Expr)
}

// InitializeExpr calls SwiftType's named-argument initializer.
type InitializeExpr struct {
	SwiftType lowertype.Type
	Args      []LabeledArg
}

func (i InitializeExpr) exprNode() {}
func (i InitializeExpr) String() string {
	parts := make([]string, len(i.Args))
	for idx, a := range i.Args {
		parts[idx] = a.String()
	}
	return fmt.Sprintf("%s(%s)", i.SwiftType, strings.Join(parts, ", "))
}

// TupleExpr builds a tuple from its rendered elements.
type TupleExpr struct{ Elements []Expr }

func (t TupleExpr) exprNode() {}
func (t TupleExpr) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// CallExpr is the call into the original declaration: a free-function
// call when Receiver is nil, or a method call otherwise.
type CallExpr struct {
	Receiver Expr // nil for free functions / static members called at module scope
	Method   string
	Args     []LabeledArg
}

func (c CallExpr) exprNode() {}
func (c CallExpr) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	call := fmt.Sprintf("%s(%s)", c.Method, strings.Join(parts, ", "))
	if c.Receiver == nil {
		return call
	}
	return fmt.Sprintf("%s.%s", c.Receiver, call)
}

// Stmt is the sum type over the three thunk body shapes spec.md §4.5 names.
type Stmt interface {
	String() string
	stmtNode()
}

// CallStmt is a bare call statement (void cdecl result, void original result).
type CallStmt struct{ Call CallExpr }

func (s CallStmt) stmtNode()      {}
func (s CallStmt) String() string { return s.Call.String() }

// AssignStmt is an indirect return: the call's value is assigned into the
// caller-provided result storage.
type AssignStmt struct {
	LHS Expr
	RHS CallExpr
}

func (s AssignStmt) stmtNode()      {}
func (s AssignStmt) String() string { return fmt.Sprintf("%s = %s", s.LHS, s.RHS) }

// ReturnStmt returns the call's value directly.
type ReturnStmt struct{ Value CallExpr }

func (s ReturnStmt) stmtNode()      {}
func (s ReturnStmt) String() string { return "return " + s.Value.String() }

// Body is the complete thunk body: exactly one of the three Stmt shapes.
type Body struct {
	Stmt Stmt
}

func (b *Body) String() string { return b.Stmt.String() }
