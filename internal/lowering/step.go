package lowering

import "github.com/swiftlower/swiftlower/internal/lowertype"

// ConversionStep is a tree describing how to reconstruct one original
// argument (or the result) from one or more C-ABI placeholders. It is a
// closed sum type over the eight cases spec.md §3 names; the unexported
// marker keeps type switches over it exhaustive.
type ConversionStep interface {
	stepNode()
}

// Placeholder is the (sole, or pre-explosion grouped) lowered value.
type Placeholder struct{}

func (Placeholder) stepNode() {}

// ExplodedComponent picks one field — "pointer" or "count" — of a
// multi-parameter group produced by buffer-pointer lowering.
type ExplodedComponent struct {
	Step      ConversionStep
	Component string // "pointer" | "count"
}

func (ExplodedComponent) stepNode() {}

const (
	ComponentPointer = "pointer"
	ComponentCount   = "count"
)

// TypedPointer reinterprets a raw pointer as a typed pointer to SwiftType.
type TypedPointer struct {
	Step      ConversionStep
	SwiftType lowertype.Type
}

func (TypedPointer) stepNode() {}

// Pointee dereferences the pointer produced by Step.
type Pointee struct {
	Step ConversionStep
}

func (Pointee) stepNode() {}

// PassIndirectly marks that the reconstructed value is read through an
// indirect pointer (the thunk passes its address, rather than itself).
type PassIndirectly struct {
	Step ConversionStep
}

func (PassIndirectly) stepNode() {}

// UnsafeCastPointer reinterprets an opaque reference-sized word as a
// reference to SwiftType (classes and actors).
type UnsafeCastPointer struct {
	Step      ConversionStep
	SwiftType lowertype.Type
}

func (UnsafeCastPointer) stepNode() {}

// LabeledArgument pairs an argument label with the step reconstructing it,
// used by Initialize.
type LabeledArgument struct {
	Label string
	Step  ConversionStep
}

// Initialize constructs SwiftType via a named-argument initializer.
type Initialize struct {
	SwiftType lowertype.Type
	Args      []LabeledArgument
}

func (Initialize) stepNode() {}

// Tuplify builds a tuple from its elements' reconstructions, in order.
type Tuplify struct {
	Steps []ConversionStep
}

func (Tuplify) stepNode() {}
