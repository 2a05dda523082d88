package lowertype

// PointerFamily classifies one of the eight well-known unsafe-pointer
// nominals. RequiresElementType is true for the typed pointer and typed
// buffer-pointer families (they carry a generic element argument) and
// false for the raw ones; Mutable distinguishes
// the "Mutable" spelling; HasCount is true for the buffer-pointer
// families, which lower to a (pointer, count) pair.
type PointerFamily struct {
	Name                string
	RequiresElementType bool
	Mutable             bool
	HasCount            bool
}

// Well-known pointer-family names, exactly as spec.md §3 lists them.
const (
	UnsafeRawPointer               = "UnsafeRawPointer"
	UnsafeMutableRawPointer        = "UnsafeMutableRawPointer"
	UnsafePointer                  = "UnsafePointer"
	UnsafeMutablePointer           = "UnsafeMutablePointer"
	UnsafeBufferPointer            = "UnsafeBufferPointer"
	UnsafeMutableBufferPointer     = "UnsafeMutableBufferPointer"
	UnsafeRawBufferPointer         = "UnsafeRawBufferPointer"
	UnsafeMutableRawBufferPointer  = "UnsafeMutableRawBufferPointer"
)

// SwiftModuleName is the module every well-known nominal below belongs to.
const SwiftModuleName = "Swift"

var pointerFamilies = map[string]PointerFamily{
	UnsafeRawPointer:              {Name: UnsafeRawPointer, RequiresElementType: false, Mutable: false, HasCount: false},
	UnsafeMutableRawPointer:       {Name: UnsafeMutableRawPointer, RequiresElementType: false, Mutable: true, HasCount: false},
	UnsafePointer:                 {Name: UnsafePointer, RequiresElementType: true, Mutable: false, HasCount: false},
	UnsafeMutablePointer:          {Name: UnsafeMutablePointer, RequiresElementType: true, Mutable: true, HasCount: false},
	UnsafeBufferPointer:           {Name: UnsafeBufferPointer, RequiresElementType: true, Mutable: false, HasCount: true},
	UnsafeMutableBufferPointer:    {Name: UnsafeMutableBufferPointer, RequiresElementType: true, Mutable: true, HasCount: true},
	UnsafeRawBufferPointer:        {Name: UnsafeRawBufferPointer, RequiresElementType: false, Mutable: false, HasCount: true},
	UnsafeMutableRawBufferPointer: {Name: UnsafeMutableRawBufferPointer, RequiresElementType: false, Mutable: true, HasCount: true},
}

// LookupPointerFamily returns the classification for a well-known pointer
// nominal name, or false if the name is not one of the eight families.
func LookupPointerFamily(name string) (PointerFamily, bool) {
	pf, ok := pointerFamilies[name]
	return pf, ok
}

// PrimitiveKind enumerates the fixed-width (or pointer-sized) numeric
// primitives the engine passes through unchanged at the C ABI boundary.
type PrimitiveKind int

const (
	Int8 PrimitiveKind = iota
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	IntPointerSized // Swift's "Int" / "UInt" — maps to the host pointer-sized integer
	UIntPointerSized
	Float32
	Float64
	Bool
)

var primitiveNames = map[string]PrimitiveKind{
	"Int8":    Int8,
	"Int16":   Int16,
	"Int32":   Int32,
	"Int64":   Int64,
	"UInt8":   UInt8,
	"UInt16":  UInt16,
	"UInt32":  UInt32,
	"UInt64":  UInt64,
	"Int":     IntPointerSized,
	"UInt":    UIntPointerSized,
	"Float":   Float32,
	"Double":  Float64,
	"Bool":    Bool,
}

// LookupPrimitive returns the primitive classification for a well-known
// "Swift" module nominal name with no generic arguments, or false.
func LookupPrimitive(name string) (PrimitiveKind, bool) {
	pk, ok := primitiveNames[name]
	return pk, ok
}

// IsPointerSizedInt reports whether a primitive lowers to the host's
// pointer-sized integer type (Swift's Int / UInt).
func (k PrimitiveKind) IsPointerSizedInt() bool {
	return k == IntPointerSized || k == UIntPointerSized
}

// Canonical, context-free declarations for the nominals the lowering
// engine itself synthesizes (cdecl raw-pointer and Int parameters). These
// are value-equal to whatever a real symbol table would hand back for the
// same well-known name; the engine doesn't need a live Table to mint them.
var (
	rawPointerDecl        = &NominalDecl{Name: UnsafeRawPointer, ModuleName: SwiftModuleName, Kind: Struct}
	mutableRawPointerDecl = &NominalDecl{Name: UnsafeMutableRawPointer, ModuleName: SwiftModuleName, Kind: Struct}
	intDecl               = &NominalDecl{Name: "Int", ModuleName: SwiftModuleName, Kind: Struct}
)

// RawPointerType returns the canonical UnsafeRawPointer or
// UnsafeMutableRawPointer nominal type used for every cdecl pointer
// parameter the engine synthesizes.
func RawPointerType(mutable bool) Type {
	if mutable {
		return Nominal{Decl: mutableRawPointerDecl}
	}
	return Nominal{Decl: rawPointerDecl}
}

// IntType returns the canonical Int nominal type used for buffer-pointer
// count parameters.
func IntType() Type {
	return Nominal{Decl: intDecl}
}
