package symtab

import "github.com/swiftlower/swiftlower/internal/lowertype"

// registerWellKnown declares the standard-library nominals the lowering
// engine needs to recognize by name: the eight pointer families and the
// primitive numeric/Bool types, all in module "Swift" with no parent.
func registerWellKnown(t *Table) {
	pointerNames := []string{
		lowertype.UnsafeRawPointer,
		lowertype.UnsafeMutableRawPointer,
		lowertype.UnsafePointer,
		lowertype.UnsafeMutablePointer,
		lowertype.UnsafeBufferPointer,
		lowertype.UnsafeMutableBufferPointer,
		lowertype.UnsafeRawBufferPointer,
		lowertype.UnsafeMutableRawBufferPointer,
	}
	for _, name := range pointerNames {
		t.Declare(&lowertype.NominalDecl{Name: name, ModuleName: lowertype.SwiftModuleName, Kind: lowertype.Struct})
	}

	primitiveNames := []string{
		"Int8", "Int16", "Int32", "Int64",
		"UInt8", "UInt16", "UInt32", "UInt64",
		"Int", "UInt", "Float", "Double", "Bool",
	}
	for _, name := range primitiveNames {
		t.Declare(&lowertype.NominalDecl{Name: name, ModuleName: lowertype.SwiftModuleName, Kind: lowertype.Struct})
	}
}

// WellKnownPointer resolves a pointer-family nominal by name, preloaded
// with the given element generic argument if the family requires one.
func WellKnownPointer(t *Table, name string, elementArg lowertype.Type) (lowertype.Type, error) {
	var args []lowertype.Type
	if pf, ok := lowertype.LookupPointerFamily(name); ok && pf.RequiresElementType && elementArg != nil {
		args = []lowertype.Type{elementArg}
	}
	return t.ResolveNominal(lowertype.SwiftModuleName, name, args)
}
