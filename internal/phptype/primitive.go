package phptype

import "slices"

// primitives are doc comment types that never receive a namespace.
var primitives = []string{
	"null",
	"bool",
	"int",
	"float",
	"string",
	"array",
	"object",
	"callable",
	"resource",
}

// IsPrimitive reports whether s is exactly one of the primitive doc types.
// The match is case-sensitive.
func IsPrimitive(s string) bool {
	return slices.Contains(primitives, s)
}

// Primitives returns a copy of the primitive doc type vocabulary.
func Primitives() []string {
	return slices.Clone(primitives)
}
