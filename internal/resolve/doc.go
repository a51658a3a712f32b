// Package resolve determines the effective types of a PHP declaration
// (property, method parameter or method return) from its native type
// annotation, its doc comment and the file's import table.
//
// # Precedence
//
// A type found in the doc comment (@var, @param or @return) is
// authoritative; the native annotation is then ignored entirely. Without
// a doc type the native annotation is used.
//
// # Unions
//
// Doc types are split on "|", native union nodes contribute one candidate
// per member. Every candidate yields exactly one phptype.Type, in order,
// so the result always has the arity of the declared union.
//
// # Name resolution
//
// Primitive doc types and built-in identifiers get no namespace. Names
// with a leading separator are absolute. Other names are looked up by
// their last segment in the import table, and otherwise placed in the
// current namespace.
//
// # Errors
//
// Only caller bugs are errors: an unknown Target, or a parameter target
// without a parameter name. Missing or malformed type information yields
// a Type with an empty name plus an UNRESOLVED_TYPE warning.
package resolve
