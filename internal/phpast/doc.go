// Package phpast defines the slice of a PHP syntax tree the type resolver
// reads: native type annotations and the declarations that carry them.
//
// A native type annotation is a TypeNode, a closed sum over:
//   - nil: no annotation
//   - *Identifier: built-in type such as int or string
//   - *FullyQualified: \Foo\Bar
//   - *Name: Bar or Foo\Bar, relative to imports and the current namespace
//   - *Nullable: ?T
//   - *Union: A|B
//
// Parse builds a TypeNode from a native type expression, standing in for a
// full PHP parser in fixtures and tests.
package phpast
