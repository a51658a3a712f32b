// Package phptype provides the normalized type model produced by the
// annotation resolver.
//
// Key types:
//   - Namespace: ordered namespace path segments (declaration order)
//   - Type: namespace + bare name + nullability of one resolved type
//   - Use: one row of a file's import ("use") table
//   - Uses: ordered import table with first-match lookup
package phptype
