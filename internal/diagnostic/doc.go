// Package diagnostic provides structured warnings, errors, and
// explanations collected while resolving declaration types.
//
// Key capabilities:
//   - Unresolved type warnings (the declaration still gets a type entry)
//   - Duplicate import warnings (first registration wins)
//   - Explanation of resolution decisions (doc comment overrides,
//     current-namespace fallback)
package diagnostic
