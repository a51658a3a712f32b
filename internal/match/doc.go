// Package match provides fuzzy name matching used to suggest the import a
// short class name was probably meant to refer to.
//
// Key functions:
//   - NormalizeName: folds case and separators of a class name
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names by similarity
package match
