package resolve

import (
	"slices"
	"strings"

	"php-class-diagram/internal/diagnostic"
	"php-class-diagram/internal/phpast"
	"php-class-diagram/internal/phptype"
)

// Expression is the resolved type expression of one declaration.
type Expression struct {
	types       []phptype.Type
	diagnostics diagnostic.Diagnostics
}

// Types returns the resolved types, one per union member.
func (e *Expression) Types() []phptype.Type {
	return slices.Clone(e.types)
}

// Diagnostics returns what was noted while resolving.
func (e *Expression) Diagnostics() diagnostic.Diagnostics {
	return e.diagnostics
}

// IsResolved returns true if every member type has a name.
func (e *Expression) IsResolved() bool {
	for _, t := range e.types {
		if !t.IsResolved() {
			return false
		}
	}

	return true
}

// String renders the types as a union, e.g. `int|\a\b\Boo`.
func (e *Expression) String() string {
	parts := make([]string, len(e.types))
	for i, t := range e.types {
		parts[i] = t.String()
	}

	return strings.Join(parts, "|")
}

// BuildByVar resolves a property declaration from its type slot and its
// own @var doc tag.
func BuildByVar(decl phpast.Declaration, namespace phptype.Namespace, uses phptype.Uses, opts ...Option) (*Expression, error) {
	return resolve(decl, TargetVar, namespace, ownDoc(decl), uses, "", opts)
}

// BuildByMethodParam resolves a method parameter from its type slot and the
// `@param <type> $<paramName>` tag of the enclosing method's doc comment.
func BuildByMethodParam(
	decl phpast.Declaration,
	namespace phptype.Namespace,
	methodDoc string,
	paramName string,
	uses phptype.Uses,
	opts ...Option,
) (*Expression, error) {
	return resolve(decl, TargetParam, namespace, methodDoc, uses, paramName, opts)
}

// BuildByMethodReturn resolves a method's return type from its return
// type slot and its own @return doc tag.
func BuildByMethodReturn(decl phpast.Declaration, namespace phptype.Namespace, uses phptype.Uses, opts ...Option) (*Expression, error) {
	return resolve(decl, TargetReturn, namespace, ownDoc(decl), uses, "", opts)
}

func ownDoc(decl phpast.Declaration) string {
	if decl == nil {
		return ""
	}

	doc, ok := decl.DocComment()
	if !ok {
		return ""
	}

	return doc
}
