package phptype

import (
	"slices"
	"strings"

	"php-class-diagram/internal/common"
)

// Separator is the PHP namespace separator.
const Separator = `\`

// Namespace is an ordered sequence of namespace path segments.
type Namespace []string

// ParseNamespace splits a namespace string like `a\b\c` (optionally with a
// leading separator) into its segments. Empty segments are dropped.
func ParseNamespace(s string) Namespace {
	var ns Namespace

	for part := range strings.SplitSeq(s, Separator) {
		if part != "" {
			ns = append(ns, part)
		}
	}

	return ns
}

// Equal reports whether both paths have the same segments in the same order.
func (n Namespace) Equal(other Namespace) bool {
	return slices.Equal(n, other)
}

// Append returns a new namespace with parts appended. The receiver is not modified.
func (n Namespace) Append(parts ...string) Namespace {
	out := make(Namespace, 0, len(n)+len(parts))
	out = append(out, n...)

	return append(out, parts...)
}

// IsGlobal returns true for the global (empty) namespace.
func (n Namespace) IsGlobal() bool {
	return len(n) == 0
}

// String returns the segments joined with the namespace separator.
func (n Namespace) String() string {
	return strings.Join(n, Separator)
}

// Kind records which syntactic form a Type was resolved from.
// It is provenance only and never affects resolution.
type Kind int

const (
	KindUnknown        Kind = iota // no annotation at all
	KindIdentifier                 // built-in identifier, e.g. int, string
	KindName                       // plain (possibly qualified) class name
	KindFullyQualified             // \Foo\Bar
	KindDoc                        // doc comment type expression
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindName:
		return "name"
	case KindFullyQualified:
		return "fully_qualified"
	case KindDoc:
		return "doc"
	default:
		return common.UnknownStr
	}
}

// Type is one resolved type of a declaration.
//
// Name is always a single segment. An empty Name means the type could not
// be determined; such types are still reported so that a declaration's
// union arity is preserved.
type Type struct {
	Namespace Namespace // empty for primitives and global types
	Kind      Kind
	Name      string
	Nullable  bool
}

// NewType builds a Type from a full path: the last part becomes the
// name and the remaining parts the namespace.
func NewType(parts []string, kind Kind, nullable bool) Type {
	ns, name := common.SplitLast(parts)
	if len(ns) == 0 {
		ns = nil
	}

	return Type{
		Namespace: Namespace(ns),
		Kind:      kind,
		Name:      name,
		Nullable:  nullable,
	}
}

// IsResolved returns true if a name could be determined.
func (t Type) IsResolved() bool {
	return t.Name != ""
}

// IsPrimitive returns true if the name is one of the primitive doc types
// and carries no namespace.
func (t Type) IsPrimitive() bool {
	return t.Namespace.IsGlobal() && IsPrimitive(t.Name)
}

// FQCN returns the fully-qualified name with a leading separator, or the
// bare name for types in the global namespace.
func (t Type) FQCN() string {
	if t.Namespace.IsGlobal() {
		return t.Name
	}

	return Separator + t.Namespace.String() + Separator + t.Name
}

// String returns the FQCN prefixed with "?" for nullable types.
func (t Type) String() string {
	if t.Nullable {
		return "?" + t.FQCN()
	}

	return t.FQCN()
}

// Equal compares namespace, name and nullability. Kind is ignored.
func (t Type) Equal(other Type) bool {
	return t.Name == other.Name &&
		t.Nullable == other.Nullable &&
		t.Namespace.Equal(other.Namespace)
}
