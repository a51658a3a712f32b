package phpast

import (
	"strings"
)

//go:generate go tool stringer -type=NodeKind -trimprefix=Node -output=nodekind_string.go

// NodeKind identifies the variant of a TypeNode.
type NodeKind int

const (
	NodeAbsent NodeKind = iota
	NodeIdentifier
	NodeFullyQualified
	NodeName
	NodeNullable
	NodeUnion
)

// TypeNode is a native type annotation. The set of implementations is closed.
type TypeNode interface {
	Kind() NodeKind
	String() string
	typeNode()
}

// Identifier is a built-in type keyword.
type Identifier struct {
	Name string
}

// FullyQualified is a name written with a leading separator.
type FullyQualified struct {
	Parts []string
}

// Name is an unqualified or relatively qualified class name.
type Name struct {
	Parts []string
}

// Nullable wraps a type written with a leading "?".
type Nullable struct {
	Type TypeNode
}

// Union is a list of alternatives written with "|".
type Union struct {
	Types []TypeNode
}

func (*Identifier) Kind() NodeKind     { return NodeIdentifier }
func (*FullyQualified) Kind() NodeKind { return NodeFullyQualified }
func (*Name) Kind() NodeKind           { return NodeName }
func (*Nullable) Kind() NodeKind       { return NodeNullable }
func (*Union) Kind() NodeKind          { return NodeUnion }

func (*Identifier) typeNode()     {}
func (*FullyQualified) typeNode() {}
func (*Name) typeNode()           {}
func (*Nullable) typeNode()       {}
func (*Union) typeNode()          {}

func (n *Identifier) String() string { return n.Name }

func (n *FullyQualified) String() string { return `\` + strings.Join(n.Parts, `\`) }

func (n *Name) String() string { return strings.Join(n.Parts, `\`) }

func (n *Nullable) String() string { return "?" + Format(n.Type) }

func (n *Union) String() string {
	parts := make([]string, len(n.Types))
	for i, t := range n.Types {
		parts[i] = Format(t)
	}

	return strings.Join(parts, "|")
}

// KindOf returns the kind of n, NodeAbsent for nil.
func KindOf(n TypeNode) NodeKind {
	if n == nil {
		return NodeAbsent
	}

	return n.Kind()
}

// Format renders n back to source form. Absent annotations render as "".
func Format(n TypeNode) string {
	if n == nil {
		return ""
	}

	return n.String()
}
