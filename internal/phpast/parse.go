package phpast

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_\x{80}-\x{10FFFF}][A-Za-z0-9_\x{80}-\x{10FFFF}]*$`)

// builtinTypes are the names the PHP parser emits as identifiers rather
// than class names.
var builtinTypes = []string{
	"array",
	"bool",
	"callable",
	"false",
	"float",
	"int",
	"iterable",
	"mixed",
	"never",
	"null",
	"object",
	"parent",
	"self",
	"static",
	"string",
	"true",
	"void",
}

// IsBuiltin reports whether name is parsed as an identifier. The check is
// case-insensitive, as in PHP.
func IsBuiltin(name string) bool {
	return slices.Contains(builtinTypes, strings.ToLower(name))
}

// Parse parses a native type expression such as "?string", "int|string",
// `\Foo\Bar` or `Foo\Bar`. An empty expression yields a nil node.
func Parse(expr string) (TypeNode, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	if strings.Contains(expr, "|") {
		return parseUnion(expr)
	}

	if inner, ok := strings.CutPrefix(expr, "?"); ok {
		t, err := parseSingle(strings.TrimSpace(inner))
		if err != nil {
			return nil, fmt.Errorf("invalid type %q: %w", expr, err)
		}

		return &Nullable{Type: t}, nil
	}

	t, err := parseSingle(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid type %q: %w", expr, err)
	}

	return t, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// static fixtures.
func MustParse(expr string) TypeNode {
	t, err := Parse(expr)
	if err != nil {
		panic(err)
	}

	return t
}

func parseUnion(expr string) (TypeNode, error) {
	var members []TypeNode

	for part := range strings.SplitSeq(expr, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("invalid type %q: empty union member", expr)
		}

		if strings.HasPrefix(part, "?") {
			return nil, fmt.Errorf("invalid type %q: nullable union member %q", expr, part)
		}

		t, err := parseSingle(part)
		if err != nil {
			return nil, fmt.Errorf("invalid type %q: %w", expr, err)
		}

		members = append(members, t)
	}

	return &Union{Types: members}, nil
}

func parseSingle(s string) (TypeNode, error) {
	if s == "" {
		return nil, errors.New("empty type")
	}

	rest, fullyQualified := strings.CutPrefix(s, `\`)

	parts := strings.Split(rest, `\`)
	for _, p := range parts {
		if !identPattern.MatchString(p) {
			return nil, fmt.Errorf("invalid identifier %q", p)
		}
	}

	switch {
	case fullyQualified:
		return &FullyQualified{Parts: parts}, nil
	case len(parts) == 1 && IsBuiltin(parts[0]):
		return &Identifier{Name: parts[0]}, nil
	default:
		return &Name{Parts: parts}, nil
	}
}
