package phptype

import (
	"strings"

	"php-class-diagram/internal/common"
)

// Use is one imported short name and the namespace of the symbol it
// refers to. For `use a\b\Boo;` Name is "Boo" and Namespace is [a b].
// For `use a\b\Boo as B;` Name is "B".
type Use struct {
	Name      string
	Namespace Namespace
}

// ParseUse parses the body of a use statement, e.g. `a\b\Boo` or
// `a\b\Boo as B`.
func ParseUse(stmt string) Use {
	stmt = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(stmt), ";"))

	path, alias, hasAlias := strings.Cut(stmt, " as ")
	path = strings.TrimSpace(path)
	ns, name := common.SplitLast(ParseNamespace(path))

	if hasAlias {
		name = strings.TrimSpace(alias)
	}

	return Use{Name: name, Namespace: ns}
}

// Uses is the ordered import table of one file.
type Uses []Use

// Lookup returns the namespace of the first entry whose short name equals
// name exactly. Callers must avoid registering the same short name twice;
// later duplicates are never returned.
func (u Uses) Lookup(name string) (Namespace, bool) {
	for _, use := range u {
		if use.Name == name {
			return use.Namespace, true
		}
	}

	return nil, false
}

// Duplicates returns short names registered more than once, in order of
// their second registration.
func (u Uses) Duplicates() []string {
	seen := make(map[string]int, len(u))

	var dups []string

	for _, use := range u {
		seen[use.Name]++
		if seen[use.Name] == 2 {
			dups = append(dups, use.Name)
		}
	}

	return dups
}
