package fixture

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"php-class-diagram/internal/phptype"
)

// NamespaceValue is a namespace that can be unmarshaled from either a
// separator-delimited string or a list of segments.
type NamespaceValue phptype.Namespace

// UnmarshalYAML implements custom YAML unmarshaling for NamespaceValue.
func (n *NamespaceValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		*n = NamespaceValue(phptype.ParseNamespace(str))

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		for _, segment := range arr {
			if segment == "" {
				return fmt.Errorf("line %d: empty namespace segment", node.Line)
			}
		}

		*n = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected namespace string or list, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes the namespace in its string form.
func (n NamespaceValue) MarshalYAML() (any, error) {
	return phptype.Namespace(n).String(), nil
}

// Namespace returns the value as a phptype.Namespace.
func (n NamespaceValue) Namespace() phptype.Namespace {
	return phptype.Namespace(n)
}
