package fixture

// FixtureFile represents the root of a YAML fixture file.
type FixtureFile struct {
	// Version of the fixture schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Files describes one PHP source file each.
	Files []SourceFile `yaml:"files"`
}

// SourceFile describes the declarations of one PHP source file.
type SourceFile struct {
	// Path is informational, used in reports and diagnostics.
	Path string `yaml:"path,omitempty"`

	// Namespace is the file's namespace, as `a\b\c` or a list of segments.
	Namespace NamespaceValue `yaml:"namespace,omitempty"`

	// Uses lists use statement bodies, e.g. `a\b\Boo` or `a\b\Boo as B`.
	Uses []string `yaml:"uses,omitempty"`

	Classes []ClassDef `yaml:"classes,omitempty"`
}

// ClassDef describes a class, interface or trait.
type ClassDef struct {
	Name       string        `yaml:"name"`
	Properties []PropertyDef `yaml:"properties,omitempty"`
	Methods    []MethodDef   `yaml:"methods,omitempty"`
}

// PropertyDef describes a property declaration.
type PropertyDef struct {
	Name string `yaml:"name"`
	// Type is the native type expression, empty when not declared.
	Type string `yaml:"type,omitempty"`
	// Doc is the raw doc comment.
	Doc string `yaml:"doc,omitempty"`
}

// MethodDef describes a method declaration.
type MethodDef struct {
	Name   string     `yaml:"name"`
	Doc    string     `yaml:"doc,omitempty"`
	Params []ParamDef `yaml:"params,omitempty"`
	// Return is the native return type expression.
	Return string `yaml:"return,omitempty"`
}

// ParamDef describes a method parameter.
type ParamDef struct {
	// Name without the leading "$".
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`
}
