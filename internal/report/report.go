package report

import (
	"cmp"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"php-class-diagram/internal/diagnostic"
	"php-class-diagram/internal/fixture"
	"php-class-diagram/internal/phpast"
	"php-class-diagram/internal/phptype"
	"php-class-diagram/internal/resolve"
)

// Report holds the resolved declarations of all files.
type Report struct {
	Files       []FileReport           `yaml:"files"`
	Diagnostics diagnostic.Diagnostics `yaml:"-"`
}

// FileReport holds the resolved declarations of one file.
type FileReport struct {
	Path         string     `yaml:"path"`
	Namespace    string     `yaml:"namespace,omitempty"`
	Declarations []Entry    `yaml:"declarations,omitempty"`
	Relations    []Relation `yaml:"relations,omitempty"`
}

// Entry is one resolved declaration.
type Entry struct {
	Class       string      `yaml:"class"`
	Declaration string      `yaml:"declaration"`
	Target      string      `yaml:"target"`
	Types       []TypeEntry `yaml:"types"`

	resolved []phptype.Type
}

// TypeEntry is the serialized form of a phptype.Type.
type TypeEntry struct {
	Namespace []string `yaml:"namespace,flow,omitempty"`
	Name      string   `yaml:"name"`
	Nullable  bool     `yaml:"nullable,omitempty"`
	Kind      string   `yaml:"kind"`
}

// Relation is an edge from a class to a type one of its declarations uses.
type Relation struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Via  string `yaml:"via"`
}

// Generate resolves all declarations of files.
func Generate(files []fixture.File) (*Report, error) {
	report := &Report{Files: make([]FileReport, 0, len(files))}

	for _, file := range files {
		fr, diags, err := generateFile(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.Path, err)
		}

		report.Files = append(report.Files, fr)
		report.Diagnostics.Merge(diags)
	}

	return report, nil
}

func generateFile(file fixture.File) (FileReport, diagnostic.Diagnostics, error) {
	fr := FileReport{
		Path:      file.Path,
		Namespace: file.Namespace.String(),
	}

	var diags diagnostic.Diagnostics

	add := func(class, label string, target resolve.Target, expr *resolve.Expression) {
		types := expr.Types()
		fr.Declarations = append(fr.Declarations, Entry{
			Class:       class,
			Declaration: label,
			Target:      target.String(),
			Types:       toEntries(types),
			resolved:    types,
		})
		diags.Merge(expr.Diagnostics())
	}

	for _, class := range file.Classes {
		for _, prop := range class.Properties {
			label := class.Name + "::$" + prop.Name

			expr, err := resolve.BuildByVar(prop, file.Namespace, file.Uses, resolve.WithLabel(label))
			if err != nil {
				return FileReport{}, diags, err
			}

			add(class.Name, label, resolve.TargetVar, expr)
		}

		for _, method := range class.Methods {
			if err := generateMethod(file, class.Name, method, add); err != nil {
				return FileReport{}, diags, err
			}
		}
	}

	fr.Relations = relations(file.Namespace, fr.Declarations)

	return fr, diags, nil
}

func generateMethod(
	file fixture.File,
	class string,
	method *phpast.Method,
	add func(class, label string, target resolve.Target, expr *resolve.Expression),
) error {
	for _, param := range method.Params {
		label := class + "::" + method.Name + "() $" + param.Name

		expr, err := resolve.BuildByMethodParam(param, file.Namespace, method.Doc, param.Name, file.Uses,
			resolve.WithLabel(label))
		if err != nil {
			return err
		}

		add(class, label, resolve.TargetParam, expr)
	}

	label := class + "::" + method.Name + "()"

	expr, err := resolve.BuildByMethodReturn(method, file.Namespace, file.Uses, resolve.WithLabel(label))
	if err != nil {
		return err
	}

	add(class, label, resolve.TargetReturn, expr)

	return nil
}

func toEntries(types []phptype.Type) []TypeEntry {
	entries := make([]TypeEntry, len(types))
	for i, t := range types {
		entries[i] = TypeEntry{
			Namespace: t.Namespace,
			Name:      t.Name,
			Nullable:  t.Nullable,
			Kind:      t.Kind.String(),
		}
	}

	return entries
}

// relations returns one edge per distinct (class, type) pair whose type
// is resolved and is neither a primitive nor a built-in type name.
func relations(namespace phptype.Namespace, entries []Entry) []Relation {
	var out []Relation

	seen := make(map[Relation]bool)

	for _, e := range entries {
		from := phptype.Type{Namespace: namespace, Name: e.Class}.FQCN()

		for _, t := range e.resolved {
			if !t.IsResolved() || t.IsPrimitive() || isBuiltin(t) {
				continue
			}

			rel := Relation{From: from, To: t.FQCN(), Via: e.Target}
			if seen[rel] {
				continue
			}

			seen[rel] = true
			out = append(out, rel)
		}
	}

	slices.SortStableFunc(out, func(a, b Relation) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})

	return out
}

// classKeywords are the class-relative names a doc comment may use. They
// resolve below the current namespace like any other short name.
var classKeywords = []string{"self", "static", "parent"}

// isBuiltin reports whether t names a built-in type rather than a class.
// Namespaced names are classes, except for class keywords taken from a
// doc comment.
func isBuiltin(t phptype.Type) bool {
	if t.Namespace.IsGlobal() {
		return phpast.IsBuiltin(t.Name)
	}

	return t.Kind == phptype.KindDoc && slices.Contains(classKeywords, t.Name)
}

// Marshal serializes the report to YAML.
func Marshal(r *Report) ([]byte, error) {
	return yaml.Marshal(r)
}

// Unresolved returns the entries with at least one unresolved type.
func (r *Report) Unresolved() []Entry {
	var out []Entry

	for _, fr := range r.Files {
		for _, e := range fr.Declarations {
			for _, t := range e.Types {
				if t.Name == "" {
					out = append(out, e)
					break
				}
			}
		}
	}

	return out
}
