package fixture

import (
	"errors"
	"fmt"

	"php-class-diagram/internal/phpast"
	"php-class-diagram/internal/phptype"
)

// File is a source file converted to syntax-tree declarations.
type File struct {
	Path      string
	Namespace phptype.Namespace
	Uses      phptype.Uses
	Classes   []Class
}

// Class groups the declarations of one class.
type Class struct {
	Name       string
	Properties []*phpast.Property
	Methods    []*phpast.Method
}

// Build converts every source file of ff. All native type errors are
// reported together.
func Build(ff *FixtureFile) ([]File, error) {
	files := make([]File, 0, len(ff.Files))

	var errs []error

	for i := range ff.Files {
		file, err := BuildFile(&ff.Files[i])
		if err != nil {
			errs = append(errs, err)
			continue
		}

		files = append(files, file)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return files, nil
}

// BuildFile converts one source file.
func BuildFile(sf *SourceFile) (File, error) {
	file := File{
		Path:      sf.Path,
		Namespace: sf.Namespace.Namespace(),
		Uses:      make(phptype.Uses, 0, len(sf.Uses)),
	}

	for _, stmt := range sf.Uses {
		use := phptype.ParseUse(stmt)
		if use.Name == "" {
			return File{}, fmt.Errorf("%s: invalid use statement %q", sf.Path, stmt)
		}

		file.Uses = append(file.Uses, use)
	}

	var errs []error

	parse := func(where, expr string) phpast.TypeNode {
		node, err := phpast.Parse(expr)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %s: %w", sf.Path, where, err))
		}

		return node
	}

	for _, cd := range sf.Classes {
		class := Class{Name: cd.Name}

		for _, pd := range cd.Properties {
			class.Properties = append(class.Properties, &phpast.Property{
				Name: pd.Name,
				Type: parse(cd.Name+"::$"+pd.Name, pd.Type),
				Doc:  pd.Doc,
			})
		}

		for _, md := range cd.Methods {
			method := &phpast.Method{
				Name:       md.Name,
				ReturnType: parse(cd.Name+"::"+md.Name+"()", md.Return),
				Doc:        md.Doc,
			}

			for _, param := range md.Params {
				method.Params = append(method.Params, &phpast.Param{
					Name: param.Name,
					Type: parse(cd.Name+"::"+md.Name+"() $"+param.Name, param.Type),
				})
			}

			class.Methods = append(class.Methods, method)
		}

		file.Classes = append(file.Classes, class)
	}

	if len(errs) > 0 {
		return File{}, errors.Join(errs...)
	}

	return file, nil
}
