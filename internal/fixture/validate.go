package fixture

import (
	"fmt"
	"strings"

	"php-class-diagram/internal/diagnostic"
	"php-class-diagram/internal/docblock"
	"php-class-diagram/internal/phptype"
)

// Validate checks a fixture file for problems that do not stop resolution
// but are likely mistakes.
func Validate(ff *FixtureFile) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	if len(ff.Files) == 0 {
		diags.AddWarning("NO_FILES", "fixture contains no files", "", "")
	}

	for _, sf := range ff.Files {
		validateFile(&sf, diags)
	}

	return diags
}

func validateFile(sf *SourceFile, diags *diagnostic.Diagnostics) {
	uses := make(phptype.Uses, 0, len(sf.Uses))
	for _, stmt := range sf.Uses {
		uses = append(uses, phptype.ParseUse(stmt))
	}

	for _, name := range uses.Duplicates() {
		diags.AddWarning(diagnostic.CodeDuplicateUse,
			fmt.Sprintf("%q is imported more than once; the first import is used", name),
			sf.Path, name)
	}

	classes := make(map[string]bool, len(sf.Classes))

	for _, cd := range sf.Classes {
		if cd.Name == "" {
			diags.AddError("EMPTY_CLASS_NAME", "class has no name", sf.Path, "")
			continue
		}

		if classes[cd.Name] {
			diags.AddError("DUPLICATE_CLASS", fmt.Sprintf("class %s is declared twice", cd.Name), sf.Path, "")
		}

		classes[cd.Name] = true

		for _, md := range cd.Methods {
			validateMethod(cd.Name, &md, diags)
		}
	}
}

func validateMethod(class string, md *MethodDef, diags *diagnostic.Diagnostics) {
	label := class + "::" + md.Name + "()"

	for _, p := range md.Params {
		if p.Name == "" || strings.HasPrefix(p.Name, "$") {
			diags.AddError("INVALID_PARAM_NAME",
				fmt.Sprintf("parameter name %q must be non-empty and written without $", p.Name),
				label, "")

			continue
		}

		if p.Type == "" && docblock.ParamType(md.Doc, p.Name) == "" {
			diags.AddInfo("UNTYPED_PARAM", "parameter has neither a native type nor a @param tag", label, "$"+p.Name)
		}
	}
}
