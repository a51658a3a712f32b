package fixture

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"php-class-diagram/internal/diagnostic"
	"php-class-diagram/internal/phpast"
	"php-class-diagram/internal/phptype"
)

func TestBuild(t *testing.T) {
	ff, err := LoadFile(filepath.Join("testdata", "product.yaml"))
	require.NoError(t, err)

	files, err := Build(ff)
	require.NoError(t, err)
	require.Len(t, files, 1)

	file := files[0]
	assert.Equal(t, phptype.Namespace{"hoge", "fuga", "product"}, file.Namespace)
	require.Len(t, file.Uses, 1)
	assert.Equal(t, "Boo", file.Uses[0].Name)
	assert.Equal(t, phptype.Namespace{"hoge", "fuga", "product", "bar"}, file.Uses[0].Namespace)

	class := file.Classes[0]
	assert.Equal(t, phpast.NodeNullable, phpast.KindOf(class.Properties[0].Type))
	assert.Equal(t, phpast.NodeUnion, phpast.KindOf(class.Properties[1].Type))
	assert.Equal(t, phpast.NodeAbsent, phpast.KindOf(class.Properties[3].Type))

	method := class.Methods[0]
	assert.Equal(t, phpast.NodeIdentifier, phpast.KindOf(method.ReturnType))
	boo, ok := method.Param("boo")
	require.True(t, ok)
	assert.Equal(t, "object", phpast.Format(boo.Type))
}

func TestBuildReportsAllTypeErrors(t *testing.T) {
	ff, err := Parse([]byte(`
files:
  - path: Bad.php
    classes:
      - name: Bad
        properties:
          - name: a
            type: "?"
          - name: b
            type: "int|"
`))
	require.NoError(t, err)

	_, err = Build(ff)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad::$a")
	assert.Contains(t, err.Error(), "Bad::$b")
}

func TestBuildInvalidUse(t *testing.T) {
	_, err := BuildFile(&SourceFile{Path: "X.php", Uses: []string{`\`}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid use statement")
}

func TestValidate(t *testing.T) {
	ff := &FixtureFile{Files: []SourceFile{{
		Path: "A.php",
		Uses: []string{`x\Boo`, `y\Boo`},
		Classes: []ClassDef{
			{Name: "A", Methods: []MethodDef{{
				Name:   "run",
				Doc:    "/** @param int $count */",
				Params: []ParamDef{{Name: "count"}, {Name: "$bad"}, {Name: "loose"}},
			}}},
			{Name: "A"},
			{},
		},
	}}}

	diags := Validate(ff)
	assert.Len(t, diags.WithCode(diagnostic.CodeDuplicateUse), 1)
	assert.Len(t, diags.WithCode("DUPLICATE_CLASS"), 1)
	assert.Len(t, diags.WithCode("EMPTY_CLASS_NAME"), 1)
	assert.Len(t, diags.WithCode("INVALID_PARAM_NAME"), 1)

	untyped := diags.WithCode("UNTYPED_PARAM")
	require.Len(t, untyped, 1)
	assert.Equal(t, "$loose", untyped[0].Candidate)
}

func TestValidateEmpty(t *testing.T) {
	diags := Validate(&FixtureFile{})
	assert.True(t, diags.IsValid())
	assert.Len(t, diags.WithCode("NO_FILES"), 1)
}
