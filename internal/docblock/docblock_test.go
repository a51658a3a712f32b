package docblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarType(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{"single line", "/** @var int */", "int"},
		{"multi line", "/**\n * Price in cents.\n * @var Price|null\n */", "Price|null"},
		{"fully qualified", `/** @var \Foo\Bar $bar */`, `\Foo\Bar`},
		{"first tag wins", "/**\n * @var A\n * @var B\n */", "A"},
		{"tab separated", "/** @var\tstring */", "string"},
		{"no tag", "/** Just text. */", ""},
		{"empty", "", ""},
		{"tag is case-sensitive", "/** @VAR int */", ""},
		{"tag without type", "/** @var */", ""},
		{"comment end after type", "/** @var int*/", "int"},
		{"comment end after class", "/** @var Foo*/", "Foo"},
		{"array suffix", "/** @var Foo[] */", "Foo[]"},
		{"tag needs whitespace", "/** @variable int */", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, VarType(tt.doc))
		})
	}
}

func TestReturnType(t *testing.T) {
	doc := "/**\n * @param int $a\n * @return string|\\Foo\\Bar\n */"
	assert.Equal(t, `string|\Foo\Bar`, ReturnType(doc))
	assert.Equal(t, "", ReturnType("/** @param int $a */"))
	assert.Equal(t, "", ReturnType("/** @returns int */"))
	assert.Equal(t, "", ReturnType("/** @return */"))
	assert.Equal(t, "void", ReturnType("/** @return void*/"))
}

func TestParamType(t *testing.T) {
	doc := `/**
 * @param int $id
 * @param string|null $identifier
 * @param  \Foo\Bar   $bar  the bar
 * @param Baz $baz_qux
 */`

	tests := []struct {
		param    string
		expected string
	}{
		{"id", "int"},
		{"identifier", "string|null"},
		{"bar", `\Foo\Bar`},
		{"baz_qux", "Baz"},
		{"baz", ""},
		{"missing", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParamType(doc, tt.param))
		})
	}
}

func TestParamTypeRequiresName(t *testing.T) {
	assert.Equal(t, "", ParamType("/** @param int */", "a"))
	assert.Equal(t, "", ParamType("/** @param int a */", "a"))
	assert.Equal(t, "", ParamType("", "a"))
	assert.Equal(t, "", ParamType("/** @param $a */", "a"))
}
