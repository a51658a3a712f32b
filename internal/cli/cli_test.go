package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"php-class-diagram/internal/fixture"
	"php-class-diagram/internal/resolve"
)

var productFixture = filepath.Join("..", "fixture", "testdata", "product.yaml")

func resetFlags() {
	verbose, jsonOutput = false, false
	resolveOutput, resolveNormalize = "", ""
	checkStrict = false
	typeTarget, typeNamespace, typeDoc, typeNative, typeParam = "var", "", "", "", ""
	typeUses = nil
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()

	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "resolve", productFixture)
	require.NoError(t, err)

	assert.Contains(t, out, "Product::$boo")
	assert.Contains(t, out, "relations:")
}

func TestResolveCommandOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	out, err := run(t, "resolve", "-o", path, "-v", productFixture)
	require.NoError(t, err)
	assert.NotContains(t, out, "Product::$boo")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Product::$boo")
}

func TestResolveCommandNormalize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
files:
  - namespace: app
    classes:
      - name: A
        properties:
          - name: b
            type: Boo
`), 0644))

	normalized := filepath.Join(dir, "normalized.yaml")

	out, err := run(t, "resolve", "--normalize", normalized, path)
	require.NoError(t, err)
	assert.Contains(t, out, "A::$b")

	ff, err := fixture.LoadFile(normalized)
	require.NoError(t, err)
	assert.Equal(t, "1", ff.Version)
	require.Len(t, ff.Files, 1)
	assert.Equal(t, "file1.php", ff.Files[0].Path)
	assert.Equal(t, "app", ff.Files[0].Namespace.Namespace().String())
	require.Len(t, ff.Files[0].Classes, 1)
	assert.Equal(t, "Boo", ff.Files[0].Classes[0].Properties[0].Type)
}

func TestResolveCommandNormalizeSkippedOnInvalidFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files:\n  - classes:\n      - name: A\n      - name: A\n"), 0644))

	normalized := filepath.Join(dir, "normalized.yaml")

	_, err := run(t, "resolve", "--normalize", normalized, path)
	require.Error(t, err)
	assert.NoFileExists(t, normalized)
}

func TestResolveCommandMissingFile(t *testing.T) {
	_, err := run(t, "resolve", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", productFixture)
	require.ErrorIs(t, err, ErrUnresolved)
	assert.Contains(t, out, "unresolved: Product::$untyped (var)")

	path := filepath.Join(t.TempDir(), "ok.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
files:
  - namespace: app
    classes:
      - name: A
        properties:
          - name: b
            type: int
`), 0644))

	out, err = run(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
}

func TestCheckCommandStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
files:
  - uses: ['x\Boo', 'y\Boo']
    classes:
      - name: A
        properties:
          - name: b
            type: Boo
`), 0644))

	_, err := run(t, "check", path)
	require.NoError(t, err)

	out, err := run(t, "check", "--strict", path)
	require.Error(t, err)
	assert.Contains(t, out, "DUPLICATE_USE")
}

func TestCheckCommandInvalidFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files:\n  - classes:\n      - name: A\n      - name: A\n"), 0644))

	_, err := run(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DUPLICATE_CLASS")
}

func TestTypeCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"nullable native", []string{"--native", "?string"}, "?string\tidentifier\n"},
		{
			"doc with import",
			[]string{"-n", `a\b\c`, "-d", "/** @var Boo|int */", "-u", `a\b\c\bar\Boo`, "--native", "float"},
			"\\a\\b\\c\\bar\\Boo\tdoc\nint\tdoc\n",
		},
		{
			"param",
			[]string{"-t", "param", "-p", "boo", "-d", "/** @param Boo $boo */", "-n", "app"},
			"\\app\\Boo\tdoc\n",
		},
		{"return", []string{"-t", "return", "--native", `\Foo\Bar`}, "\\Foo\\Bar\tfully_qualified\n"},
		{"absent", []string{}, "\tunknown\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"type"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestTypeCommandErrors(t *testing.T) {
	_, err := run(t, "type", "-t", "nope")
	require.ErrorIs(t, err, resolve.ErrInvalidTarget)

	_, err = run(t, "type", "-t", "param")
	require.ErrorIs(t, err, resolve.ErrMissingParamName)

	_, err = run(t, "type", "--native", "?")
	require.Error(t, err)
}
