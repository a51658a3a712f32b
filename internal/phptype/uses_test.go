package phptype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUse(t *testing.T) {
	tests := []struct {
		stmt     string
		expected Use
	}{
		{`a\b\c\bar\Boo`, Use{Name: "Boo", Namespace: Namespace{"a", "b", "c", "bar"}}},
		{`\a\Boo;`, Use{Name: "Boo", Namespace: Namespace{"a"}}},
		{`a\b\Boo as Alias`, Use{Name: "Alias", Namespace: Namespace{"a", "b"}}},
		{`Exception`, Use{Name: "Exception", Namespace: Namespace{}}},
	}

	for _, tt := range tests {
		t.Run(tt.stmt, func(t *testing.T) {
			use := ParseUse(tt.stmt)
			assert.Equal(t, tt.expected.Name, use.Name)
			assert.True(t, tt.expected.Namespace.Equal(use.Namespace), "namespace %v", use.Namespace)
		})
	}
}

func TestUsesLookup(t *testing.T) {
	uses := Uses{
		{Name: "Boo", Namespace: Namespace{"a", "b", "c", "bar"}},
		{Name: "Foo", Namespace: Namespace{"x"}},
	}

	ns, ok := uses.Lookup("Boo")
	require.True(t, ok)
	assert.Equal(t, Namespace{"a", "b", "c", "bar"}, ns)

	_, ok = uses.Lookup("boo")
	assert.False(t, ok, "lookup is exact")

	_, ok = uses.Lookup("Missing")
	assert.False(t, ok)

	_, ok = Uses(nil).Lookup("Boo")
	assert.False(t, ok)
}

func TestUsesLookupFirstWins(t *testing.T) {
	uses := Uses{
		{Name: "Boo", Namespace: Namespace{"first"}},
		{Name: "Boo", Namespace: Namespace{"second"}},
		{Name: "Boo", Namespace: Namespace{"third"}},
	}

	ns, ok := uses.Lookup("Boo")
	require.True(t, ok)
	assert.Equal(t, Namespace{"first"}, ns)
	assert.Equal(t, []string{"Boo"}, uses.Duplicates())
}

func TestUsesDuplicatesEmpty(t *testing.T) {
	uses := Uses{{Name: "A"}, {Name: "B"}}
	assert.Empty(t, uses.Duplicates())
}
