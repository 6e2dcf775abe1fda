package keyword

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.redy.dev/internal/token"
)

func TestKeywordsClassify(t *testing.T) {
	cases := map[string]token.Kind{
		"if": token.If, "fn": token.Function, "mut": token.Mutable,
		"struct": token.Struct, "thread_local": token.ThreadLocal,
		"await": token.Await, "isize": token.Isize,
	}
	for lexeme, want := range cases {
		require.Equal(t, want, Lookup(lexeme), "lexeme=%s", lexeme)
	}
}

func TestNonKeywordIsIdentifier(t *testing.T) {
	require.Equal(t, token.Identifier, Lookup("ifoo"))
	require.Equal(t, token.Identifier, Lookup("structure"))
	require.Equal(t, token.Identifier, Lookup("z"))
}
