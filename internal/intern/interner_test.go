package intern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternRoundTrips(t *testing.T) {
	in := New()
	id := in.InternString("foo")
	text, ok := in.Lookup(id)
	require.True(t, ok)
	require.Equal(t, "foo", text)
}

func TestInternIsIdempotent(t *testing.T) {
	in := New()
	a := in.InternString("bar")
	b := in.InternString("bar")
	require.Equal(t, a, b)
	require.Equal(t, 1, in.Len())
}

func TestInternDistinguishesDistinctStrings(t *testing.T) {
	in := New()
	a := in.InternString("bar")
	b := in.InternString("baz")
	require.NotEqual(t, a, b)
}
