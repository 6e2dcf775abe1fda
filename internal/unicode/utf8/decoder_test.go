package utf8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeASCII(t *testing.T) {
	cp, n := Decode([]byte("A"))
	require.Equal(t, rune('A'), cp)
	require.Equal(t, 1, n)
}

func TestDecodeMultiByte(t *testing.T) {
	cp, n := Decode([]byte("é"))
	require.Equal(t, rune('é'), cp)
	require.Equal(t, 2, n)
}

func TestDecodeOverlongRejected(t *testing.T) {
	cp, n := Decode([]byte{0xC0, 0xAF})
	require.Equal(t, ReplacementChar, cp)
	require.Equal(t, 1, n)
}

func TestDecodeSurrogateRejected(t *testing.T) {
	cp, _ := Decode([]byte{0xED, 0xA0, 0x80})
	require.Equal(t, ReplacementChar, cp)
}

func TestValidateFindsFirstBadByte(t *testing.T) {
	b := append([]byte("ok "), 0xC0, 0xAF)
	require.Equal(t, 3, Validate(b))
}

func TestValidateAcceptsValidText(t *testing.T) {
	require.Equal(t, -1, Validate([]byte("héllo wörld")))
}

func TestFileManagerLoadUnloadCycle(t *testing.T) {
	m := NewFileManager()
	id := m.RegisterLoaded("a.ry", []byte("x := 1\ny := 2\n"))
	f, err := m.File(id)
	require.NoError(t, err)
	require.Equal(t, 2, f.LineCount())

	line1, err := f.LineBytes(1)
	require.NoError(t, err)
	require.Equal(t, "x := 1", string(line1))

	require.NoError(t, m.Unload(id))
	_, err = m.File(id)
	require.ErrorIs(t, err, ErrFileNotLoaded)
}

func TestEmptyFileReportsZeroLines(t *testing.T) {
	m := NewFileManager()
	id := m.RegisterLoaded("empty.ry", []byte{})
	f, err := m.File(id)
	require.NoError(t, err)
	require.Equal(t, 0, f.LineCount())
}

func TestRegisterVirtualSynthesizesUniqueNames(t *testing.T) {
	m := NewFileManager()
	id1 := m.RegisterVirtual([]byte("a"))
	id2 := m.RegisterVirtual([]byte("b"))
	f1, _ := m.File(id1)
	f2, _ := m.File(id2)
	require.NotEqual(t, f1.Name(), f2.Name())
}

func TestStreamInitAndWalk(t *testing.T) {
	m := NewFileManager()
	id := m.RegisterLoaded("a.ry", []byte("ab\nc"))
	s := NewStream()
	offset, err := s.Init(m, id)
	require.NoError(t, err)
	require.Equal(t, -1, offset)
	require.Equal(t, StreamValid, s.Status())

	cp, ok := s.Next()
	require.True(t, ok)
	require.Equal(t, rune('a'), cp)
	require.Equal(t, uint32(1), s.Line())
	require.Equal(t, uint32(2), s.Column())

	s.Next()
	cp, ok = s.Next()
	require.True(t, ok)
	require.Equal(t, rune('\n'), cp)
	require.Equal(t, uint32(2), s.Line())
	require.Equal(t, uint32(1), s.Column())
}

func TestStreamInitReportsInvalidOffset(t *testing.T) {
	m := NewFileManager()
	id := m.RegisterLoaded("bad.ry", []byte{0xC0, 0xAF})
	s := NewStream()
	offset, err := s.Init(m, id)
	require.NoError(t, err)
	require.Equal(t, 0, offset)
	require.Equal(t, StreamInvalid, s.Status())
}
