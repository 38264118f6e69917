package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTokens(t *testing.T, src string) TokenList {
	t.Helper()
	toks, err := Tokenize([]byte(src))
	require.NoError(t, err)
	return toks
}

func TestMacroStoreDefineAndFind(t *testing.T) {
	s := NewMacroStore()
	m := &Macro{Name: "FOO", Body: mustTokens(t, "1")}

	require.NoError(t, s.Define(m))

	got, ok := s.Find("FOO")
	require.True(t, ok)
	assert.Equal(t, m, got)
}

func TestMacroStoreDefineIdenticalRedefinitionAllowed(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{Name: "FOO", Body: mustTokens(t, "1")}))
	assert.NoError(t, s.Define(&Macro{Name: "FOO", Body: mustTokens(t, "1")}))
}

func TestMacroStoreDefineIncompatibleRedefinitionRejected(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{Name: "FOO", Body: mustTokens(t, "1")}))

	err := s.Define(&Macro{Name: "FOO", Body: mustTokens(t, "2")})
	require.Error(t, err)
	var ppErr PreprocessorError
	require.ErrorAs(t, err, &ppErr)
}

func TestMacroStoreUndefRemovesDefinition(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{Name: "FOO", Body: mustTokens(t, "1")}))

	s.Undef("FOO")
	_, ok := s.Find("FOO")
	assert.False(t, ok)
}

func TestMacroStoreUndefUnknownIsNoop(t *testing.T) {
	s := NewMacroStore()
	assert.NotPanics(t, func() { s.Undef("NOPE") })
}

func TestMacroStoreNamesSorted(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{Name: "ZETA", Body: mustTokens(t, "1")}))
	require.NoError(t, s.Define(&Macro{Name: "ALPHA", Body: mustTokens(t, "1")}))

	assert.Equal(t, []string{"ALPHA", "ZETA"}, s.Names())
}

func TestMacroParamIndex(t *testing.T) {
	m := &Macro{Params: []string{"a", "b"}}
	assert.Equal(t, 0, m.paramIndex("a"))
	assert.Equal(t, 1, m.paramIndex("b"))
	assert.Equal(t, -1, m.paramIndex("c"))
}
