package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKeywordFindsBaseType(t *testing.T) {
	info, ok := LookupKeyword("char")
	require.True(t, ok)
	assert.Equal(t, TBChar, info.Type)
	assert.Equal(t, LangANY, info.Lang)
}

func TestLookupKeywordUnknownLiteral(t *testing.T) {
	_, ok := LookupKeyword("frobnicate")
	assert.False(t, ok)
}

func TestLookupKeywordSynonymPointsAtCanonical(t *testing.T) {
	info, ok := LookupKeyword("bool")
	require.True(t, ok)
	assert.Equal(t, "_Bool", info.Synonym)
}

func TestKeywordLiteralsExcludesNeverLiteralPlaceholder(t *testing.T) {
	lits := KeywordLiterals()
	for _, l := range lits {
		assert.NotEqual(t, "void*", l)
	}
}

func TestKeywordLiteralsContainsCoreKeywords(t *testing.T) {
	lits := KeywordLiterals()
	assert.Contains(t, lits, "struct")
	assert.Contains(t, lits, "const")
	assert.Contains(t, lits, "typedef")
}

func TestResolveCdeclCommandCanonicalAndSynonym(t *testing.T) {
	name, ok := ResolveCdeclCommand("explain")
	require.True(t, ok)
	assert.Equal(t, "explain", name)

	name, ok = ResolveCdeclCommand("exp")
	require.True(t, ok)
	assert.Equal(t, "explain", name)

	name, ok = ResolveCdeclCommand("q")
	require.True(t, ok)
	assert.Equal(t, "quit", name)
}

func TestResolveCdeclCommandUnknown(t *testing.T) {
	_, ok := ResolveCdeclCommand("frobnicate")
	assert.False(t, ok)
}

func TestCdeclCommandNamesIncludesSynonyms(t *testing.T) {
	names := CdeclCommandNames()
	assert.Contains(t, names, "declare")
	assert.Contains(t, names, "exit")
	assert.Contains(t, names, "?")
}
