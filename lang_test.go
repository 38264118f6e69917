package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLangFindRecognizesAliasesAndFamilies(t *testing.T) {
	assert.Equal(t, LangC99, LangFind("c99"))
	assert.Equal(t, LangC17, LangFind("c18"))
	assert.Equal(t, LangCPP17, LangFind("cpp17"))
	assert.Equal(t, LangAnyC, LangFind("c"))
	assert.Equal(t, LangAnyCPP, LangFind("c++"))
	assert.Equal(t, LangNone, LangFind("fortran"))
}

func TestLangMinMaxStayWithinFamily(t *testing.T) {
	assert.Equal(t, LangRange(LangC99, LangC23), LangMin(LangC99))
	assert.Equal(t, LangRange(LangKNRC, LangC99), LangMax(LangC99))

	assert.Equal(t, LangRange(LangCPP11, LangCPP23), LangMin(LangCPP11))
	assert.Equal(t, LangRange(LangCPP98, LangCPP11), LangMax(LangCPP11))
}

func TestLangRangeRejectsReversedBounds(t *testing.T) {
	assert.Equal(t, LangNone, LangRange(LangC99, LangC89))
}

func TestLangOldestNewest(t *testing.T) {
	set := LangC89.Union(LangC99).Union(LangC11)
	assert.Equal(t, LangC89, LangOldest(set))
	assert.Equal(t, LangC11, LangNewest(set))
}

func TestLangIsOneFamily(t *testing.T) {
	assert.True(t, LangIsOneFamily(LangC89.Union(LangC99)))
	assert.False(t, LangIsOneFamily(LangC89.Union(LangCPP11)))
	assert.True(t, LangIsOneFamily(LangC89.Union(LangEMC)))
}

func TestLangWhichSinceUntilRange(t *testing.T) {
	assert.Equal(t, "since C99", LangWhich(LangMin(LangC99)))
	assert.Equal(t, "until C99", LangWhich(LangMax(LangC99)))
	assert.Equal(t, "in C99", LangWhich(LangC99))
	assert.Equal(t, "in any language", LangWhich(LangANY))
	assert.Equal(t, "in no supported language", LangWhich(LangNone))
}

func TestLangStringJoinsNames(t *testing.T) {
	assert.Equal(t, "C89, C99", LangC89.Union(LangC99).String())
	assert.Equal(t, "none", LangNone.String())
}

func TestLangHasAndMinus(t *testing.T) {
	set := LangC89.Union(LangC99)
	assert.True(t, set.Has(LangC89))
	assert.False(t, set.Has(LangC11))
	assert.Equal(t, LangC99, set.Minus(LangC89))
}
