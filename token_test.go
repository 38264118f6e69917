package cdecl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHideSetWithAndHas(t *testing.T) {
	var h HideSet
	assert.False(t, h.Has("FOO"))

	h = h.With("FOO")
	assert.True(t, h.Has("FOO"))
	assert.False(t, h.Has("BAR"))

	h2 := h.With("BAR")
	assert.True(t, h2.Has("FOO"))
	assert.True(t, h2.Has("BAR"))
	// With must not mutate its receiver.
	assert.False(t, h.Has("BAR"))
}

func TestHideSetIntersect(t *testing.T) {
	a := HideSet{"FOO": {}, "BAR": {}}
	b := HideSet{"BAR": {}, "BAZ": {}}

	got := a.Intersect(b)
	assert.True(t, got.Has("BAR"))
	assert.False(t, got.Has("FOO"))
	assert.False(t, got.Has("BAZ"))
}

func TestTokenListPushBackInsertsSpaceToAvoidPaste(t *testing.T) {
	var l TokenList
	l = l.PushBack(Token{Kind: TokPunct, Text: "+"})
	l = l.PushBack(Token{Kind: TokPunct, Text: "+"})

	require.Len(t, l, 2)
	assert.True(t, l[1].Space)
	assert.Equal(t, "+ +", l.Str())
}

func TestTokenListPushBackIdentAdjacentToNumberPastes(t *testing.T) {
	var l TokenList
	l = l.PushBack(Token{Kind: TokIdent, Text: "foo"})
	l = l.PushBack(Token{Kind: TokNumber, Text: "1"})

	assert.True(t, l[1].Space)
}

func TestTokenListPushBackRespectsExplicitSpace(t *testing.T) {
	var l TokenList
	l = l.PushBack(Token{Kind: TokIdent, Text: "foo"})
	l = l.PushBack(Token{Kind: TokPunct, Text: ";"})

	// punctuation like `;` never risks pasting, so no forced space.
	assert.False(t, l[1].Space)
	assert.Equal(t, "foo;", l.Str())
}

func TestTokenListPushBackDoesNotForceSpaceAroundPlacemarker(t *testing.T) {
	var l TokenList
	l = l.PushBack(Token{Kind: TokIdent, Text: "foo"})
	l = l.PushBack(Token{Kind: TokPlacemarker})
	l = l.PushBack(Token{Kind: TokIdent, Text: "bar"})

	assert.False(t, l[1].Space)
	assert.False(t, l[2].Space)
}

func TestTokenListTrimStripsLeadingAndTrailingPlacemarkers(t *testing.T) {
	l := TokenList{
		{Kind: TokPlacemarker},
		{Kind: TokIdent, Text: "x"},
		{Kind: TokPlacemarker},
	}
	trimmed := l.Trim()
	require.Len(t, trimmed, 1)
	assert.Equal(t, "x", trimmed[0].Text)
}

func TestTokenListStrHonorsSpaceFlag(t *testing.T) {
	l := TokenList{
		{Kind: TokIdent, Text: "int"},
		{Kind: TokIdent, Text: "x", Space: true},
	}
	assert.Equal(t, "int x", l.Str())
}

func TestTokenListRelocatePreservesSpaceRewritesRange(t *testing.T) {
	l := TokenList{
		{Kind: TokIdent, Text: "x", Range: Range{Start: 0, End: 1}, Space: true},
	}
	at := Range{Start: 10, End: 11}
	out := l.Relocate(at)

	require.Len(t, out, 1)
	assert.Equal(t, at, out[0].Range)
	assert.True(t, out[0].Space)
	// original must not be mutated.
	assert.Equal(t, Range{Start: 0, End: 1}, l[0].Range)
}

func TestTokenListPushBackInsertsSpaceWhenMultiCharPunctuatorWouldForm(t *testing.T) {
	var l TokenList
	l = l.PushBack(Token{Kind: TokPunct, Text: "-"})
	l = l.PushBack(Token{Kind: TokPunct, Text: "->"})

	require.Len(t, l, 2)
	assert.True(t, l[1].Space, "\"-\" directly before \"->\" would re-lex as \"--\" \">\"")
	assert.Equal(t, "- ->", l.Str())
}

func TestTokenListPushBackAllRoutesEachTokenThroughPasteCheck(t *testing.T) {
	var l TokenList
	l = l.PushBack(Token{Kind: TokPunct, Text: "-"})

	l = l.PushBackAll(TokenList{{Kind: TokPunct, Text: ">"}})

	require.Len(t, l, 2)
	assert.True(t, l[1].Space, "\"-\" directly before \">\" would re-lex as \"->\"")
	assert.Equal(t, "- >", l.Str())
}

func TestFirstPunctLenMatchesLongestPrefix(t *testing.T) {
	assert.Equal(t, 3, firstPunctLen("->*x"))
	assert.Equal(t, 2, firstPunctLen("->x"))
	assert.Equal(t, 1, firstPunctLen("-x"))
	assert.Equal(t, 0, firstPunctLen(""))
}

func TestTokenListPushBackAllProducesExpectedStructuralShape(t *testing.T) {
	var l TokenList
	l = l.PushBack(Token{Kind: TokPunct, Text: "-"})
	l = l.PushBackAll(TokenList{{Kind: TokPunct, Text: "-"}, {Kind: TokPunct, Text: ";"}})

	want := TokenList{
		{Kind: TokPunct, Text: "-"},
		{Kind: TokPunct, Text: "-", Space: true},
		{Kind: TokPunct, Text: ";"},
	}
	// go-cmp's diff pinpoints exactly which token (and which field on
	// it) disagrees, rather than just "not equal" over the whole slice.
	if diff := cmp.Diff(want, l); diff != "" {
		t.Errorf("unexpected token list shape (-want +got):\n%s", diff)
	}
}

func TestTokenListWithHideSetUnionsEachToken(t *testing.T) {
	l := TokenList{
		{Kind: TokIdent, Text: "x", HideSet: HideSet{"A": {}}},
	}
	out := l.WithHideSet(HideSet{"B": {}})

	require.Len(t, out, 1)
	assert.True(t, out[0].HideSet.Has("A"))
	assert.True(t, out[0].HideSet.Has("B"))
	// original token's hide set must be untouched.
	assert.False(t, l[0].HideSet.Has("B"))
}
