package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expandSrc(t *testing.T, store *MacroStore, src string) string {
	t.Helper()
	toks := mustTokens(t, src)
	out, err := Expand(store, toks, nil)
	require.NoError(t, err)
	return out.Str()
}

func TestExpandObjectLikeMacro(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{Name: "FOO", Body: mustTokens(t, "42")}))

	assert.Equal(t, "42", expandSrc(t, s, "FOO"))
}

func TestExpandLeavesUndefinedIdentAlone(t *testing.T) {
	s := NewMacroStore()
	assert.Equal(t, "BAR", expandSrc(t, s, "BAR"))
}

func TestExpandFunctionLikeMacroSubstitutesArgs(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{
		Name: "ADD", IsFunction: true, Params: []string{"a", "b"},
		Body: mustTokens(t, "a + b"),
	}))

	assert.Equal(t, "1 + 2", expandSrc(t, s, "ADD(1, 2)"))
}

func TestExpandFunctionLikeMacroNotFollowedByParenIsNotInvoked(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{
		Name: "ADD", IsFunction: true, Params: []string{"a", "b"},
		Body: mustTokens(t, "a + b"),
	}))

	assert.Equal(t, "ADD", expandSrc(t, s, "ADD"))
}

func TestExpandSelfReferentialMacroDoesNotLoop(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{Name: "FOO", Body: mustTokens(t, "FOO")}))

	assert.Equal(t, "FOO", expandSrc(t, s, "FOO"))
}

func TestExpandIndirectSelfReferenceDoesNotLoop(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{Name: "A", Body: mustTokens(t, "B")}))
	require.NoError(t, s.Define(&Macro{Name: "B", Body: mustTokens(t, "A")}))

	assert.Equal(t, "A", expandSrc(t, s, "A"))
}

func TestExpandStringizeOperator(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{
		Name: "STR", IsFunction: true, Params: []string{"x"},
		Body: mustTokens(t, "#x"),
	}))

	assert.Equal(t, `"hello"`, expandSrc(t, s, "STR(hello)"))
}

func TestExpandPasteOperator(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{
		Name: "CAT", IsFunction: true, Params: []string{"a", "b"},
		Body: mustTokens(t, "a ## b"),
	}))

	assert.Equal(t, "foobar", expandSrc(t, s, "CAT(foo, bar)"))
}

func TestExpandVariadicMacroWithVAArgs(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{
		Name: "LOG", IsFunction: true, Params: []string{"fmt"}, IsVariadic: true,
		Body: mustTokens(t, "fmt , __VA_ARGS__"),
	}))

	assert.Equal(t, `"x" , 1, 2`, expandSrc(t, s, `LOG("x", 1, 2)`))
}

func TestExpandVAOptPresentAndAbsent(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{
		Name: "LOG", IsFunction: true, Params: []string{"fmt"}, IsVariadic: true,
		Body: mustTokens(t, `fmt __VA_OPT__ ( , __VA_ARGS__ )`),
	}))

	assert.Equal(t, `"x" , 1`, expandSrc(t, s, `LOG("x", 1)`))
	assert.Equal(t, `"x"`, expandSrc(t, s, `LOG("x")`))
}

func TestExpandArgumentIsMacroExpandedBeforeSubstitution(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{Name: "ONE", Body: mustTokens(t, "1")}))
	require.NoError(t, s.Define(&Macro{
		Name: "ID", IsFunction: true, Params: []string{"x"}, Body: mustTokens(t, "x"),
	}))

	assert.Equal(t, "1", expandSrc(t, s, "ID(ONE)"))
}

func TestExpandStringizeOperandNotMacroExpanded(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{Name: "ONE", Body: mustTokens(t, "1")}))
	require.NoError(t, s.Define(&Macro{
		Name: "STR", IsFunction: true, Params: []string{"x"}, Body: mustTokens(t, "#x"),
	}))

	assert.Equal(t, `"ONE"`, expandSrc(t, s, "STR(ONE)"))
}

func TestExpandWrongArgCountErrors(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{
		Name: "ADD", IsFunction: true, Params: []string{"a", "b"}, Body: mustTokens(t, "a + b"),
	}))

	_, err := Expand(s, mustTokens(t, "ADD(1)"), nil)
	require.Error(t, err)
}

func TestExpandUnterminatedArgListErrors(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{
		Name: "ADD", IsFunction: true, Params: []string{"a", "b"}, Body: mustTokens(t, "a + b"),
	}))

	_, err := Expand(s, mustTokens(t, "ADD(1, 2"), nil)
	require.Error(t, err)
}

func TestExpandTraceRecordsSteps(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{Name: "FOO", Body: mustTokens(t, "42")}))

	trace := &ExpandTrace{}
	_, err := Expand(s, mustTokens(t, "FOO"), trace)
	require.NoError(t, err)

	require.Len(t, trace.Steps, 1)
	assert.Equal(t, "FOO", trace.Steps[0].MacroName)
	assert.Equal(t, "42", trace.Steps[0].After)
}

func TestExpandSubstitutedArgumentNeverPastesWithBodyToken(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{
		Name: "P", IsFunction: true, Params: []string{"x"}, Body: mustTokens(t, "-x"),
	}))

	// body's `-` followed directly by the argument `->` must not
	// collapse into a single re-lexed punctuator.
	assert.Equal(t, "- ->", expandSrc(t, s, "P(->)"))
}

func TestExpandVAOptSpliceNeverPastesWithFollowingBodyToken(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{
		Name: "M", IsFunction: true, Params: []string{"a"}, IsVariadic: true,
		Body: mustTokens(t, `a __VA_OPT__ ( + ) +b`),
	}))

	assert.Equal(t, "1 + +b", expandSrc(t, s, "M(1, 2)"))
}

func TestExpandNestedVAOptIsRejected(t *testing.T) {
	s := NewMacroStore()
	require.NoError(t, s.Define(&Macro{
		Name: "M", IsFunction: true, Params: []string{"a"}, IsVariadic: true,
		Body: mustTokens(t, `a __VA_OPT__ ( __VA_OPT__ ( x ) )`),
	}))

	_, err := Expand(s, mustTokens(t, "M(1, 2)"), nil)
	require.Error(t, err)
	_, ok := err.(PreprocessorError)
	assert.True(t, ok)
}
