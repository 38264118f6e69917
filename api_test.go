package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionExplainPlainDeclaration(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	got, err := s.Explain("int x")
	require.NoError(t, err)
	require.Equal(t, "declare x as int", got)
}

func TestSessionExplainArrayOfPointers(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	got, err := s.Explain("int *a[3]")
	require.NoError(t, err)
	require.Equal(t, "declare a as array 3 of pointer to int", got)
}

func TestSessionExplainPointerToArray(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	got, err := s.Explain("int (*a)[3]")
	require.NoError(t, err)
	require.Equal(t, "declare a as pointer to array 3 of int", got)
}

func TestSessionDeclareRoundTripsArrayOfPointers(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	english, err := s.Explain("int *a[3]")
	require.NoError(t, err)

	phrase := english[len("declare a as "):]
	gibberish, err := s.Declare("a", phrase)
	require.NoError(t, err)
	require.Equal(t, "int *a[3]", gibberish)
}

func TestSessionDeclareRoundTripsPointerToArray(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	english, err := s.Explain("int (*a)[3]")
	require.NoError(t, err)

	phrase := english[len("declare a as "):]
	gibberish, err := s.Declare("a", phrase)
	require.NoError(t, err)
	require.Equal(t, "int (*a)[3]", gibberish)
}

func TestSessionDeclareRoundTripsFunctionReturningPointer(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	english, err := s.Explain("int *f(int)")
	require.NoError(t, err)

	phrase := english[len("declare f as "):]
	gibberish, err := s.Declare("f", phrase)
	require.NoError(t, err)
	require.Equal(t, "int *f(int)", gibberish)
}

func TestSessionDeclareRoundTripsPointerToFunction(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	english, err := s.Explain("int (*f)(int)")
	require.NoError(t, err)

	phrase := english[len("declare f as "):]
	gibberish, err := s.Declare("f", phrase)
	require.NoError(t, err)
	require.Equal(t, "int (*f)(int)", gibberish)
}

func TestSessionCastExplainsIntoTargetType(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	got, err := s.Cast("x", "int *", CastStatic)
	require.NoError(t, err)
	require.Equal(t, "static cast x into pointer to int", got)
}

func TestSessionDefineAndExpandObjectLikeMacro(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	err := s.Define("MAX", false, nil, false, "", "100")
	require.NoError(t, err)

	out, _, err := s.ExpandText("int x = MAX;")
	require.NoError(t, err)
	require.Equal(t, "int x = 100;", out)
}

func TestSessionDefineAndExpandFunctionLikeMacro(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	err := s.Define("ADD", true, []string{"a", "b"}, false, "", "(a) + (b)")
	require.NoError(t, err)

	out, _, err := s.ExpandText("ADD(1, 2)")
	require.NoError(t, err)
	require.Equal(t, "(1) + (2)", out)
}

func TestSessionExpandTextTracesWhenEnabled(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	require.NoError(t, s.Define("FOO", false, nil, false, "", "bar"))
	s.Config.SetBool("macro.trace", true)

	_, trace, err := s.ExpandText("FOO")
	require.NoError(t, err)
	require.NotNil(t, trace)
}

func TestSessionExpandTextNoTraceByDefault(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	require.NoError(t, s.Define("FOO", false, nil, false, "", "bar"))

	_, trace, err := s.ExpandText("FOO")
	require.NoError(t, err)
	require.Nil(t, trace)
}

func TestSessionUndefRemovesMacro(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	require.NoError(t, s.Define("FOO", false, nil, false, "", "bar"))
	s.Undef("FOO")

	out, _, err := s.ExpandText("FOO")
	require.NoError(t, err)
	require.Equal(t, "FOO", out)
}

func TestSessionAddTypedefRecognizedByExplain(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	b := NewBuiltin(s.Arena, 0, Range{})
	b.SetType(TBInt)
	s.AddTypedef("size_t", b)

	got, err := s.Explain("size_t n")
	require.NoError(t, err)
	require.Equal(t, "declare n as size_t", got)
}

func TestSessionExplainUnknownIdentifierGetsSuggestion(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	b := NewBuiltin(s.Arena, 0, Range{})
	b.SetType(TBInt)
	s.AddTypedef("size_t", b)
	s.Config.SetInt("dym.max_candidates", 20)

	_, err := s.Explain("sized_t n")
	require.Error(t, err)
	le, ok := err.(LookupError)
	require.True(t, ok)
	require.Contains(t, le.Suggestions, "size_t")
}

func TestSessionExplainSuggestionsOffWhenDisabled(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	b := NewBuiltin(s.Arena, 0, Range{})
	b.SetType(TBInt)
	s.AddTypedef("size_t", b)
	s.Config.SetBool("dym.enabled", false)

	_, err := s.Explain("sized_t n")
	require.Error(t, err)
	le, ok := err.(LookupError)
	require.True(t, ok)
	require.Empty(t, le.Suggestions)
}

func TestSessionExplainRejectsIllegalCombination(t *testing.T) {
	s := NewSession(LangANY)
	defer s.Close()

	_, err := s.Explain("extern static int x")
	require.Error(t, err)
	_, ok := err.(SemanticError)
	require.True(t, ok)
}

func TestSessionExplainLangGatesSinceRequirement(t *testing.T) {
	s := NewSession(LangC89)
	defer s.Close()

	_, err := s.Explain("long long x")
	require.Error(t, err)
	sem, ok := err.(SemanticError)
	require.True(t, ok)
	require.NotZero(t, sem.Since)
}
