package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustTokenize(t *testing.T, src string) TokenList {
	t.Helper()
	toks, err := Tokenize([]byte(src))
	require.NoError(t, err)
	return toks
}

func TestParseDeclarationArrayOfPointersNoParens(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	toks := mustTokenize(t, "int *a[3]")
	n, name, err := ParseDeclaration(toks, arena, LangANY, nil)
	require.NoError(t, err)
	require.Equal(t, "a", name)

	_, isArray := n.(*ArrayNode)
	require.True(t, isArray, "root should be the array node, got %T", n)

	assertEqualGibberish(t, "int *a[3]", n, name)
}

func TestParseDeclarationPointerToArrayNeedsParens(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	toks := mustTokenize(t, "int (*a)[3]")
	n, name, err := ParseDeclaration(toks, arena, LangANY, nil)
	require.NoError(t, err)
	require.Equal(t, "a", name)

	_, isPointer := n.(*PointerNode)
	require.True(t, isPointer, "root should be the pointer node, got %T", n)

	assertEqualGibberish(t, "int (*a)[3]", n, name)
}

func TestParseDeclarationFunctionReturningPointerNoParens(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	toks := mustTokenize(t, "int *f(int)")
	n, name, err := ParseDeclaration(toks, arena, LangANY, nil)
	require.NoError(t, err)
	require.Equal(t, "f", name)

	_, isFunc := n.(*FunctionNode)
	require.True(t, isFunc, "root should be the function node, got %T", n)

	assertEqualGibberish(t, "int *f(int)", n, name)
}

func TestParseDeclarationPointerToFunctionNeedsParens(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	toks := mustTokenize(t, "int (*f)(int)")
	n, name, err := ParseDeclaration(toks, arena, LangANY, nil)
	require.NoError(t, err)
	require.Equal(t, "f", name)

	_, isPointer := n.(*PointerNode)
	require.True(t, isPointer, "root should be the pointer node, got %T", n)

	assertEqualGibberish(t, "int (*f)(int)", n, name)
}

func TestParseDeclarationConstPointerToConstChain(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	// `T * const * p`: p is a pointer to a const pointer to T, so the
	// star closest to the identifier (parsed last) ends up outermost.
	toks := mustTokenize(t, "int * const *p")
	n, name, err := ParseDeclaration(toks, arena, LangANY, nil)
	require.NoError(t, err)
	require.Equal(t, "p", name)

	outer, ok := n.(*PointerNode)
	require.True(t, ok)
	require.False(t, outer.Type().Has(TQConst))

	inner, ok := outer.of.(*PointerNode)
	require.True(t, ok)
	require.True(t, inner.Type().Has(TQConst))
}

func TestParseDeclarationTypedefNameRecognized(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	b := NewBuiltin(arena, 0, Range{})
	b.SetType(TBInt)
	typedefs := map[string]Node{"size_t": b}

	toks := mustTokenize(t, "size_t n")
	n, name, err := ParseDeclaration(toks, arena, LangANY, typedefs)
	require.NoError(t, err)
	require.Equal(t, "n", name)

	ref, ok := n.(*TypedefRefNode)
	require.True(t, ok)
	require.Equal(t, "size_t", ref.SName().String())
}

func TestParseDeclarationRejectsIllegalStorageCombo(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	toks := mustTokenize(t, "extern static int x")
	_, _, err := ParseDeclaration(toks, arena, LangANY, nil)
	require.Error(t, err)
	_, ok := err.(SemanticError)
	require.True(t, ok, "expected SemanticError, got %T: %v", err, err)
}

func TestParseDeclarationRejectsLongLongBeforeC99(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	toks := mustTokenize(t, "long long x")
	_, _, err := ParseDeclaration(toks, arena, LangC89, nil)
	require.Error(t, err)
	sem, ok := err.(SemanticError)
	require.True(t, ok)
	require.NotZero(t, sem.Since)
}

func TestParseDeclarationAllowsLongLongInC99(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	toks := mustTokenize(t, "long long x")
	_, name, err := ParseDeclaration(toks, arena, LangC99, nil)
	require.NoError(t, err)
	require.Equal(t, "x", name)
}

func TestParseTypeNameRejectsNamedDeclarator(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	toks := mustTokenize(t, "int x")
	_, err := ParseTypeName(toks, arena, LangANY, nil)
	require.Error(t, err)
	_, ok := err.(SyntaxError)
	require.True(t, ok)
}

func TestParseTypeNameAcceptsAbstractDeclarator(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	toks := mustTokenize(t, "int *")
	n, err := ParseTypeName(toks, arena, LangANY, nil)
	require.NoError(t, err)
	_, ok := n.(*PointerNode)
	require.True(t, ok)
}

func TestParseDeclarationRejectsTrailingTokens(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	toks := mustTokenize(t, "int x y")
	_, _, err := ParseDeclaration(toks, arena, LangANY, nil)
	require.Error(t, err)
	_, ok := err.(SyntaxError)
	require.True(t, ok)
}

func TestParseDeclarationFunctionParamNames(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	toks := mustTokenize(t, "void f(int count, char *name)")
	n, name, err := ParseDeclaration(toks, arena, LangANY, nil)
	require.NoError(t, err)
	require.Equal(t, "f", name)

	fn, ok := n.(*FunctionNode)
	require.True(t, ok)
	require.Len(t, fn.Params, 2)
	require.Equal(t, "count", fn.Params[0].SName().Local())
	require.Equal(t, "name", fn.Params[1].SName().Local())
}

func assertEqualGibberish(t *testing.T, want string, n Node, name string) {
	t.Helper()
	got := GibberishDeclaration(n, name, LangANY)
	require.Equal(t, want, got)
}
