package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGibberishDeclarationPlainInt(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	b := NewBuiltin(arena, 0, Range{})
	b.SetType(TBInt)

	assert.Equal(t, "int x", GibberishDeclaration(b, "x", LangANY))
}

func TestGibberishDeclarationArrayOfPointersNoParens(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	// `int *a[3]`: array of 3 pointers to int. An unparenthesized `[]`
	// binds to the identifier tighter than `*`, so direct-declarator
	// composition puts the array closest to the name (root) with the
	// pointer nested in its `of` chain, toward the base type.
	b := NewBuiltin(arena, 0, Range{})
	b.SetType(TBInt)
	ptr := NewPointer(arena, 0, Range{})
	SetParent(b, ptr)
	arr := NewArray(arena, 0, Range{})
	arr.SizeKind, arr.Size = ArraySizeInt, 3
	SetParent(ptr, arr)

	assert.Equal(t, "int *a[3]", GibberishDeclaration(arr, "a", LangANY))
}

func TestGibberishDeclarationPointerToArrayNeedsParens(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	// `int (*a)[3]`: pointer to array of 3 ints. Parenthesizing `*a`
	// in source makes the pointer the direct (root) declarator, with
	// the array suffix nested in its `of` chain — so rendering must
	// reintroduce the parens to keep `[3]` from binding to the bare
	// name.
	b := NewBuiltin(arena, 0, Range{})
	b.SetType(TBInt)
	arr := NewArray(arena, 0, Range{})
	arr.SizeKind, arr.Size = ArraySizeInt, 3
	SetParent(b, arr)
	ptr := NewPointer(arena, 0, Range{})
	SetParent(arr, ptr)

	assert.Equal(t, "int (*a)[3]", GibberishDeclaration(ptr, "a", LangANY))
}

func TestGibberishDeclarationFunctionReturningPointerNoParens(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	// `int *f(int)`: function returning pointer to int. Same binding
	// rule as the array case: `()` attaches to the name first, so the
	// function is root and the pointer nests toward the base type.
	b := NewBuiltin(arena, 0, Range{})
	b.SetType(TBInt)
	ptr := NewPointer(arena, 0, Range{})
	SetParent(b, ptr)
	fn := NewFunction(arena, 0, Range{})
	param := NewBuiltin(arena, 0, Range{})
	param.SetType(TBInt)
	fn.Params = []Node{param}
	ListSetParamOf(fn.Params, fn)
	SetParent(ptr, fn)

	assert.Equal(t, "int *f(int)", GibberishDeclaration(fn, "f", LangANY))
}

func TestGibberishDeclarationPointerToFunctionNeedsParens(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	// `int (*f)(int)`: pointer to function taking int, returning int.
	b := NewBuiltin(arena, 0, Range{})
	b.SetType(TBInt)
	fn := NewFunction(arena, 0, Range{})
	param := NewBuiltin(arena, 0, Range{})
	param.SetType(TBInt)
	fn.Params = []Node{param}
	ListSetParamOf(fn.Params, fn)
	SetParent(b, fn)
	ptr := NewPointer(arena, 0, Range{})
	SetParent(fn, ptr)

	assert.Equal(t, "int (*f)(int)", GibberishDeclaration(ptr, "f", LangANY))
}

func TestGibberishDeclarationConstPointer(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	b := NewBuiltin(arena, 0, Range{})
	b.SetType(TBInt)
	ptr := NewPointer(arena, 0, Range{})
	ptr.SetType(TQConst)
	SetParent(b, ptr)

	assert.Equal(t, "int *const x", GibberishDeclaration(ptr, "x", LangANY))
}

func TestGibberishDeclarationStructTag(t *testing.T) {
	arena := NewArena()
	defer arena.Dispose()

	rec := NewRecord(arena, 0, Range{}, RecordStruct)
	rec.SetSName(NewSName("point"))

	assert.Equal(t, "struct point p", GibberishDeclaration(rec, "p", LangANY))
}
