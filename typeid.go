package cdecl

import (
	"fmt"
	"strings"
)

// TypeID is a wide bitset over base types, storage classes and
// storage-adjacent annotations, attributes, and qualifiers/ref-quals
// (§3.2). It is wider than a machine word, so it is stored as two
// uint64 words rather than a single scalar, mirroring the teacher's
// `charset` fixed-size bitmap (`oracle_charset.go`/`vm_charset.go`:
// "a bitmap... using shifts instead of div and mod").
type TypeID struct {
	lo, hi uint64
}

// tbit is a single bit position in [0,128) within a TypeID.
type tbit uint8

func mkbit(n int) tbit { return tbit(n) }

func (t TypeID) has(b tbit) bool {
	if b < 64 {
		return t.lo&(1<<uint(b)) != 0
	}
	return t.hi&(1<<uint(b-64)) != 0
}

func (t *TypeID) set(b tbit) {
	if b < 64 {
		t.lo |= 1 << uint(b)
	} else {
		t.hi |= 1 << uint(b-64)
	}
}

func (t *TypeID) clear(b tbit) {
	if b < 64 {
		t.lo &^= 1 << uint(b)
	} else {
		t.hi &^= 1 << uint(b-64)
	}
}

// Has reports whether every bit of other is present in t.
func (t TypeID) Has(other TypeID) bool {
	return t.lo&other.lo == other.lo && t.hi&other.hi == other.hi
}

// HasAny reports whether t and other share at least one bit.
func (t TypeID) HasAny(other TypeID) bool {
	return t.lo&other.lo != 0 || t.hi&other.hi != 0
}

// Union returns the bitwise union of t and other.
func (t TypeID) Union(other TypeID) TypeID {
	return TypeID{t.lo | other.lo, t.hi | other.hi}
}

// Minus returns t with every bit of other cleared.
func (t TypeID) Minus(other TypeID) TypeID {
	return TypeID{t.lo &^ other.lo, t.hi &^ other.hi}
}

// IsNone reports whether no bit is set.
func (t TypeID) IsNone() bool { return t.lo == 0 && t.hi == 0 }

func bitOf(n int) TypeID {
	var t TypeID
	t.set(mkbit(n))
	return t
}

// ---- Base types ----

const (
	bVoid = iota
	bAutoType
	bBool
	bChar8T
	bChar16T
	bChar32T
	bWCharT
	bShort
	bInt
	bLong
	bLongLong
	bSigned
	bUnsigned
	bFloat
	bDouble
	bComplex
	bImaginary
	bEnum
	bStruct
	bClass
	bUnion
	bNamespace
	bScope
	bTypedef // typedef-indirection marker
	bBitInt
	bAccum // Embedded-C _Accum
	bFract // Embedded-C _Fract
	bSat   // Embedded-C _Sat
	bTypeof
	bChar
)

var (
	TBVoid      = bitOf(bVoid)
	TBAutoType  = bitOf(bAutoType)
	TBBool      = bitOf(bBool)
	TBChar8T    = bitOf(bChar8T)
	TBChar16T   = bitOf(bChar16T)
	TBChar32T   = bitOf(bChar32T)
	TBWCharT    = bitOf(bWCharT)
	TBShort     = bitOf(bShort)
	TBInt       = bitOf(bInt)
	TBLong      = bitOf(bLong)
	TBLongLong  = bitOf(bLongLong)
	TBSigned    = bitOf(bSigned)
	TBUnsigned  = bitOf(bUnsigned)
	TBFloat     = bitOf(bFloat)
	TBDouble    = bitOf(bDouble)
	TBComplex   = bitOf(bComplex)
	TBImaginary = bitOf(bImaginary)
	TBEnum      = bitOf(bEnum)
	TBStruct    = bitOf(bStruct)
	TBClass     = bitOf(bClass)
	TBUnion     = bitOf(bUnion)
	TBNamespace = bitOf(bNamespace)
	TBScope     = bitOf(bScope)
	TBTypedef   = bitOf(bTypedef)
	TBBitInt    = bitOf(bBitInt)
	TBAccum     = bitOf(bAccum)
	TBFract     = bitOf(bFract)
	TBSat       = bitOf(bSat)
	TBTypeof    = bitOf(bTypeof)
	TBChar      = bitOf(bChar)

	typeBaseMask = TBVoid.Union(TBAutoType).Union(TBBool).Union(TBChar8T).Union(TBChar16T).
			Union(TBChar32T).Union(TBWCharT).Union(TBShort).Union(TBInt).Union(TBLong).
			Union(TBLongLong).Union(TBSigned).Union(TBUnsigned).Union(TBFloat).Union(TBDouble).
			Union(TBComplex).Union(TBImaginary).Union(TBEnum).Union(TBStruct).Union(TBClass).
			Union(TBUnion).Union(TBNamespace).Union(TBScope).Union(TBTypedef).Union(TBBitInt).
			Union(TBAccum).Union(TBFract).Union(TBSat).Union(TBTypeof).Union(TBChar)
)

// ---- Storage-like ----

const (
	sExtern = iota + 32
	sStatic
	sRegister
	sMutable
	sThreadLocal
	sTypedef
	sAppleBlock
	sAutoStorage
	sConstexpr
	sConsteval
	sConstinit
	sDefault
	sDelete
	sExplicit
	sExport
	sFinal
	sFriend
	sInline
	sNoexcept
	sOverride
	sPureVirtual // `= 0`
	sThrowEmpty  // `throw()`
	sVirtual
)

var (
	TSExtern      = bitOf(sExtern)
	TSStatic      = bitOf(sStatic)
	TSRegister    = bitOf(sRegister)
	TSMutable     = bitOf(sMutable)
	TSThreadLocal = bitOf(sThreadLocal)
	TSTypedef     = bitOf(sTypedef)
	TSAppleBlock  = bitOf(sAppleBlock)
	TSAutoStorage = bitOf(sAutoStorage)
	TSConstexpr   = bitOf(sConstexpr)
	TSConsteval   = bitOf(sConsteval)
	TSConstinit   = bitOf(sConstinit)
	TSDefault     = bitOf(sDefault)
	TSDelete      = bitOf(sDelete)
	TSExplicit    = bitOf(sExplicit)
	TSExport      = bitOf(sExport)
	TSFinal       = bitOf(sFinal)
	TSFriend      = bitOf(sFriend)
	TSInline      = bitOf(sInline)
	TSNoexcept    = bitOf(sNoexcept)
	TSOverride    = bitOf(sOverride)
	TSPureVirtual = bitOf(sPureVirtual)
	TSThrowEmpty  = bitOf(sThrowEmpty)
	TSVirtual     = bitOf(sVirtual)

	typeStorageMask = TSExtern.Union(TSStatic).Union(TSRegister).Union(TSMutable).Union(TSThreadLocal).
				Union(TSTypedef).Union(TSAppleBlock).Union(TSAutoStorage).Union(TSConstexpr).
				Union(TSConsteval).Union(TSConstinit).Union(TSDefault).Union(TSDelete).
				Union(TSExplicit).Union(TSExport).Union(TSFinal).Union(TSFriend).Union(TSInline).
				Union(TSNoexcept).Union(TSOverride).Union(TSPureVirtual).Union(TSThrowEmpty).
				Union(TSVirtual)
)

// ---- Attributes ----

const (
	aCarriesDependency = iota + 64
	aDeprecated
	aMaybeUnused
	aNodiscard
	aNoreturn
	aNoUniqueAddress
	aReproducible
	aUnsequenced
)

var (
	TACarriesDependency = bitOf(aCarriesDependency)
	TADeprecated        = bitOf(aDeprecated)
	TAMaybeUnused       = bitOf(aMaybeUnused)
	TANodiscard         = bitOf(aNodiscard)
	TANoreturn          = bitOf(aNoreturn)
	TANoUniqueAddress   = bitOf(aNoUniqueAddress)
	TAReproducible      = bitOf(aReproducible)
	TAUnsequenced       = bitOf(aUnsequenced)

	typeAttrMask = TACarriesDependency.Union(TADeprecated).Union(TAMaybeUnused).Union(TANodiscard).
			Union(TANoreturn).Union(TANoUniqueAddress).Union(TAReproducible).Union(TAUnsequenced)
)

// ---- Qualifiers / ref-quals ----

const (
	qConst = iota + 80
	qVolatile
	qRestrict
	qAtomic
	qLValueRef
	qRValueRef
)

var (
	TQConst     = bitOf(qConst)
	TQVolatile  = bitOf(qVolatile)
	TQRestrict  = bitOf(qRestrict)
	TQAtomic    = bitOf(qAtomic)
	TQLValueRef = bitOf(qLValueRef)
	TQRValueRef = bitOf(qRValueRef)

	typeQualMask = TQConst.Union(TQVolatile).Union(TQRestrict).Union(TQAtomic).
			Union(TQLValueRef).Union(TQRValueRef)
)

// modifierMask is the subset of base-type bits allowed to coexist per
// the §3.2 invariant ("signed|unsigned combines with
// short|long|long long"); every other family allows at most one
// active bit.
var modifierMask = TBShort.Union(TBLong).Union(TBLongLong).Union(TBSigned).Union(TBUnsigned)

// TypeAdd implements §4.2 add(): it rejects a bit already present in
// dest unless dest and new both denote a bare `long` with no float
// component, in which case the result promotes to `long long`; a
// second such promotion attempt ("already present") is rejected.
func TypeAdd(dest TypeID, new TypeID) (TypeID, error) {
	if new == TBLong && dest.Has(TBLongLong) {
		return dest, fmt.Errorf("%q already present", typeBitName(TBLongLong))
	}
	if !dest.HasAny(new) {
		return dest.Union(new), nil
	}
	if new == TBLong && dest.Has(TBLong) && !dest.HasAny(TBFloat.Union(TBDouble)) {
		return dest.Minus(TBLong).Union(TBLongLong), nil
	}
	return dest, fmt.Errorf("%q already present", typeBitName(new))
}

// typeBitName returns the canonical name of the (expected single) bit
// set in t, or a comma list if more than one bit is set.
func typeBitName(t TypeID) string {
	names := typeBitNames(t)
	return strings.Join(names, ", ")
}

var allTypeNames = buildTypeNameTable()

func buildTypeNameTable() map[TypeID]string {
	return map[TypeID]string{
		TBVoid: "void", TBAutoType: "auto", TBBool: "bool", TBChar8T: "char8_t",
		TBChar16T: "char16_t", TBChar32T: "char32_t", TBWCharT: "wchar_t", TBShort: "short",
		TBInt: "int", TBLong: "long", TBLongLong: "long long", TBSigned: "signed",
		TBUnsigned: "unsigned", TBFloat: "float", TBDouble: "double", TBComplex: "_Complex",
		TBImaginary: "_Imaginary", TBEnum: "enum", TBStruct: "struct", TBClass: "class",
		TBUnion: "union", TBNamespace: "namespace", TBScope: "scope", TBTypedef: "",
		TBBitInt: "_BitInt", TBAccum: "_Accum", TBFract: "_Fract", TBSat: "_Sat", TBTypeof: "typeof",
		TBChar: "char",
		TSExtern: "extern", TSStatic: "static", TSRegister: "register", TSMutable: "mutable",
		TSThreadLocal: "thread_local", TSTypedef: "typedef", TSAppleBlock: "__block",
		TSAutoStorage: "auto", TSConstexpr: "constexpr", TSConsteval: "consteval",
		TSConstinit: "constinit", TSDefault: "default", TSDelete: "delete", TSExplicit: "explicit",
		TSExport: "export", TSFinal: "final", TSFriend: "friend", TSInline: "inline",
		TSNoexcept: "noexcept", TSOverride: "override", TSPureVirtual: "= 0",
		TSThrowEmpty: "throw()", TSVirtual: "virtual",
		TACarriesDependency: "carries_dependency", TADeprecated: "deprecated",
		TAMaybeUnused: "maybe_unused", TANodiscard: "nodiscard", TANoreturn: "noreturn",
		TANoUniqueAddress: "no_unique_address", TAReproducible: "reproducible",
		TAUnsequenced: "unsequenced",
		TQConst:       "const", TQVolatile: "volatile", TQRestrict: "restrict", TQAtomic: "_Atomic",
		TQLValueRef: "&", TQRValueRef: "&&",
	}
}

func typeBitNames(t TypeID) []string {
	var out []string
	for bit, name := range allTypeNames {
		if t.Has(bit) && name != "" {
			out = append(out, name)
		}
	}
	return out
}

// TypeNormalize implements §4.2 normalize(): clears a bare `signed`
// with no `char`, and defaults to `int` when no base type survives.
func TypeNormalize(t TypeID) TypeID {
	if t.Has(TBSigned) && !t.Has(TBChar) {
		t = t.Minus(TBSigned)
	}
	if t.Minus(typeStorageMask).Minus(typeAttrMask).Minus(typeQualMask).IsNone() {
		t = t.Union(TBInt)
	}
	return t
}

// TypeIsSizeT recognizes `unsigned long` (optionally with `int`).
func TypeIsSizeT(t TypeID) bool {
	base := t.Minus(typeStorageMask).Minus(typeAttrMask).Minus(typeQualMask)
	withoutInt := base.Minus(TBInt)
	return withoutInt.Has(TBUnsigned.Union(TBLong)) && withoutInt.Minus(TBUnsigned).Minus(TBLong).IsNone()
}

// TypeName renders t following storage -> qualifiers -> base
// modifiers -> base ordering, choosing the language-appropriate
// spelling of `_Bool`/`bool` and `_Noreturn`/`noreturn` (§4.2 name()).
func TypeName(t TypeID, lang LangID) string {
	var parts []string

	appendIf := func(bit TypeID, name string) {
		if t.Has(bit) {
			parts = append(parts, name)
		}
	}

	appendIf(TSExtern, "extern")
	appendIf(TSStatic, "static")
	appendIf(TSThreadLocal, "thread_local")
	appendIf(TSRegister, "register")
	appendIf(TSMutable, "mutable")
	appendIf(TSConstexpr, "constexpr")
	appendIf(TSInline, "inline")
	appendIf(TSVirtual, "virtual")

	appendIf(TQConst, "const")
	appendIf(TQVolatile, "volatile")
	appendIf(TQRestrict, "restrict")
	appendIf(TQAtomic, "_Atomic")

	appendIf(TBSigned, "signed")
	appendIf(TBUnsigned, "unsigned")
	appendIf(TBShort, "short")
	appendIf(TBLong, "long")
	appendIf(TBLongLong, "long long")

	switch {
	case t.Has(TBBool):
		if lang&LangAnyCPP == 0 && LangMax(LangC17)&lang != 0 {
			parts = append(parts, "_Bool")
		} else {
			parts = append(parts, "bool")
		}
	case t.Has(TBVoid):
		parts = append(parts, "void")
	case t.Has(TBChar8T):
		parts = append(parts, "char8_t")
	case t.Has(TBChar16T):
		parts = append(parts, "char16_t")
	case t.Has(TBChar32T):
		parts = append(parts, "char32_t")
	case t.Has(TBWCharT):
		parts = append(parts, "wchar_t")
	case t.Has(TBChar):
		parts = append(parts, "char")
	case t.Has(TBFloat):
		parts = append(parts, "float")
	case t.Has(TBDouble):
		parts = append(parts, "double")
	default:
		// int is spelled out whenever a modifier implies it, or when
		// nothing else named a base at all (normalize() guarantees
		// TBInt is set in the latter case).
		if t.HasAny(modifierMask) || t.Has(TBInt) {
			parts = append(parts, "int")
		}
	}

	if t.Has(TANoreturn) {
		if lang&LangAnyCPP == 0 && LangMax(LangC17)&lang != 0 {
			parts = append(parts, "_Noreturn")
		} else {
			parts = append(parts, "[[noreturn]]")
		}
	}

	return strings.Join(parts, " ")
}
