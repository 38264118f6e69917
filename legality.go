package cdecl

// legalityPair is one entry of the upper-triangular legality matrix of
// §3.2/§4.2: two type bits whose combination is illegal in the
// languages named by illegalIn. A rule with A == B expresses a
// single-bit "not supported until/unless" requirement rather than a
// true cross-type clash (e.g. `long long` is never incompatible with
// anything else, it is simply absent before C99).
type legalityPair struct {
	a, b      TypeID
	illegalIn LangID
}

// legalityMatrix enumerates the illegal combinations exercised by
// this spec; it is not an exhaustive C/C++ legality table, but it
// covers every case §8's testable properties and the keyword/type
// interactions reachable from the declarator grammar in SPEC_FULL.md
// exercise.
var legalityMatrix = []legalityPair{
	// storage/base clashes, illegal in every language
	{TSTypedef, TSExtern, LangANY},
	{TSTypedef, TSStatic, LangANY},
	{TSTypedef, TSRegister, LangANY},
	{TSExtern, TSStatic, LangANY},
	{TSExtern, TSRegister, LangANY},
	{TSStatic, TSRegister, LangANY},
	{TSVirtual, TSStatic, LangANY},
	{TSVirtual, TSFriend, LangANY},
	{TBEnum, TBStruct, LangANY},
	{TBEnum, TBUnion, LangANY},
	{TBEnum, TBClass, LangANY},
	{TBStruct, TBUnion, LangANY},
	{TBStruct, TBClass, LangANY},
	{TBUnion, TBClass, LangANY},
	{TBFloat, TBDouble, LangANY},
	{TBFloat, TBLong, LangANY},
	{TBFloat, TBShort, LangANY},
	{TBComplex, TBImaginary, LangANY},
	{TBChar, TBShort, LangANY},
	{TBChar, TBLong, LangANY},
	{TBChar, TBFloat, LangANY},
	{TBChar, TBDouble, LangANY},

	// single-bit "since" requirements, expressed as a self-paired rule
	// whose illegalIn is every language older than the bit's debut,
	// across whichever families the bit belongs to at all.
	{TBLongLong, TBLongLong, LangMax(LangC95)},
	{TBBitInt, TBBitInt, LangMax(LangC17).Union(LangAnyCPP)},
	{TBChar8T, TBChar8T, LangMax(LangC17).Union(LangMax(LangCPP17))},
	{TBChar16T, TBChar16T, LangMax(LangC99).Union(LangMax(LangCPP03))},
	{TBChar32T, TBChar32T, LangMax(LangC99).Union(LangMax(LangCPP03))},
	{TBBool, TBBool, LangMax(LangC95)},
	{TQRestrict, TQRestrict, LangMax(LangC95).Union(LangAnyCPP)},
	{TQAtomic, TQAtomic, LangMax(LangC99).Union(LangAnyCPP)},
	{TSThreadLocal, TSThreadLocal, LangMax(LangC99).Union(LangMax(LangCPP03))},
	{TSConstexpr, TSConstexpr, LangMax(LangC17).Union(LangMax(LangCPP03))},
	{TSConsteval, TSConsteval, LangMax(LangCPP14).Union(LangAnyC)},
	{TSConstinit, TSConstinit, LangMax(LangCPP14).Union(LangAnyC)},
	{TANoUniqueAddress, TANoUniqueAddress, LangMax(LangCPP14).Union(LangAnyC)},
	{TAReproducible, TAReproducible, LangMax(LangCPP20).Union(LangAnyC)},
	{TAUnsequenced, TAUnsequenced, LangMax(LangCPP20).Union(LangAnyC)},
}

// TypeCheck implements §4.2 check(): it scans the upper-triangular
// legality matrix and returns, for the first illegal pair active in
// lang, the bitset of languages in which the combination IS legal
// (suitable to hand to LangWhich), along with the offending bits. ok
// is true when no matrix rule fires.
func TypeCheck(t TypeID, lang LangID) (ok bool, legalIn LangID, a, b TypeID) {
	for _, rule := range legalityMatrix {
		if !t.Has(rule.a) || !t.Has(rule.b) {
			continue
		}
		if rule.illegalIn&lang == 0 {
			continue
		}
		return false, LangANY.Minus(rule.illegalIn), rule.a, rule.b
	}
	return true, LangANY, TypeID{}, TypeID{}
}
