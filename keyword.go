package cdecl

import "sync"

// KeywordInfo describes one reserved word: the languages it's
// reserved in, the type bit it contributes to a declaration (zero for
// non-type keywords like `if`/`return`), and, for a synonym spelling
// (`_Noreturn` vs. `noreturn` vs. `[[noreturn]]`), the canonical
// literal it stands in for.
type KeywordInfo struct {
	Literal string
	Lang    LangID
	Type    TypeID
	Synonym string // "" if Literal is itself canonical
}

// cKeywords is the C/C++ declaration-relevant keyword table (§3.5).
// It is not an exhaustive C/C++ reserved-word list — control-flow and
// expression keywords that never appear in a declarator are omitted,
// since nothing in this spec's grammar needs to recognize them as
// reserved.
var cKeywords = []KeywordInfo{
	{Literal: "void", Lang: LangANY, Type: TBVoid},
	{Literal: "char", Lang: LangANY, Type: TBChar},
	{Literal: "short", Lang: LangANY, Type: TBShort},
	{Literal: "int", Lang: LangANY, Type: TBInt},
	{Literal: "long", Lang: LangANY, Type: TBLong},
	{Literal: "float", Lang: LangANY, Type: TBFloat},
	{Literal: "double", Lang: LangANY, Type: TBDouble},
	{Literal: "signed", Lang: LangANY, Type: TBSigned},
	{Literal: "unsigned", Lang: LangANY, Type: TBUnsigned},
	{Literal: "_Bool", Lang: LangMin(LangC99), Type: TBBool},
	{Literal: "bool", Lang: LangC23.Union(LangAnyCPP), Type: TBBool, Synonym: "_Bool"},
	{Literal: "_Complex", Lang: LangMin(LangC99), Type: TBComplex},
	{Literal: "_Imaginary", Lang: LangMin(LangC99), Type: TBImaginary},
	{Literal: "wchar_t", Lang: LangAnyCPP.Union(LangMin(LangC95)), Type: TBWCharT},
	{Literal: "char8_t", Lang: LangMin(LangC23).Union(LangMin(LangCPP20)), Type: TBChar8T},
	{Literal: "char16_t", Lang: LangMin(LangC11).Union(LangMin(LangCPP11)), Type: TBChar16T},
	{Literal: "char32_t", Lang: LangMin(LangC11).Union(LangMin(LangCPP11)), Type: TBChar32T},
	{Literal: "auto", Lang: LangANY},
	{Literal: "void*", Lang: LangNone}, // never a literal token; placeholder kept out of the lookup map

	{Literal: "const", Lang: LangANY, Type: TQConst},
	{Literal: "volatile", Lang: LangANY, Type: TQVolatile},
	{Literal: "restrict", Lang: LangMin(LangC99), Type: TQRestrict},
	{Literal: "__restrict", Lang: LangANY, Type: TQRestrict, Synonym: "restrict"},
	{Literal: "_Atomic", Lang: LangMin(LangC11), Type: TQAtomic},

	{Literal: "extern", Lang: LangANY, Type: TSExtern},
	{Literal: "static", Lang: LangANY, Type: TSStatic},
	{Literal: "register", Lang: LangANY, Type: TSRegister},
	{Literal: "typedef", Lang: LangANY, Type: TSTypedef},
	{Literal: "inline", Lang: LangMin(LangC99).Union(LangAnyCPP), Type: TSInline},
	{Literal: "_Thread_local", Lang: LangMin(LangC11), Type: TSThreadLocal},
	{Literal: "thread_local", Lang: LangMin(LangC23).Union(LangMin(LangCPP11)), Type: TSThreadLocal, Synonym: "_Thread_local"},
	{Literal: "virtual", Lang: LangAnyCPP, Type: TSVirtual},
	{Literal: "friend", Lang: LangAnyCPP, Type: TSFriend},
	{Literal: "mutable", Lang: LangAnyCPP, Type: TSMutable},
	{Literal: "explicit", Lang: LangAnyCPP, Type: TSExplicit},
	{Literal: "constexpr", Lang: LangMin(LangC23).Union(LangMin(LangCPP11)), Type: TSConstexpr},
	{Literal: "consteval", Lang: LangMin(LangCPP20), Type: TSConsteval},
	{Literal: "constinit", Lang: LangMin(LangCPP20), Type: TSConstinit},

	{Literal: "struct", Lang: LangANY, Type: TBStruct},
	{Literal: "union", Lang: LangANY, Type: TBUnion},
	{Literal: "enum", Lang: LangANY, Type: TBEnum},
	{Literal: "class", Lang: LangAnyCPP, Type: TBClass},
	{Literal: "typename", Lang: LangAnyCPP},
	{Literal: "template", Lang: LangAnyCPP},
	{Literal: "concept", Lang: LangMin(LangCPP20)},
	{Literal: "namespace", Lang: LangAnyCPP},
	{Literal: "using", Lang: LangAnyCPP},
	{Literal: "operator", Lang: LangAnyCPP},
	{Literal: "noexcept", Lang: LangMin(LangCPP11)},
	{Literal: "_Noreturn", Lang: LangMin(LangC11).Minus(LangMin(LangC23))},
	{Literal: "noreturn", Lang: LangC23, Synonym: "_Noreturn"},
	{Literal: "_Alignas", Lang: LangMin(LangC11).Minus(LangMin(LangC23))},
	{Literal: "alignas", Lang: LangC23.Union(LangMin(LangCPP11)), Synonym: "_Alignas"},
	{Literal: "_Alignof", Lang: LangMin(LangC11)},
	{Literal: "alignof", Lang: LangC23.Union(LangMin(LangCPP11)), Synonym: "_Alignof"},
	{Literal: "decltype", Lang: LangMin(LangCPP11)},
	{Literal: "_Generic", Lang: LangMin(LangC11)},
}

var (
	keywordOnce sync.Once
	keywordMap  map[string]KeywordInfo
)

func buildKeywordMap() map[string]KeywordInfo {
	m := make(map[string]KeywordInfo, len(cKeywords))
	for _, k := range cKeywords {
		if k.Lang == LangNone {
			continue
		}
		m[k.Literal] = k
	}
	return m
}

// LookupKeyword returns the keyword table entry for literal and
// whether it names a keyword reserved in any language (ignoring
// whether it is reserved in the *requested* language — callers check
// KeywordInfo.Lang themselves, since a near-miss keyword reserved in
// a sibling language is exactly the kind of suggestion §4.6 wants to
// surface).
func LookupKeyword(literal string) (KeywordInfo, bool) {
	keywordOnce.Do(func() { keywordMap = buildKeywordMap() })
	k, ok := keywordMap[literal]
	return k, ok
}

// KeywordLiterals returns every distinct keyword spelling in the
// table, for building the did-you-mean candidate pool (§4.6).
func KeywordLiterals() []string {
	keywordOnce.Do(func() { keywordMap = buildKeywordMap() })
	out := make([]string, 0, len(keywordMap))
	for lit := range keywordMap {
		out = append(out, lit)
	}
	return out
}

// CdeclCommand names one of this tool's own verbs (distinct from a
// C/C++ keyword), with its synonyms, for the interactive shell's
// command dispatcher and its own did-you-mean pass on command names.
type CdeclCommand struct {
	Name     string
	Synonyms []string
}

var cdeclCommands = []CdeclCommand{
	{Name: "declare"},
	{Name: "explain", Synonyms: []string{"exp"}},
	{Name: "cast"},
	{Name: "expand", Synonyms: []string{"exp-macro"}},
	{Name: "define", Synonyms: []string{"def"}},
	{Name: "undefine", Synonyms: []string{"undef"}},
	{Name: "set"},
	{Name: "show"},
	{Name: "help", Synonyms: []string{"?"}},
	{Name: "quit", Synonyms: []string{"exit", "q"}},
}

// CdeclCommandNames returns every command name and synonym, for the
// command-line did-you-mean pass.
func CdeclCommandNames() []string {
	var out []string
	for _, c := range cdeclCommands {
		out = append(out, c.Name)
		out = append(out, c.Synonyms...)
	}
	return out
}

// ResolveCdeclCommand maps a typed word (possibly a synonym) to its
// canonical command name, returning ok=false if word names neither a
// command nor a synonym.
func ResolveCdeclCommand(word string) (string, bool) {
	for _, c := range cdeclCommands {
		if word == c.Name {
			return c.Name, true
		}
		for _, s := range c.Synonyms {
			if word == s {
				return c.Name, true
			}
		}
	}
	return "", false
}
