package cdecl

import (
	"fmt"
	"strings"
)

// LangID is a bitset over the closed set of recognized language
// versions (§3.1). Each language is a single bit; a LangID value may
// OR several bits together to denote a range or an arbitrary subset.
//
// Two extension bits, EMC (Embedded C) and UPC (Unified Parallel C),
// are kept out of LangAnyC/LangAnyCPP/LangANY so that a caller asking "is
// this any C?" never accidentally matches a C dialect extension.
type LangID uint32

const (
	LangKNRC LangID = 1 << iota
	LangC89
	LangC95
	LangC99
	LangC11
	LangC17
	LangC23
	LangCPP98
	LangCPP03
	LangCPP11
	LangCPP14
	LangCPP17
	LangCPP20
	LangCPP23
	LangEMC // Embedded C extension, orthogonal to the C ordering above
	LangUPC // Unified Parallel C extension, ditto

	LangNone LangID = 0
)

// langOrder lists every "core" (non-extension) language oldest-first;
// it is the single source of truth for MIN/MAX/RANGE and for
// since/until phrasing.
var langOrder = []LangID{
	LangKNRC, LangC89, LangC95, LangC99, LangC11, LangC17, LangC23,
	LangCPP98, LangCPP03, LangCPP11, LangCPP14, LangCPP17, LangCPP20, LangCPP23,
}

var langName = map[LangID]string{
	LangKNRC:  "K&R C",
	LangC89:   "C89",
	LangC95:   "C95",
	LangC99:   "C99",
	LangC11:   "C11",
	LangC17:   "C17",
	LangC23:   "C23",
	LangCPP98: "C++98",
	LangCPP03: "C++03",
	LangCPP11: "C++11",
	LangCPP14: "C++14",
	LangCPP17: "C++17",
	LangCPP20: "C++20",
	LangCPP23: "C++23",
	LangEMC:   "Embedded C",
	LangUPC:   "Unified Parallel C",
}

// LangAnyC is every C dialect bit (K&R through C23), LangAnyCPP is
// every C++ dialect bit; LangANY is their union. Extension bits are
// deliberately excluded.
var (
	LangAnyC   = langRangeMask(0, 6)
	LangAnyCPP = langRangeMask(7, 13)
	LangANY    = LangAnyC | LangAnyCPP
)

func langRangeMask(lo, hi int) LangID {
	var m LangID
	for i := lo; i <= hi; i++ {
		m |= langOrder[i]
	}
	return m
}

func langIndex(l LangID) int {
	for i, o := range langOrder {
		if o == l {
			return i
		}
	}
	return -1
}

// LangMin returns every language at or newer than l (within l's
// family: C stays within AnyC, C++ within AnyCPP).
func LangMin(l LangID) LangID {
	i := langIndex(l)
	if i < 0 {
		return LangNone
	}
	if l&LangAnyC != 0 {
		return langRangeMask(i, 6)
	}
	return langRangeMask(i, 13)
}

// LangMax returns every language at or older than l, within l's family.
func LangMax(l LangID) LangID {
	i := langIndex(l)
	if i < 0 {
		return LangNone
	}
	if l&LangAnyC != 0 {
		return langRangeMask(0, i)
	}
	return langRangeMask(7, i)
}

// LangRange returns every language between lo and hi inclusive,
// within lo's family; lo and hi must belong to the same family.
func LangRange(lo, hi LangID) LangID {
	i, j := langIndex(lo), langIndex(hi)
	if i < 0 || j < 0 || i > j {
		return LangNone
	}
	return langRangeMask(i, j)
}

// LangOldest returns the single oldest language bit set in l, or 0.
func LangOldest(l LangID) LangID {
	for _, o := range langOrder {
		if l&o != 0 {
			return o
		}
	}
	return LangNone
}

// LangNewest returns the single newest language bit set in l, or 0.
func LangNewest(l LangID) LangID {
	for i := len(langOrder) - 1; i >= 0; i-- {
		if l&langOrder[i] != 0 {
			return langOrder[i]
		}
	}
	return LangNone
}

// Union returns l with o's bits also set.
func (l LangID) Union(o LangID) LangID { return l | o }

// Minus returns l with every bit o sets cleared.
func (l LangID) Minus(o LangID) LangID { return l &^ o }

// Has reports whether every bit set in o is also set in l.
func (l LangID) Has(o LangID) bool { return l&o == o }

// LangIsAnyC reports whether l intersects the C family.
func LangIsAnyC(l LangID) bool { return l&LangAnyC != 0 }

// LangIsAnyCPP reports whether l intersects the C++ family.
func LangIsAnyCPP(l LangID) bool { return l&LangAnyCPP != 0 }

// LangIsOneFamily reports whether l is entirely within one family
// (possibly plus extension bits); a bitset spanning both C and C++ is
// not "exactly one family".
func LangIsOneFamily(l LangID) bool {
	core := l &^ (LangEMC | LangUPC)
	return core == 0 || core&LangAnyC == core || core&LangAnyCPP == core
}

func (l LangID) String() string {
	if l == LangNone {
		return "none"
	}
	if l == LangANY {
		return "any language"
	}
	var names []string
	for _, o := range langOrder {
		if l&o != 0 {
			names = append(names, langName[o])
		}
	}
	if l&LangEMC != 0 {
		names = append(names, langName[LangEMC])
	}
	if l&LangUPC != 0 {
		names = append(names, langName[LangUPC])
	}
	return strings.Join(names, ", ")
}

// LangWhich renders a bitset as a "since/until/unless" diagnostic
// phrase (§3.1, S3's "not supported until C99").
func LangWhich(l LangID) string {
	switch {
	case l == LangNone:
		return "in no supported language"
	case l == LangANY:
		return "in any language"
	case !LangIsOneFamily(l):
		return fmt.Sprintf("in %s", l.String())
	}

	core := l &^ (LangEMC | LangUPC)
	oldest, newest := LangOldest(core), LangNewest(core)
	if oldest == newest {
		return fmt.Sprintf("in %s", langName[oldest])
	}
	if core != LangRange(oldest, newest) {
		return fmt.Sprintf("in %s", l.String())
	}

	familyOldest := LangKNRC
	familyNewest := LangC23
	if core&LangAnyCPP != 0 {
		familyOldest, familyNewest = LangCPP98, LangCPP23
	}
	switch {
	case oldest == familyOldest && newest != familyNewest:
		return fmt.Sprintf("until %s", langName[newest])
	case newest == familyNewest && oldest != familyOldest:
		return fmt.Sprintf("since %s", langName[oldest])
	default:
		return fmt.Sprintf("from %s to %s", langName[oldest], langName[newest])
	}
}

// LangFind parses a language name (case-insensitive literal as it would
// appear in the `set` store, e.g. "c99", "c++17", "knr", "c") into its
// bitset. Family shorthands ("c", "c++") return the whole family.
func LangFind(name string) LangID {
	switch strings.ToLower(name) {
	case "c":
		return LangAnyC
	case "c++", "cpp":
		return LangAnyCPP
	case "knr", "knrc", "k&r", "k&rc":
		return LangKNRC
	case "c89", "c90", "ansic":
		return LangC89
	case "c95":
		return LangC95
	case "c99":
		return LangC99
	case "c11":
		return LangC11
	case "c17", "c18":
		return LangC17
	case "c23":
		return LangC23
	case "c++98", "cpp98":
		return LangCPP98
	case "c++03", "cpp03":
		return LangCPP03
	case "c++11", "cpp11":
		return LangCPP11
	case "c++14", "cpp14":
		return LangCPP14
	case "c++17", "cpp17":
		return LangCPP17
	case "c++20", "cpp20":
		return LangCPP20
	case "c++23", "cpp23":
		return LangCPP23
	case "emc":
		return LangEMC
	case "upc":
		return LangUPC
	default:
		return LangNone
	}
}
