package cdecl

import "sort"

// Suggestion is one did-you-mean candidate, ranked by edit distance
// from the misspelled word (§4.6).
type Suggestion struct {
	Word     string
	Distance int
}

// DidYouMean enumerates and ranks suggestions for word against pool,
// gating candidates at distance <= round(0.4 * len(bestCandidate))
// as scenario S-series did-you-mean behavior requires, and returning
// at most maxCandidates, nearest first, ties broken lexicographically
// for determinism.
//
// It reuses a single EditDistance engine across the whole pool, since
// a shell session invokes this once per mistyped token and the pool
// (keywords plus in-scope typedef names) can run into the thousands.
func DidYouMean(word string, pool []string, maxCandidates int) []Suggestion {
	if word == "" || len(pool) == 0 || maxCandidates <= 0 {
		return nil
	}
	ed := NewEditDistance()
	all := make([]Suggestion, 0, len(pool))
	best := -1
	bestWord := ""
	for _, cand := range pool {
		if cand == word {
			continue
		}
		d := ed.Distance(word, cand)
		if best < 0 || d < best || (d == best && cand < bestWord) {
			best = d
			bestWord = cand
		}
		all = append(all, Suggestion{Word: cand, Distance: d})
	}
	if best < 0 {
		return nil
	}
	gate := dymGate(bestWord)

	out := all[:0:0]
	for _, s := range all {
		if s.Distance <= gate {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > maxCandidates {
		out = out[:maxCandidates]
	}
	return out
}

// dymGate computes the maximum edit distance a candidate may have to
// still be offered as a suggestion: round(0.4 * len(bestCandidate)),
// per §4.6. Unlike the misspelled word, bestCandidate's length is
// fixed by the pool, so this is the only quantity the gate may be
// built from — a gate derived from (or clamped to) the query word
// would make the nearest candidate pass by construction, which
// defeats the gate's purpose of letting "no good match" come back
// empty (testable property 10, scenario S7).
func dymGate(bestCandidate string) int {
	n := len([]rune(bestCandidate))
	return (2*n + 2) / 5 // round(0.4*n) without floating point
}

// SuggestKeyword runs DidYouMean against the full keyword literal
// pool, for a lexer that just rejected an unrecognized identifier-like
// token that looks like a near-miss keyword.
func SuggestKeyword(word string, max int) []Suggestion {
	return DidYouMean(word, KeywordLiterals(), max)
}

// SuggestCommand runs DidYouMean against cdecl's own command and
// synonym pool, for the interactive shell's "unknown command" path.
func SuggestCommand(word string, max int) []Suggestion {
	return DidYouMean(word, CdeclCommandNames(), max)
}
