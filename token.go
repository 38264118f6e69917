package cdecl

import "strings"

// TokenKind classifies a preprocessor token (§4.7).
type TokenKind int

const (
	TokIdent TokenKind = iota
	TokNumber
	TokString
	TokChar
	TokPunct
	TokOther
	TokPlacemarker // the empty token left by `##` pasting an absent argument
)

// HideSet is the set of macro names a token may not be re-expanded
// under (Prosser's algorithm); it is copy-on-write so that sharing a
// hide set across a replacement list's tokens is cheap.
type HideSet map[string]struct{}

// Has reports whether name is in the set (nil sets are always empty).
func (h HideSet) Has(name string) bool {
	if h == nil {
		return false
	}
	_, ok := h[name]
	return ok
}

// With returns a new set containing h's members plus name.
func (h HideSet) With(name string) HideSet {
	out := make(HideSet, len(h)+1)
	for k := range h {
		out[k] = struct{}{}
	}
	out[name] = struct{}{}
	return out
}

// Intersect returns the members present in both h and o, per
// Prosser's algorithm step for the hide set installed on a
// function-like macro's expansion (the intersection of the name
// token's hide set and the closing `)`'s hide set).
func (h HideSet) Intersect(o HideSet) HideSet {
	out := make(HideSet)
	for k := range h {
		if o.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// Token is one preprocessor token: text, source range, a hide set
// recording which macros must not re-expand it, and a leading-space
// flag used only for paste-avoidance hygiene when re-stringifying a
// token list (§4.7).
type Token struct {
	Kind    TokenKind
	Text    string
	Range   Range
	HideSet HideSet
	Space   bool // a whitespace (or the start of the list) preceded this token
}

// TokenList is a sequence of tokens, with the helpers §4.7 names:
// paste-avoidance append, trimming, and re-stringification.
type TokenList []Token

// PushBack appends t to l, forcing a separating space if omitting one
// would let t accidentally fuse with l's last token into a different
// token when re-lexed (e.g. appending `+` after `+` must not silently
// produce `++`), per the paste-avoidance rule of §4.7.
func (l TokenList) PushBack(t Token) TokenList {
	if len(l) > 0 && !t.Space && wouldPaste(l[len(l)-1], t) {
		t.Space = true
	}
	return append(l, t)
}

// PushBackAll appends every token of other onto l via PushBack, so a
// splice between two independently-built token runs (a macro's
// replacement list and the tokens trailing its call site, or a macro
// body and a substituted argument) never silently fuses across the
// seam into a token neither side wrote.
func (l TokenList) PushBackAll(other TokenList) TokenList {
	for _, t := range other {
		l = l.PushBack(t)
	}
	return l
}

// wouldPaste reports whether placing b right after a, with no
// separating space, would re-lex into a different token sequence than
// [a, b] — the condition `##` concatenation is allowed to produce on
// purpose, but plain substitution must never produce by accident.
func wouldPaste(a, b Token) bool {
	if a.Kind == TokPlacemarker || b.Kind == TokPlacemarker {
		return false
	}
	if (a.Kind == TokIdent || a.Kind == TokNumber) && (b.Kind == TokIdent || b.Kind == TokNumber) {
		return true
	}
	if a.Kind != TokPunct || b.Kind != TokPunct {
		return false
	}
	return firstPunctLen(a.Text+b.Text) != len(a.Text)
}

// firstPunctLen returns the length of the punctuator the lexer would
// greedily match at the start of s (mirroring Lexer.scanPunct's
// longest-match-first rule over punct3/punct2), or 0 if s starts with
// no recognized punctuator character at all. Driving wouldPaste off
// this instead of a hand-maintained table of "risky" characters means
// any future addition to punct3/punct2 is automatically paste-safe.
func firstPunctLen(s string) int {
	for _, p := range punct3 {
		if strings.HasPrefix(s, p) {
			return len(p)
		}
	}
	for _, p := range punct2 {
		if strings.HasPrefix(s, p) {
			return len(p)
		}
	}
	if s == "" {
		return 0
	}
	switch s[0] {
	case '(', ')', '[', ']', '{', '}', '*', '&', ',', ';', ':', '=', '+', '-', '/', '%',
		'<', '>', '!', '^', '|', '~', '.', '#', '?':
		return 1
	default:
		return 0
	}
}

// Trim drops leading and trailing placemarker tokens, the shape `##`
// pasting leaves behind when one side of a paste was an empty
// variadic argument.
func (l TokenList) Trim() TokenList {
	start := 0
	for start < len(l) && l[start].Kind == TokPlacemarker {
		start++
	}
	end := len(l)
	for end > start && l[end-1].Kind == TokPlacemarker {
		end--
	}
	return l[start:end]
}

// Str re-stringifies l back into source text, honoring each token's
// Space flag so re-lexing the result reproduces the same token
// sequence (§4.7 list_str).
func (l TokenList) Str() string {
	var b strings.Builder
	for i, t := range l {
		if t.Kind == TokPlacemarker {
			continue
		}
		if i > 0 && t.Space {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// Relocate returns a copy of l with every token's Range replaced by
// at (and Space preserved), used when a macro's replacement list is
// spliced into the expansion at a call site so that later
// diagnostics point at the call, not the `#define` (§4.7 relocate).
func (l TokenList) Relocate(at Range) TokenList {
	out := make(TokenList, len(l))
	for i, t := range l {
		t.Range = at
		out[i] = t
	}
	return out
}

// WithHideSet returns a copy of l with every token's hide set unioned
// with hs.
func (l TokenList) WithHideSet(hs HideSet) TokenList {
	out := make(TokenList, len(l))
	for i, t := range l {
		merged := make(HideSet, len(t.HideSet)+len(hs))
		for k := range t.HideSet {
			merged[k] = struct{}{}
		}
		for k := range hs {
			merged[k] = struct{}{}
		}
		t.HideSet = merged
		out[i] = t
	}
	return out
}

func isPunct(t Token, text string) bool { return t.Kind == TokPunct && t.Text == text }
