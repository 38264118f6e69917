package cdecl

import (
	"fmt"
	"sort"
	"sync"
)

// Macro is one `#define`d object-like or function-like macro (§4.7).
type Macro struct {
	Name         string
	IsFunction   bool
	Params       []string // parameter names, in order; excludes the variadic slot
	IsVariadic   bool
	VariadicName string // name the definition gave the variadic slot (GNU `args...`); "" means "__VA_ARGS__"
	Body         TokenList
	DefinedAt    Range
}

// paramIndex returns the position of name in m.Params, or -1.
func (m *Macro) paramIndex(name string) int {
	for i, p := range m.Params {
		if p == name {
			return i
		}
	}
	return -1
}

// equalDefinition reports whether m and o are identical replacement
// definitions per the standard's macro-redefinition rule: same
// function/object-like-ness, same parameter names, and token-for-
// token identical bodies (whitespace-separation included, spelling
// only — not hide sets, which are a property of an expansion, not a
// definition).
func (m *Macro) equalDefinition(o *Macro) bool {
	if m.IsFunction != o.IsFunction || m.IsVariadic != o.IsVariadic || len(m.Params) != len(o.Params) {
		return false
	}
	for i := range m.Params {
		if m.Params[i] != o.Params[i] {
			return false
		}
	}
	if len(m.Body) != len(o.Body) {
		return false
	}
	for i := range m.Body {
		if m.Body[i].Text != o.Body[i].Text || m.Body[i].Space != o.Body[i].Space {
			return false
		}
	}
	return true
}

// MacroStore holds every currently-`#define`d macro (§4.7
// define/undef/find/iterate). It is safe for concurrent use since the
// interactive shell and a future language-server front end both need
// to read it while a single goroutine processes `#define`/`#undef`
// lines.
type MacroStore struct {
	mu     sync.RWMutex
	macros map[string]*Macro
}

// NewMacroStore returns an empty store.
func NewMacroStore() *MacroStore {
	return &MacroStore{macros: make(map[string]*Macro)}
}

// Define installs m, returning a PreprocessorError if name is already
// defined with an incompatible body (redefining with an identical
// body is permitted, matching the standard).
func (s *MacroStore) Define(m *Macro) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.macros[m.Name]; ok && !existing.equalDefinition(m) {
		return PreprocessorError{
			Message: fmt.Sprintf("%q redefined incompatibly with its existing definition", m.Name),
			Span:    rangeSpan(m.DefinedAt),
		}
	}
	s.macros[m.Name] = m
	return nil
}

// Undef removes name, a no-op if it was not defined.
func (s *MacroStore) Undef(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.macros, name)
}

// Find returns name's current definition, if any.
func (s *MacroStore) Find(name string) (*Macro, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.macros[name]
	return m, ok
}

// Names returns every defined macro name, sorted, for the shell's
// `show` listing.
func (s *MacroStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.macros))
	for name := range s.macros {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// rangeSpan builds a cursor-only Span directly from a byte-offset
// Range, for a diagnostic raised before a LineIndex is available to
// resolve line/column. Span.String degrades gracefully to a bare
// column number when every line number is its zero value.
func rangeSpan(r Range) Span {
	return Span{Start: Location{Cursor: r.Start}, End: Location{Cursor: r.End}}
}
