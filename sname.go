package cdecl

import "strings"

// ScopeKind identifies the kind of scope a ScopedName component
// denotes, when known (§3.3).
type ScopeKind int

const (
	ScopeNone ScopeKind = iota
	ScopeClass
	ScopeStruct
	ScopeUnion
	ScopeNamespace
	ScopeGeneric // C++ `::` with no known kind
	ScopeTypedef
)

// SNameComponent is one segment of a scoped name, e.g. the `foo` or
// `bar` in `foo::bar::baz`.
type SNameComponent struct {
	Name string
	Kind ScopeKind
}

// ScopedName is an ordered sequence of components (§3.3). Equality
// and ordering are component-wise so that suggestion lists sort
// stably.
type ScopedName struct {
	Components []SNameComponent
}

// NewSName builds an unscoped name out of a single identifier.
func NewSName(name string) ScopedName {
	if name == "" {
		return ScopedName{}
	}
	return ScopedName{Components: []SNameComponent{{Name: name}}}
}

// Empty reports whether the scoped name has no components at all.
func (s ScopedName) Empty() bool { return len(s.Components) == 0 }

// Local returns the last (innermost) component's name, or "" if empty.
func (s ScopedName) Local() string {
	if s.Empty() {
		return ""
	}
	return s.Components[len(s.Components)-1].Name
}

// Append returns a new ScopedName with c appended as the new local
// (innermost) component.
func (s ScopedName) Append(c SNameComponent) ScopedName {
	out := make([]SNameComponent, len(s.Components)+1)
	copy(out, s.Components)
	out[len(s.Components)] = c
	return ScopedName{Components: out}
}

// String renders the scoped name joined by "::".
func (s ScopedName) String() string {
	names := make([]string, len(s.Components))
	for i, c := range s.Components {
		names[i] = c.Name
	}
	return strings.Join(names, "::")
}

// Equal reports component-wise equality (names and kinds).
func (s ScopedName) Equal(o ScopedName) bool {
	if len(s.Components) != len(o.Components) {
		return false
	}
	for i := range s.Components {
		if s.Components[i] != o.Components[i] {
			return false
		}
	}
	return true
}

// Compare yields a total order over scoped names suitable for
// stable-sorting suggestion lists: lexicographic over the joined
// string, tie-broken by component count.
func (s ScopedName) Compare(o ScopedName) int {
	ss, os := s.String(), o.String()
	switch {
	case ss < os:
		return -1
	case ss > os:
		return 1
	case len(s.Components) < len(o.Components):
		return -1
	case len(s.Components) > len(o.Components):
		return 1
	default:
		return 0
	}
}
