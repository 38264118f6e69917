package cdecl

import "strings"

// FormatFunc renders one node of type T into the label text
// treePrinter writes for it; DebugString (ast.go) passes one that
// turns a Node into "kind<id> name".
type FormatFunc[T any] func(prefix string, node T) string

// treePrinter accumulates an indented tree dump one line at a time. It
// is generic over the node type so it can back both an AST dump
// (DebugString) and, should a later command need one, a dump of some
// other tree-shaped value without duplicating the indent bookkeeping.
type treePrinter[T any] struct {
	padStr []string
	output strings.Builder
	format FormatFunc[T]
}

func newTreePrinter[T any](format FormatFunc[T]) *treePrinter[T] {
	return &treePrinter[T]{format: format}
}

// indent pushes s (typically "  ") onto the padding stack for every
// line written until the matching unindent.
func (tp *treePrinter[T]) indent(s string) {
	tp.padStr = append(tp.padStr, s)
}

func (tp *treePrinter[T]) unindent() {
	tp.padStr = tp.padStr[:len(tp.padStr)-1]
}

func (tp *treePrinter[T]) padding() {
	for _, s := range tp.padStr {
		tp.output.WriteString(s)
	}
}

// pwritel writes s at the current indent depth, followed by a newline.
func (tp *treePrinter[T]) pwritel(s string) {
	tp.padding()
	tp.output.WriteString(s)
	tp.output.WriteByte('\n')
}
