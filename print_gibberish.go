package cdecl

import "strings"

// declAcc accumulates a C/C++ declarator string as GibberishDeclaration
// walks a declarator AST from the root toward its base type. `core` is
// the part built directly around the identifier (prefix operators and
// the name itself); `suffix` is the array/function chain that must
// bind to `core` from the outside, after any parenthesization core
// ends up needing. Keeping them apart lets a prefix operator that
// wraps an already-suffixed inner (e.g. pointer-to-array) parenthesize
// just the identifier-facing part instead of the whole thing.
type declAcc struct {
	core   string
	suffix string
}

func (a declAcc) s() string { return a.core + a.suffix }

// GibberishDeclaration renders n, bound to name, as a C/C++ declarator
// string (§4.5, the "gibberish" surface syntax) — e.g. the AST for
// `int *const x[3]` renders back to exactly that text.
func GibberishDeclaration(n Node, name string, lang LangID) string {
	acc := buildDeclarator(n, name)
	text := acc.s()
	base := gibberishBaseType(n, lang)
	if text == "" {
		return base
	}
	if base == "" {
		return text
	}
	sep := " "
	if strings.HasSuffix(base, "*") || strings.HasSuffix(base, "&") {
		sep = ""
	}
	return base + sep + text
}

func buildDeclarator(n Node, name string) declAcc {
	switch t := n.(type) {
	case nil:
		return declAcc{core: name}
	case *PointerNode:
		return prefixDeclarator("*"+pointerQuals(t), t.of, name)
	case *ReferenceNode:
		return prefixDeclarator("&", t.of, name)
	case *RValueRefNode:
		return prefixDeclarator("&&", t.of, name)
	case *PointerToMemberNode:
		return prefixDeclarator(t.Class.String()+"::*", t.of, name)
	case *ArrayNode:
		inner := buildDeclarator(t.of, name)
		return declAcc{core: inner.core, suffix: inner.suffix + "[" + arraySizeText(t) + "]"}
	case *FunctionNode:
		inner := buildDeclarator(t.of, name)
		return declAcc{core: inner.core, suffix: inner.suffix + "(" + paramList(t.Params) + ")"}
	case *AppleBlockNode:
		inner := buildDeclarator(t.of, name)
		return declAcc{core: "^" + inner.core, suffix: inner.suffix + "(" + paramList(t.Params) + ")"}
	case *OperatorNode:
		return declAcc{core: "operator" + t.OperatorID + "(" + paramList(t.Params) + ")"}
	case *ConstructorNode:
		return declAcc{core: name + "(" + paramList(t.Params) + ")"}
	case *DestructorNode:
		return declAcc{core: "~" + name + "()"}
	case *UserDefinedConversionNode:
		inner := buildDeclarator(t.of, "")
		return declAcc{core: "operator " + strings.TrimSpace(gibberishBaseType(t.of, LangANY)+" "+inner.s()) + "()"}
	case *UserDefinedLiteralNode:
		return declAcc{core: "operator\"\" " + name + "(" + paramList(t.Params) + ")"}
	case *LambdaNode:
		return declAcc{core: "[" + captureList(t.Captures) + "](" + paramList(t.Params) + ")"}
	case *CastNode:
		inner := buildDeclarator(t.of, "")
		return declAcc{core: strings.TrimSpace(gibberishBaseType(t.of, LangANY) + " " + inner.s())}
	default:
		// base type reached: Builtin, Enum, Record, Concept, Name,
		// Variadic, TypedefRef (non-parent: its target is not walked).
		return declAcc{core: name}
	}
}

// prefixDeclarator renders a prefix operator (`*`, `&`, `&&`,
// pointer-to-member) around of's declarator. If of's rendering
// already carries a pending array/function suffix, that suffix would
// otherwise swallow this operator's identifier-facing text, so the
// operator plus name are parenthesized and the suffix stays outside.
func prefixDeclarator(marker string, of Node, name string) declAcc {
	inner := buildDeclarator(of, name)
	if inner.suffix != "" {
		return declAcc{core: "(" + marker + inner.core + ")", suffix: inner.suffix}
	}
	return declAcc{core: marker + inner.core}
}

func pointerQuals(p *PointerNode) string {
	var b strings.Builder
	if p.Type().Has(TQConst) {
		b.WriteString("const ")
	}
	if p.Type().Has(TQVolatile) {
		b.WriteString("volatile ")
	}
	return b.String()
}

func arraySizeText(a *ArrayNode) string {
	switch a.SizeKind {
	case ArraySizeInt:
		return itoa(a.Size)
	case ArraySizeVLA:
		return "*"
	case ArraySizeNamed:
		return a.SizeName
	default:
		return ""
	}
}

func paramList(params []Node) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		if _, ok := p.(*VariadicNode); ok {
			parts[i] = "..."
			continue
		}
		parts[i] = GibberishDeclaration(p, p.SName().Local(), LangANY)
	}
	return strings.Join(parts, ", ")
}

func captureList(captures []Node) string {
	parts := make([]string, 0, len(captures))
	for _, c := range captures {
		cn, ok := c.(*CaptureNode)
		if !ok {
			continue
		}
		switch cn.CaptureKind {
		case CaptureByCopy:
			parts = append(parts, cn.SName().Local())
		case CaptureByRef:
			parts = append(parts, "&"+cn.SName().Local())
		case CaptureThis:
			parts = append(parts, "this")
		case CaptureStarThis:
			parts = append(parts, "*this")
		}
	}
	return strings.Join(parts, ", ")
}

// gibberishBaseType renders the leftmost, non-declarator part of a
// declaration (§4.5): storage class, qualifiers, and the base type name
// for a builtin type; qualifiers and the name, with no storage class,
// for an enum, record, concept, or typedef name. It walks the same
// `of` chain as buildDeclarator but stops
// at (and renders) the terminal type node instead of the operators
// above it.
func gibberishBaseType(n Node, lang LangID) string {
	leaf := terminalTypeNode(n)
	if leaf == nil {
		return ""
	}
	switch t := leaf.(type) {
	case *EnumNode:
		return qualPrefix(t.Type()) + "enum " + t.SName().String()
	case *RecordNode:
		return qualPrefix(t.Type()) + recordKeyword(t.RecordKind) + " " + t.SName().String()
	case *ConceptNode:
		return qualPrefix(t.Type()) + t.SName().String()
	case *NameNode:
		return t.SName().String()
	case *TypedefRefNode:
		return qualPrefix(t.Type()) + t.SName().String()
	case *VariadicNode:
		return "..."
	default:
		return TypeName(leaf.Type(), lang)
	}
}

func qualPrefix(t TypeID) string {
	var b strings.Builder
	if t.Has(TQConst) {
		b.WriteString("const ")
	}
	if t.Has(TQVolatile) {
		b.WriteString("volatile ")
	}
	return b.String()
}

func recordKeyword(rk RecordKind) string {
	switch rk {
	case RecordClass:
		return "class"
	case RecordUnion:
		return "union"
	default:
		return "struct"
	}
}

// terminalTypeNode walks n's `of` chain to the node that is not a
// pointer/reference/array/function operator — the node that actually
// carries the base type.
func terminalTypeNode(n Node) Node {
	cur := n
	for {
		switch t := cur.(type) {
		case *PointerNode:
			cur = t.of
		case *ReferenceNode:
			cur = t.of
		case *RValueRefNode:
			cur = t.of
		case *PointerToMemberNode:
			cur = t.of
		case *ArrayNode:
			cur = t.of
		case *FunctionNode:
			cur = t.of
		case *AppleBlockNode:
			cur = t.of
		default:
			return cur
		}
		if cur == nil {
			return nil
		}
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
