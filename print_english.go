package cdecl

import "strings"

// EnglishDeclaration renders n, bound to name, as cdecl's stylized
// English explanation (§4.5) — the "declare x as ..." form that is
// the gibberish-to-English direction's whole point.
func EnglishDeclaration(n Node, name string, lang LangID) string {
	phrase := englishPhrase(n, lang)
	if name == "" {
		return phrase
	}
	return "declare " + name + " as " + phrase
}

// ExplainCast renders a cast expression's English form: "cast x into
// pointer to int" rather than "declare x as ...".
func ExplainCast(n *CastNode, expr string) string {
	kind := map[CastKind]string{
		CastC: "cast", CastStatic: "static cast", CastDynamic: "dynamic cast",
		CastReinterpret: "reinterpret cast", CastConst: "const cast",
	}[n.CastKind]
	return kind + " " + expr + " into " + englishPhrase(n.of, LangANY)
}

func englishPhrase(n Node, lang LangID) string {
	switch t := n.(type) {
	case nil:
		return ""
	case *PointerNode:
		return qualEnglish(t.Type()) + "pointer to " + englishPhrase(t.of, lang)
	case *ReferenceNode:
		return "reference to " + englishPhrase(t.of, lang)
	case *RValueRefNode:
		return "rvalue reference to " + englishPhrase(t.of, lang)
	case *PointerToMemberNode:
		return "pointer to member of " + t.Class.String() + " " + englishPhrase(t.of, lang)
	case *ArrayNode:
		return "array " + arrayCountEnglish(t) + "of " + englishPhrase(t.of, lang)
	case *FunctionNode:
		return "function (" + paramListEnglish(t.Params, lang) + ") returning " + englishPhrase(t.of, lang)
	case *AppleBlockNode:
		return "block (" + paramListEnglish(t.Params, lang) + ") returning " + englishPhrase(t.of, lang)
	case *OperatorNode:
		recv := ""
		if t.IsMember {
			recv = "member "
		}
		return recv + "operator " + t.OperatorID + " (" + paramListEnglish(t.Params, lang) +
			") returning " + englishPhrase(t.of, lang)
	case *ConstructorNode:
		return "constructor (" + paramListEnglish(t.Params, lang) + ")"
	case *DestructorNode:
		return "destructor"
	case *UserDefinedConversionNode:
		return "user-defined conversion to " + englishPhrase(t.of, lang)
	case *UserDefinedLiteralNode:
		return "user-defined literal (" + paramListEnglish(t.Params, lang) + ")"
	case *LambdaNode:
		caps := captureListEnglish(t.Captures)
		ret := ""
		if t.of != nil {
			ret = " returning " + englishPhrase(t.of, lang)
		}
		return "lambda capturing " + caps + " (" + paramListEnglish(t.Params, lang) + ")" + ret
	case *CastNode:
		return englishPhrase(t.of, lang)
	case *EnumNode:
		return storageEnglish(t.Type()) + qualEnglish(t.Type()) + "enumeration " + t.SName().String()
	case *RecordNode:
		return storageEnglish(t.Type()) + qualEnglish(t.Type()) + recordKeyword(t.RecordKind) + " " + t.SName().String()
	case *ConceptNode:
		return qualEnglish(t.Type()) + t.SName().String()
	case *NameNode:
		return t.SName().String()
	case *TypedefRefNode:
		return storageEnglish(t.Type()) + qualEnglish(t.Type()) + t.SName().String()
	case *VariadicNode:
		return "..."
	case *BuiltinNode:
		return TypeName(t.Type(), lang)
	default:
		return TypeName(n.Type(), lang)
	}
}

func qualEnglish(t TypeID) string {
	var parts []string
	if t.Has(TQConst) {
		parts = append(parts, "const")
	}
	if t.Has(TQVolatile) {
		parts = append(parts, "volatile")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + " "
}

func storageEnglish(t TypeID) string {
	var parts []string
	switch {
	case t.Has(TSExtern):
		parts = append(parts, "extern")
	case t.Has(TSStatic):
		parts = append(parts, "static")
	case t.Has(TSRegister):
		parts = append(parts, "register")
	case t.Has(TSTypedef):
		parts = append(parts, "typedef")
	}
	if t.Has(TSThreadLocal) {
		parts = append(parts, "thread-local")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + " "
}

func arrayCountEnglish(a *ArrayNode) string {
	switch a.SizeKind {
	case ArraySizeInt:
		return itoa(a.Size) + " "
	case ArraySizeVLA:
		return "variable length "
	case ArraySizeNamed:
		return a.SizeName + " "
	default:
		return ""
	}
}

func paramListEnglish(params []Node, lang LangID) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		if _, ok := p.(*VariadicNode); ok {
			parts[i] = "..."
			continue
		}
		nm := p.SName().Local()
		if nm == "" {
			parts[i] = englishPhrase(p, lang)
		} else {
			parts[i] = nm + " as " + englishPhrase(p, lang)
		}
	}
	return strings.Join(parts, ", ")
}

func captureListEnglish(captures []Node) string {
	parts := make([]string, 0, len(captures))
	for _, c := range captures {
		cn, ok := c.(*CaptureNode)
		if !ok {
			continue
		}
		switch cn.CaptureKind {
		case CaptureByCopy:
			parts = append(parts, cn.SName().Local()+" by copy")
		case CaptureByRef:
			parts = append(parts, cn.SName().Local()+" by reference")
		case CaptureThis:
			parts = append(parts, "this")
		case CaptureStarThis:
			parts = append(parts, "copy of this")
		}
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}
