package cdecl

import "strconv"

// Parser is a hand-written recursive-descent parser for C/C++
// declarations (§4.3, Component L). It does not itself run the
// macro preprocessor — callers that want macro-aware parsing run
// Expand first and feed the parser the expanded token list.
type Parser struct {
	toks     TokenList
	pos      int
	arena    *Arena
	lang     LangID
	typedefs map[string]Node // name -> the typedef's target type AST (shared, not owned)
}

// NewParser returns a parser over toks. typedefs may be nil.
func NewParser(toks TokenList, arena *Arena, lang LangID, typedefs map[string]Node) *Parser {
	return &Parser{toks: toks, arena: arena, lang: lang, typedefs: typedefs}
}

func (p *Parser) cur() Token {
	if p.pos >= len(p.toks) {
		return Token{Kind: TokOther, Text: ""}
	}
	return p.toks[p.pos]
}

func (p *Parser) curText() string { return p.cur().Text }

func (p *Parser) advance() Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *Parser) expectPunct(s string) error {
	if p.curText() != s {
		return SyntaxError{Message: "expected '" + s + "', got '" + p.curText() + "'", Span: rangeSpan(p.cur().Range)}
	}
	p.advance()
	return nil
}

// ParseDeclaration parses a full declaration (specifiers + declarator)
// and returns its AST and the declared name (empty for an abstract
// declarator), per §4.3/§4.4.
func ParseDeclaration(toks TokenList, arena *Arena, lang LangID, typedefs map[string]Node) (Node, string, error) {
	p := NewParser(toks, arena, lang, typedefs)
	base, err := p.parseSpecifiers()
	if err != nil {
		return nil, "", err
	}
	result, name, err := p.parseDeclarator()
	if err != nil {
		return nil, "", err
	}
	final := PatchPlaceholder(result, base)
	if !p.atEnd() {
		return nil, "", SyntaxError{Message: "unexpected trailing token '" + p.curText() + "'", Span: rangeSpan(p.cur().Range)}
	}
	if ok, legalIn, a, b := TypeCheck(final.Type(), lang); !ok {
		msg := typeBitName(a) + " with " + typeBitName(b) + " is illegal"
		family := LangAnyC
		if LangIsAnyCPP(lang) {
			family = LangAnyCPP
		}
		if since := LangOldest(legalIn & family); a == b && since != LangNone {
			msg = typeBitName(a) + " not supported until " + langName[since]
		}
		return nil, "", SemanticError{Message: msg, Since: legalIn}
	}
	return final, name, nil
}

// ParseTypeName parses an abstract declarator (no identifier allowed),
// for cast expressions (§4.4.3).
func ParseTypeName(toks TokenList, arena *Arena, lang LangID, typedefs map[string]Node) (Node, error) {
	n, name, err := ParseDeclaration(toks, arena, lang, typedefs)
	if err != nil {
		return nil, err
	}
	if name != "" {
		return nil, SyntaxError{Message: "a type name must not declare an identifier (\"" + name + "\")"}
	}
	return n, nil
}

// parseSpecifiers consumes storage-class specifiers, type qualifiers,
// and the base-type specifier sequence, returning the base-type AST
// node the declarator's innermost placeholder is eventually patched
// with.
func (p *Parser) parseSpecifiers() (Node, error) {
	var typ TypeID
	var sawBase bool
	var baseKind NodeKind = KBuiltin
	var sname ScopedName
	var recordKind RecordKind
	var typedefTarget Node

	for {
		tok := p.cur()
		if tok.Kind != TokIdent {
			break
		}
		k, ok := LookupKeyword(tok.Text)
		if ok && k.Lang != LangNone {
			switch tok.Text {
			case "struct", "class", "union":
				p.advance()
				switch tok.Text {
				case "struct":
					recordKind = RecordStruct
				case "class":
					recordKind = RecordClass
				case "union":
					recordKind = RecordUnion
				}
				baseKind = KRecord
				sawBase = true
				if p.cur().Kind == TokIdent {
					sname = NewSName(p.advance().Text)
				}
				continue
			case "enum":
				p.advance()
				baseKind = KEnum
				sawBase = true
				if p.cur().Kind == TokIdent {
					sname = NewSName(p.advance().Text)
				}
				continue
			}
			if k.Type.IsNone() {
				p.advance()
				continue // non-type keyword (e.g. `inline`, `virtual` already folded below if it set a bit)
			}
			p.advance()
			merged, err := TypeAdd(typ, k.Type)
			if err != nil {
				return nil, SemanticError{Message: err.Error(), Span: rangeSpan(tok.Range)}
			}
			typ = merged
			if k.Type.HasAny(typeBaseMask) {
				sawBase = true
			}
			continue
		}
		if target, isTypedef := p.typedefs[tok.Text]; isTypedef {
			p.advance()
			baseKind = KTypedefRef
			sname = NewSName(tok.Text)
			typedefTarget = target
			sawBase = true
			continue
		}
		if !sawBase && p.pos+1 < len(p.toks) && p.toks[p.pos+1].Kind == TokIdent {
			return nil, LookupError{Token: tok.Text, Span: rangeSpan(tok.Range)}
		}
		break
	}

	if !sawBase {
		typ, _ = TypeAdd(typ, TBInt) // implicit-int, K&R/pre-C99 compatibility
	}
	typ = TypeNormalize(typ)

	switch baseKind {
	case KRecord:
		n := NewRecord(p.arena, 0, Range{}, recordKind)
		n.SetSName(sname)
		n.SetType(typ)
		return n, nil
	case KEnum:
		n := NewEnum(p.arena, 0, Range{})
		n.SetSName(sname)
		n.SetType(typ)
		return n, nil
	case KTypedefRef:
		n := NewTypedefRef(p.arena, 0, Range{}, typedefTarget)
		n.SetSName(sname)
		n.SetType(typ)
		return n, nil
	default:
		n := NewBuiltin(p.arena, 0, Range{})
		n.SetType(typ)
		return n, nil
	}
}

// parseDeclarator parses pointer_opt direct-declarator, correctly
// nesting pointers and array/function suffixes per C's precedence
// rules (§4.3 "declarator composition"): suffixes directly attached
// to an identifier bind tighter than a preceding, unparenthesized
// `*`, while parentheses invert that — exactly the scenario
// patch_placeholder exists to splice.
func (p *Parser) parseDeclarator() (Node, string, error) {
	stars, err := p.parseStars()
	if err != nil {
		return nil, "", err
	}
	starChain := p.buildStarChain(stars)

	directResult, name, err := p.parseDirectDeclarator()
	if err != nil {
		return nil, "", err
	}
	return PatchPlaceholder(directResult, starChain), name, nil
}

func (p *Parser) parseStars() ([]TypeID, error) {
	var stars []TypeID
	for p.curText() == "*" {
		p.advance()
		var q TypeID
		for isPointerQualifierWord(p.curText()) {
			k, _ := LookupKeyword(p.curText())
			q = q.Union(k.Type)
			p.advance()
		}
		stars = append(stars, q)
	}
	return stars, nil
}

func isPointerQualifierWord(w string) bool {
	switch w {
	case "const", "volatile", "restrict", "_Atomic":
		return true
	default:
		return false
	}
}

// buildStarChain wraps each parsed pointer around the one before it
// (approach: straight parse order, each new pointer becomes the new
// outer root), which gives the star closest to the identifier —
// parsed last — the outermost (shallowest) position, matching
// `T * const * p` meaning "p is a pointer to a const pointer to T".
func (p *Parser) buildStarChain(stars []TypeID) Node {
	root := Node(NewPlaceholder(p.arena, 0, Range{}))
	for _, q := range stars {
		ptr := NewPointer(p.arena, 0, Range{})
		ptr.SetType(q)
		SetParent(root, ptr)
		root = ptr
	}
	return root
}

func (p *Parser) parseDirectDeclarator() (Node, string, error) {
	var inner Node
	var name string

	if p.curText() == "(" {
		p.advance()
		innerResult, innerName, err := p.parseDeclarator()
		if err != nil {
			return nil, "", err
		}
		if err := p.expectPunct(")"); err != nil {
			return nil, "", err
		}
		suffixes, err := p.parseSuffixes()
		if err != nil {
			return nil, "", err
		}
		outer := p.buildSuffixChain(suffixes)
		return PatchPlaceholder(innerResult, outer), innerName, nil
	}

	if p.cur().Kind == TokIdent {
		name = p.advance().Text
	}
	inner = Node(NewPlaceholder(p.arena, 0, Range{}))
	suffixes, err := p.parseSuffixes()
	if err != nil {
		return nil, "", err
	}
	return PatchPlaceholder(inner, p.buildSuffixChain(suffixes)), name, nil
}

// suffixMaker builds one array-or-function suffix node whose `of`
// link is wired to fresh (a placeholder standing in for whatever
// nests beneath it).
type suffixMaker func(arena *Arena, fresh Node) Node

func (p *Parser) parseSuffixes() ([]suffixMaker, error) {
	var out []suffixMaker
	for {
		switch p.curText() {
		case "[":
			mk, err := p.parseArraySuffix()
			if err != nil {
				return nil, err
			}
			out = append(out, mk)
		case "(":
			mk, err := p.parseFuncSuffix()
			if err != nil {
				return nil, err
			}
			out = append(out, mk)
		default:
			return out, nil
		}
	}
}

func (p *Parser) parseArraySuffix() (suffixMaker, error) {
	p.advance() // '['
	var sizeKind ArraySizeKind
	var size int
	var sizeName string
	switch {
	case p.curText() == "]":
		sizeKind = ArraySizeNone
	case p.curText() == "*":
		p.advance()
		sizeKind = ArraySizeVLA
	case p.cur().Kind == TokNumber:
		n, err := strconv.Atoi(p.curText())
		if err != nil {
			return nil, SyntaxError{Message: "invalid array size '" + p.curText() + "'", Span: rangeSpan(p.cur().Range)}
		}
		p.advance()
		sizeKind, size = ArraySizeInt, n
	case p.cur().Kind == TokIdent:
		sizeName = p.advance().Text
		sizeKind = ArraySizeNamed
	}
	if err := p.expectPunct("]"); err != nil {
		return nil, err
	}
	return func(arena *Arena, fresh Node) Node {
		arr := NewArray(arena, 0, Range{})
		arr.SizeKind, arr.Size, arr.SizeName = sizeKind, size, sizeName
		SetParent(fresh, arr)
		return arr
	}, nil
}

func (p *Parser) parseFuncSuffix() (suffixMaker, error) {
	p.advance() // '('
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return func(arena *Arena, fresh Node) Node {
		fn := NewFunction(arena, 0, Range{})
		SetParent(fresh, fn)
		fn.Params = params
		ListSetParamOf(params, fn)
		return fn
	}, nil
}

func (p *Parser) parseParamList() ([]Node, error) {
	if p.curText() == ")" {
		return nil, nil
	}
	if p.curText() == "void" && p.peekIsCloseParen() {
		p.advance()
		return nil, nil
	}
	var params []Node
	for {
		if p.curText() == "..." {
			p.advance()
			params = append(params, NewVariadic(p.arena, 0, Range{}))
		} else {
			base, err := p.parseSpecifiers()
			if err != nil {
				return nil, err
			}
			declResult, name, err := p.parseDeclarator()
			if err != nil {
				return nil, err
			}
			final := PatchPlaceholder(declResult, base)
			final.SetSName(NewSName(name))
			params = append(params, final)
		}
		if p.curText() != "," {
			break
		}
		p.advance()
	}
	return params, nil
}

func (p *Parser) peekIsCloseParen() bool {
	if p.pos+1 >= len(p.toks) {
		return true
	}
	return p.toks[p.pos+1].Text == ")"
}

func (p *Parser) buildSuffixChain(suffixes []suffixMaker) Node {
	root := Node(NewPlaceholder(p.arena, 0, Range{}))
	for _, mk := range suffixes {
		fresh := NewPlaceholder(p.arena, 0, Range{})
		node := mk(p.arena, fresh)
		root = PatchPlaceholder(root, node)
	}
	return root
}
