package cdecl


// Session is cdecl's public entrypoint surface (§5): one Arena per
// session (disposed on Close), one MacroStore, one Config, and the
// active language standard, all read at call time so changing
// `set lang` mid-session never requires rebuilding anything.
type Session struct {
	Arena    *Arena
	Macros   *MacroStore
	Config   *Config
	Lang     LangID
	Typedefs map[string]Node
}

// NewSession starts a session targeting lang.
func NewSession(lang LangID) *Session {
	return &Session{
		Arena:    NewArena(),
		Macros:   NewMacroStore(),
		Config:   NewConfig(),
		Lang:     lang,
		Typedefs: make(map[string]Node),
	}
}

// Close disposes the session's arena, per the arena-ownership
// invariant: every node the session allocated is reclaimed in one
// step (§4.1).
func (s *Session) Close() { s.Arena.Dispose() }

// Explain parses src as a C/C++ declaration and renders its stylized
// English explanation (§4.5 gibberish -> English, the `explain`
// command).
func (s *Session) Explain(src string) (string, error) {
	n, name, err := s.parseGibberish(src)
	if err != nil {
		return "", s.annotate(src, err)
	}
	return EnglishDeclaration(n, name, s.Lang), nil
}

// Declare parses english per the constrained "declare x as ..."
// grammar (§4.5 English -> gibberish) and renders it back as a C/C++
// declarator (the `declare` command).
func (s *Session) Declare(name, english string) (string, error) {
	toks, err := Tokenize([]byte(english))
	if err != nil {
		return "", s.annotate(english, err)
	}
	ep := &englishParser{toks: toks, arena: s.Arena, typedefs: s.Typedefs}
	n, err := ep.parsePhrase()
	if err != nil {
		return "", s.annotate(english, err)
	}
	if !ep.atEnd() {
		return "", LookupError{Token: ep.curText()}
	}
	return GibberishDeclaration(n, name, s.Lang), nil
}

// Cast renders a cast expression explanation (the `cast` command):
// typeSpec is parsed as a C/C++ type name and the result reads
// "cast expr into pointer to int", via ExplainCast/CastNode.
func (s *Session) Cast(expr, typeSpec string, kind CastKind) (string, error) {
	n, err := s.parseGibberishType(typeSpec)
	if err != nil {
		return "", s.annotate(typeSpec, err)
	}
	cast := NewCast(s.Arena, 0, Range{}, kind)
	SetParent(n, cast)
	return ExplainCast(cast, expr), nil
}

// Define installs a macro parsed from a `#define`-style line's body
// (name, params, and replacement text already split by the caller's
// command-line shell, per §4.7).
func (s *Session) Define(name string, isFunction bool, params []string, variadic bool, variadicName string, body string) error {
	toks, err := Tokenize([]byte(body))
	if err != nil {
		return err
	}
	return s.Macros.Define(&Macro{
		Name: name, IsFunction: isFunction, Params: params,
		IsVariadic: variadic, VariadicName: variadicName, Body: toks,
	})
}

// Undef removes name's macro definition, if any.
func (s *Session) Undef(name string) { s.Macros.Undef(name) }

// ExpandText macro-expands src, optionally tracing each substitution
// step when macro.trace is enabled (§4.7, the `expand` command).
func (s *Session) ExpandText(src string) (string, *ExpandTrace, error) {
	toks, err := Tokenize([]byte(src))
	if err != nil {
		return "", nil, s.annotate(src, err)
	}
	var trace *ExpandTrace
	if s.Config.GetBool("macro.trace") {
		trace = &ExpandTrace{}
	}
	out, err := Expand(s.Macros, toks, trace)
	if err != nil {
		return "", trace, s.annotate(src, err)
	}
	return out.Str(), trace, nil
}

// parseGibberish tokenizes and parses a full named-or-abstract
// declaration. Errors are returned unchanged; did-you-mean
// suggestions are added by the caller through annotate.
func (s *Session) parseGibberish(src string) (Node, string, error) {
	toks, err := Tokenize([]byte(src))
	if err != nil {
		return nil, "", err
	}
	n, name, err := ParseDeclaration(toks, s.Arena, s.Lang, s.Typedefs)
	if err != nil {
		return nil, "", err
	}
	return n, name, nil
}

func (s *Session) parseGibberishType(src string) (Node, error) {
	toks, err := Tokenize([]byte(src))
	if err != nil {
		return nil, err
	}
	return ParseTypeName(toks, s.Arena, s.Lang, s.Typedefs)
}

// annotate enriches a LookupError (an unrecognized identifier where a
// type name was expected) with did-you-mean candidates drawn from the
// keyword table and the session's typedef names, per §4.6. Every
// other error kind is passed through unchanged.
func (s *Session) annotate(src string, err error) error {
	le, ok := err.(LookupError)
	if !ok || !s.Config.GetBool("dym.enabled") || le.Token == "" {
		return err
	}
	pool := KeywordLiterals()
	for name := range s.Typedefs {
		pool = append(pool, name)
	}
	max := s.Config.GetInt("dym.max_candidates")
	sugg := DidYouMean(le.Token, pool, max)
	words := make([]string, len(sugg))
	for i, sg := range sugg {
		words[i] = sg.Word
	}
	le.Suggestions = words
	return le
}

// AddTypedef records name as a typedef of target, for subsequent
// parses to recognize as a type-specifier (§4.3 "typedef-name
// lookup").
func (s *Session) AddTypedef(name string, target Node) { s.Typedefs[name] = target }

// englishParser implements the constrained inverse grammar §4.5
// describes: the exact structural mirror of englishPhrase's output,
// so `declare x as pointer to array 3 of int` round-trips against
// `int *x[3]` (§8).
type englishParser struct {
	toks     TokenList
	pos      int
	arena    *Arena
	typedefs map[string]Node
}

func (p *englishParser) cur() Token {
	if p.pos >= len(p.toks) {
		return Token{}
	}
	return p.toks[p.pos]
}
func (p *englishParser) curText() string { return p.cur().Text }
func (p *englishParser) atEnd() bool      { return p.pos >= len(p.toks) }
func (p *englishParser) advance() Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *englishParser) expectWord(w string) error {
	if p.curText() != w {
		return SyntaxError{Message: "expected \"" + w + "\", got \"" + p.curText() + "\""}
	}
	p.advance()
	return nil
}

// parsePhrase parses one englishPhrase production in reverse.
func (p *englishParser) parsePhrase() (Node, error) {
	quals := p.parseQuals()
	switch p.curText() {
	case "pointer":
		p.advance()
		if err := p.expectWord("to"); err != nil {
			return nil, err
		}
		inner, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		ptr := NewPointer(p.arena, 0, Range{})
		ptr.SetType(quals)
		SetParent(inner, ptr)
		return ptr, nil

	case "reference":
		p.advance()
		if err := p.expectWord("to"); err != nil {
			return nil, err
		}
		inner, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		ref := NewReference(p.arena, 0, Range{})
		SetParent(inner, ref)
		return ref, nil

	case "rvalue":
		p.advance()
		if err := p.expectWord("reference"); err != nil {
			return nil, err
		}
		if err := p.expectWord("to"); err != nil {
			return nil, err
		}
		inner, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		rv := NewRValueRef(p.arena, 0, Range{})
		SetParent(inner, rv)
		return rv, nil

	case "array":
		p.advance()
		sizeKind, size, sizeName := ArraySizeNone, 0, ""
		switch {
		case p.curText() == "of":
			// no count
		case p.curText() == "variable":
			p.advance()
			p.expectWord("length")
			sizeKind = ArraySizeVLA
		case p.cur().Kind == TokNumber:
			n, err := strconvAtoiEnglish(p.curText())
			if err != nil {
				return nil, err
			}
			p.advance()
			sizeKind, size = ArraySizeInt, n
		case p.cur().Kind == TokIdent:
			sizeName = p.advance().Text
			sizeKind = ArraySizeNamed
		}
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		inner, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		arr := NewArray(p.arena, 0, Range{})
		arr.SizeKind, arr.Size, arr.SizeName = sizeKind, size, sizeName
		SetParent(inner, arr)
		return arr, nil

	case "function":
		p.advance()
		if err := p.expectWord("("); err != nil {
			return nil, err
		}
		params, err := p.parseParamListEnglish()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord(")"); err != nil {
			return nil, err
		}
		if err := p.expectWord("returning"); err != nil {
			return nil, err
		}
		inner, err := p.parsePhrase()
		if err != nil {
			return nil, err
		}
		fn := NewFunction(p.arena, 0, Range{})
		SetParent(inner, fn)
		fn.Params = params
		ListSetParamOf(params, fn)
		return fn, nil

	default:
		return p.parseBaseType(quals)
	}
}

// parseQuals consumes leading storage-class/thread-local/const/
// volatile words that precede a base type name or `pointer` in englishPhrase's
// output (storageEnglish/qualEnglish's rendering, in that order).
func (p *englishParser) parseQuals() TypeID {
	var q TypeID
	for {
		switch p.curText() {
		case "extern":
			q = q.Union(TSExtern)
			p.advance()
		case "static":
			q = q.Union(TSStatic)
			p.advance()
		case "register":
			q = q.Union(TSRegister)
			p.advance()
		case "typedef":
			q = q.Union(TSTypedef)
			p.advance()
		case "thread":
			if p.pos+2 < len(p.toks) && p.toks[p.pos+1].Text == "-" && p.toks[p.pos+2].Text == "local" {
				q = q.Union(TSThreadLocal)
				p.advance()
				p.advance()
				p.advance()
				continue
			}
			return q
		case "const":
			q = q.Union(TQConst)
			p.advance()
		case "volatile":
			q = q.Union(TQVolatile)
			p.advance()
		default:
			return q
		}
	}
}

func (p *englishParser) parseBaseType(quals TypeID) (Node, error) {
	switch p.curText() {
	case "enumeration":
		p.advance()
		n := NewEnum(p.arena, 0, Range{})
		n.SetSName(NewSName(p.advance().Text))
		n.SetType(quals)
		return n, nil
	case "struct", "class", "union":
		kw := p.advance().Text
		n := NewRecord(p.arena, 0, Range{}, recordKindFromWord(kw))
		n.SetSName(NewSName(p.advance().Text))
		n.SetType(quals)
		return n, nil
	}
	if target, ok := p.typedefs[p.curText()]; ok {
		n := NewTypedefRef(p.arena, 0, Range{}, target)
		n.SetSName(NewSName(p.advance().Text))
		n.SetType(quals)
		return n, nil
	}
	var words []string
	for !p.atEnd() && p.cur().Kind == TokIdent {
		words = append(words, p.advance().Text)
	}
	if len(words) == 0 {
		return nil, LookupError{Token: p.curText()}
	}
	typ, err := typeFromEnglishWords(words)
	if err != nil {
		return nil, err
	}
	n := NewBuiltin(p.arena, 0, Range{})
	n.SetType(TypeNormalize(typ.Union(quals)))
	return n, nil
}

func recordKindFromWord(w string) RecordKind {
	switch w {
	case "class":
		return RecordClass
	case "union":
		return RecordUnion
	default:
		return RecordStruct
	}
}

func typeFromEnglishWords(words []string) (TypeID, error) {
	var t TypeID
	for _, w := range words {
		k, ok := LookupKeyword(w)
		if !ok || k.Type.IsNone() {
			return t, LookupError{Token: w}
		}
		merged, err := TypeAdd(t, k.Type)
		if err != nil {
			return t, SemanticError{Message: err.Error()}
		}
		t = merged
	}
	return t, nil
}

func (p *englishParser) parseParamListEnglish() ([]Node, error) {
	if p.curText() == ")" {
		return nil, nil
	}
	var params []Node
	for {
		if p.curText() == "..." {
			p.advance()
			params = append(params, NewVariadic(p.arena, 0, Range{}))
		} else {
			var paramName string
			if p.cur().Kind == TokIdent && p.peekIsAs() {
				paramName = p.advance().Text
				p.advance() // "as"
			}
			n, err := p.parsePhrase()
			if err != nil {
				return nil, err
			}
			n.SetSName(NewSName(paramName))
			params = append(params, n)
		}
		if p.curText() != "," {
			break
		}
		p.advance()
	}
	return params, nil
}

func (p *englishParser) peekIsAs() bool {
	if p.pos+1 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1].Text == "as"
}

func strconvAtoiEnglish(s string) (int, error) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, SyntaxError{Message: "invalid array size \"" + s + "\""}
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
