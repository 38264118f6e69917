package cdecl

import "strings"

// Lexer scans a single line of C/C++ declarator or macro-directive
// text into a TokenList (§4.3). It performs no preprocessing itself —
// macro expansion operates on the resulting TokenList separately.
type Lexer struct {
	src    []byte
	pos    int
	atLine bool // unused: Next sets the first token's Space from its zero offset
}

// NewLexer returns a Lexer over src.
func NewLexer(src []byte) *Lexer { return &Lexer{src: src} }

// Tokenize scans the whole input and returns its tokens, or a
// LexError for the first invalid character or unterminated literal.
func Tokenize(src []byte) (TokenList, error) {
	lx := NewLexer(src)
	var out TokenList
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return out, nil
		}
		out = append(out, *tok)
	}
}

func (lx *Lexer) peek() byte {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *Lexer) peekAt(off int) byte {
	if lx.pos+off >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+off]
}

// Next returns the next token, nil at end of input, or a LexError.
func (lx *Lexer) Next() (*Token, error) {
	start := lx.pos
	sawSpace := false
	for lx.pos < len(lx.src) && isSpace(lx.src[lx.pos]) {
		lx.pos++
		sawSpace = true
	}
	if lx.pos >= len(lx.src) {
		return nil, nil
	}
	start = lx.pos
	c := lx.src[lx.pos]

	switch {
	case isIdentStart(c):
		for lx.pos < len(lx.src) && isIdentCont(lx.src[lx.pos]) {
			lx.pos++
		}
		return &Token{Kind: TokIdent, Text: string(lx.src[start:lx.pos]),
			Range: NewRange(start, lx.pos), Space: sawSpace || start == 0}, nil

	case isDigit(c):
		for lx.pos < len(lx.src) && (isIdentCont(lx.src[lx.pos]) || lx.src[lx.pos] == '.') {
			lx.pos++
		}
		return &Token{Kind: TokNumber, Text: string(lx.src[start:lx.pos]),
			Range: NewRange(start, lx.pos), Space: sawSpace || start == 0}, nil

	case c == '"':
		return lx.scanQuoted(start, sawSpace, '"', TokString)

	case c == '\'':
		return lx.scanQuoted(start, sawSpace, '\'', TokChar)

	default:
		text := lx.scanPunct()
		if text == "" {
			return nil, LexError{Message: "invalid character", Span: rangeSpan(NewRange(start, start+1))}
		}
		return &Token{Kind: TokPunct, Text: text, Range: NewRange(start, lx.pos), Space: sawSpace || start == 0}, nil
	}
}

func (lx *Lexer) scanQuoted(start int, sawSpace bool, quote byte, kind TokenKind) (*Token, error) {
	lx.pos++ // opening quote
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c == '\\' && lx.pos+1 < len(lx.src) {
			lx.pos += 2
			continue
		}
		if c == quote {
			lx.pos++
			return &Token{Kind: kind, Text: string(lx.src[start:lx.pos]),
				Range: NewRange(start, lx.pos), Space: sawSpace || start == 0}, nil
		}
		lx.pos++
	}
	return nil, LexError{Message: "unterminated literal", Span: rangeSpan(NewRange(start, lx.pos))}
}

// punct3, punct2 are the multi-character operator spellings this
// grammar needs to recognize whole (longest match first). Declarator
// syntax itself only needs `...`, `->`, `::` and `##`/`#`, but `expand`
// feeds arbitrary macro-body and call-site text through this same
// lexer, so the full set of C/C++ compound operators and
// compound-assignments is recognized too — otherwise e.g. `a++` would
// tokenize as `a`, `+`, `+` and reassemble wrong.
var punct3 = []string{"...", "->*", "<<=", ">>="}
var punct2 = []string{
	"::", "->", "##",
	"&&", "||", "==", "!=", "<=", ">=", "<<", ">>", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
}

func (lx *Lexer) scanPunct() string {
	rest := lx.src[lx.pos:]
	for _, p := range punct3 {
		if strings.HasPrefix(string(rest), p) {
			lx.pos += len(p)
			return p
		}
	}
	for _, p := range punct2 {
		if strings.HasPrefix(string(rest), p) {
			lx.pos += len(p)
			return p
		}
	}
	c := rest[0]
	switch c {
	case '(', ')', '[', ']', '{', '}', '*', '&', ',', ';', ':', '=', '+', '-', '/', '%',
		'<', '>', '!', '^', '|', '~', '.', '#', '?':
		lx.pos++
		return string(c)
	default:
		return ""
	}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
