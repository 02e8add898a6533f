package regexlib

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

const (
	// Epsilon is the empty-string literal. It is an operand, never an input symbol.
	Epsilon rune = 'ε'
	// DefaultEndMarker terminates the augmented pattern fed to DirectDFA.
	DefaultEndMarker rune = '#'
)

type tokenType int

const (
	tChar    tokenType = iota // literal rune
	tEpsilon                  // ε
	tLParen                   // (
	tRParen                   // )
	tStar                     // *
	tPlus                     // +
	tQMark                    // ?
	tUnion                    // |
	tConcat                   // . (explicit or inserted)
)

type token struct {
	typ tokenType
	ch  rune
	pos int // rune offset in the source pattern
}

func (t token) isUnary() bool {
	return t.typ == tStar || t.typ == tPlus || t.typ == tQMark
}

func (t token) isBinary() bool {
	return t.typ == tUnion || t.typ == tConcat
}

// closesOperand reports whether an operand can end at t.
func (t token) closesOperand() bool {
	return t.typ == tChar || t.typ == tEpsilon || t.typ == tRParen
}

// opensOperand reports whether an operand can start at t.
func (t token) opensOperand() bool {
	return t.typ == tChar || t.typ == tEpsilon || t.typ == tLParen
}

// Every rule matches exactly one rune, so a token's index is its rune offset.
var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Union", Pattern: `\|`},
	{Name: "Concat", Pattern: `\.`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "QMark", Pattern: `\?`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Epsilon", Pattern: `ε`},
	{Name: "Char", Pattern: `(?s:.)`},
})

var tokenTypes = func() map[lexer.TokenType]tokenType {
	byName := map[string]tokenType{
		"Union":   tUnion,
		"Concat":  tConcat,
		"Star":    tStar,
		"Plus":    tPlus,
		"QMark":   tQMark,
		"LParen":  tLParen,
		"RParen":  tRParen,
		"Epsilon": tEpsilon,
		"Char":    tChar,
	}
	out := make(map[lexer.TokenType]tokenType, len(byName))
	for name, tt := range regexLexer.Symbols() {
		if typ, ok := byName[name]; ok {
			out[tt] = typ
		}
	}
	return out
}()

func tokenize(pattern string) ([]token, error) {
	lex, err := regexLexer.LexString("", pattern)
	if err != nil {
		return nil, errors.Wrap(err, "lex pattern")
	}
	toks := make([]token, 0, utf8.RuneCountInString(pattern))
	for {
		t, err := lex.Next()
		if err != nil {
			return nil, errors.Wrap(err, "lex pattern")
		}
		if t.EOF() {
			return toks, nil
		}
		r, _ := utf8.DecodeRuneInString(t.Value)
		toks = append(toks, token{typ: tokenTypes[t.Type], ch: r, pos: len(toks)})
	}
}

func joinTokens(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteRune(t.ch)
	}
	return b.String()
}
