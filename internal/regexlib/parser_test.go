package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------- Lexer

func TestLexerTokens(t *testing.T) {
	toks, err := tokenize("a|(b.c)*+?εx")
	require.NoError(t, err)

	want := []tokenType{
		tChar, tUnion, tLParen, tChar, tConcat, tChar, tRParen,
		tStar, tPlus, tQMark, tEpsilon, tChar,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, toks[i].typ, "token %d", i)
		assert.Equal(t, i, toks[i].pos, "token %d", i)
	}
	assert.Equal(t, Epsilon, toks[10].ch)
}

// ------------------------------------------------------------------- Validation

func TestIsBalanced(t *testing.T) {
	assert.True(t, IsBalanced("(a|b)*a(a|b)"))
	assert.True(t, IsBalanced("abc"))
	assert.False(t, IsBalanced("(a|b"))
	assert.False(t, IsBalanced(")("))
	assert.False(t, IsBalanced("a)"))
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		pattern string
		kind    error
		pos     int
	}{
		{"(a|b", ErrUnbalancedParentheses, 0},
		{"a|b)", ErrUnbalancedParentheses, 3},
		{"*a", ErrMissingOperandForUnary, 0},
		{"(*a)", ErrMissingOperandForUnary, 1},
		{"a**", ErrMissingOperandForUnary, 2},
		{"a?+", ErrMissingOperandForUnary, 2},
		{"|a", ErrMissingOperandForBinary, 0},
		{"a|", ErrMissingOperandForBinary, 1},
		{"a||b", ErrMissingOperandForBinary, 1},
		{"(a|)", ErrMissingOperandForBinary, 2},
		{"a.|b", ErrMissingOperandForBinary, 1},
		{"a()", ErrEmptyGroup, 1},
	}
	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			err := Validate(tc.pattern)
			require.ErrorIs(t, err, tc.kind)
			var se *SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.pos, se.Pos)
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	for _, p := range []string{"a", "a|b", "(a|b)*abb", "a*|b", "(a)?", "a.b", "ε", "(a|ε)+"} {
		assert.NoError(t, Validate(p), p)
	}
	assert.ErrorIs(t, Validate(""), ErrEmptyPattern)
}

// ------------------------------------------------------------------- Sugar

func TestSugarRewrites(t *testing.T) {
	assert.Equal(t, "aa*", ExpandPlus("a+"))
	assert.Equal(t, "(a|b)(a|b)*c", ExpandPlus("(a|b)+c"))
	assert.Equal(t, "x((a)b)((a)b)*", ExpandPlus("x((a)b)+"))

	assert.Equal(t, "(a|ε)", ExpandOptional("a?"))
	assert.Equal(t, "((ab)|ε)c", ExpandOptional("(ab)?c"))
	assert.Equal(t, "x(y|ε)", ExpandOptional("xy?"))

	assert.Equal(t, "a.b*.(c|d)", InsertConcatenation("ab*(c|d)"))
	assert.Equal(t, "a.b", InsertConcatenation("a.b"))
	assert.Equal(t, "(a|b).(c)", InsertConcatenation("(a|b)(c)"))

	assert.Equal(t, "(a|ε).b.b*", Format("a?b+"))
}

// ------------------------------------------------------------------- Shunting-yard

func TestToPostfix(t *testing.T) {
	cases := map[string]Postfix{
		"a|b":       "ab|",
		"ab":        "ab.",
		"a.b":       "ab.",
		"a|bc*":     "abc*.|",
		"(a|b)*abb": "ab|*a.b.b.",
		"a+":        "aa*.",
		"a?":        "aε|",
		"(ab)?c":    "ab.ε|c.",
		"ε":         "ε",
	}
	for in, want := range cases {
		got, err := ToPostfix(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestInfixToPostfix(t *testing.T) {
	ok, out := InfixToPostfix("a|b")
	assert.True(t, ok)
	assert.Equal(t, "ab|", out)

	ok, out = InfixToPostfix("(a|b")
	assert.False(t, ok)
	assert.Contains(t, out, "unbalanced parentheses")

	ok, out = InfixToPostfix("a|*")
	assert.False(t, ok)
	assert.Contains(t, out, "position 1")
}
