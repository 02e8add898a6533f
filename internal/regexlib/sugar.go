package regexlib

// ExpandPlus rewrites every E+ as EE*.
func ExpandPlus(s string) string { return rewrite(s, expandPlus) }

// ExpandOptional rewrites every E? as (E|ε).
func ExpandOptional(s string) string { return rewrite(s, expandOptional) }

// InsertConcatenation makes every implicit concatenation an explicit '.'.
func InsertConcatenation(s string) string { return rewrite(s, insertConcat) }

// Format applies the plus, optional and concatenation rewrites in that order.
func Format(s string) string { return rewrite(s, format) }

func format(toks []token) []token {
	return insertConcat(expandOptional(expandPlus(toks)))
}

func rewrite(s string, fn func([]token) []token) string {
	toks, err := tokenize(s)
	if err != nil {
		return s
	}
	return joinTokens(fn(toks))
}

// operandStart returns the index in toks where the operand ending at the last
// token begins: the last symbol, or the balanced group closed by a trailing
// ')', together with any postfix operators already applied to it.
// It returns -1 when there is no such operand.
func operandStart(toks []token) int {
	i := len(toks) - 1
	for i >= 0 && toks[i].isUnary() {
		i--
	}
	if i < 0 || toks[i].typ == tLParen || toks[i].isBinary() {
		return -1
	}
	if toks[i].typ != tRParen {
		return i
	}
	depth := 0
	for ; i >= 0; i-- {
		switch toks[i].typ {
		case tRParen:
			depth++
		case tLParen:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func expandPlus(toks []token) []token {
	out := make([]token, 0, len(toks))
	for _, t := range toks {
		if t.typ != tPlus {
			out = append(out, t)
			continue
		}
		start := operandStart(out)
		if start < 0 {
			out = append(out, t)
			continue
		}
		operand := append([]token(nil), out[start:]...)
		out = append(out, operand...)
		out = append(out, token{typ: tStar, ch: '*', pos: t.pos})
	}
	return out
}

func expandOptional(toks []token) []token {
	out := make([]token, 0, len(toks))
	for _, t := range toks {
		if t.typ != tQMark {
			out = append(out, t)
			continue
		}
		start := operandStart(out)
		if start < 0 {
			out = append(out, t)
			continue
		}
		operand := append([]token(nil), out[start:]...)
		out = append(out[:start], token{typ: tLParen, ch: '(', pos: t.pos})
		out = append(out, operand...)
		out = append(out,
			token{typ: tUnion, ch: '|', pos: t.pos},
			token{typ: tEpsilon, ch: Epsilon, pos: t.pos},
			token{typ: tRParen, ch: ')', pos: t.pos},
		)
	}
	return out
}

func insertConcat(toks []token) []token {
	out := make([]token, 0, 2*len(toks))
	for i, t := range toks {
		out = append(out, t)
		if i+1 < len(toks) && needsConcat(t, toks[i+1]) {
			out = append(out, token{typ: tConcat, ch: '.', pos: t.pos})
		}
	}
	return out
}

func needsConcat(left, right token) bool {
	switch left.typ {
	case tUnion, tLParen, tConcat:
		return false
	}
	switch right.typ {
	case tUnion, tRParen, tStar, tPlus, tQMark, tConcat:
		return false
	}
	return true
}
