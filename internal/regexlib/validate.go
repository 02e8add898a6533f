package regexlib

// IsBalanced reports whether the parentheses of s pair up.
func IsBalanced(s string) bool {
	var stack []rune
	for _, r := range s {
		switch r {
		case '(':
			stack = append(stack, r)
		case ')':
			if len(stack) == 0 {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

// Validate checks the structure of an infix pattern without looking at its
// alphabet. The returned error is ErrEmptyPattern or a *SyntaxError.
func Validate(pattern string) error {
	toks, err := tokenize(pattern)
	if err != nil {
		return err
	}
	if len(toks) == 0 {
		return ErrEmptyPattern
	}
	return validate(toks)
}

func validate(toks []token) error {
	var open []int
	for _, t := range toks {
		switch t.typ {
		case tLParen:
			open = append(open, t.pos)
		case tRParen:
			if len(open) == 0 {
				return &SyntaxError{Kind: ErrUnbalancedParentheses, Pos: t.pos, Op: t.ch}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return &SyntaxError{Kind: ErrUnbalancedParentheses, Pos: open[len(open)-1], Op: '('}
	}

	for i, t := range toks {
		switch {
		case t.isUnary():
			// a?+ and a** are rejected here, so sugar rewrites never see chains.
			if i == 0 || !toks[i-1].closesOperand() {
				return &SyntaxError{Kind: ErrMissingOperandForUnary, Pos: t.pos, Op: t.ch}
			}
		case t.isBinary():
			leftOK := i > 0 && (toks[i-1].closesOperand() || toks[i-1].isUnary())
			rightOK := i+1 < len(toks) && toks[i+1].opensOperand()
			if !leftOK || !rightOK {
				return &SyntaxError{Kind: ErrMissingOperandForBinary, Pos: t.pos, Op: t.ch}
			}
		case t.typ == tRParen:
			if i > 0 && toks[i-1].typ == tLParen {
				return &SyntaxError{Kind: ErrEmptyGroup, Pos: toks[i-1].pos}
			}
		}
	}
	return nil
}
