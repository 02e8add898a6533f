package regexlib

// Postfix is a regex in reverse Polish order: every operator follows its
// operands. Each rune is either an operator (| . * + ?) or an operand.
type Postfix string

func (p Postfix) String() string { return string(p) }

// Augment appends the end marker as a final concatenated operand, the
// postfix form of (p)#.
func Augment(p Postfix, endMarker rune) Postfix {
	return p + Postfix([]rune{endMarker, '.'})
}

var precedence = map[tokenType]int{
	tLParen: 1,
	tUnion:  2,
	tConcat: 3,
	tQMark:  4,
	tStar:   4,
	tPlus:   4,
}

// ToPostfix validates an infix pattern, removes its syntactic sugar and
// converts it with the shunting-yard algorithm.
func ToPostfix(infix string) (Postfix, error) {
	toks, err := tokenize(infix)
	if err != nil {
		return "", err
	}
	if len(toks) == 0 {
		return "", ErrEmptyPattern
	}
	if err := validate(toks); err != nil {
		return "", err
	}
	return shuntingYard(format(toks)), nil
}

// InfixToPostfix is ToPostfix for callers that want a verdict and a message:
// the postfix string on success, a diagnostic otherwise.
func InfixToPostfix(infix string) (bool, string) {
	p, err := ToPostfix(infix)
	if err != nil {
		return false, err.Error()
	}
	return true, p.String()
}

func shuntingYard(toks []token) Postfix {
	out := make([]rune, 0, len(toks))
	var stack []token
	for _, t := range toks {
		switch {
		case t.typ == tLParen:
			stack = append(stack, t)
		case t.typ == tRParen:
			for len(stack) > 0 && stack[len(stack)-1].typ != tLParen {
				out = append(out, stack[len(stack)-1].ch)
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case t.isUnary(), t.isBinary():
			for len(stack) > 0 && precedence[stack[len(stack)-1].typ] >= precedence[t.typ] {
				out = append(out, stack[len(stack)-1].ch)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		default:
			out = append(out, t.ch)
		}
	}
	for len(stack) > 0 {
		out = append(out, stack[len(stack)-1].ch)
		stack = stack[:len(stack)-1]
	}
	return Postfix(out)
}
