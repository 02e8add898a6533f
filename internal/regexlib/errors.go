package regexlib

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyPattern            = errors.New("empty pattern")
	ErrUnbalancedParentheses   = errors.New("unbalanced parentheses")
	ErrMissingOperandForUnary  = errors.New("unary operator has no operand")
	ErrMissingOperandForBinary = errors.New("binary operator is missing an operand")
	ErrEmptyGroup              = errors.New("empty group")

	// ErrMalformedPostfix means a builder was handed a postfix sequence
	// that does not reduce to exactly one fragment. Validated input never
	// produces one.
	ErrMalformedPostfix = errors.New("malformed postfix")

	ErrMissingEndMarker = errors.New("syntax tree has no unique end marker")
	ErrReservedSymbol   = errors.New("pattern uses the reserved end marker")
)

// SyntaxError reports a validation failure at a rune offset of the pattern.
type SyntaxError struct {
	Kind error
	Pos  int
	Op   rune
}

func (e *SyntaxError) Error() string {
	if e.Op == 0 {
		return fmt.Sprintf("%v at position %d", e.Kind, e.Pos)
	}
	return fmt.Sprintf("%v: '%c' at position %d", e.Kind, e.Op, e.Pos)
}

func (e *SyntaxError) Cause() error  { return e.Kind }
func (e *SyntaxError) Unwrap() error { return e.Kind }
