package regexlib

import (
	"strings"

	"github.com/pkg/errors"
)

type NodeKind int

const (
	Leaf   NodeKind = iota // literal symbol
	Empty                  // ε
	Star                   // child*
	Union                  // left|right
	Concat                 // left.right
)

func (k NodeKind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Empty:
		return "empty"
	case Star:
		return "star"
	case Union:
		return "union"
	case Concat:
		return "concat"
	default:
		return "unknown"
	}
}

// Node is a syntax tree node. Star keeps its operand in Left.
type Node struct {
	Kind   NodeKind
	Symbol rune
	Left   *Node
	Right  *Node
}

func leafNode(r rune) *Node { return &Node{Kind: Leaf, Symbol: r} }

func emptyNode() *Node { return &Node{Kind: Empty, Symbol: Epsilon} }

func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Left = n.Left.clone()
	c.Right = n.Right.clone()
	return &c
}

// BuildTree builds a syntax tree from postfix. The sugar operators + and ?
// only occur in hand-written postfix; they are expanded to concatenation
// with a star and to a union with ε.
func BuildTree(p Postfix) (*Node, error) {
	var stack []*Node
	pop := func(op rune, at, n int) ([]*Node, error) {
		if len(stack) < n {
			return nil, errors.Wrapf(ErrMalformedPostfix, "'%c' at %d needs %d operand(s), have %d", op, at, n, len(stack))
		}
		args := append([]*Node(nil), stack[len(stack)-n:]...)
		stack = stack[:len(stack)-n]
		return args, nil
	}

	for i, r := range []rune(p) {
		switch r {
		case '.', '|':
			args, err := pop(r, i, 2)
			if err != nil {
				return nil, err
			}
			kind := Concat
			if r == '|' {
				kind = Union
			}
			stack = append(stack, &Node{Kind: kind, Symbol: r, Left: args[0], Right: args[1]})
		case '*':
			args, err := pop(r, i, 1)
			if err != nil {
				return nil, err
			}
			stack = append(stack, &Node{Kind: Star, Symbol: r, Left: args[0]})
		case '+':
			args, err := pop(r, i, 1)
			if err != nil {
				return nil, err
			}
			loop := &Node{Kind: Star, Symbol: '*', Left: args[0].clone()}
			stack = append(stack, &Node{Kind: Concat, Symbol: '.', Left: args[0], Right: loop})
		case '?':
			args, err := pop(r, i, 1)
			if err != nil {
				return nil, err
			}
			stack = append(stack, &Node{Kind: Union, Symbol: '|', Left: args[0], Right: emptyNode()})
		case Epsilon:
			stack = append(stack, emptyNode())
		default:
			stack = append(stack, leafNode(r))
		}
	}

	if len(stack) != 1 {
		return nil, errors.Wrapf(ErrMalformedPostfix, "%d subtrees left on the stack", len(stack))
	}
	return stack[0], nil
}

// Postfix renders the tree back into postfix order.
func (n *Node) Postfix() Postfix {
	var b strings.Builder
	n.writePostfix(&b)
	return Postfix(b.String())
}

func (n *Node) writePostfix(b *strings.Builder) {
	switch n.Kind {
	case Leaf, Empty:
		b.WriteRune(n.Symbol)
	case Star:
		n.Left.writePostfix(b)
		b.WriteRune('*')
	case Union:
		n.Left.writePostfix(b)
		n.Right.writePostfix(b)
		b.WriteRune('|')
	case Concat:
		n.Left.writePostfix(b)
		n.Right.writePostfix(b)
		b.WriteRune('.')
	default:
		panic("unknown syntax tree node")
	}
}

// Leaves returns the literal leaves in left-to-right order.
func (n *Node) Leaves() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Kind == Leaf {
			out = append(out, n)
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(n)
	return out
}
