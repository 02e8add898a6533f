package regexlib

import (
	"sort"

	"github.com/pkg/errors"
)

// StateID addresses a state in an NFA's arena.
type StateID int

// NoState marks an absent edge.
const NoState StateID = -1

// State is an NFA state. An unlabeled state's edges are both epsilon
// transitions; a labeled state consumes Label along Edge1 and has no Edge2.
type State struct {
	Label   rune
	Labeled bool
	Edge1   StateID
	Edge2   StateID
}

// NFA owns every state in States; Initial and Accept are the unique entry
// and exit. The graph may contain cycles.
type NFA struct {
	States  []State
	Initial StateID
	Accept  StateID
}

type fragment struct {
	initial, accept StateID
}

type thompson struct {
	states []State
	stack  []fragment
}

func (b *thompson) newState() StateID {
	b.states = append(b.states, State{Edge1: NoState, Edge2: NoState})
	return StateID(len(b.states) - 1)
}

func (b *thompson) link(from, e1, e2 StateID) {
	b.states[from].Edge1 = e1
	b.states[from].Edge2 = e2
}

func (b *thompson) pop(op rune, at, n int) ([]fragment, error) {
	if len(b.stack) < n {
		return nil, errors.Wrapf(ErrMalformedPostfix, "'%c' at %d needs %d operand(s), have %d", op, at, n, len(b.stack))
	}
	args := append([]fragment(nil), b.stack[len(b.stack)-n:]...)
	b.stack = b.stack[:len(b.stack)-n]
	return args, nil
}

// Thompson builds an NFA from postfix by composing fragments on a stack.
func Thompson(p Postfix) (*NFA, error) {
	b := &thompson{}
	for i, r := range []rune(p) {
		switch r {
		case '*', '+', '?':
			args, err := b.pop(r, i, 1)
			if err != nil {
				return nil, err
			}
			inner := args[0]
			initial, accept := b.newState(), b.newState()
			switch r {
			case '*':
				b.link(initial, inner.initial, accept)
				b.link(inner.accept, inner.initial, accept)
			case '+':
				b.link(initial, inner.initial, NoState)
				b.link(inner.accept, inner.initial, accept)
			case '?':
				b.link(initial, inner.initial, accept)
				b.link(inner.accept, accept, NoState)
			}
			b.stack = append(b.stack, fragment{initial, accept})
		case '.':
			args, err := b.pop(r, i, 2)
			if err != nil {
				return nil, err
			}
			left, right := args[0], args[1]
			b.link(left.accept, right.initial, NoState)
			b.stack = append(b.stack, fragment{left.initial, right.accept})
		case '|':
			args, err := b.pop(r, i, 2)
			if err != nil {
				return nil, err
			}
			left, right := args[0], args[1]
			initial, accept := b.newState(), b.newState()
			b.link(initial, left.initial, right.initial)
			b.link(left.accept, accept, NoState)
			b.link(right.accept, accept, NoState)
			b.stack = append(b.stack, fragment{initial, accept})
		case Epsilon:
			initial, accept := b.newState(), b.newState()
			b.link(initial, accept, NoState)
			b.stack = append(b.stack, fragment{initial, accept})
		default:
			initial, accept := b.newState(), b.newState()
			b.states[initial].Label = r
			b.states[initial].Labeled = true
			b.link(initial, accept, NoState)
			b.stack = append(b.stack, fragment{initial, accept})
		}
	}

	if len(b.stack) != 1 {
		return nil, errors.Wrapf(ErrMalformedPostfix, "%d fragments left on the stack", len(b.stack))
	}
	f := b.stack[0]
	return &NFA{States: b.states, Initial: f.initial, Accept: f.accept}, nil
}

// Reachable lists the states reachable from Initial in depth-first order.
func (n *NFA) Reachable() []StateID {
	seen := make([]bool, len(n.States))
	var out []StateID
	var visit func(StateID)
	visit = func(id StateID) {
		if id == NoState || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
		visit(n.States[id].Edge1)
		visit(n.States[id].Edge2)
	}
	visit(n.Initial)
	return out
}

// Alphabet returns the sorted labels of all states.
func (n *NFA) Alphabet() []rune {
	seen := map[rune]struct{}{}
	for _, s := range n.States {
		if s.Labeled {
			seen[s.Label] = struct{}{}
		}
	}
	return sortedRunes(seen)
}

func sortedRunes(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
