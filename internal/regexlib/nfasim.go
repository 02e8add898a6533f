package regexlib

import "github.com/bits-and-blooms/bitset"

// NewSet returns an empty state set sized for n.
func (n *NFA) NewSet(ids ...StateID) *bitset.BitSet {
	s := bitset.New(uint(len(n.States)))
	for _, id := range ids {
		s.Set(uint(id))
	}
	return s
}

// EpsilonClosure returns set extended with every state reachable through
// epsilon edges. set is not modified.
func (n *NFA) EpsilonClosure(set *bitset.BitSet) *bitset.BitSet {
	closure := set.Clone()
	stack := members(set)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s := n.States[id]
		if s.Labeled {
			continue
		}
		for _, next := range [2]StateID{s.Edge1, s.Edge2} {
			if next == NoState || closure.Test(uint(next)) {
				continue
			}
			closure.Set(uint(next))
			stack = append(stack, uint(next))
		}
	}
	return closure
}

// Move returns the targets of the consuming edges labeled symbol.
func (n *NFA) Move(set *bitset.BitSet, symbol rune) *bitset.BitSet {
	out := n.NewSet()
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		s := n.States[i]
		if s.Labeled && s.Label == symbol && s.Edge1 != NoState {
			out.Set(uint(s.Edge1))
		}
	}
	return out
}

// Match reports whether n accepts the whole input.
func (n *NFA) Match(input string) bool {
	current := n.EpsilonClosure(n.NewSet(n.Initial))
	for _, r := range input {
		current = n.EpsilonClosure(n.Move(current, r))
		if current.None() {
			return false
		}
	}
	return current.Test(uint(n.Accept))
}

// labels returns the sorted labels of the labeled states in set.
func (n *NFA) labels(set *bitset.BitSet) []rune {
	seen := map[rune]struct{}{}
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if s := n.States[i]; s.Labeled {
			seen[s.Label] = struct{}{}
		}
	}
	return sortedRunes(seen)
}
