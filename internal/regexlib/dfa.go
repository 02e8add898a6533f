package regexlib

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// DFA is a deterministic automaton over named states. A missing entry in
// Transitions means there is no move on that symbol, which rejects.
type DFA struct {
	States      []string
	Transitions map[string]map[rune]string
	Initial     string
	Accept      map[string]struct{}
	Alphabet    map[rune]struct{}
}

func NewDFA() *DFA {
	return &DFA{
		Transitions: map[string]map[rune]string{},
		Accept:      map[string]struct{}{},
		Alphabet:    map[rune]struct{}{},
	}
}

func stateName(i int) string { return "S" + strconv.Itoa(i) }

// AddState registers name once; accept marks it accepting.
func (d *DFA) AddState(name string, accept bool) {
	if _, ok := d.Transitions[name]; !ok {
		d.States = append(d.States, name)
		d.Transitions[name] = map[rune]string{}
	}
	if accept {
		d.Accept[name] = struct{}{}
	}
}

// AddTransition records from --symbol--> to. It is a no-op for unknown
// source states.
func (d *DFA) AddTransition(from string, symbol rune, to string) {
	row, ok := d.Transitions[from]
	if !ok {
		return
	}
	row[symbol] = to
	d.Alphabet[symbol] = struct{}{}
}

func (d *DFA) SetInitial(name string) { d.Initial = name }

func (d *DFA) IsAccept(name string) bool {
	_, ok := d.Accept[name]
	return ok
}

// Symbols returns the alphabet in ascending order.
func (d *DFA) Symbols() []rune { return sortedRunes(d.Alphabet) }

// Next returns the target of state on symbol.
func (d *DFA) Next(state string, symbol rune) (string, bool) {
	to, ok := d.Transitions[state][symbol]
	return to, ok
}

func (d *DFA) Len() int { return len(d.States) }

// Match walks the input from Initial; a missing transition rejects at once.
func (d *DFA) Match(input string) bool {
	cur := d.Initial
	for _, r := range input {
		next, ok := d.Next(cur, r)
		if !ok {
			return false
		}
		cur = next
	}
	return d.IsAccept(cur)
}

// SubsetConstruction determinizes n. Each DFA state stands for an
// epsilon-closed set of NFA states; names are assigned S0, S1, ... in
// breadth-first discovery order.
func SubsetConstruction(n *NFA) *DFA {
	type pending struct {
		name string
		set  *bitset.BitSet
	}

	start := n.EpsilonClosure(n.NewSet(n.Initial))
	d := NewDFA()
	names := map[string]string{setKey(start): stateName(0)}
	d.AddState(stateName(0), start.Test(uint(n.Accept)))
	d.SetInitial(stateName(0))

	queue := []pending{{stateName(0), start}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range n.labels(cur.set) {
			target := n.EpsilonClosure(n.Move(cur.set, sym))
			key := setKey(target)
			name, seen := names[key]
			if !seen {
				name = stateName(len(names))
				names[key] = name
				d.AddState(name, target.Test(uint(n.Accept)))
				queue = append(queue, pending{name, target})
			}
			d.AddTransition(cur.name, sym, name)
		}
	}
	return d
}
