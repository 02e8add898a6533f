package regexlib

import (
	"strconv"
	"strings"
)

// Reachable returns a copy of d without the states that cannot be reached
// from Initial.
func (d *DFA) Reachable() *DFA {
	seen := map[string]bool{}
	stack := []string{d.Initial}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[s] {
			continue
		}
		seen[s] = true
		for _, to := range d.Transitions[s] {
			if !seen[to] {
				stack = append(stack, to)
			}
		}
	}

	out := NewDFA()
	for _, s := range d.States {
		if seen[s] {
			out.AddState(s, d.IsAccept(s))
		}
	}
	for _, s := range out.States {
		for sym, to := range d.Transitions[s] {
			out.AddTransition(s, sym, to)
		}
	}
	for sym := range d.Alphabet {
		out.Alphabet[sym] = struct{}{}
	}
	out.SetInitial(d.Initial)
	return out
}

// Minimize returns the minimal DFA for the reachable part of d. d itself is
// left untouched.
func Minimize(d *DFA) *DFA {
	if d == nil || d.Initial == "" {
		return d
	}

	// 1. drop unreachable states
	live := d.Reachable()

	// 2. {non-accepting, accepting}
	partitionMap, partitions := initialPartition(live)

	// 3. split until stable
	partitionMap, partitions = refinePartitions(live, partitionMap, partitions)

	// 4. one state per block
	return buildMinimized(live, partitionMap, partitions)
}

func initialPartition(d *DFA) (map[string]int, [][]string) {
	var non, acc []string
	for _, s := range d.States {
		if d.IsAccept(s) {
			acc = append(acc, s)
		} else {
			non = append(non, s)
		}
	}

	partitionMap := make(map[string]int, len(d.States))
	partitions := make([][]string, 0, 2)
	for _, group := range [][]string{non, acc} {
		if len(group) == 0 {
			continue
		}
		for _, s := range group {
			partitionMap[s] = len(partitions)
		}
		partitions = append(partitions, group)
	}
	return partitionMap, partitions
}

func refinePartitions(d *DFA, partitionMap map[string]int, partitions [][]string) (map[string]int, [][]string) {
	symbols := d.Symbols()
	for changed := true; changed; {
		changed = false
		next := make([][]string, 0, len(partitions))
		nextMap := make(map[string]int, len(partitionMap))

		for _, group := range partitions {
			bucket := map[string]int{}
			var split [][]string
			for _, s := range group {
				sig := signature(d, partitionMap, s, symbols)
				idx, ok := bucket[sig]
				if !ok {
					idx = len(split)
					bucket[sig] = idx
					split = append(split, nil)
				}
				split[idx] = append(split[idx], s)
			}
			if len(split) > 1 {
				changed = true
			}
			for _, sub := range split {
				for _, s := range sub {
					nextMap[s] = len(next)
				}
				next = append(next, sub)
			}
		}

		partitions, partitionMap = next, nextMap
	}
	return partitionMap, partitions
}

// signature lists, per symbol, the block the state moves to (-1 for none).
func signature(d *DFA, partitionMap map[string]int, state string, symbols []rune) string {
	var b strings.Builder
	for i, sym := range symbols {
		if i > 0 {
			b.WriteByte(',')
		}
		block := -1
		if to, ok := d.Next(state, sym); ok {
			block = partitionMap[to]
		}
		b.WriteString(strconv.Itoa(block))
	}
	return b.String()
}

func buildMinimized(d *DFA, partitionMap map[string]int, partitions [][]string) *DFA {
	out := NewDFA()
	for i, group := range partitions {
		accept := false
		for _, s := range group {
			if d.IsAccept(s) {
				accept = true
				break
			}
		}
		out.AddState(stateName(i), accept)
	}
	out.SetInitial(stateName(partitionMap[d.Initial]))

	// every member of a block moves alike, so the first one speaks for all
	symbols := d.Symbols()
	for i, group := range partitions {
		for _, sym := range symbols {
			if to, ok := d.Next(group[0], sym); ok {
				out.AddTransition(stateName(i), sym, stateName(partitionMap[to]))
			}
		}
	}
	for sym := range d.Alphabet {
		out.Alphabet[sym] = struct{}{}
	}
	return out
}
