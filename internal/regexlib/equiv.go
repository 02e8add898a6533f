package regexlib

// dead stands for the implicit sink a partial DFA falls into on a missing
// transition.
const dead = ""

func (d *DFA) step(state string, symbol rune) string {
	if state == dead {
		return dead
	}
	to, ok := d.Next(state, symbol)
	if !ok {
		return dead
	}
	return to
}

// Distinguish walks the product of a and b breadth-first and returns the
// shortest input accepted by exactly one of them. ok is false when the two
// automata accept the same language.
func Distinguish(a, b *DFA) (witness string, ok bool) {
	type pair struct{ p, q string }
	type edge struct {
		from pair
		sym  rune
	}

	alpha := map[rune]struct{}{}
	for r := range a.Alphabet {
		alpha[r] = struct{}{}
	}
	for r := range b.Alphabet {
		alpha[r] = struct{}{}
	}
	symbols := sortedRunes(alpha)

	start := pair{a.Initial, b.Initial}
	parent := map[pair]edge{}
	seen := map[pair]bool{start: true}
	queue := []pair{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if a.IsAccept(cur.p) != b.IsAccept(cur.q) {
			var word []rune
			for at := cur; at != start; at = parent[at].from {
				word = append(word, parent[at].sym)
			}
			for i, j := 0, len(word)-1; i < j; i, j = i+1, j-1 {
				word[i], word[j] = word[j], word[i]
			}
			return string(word), true
		}
		for _, sym := range symbols {
			next := pair{a.step(cur.p, sym), b.step(cur.q, sym)}
			if next.p == dead && next.q == dead {
				continue
			}
			if seen[next] {
				continue
			}
			seen[next] = true
			parent[next] = edge{cur, sym}
			queue = append(queue, next)
		}
	}
	return "", false
}

// Equivalent reports whether a and b accept the same language.
func Equivalent(a, b *DFA) bool {
	_, differ := Distinguish(a, b)
	return !differ
}
