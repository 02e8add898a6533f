package regexlib

import (
	"fmt"
	"io"
	"strconv"
)

// ExportDOT печатает Graphviz-представление NFA или DFA в w; сам автомат не меняется.
func ExportDOT(w io.Writer, g interface{}) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	switch t := g.(type) {

	//------------------------------------------------------------------ DFA
	case *DFA:
		for _, s := range t.States {
			shape := "circle"
			if t.IsAccept(s) {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    %s [shape=%s];\n", s, shape)
		}
		for _, s := range t.States {
			for _, ch := range t.Symbols() {
				if to, ok := t.Next(s, ch); ok {
					fmt.Fprintf(w, "    %s -> %s [label=%s];\n", s, to, dotLabel(ch))
				}
			}
		}
		if t.Initial != "" {
			fmt.Fprintf(w, "    _start [shape=point]; _start -> %s;\n", t.Initial)
		}

	//------------------------------------------------------------------ NFA
	case *NFA:
		for _, id := range t.Reachable() {
			shape := "circle"
			if id == t.Accept {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    n%d [shape=%s];\n", id, shape)

			s := t.States[id]
			if s.Edge1 != NoState {
				label := Epsilon
				if s.Labeled {
					label = s.Label
				}
				fmt.Fprintf(w, "    n%d -> n%d [label=%s];\n", id, s.Edge1, dotLabel(label))
			}
			if s.Edge2 != NoState {
				fmt.Fprintf(w, "    n%d -> n%d [label=%s];\n", id, s.Edge2, dotLabel(Epsilon))
			}
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", t.Initial)

	default:
		fmt.Fprintln(w, "    /* unknown graph type */")
	}

	fmt.Fprintln(w, "}")
}

// dotLabel quotes a symbol as a DOT string, escaping '"' and '\'.
func dotLabel(r rune) string { return strconv.Quote(string(r)) }
