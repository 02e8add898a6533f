package regexlib

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// directBuilder holds the position tables for one syntax tree.
type directBuilder struct {
	leaves    []*Node // position -> leaf
	positions map[*Node]uint
	nullable  map[*Node]bool
	firstpos  map[*Node]*bitset.BitSet
	lastpos   map[*Node]*bitset.BitSet
	followpos []*bitset.BitSet
}

// DirectDFA builds a DFA straight from an augmented syntax tree using
// firstpos, lastpos and followpos. The tree must contain exactly one leaf
// labeled endMarker; a DFA state accepts iff it holds that leaf's position.
func DirectDFA(root *Node, endMarker rune) (*DFA, error) {
	b, end, err := newDirectBuilder(root, endMarker)
	if err != nil {
		return nil, err
	}
	b.annotate(root)
	return b.construct(root, endMarker, end), nil
}

// newDirectBuilder numbers the leaves of root left to right and returns the
// position of the end marker.
func newDirectBuilder(root *Node, endMarker rune) (*directBuilder, uint, error) {
	if root == nil {
		return nil, 0, errors.Wrap(ErrMalformedPostfix, "nil syntax tree")
	}

	b := &directBuilder{
		leaves:    root.Leaves(),
		positions: map[*Node]uint{},
		nullable:  map[*Node]bool{},
		firstpos:  map[*Node]*bitset.BitSet{},
		lastpos:   map[*Node]*bitset.BitSet{},
	}

	end := -1
	b.followpos = make([]*bitset.BitSet, len(b.leaves))
	for pos, leaf := range b.leaves {
		b.positions[leaf] = uint(pos)
		b.followpos[pos] = b.newSet()
		if leaf.Symbol == endMarker {
			if end >= 0 {
				return nil, 0, errors.Wrapf(ErrMissingEndMarker, "'%c' occurs more than once", endMarker)
			}
			end = pos
		}
	}
	if end < 0 {
		return nil, 0, errors.Wrapf(ErrMissingEndMarker, "no '%c' leaf", endMarker)
	}
	return b, uint(end), nil
}

func (b *directBuilder) newSet() *bitset.BitSet { return bitset.New(uint(len(b.leaves))) }

// annotate fills nullable, firstpos and lastpos bottom-up and adds the
// followpos contributions of concatenation and star nodes.
func (b *directBuilder) annotate(n *Node) {
	switch n.Kind {
	case Leaf:
		pos := b.newSet().Set(b.positions[n])
		b.nullable[n] = false
		b.firstpos[n] = pos
		b.lastpos[n] = pos
	case Empty:
		b.nullable[n] = true
		b.firstpos[n] = b.newSet()
		b.lastpos[n] = b.newSet()
	case Star:
		b.annotate(n.Left)
		b.nullable[n] = true
		b.firstpos[n] = b.firstpos[n.Left]
		b.lastpos[n] = b.lastpos[n.Left]
		b.follow(b.lastpos[n], b.firstpos[n])
	case Union:
		b.annotate(n.Left)
		b.annotate(n.Right)
		b.nullable[n] = b.nullable[n.Left] || b.nullable[n.Right]
		b.firstpos[n] = b.firstpos[n.Left].Union(b.firstpos[n.Right])
		b.lastpos[n] = b.lastpos[n.Left].Union(b.lastpos[n.Right])
	case Concat:
		b.annotate(n.Left)
		b.annotate(n.Right)
		b.nullable[n] = b.nullable[n.Left] && b.nullable[n.Right]
		if b.nullable[n.Left] {
			b.firstpos[n] = b.firstpos[n.Left].Union(b.firstpos[n.Right])
		} else {
			b.firstpos[n] = b.firstpos[n.Left]
		}
		if b.nullable[n.Right] {
			b.lastpos[n] = b.lastpos[n.Left].Union(b.lastpos[n.Right])
		} else {
			b.lastpos[n] = b.lastpos[n.Right]
		}
		b.follow(b.lastpos[n.Left], b.firstpos[n.Right])
	default:
		panic("unknown syntax tree node")
	}
}

// follow adds to into followpos[p] for every p in from.
func (b *directBuilder) follow(from, to *bitset.BitSet) {
	for p, ok := from.NextSet(0); ok; p, ok = from.NextSet(p + 1) {
		b.followpos[p].InPlaceUnion(to)
	}
}

func (b *directBuilder) construct(root *Node, endMarker rune, end uint) *DFA {
	type pending struct {
		name string
		set  *bitset.BitSet
	}

	alphabet := map[rune]struct{}{}
	for _, leaf := range b.leaves {
		if leaf.Symbol != endMarker {
			alphabet[leaf.Symbol] = struct{}{}
		}
	}
	symbols := sortedRunes(alphabet)

	start := b.firstpos[root]
	d := NewDFA()
	names := map[string]string{setKey(start): stateName(0)}
	d.AddState(stateName(0), start.Test(end))
	d.SetInitial(stateName(0))

	queue := []pending{{stateName(0), start}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range symbols {
			move := b.newSet()
			for p, ok := cur.set.NextSet(0); ok; p, ok = cur.set.NextSet(p + 1) {
				if b.leaves[p].Symbol == sym {
					move.InPlaceUnion(b.followpos[p])
				}
			}
			if move.None() {
				continue
			}
			key := setKey(move)
			name, seen := names[key]
			if !seen {
				name = stateName(len(names))
				names[key] = name
				d.AddState(name, move.Test(end))
				queue = append(queue, pending{name, move})
			}
			d.AddTransition(cur.name, sym, name)
		}
	}
	return d
}
