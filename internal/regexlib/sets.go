package regexlib

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// members returns the indices set in s in increasing order.
func members(s *bitset.BitSet) []uint {
	out := make([]uint, 0, s.Count())
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		out = append(out, i)
	}
	return out
}

// setKey is an order-independent identity for a set, used to detect
// state sets that were already turned into DFA states.
func setKey(s *bitset.BitSet) string {
	var b strings.Builder
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(i), 10))
	}
	return b.String()
}
