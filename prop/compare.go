package prop

import (
	"cmp"
	"strings"
)

// Equal reports whether a and b are structurally equal: the same kind
// at every position with equal payloads. Semantic equivalence is not
// implied; p&q and q&p are unequal.
func Equal(a, b *Prop) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two propositions structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b. Nodes
// order first by kind, then by payload, left operand before right.
func Compare(a, b *Prop) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case AtomicKind:
		return strings.Compare(a.Name, b.Name)
	case NotKind:
		return Compare(a.Left, b.Left)
	default:
		if c := Compare(a.Left, b.Left); c != 0 {
			return c
		}
		return Compare(a.Right, b.Right)
	}
}
