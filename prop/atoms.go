package prop

import (
	"maps"
	"slices"
	"strings"
)

// Atomics returns one Atomic per whitespace-separated field of text.
// Names are opaque, so fields need not be valid identifiers.
func Atomics(text string) []*Prop {
	fields := strings.Fields(text)
	res := make([]*Prop, len(fields))
	for i, f := range fields {
		res[i] = Atomic(f)
	}
	return res
}

// AtomicsOf returns one Atomic per name, verbatim.
func AtomicsOf(names ...string) []*Prop {
	res := make([]*Prop, len(names))
	for i, name := range names {
		res[i] = Atomic(name)
	}
	return res
}

// Vars returns the variable names appearing in u, sorted and without
// duplicates.
func (u *Prop) Vars() []string {
	set := map[string]struct{}{}
	u.vars(set)
	res := slices.Collect(maps.Keys(set))
	slices.Sort(res)
	return res
}

func (u *Prop) vars(set map[string]struct{}) {
	switch u.Kind {
	case AtomicKind:
		set[u.Name] = struct{}{}
	case NotKind:
		u.Left.vars(set)
	default:
		u.Left.vars(set)
		u.Right.vars(set)
	}
}
