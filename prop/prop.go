package prop

// Prop is a node in a propositional formula tree. Kind selects the
// payload fields in use: Name for AtomicKind, Left for NotKind, and
// Left/Right for the binary kinds.
//
// Name may be any string, including the empty string; identifier
// validity is a property of the textual notation, not of the tree.
type Prop struct {
	Kind Kind

	Name string

	Left  *Prop
	Right *Prop
}

// Atomic returns a leaf proposition naming one boolean variable.
func Atomic(name string) *Prop {
	return &Prop{Kind: AtomicKind, Name: name}
}

// Not returns the negation of u.
func Not(u *Prop) *Prop {
	checkOperand(u)
	return &Prop{Kind: NotKind, Left: u}
}

// And returns the conjunction of l and r.
func And(l, r *Prop) *Prop {
	checkOperand(l)
	checkOperand(r)
	return &Prop{Kind: AndKind, Left: l, Right: r}
}

// Or returns the disjunction of l and r.
func Or(l, r *Prop) *Prop {
	checkOperand(l)
	checkOperand(r)
	return &Prop{Kind: OrKind, Left: l, Right: r}
}

// Implies returns the conditional with antecedent l and consequent r.
func Implies(l, r *Prop) *Prop {
	checkOperand(l)
	checkOperand(r)
	return &Prop{Kind: ImpliesKind, Left: l, Right: r}
}

// Iff returns the biconditional of l and r.
func Iff(l, r *Prop) *Prop {
	checkOperand(l)
	checkOperand(r)
	return &Prop{Kind: IffKind, Left: l, Right: r}
}

func checkOperand(u *Prop) {
	if u == nil {
		panic("prop: nil operand")
	}
}

// Not returns a new proposition negating u. It does not mutate u.
func (u *Prop) Not() *Prop {
	return Not(u)
}

// And returns a new proposition conjoining u with v.
func (u *Prop) And(v *Prop) *Prop {
	return And(u, v)
}

// Or returns a new proposition disjoining u with v.
func (u *Prop) Or(v *Prop) *Prop {
	return Or(u, v)
}

// Implies returns a new conditional with antecedent u and consequent v.
func (u *Prop) Implies(v *Prop) *Prop {
	return Implies(u, v)
}

// Iff returns a new biconditional of u and v.
func (u *Prop) Iff(v *Prop) *Prop {
	return Iff(u, v)
}
