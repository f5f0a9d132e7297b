package prop

// Interp assigns truth values to variable names for a single
// interpretation call. It is never stored on a Prop.
type Interp map[string]bool

// Binding is a single name/value assignment, the inline form of
// supplying an interpretation.
type Binding struct {
	Name  string
	Value bool
}

// Interpret evaluates u under interp. And, Or, and Implies short
// circuit: once the left operand determines the result, the right
// operand is not evaluated and its variables need not be assigned. Iff
// always evaluates both operands. A variable which is needed but
// unassigned yields a *MissingVarErr.
//
// Interpret never mutates u; a failed call leaves u reusable under a
// different interpretation.
func (u *Prop) Interpret(interp Interp) (bool, error) {
	switch u.Kind {
	case AtomicKind:
		v, ok := interp[u.Name]
		if !ok {
			return false, &MissingVarErr{Name: u.Name}
		}
		return v, nil
	case NotKind:
		v, err := u.Left.Interpret(interp)
		if err != nil {
			return false, err
		}
		return !v, nil
	case AndKind:
		l, err := u.Left.Interpret(interp)
		if err != nil || !l {
			return false, err
		}
		return u.Right.Interpret(interp)
	case OrKind:
		l, err := u.Left.Interpret(interp)
		if err != nil || l {
			return l, err
		}
		return u.Right.Interpret(interp)
	case ImpliesKind:
		l, err := u.Left.Interpret(interp)
		if err != nil {
			return false, err
		}
		if !l {
			return true, nil
		}
		return u.Right.Interpret(interp)
	case IffKind:
		l, err := u.Left.Interpret(interp)
		if err != nil {
			return false, err
		}
		r, err := u.Right.Interpret(interp)
		if err != nil {
			return false, err
		}
		return l == r, nil
	}
	panic("kind")
}

// InterpretBindings evaluates u under the given bindings. It is
// equivalent to Interpret over a map holding the same assignments; a
// later binding for a name overrides an earlier one.
func (u *Prop) InterpretBindings(bindings ...Binding) (bool, error) {
	interp := make(Interp, len(bindings))
	for _, b := range bindings {
		interp[b.Name] = b.Value
	}
	return u.Interpret(interp)
}
