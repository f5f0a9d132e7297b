package prop

import "strings"

// String renders u in canonical form: every binary connective wraps
// itself in parentheses with single spaces around the operator, Not
// prefixes ~ without parentheses of its own, and an atomic renders its
// name verbatim. The canonical form is stable under re-parsing.
func (u *Prop) String() string {
	var sb strings.Builder
	u.write(&sb)
	return sb.String()
}

func (u *Prop) write(sb *strings.Builder) {
	switch u.Kind {
	case AtomicKind:
		sb.WriteString(u.Name)
	case NotKind:
		sb.WriteByte('~')
		u.Left.write(sb)
	default:
		sb.WriteByte('(')
		u.Left.write(sb)
		sb.WriteByte(' ')
		sb.WriteString(u.Kind.Connective())
		sb.WriteByte(' ')
		u.Right.write(sb)
		sb.WriteByte(')')
	}
}
