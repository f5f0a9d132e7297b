package prop

import "fmt"

type Kind int

const (
	AtomicKind Kind = iota
	NotKind
	AndKind
	OrKind
	ImpliesKind
	IffKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		AtomicKind:  "Atomic",
		NotKind:     "Not",
		AndKind:     "And",
		OrKind:      "Or",
		ImpliesKind: "Implies",
		IffKind:     "Iff",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Connective returns the textual operator of a binary kind, or "" for
// AtomicKind and NotKind.
func (k Kind) Connective() string {
	switch k {
	case AndKind:
		return "&"
	case OrKind:
		return "|"
	case ImpliesKind:
		return "->"
	case IffKind:
		return "<->"
	}
	return ""
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Atomic":  AtomicKind,
		"Not":     NotKind,
		"And":     AndKind,
		"Or":      OrKind,
		"Implies": ImpliesKind,
		"Iff":     IffKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		AtomicKind,
		NotKind,
		AndKind,
		OrKind,
		ImpliesKind,
		IffKind,
	}
}
