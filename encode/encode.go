package encode

import (
	"io"

	"github.com/ederic-oytas/flogic/prop"
)

type EncState struct {
	Color func(prop.Kind, ColorAttr, string) string
}

// Encode writes the canonical rendering of u to w. Without options the
// output is byte-identical to u.String().
func Encode(u *prop.Prop, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(u, w, es)
}

func encode(u *prop.Prop, w io.Writer, es *EncState) error {
	switch u.Kind {
	case prop.AtomicKind:
		return writeString(w, es.color(u.Kind, VarColor, u.Name))
	case prop.NotKind:
		if err := writeString(w, es.color(u.Kind, OpColor, "~")); err != nil {
			return err
		}
		return encode(u.Left, w, es)
	default:
		if err := writeString(w, es.color(u.Kind, ParenColor, "(")); err != nil {
			return err
		}
		if err := encode(u.Left, w, es); err != nil {
			return err
		}
		if err := writeString(w, " "+es.color(u.Kind, OpColor, u.Kind.Connective())+" "); err != nil {
			return err
		}
		if err := encode(u.Right, w, es); err != nil {
			return err
		}
		return writeString(w, es.color(u.Kind, ParenColor, ")"))
	}
}

func (es *EncState) color(k prop.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
