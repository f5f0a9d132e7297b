package flogic

import (
	"errors"
	"testing"

	"github.com/ederic-oytas/flogic/parse"
	"github.com/ederic-oytas/flogic/prop"
)

func TestParseProp(t *testing.T) {
	u, err := ParseProp("p & q | r")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := u.String(), "((p & q) | r)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// the canonical form is stable under re-parse
	v, err := ParseProp(u.String())
	if err != nil {
		t.Fatal(err)
	}
	if !prop.Equal(u, v) {
		t.Errorf("re-parse produced %s", v)
	}
}

func TestParsePropTautologies(t *testing.T) {
	for _, text := range []string{
		"((p -> q) & p) -> q",
		"(p <-> q) <-> ((p -> q) & (q -> p))",
	} {
		u, err := ParseProp(text)
		if err != nil {
			t.Fatal(err)
		}
		for _, pv := range []bool{true, false} {
			for _, qv := range []bool{true, false} {
				got, err := u.InterpretBindings(
					prop.Binding{Name: "p", Value: pv},
					prop.Binding{Name: "q", Value: qv})
				if err != nil {
					t.Fatal(err)
				}
				if !got {
					t.Errorf("%q false under p=%t q=%t", text, pv, qv)
				}
			}
		}
	}
}

func TestParseProps(t *testing.T) {
	props, err := ParseProps("p -> q, ~p | q")
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 2 {
		t.Fatalf("got %d propositions, want 2", len(props))
	}
	if _, err := ParseProps(""); !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v, want parse error", err)
	}
}
