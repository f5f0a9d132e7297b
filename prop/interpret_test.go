package prop

import (
	"errors"
	"testing"
)

// interpretBoth evaluates u in both supported forms and requires they
// agree before returning the result.
func interpretBoth(t *testing.T, u *Prop, interp Interp) (bool, error) {
	t.Helper()
	a, errA := u.Interpret(interp)
	bindings := make([]Binding, 0, len(interp))
	for name, v := range interp {
		bindings = append(bindings, Binding{Name: name, Value: v})
	}
	b, errB := u.InterpretBindings(bindings...)
	if a != b || (errA == nil) != (errB == nil) {
		t.Fatalf("%s under %v: Interpret=(%t,%v) InterpretBindings=(%t,%v)",
			u, interp, a, errA, b, errB)
	}
	return a, errA
}

type interpTest struct {
	u    *Prop
	in   Interp
	want bool
	miss bool // expect a missing-variable failure
}

func runInterpTests(t *testing.T, tests []interpTest) {
	t.Helper()
	for _, tt := range tests {
		got, err := interpretBoth(t, tt.u, tt.in)
		if tt.miss {
			if !errors.Is(err, ErrMissingVar) {
				t.Errorf("%s under %v: got (%t, %v), want missing variable", tt.u, tt.in, got, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s under %v: unexpected error %v", tt.u, tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s under %v = %t, want %t", tt.u, tt.in, got, tt.want)
		}
	}
}

func TestAtomicInterpret(t *testing.T) {
	names := []string{"p", "ANY_NamE", "", "\\'\"\n\t\uffff"}
	for _, name := range names {
		a := Atomic(name)
		runInterpTests(t, []interpTest{
			{u: a, in: Interp{name: true}, want: true},
			{u: a, in: Interp{name: false}, want: false},
			{u: a, in: Interp{name + "2": true}, miss: true},
			{u: a, in: Interp{}, miss: true},
		})
	}
}

func TestMissingVarErr(t *testing.T) {
	_, err := Atomic("p").Interpret(Interp{})
	var mvErr *MissingVarErr
	if !errors.As(err, &mvErr) {
		t.Fatalf("got %v, want *MissingVarErr", err)
	}
	if mvErr.Name != "p" {
		t.Errorf("got name %q, want %q", mvErr.Name, "p")
	}
}

func TestTruthTables(t *testing.T) {
	p, q := Atomic("p"), Atomic("q")
	runInterpTests(t, []interpTest{
		{u: Not(p), in: Interp{"p": true}, want: false},
		{u: Not(p), in: Interp{"p": false}, want: true},

		{u: And(p, q), in: Interp{"p": true, "q": true}, want: true},
		{u: And(p, q), in: Interp{"p": true, "q": false}, want: false},
		{u: And(p, q), in: Interp{"p": false, "q": true}, want: false},
		{u: And(p, q), in: Interp{"p": false, "q": false}, want: false},

		{u: Or(p, q), in: Interp{"p": true, "q": true}, want: true},
		{u: Or(p, q), in: Interp{"p": true, "q": false}, want: true},
		{u: Or(p, q), in: Interp{"p": false, "q": true}, want: true},
		{u: Or(p, q), in: Interp{"p": false, "q": false}, want: false},

		{u: Implies(p, q), in: Interp{"p": true, "q": true}, want: true},
		{u: Implies(p, q), in: Interp{"p": true, "q": false}, want: false},
		{u: Implies(p, q), in: Interp{"p": false, "q": true}, want: true},
		{u: Implies(p, q), in: Interp{"p": false, "q": false}, want: true},

		{u: Iff(p, q), in: Interp{"p": true, "q": true}, want: true},
		{u: Iff(p, q), in: Interp{"p": true, "q": false}, want: false},
		{u: Iff(p, q), in: Interp{"p": false, "q": true}, want: false},
		{u: Iff(p, q), in: Interp{"p": false, "q": false}, want: true},
	})
}

func TestShortCircuit(t *testing.T) {
	p, q := Atomic("p"), Atomic("q")
	runInterpTests(t, []interpTest{
		// And: a false left decides without inspecting the right
		{u: And(p, q), in: Interp{"p": false}, want: false},
		{u: And(p, q), in: Interp{"p": true}, miss: true},
		{u: And(p, q), in: Interp{}, miss: true},
		{u: And(p, q), in: Interp{"q": true}, miss: true},
		{u: And(p, q), in: Interp{"q": false}, miss: true},

		// Or: a true left decides
		{u: Or(p, q), in: Interp{"p": true}, want: true},
		{u: Or(p, q), in: Interp{"p": false}, miss: true},
		{u: Or(p, q), in: Interp{}, miss: true},
		{u: Or(p, q), in: Interp{"q": true}, miss: true},
		{u: Or(p, q), in: Interp{"q": false}, miss: true},

		// Implies: a false antecedent decides
		{u: Implies(p, q), in: Interp{"p": false}, want: true},
		{u: Implies(p, q), in: Interp{"p": true}, miss: true},
		{u: Implies(p, q), in: Interp{}, miss: true},
		{u: Implies(p, q), in: Interp{"q": true}, miss: true},
		{u: Implies(p, q), in: Interp{"q": false}, miss: true},

		// Iff never short circuits
		{u: Iff(p, q), in: Interp{"p": true}, miss: true},
		{u: Iff(p, q), in: Interp{"p": false}, miss: true},
		{u: Iff(p, q), in: Interp{"q": true}, miss: true},
		{u: Iff(p, q), in: Interp{"q": false}, miss: true},
		{u: Iff(p, q), in: Interp{}, miss: true},

		// Not always needs its operand
		{u: Not(p), in: Interp{}, miss: true},
		{u: Not(p), in: Interp{"x": true}, miss: true},
	})
}

func TestNestedInterpret(t *testing.T) {
	p, q := Atomic("p"), Atomic("q")
	quadNeg := Not(Not(Not(Not(p))))
	modusPonens := Implies(And(Implies(p, q), p), q)
	iffExpanded := Iff(Iff(p, q), And(Implies(p, q), Implies(q, p)))
	iffDNF := Iff(Iff(p, q), Or(And(p, q), And(Not(p), Not(q))))
	tests := []interpTest{
		{u: quadNeg, in: Interp{"p": true}, want: true},
		{u: quadNeg, in: Interp{"p": false}, want: false},
		{u: Or(p, Not(p)), in: Interp{"p": true}, want: true},
		{u: Or(p, Not(p)), in: Interp{"p": false}, want: true},
		{u: And(p, Not(p)), in: Interp{"p": true}, want: false},
		{u: And(p, Not(p)), in: Interp{"p": false}, want: false},
	}
	for _, pv := range []bool{true, false} {
		for _, qv := range []bool{true, false} {
			in := Interp{"p": pv, "q": qv}
			tests = append(tests,
				interpTest{u: modusPonens, in: in, want: true},
				interpTest{u: iffExpanded, in: in, want: true},
				interpTest{u: iffDNF, in: in, want: true},
			)
		}
	}
	runInterpTests(t, tests)
}

func TestInterpretLeavesPropReusable(t *testing.T) {
	u := And(Atomic("p"), Atomic("q"))
	if _, err := u.Interpret(Interp{"p": true}); !errors.Is(err, ErrMissingVar) {
		t.Fatalf("got %v, want missing variable", err)
	}
	got, err := u.Interpret(Interp{"p": true, "q": true})
	if err != nil || !got {
		t.Errorf("got (%t, %v), want (true, nil)", got, err)
	}
}
