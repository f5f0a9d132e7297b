package token

import (
	"errors"
	"testing"
)

type tok struct {
	typ TokenType
	lit string
}

type tokenizeTest struct {
	in   string
	want []tok
	e    error
}

func TestTokenize(t *testing.T) {
	tts := []tokenizeTest{
		{
			in: "",
		},
		{
			in: " \t\f\r\n",
		},
		{
			in:   "p",
			want: []tok{{TIdent, "p"}},
		},
		{
			in:   "p & q",
			want: []tok{{TIdent, "p"}, {TAnd, "&"}, {TIdent, "q"}},
		},
		{
			in: "p->q<->~r",
			want: []tok{
				{TIdent, "p"}, {TImplies, "->"}, {TIdent, "q"},
				{TIff, "<->"}, {TNot, "~"}, {TIdent, "r"},
			},
		},
		{
			in: "(_x1 | Y2)",
			want: []tok{
				{TLParen, "("}, {TIdent, "_x1"}, {TOr, "|"},
				{TIdent, "Y2"}, {TRParen, ")"},
			},
		},
		{
			in:   "\t p \f\r\n q ",
			want: []tok{{TIdent, "p"}, {TIdent, "q"}},
		},
		{
			in:   "<->",
			want: []tok{{TIff, "<->"}},
		},
		{
			in:   "abc_123 _ A",
			want: []tok{{TIdent, "abc_123"}, {TIdent, "_"}, {TIdent, "A"}},
		},
		{
			in: "-",
			e:  ErrUnexpectedEOF,
		},
		{
			in: "p -",
			e:  ErrUnexpectedEOF,
		},
		{
			in: "-x",
			e:  ErrUnexpectedChar,
		},
		{
			in: "p - q",
			e:  ErrUnexpectedChar,
		},
		{
			in: "<",
			e:  ErrUnexpectedEOF,
		},
		{
			in: "<-",
			e:  ErrUnexpectedEOF,
		},
		{
			in: "<x",
			e:  ErrUnexpectedChar,
		},
		{
			in: "<-x",
			e:  ErrUnexpectedChar,
		},
		{
			in: "$",
			e:  ErrUnexpectedChar,
		},
		{
			in: "p + q",
			e:  ErrUnexpectedChar,
		},
	}
	for _, tt := range tts {
		toks, err := Tokenize(nil, []byte(tt.in))
		if tt.e != nil {
			if !errors.Is(err, tt.e) {
				t.Errorf("%q: got error %v, want %v", tt.in, err, tt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.want) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.want))
			continue
		}
		for i, w := range tt.want {
			if toks[i].Type != w.typ || string(toks[i].Bytes) != w.lit {
				t.Errorf("%q: token %d is %s %q, want %s %q",
					tt.in, i, toks[i].Type, toks[i].Bytes, w.typ, w.lit)
			}
		}
	}
}

func TestTokenizeUnexpectedChar(t *testing.T) {
	for _, tt := range []struct {
		in   string
		char rune
	}{
		{"-x", 'x'},
		{"<-x", 'x'},
		{"<x", 'x'},
		{"$", '$'},
		{"p - q", ' '},
	} {
		_, err := Tokenize(nil, []byte(tt.in))
		var ucErr *UnexpectedCharErr
		if !errors.As(err, &ucErr) {
			t.Errorf("%q: got %v, want *UnexpectedCharErr", tt.in, err)
			continue
		}
		if ucErr.Char != tt.char {
			t.Errorf("%q: got char %q, want %q", tt.in, ucErr.Char, tt.char)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	toks, err := Tokenize(nil, []byte("p &\n q"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	q := toks[2]
	if q.Pos.I != 5 {
		t.Errorf("got offset %d, want 5", q.Pos.I)
	}
	if l, c := q.Pos.LineCol(); l != 1 || c != 1 {
		t.Errorf("got line=%d col=%d, want line=1 col=1", l, c)
	}
	if l, c := toks[0].Pos.LineCol(); l != 0 || c != 0 {
		t.Errorf("got line=%d col=%d, want line=0 col=0", l, c)
	}
}
