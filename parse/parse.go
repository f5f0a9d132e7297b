// Package parse provides parsing of the flogic formula notation.
//
// The grammar is LL(1) and parsed by recursive descent, one method per
// precedence level:
//
//	bic  ::= cond ("<->" cond)*
//	cond ::= disj ("->" disj)*
//	disj ::= conj ("|" conj)*
//	conj ::= neg  ("&" neg)*
//	neg  ::= "~" neg | unit
//	unit ::= IDENT | "(" bic ")"
//
// "->" and "<->" associate to the right, "&" and "|" to the left.
package parse

import (
	"bytes"

	"github.com/ederic-oytas/flogic/debug"
	"github.com/ederic-oytas/flogic/prop"
	"github.com/ederic-oytas/flogic/token"
)

// Parse parses exactly one proposition from d. The whole token stream
// must be consumed: trailing tokens after a complete formula are an
// error, as is input which ends before a formula is complete. Empty or
// all-whitespace input yields no tokens and fails with unexpected end
// of input.
func Parse(d []byte) (*prop.Prop, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		infos := make([]string, len(toks))
		for i := range toks {
			infos[i] = toks[i].Info()
		}
		debug.LogAny(infos)
	}
	p := &parser{toks: toks}
	u, err := p.bic()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil {
		return nil, &UnexpectedTokenErr{Token: *t}
	}
	return u, nil
}

// ParseList splits d on commas and parses each part with Parse, in
// left-to-right order, stopping at the first failure. The split is
// naive: commas inside subexpressions are not escapable, and an empty
// part (including the single empty part of empty input) fails like any
// other empty parse.
func ParseList(d []byte) ([]*prop.Prop, error) {
	parts := bytes.Split(d, []byte{','})
	res := make([]*prop.Prop, 0, len(parts))
	for _, part := range parts {
		u, err := Parse(part)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, nil
}

type parser struct {
	toks []token.Token
	i    int
}

func (p *parser) peek() *token.Token {
	if p.i < len(p.toks) {
		return &p.toks[p.i]
	}
	return nil
}

func (p *parser) bic() (*prop.Prop, error) {
	left, err := p.cond()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil && t.Type == token.TIff {
		p.i++
		right, err := p.bic()
		if err != nil {
			return nil, err
		}
		return prop.Iff(left, right), nil
	}
	return left, nil
}

func (p *parser) cond() (*prop.Prop, error) {
	left, err := p.disj()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil && t.Type == token.TImplies {
		p.i++
		right, err := p.cond()
		if err != nil {
			return nil, err
		}
		return prop.Implies(left, right), nil
	}
	return left, nil
}

func (p *parser) disj() (*prop.Prop, error) {
	res, err := p.conj()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t == nil || t.Type != token.TOr {
			return res, nil
		}
		p.i++
		right, err := p.conj()
		if err != nil {
			return nil, err
		}
		res = prop.Or(res, right)
	}
}

func (p *parser) conj() (*prop.Prop, error) {
	res, err := p.neg()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t == nil || t.Type != token.TAnd {
			return res, nil
		}
		p.i++
		right, err := p.neg()
		if err != nil {
			return nil, err
		}
		res = prop.And(res, right)
	}
}

func (p *parser) neg() (*prop.Prop, error) {
	if t := p.peek(); t != nil && t.Type == token.TNot {
		p.i++
		u, err := p.neg()
		if err != nil {
			return nil, err
		}
		return prop.Not(u), nil
	}
	return p.unit()
}

func (p *parser) unit() (*prop.Prop, error) {
	t := p.peek()
	if t == nil {
		return nil, &UnexpectedEOFErr{}
	}
	switch t.Type {
	case token.TIdent:
		p.i++
		return prop.Atomic(string(t.Bytes)), nil
	case token.TLParen:
		p.i++
		u, err := p.bic()
		if err != nil {
			return nil, err
		}
		t = p.peek()
		if t == nil {
			return nil, &UnexpectedEOFErr{}
		}
		if t.Type != token.TRParen {
			return nil, &UnexpectedTokenErr{Token: *t}
		}
		p.i++
		return u, nil
	}
	return nil, &UnexpectedTokenErr{Token: *t}
}
