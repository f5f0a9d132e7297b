package token

import "fmt"

type TokenType int

const (
	TIdent TokenType = iota
	TNot
	TAnd
	TOr
	TImplies
	TIff
	TLParen
	TRParen
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIdent:   "TIdent",
		TNot:     "TNot",
		TAnd:     "TAnd",
		TOr:      "TOr",
		TImplies: "TImplies",
		TIff:     "TIff",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}
