package parse

import (
	"errors"
	"fmt"

	"github.com/ederic-oytas/flogic/token"
)

var ErrParse = errors.New("parse error")

// UnexpectedTokenErr reports a token which appeared where the grammar
// forbids it, such as a stray ')' or an operator with no left operand.
type UnexpectedTokenErr struct {
	Token token.Token
}

func (e *UnexpectedTokenErr) Unwrap() error {
	return ErrParse
}

func (e *UnexpectedTokenErr) Error() string {
	return fmt.Sprintf("%s: unexpected token %q at %s",
		ErrParse.Error(), string(e.Token.Bytes), e.Token.Pos.String())
}

// UnexpectedEOFErr reports a token stream which was exhausted where a
// token was required.
type UnexpectedEOFErr struct{}

func (e *UnexpectedEOFErr) Unwrap() error {
	return ErrParse
}

func (e *UnexpectedEOFErr) Error() string {
	return ErrParse.Error() + ": unexpected end of input"
}
