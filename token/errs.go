package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8        = errors.New("bad utf8")
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrUnexpectedEOF  = errors.New("unexpected end of input")
)

// TokenizeErr wraps a tokenization error with the position at which it
// occurred.
type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// UnexpectedCharErr reports an input character which matches no token
// rule, or which breaks a multi-character operator.
type UnexpectedCharErr struct {
	Char rune
	Pos  Pos
}

func (e *UnexpectedCharErr) Unwrap() error {
	return ErrUnexpectedChar
}

func (e *UnexpectedCharErr) Error() string {
	return fmt.Sprintf("unexpected character %q at %s", e.Char, e.Pos.String())
}

func unexpectedCharErr(r rune, p *Pos) error {
	return &UnexpectedCharErr{Char: r, Pos: *p}
}

func unexpectedEOFErr(p *Pos) error {
	return NewTokenizeErr(ErrUnexpectedEOF, p)
}
