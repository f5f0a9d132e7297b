package token

import "unicode/utf8"

// Tokenize appends the tokens of src to dst and returns the result. It
// makes a single forward pass: whitespace is consumed without emitting a
// token, multi-character operators are scanned greedily one character at
// a time, and identifiers take the longest run of letters, digits, and
// underscores.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := NewPosDoc(src)
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\f' || c == '\r' || c == '\n':
			i++
		case c == '~':
			dst = append(dst, Token{Type: TNot, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == '&':
			dst = append(dst, Token{Type: TAnd, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == '|':
			dst = append(dst, Token{Type: TOr, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == '(':
			dst = append(dst, Token{Type: TLParen, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == ')':
			dst = append(dst, Token{Type: TRParen, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == '-':
			start := i
			i++
			if err := accept(pd, src, &i, '>'); err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TImplies, Pos: pd.Pos(start), Bytes: src[start:i]})
		case c == '<':
			start := i
			i++
			if err := accept(pd, src, &i, '-'); err != nil {
				return nil, err
			}
			if err := accept(pd, src, &i, '>'); err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TIff, Pos: pd.Pos(start), Bytes: src[start:i]})
		case isIdentStart(c):
			start := i
			i++
			for i < n && isIdentCont(src[i]) {
				i++
			}
			dst = append(dst, Token{Type: TIdent, Pos: pd.Pos(start), Bytes: src[start:i]})
		default:
			r, sz := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && sz == 1 {
				return nil, NewTokenizeErr(ErrBadUTF8, pd.Pos(i))
			}
			return nil, unexpectedCharErr(r, pd.Pos(i))
		}
	}
	return dst, nil
}

// accept consumes the byte at *i, which must be want. At end of input it
// reports ErrUnexpectedEOF, otherwise a wrong character reports
// ErrUnexpectedChar.
func accept(pd *PosDoc, src []byte, i *int, want byte) error {
	if *i >= len(src) {
		return unexpectedEOFErr(pd.end())
	}
	if src[*i] != want {
		r, _ := utf8.DecodeRune(src[*i:])
		return unexpectedCharErr(r, pd.Pos(*i))
	}
	*i++
	return nil
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}
