// Package token provides tokenization support for the flogic formula
// notation.
//
// [Tokenize] is a function for tokenizing bytes.
package token
