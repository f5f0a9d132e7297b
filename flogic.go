// Package flogic parses, renders, and evaluates propositional logic
// formulas over named boolean variables.
//
// Formulas are written with the operators ~ (not), & (and), | (or),
// -> (implies, right associative), and <-> (iff, right associative,
// loosest), with parentheses for grouping. Negation binds tightest,
// then &, |, ->, <->.
//
//	u, err := flogic.ParseProp("(p -> q) & p -> q")
//	...
//	v, err := u.Interpret(prop.Interp{"p": true, "q": false})
//
// The subpackages hold the pieces: prop is the formula data model,
// token and parse the text pipeline, and encode the renderer.
package flogic

import (
	"github.com/ederic-oytas/flogic/parse"
	"github.com/ederic-oytas/flogic/prop"
)

// ParseProp parses exactly one proposition from text. Trailing or
// malformed input is an error.
func ParseProp(text string) (*prop.Prop, error) {
	return parse.Parse([]byte(text))
}

// ParseProps parses a comma-separated list of propositions from text,
// in left-to-right order, surfacing the first failure.
func ParseProps(text string) ([]*prop.Prop, error) {
	return parse.ParseList([]byte(text))
}
