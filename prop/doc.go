// Package prop provides the propositional formula data model: an
// immutable tree of atomic variables and the connectives ~, &, |, ->,
// and <->.
//
// Propositions are built from the constructors ([Atomic], [Not], [And],
// [Or], [Implies], [Iff]) or from the composition methods on [Prop].
// Once built they are never mutated, so a Prop may be rendered and
// interpreted concurrently without synchronization.
package prop
