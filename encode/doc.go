// Package encode renders propositions to a writer in canonical form,
// optionally with terminal colors.
package encode
