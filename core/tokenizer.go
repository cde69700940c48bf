package core

import "strings"

// Tokenize splits source text into its ordered sequence of tokens.
// Tokens are separated by any run of whitespace and keep their
// relative order; blank input yields an empty sequence, which is a
// valid zero-token run.
//
// The returned slice is never mutated by the rest of the system: the
// partition and the workers only ever borrow it read-only.
func Tokenize(text string) []string {
	return strings.Fields(text)
}
