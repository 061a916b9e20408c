package router

import "strings"

// Normalize lowercases the input, collapses every whitespace run to a single
// space and trims leading/trailing whitespace. Idempotent: normalizing an
// already-normalized string returns it unchanged.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
