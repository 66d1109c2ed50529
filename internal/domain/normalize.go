package domain

import "strings"

// NormalizeTitle trims a display name and collapses every whitespace run,
// including tabs and newlines pasted from elsewhere, to a single space.
func NormalizeTitle(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeIdentity lower-cases and trims a username or email so that
// uniqueness checks are case-insensitive.
func NormalizeIdentity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
